package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Word-vector sources.
const (
	SourceFile   = "file"
	SourceOpenAI = "openai"
)

// Config holds the symptomlog API configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Classifier  ClassifierConfig  `yaml:"classifier"`
	Assets      AssetsConfig      `yaml:"assets"`
	Targets     TargetsConfig     `yaml:"targets"`
	WordVectors WordVectorsConfig `yaml:"word_vectors"`
	Cache       CacheConfig       `yaml:"cache"`
	Auth        AuthConfig        `yaml:"auth"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port              int `yaml:"port"`
	ReadTimeoutSec    int `yaml:"read_timeout_sec"`
	WriteTimeoutSec   int `yaml:"write_timeout_sec"`
	ShutdownSec       int `yaml:"shutdown_timeout_sec"`
	RequestTimeoutSec int `yaml:"request_timeout_sec"`
}

// ClassifierConfig holds pipeline settings.
type ClassifierConfig struct {
	Threshold *float64 `yaml:"threshold"` // default 0.5
	Workers   int      `yaml:"workers"`
	// SentenceBreak splits clauses on connectives and newlines (default true).
	SentenceBreak    *bool `yaml:"sentence_break"`
	SpellMaxDistance int   `yaml:"spell_max_distance"`
}

// AssetsConfig locates the static assets. Individual paths override the
// files found under Dir.
type AssetsConfig struct {
	Dir            string `yaml:"dir"`
	Corpus         string `yaml:"corpus"`
	Dictionary     string `yaml:"dictionary"`
	WordVectors    string `yaml:"word_vectors"`
	SymptomVectors string `yaml:"symptom_vectors"`
	Symptoms       string `yaml:"symptoms"`
	Relations      string `yaml:"relations"`
}

// TargetsConfig holds correlated-target settings.
type TargetsConfig struct {
	MinCorrelation *float64 `yaml:"min_correlation"` // default 0.5
}

// WordVectorsConfig selects where word vectors come from.
type WordVectorsConfig struct {
	Source     string `yaml:"source"` // file (default), openai
	Provider   string `yaml:"provider"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// CacheConfig holds Redis cache settings for spelling corrections and remote
// word vectors.
type CacheConfig struct {
	Enabled          bool     `yaml:"enabled"`
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	TTLSec           int      `yaml:"ttl_sec"` // 0 = no expiry
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.HTTP.RequestTimeoutSec <= 0 {
		c.HTTP.RequestTimeoutSec = 5
	}
	if c.Classifier.Threshold == nil {
		c.Classifier.Threshold = ptr(0.5)
	}
	if c.Classifier.Workers <= 0 {
		c.Classifier.Workers = 4
	}
	if c.Classifier.SentenceBreak == nil {
		c.Classifier.SentenceBreak = ptr(true)
	}
	if c.Classifier.SpellMaxDistance <= 0 {
		c.Classifier.SpellMaxDistance = 2
	}
	if c.Targets.MinCorrelation == nil {
		c.Targets.MinCorrelation = ptr(0.5)
	}
	if c.WordVectors.Source == "" {
		c.WordVectors.Source = SourceFile
	}
	if c.WordVectors.Provider == "" {
		c.WordVectors.Provider = "openai"
	}
	if c.Cache.ReadinessTimeout <= 0 {
		c.Cache.ReadinessTimeout = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if t := c.Classifier.Threshold; t != nil && (*t < -1 || *t > 1) {
		return fmt.Errorf("classifier.threshold must be between -1 and 1, got %v", *t)
	}
	if c.Assets.Dir == "" && (c.Assets.Corpus == "" || c.Assets.SymptomVectors == "") {
		return fmt.Errorf("assets.dir or both assets.corpus and assets.symptom_vectors are required")
	}
	switch c.WordVectors.Source {
	case SourceFile:
		if c.Assets.Dir == "" && c.Assets.WordVectors == "" {
			return fmt.Errorf("assets.word_vectors is required when word_vectors.source is %q", SourceFile)
		}
	case SourceOpenAI:
		if c.WordVectors.Model == "" {
			return fmt.Errorf("word_vectors.model is required when word_vectors.source is %q", SourceOpenAI)
		}
	default:
		return fmt.Errorf("word_vectors.source must be %q or %q, got %q",
			SourceFile, SourceOpenAI, c.WordVectors.Source)
	}
	if c.Cache.Enabled && len(c.Cache.Addrs) == 0 {
		return fmt.Errorf("cache.addrs is required when cache is enabled")
	}
	if c.Cache.TTLSec < 0 {
		return fmt.Errorf("cache.ttl_sec must not be negative, got %d", c.Cache.TTLSec)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func ptr[T any](v T) *T { return &v }

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
