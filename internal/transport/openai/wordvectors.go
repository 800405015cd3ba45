package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/vector"
	"github.com/kailas-cloud/symptomlog/internal/metrics"
)

// WordVectors resolves single words through an OpenAI-compatible embeddings API.
type WordVectors struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimensions int
	user       string
	provider   string
	logger     *zap.Logger
}

// Config holds the embedding provider settings.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int
	User       string
	Provider   string
	Logger     *zap.Logger
}

// NewWordVectors creates an OpenAI-compatible word-vector provider.
func NewWordVectors(cfg *Config) *WordVectors {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &WordVectors{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      openai.EmbeddingModel(cfg.Model),
		dimensions: cfg.Dimensions,
		user:       cfg.User,
		provider:   cfg.Provider,
		logger:     cfg.Logger,
	}
}

// Model returns the embedding model name.
func (e *WordVectors) Model() string { return string(e.model) }

// Lookup embeds word. Blank words have no vector.
func (e *WordVectors) Lookup(ctx context.Context, word string) (vector.Vector, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("blank word: %w", domain.ErrWordNotFound)
	}

	req := openai.EmbeddingRequest{
		Input:          []string{word},
		Model:          e.model,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
		User:           e.user,
	}
	if e.dimensions > 0 {
		req.Dimensions = e.dimensions
	}

	start := time.Now()

	resp, err := e.client.CreateEmbeddings(ctx, req)

	duration := time.Since(start)
	model := string(e.model)

	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(e.provider, model, "error").Inc()
		metrics.EmbeddingErrorsTotal.WithLabelValues(e.provider, model, "api_error").Inc()
		e.logger.Warn("Word embedding request failed",
			zap.String("provider", e.provider),
			zap.String("model", model),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, parseAPIError(err)
	}

	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		metrics.EmbeddingRequestsTotal.WithLabelValues(e.provider, model, "error").Inc()
		metrics.EmbeddingErrorsTotal.WithLabelValues(e.provider, model, "empty_response").Inc()
		return nil, fmt.Errorf("empty embedding response: %w", domain.ErrEmbeddingProviderError)
	}

	vec := vector.Vector(resp.Data[0].Embedding)
	if e.dimensions > 0 && vec.Dim() != e.dimensions {
		metrics.EmbeddingRequestsTotal.WithLabelValues(e.provider, model, "error").Inc()
		metrics.EmbeddingErrorsTotal.WithLabelValues(e.provider, model, "dimension").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingProviderError, domain.NewDimMismatch(e.dimensions, vec.Dim()))
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(e.provider, model, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(e.provider, model).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		metrics.EmbeddingTokensTotal.WithLabelValues(e.provider, model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.EmbeddingTokensTotal.WithLabelValues(e.provider, model, "total").Add(float64(resp.Usage.TotalTokens))
	}

	e.logger.Debug("Word embedding request completed",
		zap.String("provider", e.provider),
		zap.String("model", model),
		zap.Duration("duration", duration),
		zap.Int("dimensions", vec.Dim()),
	)

	return vec, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (e *WordVectors) HealthCheck(ctx context.Context) error {
	if _, err := e.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrEmbeddingProviderError for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrEmbeddingProviderError

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("embedding request: %w: %w", wrap, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if detail := extractDetail(reqErr.Body); detail != "" {
			return fmt.Errorf("embedding API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("embedding API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("embedding API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("embedding request failed: %w", wrap)
}

// extractDetail extracts the "detail" field from a JSON error body (Nebius error format).
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
