package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/symptomlog/internal/domain/corpus"
	"github.com/kailas-cloud/symptomlog/internal/domain/symptom"
)

// Default file names inside an asset directory.
const (
	CorpusFile         = "corpus.txt"
	DictionaryFile     = "dictionary.txt"
	WordVectorsFile    = "word_vectors.txt"
	SymptomVectorsFile = "symptom_vectors.json"
	CatalogFile        = "symptoms.csv"
	RelationsFile      = "relations.csv"
)

// Paths locates the asset files. Empty optional paths are skipped.
type Paths struct {
	Corpus         string // required
	SymptomVectors string // required
	WordVectors    string // required unless vectors come from a remote provider
	Dictionary     string
	Catalog        string
	Relations      string
}

// DirPaths returns the default file layout under dir.
func DirPaths(dir string) Paths {
	return Paths{
		Corpus:         filepath.Join(dir, CorpusFile),
		SymptomVectors: filepath.Join(dir, SymptomVectorsFile),
		WordVectors:    filepath.Join(dir, WordVectorsFile),
		Dictionary:     filepath.Join(dir, DictionaryFile),
		Catalog:        filepath.Join(dir, CatalogFile),
		Relations:      filepath.Join(dir, RelationsFile),
	}
}

// Bundle holds every loaded asset. Optional members are nil when not configured.
type Bundle struct {
	Corpus         *corpus.Corpus
	SymptomVectors *symptom.Vectors
	WordVectors    *WordVectors
	Dictionary     map[string]int
	Catalog        *symptom.Catalog
	Relations      *symptom.Relations
}

// Load reads the configured assets. Word vectors are restricted to corpus
// words, since only those are ever looked up.
func Load(p Paths) (*Bundle, error) {
	var b Bundle
	var err error

	if b.Corpus, err = loadFile(p.Corpus, ReadCorpus); err != nil {
		return nil, err
	}
	if b.SymptomVectors, err = loadFile(p.SymptomVectors, ReadSymptomVectors); err != nil {
		return nil, err
	}
	if p.WordVectors != "" {
		b.WordVectors, err = loadFile(p.WordVectors, func(r io.Reader) (*WordVectors, error) {
			return ReadWordVectors(r, b.Corpus.Contains)
		})
		if err != nil {
			return nil, err
		}
	}
	if p.Dictionary != "" {
		if b.Dictionary, err = loadFile(p.Dictionary, ReadDictionary); err != nil {
			return nil, err
		}
	}
	if p.Catalog != "" {
		if b.Catalog, err = loadFile(p.Catalog, ReadCatalog); err != nil {
			return nil, err
		}
	}
	if p.Relations != "" {
		if b.Relations, err = loadFile(p.Relations, ReadRelations); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

// Optional drops optional paths whose files do not exist, so a directory
// layout can omit them.
func (p Paths) Optional() Paths {
	for _, path := range []*string{&p.Dictionary, &p.Catalog, &p.Relations} {
		if *path == "" {
			continue
		}
		if _, err := os.Stat(*path); err != nil {
			*path = ""
		}
	}
	return p
}

func loadFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	if path == "" {
		return zero, fmt.Errorf("asset path is empty")
	}
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return v, nil
}
