package symptomlog

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const testAssetDir = "../../internal/repository/assets/testdata"

func inMemoryOptions() []Option {
	return []Option{
		WithCorpus([]string{"freckle", "tired"}),
		WithWordVectors(map[string][]float32{
			"freckle": {1, 0},
			"tired":   {0, 1},
		}),
		WithSymptomVectors(map[string][]float32{
			"skin_spot": {1, 0},
			"fatigue":   {0, 1},
		}),
	}
}

func TestNew_MissingTables(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"nothing", nil, "corpus"},
		{"no symptoms", []Option{WithCorpus([]string{"a"})}, "symptom vectors"},
		{"no words", []Option{
			WithCorpus([]string{"a"}),
			WithSymptomVectors(map[string][]float32{"s": {1}}),
		}, "word vectors"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts...)
			if !errors.Is(err, ErrMissingDependency) {
				t.Fatalf("expected ErrMissingDependency, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestNew_InvalidThreshold(t *testing.T) {
	_, err := New(append(inMemoryOptions(), WithThreshold(1.5))...)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNew_MismatchedSymptomVectors(t *testing.T) {
	_, err := New(
		WithCorpus([]string{"a"}),
		WithWordVectors(map[string][]float32{"a": {1}}),
		WithSymptomVectors(map[string][]float32{"x": {1, 0}, "y": {1}}),
	)
	if !errors.Is(err, ErrVectorDimMismatch) {
		t.Fatalf("expected ErrVectorDimMismatch, got %v", err)
	}
}

func TestClient_Classify(t *testing.T) {
	client, err := New(inMemoryOptions()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := client.Classify(context.Background(), "I have freckles and I feel tired.")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !res.Detected {
		t.Fatal("expected a detection")
	}
	if !reflect.DeepEqual(res.Primary, []string{"fatigue", "skin_spot"}) {
		t.Errorf("Primary = %v", res.Primary)
	}
	if res.Secondary != nil {
		t.Errorf("Secondary = %v, want nil", res.Secondary)
	}
	if len(res.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(res.Sentences))
	}
	first := res.Sentences[0]
	if first.Text != "i have freckles." || !reflect.DeepEqual(first.Tokens, []string{"freckle"}) {
		t.Errorf("unexpected first sentence %+v", first)
	}
	if !reflect.DeepEqual(first.Matches, []Match{{Symptom: "skin_spot", Score: 1}}) {
		t.Errorf("unexpected matches %+v", first.Matches)
	}
}

func TestClient_Classify_NoSymptom(t *testing.T) {
	client, err := New(inMemoryOptions()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := client.Classify(context.Background(), "He is happy today")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Detected || len(res.Primary) != 0 || res.Secondary != nil {
		t.Errorf("expected no detection, got %+v", res)
	}
	if len(res.Sentences) != 1 || len(res.Sentences[0].Matches) != 0 {
		t.Errorf("reference must still list the sentence: %+v", res.Sentences)
	}
}

func TestClient_ClassifyWithThreshold(t *testing.T) {
	client, err := New(inMemoryOptions()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := client.ClassifyWithThreshold(context.Background(), "I have freckles.", 1)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Detected {
		t.Error("a score of 1 never exceeds a threshold of 1")
	}

	_, err = client.ClassifyWithThreshold(context.Background(), "I have freckles.", -2)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClient_ClassifyValue(t *testing.T) {
	client, err := New(inMemoryOptions()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, v := range []any{nil, 42, []string{"x"}} {
		if _, err := client.ClassifyValue(context.Background(), v); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%v: expected ErrInvalidInput, got %v", v, err)
		}
	}
	res, err := client.ClassifyValue(context.Background(), "I feel tired.")
	if err != nil {
		t.Fatalf("ClassifyValue: %v", err)
	}
	if !reflect.DeepEqual(res.Primary, []string{"fatigue"}) {
		t.Errorf("Primary = %v", res.Primary)
	}
}

func TestClient_WithoutSentenceBreak(t *testing.T) {
	client, err := New(append(inMemoryOptions(), WithoutSentenceBreak())...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := client.Classify(context.Background(), "freckles and tired")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(res.Sentences) != 1 {
		t.Fatalf("expected one sentence, got %d", len(res.Sentences))
	}
	// mean of (1,0) and (0,1) is ~0.707 to both symptoms
	if got := res.Sentences[0].Matches; len(got) != 2 || got[0].Score != 0.707 || got[0].Symptom != "fatigue" {
		t.Errorf("unexpected matches %+v", got)
	}
	if !reflect.DeepEqual(res.Primary, []string{"fatigue"}) || !reflect.DeepEqual(res.Secondary, []string{"skin_spot"}) {
		t.Errorf("Primary = %v, Secondary = %v", res.Primary, res.Secondary)
	}
}

func TestClient_WordVectorLookup(t *testing.T) {
	var calls []string
	lookup := WordVectorLookupFunc(func(_ context.Context, word string) ([]float32, error) {
		calls = append(calls, word)
		if word == "freckle" {
			return []float32{1, 0}, nil
		}
		return nil, nil
	})

	client, err := New(
		WithCorpus([]string{"freckle", "tired"}),
		WithSymptomVectors(map[string][]float32{"skin_spot": {1, 0}, "fatigue": {0, 1}}),
		WithWordVectorLookup(lookup),
		WithWorkers(1),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := client.Classify(context.Background(), "I feel tired. I have freckles.")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !reflect.DeepEqual(res.Primary, []string{"skin_spot"}) {
		t.Errorf("Primary = %v", res.Primary)
	}
	if len(calls) != 2 {
		t.Errorf("expected 2 lookups, got %v", calls)
	}

	if h := client.Health(context.Background()); h.Status != "ok" {
		t.Errorf("Health = %+v", h)
	}
}

func TestClient_WordVectorLookup_ProviderError(t *testing.T) {
	lookup := WordVectorLookupFunc(func(_ context.Context, _ string) ([]float32, error) {
		return nil, ErrEmbeddingProviderError
	})
	client, err := New(
		WithCorpus([]string{"tired"}),
		WithSymptomVectors(map[string][]float32{"fatigue": {0, 1}}),
		WithWordVectorLookup(lookup),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.Classify(context.Background(), "I feel tired.")
	if !errors.Is(err, ErrEmbeddingProviderError) {
		t.Fatalf("expected ErrEmbeddingProviderError, got %v", err)
	}
}

type checkedLookup struct {
	err error
}

func (c *checkedLookup) Lookup(_ context.Context, _ string) ([]float32, error) {
	return nil, ErrWordNotFound
}

func (c *checkedLookup) HealthCheck(_ context.Context) error { return c.err }

func TestClient_Health(t *testing.T) {
	lookup := &checkedLookup{err: errors.New("down")}
	client, err := New(
		WithCorpus([]string{"tired"}),
		WithSymptomVectors(map[string][]float32{"fatigue": {0, 1}}),
		WithWordVectorLookup(lookup),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	h := client.Health(context.Background())
	if h.Status != "degraded" || h.Checks["word_vectors"] != "error" {
		t.Errorf("Health = %+v", h)
	}

	lookup.err = nil
	if h := client.Health(context.Background()); h.Status != "ok" {
		t.Errorf("Health = %+v", h)
	}
}

func TestClient_AssetDir(t *testing.T) {
	client, err := New(WithAssetDir(testAssetDir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rep, err := client.Analyze(context.Background(), "I have freckels and I feel tired.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !reflect.DeepEqual(rep.Primary, []string{"fatigue", "skin_spot"}) {
		t.Errorf("Primary = %v", rep.Primary)
	}
	if !reflect.DeepEqual(rep.Identified, []string{"Cafe-au-lait spots", "Fatigue"}) {
		t.Errorf("Identified = %v", rep.Identified)
	}
	if !reflect.DeepEqual(rep.TargetIDs, []string{"optic_glioma", "pain"}) {
		t.Errorf("TargetIDs = %v", rep.TargetIDs)
	}
	if !reflect.DeepEqual(rep.Targets, []string{"Headache", "optic_glioma"}) {
		t.Errorf("Targets = %v", rep.Targets)
	}
}

func TestClient_Analyze_NoSymptom(t *testing.T) {
	client, err := New(WithAssetDir(testAssetDir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rep, err := client.Analyze(context.Background(), "He is happy today")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !reflect.DeepEqual(rep.Identified, []string{NoSymptomDetected}) {
		t.Errorf("Identified = %v", rep.Identified)
	}
	if rep.AlsoPossible != nil || len(rep.Targets) != 0 {
		t.Errorf("unexpected report %+v", rep)
	}
}

func TestClient_AssetDirMissing(t *testing.T) {
	if _, err := New(WithAssetDir(t.TempDir())); err == nil {
		t.Fatal("expected error for empty asset directory")
	}
}

func TestClient_Prometheus(t *testing.T) {
	reg := prometheus.NewRegistry()

	client, err := New(append(inMemoryOptions(), WithPrometheus(reg), WithLogger(slog.Default()))...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// A second client on the same registerer reuses the collectors.
	if _, err := New(append(inMemoryOptions(), WithPrometheus(reg))...); err != nil {
		t.Fatalf("second New: %v", err)
	}

	ctx := context.Background()
	_, _ = client.Classify(ctx, "I have freckles.")
	_, _ = client.Classify(ctx, "He is happy today")
	_, _ = client.ClassifyWithThreshold(ctx, "x", 5)

	m := client.obs.metrics
	if got := testutil.ToFloat64(m.operations.WithLabelValues("classify", "ok")); got != 2 {
		t.Errorf("ok operations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("classify", "error")); got != 1 {
		t.Errorf("error operations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("detected")); got != 1 {
		t.Errorf("detected = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("none")); got != 1 {
		t.Errorf("none = %v, want 1", got)
	}
}

func TestRegisterOrReuse_IncompatibleType(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_total", Help: "h"})
	if err := reg.Register(counter); err != nil {
		t.Fatalf("register: %v", err)
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "dup_total", Help: "h"}, nil)
	if err := registerOrReuse(reg, &vec); err == nil {
		t.Fatal("expected error for incompatible collector")
	}
}
