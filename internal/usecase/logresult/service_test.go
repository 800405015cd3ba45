package logresult

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/classification"
	"github.com/kailas-cloud/symptomlog/internal/domain/symptom"
	"github.com/kailas-cloud/symptomlog/internal/usecase/classify"
)

// --- Mocks ---

type mockClassifier struct {
	res classification.Result
	err error
	got classify.Request
}

func (m *mockClassifier) Classify(_ context.Context, req classify.Request) (classification.Result, error) {
	m.got = req
	return m.res, m.err
}

func testCatalog(t *testing.T) *symptom.Catalog {
	t.Helper()
	c, err := symptom.NewCatalog(map[string]string{
		"S1": "Cafe-au-lait spots",
		"S2": "Freckling",
		"S3": "Learning disability",
		"C1": "Optic glioma",
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func testRelations(t *testing.T) *symptom.Relations {
	t.Helper()
	r, err := symptom.NewRelations(map[string]map[string]float64{
		"S1": {"S2": 0.8, "C1": 0.6, "S3": 0.1},
		"S2": {"S1": 0.8, "C9": 0.55},
	})
	if err != nil {
		t.Fatalf("relations: %v", err)
	}
	return r
}

// --- Tests ---

func TestAnalyze_Detected(t *testing.T) {
	cls := &mockClassifier{res: classification.New([]string{"S1"}, []string{"S3"}, classification.Reference{})}
	svc := New(cls, testCatalog(t), testRelations(t), DefaultMinCorrelation)

	rep, err := svc.Analyze(context.Background(), "spots on his back")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cls.got.Text != "spots on his back" || cls.got.Threshold != nil {
		t.Errorf("unexpected request: %+v", cls.got)
	}
	if !reflect.DeepEqual(rep.Identified, []string{"Cafe-au-lait spots"}) {
		t.Errorf("Identified = %v", rep.Identified)
	}
	if !reflect.DeepEqual(rep.AlsoPossible, []string{"Learning disability"}) {
		t.Errorf("AlsoPossible = %v", rep.AlsoPossible)
	}
	if !reflect.DeepEqual(rep.Targets, []string{"C1", "S2"}) {
		t.Errorf("Targets = %v", rep.Targets)
	}
	if !reflect.DeepEqual(rep.TargetNames, []string{"Freckling", "Optic glioma"}) {
		t.Errorf("TargetNames = %v", rep.TargetNames)
	}
}

func TestAnalyze_TargetsExcludeIdentified(t *testing.T) {
	cls := &mockClassifier{res: classification.New([]string{"S1", "S2"}, nil, classification.Reference{})}
	svc := New(cls, testCatalog(t), testRelations(t), 0.5)

	rep, err := svc.Analyze(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// C9 is not catalogued, so its id stands in for the name.
	if !reflect.DeepEqual(rep.Targets, []string{"C1", "C9"}) {
		t.Errorf("Targets = %v", rep.Targets)
	}
	if !reflect.DeepEqual(rep.TargetNames, []string{"C9", "Optic glioma"}) {
		t.Errorf("TargetNames = %v", rep.TargetNames)
	}
	if rep.AlsoPossible != nil {
		t.Errorf("expected nil AlsoPossible, got %v", rep.AlsoPossible)
	}
}

func TestAnalyze_NoSymptom(t *testing.T) {
	ref := classification.Reference{0: {Index: 0, Text: "he is happy today"}}
	cls := &mockClassifier{res: classification.NoSymptom(ref)}
	svc := New(cls, testCatalog(t), testRelations(t), DefaultMinCorrelation)

	rep, err := svc.Analyze(context.Background(), "He is happy today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(rep.Identified, []string{classification.NoSymptomDetected}) {
		t.Errorf("Identified = %v", rep.Identified)
	}
	if rep.AlsoPossible != nil {
		t.Errorf("expected nil AlsoPossible, got %v", rep.AlsoPossible)
	}
	if len(rep.Targets) != 0 || rep.Targets == nil {
		t.Errorf("expected empty non-nil Targets, got %#v", rep.Targets)
	}
	if len(rep.Result.Reference()) != 1 {
		t.Errorf("expected reference to be kept, got %v", rep.Result.Reference())
	}
}

func TestAnalyze_WithoutTables(t *testing.T) {
	cls := &mockClassifier{res: classification.New([]string{"S2", "S1"}, nil, classification.Reference{})}
	svc := New(cls, nil, nil, DefaultMinCorrelation)

	rep, err := svc.Analyze(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(rep.Identified, []string{"S1", "S2"}) {
		t.Errorf("Identified = %v", rep.Identified)
	}
	if len(rep.Targets) != 0 {
		t.Errorf("expected no targets, got %v", rep.Targets)
	}
}

func TestAnalyze_ClassifierError(t *testing.T) {
	cls := &mockClassifier{err: domain.ErrInvalidInput}
	svc := New(cls, nil, nil, DefaultMinCorrelation)

	_, err := svc.Analyze(context.Background(), "x")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
