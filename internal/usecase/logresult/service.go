// Package logresult turns a caregiver log entry into the identified symptoms
// and the conditions that correlate with them.
package logresult

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/symptomlog/internal/domain/classification"
	"github.com/kailas-cloud/symptomlog/internal/domain/symptom"
	"github.com/kailas-cloud/symptomlog/internal/usecase/classify"
)

// DefaultMinCorrelation is the correlation a target needs to be reported.
const DefaultMinCorrelation = 0.5

// Report is the outcome of analyzing one log entry.
type Report struct {
	Result classification.Result

	// Identified holds display names of the primary symptoms, or the single
	// NoSymptomDetected value when nothing matched.
	Identified []string
	// AlsoPossible holds display names of secondary symptoms; nil when absent.
	AlsoPossible []string
	// Targets holds correlated condition ids and TargetNames their display names.
	Targets     []string
	TargetNames []string
}

// Service analyzes log entries.
type Service struct {
	classifier     Classifier
	catalog        *symptom.Catalog
	relations      *symptom.Relations
	minCorrelation float64
}

// New creates a log analysis service. catalog and relations may be nil:
// without a catalog ids are reported as names, without relations no targets
// are computed.
func New(
	classifier Classifier, catalog *symptom.Catalog,
	relations *symptom.Relations, minCorrelation float64,
) *Service {
	return &Service{
		classifier:     classifier,
		catalog:        catalog,
		relations:      relations,
		minCorrelation: minCorrelation,
	}
}

// Analyze classifies text and resolves names and correlated targets.
func (s *Service) Analyze(ctx context.Context, text string) (Report, error) {
	res, err := s.classifier.Classify(ctx, classify.Request{Text: text})
	if err != nil {
		return Report{}, fmt.Errorf("classify: %w", err)
	}

	rep := Report{Result: res}
	if !res.Detected() {
		rep.Identified = []string{classification.NoSymptomDetected}
		rep.Targets = []string{}
		rep.TargetNames = []string{}
		return rep, nil
	}

	rep.Identified = s.names(res.Primary())
	if sec, ok := res.Secondary(); ok {
		rep.AlsoPossible = s.names(sec)
	}

	rep.Targets = []string{}
	if s.relations != nil {
		rep.Targets = s.relations.Targets(res.Primary(), s.minCorrelation)
	}
	rep.TargetNames = s.names(rep.Targets)
	return rep, nil
}

func (s *Service) names(ids []string) []string {
	if s.catalog == nil {
		out := make([]string, len(ids))
		copy(out, ids)
		return out
	}
	return s.catalog.Names(ids)
}
