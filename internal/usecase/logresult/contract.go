package logresult

import (
	"context"

	"github.com/kailas-cloud/symptomlog/internal/domain/classification"
	"github.com/kailas-cloud/symptomlog/internal/usecase/classify"
)

// Classifier identifies symptoms in a log entry.
type Classifier interface {
	Classify(ctx context.Context, req classify.Request) (classification.Result, error)
}
