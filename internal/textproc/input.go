package textproc

import (
	"fmt"

	"github.com/kailas-cloud/symptomlog/internal/domain"
)

// Input extracts classifiable text from a loosely typed value, such as a
// decoded JSON field. Anything that is not a string is rejected with
// domain.ErrInvalidInput.
func Input(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case *string:
		if t == nil {
			return "", fmt.Errorf("nil text: %w", domain.ErrInvalidInput)
		}
		return *t, nil
	case nil:
		return "", fmt.Errorf("no text: %w", domain.ErrInvalidInput)
	default:
		return "", fmt.Errorf("text must be a string, got %T: %w", v, domain.ErrInvalidInput)
	}
}
