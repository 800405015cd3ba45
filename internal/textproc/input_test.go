package textproc

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/symptomlog/internal/domain"
)

func TestInput(t *testing.T) {
	s := "a log"

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "text", "text"},
		{"string pointer", &s, "a log"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Input(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInput_Invalid(t *testing.T) {
	var nilStr *string
	for _, v := range []any{nil, nilStr, 42, 3.14, true, []string{"x"}, map[string]any{}} {
		if _, err := Input(v); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("value %#v: expected ErrInvalidInput, got %v", v, err)
		}
	}
}
