package classification

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/symptomlog/internal/domain/match"
)

func TestNew_SortsAndCopies(t *testing.T) {
	primary := []string{"fatigue", "skin_spot"}
	r := New(primary, []string{"rash", "cough"}, Reference{})

	if !r.Detected() {
		t.Fatal("expected detected result")
	}
	if got := r.Primary(); !reflect.DeepEqual(got, []string{"fatigue", "skin_spot"}) {
		t.Errorf("Primary() = %v", got)
	}
	sec, ok := r.Secondary()
	if !ok || !reflect.DeepEqual(sec, []string{"cough", "rash"}) {
		t.Errorf("Secondary() = %v, %v", sec, ok)
	}

	primary[0] = "mutated"
	if r.Primary()[0] != "fatigue" {
		t.Error("result must not alias caller slices")
	}
}

func TestNew_EmptySecondaryIsAbsent(t *testing.T) {
	r := New([]string{"a"}, []string{}, Reference{})
	if sec, ok := r.Secondary(); ok || sec != nil {
		t.Errorf("expected absent secondary, got %v, %v", sec, ok)
	}
}

func TestNoSymptom(t *testing.T) {
	ref := Reference{0: {Index: 0, Text: "he is happy today"}}
	r := NoSymptom(ref)

	if r.Detected() {
		t.Error("expected not detected")
	}
	if len(r.Primary()) != 0 {
		t.Errorf("expected empty primary, got %v", r.Primary())
	}
	if _, ok := r.Secondary(); ok {
		t.Error("expected absent secondary")
	}
	if len(r.Reference()) != 1 {
		t.Errorf("expected reference with one entry, got %d", len(r.Reference()))
	}
}

func TestReference_Indices(t *testing.T) {
	ref := Reference{
		2: {Index: 2},
		0: {Index: 0, Ranking: match.Ranking{{Symptom: "a", Score: 0.9}}},
		1: {Index: 1},
	}
	if got := ref.Indices(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("Indices() = %v", got)
	}
}
