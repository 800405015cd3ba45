package match

import (
	"reflect"
	"testing"
)

func TestRanking_Sort(t *testing.T) {
	r := Ranking{
		{Symptom: "b", Score: 0.7},
		{Symptom: "c", Score: 0.9},
		{Symptom: "a", Score: 0.7},
	}
	r.Sort()

	want := []string{"c", "a", "b"}
	if got := r.Symptoms(); !reflect.DeepEqual(got, want) {
		t.Fatalf("sorted symptoms = %v, want %v", got, want)
	}
}

func TestRanking_TopRunner(t *testing.T) {
	var empty Ranking
	if _, ok := empty.Top(); ok {
		t.Error("empty ranking must have no top")
	}

	single := Ranking{{Symptom: "a", Score: 0.9}}
	if m, ok := single.Top(); !ok || m.Symptom != "a" {
		t.Errorf("Top() = %v, %v", m, ok)
	}
	if _, ok := single.Runner(); ok {
		t.Error("single-entry ranking must have no runner-up")
	}

	two := Ranking{{Symptom: "a", Score: 0.9}, {Symptom: "b", Score: 0.6}}
	if m, ok := two.Runner(); !ok || m.Symptom != "b" {
		t.Errorf("Runner() = %v, %v", m, ok)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.12345, 0.123},
		{0.9996, 1},
		{0.5004, 0.5},
		{1, 1},
	}
	for _, tc := range tests {
		if got := Round(tc.in); got != tc.want {
			t.Errorf("Round(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
