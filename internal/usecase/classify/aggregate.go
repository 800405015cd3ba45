package classify

import (
	"github.com/kailas-cloud/symptomlog/internal/domain/classification"
)

// Aggregate folds per-sentence rankings into the document result.
// Primary holds every rank-1 symptom; secondary holds rank-2 symptoms that
// never ranked first.
func Aggregate(ref classification.Reference) classification.Result {
	primary := make(map[string]struct{})
	runners := make(map[string]struct{})

	for _, s := range ref {
		if top, ok := s.Ranking.Top(); ok {
			primary[top.Symptom] = struct{}{}
		}
		if second, ok := s.Ranking.Runner(); ok {
			runners[second.Symptom] = struct{}{}
		}
	}

	if len(primary) == 0 {
		return classification.NoSymptom(ref)
	}

	secondary := make([]string, 0, len(runners))
	for id := range runners {
		if _, dup := primary[id]; !dup {
			secondary = append(secondary, id)
		}
	}
	return classification.New(keys(primary), secondary, ref)
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
