package symptom

import (
	"fmt"
	"sort"
)

// Relations is a symptom-to-condition correlation table.
type Relations struct {
	corr map[string]map[string]float64
}

// NewRelations builds the table from source -> target -> correlation.
func NewRelations(corr map[string]map[string]float64) (*Relations, error) {
	r := &Relations{corr: make(map[string]map[string]float64, len(corr))}
	for src, row := range corr {
		if src == "" {
			return nil, fmt.Errorf("relations: empty source id")
		}
		cp := make(map[string]float64, len(row))
		for dst, v := range row {
			if v < -1 || v > 1 {
				return nil, fmt.Errorf("relations: %s -> %s correlation %v out of [-1, 1]", src, dst, v)
			}
			cp[dst] = v
		}
		r.corr[src] = cp
	}
	return r, nil
}

// Targets returns the ids whose correlation with any of ids is at least
// minStrength, excluding ids themselves. The result is sorted.
func (r *Relations) Targets(ids []string, minStrength float64) []string {
	if r == nil {
		return nil
	}
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	found := make(map[string]struct{})
	for _, id := range ids {
		for dst, v := range r.corr[id] {
			if v < minStrength {
				continue
			}
			if _, self := known[dst]; self {
				continue
			}
			found[dst] = struct{}{}
		}
	}
	out := make([]string, 0, len(found))
	for id := range found {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of source symptoms.
func (r *Relations) Len() int { return len(r.corr) }
