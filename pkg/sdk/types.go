package symptomlog

// NoSymptomDetected is the single identified value reported by Analyze when
// no sentence matched a symptom.
const NoSymptomDetected = "No symptom detected"

// Match is one symptom scored against one sentence.
type Match struct {
	Symptom string  `json:"symptom"`
	Score   float64 `json:"score"` // rounded to three decimals
}

// Sentence is the evidence kept for one sentence.
type Sentence struct {
	Index   int      `json:"index"`
	Text    string   `json:"sentence"`
	Tokens  []string `json:"tokens"`
	Matches []Match  `json:"matches"` // best first
}

// Result is the outcome of classifying one text.
type Result struct {
	// Detected is false when no sentence matched any symptom.
	Detected bool `json:"detected"`
	// Primary holds symptoms that ranked first for at least one sentence.
	Primary []string `json:"primary"`
	// Secondary holds runner-up symptoms that never ranked first; nil when none.
	Secondary []string `json:"secondary"`
	// Sentences is the per-sentence evidence, in sentence order.
	Sentences []Sentence `json:"reference"`
}

// Report extends Result with display names and correlated targets.
type Report struct {
	Result

	Identified   []string `json:"identified_symptoms"`
	AlsoPossible []string `json:"also_possible"`
	Targets      []string `json:"targets"`
	TargetIDs    []string `json:"target_ids"`
}

// HealthStatus represents the aggregated health of external dependencies.
type HealthStatus struct {
	Status string            // "ok", "degraded"
	Checks map[string]string // component → "ok"/"error"
}
