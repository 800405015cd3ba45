package chi

import "github.com/kailas-cloud/symptomlog/internal/domain/match"

// ErrorCode identifies an API error class.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest             ErrorCode = "bad_request"
	CodeInvalidInput           ErrorCode = "invalid_input"
	CodeUnauthorized           ErrorCode = "unauthorized"
	CodeDictionaryUnavailable  ErrorCode = "dictionary_unavailable"
	CodeMissingDependency      ErrorCode = "missing_dependency"
	CodeEmbeddingProviderError ErrorCode = "embedding_provider_error"
	CodeVectorDimMismatch      ErrorCode = "vector_dim_mismatch"
	CodeTimeout                ErrorCode = "timeout"
	CodeInternalError          ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// LogEntry is one element of a POST /logresult body.
type LogEntry struct {
	Log any `json:"log"`
}

// LogResultResponse is the body of POST /logresult.
type LogResultResponse struct {
	IdentifiedSymptoms []string            `json:"identified_symptoms"`
	AlsoPossible       []string            `json:"also_possible"`
	Targets            []string            `json:"targets"`
	TargetIDs          []string            `json:"target_ids"`
	Reference          []SentenceReference `json:"reference"`
}

// ClassifyRequest is the body of POST /api/v1/classify.
type ClassifyRequest struct {
	Text      any      `json:"text"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// ClassifyResponse is the body of POST /api/v1/classify.
type ClassifyResponse struct {
	Detected  bool                `json:"detected"`
	Primary   []string            `json:"primary"`
	Secondary []string            `json:"secondary"`
	Reference []SentenceReference `json:"reference"`
}

// SentenceReference is the per-sentence evidence of a classification.
type SentenceReference struct {
	Index    int           `json:"index"`
	Sentence string        `json:"sentence"`
	Tokens   []string      `json:"tokens"`
	Matches  []match.Match `json:"matches"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
