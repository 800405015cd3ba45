package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/symptomlog/internal/domain"
	"github.com/kailas-cloud/symptomlog/internal/domain/classification"
	"github.com/kailas-cloud/symptomlog/internal/domain/match"
	"github.com/kailas-cloud/symptomlog/internal/metrics"
	"github.com/kailas-cloud/symptomlog/internal/textproc"
	classifyuc "github.com/kailas-cloud/symptomlog/internal/usecase/classify"
	healthuc "github.com/kailas-cloud/symptomlog/internal/usecase/health"
	logresultuc "github.com/kailas-cloud/symptomlog/internal/usecase/logresult"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Classifier runs the symptom pipeline.
type Classifier interface {
	Classify(ctx context.Context, req classifyuc.Request) (classification.Result, error)
}

// Analyzer produces the /logresult report.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (logresultuc.Report, error)
}

// HealthChecker reports dependency health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the HTTP API.
type Server struct {
	classifier     Classifier
	analyzer       Analyzer
	health         HealthChecker
	requestTimeout time.Duration
	logger         *zap.Logger
	errorHandlers  []errorHandler
}

// NewServer creates an HTTP API server. requestTimeout <= 0 disables the
// per-request classification deadline.
func NewServer(
	classifier Classifier,
	analyzer Analyzer,
	health HealthChecker,
	requestTimeout time.Duration,
	logger *zap.Logger,
) *Server {
	s := &Server{
		classifier:     classifier,
		analyzer:       analyzer,
		health:         health,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
	// Order matters: a deadline hit inside the speller is a timeout first.
	s.errorHandlers = []errorHandler{
		sentinelHandler(context.DeadlineExceeded, http.StatusGatewayTimeout, CodeTimeout),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, CodeInvalidInput),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, CodeEmbeddingProviderError),
		sentinelHandler(domain.ErrDictionaryUnavailable, http.StatusServiceUnavailable, CodeDictionaryUnavailable),
		sentinelHandler(domain.ErrMissingDependency, http.StatusServiceUnavailable, CodeMissingDependency),
		sentinelHandler(domain.ErrVectorDimMismatch, http.StatusInternalServerError, CodeVectorDimMismatch),
	}
	return s
}

// Router builds the chi router with the full middleware stack.
func (s *Server) Router(apiKeys []string) http.Handler {
	r := chi.NewRouter()
	r.Use(JSONRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEventMiddleware(s.logger))
	r.Use(BearerAuthMiddleware(apiKeys))
	r.Use(metrics.Middleware())

	r.Post("/logresult", s.LogResult)
	r.Post("/api/v1/classify", s.Classify)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeBadRequest, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})
	return r
}

// LogResult handles POST /logresult. The body is either [{"log": "..."}]
// or {"log": "..."}.
func (s *Server) LogResult(w http.ResponseWriter, r *http.Request) {
	entry, err := decodeLogEntry(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	text, err := textproc.Input(entry.Log)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	ctx, cancel := s.withTimeout(r.Context())
	defer cancel()

	rep, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LogResultResponse{
		IdentifiedSymptoms: rep.Identified,
		AlsoPossible:       rep.AlsoPossible,
		Targets:            rep.TargetNames,
		TargetIDs:          rep.Targets,
		Reference:          referenceToAPI(rep.Result.Reference()),
	})
}

// Classify handles POST /api/v1/classify.
func (s *Server) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	text, err := textproc.Input(req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	ctx, cancel := s.withTimeout(r.Context())
	defer cancel()

	res, err := s.classifier.Classify(ctx, classifyuc.Request{Text: text, Threshold: req.Threshold})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	primary := res.Primary()
	if primary == nil {
		primary = []string{}
	}
	secondary, _ := res.Secondary()

	writeJSON(w, http.StatusOK, ClassifyResponse{
		Detected:  res.Detected(),
		Primary:   primary,
		Secondary: secondary,
		Reference: referenceToAPI(res.Reference()),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.requestTimeout)
}

// decodeLogEntry accepts `[{"log": ...}]` and a bare `{"log": ...}`.
func decodeLogEntry(body io.Reader) (LogEntry, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return LogEntry{}, fmt.Errorf("read body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return LogEntry{}, errors.New("empty body")
	}

	if raw[0] == '[' {
		var entries []LogEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return LogEntry{}, fmt.Errorf("decode: %w", err)
		}
		if len(entries) == 0 {
			return LogEntry{}, errors.New("no log entries")
		}
		return entries[0], nil
	}

	var entry LogEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return LogEntry{}, fmt.Errorf("decode: %w", err)
	}
	return entry, nil
}

func referenceToAPI(ref classification.Reference) []SentenceReference {
	out := make([]SentenceReference, 0, len(ref))
	for _, i := range ref.Indices() {
		sent := ref[i]
		tokens := sent.Tokens
		if tokens == nil {
			tokens = []string{}
		}
		matches := []match.Match(sent.Ranking)
		if matches == nil {
			matches = []match.Match{}
		}
		out = append(out, SentenceReference{
			Index:    sent.Index,
			Sentence: sent.Text,
			Tokens:   tokens,
			Matches:  matches,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "classification timed out"
	}
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrEmbeddingProviderError,
		domain.ErrDictionaryUnavailable,
		domain.ErrMissingDependency,
		domain.ErrVectorDimMismatch,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
