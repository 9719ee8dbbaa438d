package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/scriptdex/internal/domain"
	"github.com/kailas-cloud/scriptdex/internal/domain/analysis"
	"github.com/kailas-cloud/scriptdex/internal/domain/diff"
	"github.com/kailas-cloud/scriptdex/internal/domain/resource"
	"github.com/kailas-cloud/scriptdex/internal/domain/search/match"
	logpkg "github.com/kailas-cloud/scriptdex/internal/logger"
	"github.com/kailas-cloud/scriptdex/internal/report"
	"github.com/kailas-cloud/scriptdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/scriptdex/internal/usecase/health"
)

const markdownContentType = "text/markdown; charset=utf-8"

// Catalog serves listings, bundles and resources.
type Catalog interface {
	Listing(ctx context.Context, tag string) ([]catalog.Entry, error)
	Bundle(ctx context.Context, name string) (catalog.Bundle, error)
	Resources(ctx context.Context) ([]resource.Resource, error)
	OpenResource(ctx context.Context, name string, kind resource.Kind) (resource.Resource, string, error)
}

// Searcher runs keyword search.
type Searcher interface {
	Search(ctx context.Context, query string) ([]match.Match, error)
}

// Analyzer analyzes example scripts.
type Analyzer interface {
	Analyze(ctx context.Context, name string) (analysis.Report, error)
}

// Comparator diffs two examples.
type Comparator interface {
	Compare(ctx context.Context, left, right string) (diff.Report, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements ServerInterface on top of the usecase services.
type Server struct {
	catalog       Catalog
	search        Searcher
	analysis      Analyzer
	compare       Comparator
	health        HealthChecker
	title         string
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server. title heads the example listing.
func NewServer(
	catalog Catalog,
	search Searcher,
	analysis Analyzer,
	compare Comparator,
	health HealthChecker,
	title string,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog:  catalog,
		search:   search,
		analysis: analysis,
		compare:  compare,
		health:   health,
		title:    title,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrExampleNotFound, http.StatusNotFound, ErrorResponseCodeExampleNotFound),
		sentinelHandler(domain.ErrScriptNotFound, http.StatusNotFound, ErrorResponseCodeScriptNotFound),
		sentinelHandler(domain.ErrResourceNotFound, http.StatusNotFound, ErrorResponseCodeResourceNotFound),
		sentinelHandler(domain.ErrInvalidResource, http.StatusBadRequest, ErrorResponseCodeInvalidResource),
		sentinelHandler(domain.ErrFileVanished, http.StatusConflict, ErrorResponseCodeFileVanished),
		sentinelHandler(domain.ErrCorpusUnavailable,
			http.StatusServiceUnavailable, ErrorResponseCodeCorpusUnavailable),
	}
	return s
}

// ListExamples handles GET /examples.
func (s *Server) ListExamples(w http.ResponseWriter, r *http.Request, params ListExamplesParams) {
	tag := ""
	if params.Tag != nil {
		tag = *params.Tag
	}

	entries, err := s.catalog.Listing(r.Context(), tag)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeMarkdown(w, http.StatusOK, report.Listing(s.title, tag, entries))
}

// GetExample handles GET /examples/{example}.
func (s *Server) GetExample(w http.ResponseWriter, r *http.Request, example string) {
	b, err := s.catalog.Bundle(r.Context(), example)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeMarkdown(w, http.StatusOK, report.Bundle(b))
}

// AnalyzeExample handles GET /examples/{example}/analysis.
func (s *Server) AnalyzeExample(w http.ResponseWriter, r *http.Request, example string) {
	a, err := s.analysis.Analyze(r.Context(), example)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeMarkdown(w, http.StatusOK, report.Analysis(a))
}

// SearchExamples handles GET /search.
func (s *Server) SearchExamples(w http.ResponseWriter, r *http.Request, params SearchExamplesParams) {
	matches, err := s.search.Search(r.Context(), params.Q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeMarkdown(w, http.StatusOK, report.Search(params.Q, matches))
}

// CompareExamples handles GET /compare.
func (s *Server) CompareExamples(w http.ResponseWriter, r *http.Request, params CompareExamplesParams) {
	d, err := s.compare.Compare(r.Context(), params.Left, params.Right)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeMarkdown(w, http.StatusOK, report.Diff(d))
}

// ListResources handles GET /resources.
func (s *Server) ListResources(w http.ResponseWriter, r *http.Request) {
	rs, err := s.catalog.Resources(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]Resource, len(rs))
	for i, res := range rs {
		items[i] = resourceToAPI(res)
	}
	writeJSON(w, http.StatusOK, ResourceListResponse{Items: items})
}

// ReadResource handles GET /resources/{example}/{kind}.
func (s *Server) ReadResource(w http.ResponseWriter, r *http.Request, example string, kind string) {
	k, err := resource.ParseKind(kind)
	if err != nil {
		s.handleDomainError(w, r, domain.NewExampleError(example, err))
		return
	}

	res, text, err := s.catalog.OpenResource(r.Context(), example, k)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", res.MIMEType+"; charset=utf-8")
	w.Header().Set("Content-Location", res.URI)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	rep := s.health.Check(r.Context())

	checks := make(map[string]HealthResponseChecks)
	for k, v := range rep.Checks {
		checks[k] = HealthResponseChecks(v)
	}

	httpStatus := http.StatusOK
	if rep.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: HealthResponseStatus(rep.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func resourceToAPI(r resource.Resource) Resource {
	return Resource{
		URI:         r.URI,
		Name:        r.Name,
		Description: r.Description,
		MimeType:    r.MIMEType,
		Example:     r.Example,
		Kind:        string(r.Kind),
	}
}

func writeMarkdown(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", markdownContentType)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

var sentinels = []error{
	domain.ErrExampleNotFound,
	domain.ErrScriptNotFound,
	domain.ErrResourceNotFound,
	domain.ErrInvalidResource,
	domain.ErrFileVanished,
	domain.ErrCorpusUnavailable,
}

// safeDomainMessage returns a client-facing message without exposing internals such as filesystem paths.
func safeDomainMessage(err error) string {
	var ee *domain.ExampleError
	if errors.As(err, &ee) {
		return ee.Error()
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		resp := ErrorResponse{Code: code, Message: msg}
		if ex := domain.ExampleOf(err); ex != "" {
			resp.Example = &ex
		}
		writeJSON(w, status, resp)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContextOr(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}
