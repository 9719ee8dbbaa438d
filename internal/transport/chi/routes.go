package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// Route patterns of the HTTP API.
const (
	RouteExamples  = "/examples"
	RouteExample   = "/examples/{example}"
	RouteAnalysis  = "/examples/{example}/analysis"
	RouteSearch    = "/search"
	RouteCompare   = "/compare"
	RouteResources = "/resources"
	RouteResource  = "/resources/{example}/{kind}"
	RouteHealth    = "/health"
	RouteMetrics   = "/metrics"
)

// Operations maps every route pattern to the corpus operation it serves.
// Used as the operation label of request metrics.
var Operations = map[string]string{
	RouteExamples:  "list",
	RouteExample:   "render",
	RouteAnalysis:  "analyze",
	RouteSearch:    "search",
	RouteCompare:   "compare",
	RouteResources: "resources",
	RouteResource:  "read_resource",
	RouteHealth:    "health",
	RouteMetrics:   "metrics",
}

// ServerInterface lists every HTTP operation.
type ServerInterface interface {
	// (GET /examples)
	ListExamples(w http.ResponseWriter, r *http.Request, params ListExamplesParams)
	// (GET /examples/{example})
	GetExample(w http.ResponseWriter, r *http.Request, example string)
	// (GET /examples/{example}/analysis)
	AnalyzeExample(w http.ResponseWriter, r *http.Request, example string)
	// (GET /search)
	SearchExamples(w http.ResponseWriter, r *http.Request, params SearchExamplesParams)
	// (GET /compare)
	CompareExamples(w http.ResponseWriter, r *http.Request, params CompareExamplesParams)
	// (GET /resources)
	ListResources(w http.ResponseWriter, r *http.Request)
	// (GET /resources/{example}/{kind})
	ReadResource(w http.ResponseWriter, r *http.Request, example string, kind string)
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
}

// InvalidParamFormatError reports a parameter that could not be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// RequiredParamError reports a missing required query parameter.
type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

// ServerOptions configures HandlerWithOptions.
type ServerOptions struct {
	BaseRouter       chi.Router
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerWithOptions mounts every operation of si on options.BaseRouter.
func HandlerWithOptions(si ServerInterface, options ServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, err.Error())
		}
	}
	b := binder{si: si, onError: options.ErrorHandlerFunc}

	r.Get(RouteExamples, b.listExamples)
	r.Get(RouteExample, b.getExample)
	r.Get(RouteAnalysis, b.analyzeExample)
	r.Get(RouteSearch, b.searchExamples)
	r.Get(RouteCompare, b.compareExamples)
	r.Get(RouteResources, si.ListResources)
	r.Get(RouteResource, b.readResource)
	r.Get(RouteHealth, si.HealthCheck)
	r.Get(RouteMetrics, si.Metrics)
	return r
}

// binder decodes path and query parameters before calling the ServerInterface.
type binder struct {
	si      ServerInterface
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

func (b binder) pathParam(r *http.Request, name string, dest *string) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false})
	if err != nil {
		return &InvalidParamFormatError{ParamName: name, Err: err}
	}
	return nil
}

func (b binder) queryParam(r *http.Request, name string, required bool, dest any) error {
	if required && !r.URL.Query().Has(name) {
		return &RequiredParamError{ParamName: name}
	}
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest); err != nil {
		return &InvalidParamFormatError{ParamName: name, Err: err}
	}
	return nil
}

func (b binder) listExamples(w http.ResponseWriter, r *http.Request) {
	var params ListExamplesParams
	if err := b.queryParam(r, "tag", false, &params.Tag); err != nil {
		b.onError(w, r, err)
		return
	}
	b.si.ListExamples(w, r, params)
}

func (b binder) getExample(w http.ResponseWriter, r *http.Request) {
	var example string
	if err := b.pathParam(r, "example", &example); err != nil {
		b.onError(w, r, err)
		return
	}
	b.si.GetExample(w, r, example)
}

func (b binder) analyzeExample(w http.ResponseWriter, r *http.Request) {
	var example string
	if err := b.pathParam(r, "example", &example); err != nil {
		b.onError(w, r, err)
		return
	}
	b.si.AnalyzeExample(w, r, example)
}

func (b binder) searchExamples(w http.ResponseWriter, r *http.Request) {
	var params SearchExamplesParams
	if err := b.queryParam(r, "q", true, &params.Q); err != nil {
		b.onError(w, r, err)
		return
	}
	b.si.SearchExamples(w, r, params)
}

func (b binder) compareExamples(w http.ResponseWriter, r *http.Request) {
	var params CompareExamplesParams
	if err := b.queryParam(r, "left", true, &params.Left); err != nil {
		b.onError(w, r, err)
		return
	}
	if err := b.queryParam(r, "right", true, &params.Right); err != nil {
		b.onError(w, r, err)
		return
	}
	b.si.CompareExamples(w, r, params)
}

func (b binder) readResource(w http.ResponseWriter, r *http.Request) {
	var example, kind string
	if err := b.pathParam(r, "example", &example); err != nil {
		b.onError(w, r, err)
		return
	}
	if err := b.pathParam(r, "kind", &kind); err != nil {
		b.onError(w, r, err)
		return
	}
	b.si.ReadResource(w, r, example, kind)
}
