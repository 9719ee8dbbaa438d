package chi

// ErrorResponseCode is the machine-readable error code of an ErrorResponse.
type ErrorResponseCode string

// Error codes.
const (
	ErrorResponseCodeBadRequest        ErrorResponseCode = "bad_request"
	ErrorResponseCodeUnauthorized      ErrorResponseCode = "unauthorized"
	ErrorResponseCodeExampleNotFound   ErrorResponseCode = "example_not_found"
	ErrorResponseCodeScriptNotFound    ErrorResponseCode = "script_not_found"
	ErrorResponseCodeResourceNotFound  ErrorResponseCode = "resource_not_found"
	ErrorResponseCodeInvalidResource   ErrorResponseCode = "invalid_resource"
	ErrorResponseCodeFileVanished      ErrorResponseCode = "file_vanished"
	ErrorResponseCodeCorpusUnavailable ErrorResponseCode = "corpus_unavailable"
	ErrorResponseCodeInternalError     ErrorResponseCode = "internal_error"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
	Example *string           `json:"example,omitempty"`
}

// HealthResponseStatus is the aggregated health status.
type HealthResponseStatus string

// HealthResponseChecks is the outcome of one health check.
type HealthResponseChecks string

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status HealthResponseStatus            `json:"status"`
	Checks map[string]HealthResponseChecks `json:"checks"`
}

// Resource is one entry of GET /resources.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
	Example     string `json:"example"`
	Kind        string `json:"kind"`
}

// ResourceListResponse is the body of GET /resources.
type ResourceListResponse struct {
	Items []Resource `json:"items"`
}

// ListExamplesParams are the query parameters of GET /examples.
type ListExamplesParams struct {
	Tag *string `form:"tag,omitempty" json:"tag,omitempty"`
}

// SearchExamplesParams are the query parameters of GET /search.
type SearchExamplesParams struct {
	Q string `form:"q" json:"q"`
}

// CompareExamplesParams are the query parameters of GET /compare.
type CompareExamplesParams struct {
	Left  string `form:"left" json:"left"`
	Right string `form:"right" json:"right"`
}
