package scriptdex

import "github.com/kailas-cloud/scriptdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrCorpusUnavailable = domain.ErrCorpusUnavailable
	ErrExampleNotFound   = domain.ErrExampleNotFound
	ErrScriptNotFound    = domain.ErrScriptNotFound
	ErrFileVanished      = domain.ErrFileVanished
	ErrResourceNotFound  = domain.ErrResourceNotFound
	ErrInvalidResource   = domain.ErrInvalidResource
)

// ExampleError names the example (and file) behind a failure. Use errors.As() to inspect.
type ExampleError = domain.ExampleError
