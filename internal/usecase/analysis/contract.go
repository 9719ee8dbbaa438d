package analysis

import (
	"context"

	"github.com/kailas-cloud/scriptdex/internal/domain/example"
)

// Repository defines the storage contract for script analysis.
type Repository interface {
	// Open resolves an existing directory even when it holds no script.
	Open(ctx context.Context, name string) (example.Example, error)
	ReadText(ctx context.Context, name, file string) (string, error)
}
