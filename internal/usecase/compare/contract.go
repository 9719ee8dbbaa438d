package compare

import (
	"context"

	"github.com/kailas-cloud/scriptdex/internal/domain/example"
)

// Repository defines the storage contract for example comparison.
type Repository interface {
	Get(ctx context.Context, name string) (example.Example, error)
	ReadText(ctx context.Context, name, file string) (string, error)
}
