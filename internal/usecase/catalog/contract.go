package catalog

import (
	"context"

	"github.com/kailas-cloud/scriptdex/internal/domain/example"
)

// Repository defines the storage contract for the example catalog.
type Repository interface {
	List(ctx context.Context) ([]example.Example, error)
	Get(ctx context.Context, name string) (example.Example, error)
	FileReader
}

// FileReader reads direct files of an example as UTF-8 text.
type FileReader interface {
	ReadText(ctx context.Context, name, file string) (string, error)
}
