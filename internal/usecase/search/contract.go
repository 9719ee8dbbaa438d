package search

import (
	"context"

	"github.com/kailas-cloud/scriptdex/internal/domain/example"
)

// Repository defines the storage contract for keyword search.
type Repository interface {
	List(ctx context.Context) ([]example.Example, error)
	ReadText(ctx context.Context, name, file string) (string, error)
}
