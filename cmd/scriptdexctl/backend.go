package main

import (
	"context"

	"github.com/kailas-cloud/scriptdex"
)

// backend answers corpus queries. *scriptdex.Client serves it in-process, remoteClient over HTTP.
type backend interface {
	Listing(ctx context.Context, tag string) (string, error)
	Render(ctx context.Context, example string) (string, error)
	Search(ctx context.Context, query string) (string, error)
	Analyze(ctx context.Context, example string) (string, error)
	Compare(ctx context.Context, left, right string) (string, error)
	EnumerateResources(ctx context.Context) ([]scriptdex.Resource, error)
	ReadResource(ctx context.Context, example string, kind scriptdex.ResourceKind) (string, error)
}

var (
	_ backend = (*scriptdex.Client)(nil)
	_ backend = (*remoteClient)(nil)
)
