package health

import "context"

// CorpusPinger checks corpus root availability.
type CorpusPinger interface {
	Ping(ctx context.Context) error
}
