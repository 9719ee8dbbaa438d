package compare

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/scriptdex/internal/domain/analysis"
	"github.com/kailas-cloud/scriptdex/internal/domain/diff"
	"github.com/kailas-cloud/scriptdex/internal/domain/example"
)

// Service diffs the file sets and imports of two examples.
type Service struct {
	repo Repository
}

// New creates a compare service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Compare diffs left against right. Imports are compared only when both have the canonical script.
func (s *Service) Compare(ctx context.Context, left, right string) (diff.Report, error) {
	l, err := s.repo.Get(ctx, left)
	if err != nil {
		return diff.Report{}, fmt.Errorf("get left example: %w", err)
	}
	r, err := s.repo.Get(ctx, right)
	if err != nil {
		return diff.Report{}, fmt.Errorf("get right example: %w", err)
	}

	report := diff.Report{
		Left:  left,
		Right: right,
		Files: diff.Compute(l.Files(), r.Files()),
	}

	if !l.HasCanonicalScript() || !r.HasCanonicalScript() {
		return report, nil
	}
	li, err := s.imports(ctx, l)
	if err != nil {
		return diff.Report{}, err
	}
	ri, err := s.imports(ctx, r)
	if err != nil {
		return diff.Report{}, err
	}
	sets := diff.Compute(li, ri)
	report.Imports = &sets
	return report, nil
}

func (s *Service) imports(ctx context.Context, ex example.Example) ([]string, error) {
	content, err := s.repo.ReadText(ctx, ex.Name(), ex.Layout().ScriptFile)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return analysis.Imports(content), nil
}
