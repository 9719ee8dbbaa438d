package analysis

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/scriptdex/internal/domain"
	domanalysis "github.com/kailas-cloud/scriptdex/internal/domain/analysis"
)

// Service analyzes the primary script of an example.
type Service struct {
	repo Repository
}

// New creates an analysis service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Analyze reports imports, functions, concepts and line count of the example's script.
// Without a canonical script the first script-extension file by name is analyzed.
func (s *Service) Analyze(ctx context.Context, name string) (domanalysis.Report, error) {
	ex, err := s.repo.Open(ctx, name)
	if err != nil {
		return domanalysis.Report{}, fmt.Errorf("get example: %w", err)
	}

	script, _, ok := ex.Script()
	if !ok {
		return domanalysis.Report{}, domain.NewExampleError(name, domain.ErrScriptNotFound)
	}

	content, err := s.repo.ReadText(ctx, name, script)
	if err != nil {
		return domanalysis.Report{}, fmt.Errorf("read script: %w", err)
	}
	return domanalysis.Analyze(name, script, content), nil
}
