package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/scriptdex/internal/domain/example"
	"github.com/kailas-cloud/scriptdex/internal/domain/search/match"
	logpkg "github.com/kailas-cloud/scriptdex/internal/logger"
)

// Service runs case-insensitive substring search over documentation and scripts.
type Service struct {
	repo    Repository
	matches prometheus.Observer
	logger  *zap.Logger
}

// New creates a search service. matches observes the result size per query and may be nil.
func New(repo Repository, matches prometheus.Observer, logger *zap.Logger) *Service {
	return &Service{repo: repo, matches: matches, logger: logger}
}

// Search returns every example whose documentation or script files contain query, ordered by name.
// An empty query matches every example.
func (s *Service) Search(ctx context.Context, query string) ([]match.Match, error) {
	exs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}

	needle := strings.ToLower(query)
	var out []match.Match
	for _, ex := range exs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if locs := s.locate(ctx, ex, needle); len(locs) > 0 {
			out = append(out, match.New(ex.Name(), locs))
		}
	}

	if s.matches != nil {
		s.matches.Observe(float64(len(out)))
	}
	return out, nil
}

// locate lists the sources of ex containing needle: documentation first, then scripts by name.
func (s *Service) locate(ctx context.Context, ex example.Example, needle string) []match.Location {
	var locs []match.Location
	if ex.HasDocumentation() && s.contains(ctx, ex.Name(), ex.Layout().DocumentationFile, needle) {
		locs = append(locs, match.DocumentationLocation)
	}
	for _, file := range ex.ScriptFiles() {
		if s.contains(ctx, ex.Name(), file, needle) {
			locs = append(locs, match.ScriptLocation(file))
		}
	}
	return locs
}

// contains treats unreadable or non-UTF-8 files as not matching.
func (s *Service) contains(ctx context.Context, name, file, needle string) bool {
	text, err := s.repo.ReadText(ctx, name, file)
	if err != nil {
		logpkg.FromContextOr(ctx, s.logger).Debug("Skipping file in search",
			zap.String("example", name),
			zap.String("file", file),
			zap.Error(err),
		)
		return false
	}
	return strings.Contains(strings.ToLower(text), needle)
}
