package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/scriptdex/internal/domain"
	"github.com/kailas-cloud/scriptdex/internal/domain/example"
	"github.com/kailas-cloud/scriptdex/internal/domain/resource"
	logpkg "github.com/kailas-cloud/scriptdex/internal/logger"
)

// Entry is one line of the example listing.
type Entry struct {
	Name        string
	Description string
	Author      string
	Tags        []string
}

// ScriptSection is one script shown in a bundle.
// File is empty for the canonical script, set for fallback scripts.
type ScriptSection struct {
	File    string
	Content string
}

// Bundle is the assembled content of one example, ready for formatting.
type Bundle struct {
	Name             string
	Language         string
	Documentation    string
	HasDocumentation bool
	// Metadata is the canonical YAML; empty when absent, empty or unparsable.
	Metadata string
	Scripts  []ScriptSection
	Files    []string
}

// Service assembles listings, bundles and resources from the corpus.
type Service struct {
	repo       Repository
	meta       *MetadataLoader
	scheme     string
	discovered prometheus.Gauge
	logger     *zap.Logger
}

// Option configures the catalog service.
type Option func(*Service)

// WithScheme sets the resource URI scheme.
func WithScheme(scheme string) Option {
	return func(s *Service) {
		if scheme != "" {
			s.scheme = scheme
		}
	}
}

// WithDiscoveredGauge records the size of every corpus scan in g.
func WithDiscoveredGauge(g prometheus.Gauge) Option {
	return func(s *Service) { s.discovered = g }
}

// New creates a catalog service.
func New(repo Repository, meta *MetadataLoader, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{repo: repo, meta: meta, scheme: resource.DefaultScheme, logger: logger}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Scheme returns the resource URI scheme in use.
func (s *Service) Scheme() string { return s.scheme }

// Listing returns every discovered example, optionally only those tagged with tag.
func (s *Service) Listing(ctx context.Context, tag string) ([]Entry, error) {
	exs, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(exs))
	for _, ex := range exs {
		md := s.meta.Load(ctx, ex).Metadata
		if tag != "" && !md.HasTag(tag) {
			continue
		}
		entries = append(entries, Entry{
			Name:        ex.Name(),
			Description: s.describe(ctx, ex),
			Author:      md.Author(),
			Tags:        md.Tags(),
		})
	}
	return entries, nil
}

func (s *Service) list(ctx context.Context) ([]example.Example, error) {
	exs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}
	if s.discovered != nil {
		s.discovered.Set(float64(len(exs)))
	}
	return exs, nil
}

// describe never fails the listing: an unreadable README gives no description.
func (s *Service) describe(ctx context.Context, ex example.Example) string {
	if !ex.HasDocumentation() {
		return ""
	}
	doc, err := s.repo.ReadText(ctx, ex.Name(), ex.Layout().DocumentationFile)
	if err != nil {
		logpkg.FromContextOr(ctx, s.logger).Debug("Skipping description",
			zap.String("example", ex.Name()),
			zap.Error(err),
		)
		return ""
	}
	return example.Describe(doc)
}

// Bundle assembles the full content of one example.
func (s *Service) Bundle(ctx context.Context, name string) (Bundle, error) {
	ex, err := s.repo.Get(ctx, name)
	if err != nil {
		return Bundle{}, fmt.Errorf("get example: %w", err)
	}

	layout := ex.Layout()
	b := Bundle{
		Name:     ex.Name(),
		Language: layout.ScriptLanguage(),
		Files:    ex.AuxiliaryFiles(),
	}

	if ex.HasDocumentation() {
		doc, err := s.repo.ReadText(ctx, name, layout.DocumentationFile)
		if err != nil {
			return Bundle{}, fmt.Errorf("read documentation: %w", err)
		}
		b.Documentation = doc
		b.HasDocumentation = true
	}

	res := s.meta.Load(ctx, ex)
	if res.Warning == nil {
		canonical, err := res.Metadata.Canonical()
		if err != nil {
			logpkg.FromContextOr(ctx, s.logger).Warn("Failed to encode metadata",
				zap.String("example", name),
				zap.Error(err),
			)
		}
		b.Metadata = canonical
	}

	if ex.HasCanonicalScript() {
		content, err := s.repo.ReadText(ctx, name, layout.ScriptFile)
		if err != nil {
			return Bundle{}, fmt.Errorf("read script: %w", err)
		}
		b.Scripts = []ScriptSection{{Content: content}}
	} else {
		for _, file := range ex.ScriptFiles() {
			content, err := s.repo.ReadText(ctx, name, file)
			if err != nil {
				return Bundle{}, fmt.Errorf("read script: %w", err)
			}
			b.Scripts = append(b.Scripts, ScriptSection{File: file, Content: content})
		}
	}

	return b, nil
}

// Resources lists the script, documentation and metadata resources of every example.
// Only files that exist are listed.
func (s *Service) Resources(ctx context.Context) ([]resource.Resource, error) {
	exs, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	var out []resource.Resource
	for _, ex := range exs {
		lang := ex.Layout().ScriptLanguage()
		for _, kind := range []resource.Kind{resource.Script, resource.Documentation, resource.Metadata} {
			if ex.HasFile(fileFor(ex.Layout(), kind)) {
				out = append(out, resource.New(s.scheme, ex.Name(), kind, lang))
			}
		}
	}
	return out, nil
}

// ReadResource returns the raw text of one resource.
func (s *Service) ReadResource(ctx context.Context, name string, kind resource.Kind) (string, error) {
	_, text, err := s.OpenResource(ctx, name, kind)
	return text, err
}

// OpenResource returns the catalog entry and raw text of one resource.
func (s *Service) OpenResource(ctx context.Context, name string, kind resource.Kind) (resource.Resource, string, error) {
	if !kind.IsValid() {
		return resource.Resource{}, "", domain.NewExampleError(name,
			fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidResource, kind))
	}
	ex, err := s.repo.Get(ctx, name)
	if err != nil {
		return resource.Resource{}, "", fmt.Errorf("get example: %w", err)
	}

	file := fileFor(ex.Layout(), kind)
	if !ex.HasFile(file) {
		return resource.Resource{}, "", domain.NewFileError(name, file, domain.ErrResourceNotFound)
	}
	text, err := s.repo.ReadText(ctx, name, file)
	if err != nil {
		if errors.Is(err, domain.ErrFileVanished) {
			return resource.Resource{}, "", domain.NewFileError(name, file, domain.ErrResourceNotFound)
		}
		return resource.Resource{}, "", fmt.Errorf("read resource: %w", err)
	}
	return resource.New(s.scheme, name, kind, ex.Layout().ScriptLanguage()), text, nil
}

func fileFor(layout example.Layout, kind resource.Kind) string {
	switch kind {
	case resource.Script:
		return layout.ScriptFile
	case resource.Documentation:
		return layout.DocumentationFile
	default:
		return layout.MetadataFile
	}
}
