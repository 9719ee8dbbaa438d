package scriptdex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/scriptdex/internal/domain"
	"github.com/kailas-cloud/scriptdex/internal/domain/example"
	"github.com/kailas-cloud/scriptdex/internal/domain/resource"
	"github.com/kailas-cloud/scriptdex/internal/report"
	"github.com/kailas-cloud/scriptdex/internal/repository/corpus"
	analysisuc "github.com/kailas-cloud/scriptdex/internal/usecase/analysis"
	"github.com/kailas-cloud/scriptdex/internal/usecase/catalog"
	compareuc "github.com/kailas-cloud/scriptdex/internal/usecase/compare"
	searchuc "github.com/kailas-cloud/scriptdex/internal/usecase/search"
)

// Client is the scriptdex entry point. It is safe for concurrent use.
type Client struct {
	repo       *corpus.Repo
	catalog    *catalog.Service
	searchSvc  *searchuc.Service
	analyzeSvc *analysisuc.Service
	compareSvc *compareuc.Service
	title      string
	obs        *observer
}

// New creates a Client over the configured corpus and checks that its root is reachable.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		layout: example.DefaultLayout(),
		title:  report.DefaultTitle,
		scheme: resource.DefaultScheme,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.root == "" && cfg.fsys == nil {
		return nil, errors.New("scriptdex: corpus root required (use WithRoot or WithFS)")
	}
	if err := cfg.layout.Validate(); err != nil {
		return nil, fmt.Errorf("scriptdex: invalid layout: %w", err)
	}

	fsys := cfg.fsys
	if fsys == nil {
		fsys = os.DirFS(cfg.root)
	}
	repo := corpus.NewFS(fsys, cfg.root, cfg.layout)
	if err := repo.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("scriptdex: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return wireClient(repo, cfg, obs), nil
}

func wireClient(repo *corpus.Repo, cfg *clientConfig, obs *observer) *Client {
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Pass nil interfaces (not typed nil collectors) when metrics are disabled.
	var (
		warnings   *prometheus.CounterVec
		matches    prometheus.Observer
		catalogOpt = []catalog.Option{catalog.WithScheme(cfg.scheme)}
	)
	if m := obs.metrics; m != nil {
		warnings = m.metadataWarnings
		matches = m.searchMatches
		catalogOpt = append(catalogOpt, catalog.WithDiscoveredGauge(m.discovered))
	}

	meta := catalog.NewMetadataLoader(repo, warnings, logger)
	return &Client{
		repo:       repo,
		catalog:    catalog.New(repo, meta, logger, catalogOpt...),
		searchSvc:  searchuc.New(repo, matches, logger),
		analyzeSvc: analysisuc.New(repo),
		compareSvc: compareuc.New(repo),
		title:      cfg.title,
		obs:        obs,
	}
}

// Ping checks that the corpus root is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.repo.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Listing renders every example, or only those tagged exactly tag when tag is non-empty.
func (c *Client) Listing(ctx context.Context, tag string) (string, error) {
	start := time.Now()
	entries, err := c.catalog.Listing(ctx, tag)
	c.obs.observe("listing", start, err)
	if err != nil {
		return "", err
	}
	return report.Listing(c.title, tag, entries), nil
}

// Render returns the full markdown bundle of one example.
func (c *Client) Render(ctx context.Context, name string) (string, error) {
	start := time.Now()
	b, err := c.catalog.Bundle(ctx, name)
	c.obs.observe("render", start, err)
	if err != nil {
		return "", err
	}
	return report.Bundle(b), nil
}

// Search finds examples whose documentation or scripts contain query, ignoring case.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	start := time.Now()
	matches, err := c.searchSvc.Search(ctx, query)
	c.obs.observe("search", start, err)
	if err != nil {
		return "", err
	}
	return report.Search(query, matches), nil
}

// Analyze summarizes the imports, functions and concepts of an example's script.
func (c *Client) Analyze(ctx context.Context, name string) (string, error) {
	start := time.Now()
	a, err := c.analyzeSvc.Analyze(ctx, name)
	c.obs.observe("analyze", start, err)
	if err != nil {
		return "", err
	}
	return report.Analysis(a), nil
}

// Compare diffs the file sets, and when possible the imports, of two examples.
func (c *Client) Compare(ctx context.Context, left, right string) (string, error) {
	start := time.Now()
	d, err := c.compareSvc.Compare(ctx, left, right)
	c.obs.observe("compare", start, err)
	if err != nil {
		return "", err
	}
	return report.Diff(d), nil
}

// EnumerateResources lists the script, documentation and metadata files of every example.
func (c *Client) EnumerateResources(ctx context.Context) ([]Resource, error) {
	start := time.Now()
	rs, err := c.catalog.Resources(ctx)
	c.obs.observe("enumerate_resources", start, err)
	if err != nil {
		return nil, err
	}
	out := make([]Resource, len(rs))
	for i, r := range rs {
		out[i] = resourceFromDomain(r)
	}
	return out, nil
}

// ReadResource returns the raw text of one resource. kind also accepts the aliases readme and meta.
func (c *Client) ReadResource(ctx context.Context, name string, kind ResourceKind) (string, error) {
	start := time.Now()
	text, err := c.readResource(ctx, name, string(kind))
	c.obs.observe("read_resource", start, err)
	return text, err
}

// ReadResourceURI resolves a <scheme>://examples/<example>/<kind> URI and returns the raw text.
func (c *Client) ReadResourceURI(ctx context.Context, uri string) (string, error) {
	start := time.Now()
	text, err := c.readResourceURI(ctx, uri)
	c.obs.observe("read_resource", start, err)
	return text, err
}

func (c *Client) readResource(ctx context.Context, name, kind string) (string, error) {
	k, err := resource.ParseKind(kind)
	if err != nil {
		return "", domain.NewExampleError(name, err)
	}
	return c.catalog.ReadResource(ctx, name, k)
}

func (c *Client) readResourceURI(ctx context.Context, uri string) (string, error) {
	name, kind, err := resource.ParseURI(c.catalog.Scheme(), uri)
	if err != nil {
		return "", err
	}
	return c.catalog.ReadResource(ctx, name, kind)
}
