package scriptdex

import (
	"io/fs"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/scriptdex/internal/domain/example"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	root   string
	fsys   fs.FS
	layout example.Layout

	title  string
	scheme string

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithRoot sets the corpus root directory.
func WithRoot(root string) Option {
	return optionFunc(func(c *clientConfig) {
		c.root = root
	})
}

// WithFS reads the corpus from fsys instead of the local filesystem.
// label only appears in error messages.
func WithFS(fsys fs.FS, label string) Option {
	return optionFunc(func(c *clientConfig) {
		c.fsys = fsys
		c.root = label
	})
}

// WithLayout overrides the canonical script, documentation and metadata file names.
// Defaults: script.groovy, README.md, meta.yaml.
func WithLayout(script, documentation, metadata string) Option {
	return optionFunc(func(c *clientConfig) {
		c.layout = example.Layout{
			ScriptFile:        script,
			DocumentationFile: documentation,
			MetadataFile:      metadata,
		}
	})
}

// WithTitle sets the heading of the example listing.
func WithTitle(title string) Option {
	return optionFunc(func(c *clientConfig) {
		c.title = title
	})
}

// WithScheme sets the resource URI scheme. Default: groovy.
func WithScheme(scheme string) Option {
	return optionFunc(func(c *clientConfig) {
		c.scheme = scheme
	})
}

// WithLogger enables structured logging of client operations and metadata warnings.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations, corpus
// counters) on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
