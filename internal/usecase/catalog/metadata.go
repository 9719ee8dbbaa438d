package catalog

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/scriptdex/internal/domain"
	"github.com/kailas-cloud/scriptdex/internal/domain/example"
	"github.com/kailas-cloud/scriptdex/internal/domain/metadata"
	logpkg "github.com/kailas-cloud/scriptdex/internal/logger"
)

// Warning reasons, used as the metric label.
const (
	reasonRead     = "read"
	reasonEncoding = "encoding"
	reasonParse    = "parse"
	reasonShape    = "shape"
)

// MetadataLoader loads per-example metadata without ever failing the caller.
// Problems are logged, counted, and returned as Result.Warning next to default metadata.
type MetadataLoader struct {
	files    FileReader
	warnings *prometheus.CounterVec
	logger   *zap.Logger
}

// NewMetadataLoader creates a loader. warnings may be nil.
func NewMetadataLoader(files FileReader, warnings *prometheus.CounterVec, logger *zap.Logger) *MetadataLoader {
	return &MetadataLoader{files: files, warnings: warnings, logger: logger}
}

// Load returns the example's metadata. A missing file is not a warning.
func (l *MetadataLoader) Load(ctx context.Context, ex example.Example) metadata.Result {
	if !ex.HasMetadata() {
		return metadata.Result{Metadata: metadata.Default()}
	}

	file := ex.Layout().MetadataFile
	text, err := l.files.ReadText(ctx, ex.Name(), file)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEncoding) {
			return l.warn(ctx, ex, reasonEncoding, err)
		}
		return l.warn(ctx, ex, reasonRead, err)
	}

	m, err := metadata.Parse([]byte(text))
	if err != nil {
		reason := reasonParse
		if errors.Is(err, metadata.ErrInvalidTags) {
			reason = reasonShape
		}
		return l.warn(ctx, ex, reason, err)
	}
	return metadata.Result{Metadata: m}
}

func (l *MetadataLoader) warn(ctx context.Context, ex example.Example, reason string, err error) metadata.Result {
	logpkg.FromContextOr(ctx, l.logger).Warn("Failed to load metadata",
		zap.String("example", ex.Name()),
		zap.String("reason", reason),
		zap.Error(err),
	)
	if l.warnings != nil {
		l.warnings.WithLabelValues(reason).Inc()
	}
	return metadata.Result{Metadata: metadata.Default(), Warning: err}
}
