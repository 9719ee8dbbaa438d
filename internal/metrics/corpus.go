package metrics

import "github.com/prometheus/client_golang/prometheus"

// Namespace prefixes every scriptdex metric.
const Namespace = "scriptdex"

// Corpus Prometheus metrics.
var (
	MetadataWarningsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "metadata_warnings_total",
			Help:      "Metadata documents replaced by defaults, by reason",
		},
		[]string{"reason"}, // "read" / "encoding" / "parse" / "shape"
	)

	SearchMatches = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_matches",
			Help:      "Number of examples matched per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	ExamplesDiscovered = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "examples_discovered",
			Help:      "Examples found by the last corpus scan",
		},
	)
)

var corpusMetricsRegistered bool

// RegisterCorpusMetrics registers Prometheus corpus metrics. Must be called once from main.
func RegisterCorpusMetrics() {
	if corpusMetricsRegistered {
		return
	}
	prometheus.MustRegister(MetadataWarningsTotal)
	prometheus.MustRegister(SearchMatches)
	prometheus.MustRegister(ExamplesDiscovered)
	corpusMetricsRegistered = true
}
