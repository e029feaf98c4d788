package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var durationBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}

// Metrics provides observability for the census use cases.
// Tracks how often each use case runs, how long it takes, and how often a
// search comes back empty.
type Metrics struct {
	AnimalSearches     prometheus.Counter
	CountEnrichments   prometheus.Counter
	EmptySearchResults prometheus.Counter
	SearchDuration     prometheus.Histogram
	CountDuration      prometheus.Histogram
}

// New creates a Metrics instance registered on the default Prometheus registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the census metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AnimalSearches: factory.NewCounter(prometheus.CounterOpts{
			Name: "menagerie_animal_searches_total",
			Help: "Total number of animal pattern searches executed",
		}),
		CountEnrichments: factory.NewCounter(prometheus.CounterOpts{
			Name: "menagerie_count_enrichments_total",
			Help: "Total number of people and animal count enrichments executed",
		}),
		EmptySearchResults: factory.NewCounter(prometheus.CounterOpts{
			Name: "menagerie_empty_search_results_total",
			Help: "Total number of searches where no country matched",
		}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "menagerie_search_duration_seconds",
			Help:    "Duration of animal pattern searches",
			Buckets: durationBuckets,
		}),
		CountDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "menagerie_count_duration_seconds",
			Help:    "Duration of count enrichments",
			Buckets: durationBuckets,
		}),
	}
}

// ObserveSearch records one search. Call with time.Now() taken at the start.
func (m *Metrics) ObserveSearch(start time.Time, matchedCountries int) {
	m.AnimalSearches.Inc()
	m.SearchDuration.Observe(time.Since(start).Seconds())
	if matchedCountries == 0 {
		m.EmptySearchResults.Inc()
	}
}

// ObserveCount records one count enrichment. Call with time.Now() taken at the start.
func (m *Metrics) ObserveCount(start time.Time) {
	m.CountEnrichments.Inc()
	m.CountDuration.Observe(time.Since(start).Seconds())
}
