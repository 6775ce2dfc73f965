package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
type Metrics struct {
	// Catalog fetch latencies by source
	CatalogLatency *prometheus.HistogramVec

	// Scored matches by tier
	MatchesByTier *prometheus.CounterVec

	// Requests by outcome: "matched", "invalid", "unavailable"
	RequestOutcome *prometheus.CounterVec

	// Overall match latency including catalog fetches
	MatchLatency prometheus.Histogram

	// Catalog cache lookups by result: "hit", "miss", "error", "bypass"
	CacheLookups *prometheus.CounterVec
}

// New creates a new Metrics instance with all eligibility metrics registered.
func New() *Metrics {
	return &Metrics{
		CatalogLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "olera_eligibility_catalog_fetch_duration_seconds",
			Help:    "Duration of catalog fetches by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"source"}), // source: "baseline", "regional", "resources"

		MatchesByTier: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "olera_eligibility_matches_total",
			Help: "Total scored program matches by tier",
		}, []string{"tier"}),

		RequestOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "olera_eligibility_requests_total",
			Help: "Total eligibility requests by outcome",
		}, []string{"outcome"}),

		MatchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "olera_eligibility_match_duration_seconds",
			Help:    "Duration of full eligibility matching including catalog fetches",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "olera_eligibility_catalog_cache_lookups_total",
			Help: "Catalog cache lookups by result",
		}, []string{"result"}),
	}
}

// ObserveCatalogLatency records the duration of fetching one catalog source.
func (m *Metrics) ObserveCatalogLatency(source string, d time.Duration) {
	if m != nil {
		m.CatalogLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementTier records one scored match.
func (m *Metrics) IncrementTier(tier string) {
	if m != nil {
		m.MatchesByTier.WithLabelValues(tier).Inc()
	}
}

// IncrementOutcome records a request outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.RequestOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveMatchLatency records the total match duration.
func (m *Metrics) ObserveMatchLatency(d time.Duration) {
	if m != nil {
		m.MatchLatency.Observe(d.Seconds())
	}
}

// IncrementCacheLookup records one catalog cache lookup.
func (m *Metrics) IncrementCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}
