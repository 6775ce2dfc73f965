package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for provider matching.
type Metrics struct {
	Searches      *prometheus.CounterVec
	Excluded      prometheus.Histogram
	ReturnedCount prometheus.Histogram
	MatchLatency  prometheus.Histogram
}

// New registers the provider matching metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		// outcome: "strict", "broadened", "invalid", "unavailable"
		Searches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "olera_providermatch_searches_total",
			Help: "Provider searches by outcome",
		}, []string{"outcome"}),

		Excluded: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "olera_providermatch_excluded_candidates",
			Help:    "Candidates hidden per search by active relationships and recent dismissals",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),

		ReturnedCount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "olera_providermatch_returned_candidates",
			Help:    "Candidates returned per search page",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		}),

		MatchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "olera_providermatch_match_duration_seconds",
			Help:    "Duration of provider matching including both search passes",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

func (m *Metrics) IncrementSearch(outcome string) {
	if m != nil {
		m.Searches.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveExcluded(n int) {
	if m != nil {
		m.Excluded.Observe(float64(n))
	}
}

func (m *Metrics) ObserveReturned(n int) {
	if m != nil {
		m.ReturnedCount.Observe(float64(n))
	}
}

func (m *Metrics) ObserveMatchLatency(d time.Duration) {
	if m != nil {
		m.MatchLatency.Observe(d.Seconds())
	}
}
