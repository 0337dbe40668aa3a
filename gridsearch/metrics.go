package gridsearch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments a search. A nil *Metrics records nothing.
type Metrics struct {
	// Runs counts finished ga.Run calls by strategy and outcome ("ok", "error").
	Runs *prometheus.CounterVec
	// RunDuration observes ga.Run wall time in seconds by strategy.
	RunDuration *prometheus.HistogramVec
	// Combinations counts fully evaluated combinations.
	Combinations prometheus.Counter
	// BestAvgFitness is the best average fitness of the last finished search.
	BestAvgFitness prometheus.Gauge
}

var strategyLabels = []string{"selector", "crossover", "mutator"}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "georoute",
			Subsystem: "gridsearch",
			Name:      "runs_total",
			Help:      "Number of GA runs executed by the grid search.",
		}, append(append([]string(nil), strategyLabels...), "outcome")),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "georoute",
			Subsystem: "gridsearch",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a single GA run.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, strategyLabels),
		Combinations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "georoute",
			Subsystem: "gridsearch",
			Name:      "combinations_total",
			Help:      "Number of parameter combinations fully evaluated.",
		}),
		BestAvgFitness: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "georoute",
			Subsystem: "gridsearch",
			Name:      "best_avg_fitness",
			Help:      "Best average fitness found by the last search.",
		}),
	}
}

func (m *Metrics) observeRun(c Combination, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Runs.WithLabelValues(c.Selector, c.Crossover, c.Mutator, outcome).Inc()
	m.RunDuration.WithLabelValues(c.Selector, c.Crossover, c.Mutator).Observe(d.Seconds())
}

func (m *Metrics) observeSearch(combinations int, best float64) {
	if m == nil {
		return
	}
	m.Combinations.Add(float64(combinations))
	m.BestAvgFitness.Set(best)
}
