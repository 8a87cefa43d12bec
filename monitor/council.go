package monitor

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeSuccess labels queries that produced a result; failures are labelled with their failure kind.
const OutcomeSuccess = "success"

var (
	// Registry holds every council collector plus the Go and process collectors.
	Registry = prometheus.NewRegistry()

	modelQueries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "council",
		Name:      "model_queries_total",
		Help:      "Single-model queries by provider, model and outcome.",
	}, []string{"provider", "model", "outcome"})

	modelQueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "council",
		Name:      "model_query_duration_seconds",
		Help:      "Wall time of single-model queries, including failed ones.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 90, 120, 180},
	}, []string{"provider", "model"})

	fanoutSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "council",
		Name:      "fanout_size",
		Help:      "Number of models queried per fan-out.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})

	fanoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "council",
		Name:      "fanout_duration_seconds",
		Help:      "Wall time of a whole fan-out, i.e. its slowest member.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 90, 120, 180},
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		modelQueries,
		modelQueryDuration,
		fanoutSize,
		fanoutDuration,
	)
}

// RecordModelQuery counts one single-model query and observes its duration.
func RecordModelQuery(provider, model, outcome string, elapsed time.Duration) {
	modelQueries.WithLabelValues(provider, model, outcome).Inc()
	modelQueryDuration.WithLabelValues(provider, model).Observe(elapsed.Seconds())
}

// RecordFanout observes the size and wall time of one fan-out.
func RecordFanout(size int, elapsed time.Duration) {
	fanoutSize.Observe(float64(size))
	fanoutDuration.Observe(elapsed.Seconds())
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
