package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"digital.vasic.chronoassert/pkg/assertion"
)

const defaultNamespace = "chronoassert"

// PrometheusMetrics implements AssertionMetrics on a private
// Prometheus registry.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	evaluations *prometheus.CounterVec
	distance    *prometheus.HistogramVec
	passes      prometheus.Counter
	failing     prometheus.Gauge
	lastPass    prometheus.Gauge
}

// NewPrometheusMetrics creates the collectors under namespace, or
// "chronoassert" when namespace is empty.
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "assertions_total",
				Help:      "Total number of evaluated assertions",
			},
			[]string{"condition", "direction", "status"},
		),
		distance: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "distance_seconds",
				Help:      "Absolute measured distance between subject and target",
				Buckets:   []float64{0.001, 0.01, 0.1, 1, 10, 60, 600, 3600, 86400},
			},
			[]string{"condition", "direction"},
		),
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_total",
			Help:      "Total number of completed evaluation passes",
		}),
		failing: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "failing_assertions",
			Help:      "Number of assertions that failed in the last pass",
		}),
		lastPass: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_pass_timestamp_seconds",
			Help:      "Unix time of the last completed evaluation pass",
		}),
	}

	m.registry.MustRegister(m.evaluations, m.distance, m.passes, m.failing, m.lastPass)
	return m
}

// Observe counts r by condition, direction and status and records the
// magnitude of its measured distance. Results without a valid condition
// are counted but not measured.
func (m *PrometheusMetrics) Observe(r assertion.Result) {
	labels := []string{r.Condition.String(), string(r.Direction)}

	status := "failed"
	if r.Passed {
		status = "passed"
	}
	m.evaluations.WithLabelValues(append(labels, status)...).Inc()

	if r.Condition.Valid() {
		d := r.Actual
		if d < 0 {
			d = -d
		}
		m.distance.WithLabelValues(labels...).Observe(d.Seconds())
	}
}

// RecordPass counts a completed pass and sets the failing gauge and the
// last-pass timestamp.
func (m *PrometheusMetrics) RecordPass(_, failed int) {
	m.passes.Inc()
	m.failing.Set(float64(failed))
	m.lastPass.SetToCurrentTime()
}

// Registry returns the registry the collectors are registered on.
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
