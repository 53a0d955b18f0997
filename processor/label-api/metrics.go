package labelapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus collectors for the label API.
type metrics struct {
	requestsTotal    *prometheus.CounterVec
	resolutionsTotal *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// newMetrics creates and registers the collectors on reg.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ontolabel",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "HTTP requests served, by endpoint and status code.",
		}, []string{"endpoint", "code"}),

		resolutionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ontolabel",
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Label resolutions performed, by fallback tier.",
		}, []string{"tier"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ontolabel",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	reg.MustRegister(m.requestsTotal, m.resolutionsTotal, m.requestDuration)
	return m
}
