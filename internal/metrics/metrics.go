package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the Prometheus collectors of the read API. Build it once
// per process; promauto registers the collectors globally.
type Registry struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec
}

func NewRegistry() *Registry {
	return &Registry{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "commute_http_requests_total",
			Help: "HTTP requests processed, by route, method and status code.",
		}, []string{"route", "method", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "commute_http_request_duration_seconds",
			Help:    "HTTP request latency, by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),

		HTTPRequestsInFlight: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "commute_http_requests_in_flight",
			Help: "HTTP requests currently being served, by route.",
		}, []string{"route"}),
	}
}
