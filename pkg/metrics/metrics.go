package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	IntegrationRequests *prometheus.CounterVec
	IntegrationDuration *prometheus.HistogramVec
	ScheduleCellsTotal  prometheus.Counter
}

// New создает и регистрирует метрики сервиса в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		IntegrationRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "integration_requests_total",
			Help:        "Total number of requests to external services",
			ConstLabels: constLabels,
		}, []string{"target", "outcome"}),

		IntegrationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_request_duration_seconds",
			Help:        "External service request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target"}),

		ScheduleCellsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_cells_resolved_total",
			Help:        "Total number of schedule cells resolved",
			ConstLabels: constLabels,
		}),
	}
}
