package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics собирает метрики HTTP-слоя и хранилища резерваций
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	StoreCommitsTotal   *prometheus.CounterVec
	StoreCommitDuration *prometheus.HistogramVec
}

// Commit outcomes reported by the storage layer.
const (
	OutcomeOK       = "ok"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// New регистрирует коллекторы в дефолтном реестре Prometheus
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "laundry_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "laundry_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),

		StoreCommitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "laundry_store_commits_total",
				Help: "Reservation store commits by operation and outcome",
			},
			[]string{"service", "op", "outcome"},
		),
		StoreCommitDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "laundry_store_commit_duration_seconds",
				Help:    "Reservation store commit duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "op"},
		),
	}
}

// ObserveHTTPRequest записывает одну обработку HTTP-запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// CommitObserved реализует интерфейс Observer хранилища резерваций
func (m *Metrics) CommitObserved(op, outcome string, duration time.Duration) {
	m.StoreCommitsTotal.WithLabelValues(m.serviceName, op, outcome).Inc()
	m.StoreCommitDuration.WithLabelValues(m.serviceName, op).Observe(duration.Seconds())
}
