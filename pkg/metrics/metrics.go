// Package metrics collects the prometheus metrics of the service: HTTP
// traffic, calls to the upstream slot service and audit database queries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	integrationCallsTotal   *prometheus.CounterVec
	integrationCallDuration *prometheus.HistogramVec

	dbQueriesTotal    *prometheus.CounterVec
	dbQueryDuration   *prometheus.HistogramVec
	dbConnectionsOpen prometheus.Gauge
}

// New регистрирует коллекторы в дефолтном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		integrationCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "integration_calls_total",
			Help:        "Total number of calls to external services.",
			ConstLabels: constLabels,
		}, []string{"target", "operation", "outcome"}),

		integrationCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_call_duration_seconds",
			Help:        "External call latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "operation"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: constLabels,
		}, []string{"query", "outcome"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"query"}),

		dbConnectionsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open connections in the database pool.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveIntegrationCall учитывает вызов внешнего сервиса
func (m *Metrics) ObserveIntegrationCall(target, operation, outcome string, duration time.Duration) {
	m.integrationCallsTotal.WithLabelValues(target, operation, outcome).Inc()
	m.integrationCallDuration.WithLabelValues(target, operation).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает запрос к базе данных
func (m *Metrics) ObserveDBQuery(query, outcome string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(query, outcome).Inc()
	m.dbQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}

// SetOpenConnections выставляет текущее количество открытых соединений пула
func (m *Metrics) SetOpenConnections(n int) {
	m.dbConnectionsOpen.Set(float64(n))
}
