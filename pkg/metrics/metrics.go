package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	// HTTP метрики (входящие запросы)
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Метрики интеграции с хранилищем бронирований (исходящие запросы)
	storeRequestsTotal   *prometheus.CounterVec
	storeRequestDuration *prometheus.HistogramVec

	// Размер кеша бронирований в памяти
	cachedReservations prometheus.Gauge
}

// New создает и регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request processing duration",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		storeRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_store_requests_total",
			Help:        "Total number of requests to the reservation store",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),

		storeRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "reservation_store_request_duration_seconds",
			Help:        "Reservation store request duration",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		cachedReservations: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "cached_reservations",
			Help:        "Number of reservations held in the in-memory registry",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest записывает метрики входящего HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStoreRequest записывает метрики исходящего запроса к хранилищу
func (m *Metrics) ObserveStoreRequest(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.storeRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.storeRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetCachedReservations обновляет gauge размера кеша
func (m *Metrics) SetCachedReservations(n int) {
	if m == nil {
		return
	}
	m.cachedReservations.Set(float64(n))
}
