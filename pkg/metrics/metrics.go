package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics prometheus-коллекторы сервиса
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	ReservationsCreated  prometheus.Counter
	ReservationsRejected *prometheus.CounterVec
	NotifyFailures       *prometheus.CounterVec
}

// New registers and returns the service collectors.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ReservationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Successfully admitted reservations.",
			ConstLabels: constLabels,
		}),

		ReservationsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_rejected_total",
			Help:        "Reservation admissions rejected by validation rule.",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		NotifyFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_failed_total",
			Help:        "Ticket notification delivery failures by channel.",
			ConstLabels: constLabels,
		}, []string{"channel"}),
	}
}

// IncReservationCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncReservationCreated() {
	m.ReservationsCreated.Inc()
}

// IncReservationRejected увеличивает счетчик отклоненных бронирований
func (m *Metrics) IncReservationRejected(reason string) {
	m.ReservationsRejected.WithLabelValues(reason).Inc()
}

// IncNotifyFailure увеличивает счетчик ошибок доставки уведомлений
func (m *Metrics) IncNotifyFailure(channel string) {
	m.NotifyFailures.WithLabelValues(channel).Inc()
}
