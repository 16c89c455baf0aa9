package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelbook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status code.",
		},
		[]string{"endpoint", "code"},
	)

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelbook",
			Name:      "bookings_total",
			Help:      "Booking state transitions.",
		},
		[]string{"status"},
	)

	paymentsSettled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "travelbook",
			Name:      "payments_settled_total",
			Help:      "Payments settled.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookings, paymentsSettled)
	})
}

// IncHTTP increments the request counter for an endpoint/code pair.
func IncHTTP(endpoint, code string) {
	httpRequests.WithLabelValues(endpoint, code).Inc()
}

// IncBooking increments the booking transition counter for a status.
func IncBooking(status string) {
	bookings.WithLabelValues(status).Inc()
}

// IncPaymentSettled increments the settled payments counter.
func IncPaymentSettled() {
	paymentsSettled.Inc()
}
