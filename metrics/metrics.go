package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sierra_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status",
	}, []string{"method", "path", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sierra_http_request_duration_seconds",
		Help:    "Duration of HTTP request handling",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sierra_bookings_created_total",
		Help: "Total number of bookings created",
	})

	PaymentLinksCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sierra_payment_links_created_total",
		Help: "Total number of payment links handed out, by whether the booking was known",
	}, []string{"known_booking"})

	TextsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sierra_texts_sent_total",
		Help: "Total number of text messages accepted by the SMS stub",
	})
)
