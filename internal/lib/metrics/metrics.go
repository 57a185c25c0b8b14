package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created by payment mode",
		},
		[]string{"mode"},
	)

	BookingsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_completed_total",
			Help: "Bookings moved to completed by source",
		},
		[]string{"source"},
	)

	PaymentFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_fallbacks_total",
			Help: "Checkouts served by the fallback gateway",
		},
	)

	NotificationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_failed_total",
			Help: "Notifications that could not be stored",
		},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)

	PendingBookingsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pending_bookings_expired_total",
			Help: "Pending bookings marked failed by the sweeper",
		},
	)
)
