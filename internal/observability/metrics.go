package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RidesPostedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridepool", Name: "rides_posted_total", Help: "Ride postings created, by vehicle type"},
		[]string{"vehicle"},
	)
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridepool", Name: "bookings_total", Help: "Booking attempts, by outcome"},
		[]string{"outcome"},
	)
	FeedClients = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: "ridepool", Name: "feed_clients", Help: "Connected live-feed clients"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridepool", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ridepool",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
