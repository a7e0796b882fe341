// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sharing_http_requests_total",
		Help: "HTTP requests processed, by method, route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sharing_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	bookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sharing_bookings_created_total",
		Help: "Bookings accepted into WAITING.",
	})

	bookingsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sharing_bookings_decided_total",
		Help: "Booking decisions, by resulting status.",
	}, []string{"status"})
)

// BookingCreated counts a freshly created booking.
func BookingCreated() {
	bookingsCreated.Inc()
}

// BookingDecided counts an owner decision by resulting status.
func BookingDecided(status string) {
	bookingsDecided.WithLabelValues(status).Inc()
}

// Middleware records per-request counters and latency. Routes are labeled by
// their template so path parameters do not explode the cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		requestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
