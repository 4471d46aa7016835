package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "todo_api_requests_total",
		Help: "Total number of handled requests by method, path and status code",
	}, []string{"method", "path", "status_code"})

	requestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "todo_api_request_latency_seconds",
		Help:    "Request handling latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestLatency)
}

// Metrics middleware records request counts and latency for Prometheus
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		requestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		requestLatency.WithLabelValues(
			c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// MetricsHandler returns the HTTP handler serving the Prometheus scrape endpoint
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
