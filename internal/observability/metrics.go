// Package observability exposes Prometheus metrics for the API layer.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rates_quotes_total",
			Help: "Quotes produced, by pricing model",
		}, []string{"model"},
	)
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rates_requests_total",
			Help: "HTTP requests, by status code",
		}, []string{"code"},
	)
	Latency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rates_request_duration_seconds",
		Help:    "Request latency seconds",
		Buckets: prometheus.DefBuckets,
	})
	InFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rates_in_flight",
		Help: "In-flight HTTP requests",
	})
)

func init() {
	prometheus.MustRegister(QuotesTotal, RequestsTotal, Latency, InFlight)
}

// MetricsHandler serves the Prometheus scrape endpoint
func MetricsHandler() http.Handler { return promhttp.Handler() }

type rec struct {
	http.ResponseWriter
	code int
}

func (r *rec) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts, latency and in-flight gauge
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		InFlight.Inc()
		defer InFlight.Dec()

		rw := &rec{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rw, r)

		Latency.Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(strconv.Itoa(rw.code)).Inc()
	})
}
