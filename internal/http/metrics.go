package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagaae_http_requests_total",
		Help: "HTTP requests by method and status code.",
	}, []string{"method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pagaae_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	billsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pagaae_bills_created_total",
		Help: "Bills appended to the store.",
	})

	rolloverRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagaae_rollover_runs_total",
		Help: "Month close attempts by outcome.",
	}, []string{"outcome"})

	rolloverRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pagaae_rollover_rows_total",
		Help: "Rows advanced by month close.",
	})
)

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &metricsWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(rw.status)).Inc()
		requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

type metricsWriter struct {
	http.ResponseWriter
	status int
}

func (w *metricsWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
