// Package http exposes the bill store, month close and report archive as a
// JSON REST API.
package http

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pagaae/internal/middleware/ratelimit"
	"pagaae/internal/middleware/trace"
	"pagaae/internal/report"
	"pagaae/internal/services"
	ports "pagaae/internal/sheets"
)

type Server struct {
	http.Server

	store    ports.BillStore
	rollover *services.Rollover
	reports  *report.Generator

	corsOrigin   string
	rateLimiter  *ratelimit.Limiter
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// server.
func NewServer(addr, corsOrigin string, store ports.BillStore, rollover *services.Rollover, reports *report.Generator) *Server {
	s := &Server{
		store:       store,
		rollover:    rollover,
		reports:     reports,
		corsOrigin:  corsOrigin,
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	r := mux.NewRouter()
	r.Use(trace.NewMiddleware().Middleware)
	r.Use(metricsMiddleware)
	r.Use(s.corsMiddleware)

	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/dados", s.handleListBills).Methods(http.MethodGet)
	r.HandleFunc("/api/dados", s.withRateLimit(s.handleCreateBill)).Methods(http.MethodPost)
	r.HandleFunc("/api/dados/{row}", s.withRateLimit(s.handleUpdateBill)).Methods(http.MethodPut)
	r.HandleFunc("/api/dados/{row}", s.withRateLimit(s.handleDeleteBill)).Methods(http.MethodDelete)

	r.HandleFunc("/api/fechar-mes", s.withRateLimit(s.handleCloseMonth)).Methods(http.MethodPost)

	r.HandleFunc("/api/historico/anos", s.handleListYears).Methods(http.MethodGet)
	r.HandleFunc("/api/historico/{year}", s.handleListReports).Methods(http.MethodGet)
	r.HandleFunc("/api/historico/{year}/{file}", s.handleDownloadReport).Methods(http.MethodGet)

	// Preflight requests are answered by the CORS middleware.
	r.PathPrefix("/api/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	s.Server = http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

// Shutdown stops the rate limiter's cleanup goroutine along with the HTTP
// server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := s.corsOrigin
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", strings.Join([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		}, ", "))
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit caps mutating requests per client IP.
func (s *Server) withRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow(trace.ClientIP(r)) {
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
