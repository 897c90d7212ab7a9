// Package web is the HTTP surface of the document-generation service: two
// generate endpoints, liveness, and Prometheus metrics. It is thin plumbing
// over the docgen pipeline; all document semantics live there.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the http.Server with its routes and instrumentation.
type Server struct {
	log    *slog.Logger
	server *http.Server
}

// New builds a Server listening on addr, serving documents through gen.
func New(addr string, gen Generator, logger *slog.Logger) *Server {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	handler := &Handler{Gen: gen, Log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate/invoice", handler.GenerateInvoice)
	mux.HandleFunc("POST /generate/proposal", handler.GenerateProposal)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           instrument(logger, metrics, mux),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		// Rendering plus upload can take most of a minute under load.
		WriteTimeout:   2 * time.Minute,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return &Server{log: logger, server: srv}
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.log.Info("server started", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	s.log.Info("server stopped")
	return err
}

// statusWriter captures the response status for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// instrument wraps the mux with request logging and metrics.
func instrument(logger *slog.Logger, metrics *Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		metrics.observe(r.URL.Path, sw.status, elapsed.Seconds())
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", elapsed,
		)
	})
}
