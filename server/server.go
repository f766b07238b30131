package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathtutor/builder"
	"github.com/katalvlaran/pathtutor/internal/config"
)

// Server is the HTTP adapter. It holds no graph state between requests.
type Server struct {
	router       chi.Router
	logger       log.FieldLogger
	maxBodyBytes int64
	buildOpts    []builder.Option
	metrics      *metrics
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger replaces the standard logrus logger.
func WithLogger(l log.FieldLogger) Option {
	return func(s *Server) { s.logger = l }
}

// WithStrictNeighbors rejects undeclared neighbor labels in every request.
func WithStrictNeighbors() Option {
	return func(s *Server) { s.buildOpts = append(s.buildOpts, builder.WithStrictNeighbors()) }
}

// New creates a Server from the [server] config section.
func New(cfg config.ServerCfg, opts ...Option) *Server {
	s := &Server{
		logger:       log.StandardLogger(),
		maxBodyBytes: cfg.MaxBodyBytes,
		metrics:      newMetrics(),
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = config.DefaultMaxBodyBytes
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// requestID stores a fresh UUID in the request context and echoes it in the
// X-Request-Id header. A client-supplied header is kept.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(middleware.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(middleware.RequestIDHeader, id)
		ctx := withRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.WithFields(log.Fields{
			"request_id": requestIDFrom(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
		}).Info("http request")
	})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Warn("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)
	s.metrics.solveTotal.WithLabelValues(kind).Inc()
	s.logger.WithFields(log.Fields{
		"request_id": requestIDFrom(r.Context()),
		"kind":       kind,
	}).WithError(err).Warn("solve rejected")
	s.writeJSON(w, ErrorBody{
		RequestID: requestIDFrom(r.Context()),
		Kind:      kind,
		Error:     err.Error(),
	}, status)
}
