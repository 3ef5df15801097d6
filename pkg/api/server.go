package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/teapotframework/teabrew/pkg/config"
	"github.com/teapotframework/teabrew/pkg/metrics"
	"github.com/teapotframework/teabrew/pkg/model"
	"github.com/teapotframework/teabrew/pkg/store"
)

// maxBodyBytes caps request bodies well above any valid payload.
const maxBodyBytes = 1 << 20

// Server is the HTTP API server.
type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

// server implements Server.
type server struct {
	log     logrus.FieldLogger
	cfg     *config.Config
	store   store.Store
	metrics *metrics.Metrics
	hub     *Hub
	srv     *http.Server
	router  chi.Router

	rateLimiter *IPRateLimiter
}

// Ensure server implements Server.
var _ Server = (*server)(nil)

// NewServer creates a new API server.
func NewServer(log logrus.FieldLogger, cfg *config.Config, st store.Store, m *metrics.Metrics) Server {
	s := &server{
		log:     log.WithField("component", "api"),
		cfg:     cfg,
		store:   st,
		metrics: m,
	}

	if cfg.Events.Enabled {
		s.hub = NewHub(log, m, cfg.Events.AllowedOrigins)
	}

	// Initialize rate limiter if enabled.
	if cfg.Server.RateLimit.Enabled {
		s.rateLimiter = NewIPRateLimiter(cfg.Server.RateLimit.RequestsPerMinute)

		log.WithField("requests_per_minute", cfg.Server.RateLimit.RequestsPerMinute).
			Info("Rate limiting enabled")
	}

	s.setupRouter()

	return s
}

// Start starts the HTTP server.
func (s *server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.cfg.Server.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.WithField("addr", s.cfg.Server.Listen).Info("Starting API server")

	// Start WebSocket hub.
	if s.hub != nil {
		go s.hub.Run(ctx)
	}

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("Server error")
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *server) Stop() error {
	if s.srv == nil {
		return nil
	}

	s.log.Info("Stopping API server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.srv.Shutdown(ctx)
}

func (s *server) setupRouter() {
	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(s.recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.metricsMiddleware)

	// CORS.
	if len(s.cfg.Server.CORSOrigins) > 0 {
		r.Use(corsMiddleware(s.cfg.Server.CORSOrigins))
	}

	if s.rateLimiter != nil {
		r.Use(s.rateLimiter.Middleware)
	}

	// Unknown routes and methods answer in the same JSON error shape as
	// everything else.
	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)

	// System.
	r.Get("/health", s.handleHealth)
	r.Get("/health/live", s.handleLiveness)
	r.Get("/health/ready", s.handleReadiness)
	r.Get("/brew", s.handleBrewCoffee)
	r.Get("/openapi.json", s.handleOpenAPISpec)
	r.Handle("/metrics", s.metrics.Handler())

	// Teapots.
	r.Get("/teapots", s.handleListTeapots)
	r.Post("/teapots", s.handleCreateTeapot)
	r.Get("/teapots/{id}", s.handleGetTeapot)
	r.Put("/teapots/{id}", s.handleUpdateTeapot)
	r.Patch("/teapots/{id}", s.handlePatchTeapot)
	r.Delete("/teapots/{id}", s.handleDeleteTeapot)
	r.Get("/teapots/{id}/brews", s.handleListTeapotBrews)

	// Teas.
	r.Get("/teas", s.handleListTeas)
	r.Post("/teas", s.handleCreateTea)
	r.Get("/teas/{id}", s.handleGetTea)
	r.Put("/teas/{id}", s.handleUpdateTea)
	r.Patch("/teas/{id}", s.handlePatchTea)
	r.Delete("/teas/{id}", s.handleDeleteTea)

	// Brews.
	r.Get("/brews", s.handleListBrews)
	r.Post("/brews", s.handleCreateBrew)
	r.Get("/brews/{id}", s.handleGetBrew)
	r.Patch("/brews/{id}", s.handlePatchBrew)
	r.Delete("/brews/{id}", s.handleDeleteBrew)

	// Steeps.
	r.Get("/brews/{id}/steeps", s.handleListSteeps)
	r.Post("/brews/{id}/steeps", s.handleCreateSteep)

	// Events.
	if s.hub != nil {
		r.Get("/ws", s.handleWebSocket)
	}

	s.router = r
}

func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowAll := len(origins) == 1 && origins[0] == "*"

	originSet := make(map[string]bool, len(origins))
	for _, origin := range origins {
		originSet[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if allowAll || originSet[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// recoverer converts handler panics into the standard JSON 500 payload.
func (s *server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				s.log.WithFields(logrus.Fields{
					"panic": rec,
					"path":  r.URL.Path,
					"stack": string(debug.Stack()),
				}).Error("Panic while handling request")

				s.writeError(w, http.StatusInternalServerError, model.CodeInternalError,
					"An unexpected error occurred")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// metricsMiddleware records request counts and latencies per route.
func (s *server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = "unmatched"
		}

		s.metrics.RecordHTTPRequest(r.Method, path, strconv.Itoa(ww.Status()), time.Since(start).Seconds())
	})
}

// ============================================================================
// Response helpers
// ============================================================================

func (s *server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.WithError(err).Error("Failed to encode JSON response")
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, model.ErrorResponse{Code: code, Message: message})
}

func (s *server) writeValidationError(w http.ResponseWriter, message string, details model.FieldErrors) {
	s.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
		Code:    model.CodeValidationError,
		Message: message,
		Details: details,
	})
}

func (s *server) writeInternalError(w http.ResponseWriter, err error, msg string) {
	s.log.WithError(err).Error(msg)
	s.writeError(w, http.StatusInternalServerError, model.CodeInternalError,
		"An unexpected error occurred")
}

// readBody drains the request body. A failed read is reported in the
// same shape as a malformed JSON object.
func (s *server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeValidationError(w, "Invalid request body",
			model.FieldErrors{"body": "must be a valid JSON object"})

		return nil, false
	}

	return data, true
}

// broadcastEvent pushes an entity change to event stream subscribers.
func (s *server) broadcastEvent(eventType MessageType, resource string, payload any) {
	if s.hub == nil {
		return
	}

	s.hub.BroadcastEntityChange(eventType, resource, payload)
	s.metrics.RecordEventBroadcast(string(eventType))
}

func (s *server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, http.StatusNotFound, model.CodeNotFound, "Resource not found")
}
