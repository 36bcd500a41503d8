package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/IoTIVP/data-veil/app"
	"github.com/IoTIVP/data-veil/internal"
)

// Server exposes the veil service over HTTP.
type Server struct {
	router  *chi.Mux
	service *app.VeilService
	logger  *internal.Logger
}

// NewServer creates a new API server
func NewServer(service *app.VeilService, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		logger:  logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/dashboard", s.handleDashboard)

	s.router.Post("/api/veil/{sensor}", s.handleVeil)
	s.router.Post("/api/fusion", s.handleFusion)
	s.router.Get("/api/sensors", s.handleSensors)
	s.router.Get("/api/profiles", s.handleProfiles)
	s.router.Get("/api/runs", s.handleRuns)
}

// Router returns the configured handler for serving and tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(port string) error {
	addr := ":" + port
	s.logger.Info("starting data-veil API server on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
