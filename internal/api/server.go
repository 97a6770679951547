package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/terra-clan/paradigm-advisor/internal/config"
	"github.com/terra-clan/paradigm-advisor/internal/page"
	"github.com/terra-clan/paradigm-advisor/internal/session"
)

// Server represents the HTTP server for the page and its API
type Server struct {
	config     config.ServerConfig
	session    config.SessionConfig
	router     *chi.Mux
	catalogue  page.Catalogue
	controller *page.Controller
	sessions   session.Store
}

// NewServer creates a new server
func NewServer(
	cfg config.ServerConfig,
	sessCfg config.SessionConfig,
	catalogue page.Catalogue,
	store session.Store,
) *Server {
	s := &Server{
		config:     cfg,
		session:    sessCfg,
		catalogue:  catalogue,
		controller: page.NewController(catalogue),
		sessions:   store,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	limit := func(next http.Handler) http.Handler { return next }
	if s.config.RateLimitPerMinute > 0 {
		limit = httprate.LimitByIP(s.config.RateLimitPerMinute, time.Minute)
	}

	// Live updates hold the connection open, so they stay outside the request timeout
	r.With(limit, s.sessionMiddleware).Get("/ws", s.handleLive)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check and metrics
		r.Get("/health", s.handleHealth)
		r.Get("/ready", s.handleReady)
		r.Handle("/metrics", promhttp.Handler())

		// The page
		r.Group(func(r chi.Router) {
			r.Use(s.sessionMiddleware)
			r.Get("/", s.handlePage)
			r.With(limit).Post("/", s.handlePageAction)
		})

		// Read-only JSON API
		r.Route("/api/v1", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: s.config.AllowedOrigins,
				AllowedMethods: []string{"GET", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
				ExposedHeaders: []string{"X-Request-ID"},
				MaxAge:         300,
			}))

			r.Route("/scenarios", func(r chi.Router) {
				r.Get("/", s.handleListScenarios)
				r.Get("/{id}", s.handleGetScenario)
			})
			r.Get("/criteria", s.handleListCriteria)
			r.Get("/recommendation", s.handleRecommend)
		})
	})

	s.router = r
}
