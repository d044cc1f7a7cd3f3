// Package api provides the HTTP API server and handlers for the ShelfSpace
// backend.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shelfspace/shelfspace-server/internal/auth"
	"github.com/shelfspace/shelfspace-server/internal/http/response"
	"github.com/shelfspace/shelfspace-server/internal/identity"
	"github.com/shelfspace/shelfspace-server/internal/ratelimit"
	"github.com/shelfspace/shelfspace-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    *store.Store
	services *Services
	tokens   *auth.TokenService
	identity identity.Provider
	limiter  *ratelimit.KeyedRateLimiter
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
	devMode  bool
}

// NewServer creates a new HTTP server with all routes configured.
// limiter may be nil to disable rate limiting (tests).
func NewServer(store *store.Store, services *Services, tokens *auth.TokenService, provider identity.Provider, limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger, devMode bool) *Server {
	s := &Server{
		store:    store,
		services: services,
		tokens:   tokens,
		identity: provider,
		limiter:  limiter,
		router:   chi.NewRouter(),
		logger:   logger,
		devMode:  devMode,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("ShelfSpace API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}

	RegisterErrorHandler()
	s.api = humachi.New(s.router, humaConfig)

	s.registerHealthRoutes()
	s.registerProfileRoutes()
	s.registerShelfRoutes()
	s.registerItemRoutes()
	if s.devMode {
		s.registerAuthRoutes()
	}

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack. Order matters: the rate
// limiter needs RealIP, and everything should run inside Recoverer.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if s.limiter != nil {
		s.router.Use(RateLimitMiddleware(s.limiter, s.logger))
	}

	s.router.Use(authMiddleware(s.tokens))

	s.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w, s.logger)
	})
}
