package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/edvin/cdhplugin/internal/api/handler"
	mw "github.com/edvin/cdhplugin/internal/api/middleware"
	"github.com/edvin/cdhplugin/internal/config"
	"github.com/edvin/cdhplugin/internal/core"
	"github.com/edvin/cdhplugin/internal/metrics"
	"github.com/edvin/cdhplugin/internal/validation"
)

// Pool is the database handle the server needs: queries for the run store
// and Ping for health checks. *pgxpool.Pool satisfies it.
type Pool interface {
	core.DB
	Ping(ctx context.Context) error
}

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	services *core.Services
	pool     Pool
	cfg      *config.Config
}

func NewServer(logger zerolog.Logger, pool Pool, cfg *config.Config) *Server {
	version := cfg.PluginVersion
	if version == "" {
		version = validation.DefaultVersion
	}

	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		services: core.NewServices(pool, version, logger),
		pool:     pool,
		cfg:      cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes() {
	ops := metrics.Handler(s.pool.Ping)
	s.router.Handle("/metrics", ops)
	s.router.Handle("/healthz", ops)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.Auth(s.cfg.APIKey))

		// Validations
		v := handler.NewValidation(s.services.Validation)
		r.Post("/validations/cluster", v.Cluster)
		r.Post("/validations/scaling/additional", v.AdditionalScaling)
		r.Post("/validations/scaling/existing", v.ExistingScaling)
		r.Get("/validations", v.List)
		r.Get("/validations/{id}", v.Get)

		// Versions
		ver := handler.NewVersion(s.services.Validation)
		r.Get("/versions", ver.List)
		r.Get("/versions/{version}/processes", ver.Processes)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
