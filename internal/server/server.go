// Package server provides the HTTP server and routing for the MGNREGA API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aftab0khan021/mgnrega/internal/config"
	"github.com/aftab0khan021/mgnrega/internal/di"
	dashboardhandlers "github.com/aftab0khan021/mgnrega/internal/modules/dashboard/handlers"
	"github.com/aftab0khan021/mgnrega/internal/scheduler"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Config    *config.Config
	Container *di.Container        // DI container with all services
	Scheduler *scheduler.Scheduler // optional, reported by /api/system/status
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	container      *di.Container
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	var seeds SeedCounter
	if cfg.Container.Seeder != nil {
		seeds = cfg.Container.Seeder
	}
	var schedule JobSchedule
	if cfg.Scheduler != nil {
		schedule = cfg.Scheduler
	}

	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		container: cfg.Container,
		systemHandlers: NewSystemHandlers(
			cfg.Log,
			cfg.Container.Backend,
			cfg.Container.SQLiteDB,
			cfg.Container.ReferenceStore,
			cfg.Container.PerformanceStore,
			seeds,
			schedule,
		),
	}

	s.setupMiddleware(cfg.Config.DevMode, cfg.Config.CORSOrigins)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second, // first states request may seed
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware installs the shared middleware stack. Responses are
// gzip-compressed outside dev mode.
func (s *Server) setupMiddleware(devMode bool, origins []string) {
	s.router.Use(
		middleware.Recoverer,
		middleware.RequestID,
		middleware.RealIP,
		s.loggingMiddleware,
		middleware.Timeout(60*time.Second),
		cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	if !devMode {
		s.router.Use(middleware.Compress(5, "application/json"))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleRoot)
		r.Get("/health", s.handleHealth)

		dashboardHandler := dashboardhandlers.NewHandler(s.container.DashboardService, s.log)
		dashboardHandler.RegisterRoutes(r)

		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
			r.Get("/database/stats", s.systemHandlers.HandleDatabaseStats)
		})
	})
}

// Start listens on the configured port. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Listening")
	return s.server.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx ends
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware writes one access log line per request. Server errors log at warn.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		ev := s.log.Info()
		if ww.Status() >= http.StatusInternalServerError {
			ev = s.log.Warn()
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
