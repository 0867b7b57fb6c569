package rest

import (
	"net/http"

	"graphbench/application/services"
	"graphbench/infrastructure/config"
	"graphbench/interfaces/http/rest/handlers"
	"graphbench/interfaces/http/rest/middleware"
	"graphbench/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg         *config.Config
	constraints *services.ConstraintService
	session     *services.GraphSession
	measures    *services.MeasureService
	metrics     *observability.Collector
	logger      *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	constraints *services.ConstraintService,
	session *services.GraphSession,
	measures *services.MeasureService,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:         cfg,
		constraints: constraints,
		session:     session,
		measures:    measures,
		metrics:     metrics,
		logger:      logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))

	// CORS configuration for the workbench frontend
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		// Session endpoints
		sessionHandler := handlers.NewSessionHandler(rt.constraints, rt.session, rt.measures, rt.logger)
		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Put("/constraints", sessionHandler.UpdateConstraints)
			r.Get("/constraints/export", sessionHandler.ExportConstraints)
			r.Post("/constraints/import", sessionHandler.ImportConstraints)
			r.Post("/constraints/archive", sessionHandler.SaveConstraints)
			r.Get("/constraints/archive", sessionHandler.ListArchivedConstraints)
			r.Get("/constraints/archive/{name}", sessionHandler.GetArchivedConstraints)
		})

		// Instance endpoints
		instanceHandler := handlers.NewInstanceHandler(rt.session, rt.logger)
		r.Route("/instances", func(r chi.Router) {
			r.Get("/", instanceHandler.ListInstances)
			r.Post("/select", instanceHandler.SelectInstance)
			r.Get("/current", instanceHandler.CurrentInstance)
		})

		// Measure endpoints
		measureHandler := handlers.NewMeasureHandler(rt.measures, rt.constraints, rt.logger)
		r.Route("/measures", func(r chi.Router) {
			r.Get("/", measureHandler.Catalog)
			r.Put("/requested", measureHandler.SetRequested)
			r.Post("/compute", measureHandler.Compute)
			r.Get("/results", measureHandler.Results)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
