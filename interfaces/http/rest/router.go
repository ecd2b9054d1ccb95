package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/application/services"
	"github.com/Switchdoctorstu/Archimate-Ingester/infrastructure/config"
	"github.com/Switchdoctorstu/Archimate-Ingester/interfaces/http/rest/handlers"
	"github.com/Switchdoctorstu/Archimate-Ingester/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	models *services.ModelService
	cfg    *config.Config
	logger *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(models *services.ModelService, cfg *config.Config, logger *zap.Logger) *Router {
	return &Router{
		models: models,
		cfg:    cfg,
		logger: logger,
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

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.cfg.JWTSecret, rt.cfg.JWTIssuer, rt.logger))

		modelHandler := handlers.NewModelHandler(rt.models, rt.logger)
		cleanupHandler := handlers.NewCleanupHandler(rt.models, rt.logger)
		stagingHandler := handlers.NewStagingHandler(rt.models, rt.logger)

		r.Route("/model", func(r chi.Router) {
			r.Post("/import", modelHandler.Import)
			r.Get("/export", modelHandler.Export)
			r.Post("/undo", modelHandler.Undo)
			r.Get("/stats", modelHandler.Stats)

			r.Post("/validate", cleanupHandler.Validate)
			r.Post("/autocomplete", cleanupHandler.Autocomplete)

			r.Get("/inventory", modelHandler.Inventory)
			r.Get("/triples", modelHandler.Triples)
			r.Post("/mark-exported", modelHandler.MarkExported)
			r.Get("/catalog", modelHandler.Catalog)
			r.Get("/types", modelHandler.Types)

			r.Get("/elements/lookup", modelHandler.Lookup)
			r.Get("/elements/{elementID}/relationships", modelHandler.Neighbors)

			r.Post("/persist", modelHandler.Persist)
			r.Post("/restore", modelHandler.Restore)
		})

		r.Post("/staging", stagingHandler.Merge)
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
