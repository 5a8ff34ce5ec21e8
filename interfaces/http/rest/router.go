package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"icd11-hierarchy/application/services"
	"icd11-hierarchy/infrastructure/config"
	"icd11-hierarchy/interfaces/http/rest/handlers"
	"icd11-hierarchy/interfaces/http/rest/middleware"
	"icd11-hierarchy/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	service *services.HierarchyQueryService
	metrics *observability.Collector
	cfg     config.ServerConfig
	logger  *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	service *services.HierarchyQueryService,
	metrics *observability.Collector,
	cfg config.ServerConfig,
	logger *zap.Logger,
) *Router {
	return &Router{
		service: service,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
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
	if rt.metrics != nil {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	// API routes
	hierarchyHandler := handlers.NewHierarchyHandler(rt.service, rt.metrics, rt.logger)
	router.Route("/api/v1/hierarchy", func(r chi.Router) {
		r.Get("/children", hierarchyHandler.GetChildren)
		r.Get("/descendants", hierarchyHandler.GetDescendants)
		r.Get("/nodes/{nodeID}", hierarchyHandler.GetNode)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{"status": "healthy"}
	if stats, err := rt.service.Stats(); err == nil {
		payload["graph"] = stats
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payload)
}

func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	if !rt.service.Ready() {
		http.Error(w, "graph not built", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}
