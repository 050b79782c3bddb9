package routes

import (
	"net/http"

	"github.com/nutristack/advisor/backend/internal/api/handlers"
	"github.com/nutristack/advisor/backend/internal/api/middleware"
	"github.com/nutristack/advisor/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	prescriptionHandler *handlers.PrescriptionHandler
	catalogHandler      *handlers.CatalogHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	prescriptionHandler *handlers.PrescriptionHandler,
	catalogHandler *handlers.CatalogHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                 http.NewServeMux(),
		prescriptionHandler: prescriptionHandler,
		catalogHandler:      catalogHandler,
		cacheMiddleware:     cacheMiddleware,
		metrics:             metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Prescription endpoints
	r.mux.HandleFunc("POST /api/prescriptions/generate", r.prescriptionHandler.GeneratePrescription)
	r.mux.HandleFunc("GET /api/prescriptions/{id}", r.prescriptionHandler.GetPrescription)

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/supplements", r.catalogHandler.ListSupplements)
	r.mux.HandleFunc("GET /api/goals", r.catalogHandler.ListGoals)
	r.mux.HandleFunc("GET /api/protocols/{goal}", r.catalogHandler.GetProtocol)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
