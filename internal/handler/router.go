package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/web"
	"go.uber.org/zap"
)

// NewRouter assembles the full HTTP surface: middleware stack, API routes,
// operational endpoints, and the static UI.
func NewRouter(h *ActivityHandler, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(RequestID)               // attach request IDs
	r.Use(Logger(log))             // structured access log
	r.Use(metrics.Collect)         // prometheus request instrumentation
	r.Use(CORS)                    // permissive CORS for demo

	// Operational endpoints
	r.Get("/health", HealthCheck)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// API routes
	r.Get("/activities", h.ListActivities)
	r.Route("/activities/{name}", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/unregister", h.Unregister)
	})

	// Static UI – landing page at the root, assets under /static/.
	r.Get("/", web.Index)
	r.Handle("/static/*", web.Static())

	return r
}
