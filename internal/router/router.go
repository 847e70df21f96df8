// Package router sets up all HTTP routes and middleware chains for the
// catalog API. Routes are grouped by surface: catalog, brands, and content.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bijoucatalog/internal/handlers"
	"bijoucatalog/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(cat *handlers.Catalog, storefront *handlers.Storefront) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check — no caching.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories/tree", cat.Tree)
			r.Get("/categories/*", cat.ResolvePath)
			r.Get("/brands", storefront.Brands)
		})

		r.Route("/content", func(r chi.Router) {
			r.Get("/announcements", storefront.Announcements)
			r.Get("/banners", storefront.Banners)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
