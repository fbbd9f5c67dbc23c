package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupPageRoutes serves the portfolio page and its HTMX event endpoint.
func setupPageRoutes(r chi.Router, handlers *routeHandlers, cookies sessionMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(cookies.attach)

		r.Get("/", handlers.pageHandler.renderPage())
		r.Post(eventsPath, handlers.pageHandler.postEvent())
	})
}

// setupAPIRoutes serves the read-only catalog and the JSON/WebSocket showcase.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, cookies sessionMiddleware, allowedOrigins []string) {
	r.Route("/api", func(r chi.Router) {
		r.Use(corsMiddleware(allowedOrigins))

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/showcase/ws", handlers.wsHandler.serve())

		r.Group(func(r chi.Router) {
			r.Use(cookies.attach)

			r.Get("/showcase", handlers.showcaseHandler.getState())
			r.Post("/showcase/events", handlers.showcaseHandler.postEvent())
			r.Delete("/showcase", handlers.showcaseHandler.endSession())
		})
	})
}

// setupAssetRoutes serves project images and other static files from dir.
func setupAssetRoutes(r chi.Router, dir string) {
	if dir == "" {
		return
	}
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(dir))))
}
