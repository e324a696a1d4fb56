package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/moh-adedamola/portfolio/resources"
	"github.com/moh-adedamola/portfolio/showcase"
)

// setupRoutes mounts the page, live update, JSON and asset routes
func setupRoutes(r chi.Router, handlers *routeHandlers, links showcase.Links) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Pages
		r.Get("/", handlers.pageHandler.home())
		r.Get("/projects/{projectID}", handlers.pageHandler.projectPage())
		r.Get("/projects/{projectID}/", handlers.pageHandler.projectPage())

		// Live overlay updates over server-sent events
		r.Get("/projects/{projectID}/overlay", handlers.overlayHandler.openOverlay())
		r.Get("/overlay/close", handlers.overlayHandler.closeOverlay())

		// Project Handler endpoints
		r.Route("/api", func(r chi.Router) {
			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		})

		r.Handle("/static/*", resources.Handler(links.Asset("")))
	})
}
