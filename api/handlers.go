package api

import (
	"time"

	"github.com/moh-adedamola/portfolio/content"
	"github.com/moh-adedamola/portfolio/showcase"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(site content.Content, links showcase.Links, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		pageHandler:    newPageHandler(site, links),
		overlayHandler: newOverlayHandler(site, links),
		projectHandler: newProjectHandler(site.ProjectRepo()),
		healthHandler:  newHealthHandler(site.ProjectRepo(), startupTime),
	}
}
