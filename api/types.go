package api

import "github.com/moh-adedamola/portfolio/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler    pageHandler
	overlayHandler overlayHandler
	projectHandler projectHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"project not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"projectID"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ProjectCollection is the catalog in display order
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Uptime   string `json:"uptime" example:"1h2m3s"`
	Projects int    `json:"projects" example:"3"`
}
