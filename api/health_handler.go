package api

import (
	"net/http"
	"time"

	"github.com/moh-adedamola/portfolio/content"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	projectRepo *content.ProjectRepo
	startupTime time.Time
}

func newHealthHandler(projectRepo *content.ProjectRepo, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		projectRepo: projectRepo,
		startupTime: startupTime,
	}
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:   "ok",
			Uptime:   time.Since(h.startupTime).Round(time.Second).String(),
			Projects: h.projectRepo.Count(),
		})
	}
}
