package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/moh-adedamola/portfolio/content"
	"github.com/moh-adedamola/portfolio/showcase"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/starfederation/datastar-go/datastar"
)

// overlayHandler serves the live updates behind the card and close
// controls. Each response patches the overlay mount in place.
type overlayHandler struct {
	responder Responder
	logger    zerolog.Logger
	site      content.Content
	links     showcase.Links
}

func newOverlayHandler(site content.Content, links showcase.Links) overlayHandler {
	logger := log.With().Str("handlerName", "overlayHandler").Logger()

	return overlayHandler{
		responder: NewResponder(logger),
		logger:    logger,
		site:      site,
		links:     links,
	}
}

// openOverlay patches the mount with the overlay for one project
func (h overlayHandler) openOverlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := selectProject(h.site, chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.patchMount(w, r, s)
	}
}

// closeOverlay patches the mount back to empty
func (h overlayHandler) closeOverlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := showcase.New(h.site.ProjectRepo().FindAll())
		h.patchMount(w, r, s)
	}
}

func (h overlayHandler) patchMount(w http.ResponseWriter, r *http.Request, s *showcase.Showcase) {
	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(s.OverlayMount(h.links)); err != nil {
		h.logger.Error().Err(err).Str("state", s.Selection().State().String()).Msg("failed to patch overlay")
		_ = sse.ConsoleError(err)
	}
}
