package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/moh-adedamola/portfolio/content"
	"github.com/moh-adedamola/portfolio/errs"
	"github.com/moh-adedamola/portfolio/page"
	"github.com/moh-adedamola/portfolio/showcase"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	site      content.Content
	links     showcase.Links
}

func newPageHandler(site content.Content, links showcase.Links) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		site:      site,
		links:     links,
	}
}

// home renders the site with nothing selected
func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := showcase.New(h.site.ProjectRepo().FindAll())
		h.responder.WriteHTML(w, r, http.StatusOK, page.Page(h.site, s, h.links))
	}
}

// projectPage renders the site with the overlay open on one project
func (h pageHandler) projectPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := selectProject(h.site, chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WritePageError(w, r, h.links, err)
			return
		}

		h.responder.WriteHTML(w, r, http.StatusOK, page.Page(h.site, s, h.links))
	}
}

// selectProject builds a showcase and activates the card of the project
// named by rawID, exactly as a visitor selecting it would.
func selectProject(site content.Content, rawID string) (*showcase.Showcase, error) {
	if rawID == "" {
		return nil, errs.NewMissingRequiredFieldError("projectID")
	}

	projectID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errs.NewInvalidIDError("projectID", rawID, err)
	}

	repo := site.ProjectRepo()
	index := repo.IndexOf(projectID)
	if index < 0 {
		return nil, errs.NewNotFound("project")
	}

	s := showcase.New(repo.FindAll())
	if err := s.Grid().ActivateCard(index); err != nil {
		return nil, err
	}
	return s, nil
}
