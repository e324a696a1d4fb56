// Package showcase implements the project grid and the detail overlay, and
// the container that owns which project, if any, is selected.
package showcase

import (
	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/models"
)

// Showcase owns the selection. The grid only reports selections and the
// overlay only reports closes; neither can change the selection itself.
// A Showcase is not safe for concurrent use; create one per request.
type Showcase struct {
	projects  []models.Project
	selection Selection
}

func New(projects []models.Project) *Showcase {
	return &Showcase{projects: projects}
}

func (s *Showcase) Selection() Selection {
	return s.selection
}

func (s *Showcase) Projects() []models.Project {
	return s.projects
}

// Grid returns the grid wired to select into this showcase.
func (s *Showcase) Grid() Grid {
	return Grid{Projects: s.projects, OnSelect: s.selectProject}
}

// Overlay returns the overlay for the selected project, wired to close this
// showcase. ok is false when nothing is selected.
func (s *Showcase) Overlay() (overlay Overlay, ok bool) {
	p, ok := s.selection.Project()
	if !ok {
		return Overlay{}, false
	}
	return Overlay{Project: p, OnClose: s.close}, true
}

func (s *Showcase) selectProject(p models.Project) {
	s.selection = Selected(p)
}

func (s *Showcase) close() {
	s.selection = None()
}

// View renders the grid followed by the overlay mount.
func (s *Showcase) View(links Links) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Render(s.Grid().View(links))
		m.Render(s.OverlayMount(links))
	})
}

// OverlayMount renders the stable element the overlay lives in. The mount is
// always present; the overlay inside it exists only while a project is
// selected.
func (s *Showcase) OverlayMount(links Links) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Wrap("div", []markup.Attr{markup.ID(OverlayMountID)}, func() {
			if overlay, ok := s.Overlay(); ok {
				m.Render(overlay.View(links))
			}
		})
	})
}
