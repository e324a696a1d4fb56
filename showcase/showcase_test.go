package showcase_test

import (
	"fmt"
	"testing"

	"github.com/moh-adedamola/portfolio/errs"
	"github.com/moh-adedamola/portfolio/markup/markuptest"
	"github.com/moh-adedamola/portfolio/models"
	"github.com/moh-adedamola/portfolio/showcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func ptr(s string) *string { return &s }

func project(title string, tools ...string) models.Project {
	return models.Project{
		ID:       models.ProjectID(title),
		Title:    title,
		Problem:  title + " problem",
		Solution: title + " solution",
		Impact:   title + " impact",
		Details:  title + " details",
		Tools:    tools,
	}
}

func carRental() models.Project {
	p := project("Car Rental Service App", "MongoDB", "Express.js", "React", "Node.js", "Tailwind CSS", "REST APIs")
	p.Link = ptr("https://moh-car-rental.vercel.app/")
	return p
}

func library() models.Project {
	p := project("Library Management System", "Java Spring Boot", "MySQL", "React.js", "REST APIs", "Bootstrap")
	p.GithubLink = ptr("https://github.com/moh-Adedamola/LibraryManagementApp.git")
	return p
}

func renderShowcase(t *testing.T, s *showcase.Showcase, links showcase.Links) *html.Node {
	t.Helper()
	return markuptest.RenderNode(t, s.View(links))
}

func TestGridRendersOneCardPerProjectInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 3, 7} {
		t.Run(fmt.Sprintf("%d projects", n), func(t *testing.T) {
			projects := make([]models.Project, 0, n)
			want := make([]string, 0, n)
			for i := range n {
				title := fmt.Sprintf("Project %d", i)
				projects = append(projects, project(title, "Go"))
				want = append(want, title)
			}

			doc := renderShowcase(t, showcase.New(projects), showcase.Links{})

			require.NotNil(t, markuptest.First(doc, markuptest.ByClass("project-grid")))
			cards := markuptest.FindAll(doc, markuptest.ByClass("project-card"))
			require.Len(t, cards, n)
			titles := markuptest.Texts(markuptest.FindAll(doc, markuptest.ByClass("project-card__select")))
			assert.Equal(t, want, titles)
		})
	}
}

func TestActivateCardOpensOverlay(t *testing.T) {
	projects := []models.Project{carRental(), library()}
	s := showcase.New(projects)
	assert.Equal(t, showcase.StateClosed, s.Selection().State())

	require.NoError(t, s.Grid().ActivateCard(0))

	selected, ok := s.Selection().Project()
	require.True(t, ok)
	assert.Equal(t, projects[0].ID, selected.ID)
	assert.Equal(t, showcase.StateOpen, s.Selection().State())

	doc := renderShowcase(t, s, showcase.Links{})
	overlay := markuptest.First(doc, markuptest.ByID(showcase.OverlayID))
	require.NotNil(t, overlay)

	assert.Equal(t, "Car Rental Service App", markuptest.Text(markuptest.First(overlay, markuptest.ByTag("h3"))))
	bodies := markuptest.Texts(markuptest.FindAll(overlay, markuptest.ByClass("project-modal__body")))
	assert.Equal(t, []string{
		"Car Rental Service App problem",
		"Car Rental Service App solution",
		"Car Rental Service App impact",
		"Car Rental Service App details",
	}, bodies)

	headings := markuptest.Texts(markuptest.FindAll(overlay, markuptest.ByTag("h4")))
	assert.Equal(t, []string{"Problem Statement", "Solution Developed", "Key Impact", "Technical Details"}, headings)

	toolList := markuptest.First(overlay, markuptest.ByClass("project-modal__tools"))
	require.NotNil(t, toolList)
	assert.Equal(t, projects[0].Tools, markuptest.Texts(markuptest.FindAll(toolList, markuptest.ByClass("tool-badge"))))
}

func TestActivateCardOutOfRange(t *testing.T) {
	s := showcase.New([]models.Project{library()})

	err := s.Grid().ActivateCard(1)
	assert.True(t, errs.IsNotFound(err))
	assert.True(t, s.Selection().IsNone())
}

func TestCardToolSummary(t *testing.T) {
	tests := []struct {
		name      string
		tools     []string
		wantShown []string
		wantMore  string
	}{
		{"none", nil, []string{}, ""},
		{"three", []string{"a", "b", "c"}, []string{"a", "b", "c"}, ""},
		{"four", []string{"a", "b", "c", "d"}, []string{"a", "b", "c"}, "+1 more"},
		{"five", []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c"}, "+2 more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := renderShowcase(t, showcase.New([]models.Project{project("P", tt.tools...)}), showcase.Links{})
			list := markuptest.First(doc, markuptest.ByClass("project-card__tools"))
			require.NotNil(t, list)

			var shown []string
			for _, badge := range markuptest.FindAll(list, markuptest.ByClass("tool-badge")) {
				if !markuptest.ByClass("tool-badge--more")(badge) {
					shown = append(shown, markuptest.Text(badge))
				}
			}
			if shown == nil {
				shown = []string{}
			}
			assert.Equal(t, tt.wantShown, shown)

			more := markuptest.FindAll(list, markuptest.ByClass("tool-badge--more"))
			if tt.wantMore == "" {
				assert.Empty(t, more)
				return
			}
			require.Len(t, more, 1)
			assert.Equal(t, tt.wantMore, markuptest.Text(more[0]))
		})
	}
}

func TestSummaryTools(t *testing.T) {
	shown, hidden := showcase.SummaryTools([]string{"a", "b", "c", "d"})
	assert.Equal(t, []string{"a", "b", "c"}, shown)
	assert.Equal(t, 1, hidden)
	assert.Equal(t, "+1 more", showcase.MoreLabel(hidden))

	shown, hidden = showcase.SummaryTools([]string{"a"})
	assert.Equal(t, []string{"a"}, shown)
	assert.Zero(t, hidden)
}

func TestLinksFollowOptionalFields(t *testing.T) {
	both := project("Both", "Go")
	both.Link = ptr("https://example.com/app")
	both.GithubLink = ptr("https://github.com/example/app")

	tests := []struct {
		name       string
		project    models.Project
		wantDemo   int
		wantSource int
	}{
		{"source only", library(), 0, 1},
		{"demo only", carRental(), 1, 0},
		{"both", both, 1, 1},
		{"neither", project("Neither", "Go"), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := showcase.New([]models.Project{tt.project})

			doc := renderShowcase(t, s, showcase.Links{})
			assert.Len(t, markuptest.FindAll(doc, markuptest.ByClass("project-link--demo")), tt.wantDemo)
			assert.Len(t, markuptest.FindAll(doc, markuptest.ByClass("project-link--source")), tt.wantSource)

			require.NoError(t, s.Grid().ActivateCard(0))
			doc = renderShowcase(t, s, showcase.Links{})
			overlay := markuptest.First(doc, markuptest.ByID(showcase.OverlayID))
			require.NotNil(t, overlay)
			assert.Len(t, markuptest.FindAll(overlay, markuptest.ByClass("project-action--demo")), tt.wantDemo)
			assert.Len(t, markuptest.FindAll(overlay, markuptest.ByClass("project-action--source")), tt.wantSource)

			hasBlock := markuptest.First(overlay, markuptest.ByClass("project-modal__links")) != nil
			assert.Equal(t, tt.wantDemo+tt.wantSource > 0, hasBlock)
		})
	}
}

func TestExternalLinksOpenSafely(t *testing.T) {
	s := showcase.New([]models.Project{carRental(), library()})
	require.NoError(t, s.Grid().ActivateCard(0))
	doc := renderShowcase(t, s, showcase.Links{})

	external := markuptest.FindAll(doc, func(n *html.Node) bool {
		return markuptest.ByClass("project-link")(n) || markuptest.ByClass("project-action")(n)
	})
	require.Len(t, external, 3)
	for _, a := range external {
		assert.Equal(t, "_blank", markuptest.Attr(a, "target"))
		assert.Equal(t, "noopener noreferrer", markuptest.Attr(a, "rel"))
	}

	demo := markuptest.First(doc, markuptest.ByClass("project-action--demo"))
	assert.Equal(t, "https://moh-car-rental.vercel.app/", markuptest.Attr(demo, "href"))
	assert.Contains(t, markuptest.Text(demo), "moh-car-rental.vercel.app/")
	assert.NotContains(t, markuptest.Text(demo), "https://")
}

func TestCloseControlsAndPanel(t *testing.T) {
	tests := []struct {
		name     string
		activate func(showcase.Overlay)
		wantOpen bool
	}{
		{"close control", showcase.Overlay.ActivateClose, false},
		{"backdrop", showcase.Overlay.ActivateBackdrop, false},
		{"panel", showcase.Overlay.ActivatePanel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := showcase.New([]models.Project{carRental()})
			require.NoError(t, s.Grid().ActivateCard(0))

			overlay, ok := s.Overlay()
			require.True(t, ok)
			tt.activate(overlay)

			_, open := s.Overlay()
			assert.Equal(t, tt.wantOpen, open)

			doc := renderShowcase(t, s, showcase.Links{})
			mount := markuptest.First(doc, markuptest.ByID(showcase.OverlayMountID))
			require.NotNil(t, mount, "mount is always rendered")
			assert.Equal(t, tt.wantOpen, markuptest.First(mount, markuptest.ByID(showcase.OverlayID)) != nil)
		})
	}
}

func TestBackdropIsNotAnAncestorOfThePanel(t *testing.T) {
	s := showcase.New([]models.Project{carRental()})
	require.NoError(t, s.Grid().ActivateCard(0))
	doc := renderShowcase(t, s, showcase.Links{})

	backdrop := markuptest.First(doc, markuptest.ByClass("project-modal__backdrop"))
	panel := markuptest.First(doc, markuptest.ByClass("project-modal__panel"))
	closeControl := markuptest.First(doc, markuptest.ByClass("project-modal__close"))
	require.NotNil(t, backdrop)
	require.NotNil(t, panel)
	require.NotNil(t, closeControl)

	assert.False(t, markuptest.Contains(backdrop, panel))
	assert.True(t, markuptest.Contains(panel, closeControl))
	assert.Equal(t, "Close project modal", markuptest.Attr(closeControl, "aria-label"))
	assert.Equal(t, "/#projects", markuptest.Attr(closeControl, "href"))
	assert.Equal(t, "/#projects", markuptest.Attr(backdrop, "href"))
}

func TestLinkActivationNeverSelects(t *testing.T) {
	both := carRental()
	both.GithubLink = ptr("https://github.com/moh-Adedamola/car-rental")
	s := showcase.New([]models.Project{both, library()})
	grid := s.Grid()

	url, err := grid.ActivateLink(0, showcase.LinkDemo)
	require.NoError(t, err)
	assert.Equal(t, "https://moh-car-rental.vercel.app/", url)

	url, err = grid.ActivateLink(1, showcase.LinkSource)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/moh-Adedamola/LibraryManagementApp.git", url)

	_, err = grid.ActivateLink(1, showcase.LinkDemo)
	assert.True(t, errs.IsNotFound(err))
	_, err = grid.ActivateLink(5, showcase.LinkSource)
	assert.True(t, errs.IsNotFound(err))

	assert.True(t, s.Selection().IsNone())

	doc := renderShowcase(t, s, showcase.Links{})
	for _, link := range markuptest.FindAll(doc, markuptest.ByClass("project-link")) {
		sel := markuptest.First(doc, markuptest.ByClass("project-card__select"))
		assert.False(t, markuptest.Contains(sel, link), "link nested in select control")
	}
}

func TestSelectThenCloseThenSelectAnother(t *testing.T) {
	s := showcase.New([]models.Project{carRental(), library()})

	require.NoError(t, s.Grid().ActivateCard(0))
	overlay, ok := s.Overlay()
	require.True(t, ok)
	overlay.ActivateClose()
	require.True(t, s.Selection().IsNone())

	require.NoError(t, s.Grid().ActivateCard(1))
	doc := renderShowcase(t, s, showcase.Links{})
	modal := markuptest.First(doc, markuptest.ByID(showcase.OverlayID))
	require.NotNil(t, modal)

	assert.Equal(t, "Library Management System", markuptest.Text(markuptest.First(modal, markuptest.ByTag("h3"))))
	assert.Len(t, markuptest.FindAll(modal, markuptest.ByClass("project-action--source")), 1)
	assert.Empty(t, markuptest.FindAll(modal, markuptest.ByClass("project-action--demo")))
	tools := markuptest.First(modal, markuptest.ByClass("project-modal__tools"))
	assert.Len(t, markuptest.FindAll(tools, markuptest.ByClass("tool-badge")), 5)
}

func TestLiveLinksCarryDatastarActions(t *testing.T) {
	p := library()
	s := showcase.New([]models.Project{p})

	doc := renderShowcase(t, s, showcase.Links{})
	sel := markuptest.First(doc, markuptest.ByClass("project-card__select"))
	assert.Equal(t, "/projects/"+p.ID.String()+"/#projects", markuptest.Attr(sel, "href"))
	assert.False(t, markuptest.HasAttr(sel, "data-on:click__prevent"))

	live := showcase.Links{Base: "site", Live: true}
	require.NoError(t, s.Grid().ActivateCard(0))
	doc = renderShowcase(t, s, live)

	sel = markuptest.First(doc, markuptest.ByClass("project-card__select"))
	assert.Equal(t, "/site/projects/"+p.ID.String()+"/#projects", markuptest.Attr(sel, "href"))
	assert.Equal(t, "@get('/site/projects/"+p.ID.String()+"/overlay')", markuptest.Attr(sel, "data-on:click__prevent"))

	closeControl := markuptest.First(doc, markuptest.ByClass("project-modal__close"))
	assert.Equal(t, "@get('/site/overlay/close')", markuptest.Attr(closeControl, "data-on:click__prevent"))
	modal := markuptest.First(doc, markuptest.ByID(showcase.OverlayID))
	assert.Contains(t, markuptest.Attr(modal, "data-on:keydown__window"), "Escape")
}
