package showcase

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/errs"
	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/models"
)

// SummaryToolLimit is how many tools a card lists before collapsing the
// rest into a "+N more" badge.
const SummaryToolLimit = 3

// LinkKind identifies one of the external links a project can carry.
type LinkKind int

const (
	LinkDemo LinkKind = iota
	LinkSource
)

func (k LinkKind) String() string {
	if k == LinkSource {
		return "source"
	}
	return "demo"
}

// Grid renders one summary card per project in catalog order.
type Grid struct {
	Projects []models.Project
	OnSelect func(models.Project)
}

// ActivateCard reports the selection of card i. It has no other effect.
func (g Grid) ActivateCard(i int) error {
	if i < 0 || i >= len(g.Projects) {
		return errs.NewNotFound(fmt.Sprintf("project card %d", i))
	}
	if g.OnSelect != nil {
		g.OnSelect(g.Projects[i])
	}
	return nil
}

// ActivateLink returns the URL that card i's link of the given kind opens in
// a new browsing context. The card is not selected.
func (g Grid) ActivateLink(i int, kind LinkKind) (string, error) {
	if i < 0 || i >= len(g.Projects) {
		return "", errs.NewNotFound(fmt.Sprintf("project card %d", i))
	}
	url, ok := linkURL(g.Projects[i], kind)
	if !ok {
		return "", errs.NewNotFound(fmt.Sprintf("%s link", kind))
	}
	return url, nil
}

func linkURL(p models.Project, kind LinkKind) (string, bool) {
	if kind == LinkSource {
		return p.SourceURL()
	}
	return p.DemoURL()
}

// SummaryTools splits tools into the badges a card shows and the number of
// tools left out.
func SummaryTools(tools []string) (shown []string, hidden int) {
	if len(tools) <= SummaryToolLimit {
		return tools, 0
	}
	return tools[:SummaryToolLimit], len(tools) - SummaryToolLimit
}

// MoreLabel is the text of the collapsed tools badge.
func MoreLabel(hidden int) string {
	return fmt.Sprintf("+%d more", hidden)
}

func (g Grid) View(links Links) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Wrap("div", []markup.Attr{markup.Class("project-grid", "grid md:grid-cols-2 lg:grid-cols-3 gap-4 sm:gap-6")}, func() {
			for i, p := range g.Projects {
				card(m, i, p, links)
			}
		})
	})
}

func card(m *markup.Writer, index int, p models.Project, links Links) {
	attrs := []markup.Attr{
		markup.Class("project-card", "reveal group relative bg-gray-900/20 backdrop-blur-sm rounded-3xl p-4 sm:p-6 shadow-xl border border-gray-600/30 hover:border-teal-300/50 transition-all duration-500"),
		markup.A("data-project-id", p.ID.String()),
		markup.A("style", fmt.Sprintf("--reveal-delay: %dms", 300+index*200)),
	}
	m.Wrap("article", attrs, func() {
		m.Wrap("h3", []markup.Attr{markup.Class("project-card__title", "text-lg sm:text-xl lg:text-2xl font-bold mb-4 text-gradient")}, func() {
			// The select link stretches over the whole card; the link row
			// below sits above it, so activating a link never selects.
			m.Element("a", p.Title, markup.Join(
				[]markup.Attr{markup.Class("project-card__select", "stretched-link focus:outline-none")},
				links.selectAttrs(p),
				[]markup.Attr{markup.A("aria-label", "Show details for "+p.Title)},
			)...)
		})

		demo, hasDemo := p.DemoURL()
		source, hasSource := p.SourceURL()
		if hasDemo || hasSource {
			m.Wrap("div", []markup.Attr{markup.Class("project-card__links", "relative z-10 flex gap-3 mb-4")}, func() {
				if hasDemo {
					m.Element("a", "Live Demo", markup.Join(
						[]markup.Attr{markup.Class("project-link", "project-link--demo", "btn-primary text-sm")},
						markup.External(demo),
					)...)
				}
				if hasSource {
					m.Element("a", "Code", markup.Join(
						[]markup.Attr{markup.Class("project-link", "project-link--source", "btn-secondary text-sm")},
						markup.External(source),
					)...)
				}
			})
		}

		m.Wrap("div", []markup.Attr{markup.Class("project-card__problem", "bg-gray-900/20 rounded-2xl p-4 mb-4 border border-gray-600/30")}, func() {
			m.Element("p", p.Problem, markup.Class("text-gray-100 font-light leading-relaxed text-sm sm:text-base"))
		})

		shown, hidden := SummaryTools(p.Tools)
		m.Wrap("ul", []markup.Attr{markup.Class("project-card__tools", "flex flex-wrap gap-2")}, func() {
			for _, tool := range shown {
				m.Element("li", tool, markup.Class("tool-badge", "badge text-xs sm:text-sm"))
			}
			if hidden > 0 {
				m.Element("li", MoreLabel(hidden), markup.Class("tool-badge", "tool-badge--more", "badge text-xs sm:text-sm"))
			}
		})
	})
}
