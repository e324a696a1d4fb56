package showcase

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/models"
)

// Overlay shows the full detail of one project above the page.
type Overlay struct {
	Project models.Project
	OnClose func()
}

// ActivateClose handles the close control.
func (o Overlay) ActivateClose() {
	o.close()
}

// ActivateBackdrop handles activation of the area outside the panel.
func (o Overlay) ActivateBackdrop() {
	o.close()
}

// ActivatePanel handles activation inside the panel, which never closes.
func (o Overlay) ActivatePanel() {}

func (o Overlay) close() {
	if o.OnClose != nil {
		o.OnClose()
	}
}

// displayHost strips the scheme from a demo URL for display.
func displayHost(url string) string {
	return strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
}

func (o Overlay) View(links Links) templ.Component {
	p := o.Project
	return markup.Component(func(m *markup.Writer) {
		attrs := markup.Join(
			[]markup.Attr{
				markup.ID(OverlayID),
				markup.Class("project-modal", "fixed inset-0 z-50 flex items-center justify-center p-4"),
				markup.A("role", "dialog"),
				markup.A("aria-modal", "true"),
				markup.A("aria-labelledby", OverlayID+"-title"),
				markup.A("data-project-id", p.ID.String()),
			},
			links.escapeAttrs(),
		)
		m.Wrap("div", attrs, func() {
			// The backdrop is a sibling of the panel rather than its parent,
			// so nothing inside the panel can reach it.
			m.Element("a", "", markup.Join(
				[]markup.Attr{markup.Class("project-modal__backdrop", "absolute inset-0 bg-gradient-to-br from-gray-800/80 to-gray-700/80 backdrop-blur-md")},
				links.closeAttrs(),
				[]markup.Attr{markup.A("aria-label", "Close project details"), markup.A("tabindex", "-1")},
			)...)

			m.Wrap("div", []markup.Attr{markup.Class("project-modal__panel", "modal-enter relative bg-gray-900/60 backdrop-blur-lg rounded-3xl max-w-3xl w-full max-h-[90vh] overflow-y-auto shadow-2xl border border-gray-600/30 p-4 sm:p-6 lg:p-8")}, func() {
				m.Element("a", "×", markup.Join(
					[]markup.Attr{markup.Class("project-modal__close", "absolute top-4 right-4 sm:top-6 sm:right-6 w-9 h-9 flex items-center justify-center rounded-full bg-teal-300 text-gray-900 text-2xl leading-none shadow-lg")},
					links.closeAttrs(),
					[]markup.Attr{markup.A("aria-label", "Close project modal")},
				)...)

				m.Element("h3", p.Title, markup.ID(OverlayID+"-title"), markup.Class("project-modal__title", "text-xl sm:text-2xl lg:text-3xl font-bold mb-4 sm:mb-6 pr-12 text-gradient"))

				overlayActions(m, p)

				m.Wrap("div", []markup.Attr{markup.Class("space-y-4 sm:space-y-6")}, func() {
					detailSection(m, "problem", "Problem Statement", p.Problem, nil)
					detailSection(m, "solution", "Solution Developed", p.Solution, nil)
					detailSection(m, "impact", "Key Impact", p.Impact, nil)
					detailSection(m, "details", "Technical Details", p.Details, func() {
						m.Wrap("ul", []markup.Attr{markup.Class("project-modal__tools", "flex flex-wrap gap-2 sm:gap-3 mt-4")}, func() {
							for _, tool := range p.Tools {
								m.Element("li", tool, markup.Class("tool-badge", "badge text-sm sm:text-base"))
							}
						})
					})
				})
			})
		})
	})
}

func overlayActions(m *markup.Writer, p models.Project) {
	demo, hasDemo := p.DemoURL()
	source, hasSource := p.SourceURL()
	if !hasDemo && !hasSource {
		return
	}

	m.Wrap("div", []markup.Attr{markup.Class("project-modal__links", "flex flex-wrap gap-4 mb-6 p-4 rounded-2xl border border-gray-600/30 bg-gray-900/30")}, func() {
		m.Element("p", "Project Links", markup.Class("w-full text-teal-300 font-semibold text-sm"))
		if hasDemo {
			m.Wrap("a", markup.Join([]markup.Attr{markup.Class("project-action", "project-action--demo", "btn-primary")}, markup.External(demo)), func() {
				m.Element("span", "View Live Demo", markup.Class("block"))
				m.Element("span", displayHost(demo), markup.Class("block text-xs opacity-80 truncate max-w-48"))
			})
		}
		if hasSource {
			m.Wrap("a", markup.Join([]markup.Attr{markup.Class("project-action", "project-action--source", "btn-secondary")}, markup.External(source)), func() {
				m.Element("span", "View Source Code", markup.Class("block"))
				m.Element("span", "GitHub Repository", markup.Class("block text-xs opacity-80"))
			})
		}
	})
}

func detailSection(m *markup.Writer, name, heading, body string, extra func()) {
	m.Wrap("section", []markup.Attr{markup.Class("project-modal__section", "project-modal__section--"+name, "bg-gray-900/20 rounded-2xl p-4 sm:p-6 border border-gray-600/30")}, func() {
		m.Element("h4", heading, markup.Class("text-base sm:text-lg font-bold text-teal-300 mb-3"))
		m.Element("p", body, markup.Class("project-modal__body", "text-gray-100 font-light leading-relaxed"))
		if extra != nil {
			extra()
		}
	})
}
