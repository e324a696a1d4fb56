package page

import (
	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/models"
	"github.com/moh-adedamola/portfolio/showcase"
)

// Projects renders the project section: header, the showcase grid with its
// overlay mount, and the call to action to the full project list.
func Projects(profile models.Profile, s *showcase.Showcase, links showcase.Links) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		attrs := []markup.Attr{
			markup.ID(showcase.SectionID),
			markup.Class("min-h-screen relative overflow-hidden py-12 sm:py-16 md:py-20 lg:py-24"),
			markup.A("aria-labelledby", "projects-heading"),
		}
		m.Wrap("section", attrs, func() {
			m.Element("div", "", markup.Class("absolute inset-0 bg-gradient-to-br from-gray-800/20 to-gray-700/20"))
			blobs(m)
			m.Wrap("div", []markup.Attr{markup.Class("container mx-auto px-4 lg:px-6 xl:px-8 relative z-10 max-w-7xl")}, func() {
				sectionHeader(m, "projects-heading", "Technical Projects")
				m.Render(s.View(links))

				if cta := profile.AllProjects; cta.Href != "" {
					m.Wrap("div", []markup.Attr{markup.Class("text-center mt-12 sm:mt-16")}, func() {
						m.Element("a", cta.Text, markup.Join(
							[]markup.Attr{markup.Class("projects__explore", "btn-primary inline-flex items-center gap-3 px-8 py-4 rounded-full")},
							markup.External(cta.Href),
							markup.When(cta.Label != "", markup.A("aria-label", cta.Label)),
						)...)
					})
				}
			})
		})
	})
}
