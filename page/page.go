package page

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/content"
	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/showcase"
)

// Page renders the whole site for the showcase's current selection.
func Page(c content.Content, s *showcase.Showcase, links showcase.Links) templ.Component {
	profile := c.Profile()
	body := markup.Component(func(m *markup.Writer) {
		m.Render(Navigation(profile, c.Contact().Socials, links))
		m.Wrap("main", nil, func() {
			m.Render(Hero(profile))
			m.Render(About(profile))
			m.Render(Skills(c.Skills()))
			m.Render(Projects(profile, s, links))
			m.Render(ContactInfo(c.Contact()))
			m.Render(Contacts(profile, c.Contact()))
		})
	})
	return Layout(Title(c, s), links, body)
}

// Title is the document title, prefixed with the open project if any.
func Title(c content.Content, s *showcase.Showcase) string {
	profile := c.Profile()
	title := profile.Name
	if profile.Role != "" {
		title = fmt.Sprintf("%s | %s", profile.Name, profile.Role)
	}
	if p, ok := s.Selection().Project(); ok {
		title = p.Title + " | " + title
	}
	return title
}

// ErrorPage renders a minimal document for a failed page request.
func ErrorPage(status int, message string, links showcase.Links) templ.Component {
	heading := fmt.Sprintf("%d %s", status, http.StatusText(status))
	body := markup.Component(func(m *markup.Writer) {
		m.Wrap("main", []markup.Attr{markup.Class("error-page", "min-h-screen flex flex-col items-center justify-center gap-6 px-4 text-center")}, func() {
			m.Element("h1", heading, markup.Class("text-4xl sm:text-5xl font-bold text-gradient"))
			m.Element("p", message, markup.Class("error-page__message", "text-lg font-light"))
			m.Element("a", "Back to projects", markup.Href(links.Home()+"#"+showcase.SectionID), markup.Class("btn-primary px-8 py-4 rounded-full"))
		})
	})
	return Layout(heading, links, body)
}
