package page

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/models"
	"github.com/moh-adedamola/portfolio/showcase"
)

// NavItems are the in-page anchors of the navigation bar, in order.
var NavItems = []string{"About", "Skills", "Projects", "Contact"}

// MobileMenuID is the element the mobile toggle shows and hides.
const MobileMenuID = "mobile-menu"

// Navigation renders the fixed top bar. The mobile menu is a client-side
// toggle held in the menuOpen signal; it never talks to the server.
func Navigation(profile models.Profile, socials []models.SocialLink, links showcase.Links) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		attrs := []markup.Attr{
			markup.Class("site-nav", "fixed w-full bg-gray-900/20 backdrop-blur-md z-40 border-b border-gray-600/30 shadow-lg"),
			markup.A("aria-label", "Main navigation"),
			markup.A("data-signals:menu-open", "false"),
		}
		m.Wrap("nav", attrs, func() {
			m.Wrap("div", []markup.Attr{markup.Class("container mx-auto px-4 lg:px-6 xl:px-8 py-4 flex items-center justify-between")}, func() {
				m.Element("a", profile.Brand, markup.Href(links.Home()+"#top"),
					markup.Class("site-nav__brand", "px-4 py-2 bg-gray-900/40 rounded-xl border border-gray-600/30 text-teal-300 font-black text-xl sm:text-2xl tracking-wider"),
					markup.A("aria-label", "Scroll to top of page"))

				m.Wrap("div", []markup.Attr{markup.Class("hidden lg:flex items-center gap-4")}, func() {
					navLinks(m, links, false)
					m.Wrap("div", []markup.Attr{markup.Class("flex items-center gap-2 ml-4 pl-4 border-l border-gray-600/40")}, func() {
						socialIcons(m, socials)
					})
				})

				m.Element("button", "Menu", markup.A("type", "button"),
					markup.Class("site-nav__toggle", "lg:hidden p-2 rounded-xl bg-teal-300 text-gray-900 shadow-lg"),
					markup.A("aria-controls", MobileMenuID),
					markup.A("aria-label", "Toggle navigation menu"),
					markup.A("data-attr:aria-expanded", "$menuOpen"),
					markup.A("data-on:click", "$menuOpen = !$menuOpen"))
			})

			menu := []markup.Attr{
				markup.ID(MobileMenuID),
				markup.Class("lg:hidden bg-gray-900/20 backdrop-blur-lg border-b border-gray-600/30 shadow-xl"),
				markup.A("role", "menu"),
				markup.A("data-show", "$menuOpen"),
				markup.A("style", "display: none"),
			}
			m.Wrap("div", menu, func() {
				m.Wrap("div", []markup.Attr{markup.Class("container mx-auto px-4 py-4 space-y-4")}, func() {
					navLinks(m, links, true)
					m.Wrap("div", []markup.Attr{markup.Class("flex items-center justify-between")}, func() {
						m.Element("span", "Connect:", markup.Class("text-sm font-medium"))
						m.Wrap("div", []markup.Attr{markup.Class("flex items-center gap-3")}, func() {
							socialIcons(m, socials)
						})
					})
				})
			})
		})
	})
}

func navLinks(m *markup.Writer, links showcase.Links, mobile bool) {
	class, layout := "nav-link text-sm uppercase tracking-wide", "flex items-center gap-2"
	if mobile {
		class, layout = "nav-link text-lg py-3 px-4 rounded-xl", "flex flex-col gap-2"
	}
	m.Wrap("div", []markup.Attr{markup.Class(layout)}, func() {
		for _, item := range NavItems {
			attrs := []markup.Attr{
				markup.Href(links.Home() + "#" + strings.ToLower(item)),
				markup.Class(class, "relative font-medium hover:text-teal-300 transition-colors"),
				markup.A("aria-label", "Navigate to "+item+" section"),
			}
			if mobile {
				attrs = append(attrs, markup.A("data-on:click", "$menuOpen = false"))
			}
			m.Element("a", item, attrs...)
		}
	})
}

func socialIcons(m *markup.Writer, socials []models.SocialLink) {
	for _, s := range socials {
		m.Element("a", s.Link.Text, markup.Join(
			[]markup.Attr{markup.Class("social-link", "px-3 py-2 rounded-full bg-teal-300 text-gray-900 text-sm font-semibold shadow-lg")},
			markup.External(s.Link.Href),
			[]markup.Attr{markup.A("aria-label", s.Link.Label)},
		)...)
	}
}
