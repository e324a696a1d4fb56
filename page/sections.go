package page

import (
	"strings"
	"unicode"

	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/models"
)

// Hero renders the landing section.
func Hero(profile models.Profile) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		attrs := []markup.Attr{
			markup.ID("top"),
			markup.Class("hero", "min-h-screen flex items-center justify-center px-4 sm:px-6 lg:px-8 pt-20 sm:pt-24 lg:pt-0 relative overflow-hidden"),
			markup.A("aria-labelledby", "hero-heading"),
		}
		m.Wrap("section", attrs, func() {
			m.Element("div", "", markup.Class("absolute inset-0 bg-gradient-to-br from-gray-800 to-gray-700"))
			blobs(m)
			m.Wrap("div", []markup.Attr{markup.Class("w-full max-w-6xl mx-auto relative z-10 grid grid-cols-1 lg:grid-cols-2 gap-8 lg:gap-12 items-center py-8 lg:py-0")}, func() {
				m.Wrap("div", []markup.Attr{markup.Class("order-2 lg:order-1 text-center lg:text-left")}, func() {
					m.Element("span", profile.Role, markup.Class("hero__role", "inline-flex items-center gap-2 px-4 py-2 bg-gray-800/60 text-teal-300 font-medium tracking-wide mb-6 rounded-full text-sm border border-gray-600/40"))
					m.Element("h1", profile.Headline, markup.ID("hero-heading"), markup.Class("text-4xl sm:text-5xl lg:text-6xl xl:text-7xl font-bold mb-4 leading-tight text-gradient"))
					m.Wrap("p", []markup.Attr{markup.Class("hero__tagline", "text-lg sm:text-xl lg:text-2xl font-light mb-8 leading-relaxed max-w-2xl mx-auto lg:mx-0")}, func() {
						emphasis(m, profile.Tagline)
					})
					m.Wrap("div", []markup.Attr{markup.Class("bg-gray-900/20 rounded-xl p-6 border border-gray-600/30 mb-8 shadow-sm max-w-2xl mx-auto lg:mx-0")}, func() {
						m.Element("p", profile.Specialization, markup.Class("text-base lg:text-lg font-light leading-relaxed"))
					})
					m.Element("a", "View My Work", markup.Href("#contact"),
						markup.Class("btn-primary inline-flex items-center gap-3 px-8 py-4 lg:px-10 lg:py-5 rounded-full"),
						markup.A("aria-label", "View "+profile.Name+"'s work"))
				})
				m.Wrap("div", []markup.Attr{markup.Class("order-1 lg:order-2 relative max-w-sm mx-auto lg:max-w-none mt-8 sm:mt-0")}, func() {
					portrait(m, profile)
				})
			})
		})
	})
}

func emphasis(m *markup.Writer, e models.Emphasis) {
	m.Text(e.Before)
	if e.Highlight != "" {
		m.Text(" ")
		m.Element("span", e.Highlight, markup.Class("font-semibold text-teal-300"))
		m.Text(" ")
	}
	m.Text(e.After)
}

// portrait renders the profile photo, or a monogram card when there is none.
func portrait(m *markup.Writer, profile models.Profile) {
	m.Wrap("div", []markup.Attr{markup.Class("hero__portrait", "relative bg-gray-900/20 rounded-2xl p-2 border border-gray-600/30 shadow-lg")}, func() {
		if profile.Portrait != "" {
			alt := profile.PortraitAlt
			if alt == "" {
				alt = profile.Name
			}
			m.Void("img", markup.A("src", profile.Portrait), markup.A("alt", alt),
				markup.Class("relative w-full h-auto rounded-xl shadow-md"), markup.A("loading", "lazy"))
			return
		}
		m.Element("div", Monogram(profile.Name), markup.Class("hero__monogram", "aspect-square w-full flex items-center justify-center rounded-xl bg-gradient-to-br from-gray-800 to-gray-700 text-teal-300 font-black text-7xl"),
			markup.A("role", "img"), markup.A("aria-label", profile.Name))
	})
}

// Monogram returns the upper-cased initials of the first two words of name.
func Monogram(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// About renders the biography.
func About(profile models.Profile) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Wrap("section", []markup.Attr{markup.ID("about"), markup.Class("py-12 sm:py-16 lg:py-24 relative overflow-hidden"), markup.A("aria-labelledby", "about-heading")}, func() {
			m.Wrap("div", []markup.Attr{markup.Class("container mx-auto px-4 lg:px-6 xl:px-8 max-w-5xl")}, func() {
				sectionHeader(m, "about-heading", "About Me")
				m.Wrap("div", []markup.Attr{markup.Class("reveal bg-gray-900/20 backdrop-blur-sm rounded-3xl p-6 sm:p-8 lg:p-12 shadow-xl border border-gray-600/30 space-y-6 sm:space-y-8")}, func() {
					for _, paragraph := range profile.About {
						m.Element("p", paragraph, markup.Class("about__paragraph", "text-base sm:text-lg lg:text-xl leading-relaxed font-light"))
					}
					if len(profile.Expertise) > 0 {
						m.Wrap("div", []markup.Attr{markup.Class("bg-gray-800/60 rounded-2xl p-4 sm:p-6 lg:p-8 border border-gray-600/40")}, func() {
							m.Element("p", "My technical expertise includes:", markup.Class("text-base sm:text-lg lg:text-xl font-light mb-6"))
							badges(m, "about__expertise", profile.Expertise)
						})
					}
					m.Element("p", profile.Closing, markup.Class("text-base sm:text-lg lg:text-xl leading-relaxed font-light"))
					m.Element("a", "Let's Connect", markup.Href("#contact"),
						markup.Class("btn-primary inline-flex items-center gap-3 px-8 py-4 rounded-full"),
						markup.A("aria-label", "Contact "+profile.Name))
				})
			})
		})
	})
}

// Skills renders one card per category in catalog order.
func Skills(categories []models.SkillCategory) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Wrap("section", []markup.Attr{markup.ID("skills"), markup.Class("py-12 sm:py-16 md:py-20 lg:py-24 relative overflow-hidden"), markup.A("aria-labelledby", "skills-heading")}, func() {
			blobs(m)
			m.Wrap("div", []markup.Attr{markup.Class("container mx-auto px-4 lg:px-6 xl:px-8 relative z-10")}, func() {
				sectionHeader(m, "skills-heading", "Technical Skills")
				m.Wrap("div", []markup.Attr{markup.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6")}, func() {
					for _, c := range categories {
						m.Wrap("div", []markup.Attr{markup.Class("skill-category", "reveal bg-gray-900/20 backdrop-blur-sm rounded-3xl p-6 shadow-xl border border-gray-600/30")}, func() {
							m.Element("h3", c.Name, markup.Class("text-lg sm:text-xl font-bold mb-4 text-gradient"))
							badges(m, "skill-category__skills", c.Skills)
						})
					}
				})
			})
		})
	})
}
