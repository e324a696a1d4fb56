package page

import (
	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/models"
)

// ContactInfo renders the direct channels and the collaboration pitch.
func ContactInfo(contact models.Contact) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Wrap("section", []markup.Attr{markup.ID("contact-info"), markup.Class("py-12 sm:py-16 lg:py-24 relative overflow-hidden"), markup.A("aria-labelledby", "contact-info-heading")}, func() {
			m.Wrap("div", []markup.Attr{markup.Class("container mx-auto px-4 lg:px-6 xl:px-8 max-w-5xl text-center")}, func() {
				sectionHeader(m, "contact-info-heading", "Let's Connect")
				m.Element("p", contact.Intro, markup.Class("text-base sm:text-lg lg:text-xl font-light max-w-2xl mx-auto leading-relaxed mb-10"))

				m.Wrap("div", []markup.Attr{markup.Class("grid sm:grid-cols-2 gap-6 mb-10")}, func() {
					for _, c := range contact.Channels {
						m.Wrap("div", []markup.Attr{markup.Class("contact-channel", "bg-gray-900/20 rounded-2xl p-6 border border-gray-600/30 shadow-lg")}, func() {
							m.Element("h3", c.Title, markup.Class("text-sm sm:text-base font-bold mb-2 tracking-wide uppercase"))
							m.Element("a", c.Link.Text, markup.Join(
								[]markup.Attr{markup.Class("contact-channel__link", "text-teal-300 hover:underline break-all")},
								markup.External(c.Link.Href),
								markup.When(c.Link.Label != "", markup.A("aria-label", c.Link.Label)),
							)...)
						})
					}
				})

				pitch(m, "contact-info__pitch", contact.Pitch)
			})
		})
	})
}

// Contacts renders the closing section: status, resume and social profiles.
func Contacts(profile models.Profile, contact models.Contact) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Wrap("section", []markup.Attr{markup.ID("contact"), markup.Class("py-12 sm:py-16 lg:py-24 relative overflow-hidden"), markup.A("aria-labelledby", "contact-heading")}, func() {
			m.Wrap("div", []markup.Attr{markup.Class("container mx-auto px-4 lg:px-6 xl:px-8 max-w-5xl text-center")}, func() {
				sectionHeader(m, "contact-heading", "Let's Connect")
				m.Element("p", contact.ConnectNote, markup.Class("text-base sm:text-lg lg:text-xl font-light max-w-2xl mx-auto leading-relaxed mb-10"))

				m.Wrap("div", []markup.Attr{markup.Class("bg-gray-900/20 backdrop-blur-sm rounded-3xl p-6 sm:p-8 lg:p-12 shadow-xl border border-gray-600/30 mb-8 space-y-8")}, func() {
					m.Wrap("div", []markup.Attr{markup.Class("contact__status", "bg-gray-800/60 rounded-2xl p-6 sm:p-8 border border-gray-600/40")}, func() {
						m.Element("h3", contact.Status.Heading, markup.Class("text-xl sm:text-2xl lg:text-3xl font-bold mb-4"))
						m.Element("p", contact.Status.Body, markup.Class("text-base sm:text-lg font-light mb-6 leading-relaxed"))
						if r := profile.Resume; r.Href != "" {
							m.Element("a", r.Text, markup.Join(
								[]markup.Attr{markup.Class("contact__resume", "btn-primary inline-flex items-center gap-3 px-8 py-4 rounded-full")},
								markup.External(r.Href),
								markup.When(r.Label != "", markup.A("aria-label", r.Label)),
							)...)
						}
					})

					if len(contact.Socials) > 0 {
						m.Wrap("div", []markup.Attr{markup.Class("bg-gray-800/60 rounded-2xl p-6 sm:p-8 border border-gray-600/40")}, func() {
							m.Element("h3", "Find Me Online", markup.Class("text-xl sm:text-2xl font-bold mb-6"))
							m.Wrap("div", []markup.Attr{markup.Class("flex justify-center gap-4")}, func() {
								socialIcons(m, contact.Socials)
							})
						})
					}
				})

				badges(m, "contact__availability justify-center", profile.Availability)
			})
		})
	})
}

func pitch(m *markup.Writer, class string, p models.Pitch) {
	if p.Heading == "" && p.Body == "" {
		return
	}
	m.Wrap("div", []markup.Attr{markup.Class(class, "bg-gray-900/20 backdrop-blur-sm rounded-3xl p-6 sm:p-8 shadow-xl border border-gray-600/30")}, func() {
		m.Element("h3", p.Heading, markup.Class("text-xl sm:text-2xl lg:text-3xl font-bold mb-3"))
		m.Element("p", p.Body, markup.Class("text-base sm:text-lg font-light mb-6"))
		badges(m, "justify-center", p.Badges)
	})
}
