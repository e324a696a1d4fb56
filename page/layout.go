// Package page composes the full portfolio document from the catalog and a
// showcase: navigation, hero, about, skills, projects and the two contact
// sections, in that order.
package page

import (
	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/showcase"
)

const (
	tailwindScript  = "https://cdn.tailwindcss.com"
	datastarScript  = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"
	stylesheetAsset = "site.css"
)

// Layout wraps body in the html document shell.
func Layout(title string, links showcase.Links, body templ.Component) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Raw("<!DOCTYPE html>")
		m.Wrap("html", []markup.Attr{markup.A("lang", "en"), markup.Class("scroll-smooth")}, func() {
			m.Wrap("head", nil, func() {
				m.Void("meta", markup.A("charset", "utf-8"))
				m.Void("meta", markup.A("name", "viewport"), markup.A("content", "width=device-width, initial-scale=1"))
				m.Element("title", title)
				m.Void("link", markup.A("rel", "stylesheet"), markup.A("href", links.Asset(stylesheetAsset)))
				m.Element("script", "", markup.A("src", tailwindScript))
				// The datastar client drives the mobile menu everywhere and
				// the overlay actions only when live updates are on.
				m.Element("script", "", markup.A("type", "module"), markup.A("src", datastarScript))
			})
			m.Wrap("body", []markup.Attr{markup.Class("min-h-screen bg-slate-900 text-gray-100 antialiased")}, func() {
				m.Render(body)
			})
		})
	})
}

// sectionHeader writes the gradient heading and underline used by every section.
func sectionHeader(m *markup.Writer, id, heading string) {
	m.Wrap("div", []markup.Attr{markup.Class("text-center mb-10 sm:mb-12 lg:mb-16")}, func() {
		m.Element("h2", heading, markup.ID(id), markup.Class("text-3xl sm:text-4xl lg:text-5xl font-bold text-gradient mb-4"))
		m.Element("div", "", markup.Class("w-20 h-1 bg-gradient-to-r from-teal-300 to-gray-600 mx-auto rounded-full"))
	})
}

// blobs writes the decorative floating background shapes of a section.
func blobs(m *markup.Writer) {
	m.Wrap("div", []markup.Attr{markup.Class("absolute inset-0 overflow-hidden pointer-events-none"), markup.A("aria-hidden", "true")}, func() {
		m.Element("div", "", markup.Class("blob blob--float absolute -top-20 -right-20 w-64 h-64 bg-gradient-to-br from-gray-200/10 to-gray-300/10 rounded-full blur-3xl"))
		m.Element("div", "", markup.Class("blob blob--drift absolute -bottom-20 -left-20 w-80 h-80 bg-gradient-to-br from-gray-200/10 to-gray-300/10 rounded-full blur-3xl"))
	})
}

// badges writes a list of small pills.
func badges(m *markup.Writer, class string, items []string) {
	if len(items) == 0 {
		return
	}
	m.Wrap("ul", []markup.Attr{markup.Class(class, "flex flex-wrap gap-2 sm:gap-3")}, func() {
		for _, item := range items {
			m.Element("li", item, markup.Class("badge text-sm"))
		}
	})
}
