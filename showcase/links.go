package showcase

import (
	"fmt"
	"strings"

	"github.com/moh-adedamola/portfolio/markup"
	"github.com/moh-adedamola/portfolio/models"
)

// Element IDs shared by the page, the overlay and the live endpoints.
const (
	OverlayMountID = "project-overlay"
	OverlayID      = "project-detail"
	SectionID      = "projects"
)

// Links turns grid and overlay activations into markup. Every control is a
// plain link, so the site works without script; when Live is set the same
// controls also carry datastar expressions that fetch the overlay and morph
// it into the page in place.
type Links struct {
	// Base is the path the site is served under. Empty means "/".
	Base string
	Live bool
}

func (l Links) base() string {
	b := strings.TrimSpace(l.Base)
	if b == "" {
		return "/"
	}
	if !strings.HasPrefix(b, "/") {
		b = "/" + b
	}
	if !strings.HasSuffix(b, "/") {
		b += "/"
	}
	return b
}

// Home is the page with nothing selected.
func (l Links) Home() string {
	return l.base()
}

// ProjectPage is the page with p selected.
func (l Links) ProjectPage(p models.Project) string {
	return fmt.Sprintf("%sprojects/%s/", l.base(), p.ID)
}

// OverlayPath is the live endpoint that opens the overlay on p.
func (l Links) OverlayPath(p models.Project) string {
	return l.ProjectPage(p) + "overlay"
}

// ClosePath is the live endpoint that empties the overlay mount.
func (l Links) ClosePath() string {
	return l.base() + "overlay/close"
}

// Asset is the URL of a file under static/.
func (l Links) Asset(name string) string {
	return l.base() + "static/" + strings.TrimPrefix(name, "/")
}

func (l Links) selectAttrs(p models.Project) []markup.Attr {
	return markup.Join(
		[]markup.Attr{markup.Href(l.ProjectPage(p) + "#" + SectionID)},
		markup.When(l.Live, markup.A("data-on:click__prevent", fmt.Sprintf("@get('%s')", l.OverlayPath(p)))),
	)
}

func (l Links) closeAttrs() []markup.Attr {
	return markup.Join(
		[]markup.Attr{markup.Href(l.Home() + "#" + SectionID)},
		markup.When(l.Live, markup.A("data-on:click__prevent", fmt.Sprintf("@get('%s')", l.ClosePath()))),
	)
}

// escapeAttrs closes the overlay on the Escape key in live mode.
func (l Links) escapeAttrs() []markup.Attr {
	return markup.When(l.Live, markup.A("data-on:keydown__window",
		fmt.Sprintf("evt.key === 'Escape' && @get('%s')", l.ClosePath())))
}
