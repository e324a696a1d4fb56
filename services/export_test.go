package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/moh-adedamola/portfolio/content"
	"github.com/moh-adedamola/portfolio/errs"
	"github.com/moh-adedamola/portfolio/markup/markuptest"
	"github.com/moh-adedamola/portfolio/models"
	"github.com/moh-adedamola/portfolio/showcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)
	out := t.TempDir()

	result, err := Export(context.Background(), site, out, "/")
	require.NoError(t, err)

	want := []string{"index.html", "static/site.css"}
	for _, p := range site.ProjectRepo().FindAll() {
		want = append(want, "projects/"+p.ID.String()+"/index.html")
	}
	assert.ElementsMatch(t, want, result.Files)
	assert.IsIncreasing(t, result.Files)

	for _, name := range result.Files {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}
}

func TestExportedPages(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)
	out := t.TempDir()

	_, err = Export(context.Background(), site, out, "/portfolio/")
	require.NoError(t, err)

	home, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	doc := markuptest.Parse(t, string(home))
	assert.Nil(t, markuptest.First(doc, markuptest.ByID(showcase.OverlayID)))
	assert.NotContains(t, string(home), "@get(")

	library := models.ProjectID("Library Management System").String()
	sel := markuptest.FindAll(doc, markuptest.ByClass("project-card__select"))
	require.Len(t, sel, 3)
	assert.Equal(t, "/portfolio/projects/"+library+"/#projects", markuptest.Attr(sel[1], "href"))

	detail, err := os.ReadFile(filepath.Join(out, "projects", library, "index.html"))
	require.NoError(t, err)
	doc = markuptest.Parse(t, string(detail))
	overlay := markuptest.First(doc, markuptest.ByID(showcase.OverlayID))
	require.NotNil(t, overlay)
	assert.Equal(t, "Library Management System", markuptest.Text(markuptest.First(overlay, markuptest.ByTag("h3"))))
	closeControl := markuptest.First(overlay, markuptest.ByClass("project-modal__close"))
	assert.Equal(t, "/portfolio/#projects", markuptest.Attr(closeControl, "href"))
}

func TestExportEmptyCatalog(t *testing.T) {
	site, err := content.Parse(nil)
	require.NoError(t, err)

	result, err := Export(context.Background(), site, t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "static/site.css"}, result.Files)
}

func TestExportRequiresOutDir(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)

	_, err = Export(context.Background(), site, " ", "/")
	assert.True(t, errs.IsMissingRequiredFieldError(err))
}

func TestExportCancelled(t *testing.T) {
	site, err := content.Default()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Export(ctx, site, t.TempDir(), "/")
	assert.ErrorIs(t, err, context.Canceled)
}
