package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/moh-adedamola/portfolio/errs"
	"github.com/moh-adedamola/portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	projects := c.ProjectRepo().FindAll()
	require.Len(t, projects, 3)

	titles := make([]string, 0, len(projects))
	for _, p := range projects {
		titles = append(titles, p.Title)
		assert.Equal(t, models.ProjectID(p.Title), p.ID)
	}
	assert.Equal(t, []string{"Car Rental Service App", "Library Management System", "School Management System"}, titles)

	library := projects[1]
	_, hasDemo := library.DemoURL()
	source, hasSource := library.SourceURL()
	assert.False(t, hasDemo)
	assert.True(t, hasSource)
	assert.Equal(t, "https://github.com/moh-Adedamola/LibraryManagementApp.git", source)
	assert.Len(t, library.Tools, 5)

	assert.Equal(t, "Mohammed Adegbite", c.Profile().Name)
	require.Len(t, c.Skills(), 3)
	assert.Equal(t, "Tools & Practices", c.Skills()[2].Name)
	require.Len(t, c.Contact().Channels, 2)
	assert.Equal(t, "mailto:adedamola13@gmail.com", c.Contact().Channels[1].Link.Href)
}

func TestParseEmptyCatalog(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, c.ProjectRepo().Count())
	assert.Empty(t, c.ProjectRepo().FindAll())
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(error) bool
		wantMsg string
	}{
		{
			name:    "missing title",
			yaml:    "projects:\n  - problem: p\n    solution: s\n    impact: i\n    details: d\n",
			check:   errs.IsMissingRequiredFieldError,
			wantMsg: "projects[0]",
		},
		{
			name:    "missing details",
			yaml:    "projects:\n  - title: A\n    problem: p\n    solution: s\n    impact: i\n",
			check:   errs.IsMissingRequiredFieldError,
			wantMsg: "details",
		},
		{
			name: "duplicate title",
			yaml: "projects:\n" +
				"  - {title: A, problem: p, solution: s, impact: i, details: d}\n" +
				"  - {title: A, problem: p, solution: s, impact: i, details: d}\n",
			check:   errs.IsDuplicateTitle,
			wantMsg: "projects[1] (first seen at projects[0])",
		},
		{
			name:    "script link",
			yaml:    "projects:\n  - {title: A, problem: p, solution: s, impact: i, details: d, link: 'javascript:alert(1)'}\n",
			check:   errs.IsInvalidFieldError,
			wantMsg: "link",
		},
		{
			name:    "relative source link",
			yaml:    "projects:\n  - {title: A, problem: p, solution: s, impact: i, details: d, githubLink: '/repo'}\n",
			check:   errs.IsInvalidFieldError,
			wantMsg: "githubLink",
		},
		{
			name:    "unknown key",
			yaml:    "projects:\n  - {title: A, problem: p, solution: s, impact: i, details: d, githublink: x}\n",
			check:   errs.IsInvalidCatalog,
			wantMsg: "yaml",
		},
		{
			name:    "bad social link",
			yaml:    "contact:\n  socials:\n    - platform: X\n      link: {text: X, href: 'ftp://example.com'}\n",
			check:   errs.IsInvalidFieldError,
			wantMsg: "contact.socials[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errs.IsInvalidCatalog(err), "expected catalog error, got %v", err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestProjectRepoLookups(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	repo := c.ProjectRepo()

	school := models.ProjectID("School Management System")
	p, err := repo.FindByID(school)
	require.NoError(t, err)
	assert.Equal(t, "School Management System", p.Title)
	assert.Equal(t, 2, repo.IndexOf(school))

	_, err = repo.FindByID(uuid.New())
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, -1, repo.IndexOf(uuid.Nil))
}

func TestFindAllReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	projects := c.ProjectRepo().FindAll()
	projects[0].Title = "changed"

	assert.Equal(t, "Car Rental Service App", c.ProjectRepo().FindAll()[0].Title)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - {title: Solo, problem: p, solution: s, impact: i, details: d}\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.ProjectRepo().Count())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, errs.ErrContentSource)

	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, c.ProjectRepo().Count())
}
