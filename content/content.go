// Package content loads the portfolio catalog that is compiled into the
// binary and exposes it through read-only repositories.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"

	"github.com/moh-adedamola/portfolio/errs"
	"github.com/moh-adedamola/portfolio/models"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var embedded []byte

// document mirrors the layout of portfolio.yaml.
type document struct {
	Profile  models.Profile         `yaml:"profile"`
	Skills   []models.SkillCategory `yaml:"skills"`
	Projects []models.Project       `yaml:"projects"`
	Contact  models.Contact         `yaml:"contact"`
}

type Content struct {
	projectRepo *ProjectRepo
	profile     models.Profile
	skills      []models.SkillCategory
	contact     models.Contact
}

// Default loads the catalog embedded at build time.
func Default() (Content, error) {
	return Parse(embedded)
}

// LoadFile loads a catalog from disk instead of the embedded one.
func LoadFile(path string) (Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Content{}, errs.NewContentSourceError(path, err)
	}
	return Parse(raw)
}

// Load picks the catalog on disk when path is set and the embedded one otherwise.
func Load(path string) (Content, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected so
// that a typo such as "githublink" does not silently drop a field.
func Parse(raw []byte) (Content, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Content{}, errs.NewCatalogError("yaml", err)
	}

	if err := validate(&doc); err != nil {
		return Content{}, err
	}

	for i := range doc.Projects {
		doc.Projects[i].ID = models.ProjectID(doc.Projects[i].Title)
	}

	return New(doc.Profile, doc.Skills, doc.Projects, doc.Contact), nil
}

// New assembles content from already validated parts.
func New(profile models.Profile, skills []models.SkillCategory, projects []models.Project, contact models.Contact) Content {
	return Content{
		projectRepo: NewProjectRepo(projects),
		profile:     profile,
		skills:      skills,
		contact:     contact,
	}
}

// Accessor methods for each section

func (c Content) ProjectRepo() *ProjectRepo {
	if c.projectRepo == nil {
		return NewProjectRepo(nil)
	}
	return c.projectRepo
}

func (c Content) Profile() models.Profile {
	return c.profile
}

func (c Content) Skills() []models.SkillCategory {
	return c.skills
}

func (c Content) Contact() models.Contact {
	return c.contact
}
