package models

import (
	"strings"

	"github.com/google/uuid"
)

// ProjectNamespace seeds the deterministic project IDs, so a project keeps
// its URL across builds for as long as its title does not change.
var ProjectNamespace = uuid.MustParse("6f1c2a52-3c1e-4f0e-9a57-5d0f3b8e2c41")

// Project represents one portfolio project in the showcase catalog
type Project struct {
	ID         uuid.UUID `json:"id" yaml:"-"`
	Title      string    `json:"title" yaml:"title"`
	Problem    string    `json:"problem" yaml:"problem"`
	Solution   string    `json:"solution" yaml:"solution"`
	Impact     string    `json:"impact" yaml:"impact"`
	Details    string    `json:"details" yaml:"details"`
	Tools      []string  `json:"tools" yaml:"tools"`
	Link       *string   `json:"link,omitempty" yaml:"link,omitempty"`
	GithubLink *string   `json:"github_link,omitempty" yaml:"githubLink,omitempty"`
}

// ProjectID derives the stable identifier for a project title.
func ProjectID(title string) uuid.UUID {
	return uuid.NewSHA1(ProjectNamespace, []byte(strings.TrimSpace(title)))
}

// DemoURL returns the live deployment URL, if any.
func (p Project) DemoURL() (string, bool) {
	return optional(p.Link)
}

// SourceURL returns the source repository URL, if any.
func (p Project) SourceURL() (string, bool) {
	return optional(p.GithubLink)
}

func optional(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}
