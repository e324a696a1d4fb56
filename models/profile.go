package models

// Profile holds the biography shown in the hero, about and contact sections
type Profile struct {
	Name           string   `json:"name" yaml:"name"`
	Brand          string   `json:"brand" yaml:"brand"`
	Role           string   `json:"role" yaml:"role"`
	Headline       string   `json:"headline" yaml:"headline"`
	Tagline        Emphasis `json:"tagline" yaml:"tagline"`
	Specialization string   `json:"specialization" yaml:"specialization"`
	Portrait       string   `json:"portrait,omitempty" yaml:"portrait,omitempty"`
	PortraitAlt    string   `json:"portrait_alt,omitempty" yaml:"portraitAlt,omitempty"`
	About          []string `json:"about" yaml:"about"`
	Expertise      []string `json:"expertise" yaml:"expertise"`
	Closing        string   `json:"closing" yaml:"closing"`
	Availability   []string `json:"availability" yaml:"availability"`
	Resume         Link     `json:"resume" yaml:"resume"`
	AllProjects    Link     `json:"all_projects" yaml:"allProjects"`
}

// Emphasis is a sentence with one highlighted phrase in the middle.
type Emphasis struct {
	Before    string `json:"before" yaml:"before"`
	Highlight string `json:"highlight" yaml:"highlight"`
	After     string `json:"after" yaml:"after"`
}

// Link is an outbound link with its visible text and accessible label
type Link struct {
	Text  string `json:"text" yaml:"text"`
	Href  string `json:"href" yaml:"href"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}
