package showcase

import "github.com/moh-adedamola/portfolio/models"

// State is the overlay's lifecycle state.
type State int

const (
	// StateClosed means no project is selected and the overlay is not rendered.
	StateClosed State = iota
	// StateOpen means the overlay is rendered for exactly one project.
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Selection is either none or one catalog project. The zero value is none.
type Selection struct {
	project *models.Project
}

func None() Selection {
	return Selection{}
}

func Selected(p models.Project) Selection {
	return Selection{project: &p}
}

// Project returns the selected project and whether there is one.
func (s Selection) Project() (models.Project, bool) {
	if s.project == nil {
		return models.Project{}, false
	}
	return *s.project, true
}

func (s Selection) IsNone() bool {
	return s.project == nil
}

func (s Selection) State() State {
	if s.project == nil {
		return StateClosed
	}
	return StateOpen
}
