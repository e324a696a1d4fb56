package content

import (
	"slices"

	"github.com/google/uuid"
	"github.com/moh-adedamola/portfolio/errs"
	"github.com/moh-adedamola/portfolio/models"
)

type ProjectRepo struct {
	projects []models.Project
	byID     map[uuid.UUID]int
}

func NewProjectRepo(projects []models.Project) *ProjectRepo {
	byID := make(map[uuid.UUID]int, len(projects))
	for i, p := range projects {
		byID[p.ID] = i
	}
	return &ProjectRepo{projects: projects, byID: byID}
}

// FindAll returns every project in catalog order. The slice is a copy.
func (r *ProjectRepo) FindAll() []models.Project {
	return slices.Clone(r.projects)
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (models.Project, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Project{}, errs.NewNotFound("project")
	}
	return r.projects[i], nil
}

// IndexOf reports the catalog position of a project ID, or -1.
func (r *ProjectRepo) IndexOf(id uuid.UUID) int {
	if i, ok := r.byID[id]; ok {
		return i
	}
	return -1
}

func (r *ProjectRepo) Count() int {
	return len(r.projects)
}
