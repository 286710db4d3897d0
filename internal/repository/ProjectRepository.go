package repository

import (
	"portfolio/internal/models"
	"portfolio/internal/providers"
)

type ProjectRepository struct {
	root *Repository
}

func (p *ProjectRepository) load() []models.Project {
	return loadOrSeed(p.root, models.KeyProjects, models.DefaultProjects)
}

func (p *ProjectRepository) save(items []models.Project) error {
	if err := p.root.persist(models.KeyProjects, items); err != nil {
		return err
	}
	p.root.metrics.SetCollectionSize(models.KeyProjects, len(items))
	return nil
}

// GetAll returns the projects in display order, seeding the defaults on first use.
func (p *ProjectRepository) GetAll() []models.Project {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()
	return p.load()
}

func (p *ProjectRepository) Get(id int) (models.Project, error) {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()

	items := p.load()
	i := indexByID(items, id)
	if i < 0 {
		return models.Project{}, ErrNotFound
	}
	return items[i], nil
}

func (p *ProjectRepository) Featured() []models.Project {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()

	out := make([]models.Project, 0)
	for _, it := range p.load() {
		if it.Featured {
			out = append(out, it)
		}
	}
	return out
}

// Add appends project with a fresh id. Any id on the input is ignored.
func (p *ProjectRepository) Add(project models.Project) (models.Project, error) {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()

	items := p.load()
	project.ID = nextID(items)
	if project.PublishDate == "" {
		project.PublishDate = p.root.today()
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	if err := validateRecord(&project); err != nil {
		return models.Project{}, err
	}

	items = append(items, project)
	if err := p.save(items); err != nil {
		return models.Project{}, err
	}
	p.root.logger.Infof(providers.TypeStorage, "Project %d added", project.ID)
	return project, nil
}

func (p *ProjectRepository) Update(id int, patch models.ProjectPatch) (models.Project, error) {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()

	items := p.load()
	i := indexByID(items, id)
	if i < 0 {
		return models.Project{}, ErrNotFound
	}

	updated := items[i]
	updated.Apply(patch)
	if err := validateRecord(&updated); err != nil {
		return models.Project{}, err
	}
	items[i] = updated
	if err := p.save(items); err != nil {
		return models.Project{}, err
	}
	return updated, nil
}

// Remove drops the project with id and returns what is left. Removing an
// unknown id still rewrites the collection unchanged.
func (p *ProjectRepository) Remove(id int) ([]models.Project, error) {
	p.root.mu.Lock()
	defer p.root.mu.Unlock()

	items := withoutID(p.load(), id)
	if err := p.save(items); err != nil {
		return nil, err
	}
	return items, nil
}
