package database

import (
	"context"

	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/errs"
	"github.com/rpupo63/portfolio-showcase/models"
)

// CatalogSource reads the project catalog from Postgres. It only ever reads.
type CatalogSource struct {
	repo *ProjectRepo
}

func NewCatalogSource(repo *ProjectRepo) CatalogSource {
	return CatalogSource{repo: repo}
}

func (s CatalogSource) Load(ctx context.Context) ([]catalog.Project, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}

	projects := make([]catalog.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, toCatalogProject(row))
	}
	return projects, nil
}

func toCatalogProject(row *models.Project) catalog.Project {
	p := catalog.Project{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		LongDescription: row.LongDescription,
		Link:            row.Link,
		Tags:            row.TagValues(),
		Images:          []string(row.Images),
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p
}
