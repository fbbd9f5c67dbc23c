package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/models"
)

func TestToCatalogProject(t *testing.T) {
	row := &models.Project{
		ID:              "cinerate",
		Position:        2,
		Title:           "CineRate",
		Description:     "Movie ratings",
		LongDescription: "More at https://cinerate.test",
		Link:            "https://cinerate.test",
		Images:          datatypes.JSONSlice[string]{"/a.png", "/b.png"},
		Tags: []models.ProjectTag{
			{Value: "Go", Position: 0},
			{Value: "React", Position: 1},
			{Value: "Go", Position: 2},
		},
	}

	got := toCatalogProject(row)

	assert.Equal(t, catalog.Project{
		ID:              "cinerate",
		Title:           "CineRate",
		Description:     "Movie ratings",
		LongDescription: "More at https://cinerate.test",
		Link:            "https://cinerate.test",
		Tags:            []string{"Go", "React", "Go"},
		Images:          []string{"/a.png", "/b.png"},
	}, got)
}

func TestToCatalogProject_NoImages(t *testing.T) {
	got := toCatalogProject(&models.Project{ID: "x", Title: "X"})

	assert.NotNil(t, got.Images)
	assert.Zero(t, got.ImageCount())
	assert.Empty(t, got.Tags)
}

func TestToCatalogProject_FeedsCatalog(t *testing.T) {
	rows := []*models.Project{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B", Images: datatypes.JSONSlice[string]{"/b.png"}},
	}
	projects := make([]catalog.Project, 0, len(rows))
	for _, r := range rows {
		projects = append(projects, toCatalogProject(r))
	}

	cat, err := catalog.New(projects)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cat.IDs())
}
