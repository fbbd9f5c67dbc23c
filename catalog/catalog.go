// Package catalog holds the read-only, ordered list of project records that the
// portfolio page renders, together with the site profile around it.
package catalog

import (
	"fmt"

	"github.com/rpupo63/portfolio-showcase/errs"
)

// Catalog is the fixed project list. It never changes after New returns, and
// every accessor hands out copies.
type Catalog struct {
	projects []Project
	byID     map[string]int
}

// New validates records and builds a catalog that preserves their order.
func New(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}

	for i, p := range projects {
		if err := p.Validate(); err != nil {
			return nil, errs.NewInvalidCatalogError(fmt.Errorf("project %d (%q): %w", i, p.ID, err))
		}
		if first, ok := c.byID[p.ID]; ok {
			return nil, errs.NewDuplicateProjectIDError(p.ID, first, i)
		}
		c.byID[p.ID] = i
		c.projects = append(c.projects, p.clone())
	}

	return c, nil
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// All returns every project in display order.
func (c *Catalog) All() []Project {
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.clone()
	}
	return out
}

// Lookup finds a project by id.
func (c *Catalog) Lookup(id string) (Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return c.projects[i].clone(), true
}

// Get is Lookup returning a not-found error for unknown ids.
func (c *Catalog) Get(id string) (Project, error) {
	p, ok := c.Lookup(id)
	if !ok {
		return Project{}, errs.NewUnknownProjectError(id)
	}
	return p, nil
}

// IDs returns project ids in display order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.projects))
	for i, p := range c.projects {
		ids[i] = p.ID
	}
	return ids
}
