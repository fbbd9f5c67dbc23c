package showcase

import (
	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/linkify"
)

// Card is one clickable project tile.
type Card struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Cover       string
}

// Indicator is one carousel dot.
type Indicator struct {
	Index  int
	Active bool
}

// ModalView is everything the modal template needs. It is only built while the
// modal is open.
type ModalView struct {
	ProjectID   string
	Title       string
	Body        []linkify.Segment
	Tags        []string
	Link        string
	Image       string
	ImageNumber int
	ImageCount  int
	Carousel    bool // images exist
	Navigation  bool // more than one image
	Indicators  []Indicator
	Zoomed      bool
}

// View is the full render model for one session.
type View struct {
	Cards        []Card
	Modal        *ModalView
	ScrollLocked bool
	State        Snapshot
}

// View renders the catalog and current selection. It does not change state.
func (c *Controller) View() View {
	v := View{
		Cards:        Cards(c.catalog),
		ScrollLocked: c.locked,
		State:        c.Snapshot(),
	}
	if c.sel.open && c.sel.project != nil {
		m := c.modalView(*c.sel.project)
		v.Modal = &m
	}
	return v
}

// Cards builds one card per catalog entry, in catalog order.
func Cards(cat *catalog.Catalog) []Card {
	projects := cat.All()
	cards := make([]Card, len(projects))
	for i, p := range projects {
		cards[i] = Card{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Tags:        p.Tags,
		}
		if p.HasImages() {
			cards[i].Cover = p.Images[0]
		}
	}
	return cards
}

func (c *Controller) modalView(p catalog.Project) ModalView {
	n := p.ImageCount()
	m := ModalView{
		ProjectID:  p.ID,
		Title:      p.Title,
		Body:       linkify.Split(p.Body()),
		Tags:       p.Tags,
		Link:       p.Link,
		ImageCount: n,
		Carousel:   n > 0,
		Navigation: n > 1,
	}
	if n == 0 {
		return m
	}

	i := c.carousel.Index()
	m.Image = p.Images[i]
	m.ImageNumber = i + 1
	m.Zoomed = c.carousel.Zoomed()
	if m.Navigation {
		m.Indicators = make([]Indicator, n)
		for j := range m.Indicators {
			m.Indicators[j] = Indicator{Index: j, Active: j == i}
		}
	}
	return m
}
