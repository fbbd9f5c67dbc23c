// Package showcase implements the project showcase: which project is selected,
// whether its modal is open, and the image carousel / zoom overlay inside it.
//
// Transitions:
//
//	closed  --select(p)--> open(0)
//	open(i) --next/prev--> open(i±1 mod N)      no-op when N <= 1; zoom is kept
//	open(i) --zoom-------> zoomed(i)            only when N > 0
//	zoomed  --unzoom-----> open(i)
//	zoomed  --cancel-----> open(i)              cancel un-zooms first
//	open    --cancel-----> closed
//	any     --close/backdrop--> closed
//	any     --select(q)--> open(0)              rebinding always resets
//
// A Controller is not safe for concurrent use; callers serialise events.
package showcase

import (
	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/errs"
)

// selection is the showcase's SelectionState. open implies project != nil.
type selection struct {
	project *catalog.Project
	open    bool
}

// Controller drives one viewing session.
type Controller struct {
	catalog  *catalog.Catalog
	sel      selection
	carousel Carousel
	lock     ScrollLock
	locked   bool
}

// NewController creates a closed showcase over cat. A nil lock gets a private
// ScrollGuard.
func NewController(cat *catalog.Catalog, lock ScrollLock) *Controller {
	if lock == nil {
		lock = &ScrollGuard{}
	}
	return &Controller{catalog: cat, lock: lock}
}

// SelectProject binds p and opens the modal on its first image. Selecting while
// already open rebinds and resets the carousel.
func (c *Controller) SelectProject(p *catalog.Project) error {
	if p == nil {
		return errs.NewNoProjectBoundError()
	}

	bound := *p
	c.sel = selection{project: &bound, open: true}
	c.carousel.Reset()
	c.acquire()
	return nil
}

// SelectByID selects the catalog entry with the given id.
func (c *Controller) SelectByID(id string) error {
	if id == "" {
		return errs.NewNoProjectBoundError()
	}
	p, err := c.catalog.Get(id)
	if err != nil {
		return err
	}
	return c.SelectProject(&p)
}

// CloseModal hides the modal. The last project stays bound so it can still be
// rendered during a close transition.
func (c *Controller) CloseModal() {
	if !c.sel.open {
		return
	}
	c.sel.open = false
	c.carousel.SetZoomed(false)
	c.release()
}

// Next moves to the following image. The zoom overlay stays up across moves.
func (c *Controller) Next() bool {
	if !c.sel.open {
		return false
	}
	before := c.carousel.Index()
	c.carousel.Next(c.imageCount())
	return c.carousel.Index() != before
}

// Prev moves to the previous image.
func (c *Controller) Prev() bool {
	if !c.sel.open {
		return false
	}
	before := c.carousel.Index()
	c.carousel.Prev(c.imageCount())
	return c.carousel.Index() != before
}

// Zoom opens the full-screen overlay. There is no overlay without images.
func (c *Controller) Zoom() bool {
	if !c.sel.open || c.imageCount() == 0 {
		return false
	}
	return c.carousel.SetZoomed(true)
}

// Unzoom leaves the overlay, keeping the current image.
func (c *Controller) Unzoom() bool {
	if !c.sel.open {
		return false
	}
	return c.carousel.SetZoomed(false)
}

// Cancel handles the cancel key: it un-zooms if zoomed, otherwise closes.
// Exactly one of the two happens per call.
func (c *Controller) Cancel() Outcome {
	switch {
	case !c.sel.open:
		return OutcomeIgnored
	case c.carousel.Zoomed():
		c.Unzoom()
		return OutcomeUnzoomed
	default:
		c.CloseModal()
		return OutcomeClosed
	}
}

// Backdrop handles a click outside the modal content.
func (c *Controller) Backdrop() Outcome {
	if !c.sel.open {
		return OutcomeIgnored
	}
	c.CloseModal()
	return OutcomeClosed
}

// Unmount tears the showcase down. Scroll is restored whatever state the
// controller is in, so it is safe to defer.
func (c *Controller) Unmount() {
	c.sel.open = false
	c.carousel.SetZoomed(false)
	c.locked = false
	c.lock.Restore()
}

// Dispatch applies one event and reports what it did.
func (c *Controller) Dispatch(ev Event) (Result, error) {
	outcome := OutcomeIgnored

	switch ev.Type {
	case EventSelect:
		if err := c.SelectByID(ev.ProjectID); err != nil {
			return Result{Outcome: OutcomeIgnored, Snapshot: c.Snapshot()}, err
		}
		outcome = OutcomeOpened
	case EventNext:
		if c.Next() {
			outcome = OutcomeMoved
		}
	case EventPrev:
		if c.Prev() {
			outcome = OutcomeMoved
		}
	case EventZoom:
		if c.Zoom() {
			outcome = OutcomeZoomed
		}
	case EventUnzoom:
		if c.Unzoom() {
			outcome = OutcomeUnzoomed
		}
	case EventCancel:
		outcome = c.Cancel()
	case EventClose:
		if c.sel.open {
			c.CloseModal()
			outcome = OutcomeClosed
		}
	case EventBackdrop:
		outcome = c.Backdrop()
	default:
		return Result{Outcome: OutcomeIgnored, Snapshot: c.Snapshot()}, errs.NewUnknownEventError(string(ev.Type))
	}

	return Result{Outcome: outcome, Snapshot: c.Snapshot()}, nil
}

// Snapshot reports the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        PhaseClosed,
		ModalOpen:    c.sel.open,
		ScrollLocked: c.locked,
	}
	if c.sel.project != nil {
		s.ProjectID = c.sel.project.ID
		s.ImageCount = c.sel.project.ImageCount()
	}
	if c.sel.open {
		s.Phase = PhaseOpen
		s.ImageIndex = c.carousel.Index()
		s.Zoomed = c.carousel.Zoomed()
		if s.Zoomed {
			s.Phase = PhaseZoomed
		}
	}
	return s
}

// Selected returns the bound project, which may be set while the modal is
// closed.
func (c *Controller) Selected() (catalog.Project, bool) {
	if c.sel.project == nil {
		return catalog.Project{}, false
	}
	return *c.sel.project, true
}

// IsModalOpen reports whether the modal is visible.
func (c *Controller) IsModalOpen() bool {
	return c.sel.open
}

func (c *Controller) imageCount() int {
	if c.sel.project == nil {
		return 0
	}
	return c.sel.project.ImageCount()
}

func (c *Controller) acquire() {
	if c.locked {
		return
	}
	c.locked = true
	c.lock.Suppress()
}

func (c *Controller) release() {
	if !c.locked {
		return
	}
	c.locked = false
	c.lock.Restore()
}
