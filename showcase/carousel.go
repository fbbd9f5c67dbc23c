package showcase

// Carousel is the image index and zoom flag for the project currently bound to
// the modal. The image count is passed in on each move so the carousel never
// holds on to a stale project.
type Carousel struct {
	index  int
	zoomed bool
}

// Index returns the current image index.
func (c Carousel) Index() int {
	return c.index
}

// Zoomed reports whether the full-screen overlay is active.
func (c Carousel) Zoomed() bool {
	return c.zoomed
}

// SetZoomed turns the overlay on or off and reports whether that changed
// anything.
func (c *Carousel) SetZoomed(on bool) bool {
	if c.zoomed == on {
		return false
	}
	c.zoomed = on
	return true
}

// Reset returns to the first image, unzoomed.
func (c *Carousel) Reset() {
	c.index = 0
	c.zoomed = false
}

// Next advances one image, wrapping to 0. No-op for n <= 1.
func (c *Carousel) Next(n int) {
	if n <= 1 {
		return
	}
	c.index = (c.index + 1) % n
}

// Prev steps back one image, wrapping to n-1. No-op for n <= 1.
func (c *Carousel) Prev(n int) {
	if n <= 1 {
		return
	}
	c.index = (c.index - 1 + n) % n
}
