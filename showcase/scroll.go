package showcase

// ScrollLock suppresses scrolling of whatever is behind the modal. The
// controller calls Suppress when the modal opens and Restore when it closes or
// is torn down; Restore must be safe to call repeatedly.
type ScrollLock interface {
	Suppress()
	Restore()
}

// ScrollGuard is the in-memory ScrollLock a page session renders from.
type ScrollGuard struct {
	suppressed   bool
	acquisitions int
}

func (g *ScrollGuard) Suppress() {
	g.suppressed = true
	g.acquisitions++
}

func (g *ScrollGuard) Restore() {
	g.suppressed = false
}

// Suppressed reports whether background scroll is currently locked.
func (g *ScrollGuard) Suppressed() bool {
	return g.suppressed
}
