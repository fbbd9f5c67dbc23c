// Package sessions confines showcase state to one visitor. Each session owns its
// own controller and scroll guard; nothing is shared between sessions.
package sessions

import (
	"sync"
	"time"

	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/errs"
	"github.com/rpupo63/portfolio-showcase/showcase"
)

// Session is one visitor's showcase. Its methods are safe for concurrent use and
// apply events in the order they acquire the lock.
type Session struct {
	ID string

	mu       sync.Mutex
	ctrl     *showcase.Controller
	guard    *showcase.ScrollGuard
	lastSeen time.Time
	ended    bool
}

func newSession(id string, cat *catalog.Catalog, now time.Time) *Session {
	guard := &showcase.ScrollGuard{}
	return &Session{
		ID:       id,
		ctrl:     showcase.NewController(cat, guard),
		guard:    guard,
		lastSeen: now,
	}
}

// Dispatch applies ev to the session's controller. An ended session refuses
// every event and stays closed.
func (s *Session) Dispatch(ev showcase.Event, now time.Time) (showcase.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return showcase.Result{Outcome: showcase.OutcomeIgnored, Snapshot: s.ctrl.Snapshot()}, errs.NewSessionNotFoundError()
	}
	s.lastSeen = now
	return s.ctrl.Dispatch(ev)
}

// View renders the session without changing it.
func (s *Session) View() showcase.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.View()
}

// Snapshot reports the current state.
func (s *Session) Snapshot() showcase.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Snapshot()
}

// Touch marks the session as used. It reports false once the session has
// ended.
func (s *Session) Touch(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return false
	}
	s.lastSeen = now
	return true
}

// Unmount tears the showcase down and restores scroll. Further calls are
// harmless.
func (s *Session) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.Unmount()
	s.ended = true
}

// ScrollSuppressed reports whether the session currently holds the scroll lock.
func (s *Session) ScrollSuppressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guard.Suppressed()
}

// Ended reports whether the session has been unmounted.
func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
