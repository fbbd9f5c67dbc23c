package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/errs"
)

// DefaultTTL is how long an idle session survives.
const DefaultTTL = 30 * time.Minute

// Store holds live sessions keyed by id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	catalog  *catalog.Catalog
	ttl      time.Duration
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the idle timeout.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(cat *catalog.Catalog, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		catalog:  cat,
		ttl:      DefaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store's clock reading.
func (s *Store) Now() time.Time {
	return s.now()
}

// Create starts a fresh session with a closed showcase.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.catalog, s.now())

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	log.Debug().Str("sessionID", sess.ID).Msg("session created")
	return sess
}

// Get returns the live session with the given id.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	// a sweep may end the session between the lookup and the touch
	if !ok || !sess.Touch(s.now()) {
		return nil, errs.NewSessionNotFoundError()
	}
	return sess, nil
}

// GetOrCreate returns the session for id, starting a new one when id is empty
// or unknown. created reports which happened.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if id != "" {
		if existing, err := s.Get(id); err == nil {
			return existing, false
		}
	}
	return s.Create(), true
}

// Delete ends a session and restores its scroll lock.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return errs.NewSessionNotFoundError()
	}
	sess.Unmount()
	log.Debug().Str("sessionID", id).Msg("session ended")
	return nil
}

// Sweep ends every session idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep(now time.Time) int {
	var expired []*Session

	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.Sub(sess.idleSince()) > s.ttl {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Unmount()
	}
	return len(expired)
}

// Shutdown ends all sessions.
func (s *Store) Shutdown() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.Unmount()
	}
	log.Info().Int("count", len(all)).Msg("sessions closed")
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
