// Package session provides per-user in-memory state. Each browser
// session owns its quiz and step list; nothing is shared across
// sessions, so one user's quiz can never leak into another's.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"tasktamer/internal/domain/entity"
)

// Clock provides time operations. Tests substitute a fake.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Session holds everything one user accumulates: the active quiz and the
// most recent task breakdown. Callers must hold the session's lock while
// reading or mutating its state.
type Session struct {
	sync.Mutex

	ID    string
	Quiz  *entity.QuizSession
	Steps entity.StepList

	lastAccess time.Time
}

// Config holds configuration for the session store.
type Config struct {
	// TTL is how long an idle session survives before Purge removes it.
	// Default: 30m
	TTL time.Duration

	// MaxSessions caps the number of live sessions. When the cap is
	// reached, the least recently used session is evicted to make room.
	// Default: 10000
	MaxSessions int

	// Clock provides time operations for testing. Default: SystemClock
	Clock Clock
}

// DefaultConfig returns production-ready session settings.
func DefaultConfig() Config {
	return Config{
		TTL:         30 * time.Minute,
		MaxSessions: 10000,
		Clock:       SystemClock{},
	}
}

// Store is a thread-safe in-memory session registry keyed by session ID.
// Idle sessions expire after the configured TTL; a maximum-entry cap with
// least-recently-used eviction keeps memory bounded.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	config   Config
}

// NewStore creates an empty session store.
func NewStore(config Config) *Store {
	if config.TTL <= 0 {
		config.TTL = 30 * time.Minute
	}
	if config.MaxSessions <= 0 {
		config.MaxSessions = 10000
	}
	if config.Clock == nil {
		config.Clock = SystemClock{}
	}
	return &Store{
		sessions: make(map[string]*Session),
		config:   config,
	}
}

// GetOrCreate returns the session for id, creating a fresh one when id is
// unknown, empty, or expired. The returned ID is the one the caller
// should persist (it differs from the input when a new session was made).
func (s *Store) GetOrCreate(id string) (*Session, string) {
	now := s.config.Clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.sessions[id]; ok && now.Sub(sess.lastAccess) < s.config.TTL {
			sess.lastAccess = now
			return sess, id
		}
	}

	if len(s.sessions) >= s.config.MaxSessions {
		s.evictOldest()
	}

	newID := uuid.New().String()
	sess := &Session{
		ID:         newID,
		Quiz:       entity.NewQuizSession(),
		lastAccess: now,
	}
	s.sessions[newID] = sess
	return sess, newID
}

// Purge removes every session idle longer than the TTL and returns the
// number removed. Meant to run on a schedule.
func (s *Store) Purge() int {
	now := s.config.Clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastAccess) >= s.config.TTL {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		slog.Info("Purged expired sessions",
			slog.Int("removed", removed),
			slog.Int("remaining", len(s.sessions)))
	}
	return removed
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// evictOldest removes the least recently used session. Caller holds the
// write lock.
func (s *Store) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastAccess.Before(oldest) {
			oldestID = id
			oldest = sess.lastAccess
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}
