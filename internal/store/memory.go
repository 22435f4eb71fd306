// internal/store/memory.go
//
// In-memory store of browser sessions for the web front end.
// Each session owns exactly one controller; nothing outlives the process.
//
// Characteristics:
//   - Sessions keyed by ID in a map guarded by an RWMutex.
//   - Sessions idle longer than the TTL are dropped by Sweep.
//   - Get returns ErrNotFound for unknown IDs.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/sylver/apps/go-viz/internal/metrics"
)

// ErrNotFound is returned by Get for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Store defines the session persistence interface.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID and marks it as seen.
	Get(ctx context.Context, id string) (*Session, error)

	// Sweep removes sessions idle for longer than ttl and reports how many.
	Sweep(ttl time.Duration) int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session), now: time.Now}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[s.ID]; !exists {
		metrics.SessionOpened()
	}
	s.touch(m.now())
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch(m.now())
	return s, nil
}

func (m *memory) Sweep(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.lastSeen().Before(cutoff) {
			delete(m.sessions, id)
			metrics.SessionClosed()
			n++
		}
	}
	return n
}
