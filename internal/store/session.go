package store

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
)

// Session is one browser tab's controller plus its bookkeeping.
type Session struct {
	ID string

	mu   sync.Mutex // serialises controller updates
	ctl  *controller.Controller
	seen time.Time
	tmu  sync.Mutex // guards seen
}

// NewSession wraps ctl under id.
func NewSession(id string, ctl *controller.Controller) *Session {
	return &Session{ID: id, ctl: ctl}
}

// Dispatch applies msg, runs the resulting lookup (if any) without holding
// the lock, then applies its result. Overlapping dispatches on the same
// session resolve in arrival order of their lookups.
func (s *Session) Dispatch(msg tea.Msg) controller.Snapshot {
	s.mu.Lock()
	cmd := s.ctl.Update(msg)
	s.mu.Unlock()

	if cmd != nil {
		res := cmd()
		s.mu.Lock()
		s.ctl.Update(res)
		s.mu.Unlock()
	}
	return s.Snapshot()
}

// Snapshot returns the current view state.
func (s *Session) Snapshot() controller.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctl.Snapshot()
}

func (s *Session) touch(t time.Time) {
	s.tmu.Lock()
	s.seen = t
	s.tmu.Unlock()
}

func (s *Session) lastSeen() time.Time {
	s.tmu.Lock()
	defer s.tmu.Unlock()
	return s.seen
}
