// internal/history/stack.go
//
// Undo log of confirmed generator sets.
//
// The stack is append-only except for Undo, which drops the newest entry.
// The earliest entry can never be undone past.

package history

// Stack holds serialized generator sets, oldest first.
type Stack struct {
	entries []string
}

// New returns a stack seeded with the given entries (oldest first).
func New(entries ...string) *Stack {
	s := &Stack{}
	for _, e := range entries {
		s.Record(e)
	}
	return s
}

// Record appends entry unless it equals the current top.
// It reports whether the stack grew.
func (s *Stack) Record(entry string) bool {
	if top, ok := s.Top(); ok && top == entry {
		return false
	}
	s.entries = append(s.entries, entry)
	return true
}

// Undo removes the top entry and returns the new top.
// With fewer than two entries it does nothing and returns false.
func (s *Stack) Undo() (string, bool) {
	if len(s.entries) < 2 {
		return "", false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return s.entries[len(s.entries)-1], true
}

// Top returns the newest entry.
func (s *Stack) Top() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) Len() int { return len(s.entries) }

// Entries returns a copy of the log, oldest first.
func (s *Stack) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}
