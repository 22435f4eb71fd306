package controller

import (
	"github.com/robalobadob/sylver/apps/go-viz/internal/generators"
	"github.com/robalobadob/sylver/apps/go-viz/internal/grid"
	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
)

// Snapshot is the render-time view of a controller. Renderers read it and
// never touch the controller directly.
type Snapshot struct {
	State       State
	Length      int
	LengthValid bool
	InputText   string
	Input       generators.Set
	InputValid  bool
	Position    *position.Position
	History     []string
	Err         error // last lookup failure
	Blocked     error // why the last submit did not fetch
	InFlight    int
	Seq         uint64
}

// Rows lays out the displayed position, or nil when nothing is loaded.
func (s Snapshot) Rows() []grid.Row {
	return grid.Layout(s.Position)
}

// CanUndo reports whether an Undo intent would change anything.
func (s Snapshot) CanUndo() bool { return len(s.History) > 1 }
