package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/grid"
)

// handleMouse plays the cell under a left click. Clicks outside the grid
// only move focus.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	i := m.cellAt(msg.X, msg.Y)
	if i < 0 {
		if msg.Y == 1 {
			return m.setFocus(focusInput)
		}
		return nil
	}
	m.setFocus(focusGrid)
	m.cursor = i
	return m.dispatch(controller.CellClicked{Index: i})
}

// cellAt maps a screen position to a cell index, or -1.
func (m Model) cellAt(x, y int) int {
	snap := m.ctl.Snapshot()
	if snap.Position == nil || x < 0 {
		return -1
	}
	return grid.At(snap.Rows(), y-gridTop, x/cellWidth(snap.Position))
}
