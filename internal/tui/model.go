// internal/tui/model.go
//
// Terminal front end for the visualizer.
// Responsibilities:
//   - Own one controller and feed it intents translated from keys and mouse.
//   - Run lookup commands on the bubbletea runtime and route their results
//     back into the controller.
//   - Keep the two text fields in step with the controller's input.
//
// Focus cycles Generators → Length → Grid. Inside the grid the arrow keys
// move a cursor over cells laid out exactly as on screen.

package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/grid"
)

type focus int

const (
	focusInput focus = iota
	focusLength
	focusGrid
	focusCount
)

// Model is the bubbletea model.
type Model struct {
	ctl    *controller.Controller
	input  textinput.Model
	length textinput.Model
	focus  focus
	cursor int // cell index under the grid cursor
	keys   keyMap
	help   help.Model
	width  int
	height int
}

// New wraps ctl. The fields start from the controller's current input.
func New(ctl *controller.Controller) Model {
	snap := ctl.Snapshot()

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "9,11"
	in.CharLimit = 512
	in.Width = 40
	in.SetValue(snap.InputText)
	in.Focus()

	ln := textinput.New()
	ln.Prompt = ""
	ln.CharLimit = 6
	ln.Width = 6
	ln.SetValue(strconv.Itoa(snap.Length))

	return Model{
		ctl:    ctl,
		input:  in,
		length: ln,
		focus:  focusInput,
		cursor: 1,
		keys:   defaultKeys(),
		help:   help.New(),
	}
}

// Init looks up the starting position.
func (m Model) Init() tea.Cmd {
	return m.ctl.Update(controller.SubmitInput{})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return nil

	case controller.FetchResolved:
		m.ctl.Update(msg)
		m.clampCursor()
		return nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.NextField):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Undo):
		return m.dispatch(controller.Undo{})
	}

	if m.focus == focusGrid {
		return m.handleGridKey(msg)
	}
	if key.Matches(msg, m.keys.Submit) {
		return m.dispatch(controller.SubmitInput{})
	}
	return m.updateField(msg)
}

func (m *Model) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.GridQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.GridUndo):
		return m.dispatch(controller.Undo{})
	case key.Matches(msg, m.keys.Play):
		return m.dispatch(controller.CellClicked{Index: m.cursor})
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	}
	return nil
}

// updateField forwards a key to the focused text field and reports the new
// value to the controller when it changed.
func (m *Model) updateField(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != before {
			m.ctl.Update(controller.InputChanged{Text: v})
		}
	case focusLength:
		before := m.length.Value()
		m.length, cmd = m.length.Update(msg)
		if v := m.length.Value(); v != before {
			n, err := strconv.Atoi(v)
			if err != nil {
				n = 0
			}
			m.ctl.Update(controller.LengthChanged{Value: n})
		}
	}
	return cmd
}

// dispatch sends an intent and mirrors any input rewrite (click, undo) back
// into the generator field.
func (m *Model) dispatch(msg tea.Msg) tea.Cmd {
	cmd := m.ctl.Update(msg)
	if text := m.ctl.Snapshot().InputText; text != m.input.Value() {
		m.input.SetValue(text)
		m.input.CursorEnd()
	}
	return cmd
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.input.Blur()
	m.length.Blur()
	switch f {
	case focusInput:
		return m.input.Focus()
	case focusLength:
		return m.length.Focus()
	}
	m.clampCursor()
	return nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	snap := m.ctl.Snapshot()
	if snap.Position == nil {
		return
	}
	rows := snap.Rows()
	row, col := grid.Locate(m.cursor, len(rows))
	if i := grid.At(rows, row+dRow, col+dCol); i >= 0 {
		m.cursor = i
	}
}

// clampCursor keeps the cursor on the board after a new position arrives.
func (m *Model) clampCursor() {
	snap := m.ctl.Snapshot()
	if snap.Position == nil {
		return
	}
	if n := snap.Position.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Snapshot exposes the controller state, mainly for tests.
func (m Model) Snapshot() controller.Snapshot { return m.ctl.Snapshot() }
