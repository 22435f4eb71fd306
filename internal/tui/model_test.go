package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/generators"
	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
	"github.com/robalobadob/sylver/apps/go-viz/internal/sylverapi"
)

type fakeFetcher struct {
	reqs []sylverapi.Request
	err  error
}

func (f *fakeFetcher) Fetch(_ context.Context, req sylverapi.Request) (*position.Position, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	gens, _ := req.Input.Ints()
	bits := make([]bool, req.Length)
	for i := range bits {
		for _, g := range gens {
			if i%g == 0 {
				bits[i] = true
			}
		}
	}
	return &position.Position{
		Name:         "{" + req.Input.String() + "}",
		BitArray:     bits,
		Multiplicity: 10,
		Generators:   gens,
		Status:       position.StatusN,
	}, nil
}

// step runs one message through the model and executes any lookup command
// it returns, the way the runtime would.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		if res, ok := cmd().(controller.FetchResolved); ok {
			next, _ = m.Update(res)
			m = next.(Model)
		}
	}
	return m
}

func loaded(t *testing.T, f *fakeFetcher) Model {
	t.Helper()
	m := New(controller.New(f))
	cmd := m.Init()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	m = next.(Model)
	require.Equal(t, controller.Loaded, m.Snapshot().State)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInit_LooksUpDefaultInput(t *testing.T) {
	f := &fakeFetcher{}
	m := loaded(t, f)

	require.Len(t, f.reqs, 1)
	assert.True(t, f.reqs[0].Input.Equal(generators.Parse("9,11")))
	assert.Equal(t, 100, f.reqs[0].Length)
	assert.Len(t, m.Snapshot().Rows(), 10)
}

func TestView_ShowsPositionAndGrid(t *testing.T) {
	m := loaded(t, &fakeFetcher{})
	out := m.View()
	assert.Contains(t, out, "Sylver Coinage")
	assert.Contains(t, out, "{9,11}")
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, "99")
}

func TestTyping_UpdatesControllerInput(t *testing.T) {
	m := loaded(t, &fakeFetcher{})
	m = step(t, m, keyRunes(",x"))
	snap := m.Snapshot()
	assert.Equal(t, "9,11,x", snap.InputText)
	assert.False(t, snap.InputValid)
	assert.Contains(t, m.View(), "Generators!")

	f := &fakeFetcher{}
	m2 := loaded(t, f)
	m2 = step(t, m2, keyRunes(",x"))
	m2 = step(t, m2, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, f.reqs, 1, "invalid input must not fetch")
	assert.NotNil(t, m2.Snapshot().Blocked)
}

func TestLengthField(t *testing.T) {
	f := &fakeFetcher{}
	m := loaded(t, f)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusLength, m.focus)

	m = step(t, m, keyRunes("0"))
	assert.Equal(t, 1000, m.Snapshot().Length)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, f.reqs, 2)
	assert.Equal(t, 1000, f.reqs[1].Length)
}

func TestGridCursorAndPlay(t *testing.T) {
	f := &fakeFetcher{}
	m := loaded(t, f)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, focusGrid, m.focus)

	// Cursor starts on 1; down moves to 2, right jumps a column to 12.
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 12, m.cursor)

	// 12 is a gap for {9,11}: playing it does nothing.
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Len(t, f.reqs, 1)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.cursor)
	for range 9 {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.cursor, "cursor stays on the board")

	m.cursor = 18
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, f.reqs, 2)
	assert.Equal(t, "9,11,18", m.input.Value())
	assert.Equal(t, "9,11,18", m.Snapshot().InputText)
}

func TestMouseClickPlaysCell(t *testing.T) {
	f := &fakeFetcher{}
	m := loaded(t, f)

	// 100 cells → width 3; cell 22 is row 2, column 2.
	m = step(t, m, tea.MouseMsg{X: 2*3 + 1, Y: gridTop + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Len(t, f.reqs, 2)
	assert.Equal(t, "9,11,22", m.Snapshot().InputText)
	assert.Equal(t, focusGrid, m.focus)

	// Outside the grid nothing is played.
	m = step(t, m, tea.MouseMsg{X: 500, Y: gridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Len(t, f.reqs, 2)
	m = step(t, m, tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, focusInput, m.focus)
}

func TestUndoRestoresField(t *testing.T) {
	f := &fakeFetcher{}
	m := loaded(t, f)
	m.setFocus(focusGrid)
	m.cursor = 18
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "9,11,18", m.input.Value())

	m = step(t, m, keyRunes("u"))
	assert.Equal(t, "9,11", m.input.Value())
	assert.Equal(t, []string{"9,11"}, m.Snapshot().History)
	assert.Len(t, f.reqs, 3)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Len(t, f.reqs, 3, "nothing left to undo")
}

func TestLookupErrorShown(t *testing.T) {
	f := &fakeFetcher{}
	m := loaded(t, f)
	f.err = &sylverapi.ServiceError{Status: 200, Message: "invalid input"}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	snap := m.Snapshot()
	assert.Equal(t, controller.Error, snap.State)
	assert.Equal(t, "{9,11}", snap.Position.Name)
	assert.Contains(t, m.View(), "invalid input")

	var se *sylverapi.ServiceError
	assert.True(t, errors.As(snap.Err, &se))
}

func TestQuit(t *testing.T) {
	m := loaded(t, &fakeFetcher{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// q is text while a field has focus.
	next, _ := m.Update(keyRunes("q"))
	assert.Equal(t, "9,11q", next.(Model).Snapshot().InputText)
}
