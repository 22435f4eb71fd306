package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/grid"
	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
)

// gridTop is the screen line of the first grid row.
const gridTop = 5

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	stateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	gapStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	openStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	generatorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("110"))
	childPStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	childNStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
)

// View implements tea.Model.
func (m Model) View() string {
	snap := m.ctl.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sylver Coinage") + "  " + stateStyle.Render("["+snap.State.String()+"]"))
	b.WriteByte('\n')
	b.WriteString(m.fieldsLine(snap))
	b.WriteByte('\n')
	b.WriteString(errorStyle.Render(m.clip(messageLine(snap))))
	b.WriteByte('\n')
	if snap.Position != nil {
		b.WriteString(infoStyle.Render(m.clip(snap.Position.Summary())))
	} else {
		b.WriteString(stateStyle.Render("no position loaded"))
	}
	b.WriteString("\n\n")

	rows := snap.Rows()
	w := cellWidth(snap.Position)
	for _, row := range rows {
		for _, c := range row {
			b.WriteString(m.renderCell(c, w))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.focus == focusGrid {
		b.WriteString(m.help.ShortHelpView(m.keys.gridHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.fieldHelp()))
	}
	return b.String()
}

func (m Model) fieldsLine(snap controller.Snapshot) string {
	gen := fieldLabel("Generators", m.focus == focusInput, snap.InputValid)
	ln := fieldLabel("Length", m.focus == focusLength, snap.LengthValid)
	undo := ""
	if snap.CanUndo() {
		undo = stateStyle.Render(fmt.Sprintf("  history: %d", len(snap.History)))
	}
	return gen + " " + m.input.View() + "  " + ln + " " + m.length.View() + undo
}

func fieldLabel(name string, focused, valid bool) string {
	switch {
	case !valid:
		return invalidStyle.Render(name + "!")
	case focused:
		return focusStyle.Render(name + ":")
	}
	return labelStyle.Render(name + ":")
}

// messageLine explains why the last submit was refused or the last lookup
// failed.
func messageLine(snap controller.Snapshot) string {
	switch {
	case snap.Blocked != nil:
		return snap.Blocked.Error()
	case snap.Err != nil:
		return snap.Err.Error()
	}
	return ""
}

func (m Model) renderCell(c grid.Cell, w int) string {
	text := fmt.Sprintf("%*d ", w-1, c.Index)
	style := openStyle
	switch {
	case c.Generator:
		style = generatorStyle
	case c.Gap():
		style = gapStyle
	case c.ChildStatus == position.StatusP:
		style = childPStyle
	case c.ChildStatus == position.StatusN:
		style = childNStyle
	}
	if m.focus == focusGrid && c.Index == m.cursor {
		style = style.Inherit(cursorStyle)
	}
	return style.Render(text)
}

// cellWidth is the on-screen width of every cell: the widest index plus one
// separating space.
func cellWidth(p *position.Position) int {
	if p == nil || p.Len() == 0 {
		return 2
	}
	return len(strconv.Itoa(p.Len()-1)) + 1
}

func (m Model) clip(s string) string {
	if m.width <= 0 || len(s) <= m.width {
		return s
	}
	return s[:m.width]
}
