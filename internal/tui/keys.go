package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the footer.
type keyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Play      key.Binding
	Undo      key.Binding
	GridUndo  key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Quit      key.Binding
	GridQuit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "look up")),
		Play:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "play cell")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		GridUndo:  key.NewBinding(key.WithKeys("u", "backspace"), key.WithHelp("u", "undo")),
		Up:        key.NewBinding(key.WithKeys("up", "k")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		Left:      key.NewBinding(key.WithKeys("left", "h")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		GridQuit:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) fieldHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Undo, k.Quit}
}

func (k keyMap) gridHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Play, k.GridUndo, k.GridQuit}
}
