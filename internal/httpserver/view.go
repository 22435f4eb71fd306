package httpserver

import (
	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
)

// viewModel is the JSON projection of a controller snapshot. The page
// renders it without any further logic.
type viewModel struct {
	State       string        `json:"state"`
	Length      int           `json:"length"`
	LengthValid bool          `json:"lengthValid"`
	Input       string        `json:"input"`
	InputValid  bool          `json:"inputValid"`
	History     []string      `json:"history"`
	CanUndo     bool          `json:"canUndo"`
	LastError   string        `json:"lastError,omitempty"`
	Blocked     string        `json:"blocked,omitempty"`
	Position    *positionView `json:"position,omitempty"`
}

type positionView struct {
	Name         string       `json:"name"`
	GCD          int          `json:"gcd"`
	Frobenius    int          `json:"frobenius"`
	Genus        int          `json:"genus"`
	Multiplicity int          `json:"multiplicity"`
	Irreducible  string       `json:"irreducible"`
	Status       string       `json:"status"`
	StatusLabel  string       `json:"statusLabel"`
	Rows         [][]cellView `json:"rows"`
}

type cellView struct {
	Index       int    `json:"index"`
	Open        bool   `json:"open"`
	Generator   bool   `json:"generator"`
	Clickable   bool   `json:"clickable"`
	ChildStatus string `json:"childStatus,omitempty"`
}

func newViewModel(s controller.Snapshot) viewModel {
	vm := viewModel{
		State:       s.State.String(),
		Length:      s.Length,
		LengthValid: s.LengthValid,
		Input:       s.InputText,
		InputValid:  s.InputValid,
		History:     s.History,
		CanUndo:     s.CanUndo(),
	}
	if s.Err != nil {
		vm.LastError = s.Err.Error()
	}
	if s.Blocked != nil {
		vm.Blocked = s.Blocked.Error()
	}
	if s.Position != nil {
		vm.Position = newPositionView(s)
	}
	return vm
}

func newPositionView(s controller.Snapshot) *positionView {
	p := s.Position
	pv := &positionView{
		Name:         p.Name,
		GCD:          p.GCD,
		Frobenius:    p.Frobenius,
		Genus:        p.Genus,
		Multiplicity: p.Multiplicity,
		Irreducible:  p.Irreducible.Label(),
		Status:       string(p.Status),
		StatusLabel:  statusLabel(p.Status),
	}
	for _, row := range s.Rows() {
		cells := make([]cellView, 0, len(row))
		for _, c := range row {
			cells = append(cells, cellView{
				Index:       c.Index,
				Open:        c.Open,
				Generator:   c.Generator,
				Clickable:   c.Clickable(),
				ChildStatus: string(c.ChildStatus),
			})
		}
		pv.Rows = append(pv.Rows, cells)
	}
	return pv
}

// statusLabel spells out a status for the info panel.
func statusLabel(s position.Status) string {
	switch s {
	case position.StatusP:
		return "previous player wins"
	case position.StatusN:
		return "next player wins"
	case position.StatusUnknown:
		return "unsolved"
	}
	return string(s)
}
