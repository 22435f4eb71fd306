// internal/controller/messages.go
//
// Intents a front end dispatches to the controller, plus the completion
// message a lookup command returns. Front ends translate key presses,
// mouse clicks and HTTP requests into these values; nothing else mutates
// controller state.

package controller

import (
	"fmt"

	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
)

// InputChanged replaces the generator text field.
type InputChanged struct{ Text string }

// LengthChanged replaces the board length field.
type LengthChanged struct{ Value int }

// SubmitInput asks for a lookup of the current input.
type SubmitInput struct{}

// CellClicked plays the number in cell Index.
type CellClicked struct{ Index int }

// Undo rewinds to the previous confirmed generator set.
type Undo struct{}

// FetchResolved carries the outcome of lookup number Seq for Input.
type FetchResolved struct {
	Seq      uint64
	Input    string
	Position *position.Position
	Err      error
}

// LengthError blocks a lookup whose board length is below MinLength.
type LengthError struct{ Value int }

func (e *LengthError) Error() string {
	return fmt.Sprintf("length %d is below the minimum of %d", e.Value, MinLength)
}
