// internal/position/types.go
//
// Core type definitions for a Sylver Coinage position as reported by the
// computation service.
// Defines:
//   - Status: win/loss tag of a position (P/N, or "?" while unsolved).
//   - Irreducible: terminal-play class (quiet ender / ender / neither).
//   - Position: the full payload of GET /api/get.
//   - Child: the summary the service attaches per playable cell.

package position

import (
	"fmt"
	"slices"
)

// Status is the combinatorial-game outcome class of a position.
// Possible values:
//   - "P": previous player wins.
//   - "N": next player wins.
//   - "?": not solved yet (the service queues it for its solver pool).
//
// Any other string from the service is kept verbatim.
type Status string

const (
	StatusP       Status = "P"
	StatusN       Status = "N"
	StatusUnknown Status = "?"
)

// Known reports whether the status is P or N.
func (s Status) Known() bool { return s == StatusP || s == StatusN }

// Irreducible is the service's irreducibility tag. A JSON null decodes to
// IrreducibleNone.
type Irreducible string

const (
	IrreducibleQuietEnder Irreducible = "s"
	IrreducibleEnder      Irreducible = "p"
	IrreducibleNone       Irreducible = ""
)

// Label returns the human-readable class.
func (i Irreducible) Label() string {
	switch i {
	case IrreducibleQuietEnder:
		return "quiet ender"
	case IrreducibleEnder:
		return "ender"
	default:
		return "no"
	}
}

// Child summarises the position reached by playing one cell.
type Child struct {
	Status       Status      `json:"status"`
	Generators   []int       `json:"generators,omitempty"`
	GCD          int         `json:"gcd,omitempty"`
	Multiplicity int         `json:"multiplicity,omitempty"`
	Genus        int         `json:"genus,omitempty"`
	Frobenius    int         `json:"frobenius,omitempty"`
	Irreducible  Irreducible `json:"irreducible,omitempty"`
}

// Position is an immutable snapshot of one game state.
// A new lookup always yields a new Position; nothing mutates a received one.
type Position struct {
	Name         string        `json:"name"`
	BitArray     []bool        `json:"bitarray"`
	Multiplicity int           `json:"multiplicity"`
	Generators   []int         `json:"generators"`
	GCD          int           `json:"gcd"`
	Frobenius    int           `json:"frobenius"`
	Genus        int           `json:"genus"`
	Irreducible  Irreducible   `json:"irreducible"`
	Status       Status        `json:"status"`
	Children     map[int]Child `json:"children,omitempty"`
}

// Len is the number of cells in the bit-array.
func (p *Position) Len() int { return len(p.BitArray) }

// IsGenerator reports whether cell i is one of the minimal generators.
func (p *Position) IsGenerator(i int) bool {
	return slices.Contains(p.Generators, i)
}

// ChildStatus returns the status of the child reached from cell i, or ""
// when children were not requested or the cell has none.
func (p *Position) ChildStatus(i int) Status {
	if p.Children == nil {
		return ""
	}
	if c, ok := p.Children[i]; ok {
		return c.Status
	}
	return ""
}

// Open reports the bit for cell i; out-of-range cells are not open.
func (p *Position) Open(i int) bool {
	return i >= 0 && i < len(p.BitArray) && p.BitArray[i]
}

// Summary is the one-line info panel text.
func (p *Position) Summary() string {
	return fmt.Sprintf("Position: %s  GCD: %d  Frobenius: %d  Genus: %d  Irreducible? %s  Status: %s",
		p.Name, p.GCD, p.Frobenius, p.Genus, p.Irreducible.Label(), p.Status)
}
