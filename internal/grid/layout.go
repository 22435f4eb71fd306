// internal/grid/layout.go
//
// Folds a position's flat bit-array into display rows.
//
// Layout rule: with R = multiplicity rows, cell i lives in row i mod R and
// rows keep increasing index order. Column j of every row therefore holds
// the numbers jR..jR+R-1, so a generator can be found by its residue.
// When R does not divide the length the trailing rows are one cell short.

package grid

import "github.com/robalobadob/sylver/apps/go-viz/internal/position"

// Cell describes one board number.
type Cell struct {
	Index       int             `json:"index"`
	Open        bool            `json:"open"`
	Generator   bool            `json:"generator"`
	ChildStatus position.Status `json:"childStatus,omitempty"`
}

// Gap reports whether the cell is a gap (bit false).
func (c Cell) Gap() bool { return !c.Open }

// Clickable is true exactly for open cells; gaps never take a click.
func (c Cell) Clickable() bool { return c.Open }

// Row is one display row in ascending index order.
type Row []Cell

// Layout builds the rows for p. A multiplicity below 1 is treated as a
// single row. A nil position yields no rows.
func Layout(p *position.Position) []Row {
	if p == nil {
		return nil
	}
	n := p.Len()
	r := p.Multiplicity
	if r < 1 {
		r = 1
	}

	gens := make(map[int]struct{}, len(p.Generators))
	for _, g := range p.Generators {
		gens[g] = struct{}{}
	}

	rows := make([]Row, r)
	for i := range rows {
		rows[i] = make(Row, 0, (n+r-1)/r)
	}
	for i, bit := range p.BitArray {
		_, isGen := gens[i]
		rows[i%r] = append(rows[i%r], Cell{
			Index:       i,
			Open:        bit,
			Generator:   isGen,
			ChildStatus: p.ChildStatus(i),
		})
	}
	return rows
}

// Locate returns the row and column of cell i under multiplicity r.
func Locate(i, r int) (row, col int) {
	if r < 1 {
		r = 1
	}
	return i % r, i / r
}

// At maps a row/column back to a cell index, or -1 when the slot is empty.
func At(rows []Row, row, col int) int {
	if row < 0 || row >= len(rows) || col < 0 || col >= len(rows[row]) {
		return -1
	}
	return rows[row][col].Index
}
