package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
)

func bits(n int, open func(i int) bool) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = open(i)
	}
	return out
}

func TestLayout_TenByTen(t *testing.T) {
	p := &position.Position{
		BitArray:     bits(100, func(i int) bool { return i%9 == 0 || i%11 == 0 }),
		Multiplicity: 10,
		Generators:   []int{9, 11},
	}
	rows := Layout(p)
	require.Len(t, rows, 10)
	for _, r := range rows {
		assert.Len(t, r, 10)
	}

	assert.True(t, rows[9][0].Generator, "cell 9 is row 9 col 0")
	assert.Equal(t, 9, rows[9][0].Index)
	assert.True(t, rows[1][1].Generator, "cell 11 is row 1 col 1")
	assert.Equal(t, 11, rows[1][1].Index)
	assert.False(t, rows[3][2].Generator)
}

func TestLayout_EveryIndexOnceInResidueRow(t *testing.T) {
	for _, tc := range []struct{ n, r int }{{100, 10}, {103, 10}, {7, 3}, {5, 9}, {12, 1}} {
		p := &position.Position{BitArray: make([]bool, tc.n), Multiplicity: tc.r}
		rows := Layout(p)
		require.Len(t, rows, tc.r)

		seen := make(map[int]int)
		for ri, row := range rows {
			prev := -1
			for _, c := range row {
				assert.Equal(t, c.Index%tc.r, ri)
				assert.Greater(t, c.Index, prev, "ascending within a row")
				prev = c.Index
				seen[c.Index]++
			}
		}
		assert.Len(t, seen, tc.n)
		for i, count := range seen {
			assert.Equal(t, 1, count, "index %d", i)
		}
	}
}

func TestLayout_ShortTrailingRows(t *testing.T) {
	p := &position.Position{BitArray: make([]bool, 23), Multiplicity: 10}
	rows := Layout(p)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[2], 3)
	assert.Len(t, rows[3], 2)
	assert.Len(t, rows[9], 2)
}

func TestLayout_ClickableIffOpen(t *testing.T) {
	p := &position.Position{
		BitArray:     []bool{true, false, false, true, true, false},
		Multiplicity: 2,
	}
	for _, row := range Layout(p) {
		for _, c := range row {
			assert.Equal(t, p.BitArray[c.Index], c.Clickable(), "cell %d", c.Index)
			assert.Equal(t, !p.BitArray[c.Index], c.Gap())
		}
	}
}

func TestLayout_ChildStatus(t *testing.T) {
	p := &position.Position{
		BitArray:     []bool{true, false, false},
		Multiplicity: 1,
		Children: map[int]position.Child{
			1: {Status: position.StatusP},
			2: {Status: position.StatusN},
		},
	}
	row := Layout(p)[0]
	assert.Equal(t, position.Status(""), row[0].ChildStatus)
	assert.Equal(t, position.StatusP, row[1].ChildStatus)
	assert.Equal(t, position.StatusN, row[2].ChildStatus)
}

func TestLayout_DegenerateInputs(t *testing.T) {
	assert.Nil(t, Layout(nil))

	rows := Layout(&position.Position{BitArray: make([]bool, 4), Multiplicity: 0})
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 4)
}

func TestLocateAndAt(t *testing.T) {
	p := &position.Position{BitArray: make([]bool, 30), Multiplicity: 9}
	rows := Layout(p)
	for i := 0; i < 30; i++ {
		r, c := Locate(i, 9)
		assert.Equal(t, i, At(rows, r, c))
	}
	assert.Equal(t, -1, At(rows, 8, 10))
	assert.Equal(t, -1, At(rows, 9, 0))
}
