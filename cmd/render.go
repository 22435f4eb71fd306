package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robalobadob/sylver/apps/go-viz/internal/grid"
	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
)

// writeGrid prints the info line and the folded board as plain text.
// Open cells show their number, gaps a dot, and generators are starred.
func writeGrid(w io.Writer, p *position.Position) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, p.Summary())

	width := len(strconv.Itoa(p.Len()-1)) + 2
	for _, row := range grid.Layout(p) {
		var line strings.Builder
		for _, c := range row {
			fmt.Fprintf(&line, "%*s", width, cellText(c))
		}
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
	}
	return bw.Flush()
}

func cellText(c grid.Cell) string {
	switch {
	case c.Generator:
		return strconv.Itoa(c.Index) + "*"
	case c.Gap():
		return "."
	}
	return strconv.Itoa(c.Index)
}
