package tabulate

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ColumnCount returns the number of columns a table renders with: the
// longest of the header and every row.
func ColumnCount(headers []string, rows [][]string) int {
	n := len(headers)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// ColumnWidths returns the width of every column in code points. A column
// whose cells are all empty has width 0.
func ColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, ColumnCount(headers, rows))
	for i, h := range headers {
		if w := utf8.RuneCountInString(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func padRow(cells []string, numCols int) []string {
	padded := make([]string, numCols)
	copy(padded, cells)
	return padded
}

// Cell identifies one cell of a table. Row is meaningless for header cells.
type Cell struct {
	Header bool
	Row    int
	Col    int
	Text   string
}

// WidthMismatch describes a cell whose terminal display width differs from
// its length in code points.
type WidthMismatch struct {
	Cell
	Runes   int
	Display int
}

// DisplayWidthMismatches reports every cell that a terminal will draw wider
// or narrower than its code-point length, such as East Asian wide characters
// or combining marks. Column widths are measured in code points, so rows
// containing such cells will not line up on screen. The renderer does not
// correct for this; callers can use the report to warn.
func DisplayWidthMismatches(headers []string, rows [][]string) []WidthMismatch {
	var out []WidthMismatch
	check := func(c Cell) {
		runes := utf8.RuneCountInString(c.Text)
		if display := runewidth.StringWidth(c.Text); display != runes {
			out = append(out, WidthMismatch{Cell: c, Runes: runes, Display: display})
		}
	}
	for i, h := range headers {
		check(Cell{Header: true, Col: i, Text: h})
	}
	for r, row := range rows {
		for i, cell := range row {
			check(Cell{Row: r, Col: i, Text: cell})
		}
	}
	return out
}
