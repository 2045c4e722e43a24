package tabulate

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrConfiguration     = errors.New("invalid configuration")
	ErrUsage             = errors.New("invalid usage")
	ErrOutOfRange        = errors.New("index out of range")
	ErrMissingHeader     = errors.New("missing header row")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Tabulator renders tables with a fixed alignment provider and styling.
// It holds no per-call state and may be shared between goroutines.
type Tabulator struct {
	align *AlignmentProvider
	style TableStyling
}

// New returns a Tabulator. Both arguments are required.
func New(align *AlignmentProvider, style *TableStyling) (*Tabulator, error) {
	if align == nil || align.kind == 0 {
		return nil, fmt.Errorf("%w: alignment provider is not set", ErrUsage)
	}
	if style == nil {
		return nil, fmt.Errorf("%w: styling is not set", ErrUsage)
	}
	return &Tabulator{align: align, style: *style}, nil
}

// Tabulate renders headers and rows as a single newline-joined string with
// no trailing newline. It is shorthand for [New] followed by
// [Tabulator.Tabulate].
func Tabulate(headers []string, rows [][]string, align *AlignmentProvider, style *TableStyling) (string, error) {
	t, err := New(align, style)
	if err != nil {
		return "", err
	}
	return t.Tabulate(headers, rows)
}

// Tabulate renders headers and rows. A nil headers slice means the table has
// no header row; a non-nil empty slice is a header row with no cells. Rows
// may be ragged: every row, and the header, is padded with empty cells to
// the widest row. Nothing is ever truncated.
func (t *Tabulator) Tabulate(headers []string, rows [][]string) (string, error) {
	lines, err := t.lines(headers, rows)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Write renders the table to w followed by a newline.
func (t *Tabulator) Write(w io.Writer, headers []string, rows [][]string) error {
	s, err := t.Tabulate(headers, rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// Render reads the header and value rows from src and renders them.
func (t *Tabulator) Render(src Source) (string, error) {
	tbl, err := Collect(src)
	if err != nil {
		return "", err
	}
	return t.Tabulate(tbl.Headers, tbl.Rows)
}

func (t *Tabulator) lines(headers []string, rows [][]string) ([]string, error) {
	numCols := ColumnCount(headers, rows)
	if err := t.align.check(numCols, len(rows), headers != nil); err != nil {
		return nil, err
	}
	widths := ColumnWidths(headers, rows)
	s := t.style

	var lines []string
	emit := func(line string, ok bool) {
		if ok {
			lines = append(lines, line)
		}
	}

	emit(drawHLine(widths, s.TopLeft, s.Top, s.TopJoint, s.TopRight))

	if headers != nil {
		line, err := t.drawRow(padRow(headers, numCols), widths, true, 0)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
		if len(rows) > 0 {
			emit(drawHLine(widths, s.HeaderSeparatorLeft, s.HeaderSeparator, s.HeaderSeparatorJoint, s.HeaderSeparatorRight))
		}
	}

	for i, row := range rows {
		if i > 0 {
			emit(drawHLine(widths, s.RowSeparatorLeft, s.RowSeparator, s.RowSeparatorJoint, s.RowSeparatorRight))
		}
		line, err := t.drawRow(padRow(row, numCols), widths, false, i)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	emit(drawHLine(widths, s.BottomLeft, s.Bottom, s.BottomJoint, s.BottomRight))
	return lines, nil
}

// drawHLine builds a horizontal rule. It reports false when every glyph is
// empty and the line should be left out.
func drawHLine(widths []int, left, fill, mid, right string) (string, bool) {
	if left == "" && fill == "" && mid == "" && right == "" {
		return "", false
	}
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String(), true
}

func (t *Tabulator) drawRow(cells []string, widths []int, isHeader bool, row int) (string, error) {
	var sb strings.Builder
	sb.WriteString(t.style.Left)
	for i, width := range widths {
		align, err := t.align.Align(isHeader, row, i)
		if err != nil {
			return "", fmt.Errorf("align %s: %w", cellName(isHeader, row, i), err)
		}
		sb.WriteString(alignCell(cells[i], width, align))
		if i < len(widths)-1 {
			sb.WriteString(t.style.ColumnSeparator)
		}
	}
	sb.WriteString(t.style.Right)
	return sb.String(), nil
}

func cellName(isHeader bool, row, col int) string {
	if isHeader {
		return fmt.Sprintf("header column %d", col)
	}
	return fmt.Sprintf("row %d column %d", row, col)
}
