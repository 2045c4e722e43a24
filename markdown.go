package tabulate

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, t Table, align *AlignmentProvider) error {
	if t.Headers == nil {
		return fmt.Errorf("%w: format %q requires a header row", ErrMissingHeader, Markdown)
	}
	numCols := ColumnCount(t.Headers, t.Rows)
	if err := align.check(numCols, len(t.Rows), true); err != nil {
		return err
	}

	header := escapeMarkdown(padRow(t.Headers, numCols))
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = escapeMarkdown(padRow(row, numCols))
	}

	// Minimum 3 for the alignment markers.
	widths := ColumnWidths(header, rows)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	aligns := make([]CellAlignment, numCols)
	for i := range aligns {
		a, err := align.Align(true, 0, i)
		if err != nil {
			return fmt.Errorf("align %s: %w", cellName(true, 0, i), err)
		}
		aligns[i] = a
	}

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenterBiasLeft, AlignCenterBiasRight:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []CellAlignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapeMarkdown(cells []string) []string {
	for i, cell := range cells {
		cells[i] = strings.ReplaceAll(cell, "|", `\|`)
	}
	return cells
}
