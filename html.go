package tabulate

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, t Table, align *AlignmentProvider) error {
	numCols := ColumnCount(t.Headers, t.Rows)
	if err := align.check(numCols, len(t.Rows), t.Headers != nil); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if t.Headers != nil {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if err := writeHTMLRow(w, "th", padRow(t.Headers, numCols), align, true, 0); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeHTMLRow(w, "td", padRow(row, numCols), align, false, i); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLRow(w io.Writer, tag string, cells []string, align *AlignmentProvider, isHeader bool, row int) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, cell := range cells {
		a, err := align.Align(isHeader, row, i)
		if err != nil {
			return fmt.Errorf("align %s: %w", cellName(isHeader, row, i), err)
		}
		if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, alignStyle(a), html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}

func alignStyle(a CellAlignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenterBiasLeft, AlignCenterBiasRight:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
