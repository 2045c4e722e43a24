package tabulate

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, t Table) error {
	if t.Headers != nil {
		if err := writeTSVRow(w, t.Headers); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

var tsvEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`, "\r", `\r`)

func writeTSVRow(w io.Writer, cells []string) error {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = tsvEscaper.Replace(cell)
	}
	_, err := fmt.Fprintln(w, strings.Join(escaped, "\t"))
	return err
}
