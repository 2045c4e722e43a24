package tabulate

import (
	"fmt"
	"io"
	"text/template"
)

// writeGoTemplate executes tmpl once per value row against a map from column
// key to cell, the same keys writeJSON uses. Each result is written on its
// own line.
func writeGoTemplate(w io.Writer, tmplStr string, t Table) error {
	tmpl, err := template.New("row").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	keys := recordKeys(t)
	for i, row := range t.Rows {
		cells := padRow(row, len(keys))
		record := make(map[string]string, len(keys))
		for j, key := range keys {
			record[key] = cells[j]
		}
		if err := tmpl.Execute(w, record); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
