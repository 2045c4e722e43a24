package tabulate

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if t.Headers != nil {
		if err := cw.Write(t.Headers); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
