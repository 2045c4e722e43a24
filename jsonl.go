package tabulate

import (
	"encoding/json"
	"io"
)

// writeJSONL writes one JSON value per line, keyed the same way as
// writeJSON.
func writeJSONL(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if t.Headers == nil {
		for _, row := range t.Rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return nil
	}
	keys := recordKeys(t)
	for _, row := range t.Rows {
		if err := enc.Encode(jsonRecord{keys: keys, values: padRow(row, len(keys))}); err != nil {
			return err
		}
	}
	return nil
}
