package tabulate

import (
	"bytes"
	"encoding/json"
	"io"
)

// writeJSON writes a list of objects keyed by header when the table has a
// header row, else a list of lists.
func writeJSON(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if t.Headers == nil {
		rows := t.Rows
		if rows == nil {
			rows = [][]string{}
		}
		return enc.Encode(rows)
	}
	keys := recordKeys(t)
	records := make([]jsonRecord, len(t.Rows))
	for i, row := range t.Rows {
		records[i] = jsonRecord{keys: keys, values: padRow(row, len(keys))}
	}
	return enc.Encode(records)
}

// jsonRecord marshals as an object whose keys keep column order.
type jsonRecord struct {
	keys   []string
	values []string
}

func (r jsonRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, r.values[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString quotes s without HTML escaping, matching the list form.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
