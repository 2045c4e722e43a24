package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/bjaus/tabulate"
)

// JSON reads a top-level array from r. An array of objects yields one column
// per key; an array of arrays yields header-less rows. Nested values are
// rendered as compact JSON and null as an empty cell.
func JSON(r io.Reader, opts ...Option) (tabulate.Table, error) {
	o := newOptions(opts)
	var items []json.RawMessage
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return tabulate.Table{}, fmt.Errorf("read json: %w", err)
	}
	if len(items) == 0 {
		return tabulate.Table{}, nil
	}

	if first := bytes.TrimSpace(items[0]); len(first) > 0 && first[0] == '[' {
		rows := make([][]string, len(items))
		for i, raw := range items {
			row, err := jsonArray(raw)
			if err != nil {
				return tabulate.Table{}, fmt.Errorf("item %d: %w", i, err)
			}
			rows[i] = row
		}
		return tabulate.Table{Rows: rows}, nil
	}

	records := make([]record, len(items))
	for i, raw := range items {
		rec, err := jsonObject(raw)
		if err != nil {
			return tabulate.Table{}, fmt.Errorf("item %d: %w", i, err)
		}
		records[i] = rec
	}
	return keyedTable(records, o.names), nil
}

func jsonArray(raw json.RawMessage) ([]string, error) {
	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: want an array: %v", ErrUnsupportedShape, err)
	}
	row := make([]string, len(values))
	for i, v := range values {
		s, err := jsonCell(v)
		if err != nil {
			return nil, err
		}
		row[i] = s
	}
	return row, nil
}

// jsonObject walks the object's tokens so keys keep document order.
func jsonObject(raw json.RawMessage) (record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return record{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return record{}, fmt.Errorf("%w: want an object, got %s", ErrUnsupportedShape, raw)
	}
	var rec record
	seen := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return record{}, err
		}
		key, _ := keyTok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return record{}, err
		}
		cell, err := jsonCell(value)
		if err != nil {
			return record{}, err
		}
		// Later duplicates win, as with encoding/json.
		if i, ok := seen[key]; ok {
			rec.values[i] = cell
			continue
		}
		seen[key] = len(rec.keys)
		rec.keys = append(rec.keys, key)
		rec.values = append(rec.values, cell)
	}
	return rec, nil
}

func jsonCell(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", nil
	}
	switch raw[0] {
	case 'n':
		return "", nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return "", err
		}
		return buf.String(), nil
	case 't', 'f':
		b, err := strconv.ParseBool(string(raw))
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	default:
		// Numbers keep their literal spelling.
		return string(raw), nil
	}
}
