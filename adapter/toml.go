package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/bjaus/tabulate"
)

// TOML reads an array of tables from r, one row per table:
//
//	[[server]]
//	name = "alpha"
//	port = 8080
//
// The array is chosen with [WithTable]; by default the first array of
// tables in the document is used. Columns follow the order keys appear in.
func TOML(r io.Reader, opts ...Option) (tabulate.Table, error) {
	o := newOptions(opts)
	var doc map[string]any
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return tabulate.Table{}, fmt.Errorf("read toml: %w", err)
	}

	name := o.tableName
	if name == "" {
		for _, key := range md.Keys() {
			if len(key) != 1 {
				continue
			}
			if _, ok := doc[key[0]].([]map[string]any); ok {
				name = key[0]
				break
			}
		}
		if name == "" {
			return tabulate.Table{}, fmt.Errorf("%w: no array of tables in document", ErrUnsupportedShape)
		}
	}

	items, ok := doc[name].([]map[string]any)
	if !ok {
		return tabulate.Table{}, fmt.Errorf("%w: %q is not an array of tables", ErrUnsupportedShape, name)
	}

	// Keys of the array's tables, in document order.
	var order []string
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == name && !seen[key[1]] {
			seen[key[1]] = true
			order = append(order, key[1])
		}
	}

	records := make([]record, len(items))
	for i, item := range items {
		var rec record
		for _, k := range order {
			if v, ok := item[k]; ok {
				cell, err := tomlCell(v)
				if err != nil {
					return tabulate.Table{}, fmt.Errorf("%s %d: %s: %w", name, i, k, err)
				}
				rec.keys = append(rec.keys, k)
				rec.values = append(rec.values, cell)
			}
		}
		// Keys the metadata did not report, such as inline tables.
		var extra []string
		for k := range item {
			if !seen[k] {
				extra = append(extra, k)
			}
		}
		sort.Strings(extra)
		for _, k := range extra {
			cell, err := tomlCell(item[k])
			if err != nil {
				return tabulate.Table{}, fmt.Errorf("%s %d: %s: %w", name, i, k, err)
			}
			rec.keys = append(rec.keys, k)
			rec.values = append(rec.values, cell)
		}
		records[i] = rec
	}
	return keyedTable(records, o.names), nil
}

// tomlCell renders scalars with fmt and nested tables and arrays as compact
// JSON, the same as the JSON adapter.
func tomlCell(v any) (string, error) {
	switch v.(type) {
	case map[string]any, []any, []map[string]any:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
	}
	return fmt.Sprint(v), nil
}
