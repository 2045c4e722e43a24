// Package adapter reads tabular data from common encodings into a
// [tabulate.Table].
//
// Every adapter does all of its work when it is called: the input is parsed,
// column names are discovered and transformed, and the result is an
// immutable table. Nothing is computed lazily, so the results can be shared
// between goroutines.
//
// Keyed inputs (JSON and YAML objects, TOML tables, XML elements) produce one
// column per distinct key, in the order keys are first seen. A record
// missing a key gets an empty cell.
package adapter

import (
	"errors"

	"github.com/bjaus/tabulate"
)

// ErrUnsupportedShape is returned when the input parses but is not a list of
// records.
var ErrUnsupportedShape = errors.New("unsupported input shape")

type options struct {
	names     tabulate.NameTransform
	noHeader  bool
	comma     rune
	tableName string
}

// Option configures an adapter.
type Option func(*options)

// WithNames transforms every discovered column name. Default:
// [tabulate.PassThrough].
func WithNames(t tabulate.NameTransform) Option {
	return func(o *options) { o.names = t }
}

// WithoutHeader tells [CSV] that the first record is data.
func WithoutHeader() Option {
	return func(o *options) { o.noHeader = true }
}

// WithComma sets the [CSV] field delimiter. Default: comma.
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithTable names the array of tables [TOML] reads. Default: the first
// array of tables in the document.
func WithTable(name string) Option {
	return func(o *options) { o.tableName = name }
}

func newOptions(opts []Option) options {
	o := options{names: tabulate.PassThrough, comma: ','}
	for _, opt := range opts {
		opt(&o)
	}
	if o.names == nil {
		o.names = tabulate.PassThrough
	}
	return o
}

// columnSet tracks column keys in first-seen order.
type columnSet struct {
	keys  []string
	index map[string]int
}

func newColumnSet() *columnSet {
	return &columnSet{index: make(map[string]int)}
}

func (c *columnSet) add(key string) int {
	if i, ok := c.index[key]; ok {
		return i
	}
	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	return len(c.keys) - 1
}

func (c *columnSet) headers(t tabulate.NameTransform) []string {
	out := make([]string, len(c.keys))
	for i, k := range c.keys {
		out[i] = t.Apply(k)
	}
	return out
}

// record is one keyed row before the final column set is known.
type record struct {
	keys   []string
	values []string
}

// keyedTable lays records out against the union of their keys.
func keyedTable(records []record, names tabulate.NameTransform) tabulate.Table {
	cols := newColumnSet()
	for _, rec := range records {
		for _, k := range rec.keys {
			cols.add(k)
		}
	}
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(cols.keys))
		for j, k := range rec.keys {
			row[cols.index[k]] = rec.values[j]
		}
		rows[i] = row
	}
	return tabulate.Table{Headers: cols.headers(names), Rows: rows}
}
