package tabulate

import "fmt"

// Source supplies tabular data. HeaderStrings returns nil when there is no
// header row; an empty non-nil slice is a header row with zero columns.
// ValueStrings may return no rows, and rows may differ in length.
type Source interface {
	HeaderStrings() ([]string, error)
	ValueStrings() ([][]string, error)
}

// Table is an in-memory [Source].
type Table struct {
	Headers []string
	Rows    [][]string
}

// HeaderStrings implements [Source].
func (t Table) HeaderStrings() ([]string, error) { return t.Headers, nil }

// ValueStrings implements [Source].
func (t Table) ValueStrings() ([][]string, error) { return t.Rows, nil }

// Collect reads both parts of src into a Table. Errors from src are returned
// wrapped, never replaced with an empty table.
func Collect(src Source) (Table, error) {
	if src == nil {
		return Table{}, fmt.Errorf("%w: source is nil", ErrUsage)
	}
	headers, err := src.HeaderStrings()
	if err != nil {
		return Table{}, fmt.Errorf("read headers: %w", err)
	}
	rows, err := src.ValueStrings()
	if err != nil {
		return Table{}, fmt.Errorf("read rows: %w", err)
	}
	return Table{Headers: headers, Rows: rows}, nil
}
