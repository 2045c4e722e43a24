package adapter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bjaus/tabulate"
)

// CSV reads delimited records from r. The first record is the header row
// unless [WithoutHeader] is given. Records may have differing field counts.
func CSV(r io.Reader, opts ...Option) (tabulate.Table, error) {
	o := newOptions(opts)
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return tabulate.Table{}, fmt.Errorf("read csv: %w", err)
	}
	if o.noHeader {
		return tabulate.Table{Rows: records}, nil
	}
	if len(records) == 0 {
		return tabulate.Table{}, fmt.Errorf("%w: csv input is empty", tabulate.ErrMissingHeader)
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = o.names.Apply(h)
	}
	return tabulate.Table{Headers: headers, Rows: records[1:]}, nil
}
