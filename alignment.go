package tabulate

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// CellAlignment controls how a cell is padded to its column width.
type CellAlignment int

const (
	AlignLeft            CellAlignment = iota // content, then spaces
	AlignRight                                // spaces, then content
	AlignCenterBiasLeft                       // odd slack goes on the right
	AlignCenterBiasRight                      // odd slack goes on the left
)

var alignmentNames = map[CellAlignment]string{
	AlignLeft:            "left",
	AlignRight:           "right",
	AlignCenterBiasLeft:  "center-left",
	AlignCenterBiasRight: "center-right",
}

// String returns the alignment name as accepted by [ParseCellAlignment].
func (a CellAlignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("CellAlignment(%d)", int(a))
}

// Valid reports whether a is one of the four defined alignments.
func (a CellAlignment) Valid() bool {
	return a >= AlignLeft && a <= AlignCenterBiasRight
}

// ParseCellAlignment parses "left", "right", "center-left", "center-right".
// "center" is accepted as "center-left".
func ParseCellAlignment(s string) (CellAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "center-left":
		return AlignCenterBiasLeft, nil
	case "center-right":
		return AlignCenterBiasRight, nil
	}
	return 0, fmt.Errorf("%w: unknown alignment %q", ErrConfiguration, s)
}

// alignCell pads s with spaces to width code points. Cells already at or
// over width are returned as is.
func alignCell(s string, width int, align CellAlignment) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenterBiasLeft:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	case AlignCenterBiasRight:
		right := pad / 2
		return strings.Repeat(" ", pad-right) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

type providerKind int

const (
	kindUniform providerKind = iota + 1
	kindHeaderValue
	kindColumn
	kindHeaderPerColumn
	kindValuePerColumn
	kindIndividual
	kindFunc
)

// AlignmentProvider resolves the alignment of every cell from its position.
// Build one with a constructor such as [Uniform] or [UniformColumn]; the zero
// value is not usable. Providers are immutable and safe for concurrent use.
type AlignmentProvider struct {
	kind providerKind

	header CellAlignment
	value  CellAlignment

	headerColumns []CellAlignment
	valueColumns  []CellAlignment

	// Individual: nil headerCells means no header row was configured.
	headerCells []CellAlignment
	valueCells  [][]CellAlignment
	cols        int

	fn func(isHeader bool, row, col int) CellAlignment
}

// Uniform aligns every cell, header and values alike, with a.
func Uniform(a CellAlignment) (*AlignmentProvider, error) {
	if err := validateAlignments("uniform", a); err != nil {
		return nil, err
	}
	return &AlignmentProvider{kind: kindUniform, header: a, value: a}, nil
}

// UniformHeaderUniformValue aligns header cells with header and value cells
// with value.
func UniformHeaderUniformValue(header, value CellAlignment) (*AlignmentProvider, error) {
	if err := validateAlignments("header", header); err != nil {
		return nil, err
	}
	if err := validateAlignments("value", value); err != nil {
		return nil, err
	}
	return &AlignmentProvider{kind: kindHeaderValue, header: header, value: value}, nil
}

// UniformColumn assigns one alignment per column, shared by the header and
// value rows. The table rendered with it must have exactly len(aligns)
// columns.
func UniformColumn(aligns ...CellAlignment) (*AlignmentProvider, error) {
	if err := validateAlignments("column", aligns...); err != nil {
		return nil, err
	}
	cols := slices.Clone(aligns)
	return &AlignmentProvider{kind: kindColumn, headerColumns: cols, valueColumns: cols}, nil
}

// UniformHeaderPerColumn aligns header cells per column and every value cell
// with value.
func UniformHeaderPerColumn(headerAligns []CellAlignment, value CellAlignment) (*AlignmentProvider, error) {
	if err := validateAlignments("header column", headerAligns...); err != nil {
		return nil, err
	}
	if err := validateAlignments("value", value); err != nil {
		return nil, err
	}
	return &AlignmentProvider{kind: kindHeaderPerColumn, headerColumns: slices.Clone(headerAligns), value: value}, nil
}

// UniformValuePerColumn aligns every header cell with header and value
// cells per column.
func UniformValuePerColumn(header CellAlignment, valueAligns []CellAlignment) (*AlignmentProvider, error) {
	if err := validateAlignments("header", header); err != nil {
		return nil, err
	}
	if err := validateAlignments("value column", valueAligns...); err != nil {
		return nil, err
	}
	return &AlignmentProvider{kind: kindValuePerColumn, header: header, valueColumns: slices.Clone(valueAligns)}, nil
}

// Individual gives every cell an explicit alignment. header covers the header
// row (nil for tables without one) and values holds one slice per value row.
// Every row must have the same number of entries; a missing entry is an
// error, never a silent default.
func Individual(header []CellAlignment, values [][]CellAlignment) (*AlignmentProvider, error) {
	cols := len(header)
	if header == nil && len(values) > 0 {
		cols = len(values[0])
	}
	if err := validateAlignments("header cell", header...); err != nil {
		return nil, err
	}
	cells := make([][]CellAlignment, len(values))
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d alignments, want %d", ErrConfiguration, i, len(row), cols)
		}
		if err := validateAlignments(fmt.Sprintf("row %d", i), row...); err != nil {
			return nil, err
		}
		cells[i] = slices.Clone(row)
	}
	return &AlignmentProvider{kind: kindIndividual, headerCells: slices.Clone(header), valueCells: cells, cols: cols}, nil
}

// AlignmentFunc wraps a caller-supplied function. fn must be deterministic
// and return a valid alignment for every position it is asked about.
func AlignmentFunc(fn func(isHeader bool, row, col int) CellAlignment) (*AlignmentProvider, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: alignment func is nil", ErrConfiguration)
	}
	return &AlignmentProvider{kind: kindFunc, fn: fn}, nil
}

// Must returns p, panicking if err is non-nil. It is intended for
// package-level variables and tests.
func Must(p *AlignmentProvider, err error) *AlignmentProvider {
	if err != nil {
		panic(err)
	}
	return p
}

// Align returns the alignment of the cell at (row, col). row is ignored for
// header cells except by [Individual] providers, which have a single header
// row. Positions outside what the provider was configured for are reported
// as [ErrOutOfRange].
func (p *AlignmentProvider) Align(isHeader bool, row, col int) (CellAlignment, error) {
	if p == nil || p.kind == 0 {
		return 0, fmt.Errorf("%w: alignment provider is not set", ErrUsage)
	}
	if col < 0 {
		return 0, fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}
	if !isHeader && row < 0 {
		return 0, fmt.Errorf("%w: row %d", ErrOutOfRange, row)
	}

	switch p.kind {
	case kindUniform, kindHeaderValue:
		if isHeader {
			return p.header, nil
		}
		return p.value, nil
	case kindColumn:
		return columnAlign(p.valueColumns, col)
	case kindHeaderPerColumn:
		if isHeader {
			return columnAlign(p.headerColumns, col)
		}
		return p.value, nil
	case kindValuePerColumn:
		if isHeader {
			return p.header, nil
		}
		return columnAlign(p.valueColumns, col)
	case kindIndividual:
		if isHeader {
			if p.headerCells == nil {
				return 0, fmt.Errorf("%w: no header alignments configured", ErrOutOfRange)
			}
			return columnAlign(p.headerCells, col)
		}
		if row >= len(p.valueCells) {
			return 0, fmt.Errorf("%w: row %d outside %d configured rows", ErrOutOfRange, row, len(p.valueCells))
		}
		return columnAlign(p.valueCells[row], col)
	case kindFunc:
		a := p.fn(isHeader, row, col)
		if !a.Valid() {
			return 0, fmt.Errorf("%w: alignment func returned %v for row %d, column %d", ErrConfiguration, a, row, col)
		}
		return a, nil
	}
	return 0, fmt.Errorf("%w: unknown provider kind %d", ErrUsage, p.kind)
}

// check verifies the provider covers a table with the given shape before
// any rendering happens.
func (p *AlignmentProvider) check(cols, rows int, hasHeader bool) error {
	if p == nil || p.kind == 0 {
		return fmt.Errorf("%w: alignment provider is not set", ErrUsage)
	}
	switch p.kind {
	case kindColumn, kindValuePerColumn:
		if len(p.valueColumns) != cols {
			return fmt.Errorf("%w: %d column alignments for a table with %d columns", ErrConfiguration, len(p.valueColumns), cols)
		}
	case kindHeaderPerColumn:
		if len(p.headerColumns) != cols {
			return fmt.Errorf("%w: %d header column alignments for a table with %d columns", ErrConfiguration, len(p.headerColumns), cols)
		}
	case kindIndividual:
		if hasHeader && p.headerCells == nil {
			return fmt.Errorf("%w: table has a header row but no header alignments were given", ErrConfiguration)
		}
		if (hasHeader || rows > 0) && p.cols != cols {
			return fmt.Errorf("%w: %d alignments per row for a table with %d columns", ErrConfiguration, p.cols, cols)
		}
		if len(p.valueCells) != rows {
			return fmt.Errorf("%w: %d alignment rows for a table with %d value rows", ErrConfiguration, len(p.valueCells), rows)
		}
	}
	return nil
}

func columnAlign(aligns []CellAlignment, col int) (CellAlignment, error) {
	if col >= len(aligns) {
		return 0, fmt.Errorf("%w: column %d outside %d configured columns", ErrOutOfRange, col, len(aligns))
	}
	return aligns[col], nil
}

func validateAlignments(what string, aligns ...CellAlignment) error {
	for i, a := range aligns {
		if !a.Valid() {
			return fmt.Errorf("%w: %s alignment %d is %v", ErrConfiguration, what, i, a)
		}
	}
	return nil
}
