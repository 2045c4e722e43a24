// Package tabulate lays out rows of strings as fixed-width text tables.
//
// A [Tabulator] combines two pieces of configuration: an
// [AlignmentProvider], which decides how each cell is padded, and a
// [TableStyling], which supplies the border glyphs. Both are fixed when the
// Tabulator is built, so one Tabulator can render any number of tables from
// any number of goroutines:
//
//	align := tabulate.Must(tabulate.UniformColumn(tabulate.AlignLeft, tabulate.AlignRight))
//	style := tabulate.PlainASCII()
//	t, err := tabulate.New(align, &style)
//	if err != nil { ... }
//	s, err := t.Tabulate([]string{"Name", "Age"}, [][]string{{"Bob", "25"}})
//
// produces
//
//	+------+-----+
//	| Name | Age |
//	+------+-----+
//	| Bob  |  25 |
//	+------+-----+
//
// # Layout
//
// The table has as many columns as its widest row, header included. Shorter
// rows are padded with empty cells and no cell is ever truncated. Column
// widths are counted in code points, not terminal cells: wide characters
// such as CJK ideographs make a column look too narrow on screen. Use
// [DisplayWidthMismatches] to find such cells.
//
// A nil header slice means the table has no header row. An empty, non-nil
// slice is a header row with zero cells.
//
// # Alignment
//
// Providers are built with one of the named constructors, from the
// coarsest, [Uniform], down to [Individual], which names the alignment of
// every cell. [AlignmentFunc] wraps arbitrary logic. Constructors validate
// their input; the column and row counts are checked against each table
// before anything is drawn.
//
// # Styling
//
// [PlainASCII], [UnicodeBox], [Rounded], [Heavy], [Double] and [Borderless]
// are ready to use. Any glyph may be replaced, and a horizontal line whose
// glyphs are all empty is left out:
//
//	style := tabulate.UnicodeBox().WithRowSeparators()
//
// # Export
//
// [Export] writes the same data as a bordered table or as Markdown, HTML,
// CSV, TSV, JSON, JSON Lines or YAML, or runs every row through a Go
// template built with [GoTemplate]. Package adapter reads tables from
// CSV, JSON, YAML, TOML, XML and Go structs.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrConfiguration]: a provider or styling that cannot describe the table
//   - [ErrUsage]: a required argument is missing
//   - [ErrOutOfRange]: a provider was asked about a cell it has no entry for
//   - [ErrMissingHeader]: the output format needs a header row
//   - [ErrUnsupportedFormat]: unknown format name
//   - [ErrInvalidTemplate]: invalid go-template syntax
package tabulate
