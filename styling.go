package tabulate

import (
	"fmt"
	"strings"
)

// TableStyling holds the glyphs that frame a table. Glyphs may be short
// strings; the presets put one space of padding inside each edge. Horizontal
// fill glyphs (Top, HeaderSeparator, RowSeparator, Bottom) are repeated once
// per code point of column width, so the corner and joint glyphs must match
// the code-point width of Left, ColumnSeparator and Right for lines to meet.
//
// An empty glyph draws nothing. A horizontal line whose four glyphs are all
// empty is omitted entirely, which is how [TableStyling.RowSeparator] stays
// off by default.
type TableStyling struct {
	TopLeft, Top, TopJoint, TopRight string

	Left, ColumnSeparator, Right string

	HeaderSeparatorLeft, HeaderSeparator, HeaderSeparatorJoint, HeaderSeparatorRight string

	RowSeparatorLeft, RowSeparator, RowSeparatorJoint, RowSeparatorRight string

	BottomLeft, Bottom, BottomJoint, BottomRight string
}

// PlainASCII uses hyphens, pipes and plus signs.
//
//	+------+-----+
//	| Name | Age |
//	+------+-----+
//	| Bob  | 25  |
//	+------+-----+
func PlainASCII() TableStyling {
	return boxStyling("-", "|", "+", "+", "+", "+", "+", "+", "+", "+", "+")
}

// UnicodeBox uses single-line box-drawing glyphs.
func UnicodeBox() TableStyling {
	return boxStyling("─", "│", "┌", "┬", "┐", "├", "┼", "┤", "└", "┴", "┘")
}

// Rounded is [UnicodeBox] with rounded outer corners.
func Rounded() TableStyling {
	return boxStyling("─", "│", "╭", "┬", "╮", "├", "┼", "┤", "╰", "┴", "╯")
}

// Heavy uses heavy box-drawing glyphs.
func Heavy() TableStyling {
	return boxStyling("━", "┃", "┏", "┳", "┓", "┣", "╋", "┫", "┗", "┻", "┛")
}

// Double uses double-line box-drawing glyphs.
func Double() TableStyling {
	return boxStyling("═", "║", "╔", "╦", "╗", "╠", "╬", "╣", "╚", "╩", "╝")
}

// Borderless separates columns with two spaces and underlines the header.
//
//	Name  Age
//	----  ---
//	Bob   25
func Borderless() TableStyling {
	return TableStyling{
		ColumnSeparator:      "  ",
		HeaderSeparator:      "-",
		HeaderSeparatorJoint: "  ",
	}
}

func boxStyling(h, vertical, topLeft, topTee, topRight, leftTee, cross, rightTee, bottomLeft, bottomTee, bottomRight string) TableStyling {
	return TableStyling{
		TopLeft:  topLeft + h,
		Top:      h,
		TopJoint: h + topTee + h,
		TopRight: h + topRight,

		Left:            vertical + " ",
		ColumnSeparator: " " + vertical + " ",
		Right:           " " + vertical,

		HeaderSeparatorLeft:  leftTee + h,
		HeaderSeparator:      h,
		HeaderSeparatorJoint: h + cross + h,
		HeaderSeparatorRight: h + rightTee,

		BottomLeft:  bottomLeft + h,
		Bottom:      h,
		BottomJoint: h + bottomTee + h,
		BottomRight: h + bottomRight,
	}
}

// With returns a copy of s after applying fn to it.
func (s TableStyling) With(fn func(*TableStyling)) TableStyling {
	fn(&s)
	return s
}

// WithRowSeparators returns a copy of s that draws the header separator
// between value rows as well.
func (s TableStyling) WithRowSeparators() TableStyling {
	s.RowSeparatorLeft = s.HeaderSeparatorLeft
	s.RowSeparator = s.HeaderSeparator
	s.RowSeparatorJoint = s.HeaderSeparatorJoint
	s.RowSeparatorRight = s.HeaderSeparatorRight
	return s
}

var stylings = map[string]func() TableStyling{
	"ascii":      PlainASCII,
	"unicode":    UnicodeBox,
	"rounded":    Rounded,
	"heavy":      Heavy,
	"double":     Double,
	"borderless": Borderless,
}

// StylingNames lists the preset names accepted by [StylingByName].
func StylingNames() []string {
	return []string{"ascii", "unicode", "rounded", "heavy", "double", "borderless"}
}

// StylingByName returns the preset called name.
func StylingByName(name string) (TableStyling, error) {
	if fn, ok := stylings[strings.ToLower(name)]; ok {
		return fn(), nil
	}
	return TableStyling{}, fmt.Errorf("%w: unknown styling %q", ErrConfiguration, name)
}
