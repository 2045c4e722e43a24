package tabulate

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Format is an export format for a [Table].
type Format string

const (
	TableFormat Format = "table"
	Markdown    Format = "markdown"
	HTML        Format = "html"
	CSV         Format = "csv"
	TSV         Format = "tsv"
	JSON        Format = "json"
	JSONL       Format = "jsonl"
	YAML        Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{TableFormat, Markdown, HTML, CSV, TSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each value row through a Go
// text/template. The row is a map from column key to cell text, keyed as in
// the JSON format, so {{.Name}} reads the Name column.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Export writes t to w in format f. The table format renders through a
// [Tabulator]; Markdown and HTML take their alignment from align and ignore
// style; the data formats ignore both.
func Export(w io.Writer, f Format, t Table, align *AlignmentProvider, style *TableStyling) error {
	switch f {
	case TableFormat:
		tab, err := New(align, style)
		if err != nil {
			return err
		}
		return tab.Write(w, t.Headers, t.Rows)
	case Markdown:
		return writeMarkdown(w, t, align)
	case HTML:
		return writeHTML(w, t, align)
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal exports t and returns the bytes.
func Marshal(f Format, t Table, align *AlignmentProvider, style *TableStyling) ([]byte, error) {
	var buf bytes.Buffer
	if err := Export(&buf, f, t, align, style); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// recordKeys names every column for the keyed formats. Columns past the end
// of the header row are called column<N>, counting from 1. A repeated name
// gets a _2, _3, ... suffix so no column is lost.
func recordKeys(t Table) []string {
	numCols := ColumnCount(t.Headers, t.Rows)
	keys := make([]string, numCols)
	seen := make(map[string]bool, numCols)
	for i := range keys {
		name := fmt.Sprintf("column%d", i+1)
		if i < len(t.Headers) {
			name = t.Headers[i]
		}
		key := name
		for n := 2; seen[key]; n++ {
			key = fmt.Sprintf("%s_%d", name, n)
		}
		seen[key] = true
		keys[i] = key
	}
	return keys
}
