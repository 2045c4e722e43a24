package adapter

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/tabulate"
)

type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}

// XML reads the children of the document's root element as rows:
//
//	<people>
//	  <person id="1"><name>Ann</name></person>
//	</people>
//
// Attributes and child elements of each row become columns, attributes
// first. An element with children of its own contributes its text content,
// space-joined.
func XML(r io.Reader, opts ...Option) (tabulate.Table, error) {
	o := newOptions(opts)
	var root xmlNode
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return tabulate.Table{}, fmt.Errorf("read xml: %w", err)
	}
	if len(root.Nodes) == 0 {
		return tabulate.Table{}, nil
	}

	records := make([]record, len(root.Nodes))
	for i, row := range root.Nodes {
		var rec record
		for _, attr := range row.Attrs {
			rec.keys = append(rec.keys, attr.Name.Local)
			rec.values = append(rec.values, attr.Value)
		}
		for _, child := range row.Nodes {
			rec.keys = append(rec.keys, child.XMLName.Local)
			rec.values = append(rec.values, innerText(child))
		}
		if len(row.Nodes) == 0 {
			if text := strings.TrimSpace(row.Text); text != "" {
				rec.keys = append(rec.keys, row.XMLName.Local)
				rec.values = append(rec.values, text)
			}
		}
		records[i] = rec
	}
	return keyedTable(records, o.names), nil
}

func innerText(n xmlNode) string {
	parts := []string{}
	if text := strings.TrimSpace(n.Text); text != "" {
		parts = append(parts, text)
	}
	for _, child := range n.Nodes {
		if text := innerText(child); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
