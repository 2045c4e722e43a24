package tabulate

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML mirrors writeJSON, building nodes directly so mapping keys keep
// column order.
func writeYAML(w io.Writer, t Table) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	keys := recordKeys(t)
	for _, row := range t.Rows {
		cells := padRow(row, len(keys))
		if t.Headers == nil {
			item := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, cell := range cells {
				item.Content = append(item.Content, yamlString(cell))
			}
			doc.Content = append(doc.Content, item)
			continue
		}
		item := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, key := range keys {
			item.Content = append(item.Content, yamlString(key), yamlString(cells[i]))
		}
		doc.Content = append(doc.Content, item)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
