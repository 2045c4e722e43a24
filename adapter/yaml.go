package adapter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/tabulate"
	"gopkg.in/yaml.v3"
)

// YAML reads a top-level sequence from r, with the same shapes as [JSON]:
// a sequence of mappings or a sequence of sequences. Aliases are resolved
// and nested values are rendered in flow style.
func YAML(r io.Reader, opts ...Option) (tabulate.Table, error) {
	o := newOptions(opts)
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return tabulate.Table{}, nil
		}
		return tabulate.Table{}, fmt.Errorf("read yaml: %w", err)
	}
	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolve(root.Content[0])
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return tabulate.Table{}, nil
	}
	if root.Kind != yaml.SequenceNode {
		return tabulate.Table{}, fmt.Errorf("%w: want a sequence at line %d", ErrUnsupportedShape, root.Line)
	}
	if len(root.Content) == 0 {
		return tabulate.Table{}, nil
	}

	if resolve(root.Content[0]).Kind == yaml.SequenceNode {
		rows := make([][]string, len(root.Content))
		for i, item := range root.Content {
			item = resolve(item)
			if item.Kind != yaml.SequenceNode {
				return tabulate.Table{}, fmt.Errorf("%w: item %d at line %d is not a sequence", ErrUnsupportedShape, i, item.Line)
			}
			row := make([]string, len(item.Content))
			for j, v := range item.Content {
				cell, err := yamlCell(v)
				if err != nil {
					return tabulate.Table{}, err
				}
				row[j] = cell
			}
			rows[i] = row
		}
		return tabulate.Table{Rows: rows}, nil
	}

	records := make([]record, len(root.Content))
	for i, item := range root.Content {
		item = resolve(item)
		if item.Kind != yaml.MappingNode {
			return tabulate.Table{}, fmt.Errorf("%w: item %d at line %d is not a mapping", ErrUnsupportedShape, i, item.Line)
		}
		var rec record
		for j := 0; j+1 < len(item.Content); j += 2 {
			cell, err := yamlCell(item.Content[j+1])
			if err != nil {
				return tabulate.Table{}, err
			}
			rec.keys = append(rec.keys, resolve(item.Content[j]).Value)
			rec.values = append(rec.values, cell)
		}
		records[i] = rec
	}
	return keyedTable(records, o.names), nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func yamlCell(n *yaml.Node) (string, error) {
	n = resolve(n)
	if n.Kind == yaml.ScalarNode {
		if n.Tag == "!!null" {
			return "", nil
		}
		return n.Value, nil
	}
	flow := *n
	flow.Style = yaml.FlowStyle
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
