package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bjaus/tabulate"
	"github.com/bjaus/tabulate/adapter"
	"github.com/bjaus/tabulate/internal/config"
)

// Input kinds accepted by --input.
const (
	inputCSV  = "csv"
	inputTSV  = "tsv"
	inputJSON = "json"
	inputYAML = "yaml"
	inputTOML = "toml"
	inputXML  = "xml"
)

var inputKinds = []string{inputCSV, inputTSV, inputJSON, inputYAML, inputTOML, inputXML}

type renderFlags struct {
	configPath string
	input      string
	noHeader   bool
	tomlTable  string

	// Flags that override config.Config.
	format      string
	style       string
	align       string
	headerAlign string
	columns     []string
	names       string
	rowLines    bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "tabulate [file]",
		Short: "Render tabular data as a bordered text table",
		Long: `tabulate reads CSV, TSV, JSON, YAML, TOML or XML and renders it as a
fixed-width text table. With no file, or with "-", it reads standard input.

Column widths are counted in code points. Wide characters such as CJK
ideographs occupy two terminal cells, so tables containing them will not
line up on screen; tabulate logs a warning when it sees one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return c.render(cmd, path, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tabulate/config.toml)")
	f.StringVarP(&flags.input, "input", "i", "", "input kind: "+strings.Join(inputKinds, ", ")+" (default from file extension, else csv)")
	f.BoolVar(&flags.noHeader, "no-header", false, "treat the first CSV/TSV record as data")
	f.StringVar(&flags.tomlTable, "toml-table", "", "array of tables to read from TOML input")
	f.StringVarP(&flags.format, "format", "f", "", "output format: "+joinFormats()+", or go-template=<template>")
	f.StringVarP(&flags.style, "style", "s", "", "table style: "+strings.Join(tabulate.StylingNames(), ", "))
	f.StringVarP(&flags.align, "align", "a", "", "alignment for every cell: left, right, center-left, center-right")
	f.StringVar(&flags.headerAlign, "header-align", "", "alignment for header cells")
	f.StringSliceVar(&flags.columns, "columns", nil, "per-column alignments, one per column")
	f.StringVar(&flags.names, "names", "", "header name transform: "+strings.Join(tabulate.NameTransformNames(), ", "))
	f.BoolVar(&flags.rowLines, "row-lines", false, "draw a separator between value rows")

	return cmd
}

func (c *CLI) render(cmd *cobra.Command, path string, flags renderFlags) error {
	cfg, err := c.loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	mergeFlags(cmd, cfg, flags)

	format, err := tabulate.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	names, err := tabulate.ParseNameTransform(cfg.Names)
	if err != nil {
		return err
	}
	align, err := buildAlignment(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styleName := cfg.Style
	if styleName == "" {
		styleName = defaultStyle(out)
	}
	style, err := tabulate.StylingByName(styleName)
	if err != nil {
		return err
	}
	if cfg.RowLines {
		style = style.WithRowSeparators()
	}

	table, err := c.readTable(cmd.InOrStdin(), path, flags, names)
	if err != nil {
		return err
	}
	c.Logger.Debug("read input",
		"path", path,
		"headers", table.Headers != nil,
		"rows", len(table.Rows),
		"columns", tabulate.ColumnCount(table.Headers, table.Rows),
	)

	if format == tabulate.TableFormat {
		for _, m := range tabulate.DisplayWidthMismatches(table.Headers, table.Rows) {
			c.Logger.Warn("cell display width differs from its length; columns may not line up",
				"header", m.Header, "row", m.Row, "column", m.Col, "runes", m.Runes, "cells", m.Display)
		}
	}

	return tabulate.Export(out, format, table, align, &style)
}

func (c *CLI) loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		c.Logger.Debug("loaded config", "path", path)
		return cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// mergeFlags copies every flag the user set over the config value.
func mergeFlags(cmd *cobra.Command, cfg *config.Config, flags renderFlags) {
	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = flags.format
	}
	if changed("style") {
		cfg.Style = flags.style
	}
	if changed("align") {
		cfg.Align = flags.align
	}
	if changed("header-align") {
		cfg.HeaderAlign = flags.headerAlign
	}
	if changed("columns") {
		cfg.Columns = flags.columns
	}
	if changed("names") {
		cfg.Names = flags.names
	}
	if changed("row-lines") {
		cfg.RowLines = flags.rowLines
	}
}

// buildAlignment picks the narrowest provider that expresses cfg.
func buildAlignment(cfg *config.Config) (*tabulate.AlignmentProvider, error) {
	value, err := tabulate.ParseCellAlignment(cfg.Align)
	if err != nil {
		return nil, err
	}
	var header *tabulate.CellAlignment
	if cfg.HeaderAlign != "" {
		h, err := tabulate.ParseCellAlignment(cfg.HeaderAlign)
		if err != nil {
			return nil, err
		}
		header = &h
	}

	if len(cfg.Columns) > 0 {
		cols := make([]tabulate.CellAlignment, len(cfg.Columns))
		for i, s := range cfg.Columns {
			a, err := tabulate.ParseCellAlignment(s)
			if err != nil {
				return nil, fmt.Errorf("column %d: %w", i, err)
			}
			cols[i] = a
		}
		if header != nil {
			return tabulate.UniformValuePerColumn(*header, cols)
		}
		return tabulate.UniformColumn(cols...)
	}
	if header != nil {
		return tabulate.UniformHeaderUniformValue(*header, value)
	}
	return tabulate.Uniform(value)
}

func (c *CLI) readTable(stdin io.Reader, path string, flags renderFlags, names tabulate.NameTransform) (tabulate.Table, error) {
	kind := flags.input
	if kind == "" {
		kind = kindFromPath(path)
	}

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return tabulate.Table{}, err
		}
		defer f.Close()
		r = f
	}

	opts := []adapter.Option{adapter.WithNames(names)}
	switch kind {
	case inputCSV, inputTSV:
		if kind == inputTSV {
			opts = append(opts, adapter.WithComma('\t'))
		}
		if flags.noHeader {
			opts = append(opts, adapter.WithoutHeader())
		}
		return adapter.CSV(r, opts...)
	case inputJSON:
		return adapter.JSON(r, opts...)
	case inputYAML:
		return adapter.YAML(r, opts...)
	case inputTOML:
		if flags.tomlTable != "" {
			opts = append(opts, adapter.WithTable(flags.tomlTable))
		}
		return adapter.TOML(r, opts...)
	case inputXML:
		return adapter.XML(r, opts...)
	}
	return tabulate.Table{}, fmt.Errorf("unknown input kind %q (want one of %s)", kind, strings.Join(inputKinds, ", "))
}

func kindFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return inputTSV
	case ".json":
		return inputJSON
	case ".yaml", ".yml":
		return inputYAML
	case ".toml":
		return inputTOML
	case ".xml":
		return inputXML
	}
	return inputCSV
}

// defaultStyle draws box glyphs only when writing to a terminal.
func defaultStyle(w io.Writer) string {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "unicode"
	}
	return "ascii"
}

func joinFormats() string {
	names := make([]string, 0, len(tabulate.Formats()))
	for _, f := range tabulate.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
