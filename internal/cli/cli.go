// Package cli implements the tabulate command-line interface.
//
// The root command reads a CSV, TSV, JSON, YAML, TOML or XML document and
// writes it as a bordered text table, or exports it as Markdown, HTML, CSV,
// TSV, JSON or YAML. Defaults come from a TOML config file (see
// internal/config) and are overridden by flags.
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log. --verbose (-v)
// enables debug output.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := c.renderCommand()
	root.Version = Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate("tabulate {{.Version}}\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
	}

	root.AddCommand(c.stylesCommand())
	return root
}
