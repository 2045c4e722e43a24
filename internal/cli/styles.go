package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/tabulate"
)

var sampleHeaders = []string{"Item", "Qty", "Price"}

var sampleRows = [][]string{
	{"Apples", "3", "1.20"},
	{"Bread", "1", "2.75"},
}

// stylesCommand prints a sample table in every preset.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Show every table style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			align, err := tabulate.UniformValuePerColumn(tabulate.AlignCenterBiasLeft,
				[]tabulate.CellAlignment{tabulate.AlignLeft, tabulate.AlignRight, tabulate.AlignRight})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, name := range tabulate.StylingNames() {
				style, err := tabulate.StylingByName(name)
				if err != nil {
					return err
				}
				s, err := tabulate.Tabulate(sampleHeaders, sampleRows, align, &style)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, name)
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}
}
