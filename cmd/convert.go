package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/tiascan/internal/amounts"
	"github.com/Mohsinsiddi/tiascan/internal/ui"
)

var commaSymbol string

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Format amounts the way the explorer displays them",
}

var convertTiaCmd = &cobra.Command{
	Use:   "tia <utia>",
	Short: "Convert utia to TIA (1 TIA = 1,000,000 utia)",
	Long: `Convert a base-unit amount to TIA with two decimals.

Examples:
  tiascan convert tia 2000000      # → 2.00
  tiascan convert tia 1500000      # → 1.50`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tia := amounts.Tia(args[0])
		return ui.Render(cmd.OutOrStdout(), output, map[string]string{"utia": args[0], "tia": tia}, func() string {
			return ui.KeyValueBlock("Unit Conversion", [][2]string{
				{"Input", ui.Val(args[0] + " utia")},
				{"TIA", ui.Val(amounts.TiaComma(args[0]) + " TIA")},
			})
		})
	},
}

var convertCommaCmd = &cobra.Command{
	Use:   "comma <number>",
	Short: "Group the digits of a number",
	Long: `Group the integer digits of a number by three.
Whole numbers keep no decimals, others are rounded to two.

Examples:
  tiascan convert comma 1000           # → 1,000
  tiascan convert comma 1000.5         # → 1,000.50
  tiascan convert comma 1000000 -s " " # → 1 000 000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), amounts.CommaWith(args[0], commaSymbol))
		return err
	},
}

func init() {
	convertCommaCmd.Flags().StringVarP(&commaSymbol, "symbol", "s", ",", "thousands separator")
	convertCmd.AddCommand(convertTiaCmd, convertCommaCmd)
}
