package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mohsinsiddi/tiascan/internal/amounts"
	"github.com/Mohsinsiddi/tiascan/internal/explorer"
	"github.com/Mohsinsiddi/tiascan/internal/price"
	"github.com/Mohsinsiddi/tiascan/internal/ui"
)

var headPrice bool

var headCmd = &cobra.Command{
	Use:   "head",
	Short: "Show the current chain head",
	Long: `Fetch the latest chain state: height, totals and supply.

Examples:
  tiascan head
  tiascan head --price
  tiascan head --network mocha -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := await(cmd, "head", client.Head)
		if err != nil {
			return err
		}
		head, decErr := explorer.As[explorer.Head](f)
		if decErr == nil {
			app.SetHead(&head)
		}
		return show(cmd, f, func() (string, error) {
			if decErr != nil {
				return "", decErr
			}
			pairs := ui.HeadPairs(&head)
			if headPrice {
				pairs = append(pairs, pricePairs(cmd.Context(), head.TotalSupply)...)
			}
			return ui.KeyValueBlock("◈ Chain Head  ·  "+cfg.Network, pairs), nil
		})
	},
}

// pricePairs adds the TIA price and market cap. A failed price lookup only
// degrades the view.
func pricePairs(ctx context.Context, supply string) [][2]string {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pf := price.NewFetcher(cfg.PriceCurrency)
	p, err := pf.TiaPrice(ctx)
	if err != nil {
		log.Warn("price lookup failed", zap.Error(err))
		return [][2]string{{"TIA price", "unavailable"}}
	}
	mcap := amounts.TiaDecimal(supply).Mul(p)
	cur := pf.Currency()
	return [][2]string{
		{"TIA price", p.StringFixed(2) + " " + cur},
		{"Market cap", amounts.Comma(mcap.StringFixed(0)) + " " + cur},
	}
}

func init() {
	headCmd.Flags().BoolVar(&headPrice, "price", false, "include TIA price from CoinGecko (table output)")
}
