package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/tiascan/internal/explorer"
	"github.com/Mohsinsiddi/tiascan/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search blocks, transactions, addresses and namespaces",
	Long: `Search the explorer by height, hash, address or namespace id.

Examples:
  tiascan search 1000000
  tiascan search celestia1qnk2n4nlkpw9xfqntladh74w6ujtulwnmxnh3k`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		f, err := await(cmd, "search results", func(ctx context.Context) *explorer.Fetch {
			return client.Search(ctx, query)
		})
		if err != nil {
			return err
		}
		return show(cmd, f, func() (string, error) {
			hits, err := explorer.DecodeSearch(f)
			if err != nil {
				return "", err
			}
			if len(hits) == 0 {
				return ui.Warn(fmt.Sprintf("Nothing found for %q", query)), nil
			}
			tbl := ui.NewTable(
				ui.Column{Title: "TYPE", Width: 10},
				ui.Column{Title: "RESULT", Width: 64},
			)
			for _, h := range hits {
				tbl.AddRow(h.Type, strings.TrimSpace(string(h.Result)))
			}
			return tbl.Render(), nil
		})
	},
}
