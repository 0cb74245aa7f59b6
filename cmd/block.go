package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/tiascan/internal/amounts"
	"github.com/Mohsinsiddi/tiascan/internal/explorer"
	"github.com/Mohsinsiddi/tiascan/internal/ui"
)

var (
	blocksParams  explorer.Params
	blockNsParams explorer.Params
)

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "List the latest blocks",
	Long: `List the latest blocks with stats, newest first.

Examples:
  tiascan blocks
  tiascan blocks --limit 25 --offset 50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pageParams(blocksParams)
		f, err := await(cmd, "blocks", func(ctx context.Context) *explorer.Fetch {
			return client.Blocks(ctx, p)
		})
		if err != nil {
			return err
		}
		blocks, decErr := explorer.As[[]explorer.Block](f)
		if decErr == nil {
			app.SetLatestBlocks(blocks)
		}
		return show(cmd, f, func() (string, error) {
			if decErr != nil {
				return "", decErr
			}
			return ui.StyleTitle.Render("🧱 Latest Blocks  ·  "+cfg.Network) + "\n" + ui.BlocksTable(blocks), nil
		})
	},
}

var blockCmd = &cobra.Command{
	Use:   "block <height>",
	Short: "Show a block by height",
	Long: `Fetch one block with its stats.

Examples:
  tiascan block 1000000
  tiascan block namespaces 1000000
  tiascan block namespaces-count 1000000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		height, err := parseHeight(args[0])
		if err != nil {
			return err
		}
		f, err := await(cmd, fmt.Sprintf("block #%d", height), func(ctx context.Context) *explorer.Fetch {
			return client.BlockByHeight(ctx, height)
		})
		if err != nil {
			return err
		}
		return show(cmd, f, func() (string, error) {
			b, err := explorer.As[explorer.Block](f)
			if err != nil {
				return "", err
			}
			return ui.KeyValueBlock(fmt.Sprintf("🧱 Block #%s", amounts.CommaInt(b.Height)), blockPairs(&b)), nil
		})
	},
}

var blockNamespacesCmd = &cobra.Command{
	Use:   "namespaces <height>",
	Short: "List namespace messages included in a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		height, err := parseHeight(args[0])
		if err != nil {
			return err
		}
		p := pageParams(blockNsParams)
		f, err := await(cmd, fmt.Sprintf("namespaces of block #%d", height), func(ctx context.Context) *explorer.Fetch {
			return client.BlockNamespaces(ctx, height, p)
		})
		if err != nil {
			return err
		}
		return show(cmd, f, func() (string, error) {
			msgs, err := explorer.As[[]explorer.NamespaceMessage](f)
			if err != nil {
				return "", err
			}
			return namespaceMessagesTable(msgs), nil
		})
	},
}

var blockNamespacesCountCmd = &cobra.Command{
	Use:   "namespaces-count <height>",
	Short: "Count namespace messages in a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		height, err := parseHeight(args[0])
		if err != nil {
			return err
		}
		f, err := await(cmd, "namespace count", func(ctx context.Context) *explorer.Fetch {
			return client.BlockNamespacesCount(ctx, height)
		})
		if err != nil {
			return err
		}
		return showCount(cmd, f, fmt.Sprintf("Namespaces in block #%d", height))
	},
}

func blockPairs(b *explorer.Block) [][2]string {
	ts := "—"
	if !b.Time.IsZero() {
		ts = b.Time.UTC().Format("2006-01-02 15:04:05 UTC") + "  (" + ui.Age(b.Time) + ")"
	}
	pairs := [][2]string{
		{"Hash", ui.Dash(b.Hash)},
		{"Parent", ui.Dash(b.ParentHash)},
		{"Timestamp", ts},
		{"Proposer", ui.Dash(b.ProposerAddress)},
		{"Version", fmt.Sprintf("block %s · app %s", ui.Dash(b.VersionBlock), ui.Dash(b.VersionApp))},
		{"Messages", ui.Dash(strings.Join(b.MessageTypes, ", "))},
	}
	if s := b.Stats; s != nil {
		pairs = append(pairs,
			[2]string{"Transactions", amounts.CommaInt(uint64(max(s.TxCount, 0)))},
			[2]string{"Events", amounts.CommaInt(uint64(max(s.EventsCount, 0)))},
			[2]string{"Blobs size", ui.FormatBytes(s.BlobsSize)},
			[2]string{"Block size", ui.FormatBytes(s.BytesInBlock)},
			[2]string{"Block time", (time.Duration(s.BlockTime) * time.Millisecond).String()},
			[2]string{"Fee", amounts.Tia(s.Fee) + " TIA"},
		)
	}
	return pairs
}

func init() {
	blocksCmd.Flags().IntVar(&blocksParams.Limit, "limit", 0, "number of blocks (default: config page_limit)")
	blocksCmd.Flags().IntVar(&blocksParams.Offset, "offset", 0, "skip this many blocks")

	blockNamespacesCmd.Flags().IntVar(&blockNsParams.Limit, "limit", 0, "number of entries (default: config page_limit)")
	blockNamespacesCmd.Flags().IntVar(&blockNsParams.Offset, "offset", 0, "skip this many entries")
	blockNamespacesCmd.Flags().StringVar(&blockNsParams.Sort, "sort", "", "asc or desc")

	blockCmd.AddCommand(blockNamespacesCmd, blockNamespacesCountCmd)
}
