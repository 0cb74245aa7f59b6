package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/tiascan/internal/amounts"
	"github.com/Mohsinsiddi/tiascan/internal/explorer"
	"github.com/Mohsinsiddi/tiascan/internal/ui"
)

var nsParams explorer.Params

var namespacesCmd = &cobra.Command{
	Use:   "namespaces",
	Short: "List namespaces",
	Long: `List namespaces, optionally filtered by message type.

Examples:
  tiascan namespaces --limit 20 --sort desc
  tiascan namespaces --msg-type MsgPayForBlobs
  tiascan namespaces count
  tiascan namespaces active`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pageParams(nsParams)
		f, err := await(cmd, "namespaces", func(ctx context.Context) *explorer.Fetch {
			return client.Namespaces(ctx, p)
		})
		if err != nil {
			return err
		}
		return showNamespaces(cmd, f)
	},
}

var namespacesCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count all namespaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := await(cmd, "namespace count", client.NamespacesCount)
		if err != nil {
			return err
		}
		return showCount(cmd, f, "Namespaces")
	},
}

var namespacesActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "List recently active namespaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := await(cmd, "active namespaces", client.ActiveNamespaces)
		if err != nil {
			return err
		}
		return showNamespaces(cmd, f)
	},
}

var namespaceCmd = &cobra.Command{
	Use:   "namespace <hash> <height> <commitment>",
	Short: "Show the blob of a namespace at a height",
	Long: `Fetch a blob by namespace hash, height and share commitment.
Hash and commitment are base64 as shown by the explorer.

Example:
  tiascan namespace AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAQnJ1bQ== 1000000 3q2+7w==`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		height, err := parseHeight(args[1])
		if err != nil {
			return err
		}
		ref := explorer.NamespaceRef{Hash: args[0], Height: height, Commitment: args[2]}
		f, err := await(cmd, "blob", func(ctx context.Context) *explorer.Fetch {
			return client.NamespaceByHash(ctx, ref)
		})
		if err != nil {
			return err
		}
		return show(cmd, f, func() (string, error) {
			blob, err := explorer.As[explorer.Blob](f)
			if err != nil {
				return "", err
			}
			return ui.KeyValueBlock("◈ Blob  ·  height "+amounts.CommaInt(uint64(height)), blobPairs(&blob)), nil
		})
	},
}

func showNamespaces(cmd *cobra.Command, f *explorer.Fetch) error {
	return show(cmd, f, func() (string, error) {
		list, err := explorer.As[[]explorer.Namespace](f)
		if err != nil {
			return "", err
		}
		return namespacesTable(list), nil
	})
}

func namespacesTable(list []explorer.Namespace) string {
	tbl := ui.NewTable(
		ui.Column{Title: "NAMESPACE", Width: 22},
		ui.Column{Title: "VER", Width: 3, Right: true},
		ui.Column{Title: "SIZE", Width: 10, Right: true},
		ui.Column{Title: "PFBS", Width: 8, Right: true},
		ui.Column{Title: "LAST HEIGHT", Width: 11, Right: true},
		ui.Column{Title: "LAST MESSAGE", Width: 12},
	)
	for _, ns := range list {
		tbl.AddRow(
			ui.TruncateHash(ns.NamespaceID),
			strconv.Itoa(ns.Version),
			ui.FormatBytes(ns.Size),
			amounts.CommaInt(uint64(max(ns.PfbCount, 0))),
			amounts.CommaInt(ns.LastHeight),
			ui.Age(ns.LastMessageTime),
		)
	}
	return tbl.Render() + ui.Meta(fmt.Sprintf("  %d namespace(s)", len(list)))
}

func namespaceMessagesTable(msgs []explorer.NamespaceMessage) string {
	tbl := ui.NewTable(
		ui.Column{Title: "POS", Width: 4, Right: true},
		ui.Column{Title: "NAMESPACE", Width: 22},
		ui.Column{Title: "SIZE", Width: 10, Right: true},
		ui.Column{Title: "TIME", Width: 10},
	)
	for _, m := range msgs {
		id, size := "—", "—"
		if m.Namespace != nil {
			id = ui.TruncateHash(m.Namespace.NamespaceID)
			size = ui.FormatBytes(m.Namespace.Size)
		}
		tbl.AddRow(strconv.Itoa(m.Position), id, size, ui.Age(m.Time))
	}
	return tbl.Render() + ui.Meta(fmt.Sprintf("  %d message(s)", len(msgs)))
}

func blobPairs(b *explorer.Blob) [][2]string {
	size := "—"
	if raw, err := base64.StdEncoding.DecodeString(b.Data); err == nil {
		size = ui.FormatBytes(int64(len(raw)))
	}
	preview := b.Data
	if len(preview) > 48 {
		preview = preview[:48] + "…"
	}
	return [][2]string{
		{"Namespace", ui.Dash(b.Namespace)},
		{"Commitment", ui.Dash(b.Commitment)},
		{"Share version", strconv.Itoa(b.ShareVersion)},
		{"Size", size},
		{"Data", ui.Dash(preview)},
	}
}

func init() {
	namespacesCmd.Flags().IntVar(&nsParams.Limit, "limit", 0, "number of namespaces (default: config page_limit)")
	namespacesCmd.Flags().IntVar(&nsParams.Offset, "offset", 0, "skip this many namespaces")
	namespacesCmd.Flags().StringVar(&nsParams.Sort, "sort", "", "asc or desc")
	namespacesCmd.Flags().StringVar(&nsParams.MsgType, "msg-type", "", "filter by message type, e.g. MsgPayForBlobs")

	namespacesCmd.AddCommand(namespacesCountCmd, namespacesActiveCmd)
}
