package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Mohsinsiddi/tiascan/internal/explorer"
	"github.com/Mohsinsiddi/tiascan/internal/ui"
)

// await runs one explorer call, with a spinner when a human is watching.
// The Fetch error (already logged by the client) is returned wrapped.
func await(cmd *cobra.Command, what string, call func(ctx context.Context) *explorer.Fetch) (*explorer.Fetch, error) {
	var spin *ui.Spinner
	if output == ui.OutputTable && term.IsTerminal(int(os.Stderr.Fd())) {
		spin = ui.NewSpinner(fmt.Sprintf("Fetching %s…", what))
		spin.Start()
	}
	f := call(cmd.Context())
	if spin != nil {
		spin.Stop()
	}
	if err := f.Err(); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", what, err)
	}
	return f, nil
}

// show prints a fetch: raw JSON/YAML passthrough, or the table view.
func show(cmd *cobra.Command, f *explorer.Fetch, table func() (string, error)) error {
	if output != ui.OutputTable {
		return ui.RenderRaw(cmd.OutOrStdout(), output, f.Data())
	}
	view, err := table()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), view)
	return err
}

// showCount prints a bare count response.
func showCount(cmd *cobra.Command, f *explorer.Fetch, label string) error {
	return show(cmd, f, func() (string, error) {
		n, err := explorer.As[int64](f)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s", ui.Meta(label+":"), ui.Val(strconv.FormatInt(n, 10))), nil
	})
}

func parseHeight(s string) (int64, error) {
	h, err := strconv.ParseInt(s, 10, 64)
	if err != nil || h < 0 {
		return 0, fmt.Errorf("invalid height %q — expected a non-negative block number", s)
	}
	return h, nil
}

// pageParams fills Limit from config when the flag was left at zero.
func pageParams(p explorer.Params) explorer.Params {
	if p.Limit == 0 {
		p.Limit = cfg.PageLimit
	}
	return p
}
