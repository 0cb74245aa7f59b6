package cmd

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/tiascan/internal/ui"
)

var (
	watchInterval time.Duration
	watchLimit    int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard of the chain head and latest blocks",
	Long: `Poll the explorer and show the chain head and newest blocks in a
live TUI. The poll interval defaults to the configured watch_interval.

Keyboard controls:
  r   refresh now
  q   quit

Examples:
  tiascan watch
  tiascan watch --network mocha --interval 3s --limit 15`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := cfg.Interval()
		if watchInterval > 0 {
			interval = max(watchInterval, 2*time.Second)
		}
		limit := watchLimit
		if limit <= 0 {
			limit = cfg.PageLimit
		}

		m := ui.NewWatchModel(client, app, cfg.Network, interval, limit)
		prog := tea.NewProgram(m,
			tea.WithContext(cmd.Context()),
			tea.WithInput(os.Stdin),
			tea.WithOutput(os.Stdout),
		)
		_, err := prog.Run()
		return err
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "poll interval, minimum 2s (default: config watch_interval)")
	watchCmd.Flags().IntVar(&watchLimit, "limit", 0, "number of blocks shown (default: config page_limit)")
}
