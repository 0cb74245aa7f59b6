package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/tiascan/internal/config"
	"github.com/Mohsinsiddi/tiascan/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, _ := cfg.BaseURL()
		return ui.Render(cmd.OutOrStdout(), output, cfg, func() string {
			return ui.KeyValueBlock("Current Configuration", [][2]string{
				{"network", cfg.Network},
				{"api_url", ui.Dash(cfg.APIURL)},
				{"timeout_seconds", strconv.Itoa(cfg.TimeoutSeconds)},
				{"page_limit", strconv.Itoa(cfg.PageLimit)},
				{"watch_interval", strconv.Itoa(cfg.WatchInterval)},
				{"log_level", cfg.LogLevel},
				{"price_currency", cfg.PriceCurrency},
				{"resolved API", base},
			}) + "\n" + ui.Meta("Config directory: "+cfg.Dir())
		})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set and persist one configuration value.

Keys: network, api_url, timeout_seconds, page_limit, watch_interval,
      log_level, price_currency

Examples:
  tiascan config set network mocha
  tiascan config set page_limit 25`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reload so one-off --network/--api flags are not persisted.
		stored, err := config.Load(cfg.Dir())
		if err != nil {
			return err
		}
		if err := stored.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := stored.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s set to %q", args[0], args[1])))
		return nil
	},
}

var configNetworksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List known Celestia networks and their API addresses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl := ui.NewTable(ui.Column{Title: "NETWORK", Width: 10}, ui.Column{Title: "API", Width: 40})
		probe := *cfg
		probe.APIURL = ""
		for _, n := range config.Networks() {
			probe.Network = n
			u, _ := probe.BaseURL()
			tbl.AddRow(n, u)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
		return err
	},
}

func init() {
	configCmd.AddCommand(configListCmd, configSetCmd, configNetworksCmd)
}
