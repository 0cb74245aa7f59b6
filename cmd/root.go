package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mohsinsiddi/tiascan/internal/config"
	"github.com/Mohsinsiddi/tiascan/internal/explorer"
	"github.com/Mohsinsiddi/tiascan/internal/logging"
	"github.com/Mohsinsiddi/tiascan/internal/store"
	"github.com/Mohsinsiddi/tiascan/internal/ui"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/tiascan/cmd.Version=1.2.3" .
var Version = "0.3.0"

var (
	cfgDir     string
	networkArg string
	apiArg     string
	outputArg  string
	verbose    bool

	cfg    *config.Config
	log    *zap.Logger
	client *explorer.Client
	app    *store.App
	output ui.Output
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "tiascan",
	Short: "Celestia explorer in your terminal",
	Long: `tiascan — browse Celestia blocks, namespaces and blobs from the terminal.

  Reads the Celenium explorer API. Pick a network with --network
  (mainnet, mocha, arabica) or point at any compatible API with --api.

Output is a styled table by default; use -o json or -o yaml for scripting.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// setup loads config and builds the logger, client and store for one run.
func setup() error {
	var err error
	cfg, err = config.Load(cfgDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if networkArg != "" {
		cfg.Network = networkArg
		cfg.APIURL = ""
	}
	if apiArg != "" {
		cfg.APIURL = apiArg
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var levelErr error
	log, levelErr = logging.New(cfg.LogLevel, verbose)
	if levelErr != nil {
		log.Warn("falling back to info logging", zap.Error(levelErr))
	}

	if output, err = ui.ParseOutput(outputArg); err != nil {
		return err
	}

	base, err := cfg.BaseURL()
	if err != nil {
		return err
	}
	client = explorer.New(base,
		explorer.WithLogger(log.Named("explorer")),
		explorer.WithTimeout(cfg.Timeout()),
		explorer.WithUserAgent("tiascan/"+Version),
	)
	app = store.New()
	log.Debug("configured", zap.String("api", base), zap.String("config_dir", cfg.Dir()))
	return nil
}

// Execute runs the root command. Ctrl-C cancels in-flight requests.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Err(err.Error()))
		stop()
		os.Exit(1)
	}
}

func init() {
	// TIASCAN_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv(config.EnvConfigDir); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.tiascan)")
	rootCmd.PersistentFlags().StringVar(&networkArg, "network", "", "celestia network: mainnet, mocha, arabica")
	rootCmd.PersistentFlags().StringVar(&apiArg, "api", "", "explorer API base URL (overrides --network)")
	rootCmd.PersistentFlags().StringVarP(&outputArg, "output", "o", "table", "output format: table, json, yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.MarkFlagsMutuallyExclusive("network", "api")

	rootCmd.AddCommand(
		headCmd,
		blocksCmd,
		blockCmd,
		namespacesCmd,
		namespaceCmd,
		searchCmd,
		convertCmd,
		watchCmd,
		configCmd,
	)
}
