package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-stats-proxy/internal/config"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
	"github.com/preston-bernstein/nba-stats-proxy/internal/metrics"
	"github.com/preston-bernstein/nba-stats-proxy/internal/server"
)

const appVersion = "dev"

var timeNow = time.Now

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	provider string
	logLevel string
	compact  bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "statsctl",
		Short:         "Query NBA stats through the caching proxy services",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.provider, "provider", "", "upstream provider (nbastats or fixture); defaults to PROVIDER")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	flags.BoolVar(&opts.compact, "compact", false, "print JSON without indentation")

	root.AddCommand(
		newStandingsCommand(opts),
		newGamesCommand(opts),
		newBoxScoreCommand(opts),
		newSearchCommand(opts),
		newPlayerCommand(opts),
		newCompareCommand(opts),
		newNewsCommand(opts),
		newServeCommand(opts),
	)
	return root
}

func (o *globalOptions) config() config.Config {
	cfg := config.Load()
	if o.provider != "" {
		cfg.Provider = o.provider
	}
	// One-shot commands have no use for background warming.
	cfg.Poller.Enabled = false
	return cfg
}

func (o *globalOptions) logger(w io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   o.logLevel,
		Format:  "text",
		Service: "statsctl",
		Version: appVersion,
		Output:  w,
	})
}

// withServices builds the service layer for one command and releases it afterwards.
func (o *globalOptions) withServices(cmd *cobra.Command, fn func(server.Services) (any, error)) error {
	cfg := o.config()
	svcs := server.BuildServices(cfg, o.logger(cmd.ErrOrStderr()), metrics.NewRecorder())
	defer svcs.Close()

	out, err := fn(svcs)
	if err != nil {
		return err
	}
	return o.print(cmd.OutOrStdout(), out)
}

func (o *globalOptions) print(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if !o.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
