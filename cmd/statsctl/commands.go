package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-stats-proxy/internal/config"
	domaingames "github.com/preston-bernstein/nba-stats-proxy/internal/domain/games"
	domainplayers "github.com/preston-bernstein/nba-stats-proxy/internal/domain/players"
	domainstandings "github.com/preston-bernstein/nba-stats-proxy/internal/domain/standings"
	"github.com/preston-bernstein/nba-stats-proxy/internal/logging"
	"github.com/preston-bernstein/nba-stats-proxy/internal/server"
)

func newStandingsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "standings [season]",
		Short: "Show conference standings for a season such as 2023-24 (default: current)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season := domainstandings.SeasonFor(timeNow())
			if len(args) == 1 {
				season = args[0]
			}
			return opts.withServices(cmd, func(s server.Services) (any, error) {
				return s.Standings.Standings(cmd.Context(), season)
			})
		},
	}
}

func newGamesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "games [day]",
		Short: "List games for a day (YYYY-MM-DD, MM/DD/YYYY or MM-DD-YYYY; default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := domaingames.LeagueDay(timeNow())
			if len(args) == 1 {
				parsed, err := domaingames.ParseDay(args[0])
				if err != nil {
					return err
				}
				day = parsed
			}
			return opts.withServices(cmd, func(s server.Services) (any, error) {
				return s.Games.GamesOn(cmd.Context(), day)
			})
		},
	}
}

func newBoxScoreCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "boxscore <game-id>",
		Short: "Show the box score for a 10-digit game id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(cmd, func(s server.Services) (any, error) {
				return s.BoxScores.BoxScore(cmd.Context(), args[0])
			})
		},
	}
}

func newSearchCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>...",
		Short: "Search players by name; every word must match",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(cmd, func(s server.Services) (any, error) {
				return s.Players.Search(cmd.Context(), strings.Join(args, " "))
			})
		},
	}
}

func newPlayerCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "player <player-id>",
		Short: "Show per-season and career averages for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domainplayers.ParseID(args[0])
			if err != nil {
				return err
			}
			return opts.withServices(cmd, func(s server.Services) (any, error) {
				return s.Players.PlayerStats(cmd.Context(), id)
			})
		},
	}
}

func newCompareCommand(opts *globalOptions) *cobra.Command {
	var mode, season string
	cmd := &cobra.Command{
		Use:   "compare <player1-id> <player2-id>",
		Short: "Compare two players' career or single-season averages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, err := domainplayers.ParseID(args[0])
			if err != nil {
				return err
			}
			p2, err := domainplayers.ParseID(args[1])
			if err != nil {
				return err
			}
			return opts.withServices(cmd, func(s server.Services) (any, error) {
				return s.Players.Compare(cmd.Context(), p1, p2, mode, season)
			})
		},
	}
	cmd.Flags().StringVar(&mode, "mode", domainplayers.ModeCareer, "career or season")
	cmd.Flags().StringVar(&season, "season", "", "season id for --mode season, e.g. 2023-24")
	return cmd
}

func newNewsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "news",
		Short: "Show the latest headlines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(cmd, func(s server.Services) (any, error) {
				return s.News.News(cmd.Context())
			})
		},
	}
}

func newServeCommand(opts *globalOptions) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP proxy until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if opts.provider != "" {
				cfg.Provider = opts.provider
			}
			if port != "" {
				cfg.Port = port
			}
			logger := logging.NewLogger(logging.Config{
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
				Service: cfg.Metrics.ServiceName,
				Version: appVersion,
				Output:  cmd.ErrOrStderr(),
			})
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			server.New(cfg, logger).Run(ctx, stop)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port; defaults to PORT")
	return cmd
}
