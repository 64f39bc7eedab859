// Command sync runs one roster or match-history sync and prints its run summary.
//
// Usage:
//
//	paddle-sync roster
//	paddle-sync rankings
//	paddle-sync player "Jane Doe"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	sonic "github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/paddle-roster/internal/app"
	"github.com/riskibarqy/paddle-roster/internal/config"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "paddle-sync",
		Short:         "Run roster and match-history syncs against tenniscores",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(rosterCmd(&verbose))
	root.AddCommand(rankingsCmd(&verbose))
	root.AddCommand(playerCmd(&verbose))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rosterCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Discover clubs, scrape every roster and rebuild the canonical roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(*verbose, func(ctx context.Context, a *app.App) (usecase.RunSummary, error) {
				return a.RosterSyncService.RunRosterSync(ctx, syncrun.TriggerCLI)
			})
		},
	}
}

func rankingsCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "rankings",
		Short: "Scrape match history for every rostered player outside the cooldown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(*verbose, func(ctx context.Context, a *app.App) (usecase.RunSummary, error) {
				return a.MatchHistoryService.RunRankingsSync(ctx, syncrun.TriggerCLI)
			})
		},
	}
}

func playerCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "player <name>",
		Short: "Scrape match history and partner stats for one player",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return runWithApp(*verbose, func(ctx context.Context, a *app.App) (usecase.RunSummary, error) {
				return a.MatchHistoryService.ScrapePlayer(ctx, name, syncrun.TriggerCLI)
			})
		},
	}
}

// runWithApp loads config, wires the app and prints the resulting summary as JSON on stdout.
func runWithApp(verbose bool, fn func(ctx context.Context, a *app.App) (usecase.RunSummary, error)) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = logging.LevelDebug
	}
	logger := logging.NewConsole(os.Stderr, level)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer a.Close()

	summary, runErr := fn(ctx, a)
	if summary.RunID != "" {
		out, err := sonic.ConfigStd.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		fmt.Println(string(out))
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("sync finished",
		"kind", summary.Kind,
		"success", summary.SuccessCount,
		"failed", summary.FailedCount,
		"skipped", summary.SkippedCount,
	)
	return nil
}
