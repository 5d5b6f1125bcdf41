package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clientTaskTracker/internal/app"
	"clientTaskTracker/internal/config"
	"clientTaskTracker/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const defaultTUILog = "tracker.log"

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("locale", "en-US", "display locale (en-US, en-GB, th-TH)")
	flags.Bool("dev", false, "development logging")
	flags.String("log", "", "write logs to this file")
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task page and the JSON API",
		Long: `Serve the tracker over HTTP.

The page lives at / and the JSON API under /api/tasks.

Examples:
  tracker serve
  tracker serve --port 9000 --locale en-GB`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg, func(ctx context.Context, a *app.App) error {
				return a.Serve(ctx)
			})
		},
	}

	cmd.Flags().String("host", "127.0.0.1", "listen host")
	cmd.Flags().StringP("port", "p", "8080", "listen port")
	addConfigFlags(cmd.Flags())
	return cmd
}

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the tracker in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			// stdout belongs to the UI
			if cfg.Logging.File == "" {
				cfg.Logging.File = defaultTUILog
			}
			return run(cfg, func(ctx context.Context, a *app.App) error {
				return a.RunTUI(ctx)
			})
		},
	}

	addConfigFlags(cmd.Flags())
	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			out, err := cfg.Dump()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func run(cfg *config.Config, body func(context.Context, *app.App) error) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	defer func() {
		if shutdownErr := a.Shutdown(); shutdownErr != nil {
			logger.Error("App: shutdown failed", shutdownErr)
			if err == nil {
				err = shutdownErr
			}
		}
	}()

	if err := a.Init(ctx); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	if err := body(ctx, a); err != nil {
		logger.Error("App: stopped with error", err, zap.String("version", Version))
		return err
	}
	return nil
}
