// Package main is taskctl, the operator CLI for the task tracker. It shares
// configuration profiles with the API server and talks to the same database.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/task-tracker/internal/platform/logging"
)

// env is filled by the root command before any subcommand runs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		profile string
		e       env
	)

	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "Task tracker operator tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if profile == "" {
				profile = os.Getenv("APP_PROFILE")
			}
			if profile == "" {
				return fmt.Errorf("no profile: pass --profile or set APP_PROFILE")
			}

			cfg, err := config.Load(profile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			e.cfg = cfg
			e.logger = logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&profile, "profile", "p", "", "configuration profile (defaults to $APP_PROFILE)")

	root.AddCommand(
		newMigrateCmd(&e),
		newCreateAdminCmd(&e),
		newConfigCmd(&e),
	)
	return root
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
