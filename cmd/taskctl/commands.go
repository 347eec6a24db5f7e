package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/auth"
	"github.com/jsamuelsen11/task-tracker/internal/adapters/persistence/gormstore"
	"github.com/jsamuelsen11/task-tracker/internal/app"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

// openStore connects and migrates, returning a store the caller must close.
func openStore(cmd *cobra.Command, e *env) (*gormstore.Store, error) {
	db, err := gormstore.Open(e.cfg.Database, e.logger)
	if err != nil {
		return nil, err
	}
	store := gormstore.New(db)
	if err := gormstore.Migrate(cmd.Context(), db); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd, e)
			if err != nil {
				return err
			}
			defer store.Close()

			e.logger.InfoContext(cmd.Context(), "database schema up to date",
				slog.String("dsn", e.cfg.Database.DSN),
			)
			return nil
		},
	}
}

func newCreateAdminCmd(e *env) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Register an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := user.NewEmail(email)
			if err != nil {
				return err
			}

			store, err := openStore(cmd, e)
			if err != nil {
				return err
			}
			defer store.Close()

			svc := app.NewUserService(store,
				auth.BcryptHasher{Cost: e.cfg.Auth.BcryptCost},
				auth.NewJWTIssuer(e.cfg.Auth),
				e.logger,
			)
			u, err := svc.Register(cmd.Context(), ports.Registration{
				Username: username,
				Email:    addr,
				Password: password,
				IsAdmin:  true,
			})
			if err != nil {
				return fmt.Errorf("creating admin: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id %d)\n", u.Username, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&email, "email", "", "admin email address")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	for _, name := range []string{"username", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newConfigCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.logger.InfoContext(cmd.Context(), "effective configuration", slog.Any("config", e.cfg.Redacted()))
			return nil
		},
	}
}
