package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/snaptrail/internal/adapter/postgres"
	"github.com/heartmarshall/snaptrail/internal/app"
	"github.com/heartmarshall/snaptrail/internal/config"
)

func newMigrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the audit schema migrations",
		Long:  "Applies all pending migrations, or rolls back the most recent one with --down.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, down)
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Roll back the most recent migration")

	return cmd
}

func runMigrate(cmd *cobra.Command, down bool) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	logger := app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)

	results, err := postgres.Migrate(cmd.Context(), cfg.Database.DSN, down)
	if err != nil {
		return fmt.Errorf("migrating: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No migrations to apply.")
		return nil
	}
	for _, res := range results {
		fmt.Fprintf(out, "%-4s %s (%s)\n", res.Direction, res.Source.Path, res.Duration.Round(time.Millisecond))
		logger.Info("migration applied",
			slog.String("direction", res.Direction),
			slog.Int64("version", res.Source.Version),
		)
	}
	return nil
}
