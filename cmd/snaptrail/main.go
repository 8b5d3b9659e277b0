// Command snaptrail inspects audit trails stored in PostgreSQL and manages
// the audit schema.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/snaptrail/internal/app"
)

var (
	outputFormat string
	configPath   string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "snaptrail",
		Short:         "Attribute-level audit trails backed by PostgreSQL",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !contains(validFormats, outputFormat) {
				return fmt.Errorf("invalid output %q, valid formats: %v", outputFormat, validFormats)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatText, "Output format (text, json, yaml)")

	rootCmd.AddCommand(
		newMigrateCmd(),
		newLatestCmd(),
		newHistoryCmd(),
		newChangesCmd(),
		newLastChangeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
