package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/snaptrail/internal/app"
	"github.com/heartmarshall/snaptrail/internal/domain"
)

type changesFlags struct {
	versioned bool
	only      []string
	except    []string
}

func newChangesCmd() *cobra.Command {
	var flags changesFlags

	cmd := &cobra.Command{
		Use:   "changes <owner-type> <owner-id>",
		Short: "Show what changed between the two most recent audit entries",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseOwner(args)
			if err != nil {
				return err
			}
			return runChanges(cmd, owner, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.versioned, "versioned", false, "Order by version instead of insertion")
	cmd.Flags().StringSliceVar(&flags.only, "only", nil, "Restrict the diff to these attributes")
	cmd.Flags().StringSliceVar(&flags.except, "except", nil, "Drop these attributes from the diff")

	return cmd
}

func runChanges(cmd *cobra.Command, owner domain.Owner, flags changesFlags) error {
	ctx := cmd.Context()

	return withApp(ctx, func(a *app.App) error {
		diff, err := a.Audit.OwnerChanges(ctx, owner, flags.versioned, diffOptions(flags)...)
		if err != nil {
			return fmt.Errorf("reading changes: %w", err)
		}

		views := newChangeViews(diff)

		out := cmd.OutOrStdout()
		if outputFormat != formatText {
			return encode(out, outputFormat, views)
		}
		writeChangesText(out, views)
		return nil
	})
}

func diffOptions(flags changesFlags) []domain.DiffOption {
	var opts []domain.DiffOption
	if len(flags.only) > 0 {
		opts = append(opts, domain.Only(flags.only...))
	}
	if len(flags.except) > 0 {
		opts = append(opts, domain.Except(flags.except...))
	}
	return opts
}
