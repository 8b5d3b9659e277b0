package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/snaptrail/internal/app"
	"github.com/heartmarshall/snaptrail/internal/domain"
)

func newLatestCmd() *cobra.Command {
	var versioned bool

	cmd := &cobra.Command{
		Use:   "latest <owner-type> <owner-id>",
		Short: "Show the most recent audit entry of a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseOwner(args)
			if err != nil {
				return err
			}
			return runLatest(cmd, owner, versioned)
		},
	}

	cmd.Flags().BoolVar(&versioned, "versioned", false, "Order by version instead of insertion")

	return cmd
}

func runLatest(cmd *cobra.Command, owner domain.Owner, versioned bool) error {
	ctx := cmd.Context()

	return withApp(ctx, func(a *app.App) error {
		entries, err := a.Audit.OwnerEntries(ctx, owner, domain.EntryFilter{ByVersion: versioned, Limit: 1})
		if err != nil {
			return fmt.Errorf("reading latest entry: %w", err)
		}

		var latest *entryView
		if len(entries) > 0 {
			v := newEntryView(entries[0], nil)
			latest = &v
		}

		out := cmd.OutOrStdout()
		if outputFormat != formatText {
			return encode(out, outputFormat, latest)
		}
		if latest == nil {
			fmt.Fprintln(out, "No audit entries found.")
			return nil
		}
		writeEntryText(out, *latest)
		return nil
	})
}
