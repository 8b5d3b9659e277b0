package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/snaptrail/internal/app"
	"github.com/heartmarshall/snaptrail/internal/domain"
)

func newLastChangeCmd() *cobra.Command {
	var versioned bool

	cmd := &cobra.Command{
		Use:   "last-change <owner-type> <owner-id> <attribute>",
		Short: "Show the most recent change of one attribute",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseOwner(args)
			if err != nil {
				return err
			}
			return runLastChange(cmd, owner, args[2], versioned)
		},
	}

	cmd.Flags().BoolVar(&versioned, "versioned", false, "Order by version instead of insertion")

	return cmd
}

func runLastChange(cmd *cobra.Command, owner domain.Owner, attr string, versioned bool) error {
	ctx := cmd.Context()

	return withApp(ctx, func(a *app.App) error {
		change, err := a.Audit.OwnerLastChange(ctx, owner, versioned, attr)
		if err != nil {
			return fmt.Errorf("reading last change: %w", err)
		}

		var view *changeView
		if change != nil {
			view = &changeView{Attribute: attr, Kind: change.Kind.String(), Old: change.Old, New: change.New}
		}

		out := cmd.OutOrStdout()
		if outputFormat != formatText {
			return encode(out, outputFormat, view)
		}
		if view == nil {
			fmt.Fprintf(out, "%s never changed.\n", attr)
			return nil
		}
		fmt.Fprintln(out, formatChange(*view))
		return nil
	})
}
