package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/snaptrail/internal/app"
	"github.com/heartmarshall/snaptrail/internal/domain"
)

type historyFlags struct {
	versioned bool
	limit     int
}

func newHistoryCmd() *cobra.Command {
	var flags historyFlags

	cmd := &cobra.Command{
		Use:   "history <owner-type> <owner-id>",
		Short: "List the audit entries of a record, each with its diff to the previous one",
		Long: `Lists audit entries oldest first. Every entry carries the changes since the
entry before it; the oldest stored entry shows all of its attributes as added.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseOwner(args)
			if err != nil {
				return err
			}
			if flags.limit < 0 {
				return fmt.Errorf("invalid limit %d, must be >= 0", flags.limit)
			}
			return runHistory(cmd, owner, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.versioned, "versioned", false, "Order by version instead of insertion")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", 0, "Show at most this many recent entries (default: audit.history_limit, 0 = all)")

	return cmd
}

func runHistory(cmd *cobra.Command, owner domain.Owner, flags historyFlags) error {
	ctx := cmd.Context()

	return withApp(ctx, func(a *app.App) error {
		limit := flags.limit
		if !cmd.Flags().Changed("limit") {
			limit = a.Config.Audit.HistoryLimit
		}

		filter := domain.EntryFilter{ByVersion: flags.versioned}
		if limit > 0 {
			// One extra entry so the oldest shown one still diffs against its predecessor.
			filter.Limit = limit + 1
		}

		entries, err := a.Audit.OwnerEntries(ctx, owner, filter)
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}

		views := historyViews(entries, limit)

		out := cmd.OutOrStdout()
		if outputFormat != formatText {
			return encode(out, outputFormat, views)
		}
		writeEntriesText(out, views)
		return nil
	})
}

// historyViews pairs each entry with its diff to the entry before it and
// keeps the newest limit of them (all when limit is 0).
func historyViews(entries []domain.AuditEntry, limit int) []entryView {
	start := 0
	if limit > 0 && len(entries) > limit {
		start = len(entries) - limit
	}

	views := make([]entryView, 0, len(entries)-start)
	for i := start; i < len(entries); i++ {
		var prev domain.Snapshot
		if i > 0 {
			prev = entries[i-1].Snapshot
		}
		views = append(views, newEntryView(entries[i], domain.DiffSnapshots(prev, entries[i].Snapshot)))
	}
	return views
}
