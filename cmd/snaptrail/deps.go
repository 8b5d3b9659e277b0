package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/snaptrail/internal/app"
	"github.com/heartmarshall/snaptrail/internal/domain"
)

// withApp loads config, connects to the database and calls fn.
// The connection pool is closed when fn returns.
func withApp(ctx context.Context, fn func(*app.App) error) error {
	a, err := app.New(ctx, configPath)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	defer a.Close()

	return fn(a)
}

// parseOwner reads the <owner-type> <owner-id> positional arguments.
func parseOwner(args []string) (domain.Owner, error) {
	if len(args) < 2 {
		return domain.Owner{}, fmt.Errorf("expected <owner-type> <owner-id>, got %d argument(s)", len(args))
	}
	id, err := uuid.Parse(args[1])
	if err != nil {
		return domain.Owner{}, fmt.Errorf("invalid owner id %q: %w", args[1], err)
	}
	return domain.Owner{Type: args[0], ID: id}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
