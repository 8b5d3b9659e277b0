package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/snaptrail/migrations"
)

// Migrate applies the embedded migrations to the database at dsn.
// When down is true the most recent migration is rolled back instead.
// goose needs a *sql.DB, so a short-lived database/sql handle is opened.
func Migrate(ctx context.Context, dsn string, down bool) ([]*goose.MigrationResult, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	// goose.NewProvider handles $$-delimited statements correctly, unlike
	// the legacy goose.Up which splits on semicolons.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	if down {
		res, err := provider.Down(ctx)
		if err != nil {
			return nil, fmt.Errorf("goose down: %w", err)
		}
		return []*goose.MigrationResult{res}, nil
	}

	res, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}
	return res, nil
}
