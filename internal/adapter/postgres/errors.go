package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/snaptrail/internal/domain"
)

// pgCodes maps SQLSTATE codes to domain errors.
var pgCodes = map[string]error{
	"23505": domain.ErrConflict,   // unique_violation
	"23503": domain.ErrNotFound,   // foreign_key_violation
	"23514": domain.ErrValidation, // check_violation
	"23502": domain.ErrValidation, // not_null_violation
	"40001": domain.ErrConflict,   // serialization_failure
	"40P01": domain.ErrConflict,   // deadlock_detected
	"55P03": domain.ErrConflict,   // lock_not_available
}

// Errors with a contended code keep the PgError in the chain.
var contended = map[string]bool{"40001": true, "40P01": true, "55P03": true}

// MapError prefixes err with the entity and id and translates pgx errors to
// domain errors. Context errors are wrapped but never translated.
func MapError(err error, entity string, id fmt.Stringer) error {
	if err == nil {
		return nil
	}

	prefix := fmt.Sprintf("%s %s", entity, id)

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodes[pgErr.Code]; ok {
			if contended[pgErr.Code] {
				return fmt.Errorf("%s: %w: %w", prefix, mapped, err)
			}
			return fmt.Errorf("%s: %w", prefix, mapped)
		}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
