// Copyright (c) 2026 Riwaya. All rights reserved.

// Package dberr bridges low-level PostgreSQL errors and application errors.
//
// Stores call [Wrap] on every query error so that missing rows and
// unique-constraint violations surface as the correct client-facing status
// without leaking SQL details.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/riwaya/riwaya/internal/platform/apperr"
)

// Wrap inspects a database error and converts it into a meaningful
// [apperr.AppError].
//
// # Mapping
//
//   - pgx.ErrNoRows → 404 NotFound for the named resource.
//   - SQLSTATE 23505 (unique violation) → 409 Conflict. The unique
//     constraints on relation tuples are the storage-layer backstop against
//     duplicate rows created by concurrent requests.
//   - SQLSTATE 23503 (foreign-key violation) → 400 Validation. The client
//     referenced a row that does not exist, such as an unknown category.
//   - anything else → 500 Internal with the cause preserved for logging.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError(resource + " references a missing record")
		}
	}

	return apperr.Internal(fmt.Errorf("db %s: %w", resource, err))
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
