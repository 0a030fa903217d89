// Copyright (c) 2026 Riwaya. All rights reserved.

package dberr

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwaya/riwaya/internal/platform/apperr"
)

/*
TestWrap_StatusMapping verifies each recognised PostgreSQL failure becomes the
matching client-facing status instead of a generic 500.
*/
func TestWrap_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing row", pgx.ErrNoRows, 404},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, 409},
		{"foreign key violation", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, 400},
		{"unknown failure", errors.New("connection reset"), 500},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			wrapped := Wrap(testCase.err, "novel")

			appErr := apperr.As(wrapped)
			require.NotNil(t, appErr)
			assert.Equal(t, testCase.wantStatus, appErr.HTTPStatus)
		})
	}
}

/*
TestWrap_NilPassthrough verifies a nil error stays nil so stores can wrap
unconditionally.
*/
func TestWrap_NilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "novel"))
}
