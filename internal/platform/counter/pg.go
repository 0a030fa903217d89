// Copyright (c) 2026 Riwaya. All rights reserved.

package counter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of the pgx command surface the SQL adapters need.
// Both *pgxpool.Pool and pgx.Tx satisfy it, so the same adapter works
// standalone or inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// TableRelation is the PostgreSQL-backed [Relation] for a two-column edge
// table. Table and column names come from the schema package, never from
// client input.
type TableRelation struct {
	DB           Querier
	Table        string
	ActorColumn  string
	TargetColumn string
}

// Create inserts the edge. ON CONFLICT DO NOTHING makes the insert race-safe:
// if a concurrent request won, RowsAffected is zero and we report "existed".
func (r TableRelation) Create(ctx context.Context, actorID, targetID string) (bool, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT (%s, %s) DO NOTHING`,
		r.Table, r.ActorColumn, r.TargetColumn, r.ActorColumn, r.TargetColumn,
	)

	tag, err := r.DB.Exec(ctx, query, actorID, targetID)
	if err != nil {
		return false, fmt.Errorf("counter: failed to create relation in %s: %w", r.Table, err)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete removes the edge, reporting whether a row was actually deleted.
func (r TableRelation) Delete(ctx context.Context, actorID, targetID string) (bool, error) {
	query := fmt.Sprintf(
		`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		r.Table, r.ActorColumn, r.TargetColumn,
	)

	tag, err := r.DB.Exec(ctx, query, actorID, targetID)
	if err != nil {
		return false, fmt.Errorf("counter: failed to delete relation in %s: %w", r.Table, err)
	}

	return tag.RowsAffected() >= 1, nil
}

// ColumnCounter is the PostgreSQL-backed [Counter] for one integer column on
// one row of a parent table.
type ColumnCounter struct {
	DB        Querier
	Table     string
	Column    string
	KeyColumn string
	Key       any
}

// Adjust shifts the column by delta. GREATEST enforces the floor-at-zero
// invariant inside the database, so even interleaved decrements cannot
// underflow.
func (c ColumnCounter) Adjust(ctx context.Context, delta int64) error {
	query := fmt.Sprintf(
		`UPDATE %s SET %s = GREATEST(%s + $1, 0) WHERE %s = $2`,
		c.Table, c.Column, c.Column, c.KeyColumn,
	)

	if _, err := c.DB.Exec(ctx, query, delta, c.Key); err != nil {
		return fmt.Errorf("counter: failed to adjust %s.%s: %w", c.Table, c.Column, err)
	}

	return nil
}
