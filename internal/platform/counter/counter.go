// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package counter implements the consistency rules for denormalized counts.

Parent entities carry integer counter columns (likescount, viewscount,
followerscount, ...) that mirror the number of live relation rows — a like,
a view, a follow edge. The relation row is the source of truth; the counter
is a cache kept in sync by this package whenever a row is created or deleted.

# Semantics

  - [Toggle]: like/unlike style. First call creates the relation row and
    increments every affected counter; the next call deletes it and
    decrements. Repeated toggles flip state, never error.
  - [RecordOnce]: view style. The first call per (actor, target) creates the
    row and increments; later calls are no-ops, so repeated requests cannot
    inflate the count.
  - [Remove]: explicit detach. Deletes the row if present and decrements;
    reports whether anything was removed so callers can raise a conflict.

# Invariants

  - A counter never goes negative: decrements clamp at zero ([Clamp] for
    in-memory state, GREATEST(...) in the SQL adapters).
  - When an action on a child fans out to ancestors (a chapter like also
    counts on the owning novel), every affected counter is passed in and
    all are adjusted in the same call.

Callers are expected to run these operations inside a single database
transaction, with a uniqueness constraint on the (actor, target) tuple as
the storage-layer backstop against concurrent duplicates.
*/
package counter

import "context"

// Relation abstracts the persisted edge for a (actor, target) pair.
//
// Create and Delete report whether they changed anything, which lets the
// orchestration distinguish "first like" from "already liked" without a
// separate existence read that could race.
type Relation interface {
	// Create inserts the edge, returning false if it already existed.
	Create(ctx context.Context, actorID, targetID string) (bool, error)

	// Delete removes the edge, returning false if it was absent.
	Delete(ctx context.Context, actorID, targetID string) (bool, error)
}

// Counter abstracts one denormalized count affected by a relation change.
type Counter interface {
	// Adjust shifts the count by delta, clamping the result at zero.
	Adjust(ctx context.Context, delta int64) error
}

// Toggle flips the relation state for (actorID, targetID).
//
// If the edge was absent it is created and every counter is incremented; if
// present it is deleted and every counter is decremented. The returned bool
// reports whether the edge exists after the call.
func Toggle(ctx context.Context, rel Relation, actorID, targetID string, counters ...Counter) (bool, error) {
	created, err := rel.Create(ctx, actorID, targetID)
	if err != nil {
		return false, err
	}

	if created {
		if err := adjustAll(ctx, counters, +1); err != nil {
			return false, err
		}
		return true, nil
	}

	removed, err := rel.Delete(ctx, actorID, targetID)
	if err != nil {
		return false, err
	}
	if removed {
		if err := adjustAll(ctx, counters, -1); err != nil {
			return false, err
		}
	}

	return false, nil
}

// RecordOnce creates the relation at most once per (actorID, targetID).
//
// The first call creates the edge and increments every counter; subsequent
// calls return created=false and touch nothing.
func RecordOnce(ctx context.Context, rel Relation, actorID, targetID string, counters ...Counter) (bool, error) {
	created, err := rel.Create(ctx, actorID, targetID)
	if err != nil {
		return false, err
	}
	if !created {
		return false, nil
	}

	if err := adjustAll(ctx, counters, +1); err != nil {
		return false, err
	}

	return true, nil
}

// Remove deletes the relation if present, decrementing every counter.
//
// It reports whether an edge was actually removed; a false return with nil
// error means there was nothing to detach.
func Remove(ctx context.Context, rel Relation, actorID, targetID string, counters ...Counter) (bool, error) {
	removed, err := rel.Delete(ctx, actorID, targetID)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	if err := adjustAll(ctx, counters, -1); err != nil {
		return false, err
	}

	return true, nil
}

// Clamp applies a delta to a count with a floor of zero.
//
// Stale decrements (a toggle-off racing a moderation delete, for instance)
// must not drive a counter negative.
func Clamp(current, delta int64) int64 {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}

func adjustAll(ctx context.Context, counters []Counter, delta int64) error {
	for _, c := range counters {
		if err := c.Adjust(ctx, delta); err != nil {
			return err
		}
	}
	return nil
}
