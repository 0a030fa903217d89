// Copyright (c) 2026 Riwaya. All rights reserved.

package counter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwaya/riwaya/internal/platform/counter"
)

// memRelation is an in-memory Relation keyed by (actor, target).
type memRelation struct {
	edges map[[2]string]bool
}

func newMemRelation() *memRelation {
	return &memRelation{edges: make(map[[2]string]bool)}
}

func (r *memRelation) Create(_ context.Context, actorID, targetID string) (bool, error) {
	key := [2]string{actorID, targetID}
	if r.edges[key] {
		return false, nil
	}
	r.edges[key] = true
	return true, nil
}

func (r *memRelation) Delete(_ context.Context, actorID, targetID string) (bool, error) {
	key := [2]string{actorID, targetID}
	if !r.edges[key] {
		return false, nil
	}
	delete(r.edges, key)
	return true, nil
}

func (r *memRelation) count() int { return len(r.edges) }

// memCounter is an in-memory Counter applying the same clamp policy as the
// SQL adapter.
type memCounter struct {
	value int64
}

func (c *memCounter) Adjust(_ context.Context, delta int64) error {
	c.value = counter.Clamp(c.value, delta)
	return nil
}

/*
TestToggle_DoubleApply verifies that two toggles return to the original state:
the relation row is gone and the counter is back where it started.
*/
func TestToggle_DoubleApply(t *testing.T) {
	ctx := context.Background()
	rel := newMemRelation()
	likes := &memCounter{value: 5}

	on, err := counter.Toggle(ctx, rel, "user-b", "chapter-1", likes)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, int64(6), likes.value)
	assert.Equal(t, 1, rel.count())

	off, err := counter.Toggle(ctx, rel, "user-b", "chapter-1", likes)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Equal(t, int64(5), likes.value)
	assert.Equal(t, 0, rel.count())
}

/*
TestToggle_FanOut: a chapter like adjusts both the chapter's and the owning
novel's counters by exactly one in each direction.
*/
func TestToggle_FanOut(t *testing.T) {
	ctx := context.Background()
	rel := newMemRelation()
	chapterLikes := &memCounter{}
	novelLikes := &memCounter{}

	_, err := counter.Toggle(ctx, rel, "user-b", "chapter-1", chapterLikes, novelLikes)
	require.NoError(t, err)
	assert.Equal(t, int64(1), chapterLikes.value)
	assert.Equal(t, int64(1), novelLikes.value)

	_, err = counter.Toggle(ctx, rel, "user-b", "chapter-1", chapterLikes, novelLikes)
	require.NoError(t, err)
	assert.Equal(t, int64(0), chapterLikes.value)
	assert.Equal(t, int64(0), novelLikes.value)
}

/*
TestRecordOnce_Idempotent: repeated views by the same actor create exactly one
relation row and increment the counter exactly once.
*/
func TestRecordOnce_Idempotent(t *testing.T) {
	ctx := context.Background()
	rel := newMemRelation()
	views := &memCounter{}

	created, err := counter.RecordOnce(ctx, rel, "user-b", "chapter-1", views)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = counter.RecordOnce(ctx, rel, "user-b", "chapter-1", views)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, int64(1), views.value)
	assert.Equal(t, 1, rel.count())
}

/*
TestRecordOnce_DistinctActors: each distinct actor counts once.
*/
func TestRecordOnce_DistinctActors(t *testing.T) {
	ctx := context.Background()
	rel := newMemRelation()
	views := &memCounter{}

	for _, actor := range []string{"a", "b", "c", "a", "b"} {
		_, err := counter.RecordOnce(ctx, rel, actor, "chapter-1", views)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(3), views.value)
	assert.Equal(t, 3, rel.count())
}

/*
TestRemove reports whether anything was detached, decrementing only when it was.
*/
func TestRemove(t *testing.T) {
	ctx := context.Background()
	rel := newMemRelation()
	followers := &memCounter{}

	// Detaching a non-existent edge is a no-op.
	removed, err := counter.Remove(ctx, rel, "a", "b", followers)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, int64(0), followers.value)

	_, err = counter.RecordOnce(ctx, rel, "a", "b", followers)
	require.NoError(t, err)

	removed, err = counter.Remove(ctx, rel, "a", "b", followers)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, int64(0), followers.value)
}

/*
TestClamp_Floor: decrementing at zero stays at zero, never negative.
*/
func TestClamp_Floor(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		delta   int64
		want    int64
	}{
		{"decrement_at_zero", 0, -1, 0},
		{"decrement_positive", 3, -1, 2},
		{"increment", 3, 1, 4},
		{"large_negative", 2, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, counter.Clamp(tt.current, tt.delta))
		})
	}
}

/*
TestToggle_StaleToggleOff: a toggle-off when the counter already sits at zero
(drift from an earlier failure) still deletes the row but clamps the counter.
*/
func TestToggle_StaleToggleOff(t *testing.T) {
	ctx := context.Background()
	rel := newMemRelation()
	likes := &memCounter{value: 0}

	// Seed the relation without a matching counter value.
	_, err := rel.Create(ctx, "user-b", "chapter-1")
	require.NoError(t, err)

	on, err := counter.Toggle(ctx, rel, "user-b", "chapter-1", likes)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, int64(0), likes.value)
}
