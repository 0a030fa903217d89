// Copyright (c) 2026 Riwaya. All rights reserved.

package favourites

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/pkg/pagination"
)

type fakeRepository struct {
	novels map[string]*novels.Novel
	edges  map[[2]string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		novels: map[string]*novels.Novel{},
		edges:  map[[2]string]bool{},
	}
}

func (f *fakeRepository) List(_ context.Context, userID string, directive pagination.Directive) ([]*novels.Novel, int, error) {
	list := make([]*novels.Novel, 0)
	for key := range f.edges {
		if key[0] == userID {
			list = append(list, f.novels[key[1]])
		}
	}
	return list, len(list), nil
}

func (f *fakeRepository) Add(_ context.Context, userID, novelID string) (bool, error) {
	key := [2]string{userID, novelID}
	if f.edges[key] {
		return false, nil
	}
	f.edges[key] = true
	return true, nil
}

func (f *fakeRepository) Remove(_ context.Context, userID, novelID string) (bool, error) {
	key := [2]string{userID, novelID}
	if !f.edges[key] {
		return false, nil
	}
	delete(f.edges, key)
	return true, nil
}

func (f *fakeRepository) NovelExists(_ context.Context, novelID string) (bool, error) {
	_, ok := f.novels[novelID]
	return ok, nil
}

func seedService() (*Service, *fakeRepository) {
	repository := newFakeRepository()
	repository.novels["novel-1"] = &novels.Novel{ID: "novel-1", Title: "The Long Night"}
	return NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil))), repository
}

/*
TestAdd_RoundTrip adds a novel, sees it in the listing, and removes it.
*/
func TestAdd_RoundTrip(t *testing.T) {
	service, _ := seedService()
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, "reader", "novel-1"))

	list, meta, err := service.List(ctx, "reader", pagination.Request{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, meta.TotalItems)

	require.NoError(t, service.Remove(ctx, "reader", "novel-1"))

	list, _, err = service.List(ctx, "reader", pagination.Request{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

/*
TestAdd_DuplicateIsConflict verifies that favouriting twice surfaces a 409
instead of silently succeeding.
*/
func TestAdd_DuplicateIsConflict(t *testing.T) {
	service, _ := seedService()
	ctx := context.Background()

	require.NoError(t, service.Add(ctx, "reader", "novel-1"))

	err := service.Add(ctx, "reader", "novel-1")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

/*
TestAdd_MissingNovel verifies that favouriting an unknown novel is a 404.
*/
func TestAdd_MissingNovel(t *testing.T) {
	service, _ := seedService()

	err := service.Add(context.Background(), "reader", "no-such-novel")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

/*
TestRemove_AbsentIsConflict verifies that removing a novel that was never
favourited surfaces a 409.
*/
func TestRemove_AbsentIsConflict(t *testing.T) {
	service, _ := seedService()

	err := service.Remove(context.Background(), "reader", "novel-1")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)
}
