// Copyright (c) 2026 Riwaya. All rights reserved.

package novels

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// fakeRepository keeps the catalog in memory, indexed by ID and by slug.
type fakeRepository struct {
	byID   map[string]*Novel
	bySlug map[string]*Novel
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:   make(map[string]*Novel),
		bySlug: make(map[string]*Novel),
	}
}

func (repository *fakeRepository) List(_ context.Context, _ pagination.Directive) ([]*Novel, int, error) {
	return nil, 0, nil
}

func (repository *fakeRepository) MostPopular(_ context.Context, _ int) ([]*Novel, error) {
	return nil, nil
}

func (repository *fakeRepository) ListByAuthor(_ context.Context, _ string, _ pagination.Directive) ([]*Novel, int, error) {
	return nil, 0, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*Novel, error) {
	novel, found := repository.byID[id]
	if !found {
		return nil, apperr.NotFound("novel")
	}
	return novel, nil
}

func (repository *fakeRepository) FindBySlug(_ context.Context, slug string) (*Novel, error) {
	novel, found := repository.bySlug[slug]
	if !found {
		return nil, apperr.NotFound("novel")
	}
	return novel, nil
}

func (repository *fakeRepository) Create(_ context.Context, novel *Novel) error {
	repository.byID[novel.ID] = novel
	repository.bySlug[novel.Slug] = novel
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, novelID string, input UpdateInput) (*Novel, error) {
	novel := repository.byID[novelID]
	if input.Title != nil {
		novel.Title = *input.Title
	}
	if input.Description != nil {
		novel.Description = input.Description
	}
	return novel, nil
}

func (repository *fakeRepository) Delete(_ context.Context, novelID, _ string) error {
	novel, found := repository.byID[novelID]
	if !found {
		return apperr.NotFound("novel")
	}
	delete(repository.bySlug, novel.Slug)
	delete(repository.byID, novelID)
	return nil
}

func (repository *fakeRepository) CategoryExists(_ context.Context, categoryID int) (bool, error) {
	return categoryID == 1, nil
}

func (repository *fakeRepository) AttachTag(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}

func (repository *fakeRepository) DetachTag(_ context.Context, _ string, _ int) (bool, error) {
	return true, nil
}

func (repository *fakeRepository) TagsOf(_ context.Context, _ string) ([]Tag, error) {
	return nil, nil
}

// fakeUploader returns a deterministic URL for any object.
type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, key, _ string, _ io.Reader) (string, error) {
	return "https://cdn.test/" + key, nil
}

func (fakeUploader) Delete(_ context.Context, _ string) error { return nil }

func seedService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repository := newFakeRepository()
	return NewService(repository, fakeUploader{}, slog.New(slog.NewTextHandler(io.Discard, nil))), repository
}

func cover() *CoverUpload {
	return &CoverUpload{
		Filename:    "cover.jpg",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("jpg"),
	}
}

/*
TestCreate_SlugFromTitle verifies a Latin title produces a readable slug.
*/
func TestCreate_SlugFromTitle(t *testing.T) {
	service, _ := seedService(t)

	novel, err := service.Create(context.Background(), CreateInput{
		AuthorID:   "author",
		Title:      "The Wandering Inn",
		CategoryID: 1,
		Cover:      cover(),
	})
	require.NoError(t, err)

	assert.Equal(t, "the-wandering-inn", novel.Slug)
}

/*
TestCreate_UnsluggableTitleFallsBackToID verifies titles with no ASCII
representation get the novel's ID as slug instead of an empty string.
*/
func TestCreate_UnsluggableTitleFallsBackToID(t *testing.T) {
	service, _ := seedService(t)

	novel, err := service.Create(context.Background(), CreateInput{
		AuthorID:   "author",
		Title:      "رواية الصحراء",
		CategoryID: 1,
		Cover:      cover(),
	})
	require.NoError(t, err)

	assert.Equal(t, novel.ID, novel.Slug)
	assert.NotEmpty(t, novel.Slug)
}

/*
TestCreate_SlugCollisionGetsIDSuffix verifies two novels with the same title
end up with distinct slugs, the second carrying an ID-derived suffix.
*/
func TestCreate_SlugCollisionGetsIDSuffix(t *testing.T) {
	service, _ := seedService(t)

	first, err := service.Create(context.Background(), CreateInput{
		AuthorID:   "author",
		Title:      "Duplicate Title",
		CategoryID: 1,
		Cover:      cover(),
	})
	require.NoError(t, err)

	second, err := service.Create(context.Background(), CreateInput{
		AuthorID:   "author",
		Title:      "Duplicate Title",
		CategoryID: 1,
		Cover:      cover(),
	})
	require.NoError(t, err)

	assert.Equal(t, "duplicate-title", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Equal(t, "duplicate-title-"+second.ID[len(second.ID)-8:], second.Slug)
}

/*
TestCreate_MissingCoverRejected verifies the cover image is mandatory.
*/
func TestCreate_MissingCoverRejected(t *testing.T) {
	service, _ := seedService(t)

	_, err := service.Create(context.Background(), CreateInput{
		AuthorID:   "author",
		Title:      "No Cover",
		CategoryID: 1,
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

/*
TestCreate_UnknownCategoryRejected verifies the category is checked before
anything is uploaded or inserted.
*/
func TestCreate_UnknownCategoryRejected(t *testing.T) {
	service, repository := seedService(t)

	_, err := service.Create(context.Background(), CreateInput{
		AuthorID:   "author",
		Title:      "Orphan",
		CategoryID: 99,
		Cover:      cover(),
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Empty(t, repository.byID)
}

/*
TestUpdate_NonOwnerRejected verifies only the author can modify a novel.
*/
func TestUpdate_NonOwnerRejected(t *testing.T) {
	service, _ := seedService(t)

	novel, err := service.Create(context.Background(), CreateInput{
		AuthorID:   "author",
		Title:      "Guarded",
		CategoryID: 1,
		Cover:      cover(),
	})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = service.Update(context.Background(), novel.ID, "intruder", UpdateInput{Title: &newTitle}, nil)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
}

/*
TestDelete_NonOwnerRejected verifies only the author can delete a novel.
*/
func TestDelete_NonOwnerRejected(t *testing.T) {
	service, repository := seedService(t)

	novel, err := service.Create(context.Background(), CreateInput{
		AuthorID:   "author",
		Title:      "Persistent",
		CategoryID: 1,
		Cover:      cover(),
	})
	require.NoError(t, err)

	err = service.Delete(context.Background(), novel.ID, "intruder")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
	assert.Contains(t, repository.byID, novel.ID)
}
