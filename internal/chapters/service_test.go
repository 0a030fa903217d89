// Copyright (c) 2026 Riwaya. All rights reserved.

package chapters

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/internal/platform/counter"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// fakeNovel mirrors the novel counters the chapter flows touch.
type fakeNovel struct {
	ownerID       string
	viewsCount    int64
	likesCount    int64
	chaptersCount int64
}

// fakeRepository keeps chapters, relation rows, and comments in memory,
// applying the same clamped counter arithmetic the SQL layer uses.
type fakeRepository struct {
	novels   map[string]*fakeNovel
	chapters map[string]*Chapter
	views    map[[2]string]bool
	likes    map[[2]string]bool
	comments map[string]*Comment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		novels:   make(map[string]*fakeNovel),
		chapters: make(map[string]*Chapter),
		views:    make(map[[2]string]bool),
		likes:    make(map[[2]string]bool),
		comments: make(map[string]*Comment),
	}
}

func (f *fakeRepository) ListByNovel(_ context.Context, novelID string) ([]*Chapter, error) {
	list := make([]*Chapter, 0)
	for _, chapter := range f.chapters {
		if chapter.NovelID == novelID {
			list = append(list, chapter)
		}
	}
	return list, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Chapter, error) {
	if chapter, ok := f.chapters[id]; ok {
		return chapter, nil
	}
	return nil, apperr.NotFound("chapter")
}

func (f *fakeRepository) NovelOwner(_ context.Context, novelID string) (string, error) {
	if novel, ok := f.novels[novelID]; ok {
		return novel.ownerID, nil
	}
	return "", apperr.NotFound("novel")
}

func (f *fakeRepository) Create(_ context.Context, chapter *Chapter) error {
	maxNumber := 0
	for _, existing := range f.chapters {
		if existing.NovelID == chapter.NovelID && existing.Number > maxNumber {
			maxNumber = existing.Number
		}
	}
	chapter.Number = maxNumber + 1
	f.chapters[chapter.ID] = chapter
	f.novels[chapter.NovelID].chaptersCount++
	return nil
}

func (f *fakeRepository) Update(_ context.Context, chapterID string, input ChapterUpdateInput) (*Chapter, error) {
	chapter, ok := f.chapters[chapterID]
	if !ok {
		return nil, apperr.NotFound("chapter")
	}
	if input.Title != nil {
		chapter.Title = *input.Title
	}
	if input.Content != nil {
		chapter.Content = input.Content
	}
	return chapter, nil
}

func (f *fakeRepository) Delete(_ context.Context, chapterID, novelID string) error {
	if _, ok := f.chapters[chapterID]; !ok {
		return apperr.NotFound("chapter")
	}
	delete(f.chapters, chapterID)
	novel := f.novels[novelID]
	novel.chaptersCount = counter.Clamp(novel.chaptersCount, -1)
	return nil
}

func (f *fakeRepository) RecordView(_ context.Context, userID, chapterID, novelID string) (bool, error) {
	key := [2]string{userID, chapterID}
	if f.views[key] {
		return false, nil
	}
	f.views[key] = true
	f.chapters[chapterID].ViewsCount++
	f.novels[novelID].viewsCount++
	return true, nil
}

func (f *fakeRepository) ToggleLike(_ context.Context, userID, chapterID, novelID string) (bool, error) {
	key := [2]string{userID, chapterID}
	chapter := f.chapters[chapterID]
	novel := f.novels[novelID]

	if f.likes[key] {
		delete(f.likes, key)
		chapter.LikesCount = counter.Clamp(chapter.LikesCount, -1)
		novel.likesCount = counter.Clamp(novel.likesCount, -1)
		return false, nil
	}
	f.likes[key] = true
	chapter.LikesCount++
	novel.likesCount++
	return true, nil
}

func (f *fakeRepository) ListComments(_ context.Context, chapterID string, _ pagination.Directive) ([]*Comment, int, error) {
	list := make([]*Comment, 0)
	for _, comment := range f.comments {
		if comment.ChapterID == chapterID {
			list = append(list, comment)
		}
	}
	return list, len(list), nil
}

func (f *fakeRepository) FindComment(_ context.Context, commentID string) (*Comment, error) {
	if comment, ok := f.comments[commentID]; ok {
		return comment, nil
	}
	return nil, apperr.NotFound("comment")
}

func (f *fakeRepository) CreateComment(_ context.Context, comment *Comment) error {
	f.comments[comment.ID] = comment
	f.chapters[comment.ChapterID].CommentsCount++
	return nil
}

func (f *fakeRepository) UpdateComment(_ context.Context, commentID, body string) (*Comment, error) {
	comment, ok := f.comments[commentID]
	if !ok {
		return nil, apperr.NotFound("comment")
	}
	comment.Body = body
	return comment, nil
}

func (f *fakeRepository) DeleteComment(_ context.Context, commentID, chapterID string) error {
	if _, ok := f.comments[commentID]; !ok {
		return apperr.NotFound("comment")
	}
	delete(f.comments, commentID)
	chapter := f.chapters[chapterID]
	chapter.CommentsCount = counter.Clamp(chapter.CommentsCount, -1)
	return nil
}

func seedService(t *testing.T) (*Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	repo.novels["novel-1"] = &fakeNovel{ownerID: "author"}
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

/*
TestCreate_SequentialNumbering verifies chapter numbers start at 1 and grow
as previous max + 1.
*/
func TestCreate_SequentialNumbering(t *testing.T) {
	service, _ := seedService(t)
	ctx := context.Background()

	first, err := service.Create(ctx, CreateInput{NovelID: "novel-1", ActorID: "author", Title: "Opening"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Number)

	second, err := service.Create(ctx, CreateInput{NovelID: "novel-1", ActorID: "author", Title: "The Road"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Number)
}

/*
TestCreate_EmitsDomainEvent verifies the service logs the mutation as a
structured domain event, not just through the HTTP middleware.
*/
func TestCreate_EmitsDomainEvent(t *testing.T) {
	repo := newFakeRepository()
	repo.novels["novel-1"] = &fakeNovel{ownerID: "author"}

	var logBuffer bytes.Buffer
	service := NewService(repo, slog.New(slog.NewJSONHandler(&logBuffer, nil)))

	chapter, err := service.Create(context.Background(), CreateInput{NovelID: "novel-1", ActorID: "author", Title: "Opening"})
	require.NoError(t, err)

	assert.Contains(t, logBuffer.String(), "chapter_created")
	assert.Contains(t, logBuffer.String(), chapter.ID)
}

/*
TestCreate_NonOwnerRejected verifies only the novel owner can add chapters.
*/
func TestCreate_NonOwnerRejected(t *testing.T) {
	service, _ := seedService(t)

	_, err := service.Create(context.Background(), CreateInput{NovelID: "novel-1", ActorID: "reader", Title: "Nope"})

	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)
}

/*
TestReaderJourney_ViewLikeUnlike walks the full reader scenario: a non-owner
views a chapter once (repeat views are no-ops), likes it, then unlikes it.
Both the chapter and novel counters must end at viewsCount=1, likesCount=0,
with exactly one view row and zero like rows persisted.
*/
func TestReaderJourney_ViewLikeUnlike(t *testing.T) {
	service, repo := seedService(t)
	ctx := context.Background()

	chapter, err := service.Create(ctx, CreateInput{NovelID: "novel-1", ActorID: "author", Title: "Opening"})
	require.NoError(t, err)
	assert.Equal(t, 1, chapter.Number)

	// Reader B views twice: only the first one counts.
	require.NoError(t, service.RecordView(ctx, chapter.ID, "reader-b"))
	require.NoError(t, service.RecordView(ctx, chapter.ID, "reader-b"))

	// Reader B likes, then unlikes.
	liked, err := service.ToggleLike(ctx, chapter.ID, "reader-b")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = service.ToggleLike(ctx, chapter.ID, "reader-b")
	require.NoError(t, err)
	assert.False(t, liked)

	assert.Equal(t, int64(1), repo.chapters[chapter.ID].ViewsCount)
	assert.Equal(t, int64(0), repo.chapters[chapter.ID].LikesCount)
	assert.Equal(t, int64(1), repo.novels["novel-1"].viewsCount)
	assert.Equal(t, int64(0), repo.novels["novel-1"].likesCount)
	assert.Len(t, repo.views, 1)
	assert.Len(t, repo.likes, 0)
}

/*
TestRecordView_OwnerAllowed verifies owners view their own chapters like any
other reader.
*/
func TestRecordView_OwnerAllowed(t *testing.T) {
	service, repo := seedService(t)
	ctx := context.Background()

	chapter, err := service.Create(ctx, CreateInput{NovelID: "novel-1", ActorID: "author", Title: "Opening"})
	require.NoError(t, err)

	require.NoError(t, service.RecordView(ctx, chapter.ID, "author"))
	assert.Equal(t, int64(1), repo.chapters[chapter.ID].ViewsCount)
}

/*
TestDeleteComment_AuthzBeforeDecrement verifies a rejected delete leaves the
comment and its counter untouched.
*/
func TestDeleteComment_AuthzBeforeDecrement(t *testing.T) {
	service, repo := seedService(t)
	ctx := context.Background()

	chapter, err := service.Create(ctx, CreateInput{NovelID: "novel-1", ActorID: "author", Title: "Opening"})
	require.NoError(t, err)

	comment, err := service.CreateComment(ctx, chapter.ID, "reader-b", "Loved it")
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.chapters[chapter.ID].CommentsCount)

	// A stranger's delete is rejected without touching the counter.
	err = service.DeleteComment(ctx, comment.ID, "stranger")
	require.Error(t, err)
	assert.Equal(t, int64(1), repo.chapters[chapter.ID].CommentsCount)
	assert.Len(t, repo.comments, 1)

	// The author's delete goes through and decrements.
	require.NoError(t, service.DeleteComment(ctx, comment.ID, "reader-b"))
	assert.Equal(t, int64(0), repo.chapters[chapter.ID].CommentsCount)
}

/*
TestDeleteChapter_DecrementsClamped verifies chapter deletion decrements the
novel's chapterscount and owner checks are enforced.
*/
func TestDeleteChapter_DecrementsClamped(t *testing.T) {
	service, repo := seedService(t)
	ctx := context.Background()

	chapter, err := service.Create(ctx, CreateInput{NovelID: "novel-1", ActorID: "author", Title: "Opening"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.novels["novel-1"].chaptersCount)

	require.Error(t, service.Delete(ctx, chapter.ID, "reader-b"))
	assert.Equal(t, int64(1), repo.novels["novel-1"].chaptersCount)

	require.NoError(t, service.Delete(ctx, chapter.ID, "author"))
	assert.Equal(t, int64(0), repo.novels["novel-1"].chaptersCount)
}
