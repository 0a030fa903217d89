// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package chapters implements chapter reading, the per-reader view and like
flows, and chapter comments.

Views and likes are one-row-per-reader relations: the counters on the
chapter and its owning novel move together with the relation row inside one
transaction, so a crash or a concurrent double-submit can never leave the
count out of step with the rows.
*/
package chapters

import (
	"context"
	"log/slog"

	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/pkg/pagination"
	"github.com/riwaya/riwaya/pkg/uuidv7"
)

// Service implements chapter use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new chapters [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// # Reading

// Get returns one chapter with its counters.
func (service *Service) Get(context context.Context, chapterID string) (*Chapter, error) {
	return service.repository.FindByID(context, chapterID)
}

// ListByNovel returns a novel's chapters ordered by number.
func (service *Service) ListByNovel(context context.Context, novelID string) ([]*Chapter, error) {
	// Resolve the novel first so a bogus ID is NotFound, not an empty list.
	if _, err := service.repository.NovelOwner(context, novelID); err != nil {
		return nil, err
	}
	return service.repository.ListByNovel(context, novelID)
}

// # Lifecycle

// CreateInput is the payload for adding a chapter to a novel.
type CreateInput struct {
	NovelID string
	ActorID string
	Title   string
	Content *string
}

/*
Create appends a chapter to an owned novel.

Description: The chapter number is assigned as the previous maximum plus one;
the first chapter of a novel is number 1. The insert and the novel's
chapterscount increment happen in one transaction.

Returns:
  - *Chapter: Created entity with its assigned number
  - err: Unauthorized when the caller does not own the novel
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Chapter, error) {
	ownerID, err := service.repository.NovelOwner(context, input.NovelID)
	if err != nil {
		return nil, err
	}
	if ownerID != input.ActorID {
		return nil, apperr.Unauthorized("You do not own this novel")
	}

	chapter := &Chapter{
		ID:      uuidv7.New(),
		NovelID: input.NovelID,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := service.repository.Create(context, chapter); err != nil {
		return nil, err
	}

	service.logger.Info("chapter_created",
		slog.String("chapter_id", chapter.ID),
		slog.String("novel_id", chapter.NovelID),
		slog.Int("number", chapter.Number),
	)

	return service.repository.FindByID(context, chapter.ID)
}

// Update applies a partial update to a chapter of an owned novel.
func (service *Service) Update(context context.Context, chapterID, actorID string, input ChapterUpdateInput) (*Chapter, error) {
	chapter, err := service.requireNovelOwner(context, chapterID, actorID)
	if err != nil {
		return nil, err
	}
	return service.repository.Update(context, chapter.ID, input)
}

// Delete removes a chapter of an owned novel and decrements the novel's
// chapterscount, clamped at zero.
func (service *Service) Delete(context context.Context, chapterID, actorID string) error {
	chapter, err := service.requireNovelOwner(context, chapterID, actorID)
	if err != nil {
		return err
	}

	if err := service.repository.Delete(context, chapter.ID, chapter.NovelID); err != nil {
		return err
	}

	service.logger.Warn("chapter_deleted",
		slog.String("chapter_id", chapter.ID),
		slog.String("novel_id", chapter.NovelID),
	)

	return nil
}

// # Views & Likes

/*
RecordView records that a reader opened the chapter.

Description: One view per (account, chapter), ever. The first view bumps the
chapter's and the novel's viewscount together; repeats are a silent no-op.
Owners may view their own chapters like anyone else.
*/
func (service *Service) RecordView(context context.Context, chapterID, actorID string) error {
	chapter, err := service.repository.FindByID(context, chapterID)
	if err != nil {
		return err
	}

	recorded, err := service.repository.RecordView(context, actorID, chapter.ID, chapter.NovelID)
	if err != nil {
		return err
	}

	if recorded {
		service.logger.Info("chapter_viewed",
			slog.String("chapter_id", chapter.ID),
			slog.String("user_id", actorID),
		)
	}

	return nil
}

/*
ToggleLike flips the reader's like on the chapter.

Description: Liking bumps the chapter's and the novel's likescount together;
unliking decrements both, clamped at zero.

Returns:
  - bool: Post-toggle state, true when the chapter is now liked
*/
func (service *Service) ToggleLike(context context.Context, chapterID, actorID string) (bool, error) {
	chapter, err := service.repository.FindByID(context, chapterID)
	if err != nil {
		return false, err
	}

	liked, err := service.repository.ToggleLike(context, actorID, chapter.ID, chapter.NovelID)
	if err != nil {
		return false, err
	}

	service.logger.Info("chapter_like_toggled",
		slog.String("chapter_id", chapter.ID),
		slog.String("user_id", actorID),
		slog.Bool("liked", liked),
	)

	return liked, nil
}

// # Comments

// ListComments returns one page of a chapter's comments, newest first.
func (service *Service) ListComments(context context.Context, chapterID string, request pagination.Request) ([]*Comment, pagination.Meta, error) {
	if _, err := service.repository.FindByID(context, chapterID); err != nil {
		return nil, pagination.Meta{}, err
	}

	directive := pagination.Resolve(request)
	list, total, err := service.repository.ListComments(context, chapterID, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return list, directive.Summary(total), nil
}

// CreateComment adds a comment from any authenticated reader and bumps the
// chapter's commentscount.
func (service *Service) CreateComment(context context.Context, chapterID, actorID, body string) (*Comment, error) {
	if _, err := service.repository.FindByID(context, chapterID); err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:        uuidv7.New(),
		UserID:    actorID,
		ChapterID: chapterID,
		Body:      body,
	}

	if err := service.repository.CreateComment(context, comment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.String("comment_id", comment.ID),
		slog.String("chapter_id", chapterID),
		slog.String("user_id", actorID),
	)

	return service.repository.FindComment(context, comment.ID)
}

// UpdateComment edits the caller's own comment.
func (service *Service) UpdateComment(context context.Context, commentID, actorID, body string) (*Comment, error) {
	comment, err := service.repository.FindComment(context, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, apperr.Unauthorized("You do not own this comment")
	}

	return service.repository.UpdateComment(context, commentID, body)
}

/*
DeleteComment removes the caller's own comment.

Description: Ownership is verified BEFORE anything is mutated, so a rejected
delete can never move the commentscount.
*/
func (service *Service) DeleteComment(context context.Context, commentID, actorID string) error {
	comment, err := service.repository.FindComment(context, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != actorID {
		return apperr.Unauthorized("You do not own this comment")
	}

	if err := service.repository.DeleteComment(context, comment.ID, comment.ChapterID); err != nil {
		return err
	}

	service.logger.Warn("comment_deleted",
		slog.String("comment_id", comment.ID),
		slog.String("chapter_id", comment.ChapterID),
	)

	return nil
}

// requireNovelOwner loads the chapter and checks the caller owns its novel.
func (service *Service) requireNovelOwner(context context.Context, chapterID, actorID string) (*Chapter, error) {
	chapter, err := service.repository.FindByID(context, chapterID)
	if err != nil {
		return nil, err
	}

	ownerID, err := service.repository.NovelOwner(context, chapter.NovelID)
	if err != nil {
		return nil, err
	}
	if ownerID != actorID {
		return nil, apperr.Unauthorized("You do not own this novel")
	}
	return chapter, nil
}
