// Copyright (c) 2026 Riwaya. All rights reserved.

package chapters

import (
	"context"

	"github.com/riwaya/riwaya/pkg/pagination"
)

// ChapterUpdateInput carries the partial chapter update.
type ChapterUpdateInput struct {
	Title   *string
	Content *string
}

// Repository is the persistent store for chapters, the per-reader view/like
// relation rows, and comments.
type Repository interface {
	ListByNovel(context context.Context, novelID string) ([]*Chapter, error)
	FindByID(context context.Context, id string) (*Chapter, error)

	// NovelOwner resolves the owning account of a novel, NotFound when the
	// novel does not exist.
	NovelOwner(context context.Context, novelID string) (string, error)

	// Create inserts the chapter with the next sequential number (previous
	// max + 1, first chapter = 1) and bumps novel.chapterscount, in one
	// transaction. The assigned number is written back to the entity.
	Create(context context.Context, chapter *Chapter) error

	Update(context context.Context, chapterID string, input ChapterUpdateInput) (*Chapter, error)

	// Delete removes the chapter and decrements novel.chapterscount,
	// clamped at zero, in one transaction.
	Delete(context context.Context, chapterID, novelID string) error

	// RecordView records one view per (account, chapter). On the first view
	// both chapter.viewscount and novel.viewscount are incremented in one
	// transaction. Reports false when the view was already recorded.
	RecordView(context context.Context, userID, chapterID, novelID string) (bool, error)

	// ToggleLike flips the like edge for (account, chapter), adjusting both
	// chapter.likescount and novel.likescount in one transaction. Reports
	// the post-toggle state: true means liked.
	ToggleLike(context context.Context, userID, chapterID, novelID string) (bool, error)

	ListComments(context context.Context, chapterID string, directive pagination.Directive) ([]*Comment, int, error)
	FindComment(context context.Context, commentID string) (*Comment, error)

	// CreateComment inserts the comment and bumps chapter.commentscount in
	// one transaction.
	CreateComment(context context.Context, comment *Comment) error

	UpdateComment(context context.Context, commentID, body string) (*Comment, error)

	// DeleteComment removes the comment and decrements
	// chapter.commentscount, clamped at zero, in one transaction.
	DeleteComment(context context.Context, commentID, chapterID string) error
}
