// Copyright (c) 2026 Riwaya. All rights reserved.

package novels

import (
	"context"

	"github.com/riwaya/riwaya/pkg/pagination"
)

// UpdateInput carries the partial novel update. Nil means "leave unchanged".
type UpdateInput struct {
	Title       *string
	Description *string
	CategoryID  *int
	Status      *string
	CoverURL    *string
}

// Repository is the persistent novel catalog.
type Repository interface {
	List(context context.Context, directive pagination.Directive) ([]*Novel, int, error)
	MostPopular(context context.Context, limit int) ([]*Novel, error)
	ListByAuthor(context context.Context, authorID string, directive pagination.Directive) ([]*Novel, int, error)
	FindByID(context context.Context, id string) (*Novel, error)
	FindBySlug(context context.Context, slug string) (*Novel, error)

	// Create inserts the novel and bumps the owner's novelscount in one
	// transaction.
	Create(context context.Context, novel *Novel) error

	Update(context context.Context, novelID string, input UpdateInput) (*Novel, error)

	// Delete removes the novel and decrements the owner's novelscount,
	// clamped at zero, in one transaction.
	Delete(context context.Context, novelID, authorID string) error

	CategoryExists(context context.Context, categoryID int) (bool, error)

	// AttachTag links a tag (created by name on first use) to the novel.
	// Reports false when the link already existed.
	AttachTag(context context.Context, novelID, tagName string) (bool, error)

	// DetachTag unlinks the tag. Reports false when no link existed.
	DetachTag(context context.Context, novelID string, tagID int) (bool, error)

	TagsOf(context context.Context, novelID string) ([]Tag, error)
}
