// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package novels implements the novel catalog.

It owns listing and discovery (search, popularity), the novel lifecycle
(create with cover upload, update, delete) including the owner's novelscount
bookkeeping, and the free-form tag links.
*/
package novels

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/google/uuid"

	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/internal/platform/storage"
	"github.com/riwaya/riwaya/pkg/pagination"
	"github.com/riwaya/riwaya/pkg/slug"
	"github.com/riwaya/riwaya/pkg/uuidv7"
)

// MostPopularLimit is how many novels the popularity shelf returns.
const MostPopularLimit = 10

// Service implements catalog use cases.
type Service struct {
	repository Repository
	uploader   storage.Uploader
	logger     *slog.Logger
}

// NewService constructs a new novels [Service].
func NewService(repository Repository, uploader storage.Uploader, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		uploader:   uploader,
		logger:     logger,
	}
}

// # Discovery

// List returns one page of the catalog, optionally filtered by a title
// substring.
func (service *Service) List(context context.Context, request pagination.Request) ([]*Novel, pagination.Meta, error) {
	directive := pagination.Resolve(request)

	list, total, err := service.repository.List(context, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return list, directive.Summary(total), nil
}

// MostPopular returns the top novels by view count.
func (service *Service) MostPopular(context context.Context) ([]*Novel, error) {
	return service.repository.MostPopular(context, MostPopularLimit)
}

// ListByAuthor returns one page of an account's novels.
func (service *Service) ListByAuthor(context context.Context, authorID string, request pagination.Request) ([]*Novel, pagination.Meta, error) {
	directive := pagination.Resolve(request)

	list, total, err := service.repository.ListByAuthor(context, authorID, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return list, directive.Summary(total), nil
}

// Get resolves a novel by UUID or, failing that, by slug.
func (service *Service) Get(context context.Context, idOrSlug string) (*Novel, error) {
	if _, err := uuid.Parse(idOrSlug); err == nil {
		return service.repository.FindByID(context, idOrSlug)
	}
	return service.repository.FindBySlug(context, idOrSlug)
}

// # Lifecycle

// CoverUpload carries an incoming cover image.
type CoverUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// CreateInput is the payload for creating a novel.
type CreateInput struct {
	AuthorID    string
	Title       string
	Description *string
	CategoryID  int
	Cover       *CoverUpload
}

/*
Create persists a new novel.

Description: Verifies the category exists, uploads the mandatory cover image,
derives a unique slug from the title, and inserts the row while bumping the
owner's novelscount in one transaction.

Returns:
  - *Novel: Created entity
  - err: NotFound (category), Validation (missing cover), storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Novel, error) {
	if input.Cover == nil {
		return nil, apperr.ValidationError("A cover image is required")
	}

	exists, err := service.repository.CategoryExists(context, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("category")
	}

	novelID := uuidv7.New()

	key := "covers/" + novelID + path.Ext(input.Cover.Filename)
	coverURL, err := service.uploader.Upload(context, key, input.Cover.ContentType, input.Cover.Body)
	if err != nil {
		return nil, fmt.Errorf("novels_service_cover_upload_failed: %w", err)
	}

	novel := &Novel{
		ID:          novelID,
		AuthorID:    input.AuthorID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Slug:        service.uniqueSlug(context, input.Title, novelID),
		Description: input.Description,
		CoverURL:    coverURL,
		Status:      StatusOngoing,
	}

	if err := service.repository.Create(context, novel); err != nil {
		return nil, err
	}

	service.logger.Info("novel_created",
		slog.String("novel_id", novel.ID),
		slog.String("author_id", novel.AuthorID),
		slog.String("slug", novel.Slug),
	)

	return service.repository.FindByID(context, novel.ID)
}

// uniqueSlug derives a slug from the title and de-duplicates it with an ID
// suffix. Titles that slugify to nothing (non-Latin scripts) fall back to the
// ID outright.
func (service *Service) uniqueSlug(context context.Context, title, novelID string) string {
	base := slug.From(title)
	if base == "" {
		return novelID
	}

	if _, err := service.repository.FindBySlug(context, base); err != nil {
		return base
	}
	return base + "-" + novelID[len(novelID)-8:]
}

/*
Update applies a partial update to an owned novel.

Returns:
  - err: Unauthorized when the caller does not own the novel
*/
func (service *Service) Update(context context.Context, novelID, actorID string, input UpdateInput, newCover *CoverUpload) (*Novel, error) {
	novel, err := service.repository.FindByID(context, novelID)
	if err != nil {
		return nil, err
	}
	if novel.AuthorID != actorID {
		return nil, apperr.Unauthorized("You do not own this novel")
	}

	if newCover != nil {
		key := "covers/" + novelID + path.Ext(newCover.Filename)
		coverURL, err := service.uploader.Upload(context, key, newCover.ContentType, newCover.Body)
		if err != nil {
			return nil, fmt.Errorf("novels_service_cover_upload_failed: %w", err)
		}
		input.CoverURL = &coverURL
	}

	updated, err := service.repository.Update(context, novelID, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("novel_updated", slog.String("novel_id", novelID))

	return updated, nil
}

/*
Delete removes an owned novel and decrements the owner's novelscount,
clamped at zero.

Returns:
  - err: Unauthorized when the caller does not own the novel
*/
func (service *Service) Delete(context context.Context, novelID, actorID string) error {
	novel, err := service.repository.FindByID(context, novelID)
	if err != nil {
		return err
	}
	if novel.AuthorID != actorID {
		return apperr.Unauthorized("You do not own this novel")
	}

	if err := service.repository.Delete(context, novelID, novel.AuthorID); err != nil {
		return err
	}

	service.logger.Warn("novel_deleted",
		slog.String("novel_id", novelID),
		slog.String("author_id", novel.AuthorID),
	)

	return nil
}

// # Tag Links

/*
AddTag links one tag (created on first use) to an owned novel.

Returns:
  - err: Unauthorized (not owner), Conflict (already linked)
*/
func (service *Service) AddTag(context context.Context, novelID, actorID, tagName string) error {
	if err := service.requireOwner(context, novelID, actorID); err != nil {
		return err
	}

	linked, err := service.repository.AttachTag(context, novelID, tagName)
	if err != nil {
		return err
	}
	if !linked {
		return apperr.Conflict("Tag is already attached to this novel")
	}
	return nil
}

/*
AddTags links several tags at once. Validation is all-or-nothing: one empty
name rejects the whole batch. Already-linked tags are skipped silently.
*/
func (service *Service) AddTags(context context.Context, novelID, actorID string, tagNames []string) error {
	if len(tagNames) == 0 {
		return apperr.ValidationError("At least one tag is required")
	}
	for _, name := range tagNames {
		if name == "" {
			return apperr.ValidationError("Tag names must not be empty")
		}
	}

	if err := service.requireOwner(context, novelID, actorID); err != nil {
		return err
	}

	for _, name := range tagNames {
		if _, err := service.repository.AttachTag(context, novelID, name); err != nil {
			return err
		}
	}
	return nil
}

/*
RemoveTag unlinks a tag from an owned novel.

Returns:
  - err: Unauthorized (not owner), NotFound (no such link)
*/
func (service *Service) RemoveTag(context context.Context, novelID, actorID string, tagID int) error {
	if err := service.requireOwner(context, novelID, actorID); err != nil {
		return err
	}

	removed, err := service.repository.DetachTag(context, novelID, tagID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("tag")
	}
	return nil
}

func (service *Service) requireOwner(context context.Context, novelID, actorID string) error {
	novel, err := service.repository.FindByID(context, novelID)
	if err != nil {
		return err
	}
	if novel.AuthorID != actorID {
		return apperr.Unauthorized("You do not own this novel")
	}
	return nil
}
