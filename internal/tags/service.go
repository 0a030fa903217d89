// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package tags manages the existing free-form tag set.

Tags come into existence through the novel routes; here they are listed,
renamed, and retired. Renames and deletes are moderator operations.
*/
package tags

import (
	"context"
	"log/slog"

	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// Service implements tag management use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new tags [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// List returns one page of tags, optionally filtered by name.
func (service *Service) List(context context.Context, request pagination.Request) ([]*Tag, pagination.Meta, error) {
	directive := pagination.Resolve(request)

	list, total, err := service.repository.List(context, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return list, directive.Summary(total), nil
}

// Get returns one tag by ID.
func (service *Service) Get(context context.Context, id int) (*Tag, error) {
	return service.repository.FindByID(context, id)
}

// Novels returns one page of the novels carrying a tag.
func (service *Service) Novels(context context.Context, tagID int, request pagination.Request) ([]*novels.Novel, pagination.Meta, error) {
	if _, err := service.repository.FindByID(context, tagID); err != nil {
		return nil, pagination.Meta{}, err
	}

	directive := pagination.Resolve(request)
	list, total, err := service.repository.NovelsByTag(context, tagID, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return list, directive.Summary(total), nil
}

// Update renames a tag. The new name must not belong to another tag.
func (service *Service) Update(context context.Context, id int, name string) (*Tag, error) {
	tag, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if existing, err := service.repository.FindByName(context, name); err == nil && existing.ID != id {
		return nil, apperr.Conflict("A tag with this name already exists")
	}

	tag.Name = name
	if err := service.repository.Update(context, tag); err != nil {
		return nil, err
	}

	service.logger.Info("tag_updated", slog.Int("tag_id", tag.ID))

	return tag, nil
}

// Delete retires a tag and its novel links.
func (service *Service) Delete(context context.Context, id int) error {
	if _, err := service.repository.FindByID(context, id); err != nil {
		return err
	}

	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("tag_deleted", slog.Int("tag_id", id))

	return nil
}
