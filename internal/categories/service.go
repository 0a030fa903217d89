// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package categories implements the curated category shelves.

Reading is public; creating, renaming, and deleting shelves is reserved for
moderators.
*/
package categories

import (
	"context"
	"log/slog"

	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/pkg/pagination"
	"github.com/riwaya/riwaya/pkg/slug"
)

// Service implements category use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new categories [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// List returns one page of categories, optionally filtered by name.
func (service *Service) List(context context.Context, request pagination.Request) ([]*Category, pagination.Meta, error) {
	directive := pagination.Resolve(request)

	list, total, err := service.repository.List(context, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return list, directive.Summary(total), nil
}

// Get returns one category by ID.
func (service *Service) Get(context context.Context, id int) (*Category, error) {
	return service.repository.FindByID(context, id)
}

// Novels returns one page of the novels filed under a category.
func (service *Service) Novels(context context.Context, categoryID int, request pagination.Request) ([]*novels.Novel, pagination.Meta, error) {
	if _, err := service.repository.FindByID(context, categoryID); err != nil {
		return nil, pagination.Meta{}, err
	}

	directive := pagination.Resolve(request)
	list, total, err := service.repository.NovelsByCategory(context, categoryID, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return list, directive.Summary(total), nil
}

// Create adds a new shelf. Duplicate names conflict.
func (service *Service) Create(context context.Context, name string) (*Category, error) {
	if _, err := service.repository.FindByName(context, name); err == nil {
		return nil, apperr.Conflict("A category with this name already exists")
	}

	category := &Category{Name: name, Slug: slug.From(name)}
	if err := service.repository.Create(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_created", slog.String("name", category.Name))

	return category, nil
}

// Update renames a shelf. The new name must not belong to another category.
func (service *Service) Update(context context.Context, id int, name string) (*Category, error) {
	category, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if existing, err := service.repository.FindByName(context, name); err == nil && existing.ID != id {
		return nil, apperr.Conflict("A category with this name already exists")
	}

	category.Name = name
	category.Slug = slug.From(name)
	if err := service.repository.Update(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_updated", slog.Int("category_id", category.ID))

	return category, nil
}

// Delete removes a shelf.
func (service *Service) Delete(context context.Context, id int) error {
	if _, err := service.repository.FindByID(context, id); err != nil {
		return err
	}

	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.Int("category_id", id))

	return nil
}
