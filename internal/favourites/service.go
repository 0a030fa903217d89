// Copyright (c) 2026 Riwaya. All rights reserved.

package favourites

import (
	"context"
	"log/slog"

	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/internal/platform/apperr"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// Service orchestrates the favourites library.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService creates a new favourites Service.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// List returns a page of the caller's favourited novels.
func (service *Service) List(context context.Context, userID string, request pagination.Request) ([]*novels.Novel, pagination.Meta, error) {
	directive := pagination.Resolve(request)

	list, total, err := service.repository.List(context, userID, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return list, directive.Summary(total), nil
}

/*
Add puts a novel into the caller's library.

Parameters:
  - context: request-scoped context.
  - userID: the authenticated caller.
  - novelID: the novel to favourite.

Returns:
  - error: NotFound when the novel does not exist, Conflict when it is
    already in the library, or a database error.
*/
func (service *Service) Add(context context.Context, userID, novelID string) error {
	exists, err := service.repository.NovelExists(context, novelID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("novel")
	}

	added, err := service.repository.Add(context, userID, novelID)
	if err != nil {
		return err
	}
	if !added {
		return apperr.Conflict("Novel is already in favourites")
	}

	service.logger.Info("novel_favourited",
		slog.String("user_id", userID),
		slog.String("novel_id", novelID),
	)

	return nil
}

// Remove takes a novel out of the caller's library. Removing a novel that is
// not in the library is a conflict, not a silent success.
func (service *Service) Remove(context context.Context, userID, novelID string) error {
	removed, err := service.repository.Remove(context, userID, novelID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.Conflict("Novel is not in favourites")
	}

	service.logger.Info("novel_unfavourited",
		slog.String("user_id", userID),
		slog.String("novel_id", novelID),
	)

	return nil
}
