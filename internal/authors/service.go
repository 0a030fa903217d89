// Copyright (c) 2026 Riwaya. All rights reserved.

package authors

import (
	"context"

	"github.com/riwaya/riwaya/pkg/pagination"
)

// MostPopularLimit caps the size of the popular-authors listing.
const MostPopularLimit = 10

// Service exposes the author directory.
type Service struct {
	repository Repository
}

// NewService creates a new authors Service.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
List returns a page of publishing accounts.

Parameters:
  - context: request-scoped context.
  - request: raw list parameters from the query string.

Returns:
  - []*Author: the requested page.
  - pagination.Meta: page metadata for the response envelope.
  - error: a database error, if any.
*/
func (service *Service) List(context context.Context, request pagination.Request) ([]*Author, pagination.Meta, error) {
	directive := pagination.Resolve(request)

	list, total, err := service.repository.List(context, directive)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return list, directive.Summary(total), nil
}

// MostPopular returns the most-followed publishing accounts.
func (service *Service) MostPopular(context context.Context) ([]*Author, error) {
	return service.repository.MostPopular(context, MostPopularLimit)
}
