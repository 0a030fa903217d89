// Copyright (c) 2026 Riwaya. All rights reserved.

/*
Package favourites implements the personal reading library.

A favourite is a (user, novel) edge in library.favourite. The listing joins
back to the catalog so clients receive full novel cards, not bare IDs.
*/
package favourites

import (
	"context"

	"github.com/riwaya/riwaya/internal/novels"
	"github.com/riwaya/riwaya/pkg/pagination"
)

// Repository persists the favourites library.
type Repository interface {
	// List returns the caller's favourited novels, newest first by default.
	List(context context.Context, userID string, directive pagination.Directive) ([]*novels.Novel, int, error)

	// Add creates the edge, returning false if it already existed.
	Add(context context.Context, userID, novelID string) (bool, error)

	// Remove deletes the edge, returning false if it was absent.
	Remove(context context.Context, userID, novelID string) (bool, error)

	// NovelExists reports whether the novel is in the catalog.
	NovelExists(context context.Context, novelID string) (bool, error)
}
