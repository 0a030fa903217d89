// Copyright (c) 2026 Riwaya. All rights reserved.

package users

import (
	"context"

	"github.com/riwaya/riwaya/pkg/pagination"
)

// UpdateProfileInput carries the partial profile fields of an update. Nil
// means "leave unchanged".
type UpdateProfileInput struct {
	Name      *string
	Username  *string
	Email     *string
	Bio       *string
	AvatarURL *string
}

// Repository is the persistent store for profiles and the follow graph.
type Repository interface {
	FindByID(context context.Context, id string) (*User, error)
	FindByUsername(context context.Context, username string) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	List(context context.Context, directive pagination.Directive) ([]*User, int, error)
	UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*User, error)
	UpdatePassword(context context.Context, userID string, passwordHash string) error

	// Follow inserts the follow edge and bumps both counters in one
	// transaction. Reports false when the edge already existed.
	Follow(context context.Context, followerID, followingID string) (bool, error)

	// Unfollow removes the edge and decrements both counters (clamped at
	// zero) in one transaction. Reports false when there was no edge.
	Unfollow(context context.Context, followerID, followingID string) (bool, error)
}
