// Copyright (c) 2026 Riwaya. All rights reserved.

package auth

import (
	"context"
	"time"
)

// UserRepository is the persistent identity store.
type UserRepository interface {
	Create(context context.Context, user *User) error
	FindByID(context context.Context, id string) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	FindByUsername(context context.Context, username string) (*User, error)
	UpdatePassword(context context.Context, userID string, passwordHash string) error
}

// SessionRepository tracks which accounts hold a live login session. A missing
// record means every token for that account is dead, regardless of its
// cryptographic validity.
type SessionRepository interface {
	Set(context context.Context, userID string, ttl time.Duration) error
	Exists(context context.Context, userID string) (bool, error)
	Delete(context context.Context, userID string) error
}
