// Copyright (c) 2026 Riwaya. All rights reserved.

package auth

import (
	"time"

	"github.com/riwaya/riwaya/internal/platform/sec"
)

// User is the identity-layer view of an account. Profile-heavy fields live in
// the users package; auth only needs what registration and login touch.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	AvatarURL    *string      `json:"avatarUrl"`
	CreatedAt    time.Time    `json:"createdAt"`
}
