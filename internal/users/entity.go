// Copyright (c) 2026 Riwaya. All rights reserved.

package users

import (
	"time"

	"github.com/riwaya/riwaya/internal/platform/sec"
)

// User is the full profile view of an account, including the denormalized
// social counters maintained by the follow and novel flows.
type User struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Username        string       `json:"username"`
	Email           string       `json:"email"`
	PasswordHash    string       `json:"-"`
	Role            sec.UserRole `json:"role"`
	AvatarURL       *string      `json:"avatarUrl"`
	Bio             *string      `json:"bio"`
	FollowersCount  int64        `json:"followersCount"`
	FollowingsCount int64        `json:"followingsCount"`
	NovelsCount     int64        `json:"novelsCount"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// Public strips private fields for listings of other people's profiles.
type Public struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Username       string  `json:"username"`
	AvatarURL      *string `json:"avatarUrl"`
	Bio            *string `json:"bio"`
	FollowersCount int64   `json:"followersCount"`
	NovelsCount    int64   `json:"novelsCount"`
}

// AsPublic converts a full profile to its public projection.
func (u *User) AsPublic() Public {
	return Public{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		AvatarURL:      u.AvatarURL,
		Bio:            u.Bio,
		FollowersCount: u.FollowersCount,
		NovelsCount:    u.NovelsCount,
	}
}
