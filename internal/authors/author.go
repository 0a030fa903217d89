// Copyright (c) 2026 Riwaya. All rights reserved.

package authors

// Author is the public face of an account in the author directory.
type Author struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Username       string  `json:"username"`
	AvatarURL      *string `json:"avatarUrl"`
	Bio            *string `json:"bio"`
	FollowersCount int64   `json:"followersCount"`
	NovelsCount    int64   `json:"novelsCount"`
}
