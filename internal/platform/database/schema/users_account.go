// Copyright (c) 2026 Riwaya. All rights reserved.

// Package schema centralizes table and column identifiers so that SQL in the
// store layer never hard-codes raw strings.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table           string
	ID              string
	Name            string
	Username        string
	Email           string
	Password        string
	Role            string
	AvatarURL       string
	Bio             string
	FollowersCount  string
	FollowingsCount string
	NovelsCount     string
	CreatedAt       string
	UpdatedAt       string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:           "users.account",
	ID:              "id",
	Name:            "name",
	Username:        "username",
	Email:           "email",
	Password:        "passwordhash",
	Role:            "role",
	AvatarURL:       "avatarurl",
	Bio:             "bio",
	FollowersCount:  "followerscount",
	FollowingsCount: "followingscount",
	NovelsCount:     "novelscount",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Username, t.Email, t.Password, t.Role,
		t.AvatarURL, t.Bio, t.FollowersCount, t.FollowingsCount,
		t.NovelsCount, t.CreatedAt, t.UpdatedAt,
	}
}
