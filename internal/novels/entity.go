// Copyright (c) 2026 Riwaya. All rights reserved.

package novels

import "time"

// Novel is a serialized work owned by one account and organized in chapters.
// The *Count fields are denormalized and maintained alongside the flows that
// change them.
type Novel struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"authorId"`
	CategoryID    int       `json:"categoryId"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description"`
	CoverURL      string    `json:"coverUrl"`
	Status        string    `json:"status"`
	ViewsCount    int64     `json:"viewsCount"`
	LikesCount    int64     `json:"likesCount"`
	ChaptersCount int64     `json:"chaptersCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Tags is populated on detail queries.
	Tags []Tag `json:"tags,omitempty"`
}

// Tag is a free-form label attached to novels.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Publication states.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusHiatus    = "hiatus"
)
