// Copyright (c) 2026 Riwaya. All rights reserved.

package chapters

import "time"

// Chapter is one installment of a novel. Number is assigned sequentially per
// novel, starting at 1.
type Chapter struct {
	ID            string    `json:"id"`
	NovelID       string    `json:"novelId"`
	Number        int       `json:"number"`
	Title         string    `json:"title"`
	Content       *string   `json:"content"`
	ViewsCount    int64     `json:"viewsCount"`
	LikesCount    int64     `json:"likesCount"`
	CommentsCount int64     `json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Comment is a reader note on a chapter.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ChapterID string    `json:"chapterId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
