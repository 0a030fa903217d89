// Copyright (c) 2026 Riwaya. All rights reserved.

package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table     string
	ID        string
	UserID    string
	ChapterID string
	Body      string
	CreatedAt string
	UpdatedAt string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:     "social.comment",
	ID:        "id",
	UserID:    "userid",
	ChapterID: "chapterid",
	Body:      "body",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t SocialCommentTable) Columns() []string {
	return []string{t.ID, t.UserID, t.ChapterID, t.Body, t.CreatedAt, t.UpdatedAt}
}
