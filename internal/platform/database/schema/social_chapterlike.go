// Copyright (c) 2026 Riwaya. All rights reserved.

package schema

// SocialChapterLikeTable represents the 'social.chapterlike' table
type SocialChapterLikeTable struct {
	Table     string
	UserID    string
	ChapterID string
	CreatedAt string
}

// SocialChapterLike is the schema definition for social.chapterlike
var SocialChapterLike = SocialChapterLikeTable{
	Table:     "social.chapterlike",
	UserID:    "userid",
	ChapterID: "chapterid",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t SocialChapterLikeTable) Columns() []string {
	return []string{t.UserID, t.ChapterID, t.CreatedAt}
}
