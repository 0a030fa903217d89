// Copyright (c) 2026 Riwaya. All rights reserved.

package schema

// SocialChapterViewTable represents the 'social.chapterview' table
type SocialChapterViewTable struct {
	Table     string
	UserID    string
	ChapterID string
	CreatedAt string
}

// SocialChapterView is the schema definition for social.chapterview
var SocialChapterView = SocialChapterViewTable{
	Table:     "social.chapterview",
	UserID:    "userid",
	ChapterID: "chapterid",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t SocialChapterViewTable) Columns() []string {
	return []string{t.UserID, t.ChapterID, t.CreatedAt}
}
