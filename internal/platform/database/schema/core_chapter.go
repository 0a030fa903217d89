// Copyright (c) 2026 Riwaya. All rights reserved.

package schema

// CoreChapterTable represents the 'core.chapter' table
type CoreChapterTable struct {
	Table         string
	ID            string
	NovelID       string
	Number        string
	Title         string
	Content       string
	ViewsCount    string
	LikesCount    string
	CommentsCount string
	CreatedAt     string
	UpdatedAt     string
}

// CoreChapter is the schema definition for core.chapter
var CoreChapter = CoreChapterTable{
	Table:         "core.chapter",
	ID:            "id",
	NovelID:       "novelid",
	Number:        "number",
	Title:         "title",
	Content:       "content",
	ViewsCount:    "viewscount",
	LikesCount:    "likescount",
	CommentsCount: "commentscount",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t CoreChapterTable) Columns() []string {
	return []string{
		t.ID, t.NovelID, t.Number, t.Title, t.Content,
		t.ViewsCount, t.LikesCount, t.CommentsCount,
		t.CreatedAt, t.UpdatedAt,
	}
}
