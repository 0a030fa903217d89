// Copyright (c) 2026 Riwaya. All rights reserved.

package schema

// CoreNovelTable represents the 'core.novel' table
type CoreNovelTable struct {
	Table         string
	ID            string
	AuthorID      string
	CategoryID    string
	Title         string
	Slug          string
	Description   string
	CoverURL      string
	Status        string
	ViewsCount    string
	LikesCount    string
	ChaptersCount string
	CreatedAt     string
	UpdatedAt     string
}

// CoreNovel is the schema definition for core.novel
var CoreNovel = CoreNovelTable{
	Table:         "core.novel",
	ID:            "id",
	AuthorID:      "authorid",
	CategoryID:    "categoryid",
	Title:         "title",
	Slug:          "slug",
	Description:   "description",
	CoverURL:      "coverurl",
	Status:        "status",
	ViewsCount:    "viewscount",
	LikesCount:    "likescount",
	ChaptersCount: "chapterscount",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t CoreNovelTable) Columns() []string {
	return []string{
		t.ID, t.AuthorID, t.CategoryID, t.Title, t.Slug, t.Description,
		t.CoverURL, t.Status, t.ViewsCount, t.LikesCount, t.ChaptersCount,
		t.CreatedAt, t.UpdatedAt,
	}
}
