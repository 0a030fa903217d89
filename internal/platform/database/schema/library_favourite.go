// Copyright (c) 2026 Riwaya. All rights reserved.

package schema

// LibraryFavouriteTable represents the 'library.favourite' table
type LibraryFavouriteTable struct {
	Table     string
	UserID    string
	NovelID   string
	CreatedAt string
}

// LibraryFavourite is the schema definition for library.favourite
var LibraryFavourite = LibraryFavouriteTable{
	Table:     "library.favourite",
	UserID:    "userid",
	NovelID:   "novelid",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t LibraryFavouriteTable) Columns() []string {
	return []string{t.UserID, t.NovelID, t.CreatedAt}
}
