// Copyright (c) 2026 Riwaya. All rights reserved.

package schema

// CoreNovelTagTable represents the 'core.noveltag' join table
type CoreNovelTagTable struct {
	Table   string
	NovelID string
	TagID   string
}

// CoreNovelTag is the schema definition for core.noveltag
var CoreNovelTag = CoreNovelTagTable{
	Table:   "core.noveltag",
	NovelID: "novelid",
	TagID:   "tagid",
}

// Columns returns all standard column names
func (t CoreNovelTagTable) Columns() []string {
	return []string{t.NovelID, t.TagID}
}
