// Copyright (c) 2026 Riwaya. All rights reserved.

package schema

// CoreTagTable represents the 'core.tag' table
type CoreTagTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// CoreTag is the schema definition for core.tag
var CoreTag = CoreTagTable{
	Table:     "core.tag",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t CoreTagTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt}
}
