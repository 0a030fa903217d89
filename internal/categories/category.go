// Copyright (c) 2026 Riwaya. All rights reserved.

package categories

import "time"

// Category is a curated top-level shelf novels are filed under. Unlike tags,
// categories are a closed set managed by moderators.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}
