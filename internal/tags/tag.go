// Copyright (c) 2026 Riwaya. All rights reserved.

package tags

import "time"

// Tag is a free-form label attached to novels by their authors. Tags are
// created through the novel routes; this package manages the existing set.
type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
