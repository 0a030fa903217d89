// Copyright (c) 2026 Riwaya. All rights reserved.

package novels

// Validation field identifiers.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategoryID  = "categoryId"
	FieldStatus      = "status"
	FieldCover       = "cover"
	FieldTagName     = "name"
)
