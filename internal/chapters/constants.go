// Copyright (c) 2026 Riwaya. All rights reserved.

package chapters

// Validation field identifiers.
const (
	FieldTitle = "title"
	FieldBody  = "body"
)
