// Copyright (c) 2026 Riwaya. All rights reserved.

package users

// Validation field identifiers.
const (
	FieldName            = "name"
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldBio             = "bio"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
)
