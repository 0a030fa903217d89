// Copyright (c) 2026 Riwaya. All rights reserved.

package auth

// Validation field identifiers.
const (
	FieldName     = "name"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldLogin    = "login"
)
