// Copyright (c) 2026 Riwaya. All rights reserved.

// Package convert provides fault-tolerant string conversions for handler code.
//
// It wraps [strconv] so that query and path parameters degrade to zero values
// or explicit defaults instead of producing an error branch at every call
// site. Do not use it where malformed input must be distinguished from a
// genuine zero; decode and validate explicitly instead.
package convert

import "strconv"

// ToInt converts a string to an integer, returning 0 on empty or malformed input.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	v, _ := strconv.Atoi(s)
	return v
}

// ToIntD converts a string to an int, returning def on empty or malformed input.
func ToIntD(s string, def int) int {
	if s == "" {
		return def
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v
	}

	return def
}

// ToBool parses a boolean string ("true", "1", "false", "0"), false on failure.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}
