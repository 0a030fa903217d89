// Copyright (c) 2026 Riwaya. All rights reserved.

// Package pointer provides generic helpers for optional (pointer) values.
//
// Partial-update payloads model "field absent" as a nil pointer; these
// helpers keep the dereferencing boilerplate out of service code.
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value of T if p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback dereferences p, returning fallback if p is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
