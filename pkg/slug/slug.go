// Copyright (c) 2026 Riwaya. All rights reserved.

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// Slugs serve as human-readable identifiers for novels (e.g.
// "the-wandering-inn"). Titles arrive in Arabic, English, and mixed scripts;
// the pipeline normalizes, strips accents, and sanitizes to [a-z0-9-].
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any leftover non-slug character sequence.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses consecutive hyphens.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// Pipeline: NFD decomposition, combining-mark removal, lowercasing,
// non-alphanumeric replacement, hyphen cleanup. Strings with no ASCII
// representation (pure Arabic titles, for instance) produce an empty slug;
// callers must fall back to an ID-based identifier in that case.
func From(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}
