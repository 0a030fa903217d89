// Copyright (c) 2026 Riwaya. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation, ordering, and search are
// requested via query parameters and how the resulting summary is delivered
// in the API response envelope. Every list endpoint (users, authors, novels,
// categories, tags) resolves its raw parameters through [Resolve] so that
// defaults and clamping behave identically across the whole API.
package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 200
	// DefaultOrderBy is the column used when no explicit ordering is requested.
	DefaultOrderBy = "id"
	// DefaultOrderDir is the direction used when no explicit ordering is requested.
	DefaultOrderDir = "desc"
)

// Request holds the raw, optional list parameters parsed from a query string.
//
// Zero values mean "not supplied" and are replaced with defaults by [Resolve].
type Request struct {
	Page     int
	Limit    int
	OrderBy  string
	OrderDir string
	Search   string

	// SkipLimit disables paging entirely: the caller fetches every matching
	// row. It is a deliberate escape hatch for exports and full listings.
	SkipLimit bool
}

// Directive is the canonical query directive produced by [Resolve].
//
// It is a pure value: stores translate it into ORDER BY / LIMIT / OFFSET
// clauses without further interpretation.
type Directive struct {
	Page     int
	Limit    int
	Skip     int
	OrderBy  string
	OrderDir string
	Search   string

	// SkipLimit mirrors [Request.SkipLimit]. When true, Skip is zero and the
	// store must omit the row cap entirely.
	SkipLimit bool
}

// Resolve translates a raw [Request] into a [Directive].
//
// # Rules
//
//   - Absent (zero) inputs map to [DefaultPage], [DefaultLimit],
//     [DefaultOrderBy], [DefaultOrderDir].
//   - Limit is clamped to [MaxLimit]; unbounded client limits are a
//     resource-exhaustion risk.
//   - Skip = (page-1) * limit, except when SkipLimit is set, in which case
//     Skip is zero and no row cap applies.
//   - OrderDir is normalized to "asc" or "desc".
//
// Resolve is a pure function: no side effects, deterministic given inputs.
func Resolve(req Request) Directive {
	page := req.Page
	if page < 1 {
		page = DefaultPage
	}

	limit := req.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	orderBy := req.OrderBy
	if orderBy == "" {
		orderBy = DefaultOrderBy
	}

	orderDir := strings.ToLower(req.OrderDir)
	if orderDir != "asc" {
		orderDir = DefaultOrderDir
	}

	skip := (page - 1) * limit
	if req.SkipLimit {
		skip = 0
	}

	return Directive{
		Page:      page,
		Limit:     limit,
		Skip:      skip,
		OrderBy:   orderBy,
		OrderDir:  orderDir,
		Search:    req.Search,
		SkipLimit: req.SkipLimit,
	}
}

// Order returns the column to sort by, restricted to an allow-list.
//
// OrderBy arrives as a free-form field name from the client; passing it
// straight into SQL would allow query errors or injection via field name.
// Each resource declares its sortable columns and anything else falls back
// to [DefaultOrderBy].
func (d Directive) Order(allowed ...string) string {
	for _, column := range allowed {
		if d.OrderBy == column {
			return column
		}
	}
	return DefaultOrderBy
}

// Meta is the pagination summary included in API list responses.
type Meta struct {
	TotalItems      int  `json:"totalItems"`
	TotalPages      int  `json:"totalPages"`
	CurrentPage     int  `json:"currentPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Summary constructs the pagination metadata for a response.
//
// totalPages = ceil(totalItems / limit). When the directive is unbounded
// (SkipLimit), everything fits on a single page. The default limit is applied
// BEFORE the division, never as a fallback on its result.
func (d Directive) Summary(totalItems int) Meta {
	limit := d.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	totalPages := 1
	if !d.SkipLimit {
		totalPages = (totalItems + limit - 1) / limit
	}

	return Meta{
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		CurrentPage:     d.Page,
		HasNextPage:     d.Page < totalPages,
		HasPreviousPage: d.Page > 1,
	}
}

// FromRequest parses the uniform list query parameters from an HTTP request.
//
// Recognized parameters: search, page, limit, orderBy, orderType, skipLimit.
// Invalid values are treated as absent and fall back to defaults in [Resolve].
func FromRequest(r *http.Request) Request {
	q := r.URL.Query()

	skipLimit, _ := strconv.ParseBool(q.Get("skipLimit"))

	return Request{
		Page:      parseIntParam(q.Get("page")),
		Limit:     parseIntParam(q.Get("limit")),
		OrderBy:   q.Get("orderBy"),
		OrderDir:  q.Get("orderType"),
		Search:    q.Get("search"),
		SkipLimit: skipLimit,
	}
}

// parseIntParam parses a single integer query parameter, zero on failure.
func parseIntParam(raw string) int {
	if raw == "" {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return n
}
