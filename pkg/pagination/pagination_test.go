// Copyright (c) 2026 Riwaya. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riwaya/riwaya/pkg/pagination"
)

/*
TestResolve_Defaults verifies that a fully-absent request maps to the
documented defaults.
*/
func TestResolve_Defaults(t *testing.T) {
	d := pagination.Resolve(pagination.Request{})

	assert.Equal(t, 1, d.Page)
	assert.Equal(t, 10, d.Limit)
	assert.Equal(t, "id", d.OrderBy)
	assert.Equal(t, "desc", d.OrderDir)
	assert.Equal(t, 0, d.Skip)
	assert.False(t, d.SkipLimit)
}

/*
TestResolve_SkipFormula tests the OFFSET derivation, including the
skipLimit escape hatch.
*/
func TestResolve_SkipFormula(t *testing.T) {
	tests := []struct {
		name      string
		req       pagination.Request
		wantSkip  int
		unbounded bool
	}{
		{"third_page", pagination.Request{Page: 3, Limit: 10}, 20, false},
		{"first_page", pagination.Request{Page: 1, Limit: 25}, 0, false},
		{"skip_limit_ignores_page", pagination.Request{Page: 7, Limit: 10, SkipLimit: true}, 0, true},
		{"negative_page_clamped", pagination.Request{Page: -4, Limit: 10}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := pagination.Resolve(tt.req)
			assert.Equal(t, tt.wantSkip, d.Skip)
			assert.Equal(t, tt.unbounded, d.SkipLimit)
		})
	}
}

/*
TestResolve_LimitCeiling checks the hard cap on client-supplied limits.
*/
func TestResolve_LimitCeiling(t *testing.T) {
	d := pagination.Resolve(pagination.Request{Limit: 100000})
	assert.Equal(t, pagination.MaxLimit, d.Limit)
}

/*
TestResolve_OrderDirection normalizes arbitrary direction strings.
*/
func TestResolve_OrderDirection(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "desc"},
		{"asc", "asc"},
		{"ASC", "asc"},
		{"desc", "desc"},
		{"sideways", "desc"},
	}

	for _, tt := range tests {
		d := pagination.Resolve(pagination.Request{OrderDir: tt.in})
		assert.Equal(t, tt.want, d.OrderDir, "direction %q", tt.in)
	}
}

/*
TestDirective_Order enforces the per-resource allow-list for sort columns.
*/
func TestDirective_Order(t *testing.T) {
	d := pagination.Resolve(pagination.Request{OrderBy: "viewscount"})
	assert.Equal(t, "viewscount", d.Order("id", "title", "viewscount"))

	// Unknown columns fall back to the default rather than reaching SQL.
	hostile := pagination.Resolve(pagination.Request{OrderBy: "1; DROP TABLE core.novel"})
	assert.Equal(t, "id", hostile.Order("id", "title", "viewscount"))
}

/*
TestSummary covers the page-count arithmetic and boundary flags.
*/
func TestSummary(t *testing.T) {
	d := pagination.Resolve(pagination.Request{Page: 1, Limit: 10})
	meta := d.Summary(95)

	assert.Equal(t, 95, meta.TotalItems)
	assert.Equal(t, 10, meta.TotalPages)
	assert.False(t, meta.HasPreviousPage)
	assert.True(t, meta.HasNextPage)

	last := pagination.Resolve(pagination.Request{Page: 10, Limit: 10})
	lastMeta := last.Summary(95)
	assert.False(t, lastMeta.HasNextPage)
	assert.True(t, lastMeta.HasPreviousPage)
}

/*
TestSummary_DefaultLimitBeforeDivision pins the precedence: when no limit is
supplied, the default of 10 participates in the division. Attaching a fallback
to the division result instead of the limit would silently produce a broken
page count for requests that omit the limit.
*/
func TestSummary_DefaultLimitBeforeDivision(t *testing.T) {
	d := pagination.Resolve(pagination.Request{})
	require.Equal(t, 10, d.Limit)

	meta := d.Summary(45)
	assert.Equal(t, 5, meta.TotalPages)
}

/*
TestSummary_Unbounded: skipLimit result sets always fit a single page.
*/
func TestSummary_Unbounded(t *testing.T) {
	d := pagination.Resolve(pagination.Request{SkipLimit: true})
	meta := d.Summary(9999)

	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)
}

/*
TestFromRequest parses the uniform query parameter set.
*/
func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/novels?search=dune&page=3&limit=25&orderBy=title&orderType=asc&skipLimit=false", nil)

	req := pagination.FromRequest(r)
	assert.Equal(t, "dune", req.Search)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 25, req.Limit)
	assert.Equal(t, "title", req.OrderBy)
	assert.Equal(t, "asc", req.OrderDir)
	assert.False(t, req.SkipLimit)
}

/*
TestFromRequest_Garbage: malformed values behave as absent.
*/
func TestFromRequest_Garbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/novels?page=abc&limit=-5&skipLimit=banana", nil)

	d := pagination.Resolve(pagination.FromRequest(r))
	assert.Equal(t, 1, d.Page)
	assert.Equal(t, 10, d.Limit)
	assert.False(t, d.SkipLimit)
}
