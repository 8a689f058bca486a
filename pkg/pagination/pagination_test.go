// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomitube/pkg/pagination"
)

/*
TestPaginate covers the skip and page-count arithmetic.
*/
func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		wantSkip   int
		wantLimit  int
		wantPages  int
		wantPageNo int
	}{
		{"second_page", 2, 10, 25, 10, 10, 3, 2},
		{"first_page", 1, 10, 25, 0, 10, 3, 1},
		{"exact_multiple", 3, 5, 15, 10, 5, 3, 3},
		{"empty_collection", 1, 10, 0, 0, 10, 0, 1},
		{"zero_page_defaults", 0, 10, 5, 0, 10, 1, 1},
		{"negative_limit_defaults", 1, -4, 25, 0, 10, 3, 1},
		{"limit_clamped", 1, 1000, 250, 0, 100, 3, 1},
		{"page_past_end", 9, 10, 25, 80, 10, 3, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := pagination.Paginate(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.wantSkip, window.Skip)
			assert.Equal(t, tt.wantLimit, window.Limit)
			assert.Equal(t, tt.wantPages, window.TotalPages)
			assert.Equal(t, tt.wantPageNo, window.Page)
		})
	}
}

/*
TestPaginate_SkipUsesLimit guards against deriving the offset from the page
number alone.
*/
func TestPaginate_SkipUsesLimit(t *testing.T) {
	window := pagination.Paginate(2, 10, 25)

	assert.Equal(t, 10, window.Skip)
	assert.NotEqual(t, (2-1)*2, window.Skip)
}

/*
TestParse verifies coercion of raw query-string input.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		rawPage   string
		rawLimit  string
		wantPage  int
		wantLimit int
	}{
		{"empty", "", "", 1, 10},
		{"numeric", "3", "20", 3, 20},
		{"non_numeric", "abc", "x", 1, 10},
		{"negative", "-2", "-1", 1, 10},
		{"over_max", "1", "500", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.Parse(tt.rawPage, tt.rawLimit)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestFromRequest(t *testing.T) {
	request := httptest.NewRequest("GET", "/videos?page=4&limit=25", nil)

	params := pagination.FromRequest(request)

	assert.Equal(t, 4, params.Page)
	assert.Equal(t, 25, params.Limit)
	assert.Equal(t, 75, params.Offset())
}

/*
TestNewPage verifies the list payload shape.
*/
func TestNewPage(t *testing.T) {
	page := pagination.NewPage[string](nil, pagination.Params{Page: 1, Limit: 10}, 0)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, pagination.Meta{Total: 0, Page: 1, Pages: 0}, page.Pagination)

	page = pagination.NewPage([]string{"a", "b"}, pagination.Params{Page: 1, Limit: 2}, 5)
	assert.Equal(t, pagination.Meta{Total: 5, Page: 1, Pages: 3}, page.Pagination)
}

func TestParams_AgreeWithPaginate(t *testing.T) {
	for _, tc := range []struct{ page, limit, total int }{
		{1, 10, 0}, {2, 10, 25}, {3, 7, 20}, {9, 100, 50},
	} {
		params := pagination.Normalize(tc.page, tc.limit)
		window := pagination.Paginate(tc.page, tc.limit, tc.total)

		assert.Equal(t, window.Skip, params.Offset())
		assert.Equal(t, pagination.Meta{Total: tc.total, Page: window.Page, Pages: window.TotalPages}, pagination.NewMeta(params, tc.total))
	}
}
