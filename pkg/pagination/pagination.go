// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
// Every list view in the platform derives skip/limit and the page count from
// [Paginate] so the arithmetic is identical everywhere.
package pagination

import (
	"net/http"

	"github.com/taibuivan/yomitube/pkg/convert"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of records to skip, as computed by [Paginate].
func (p Params) Offset() int {
	return Paginate(p.Page, p.Limit, 0).Skip
}

// Normalize coerces page and limit into the accepted range.
//
// # Clamping
//
// Non-positive values fall back to [DefaultPage] and [DefaultLimit]; a limit
// above [MaxLimit] is clamped to [MaxLimit].
func Normalize(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: convert.Clamp(limit, 1, MaxLimit)}
}

// Parse builds [Params] from raw query-string values. Non-numeric input is
// treated as absent.
func Parse(rawPage, rawLimit string) Params {
	return Normalize(convert.ToIntD(rawPage, DefaultPage), convert.ToIntD(rawLimit, DefaultLimit))
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
func FromRequest(r *http.Request) Params {
	query := r.URL.Query()
	return Parse(query.Get("page"), query.Get("limit"))
}

// Window is the result of applying the pagination policy to a result set.
type Window struct {
	Skip       int
	Limit      int
	Page       int
	TotalPages int
}

// Paginate computes the skip offset and page count for the requested page.
// Skip is (page-1)*limit after normalization.
//
//	Paginate(2, 10, 25) // Window{Skip: 10, Limit: 10, Page: 2, TotalPages: 3}
func Paginate(page, limit, total int) Window {
	params := Normalize(page, limit)
	return Window{
		Skip:       (params.Page - 1) * params.Limit,
		Limit:      params.Limit,
		Page:       params.Page,
		TotalPages: TotalPages(total, params.Limit),
	}
}

// TotalPages returns ceil(total/limit), or 0 when there is nothing to page.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Meta is the pagination block included in API list responses.
type Meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// NewMeta constructs pagination metadata for a response from [Paginate].
func NewMeta(params Params, total int) Meta {
	window := Paginate(params.Page, params.Limit, total)
	return Meta{
		Total: total,
		Page:  window.Page,
		Pages: window.TotalPages,
	}
}

// Page is a paginated list payload: the items plus the pagination block.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Pagination Meta `json:"pagination"`
}

// NewPage wraps items and metadata. A nil slice is replaced by an empty one
// so clients always receive a JSON array.
func NewPage[T any](items []T, params Params, total int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Pagination: NewMeta(params, total)}
}
