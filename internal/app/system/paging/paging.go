// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
)

// Defaults used when the app config does not override them.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is one window of an already filtered, ordered list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Params is a validated page request.
type Params struct {
	Page     int
	PageSize int
}

// Paginate slices items into the 1-based page of size pageSize.
// A page past the end yields empty Items with the correct totals.
// items is never modified; Items is a copy.
func Paginate[T any](items []T, page, pageSize int) (Page[T], error) {
	if page < 1 {
		return Page[T]{}, apperr.InvalidInput("page", "page must be at least 1")
	}
	if pageSize < 1 {
		return Page[T]{}, apperr.InvalidInput("limit", "limit must be at least 1")
	}

	total := len(items)
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	out := Page[T]{
		Items:      []T{},
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}

	// page <= pages keeps (page-1)*pageSize below total.
	if page > pages {
		return out, nil
	}
	start := (page - 1) * pageSize
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}
	out.Items = append(out.Items, items[start:end]...)
	return out, nil
}

// ParseParams reads the "page" and "limit" query parameters. Missing values
// default to page 1 and defaultSize; a limit above maxSize is capped.
// Non-numeric or non-positive values are rejected.
func ParseParams(r *http.Request, defaultSize, maxSize int) (Params, error) {
	p := Params{Page: 1, PageSize: defaultSize}

	if s := query.Get(r, "page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Params{}, apperr.InvalidInput("page", "page must be a positive integer")
		}
		p.Page = n
	}
	if s := query.Get(r, "limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Params{}, apperr.InvalidInput("limit", "limit must be a positive integer")
		}
		p.PageSize = n
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p, nil
}
