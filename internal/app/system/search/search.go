// internal/app/system/search/search.go
package search

import (
	"net/http"
	"sort"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
)

// Any is the category value that disables a category filter.
const Any = "all"

// Query is an entity-agnostic list request: free text, named category
// filters, named boolean flags and a page window.
type Query struct {
	Text     string
	Filters  map[string]string
	Flags    map[string]bool
	Page     int
	PageSize int
}

// Schema declares which parts of T a Query may look at.
//
// Fields returns the strings the free-text search runs over. Categories maps
// a filter name to the attribute it compares. Flags maps a flag name to the
// predicate an entity must satisfy when the flag is set.
type Schema[T any] struct {
	Fields     func(T) []string
	Categories map[string]func(T) string
	Flags      map[string]func(T) bool
}

// Validate rejects filter and flag names the schema does not declare.
func (s Schema[T]) Validate(q Query) error {
	for name := range q.Filters {
		if _, ok := s.Categories[name]; !ok {
			return apperr.InvalidInput(name, "unknown filter "+name)
		}
	}
	for name := range q.Flags {
		if _, ok := s.Flags[name]; !ok {
			return apperr.InvalidInput(name, "unknown flag "+name)
		}
	}
	return nil
}

// FromRequest reads a Query for s from r: "search" holds the text, every
// declared category and flag is read under its own name. Flags are set only
// for the literal value "true". Page and PageSize are left for the caller.
func (s Schema[T]) FromRequest(r *http.Request) Query {
	q := Query{
		Text:    query.Search(r, "search"),
		Filters: map[string]string{},
		Flags:   map[string]bool{},
	}
	for name := range s.Categories {
		if v := strings.TrimSpace(query.Get(r, name)); v != "" {
			q.Filters[name] = v
		}
	}
	for name := range s.Flags {
		if query.Get(r, name) == "true" {
			q.Flags[name] = true
		}
	}
	return q
}

// Apply returns the entities of items satisfying every criterion of q, in
// their original order. items is never modified.
//
// Flags and categories are checked before the text predicate since they are
// a single comparison each.
func Apply[T any](items []T, q Query, s Schema[T]) ([]T, error) {
	if err := s.Validate(q); err != nil {
		return nil, err
	}

	preds := make([]func(T) bool, 0, len(q.Flags)+len(q.Filters)+1)
	for _, name := range sortedKeys(q.Flags) {
		if q.Flags[name] {
			preds = append(preds, s.Flags[name])
		}
	}
	for _, name := range sortedKeys(q.Filters) {
		want := strings.TrimSpace(q.Filters[name])
		if want == "" || strings.EqualFold(want, Any) {
			continue
		}
		get := s.Categories[name]
		preds = append(preds, func(v T) bool {
			return strings.EqualFold(get(v), want)
		})
	}
	if needle := strings.ToLower(strings.TrimSpace(q.Text)); needle != "" && s.Fields != nil {
		preds = append(preds, func(v T) bool {
			for _, f := range s.Fields(v) {
				if strings.Contains(strings.ToLower(f), needle) {
					return true
				}
			}
			return false
		})
	}

	out := make([]T, 0, len(items))
next:
	for _, v := range items {
		for _, p := range preds {
			if !p(v) {
				continue next
			}
		}
		out = append(out, v)
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
