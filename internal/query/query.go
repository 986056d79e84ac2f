// Package query filters in-memory collections with case-insensitive text predicates.
package query

import (
	"strings"

	"mfuertes.net/portfolio/internal/content"
)

// Predicate reports whether an item matches.
type Predicate[T any] func(T) bool

// Find returns the items matching pred in their original order. A nil
// predicate matches everything. The result is never nil.
func Find[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred == nil || pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Contains matches items whose field contains q, ignoring case. An empty q
// matches every item.
func Contains[T any](field func(T) string, q string) Predicate[T] {
	q = strings.ToLower(strings.TrimSpace(q))
	return func(it T) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(field(it)), q)
	}
}

// ContainsAny matches items where any of the fields contains q, ignoring case.
func ContainsAny[T any](q string, fields ...func(T) string) Predicate[T] {
	preds := make([]Predicate[T], 0, len(fields))
	for _, f := range fields {
		preds = append(preds, Contains(f, q))
	}
	return Any(preds...)
}

// Any matches items accepted by at least one of preds.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return func(it T) bool {
		for _, p := range preds {
			if p(it) {
				return true
			}
		}
		return false
	}
}

// TitleOrDescription matches records whose title or description contains q.
func TitleOrDescription(q string) Predicate[*content.Record] {
	return ContainsAny(q,
		func(r *content.Record) string { return r.Title },
		func(r *content.Record) string { return r.Description },
	)
}

// Records filters records by title or description.
func Records(records []*content.Record, q string) []*content.Record {
	return Find(records, TitleOrDescription(q))
}
