// Package model defines the content documents behind the portfolio site:
// one document per domain (profile, classroom, brainpop, techiebites,
// timepass, general), each fetched and saved as a whole unit.
//
// Every document type provides the same three behaviours:
//
//   - Default constructors return a fresh, fully-shaped value. Each call
//     allocates its own nested slices, so two documents never share state.
//   - Normalize() coerces a partially-populated document (decoded from an
//     external store that may be missing fields) into the full default
//     shape: zero-valued fields take their defaults, nil collections
//     become empty ones, and children are normalized recursively. It is
//     total and idempotent.
//   - Validate() returns the ordered list of human-readable problems;
//     an empty list means the document can be saved. Parent validators
//     recurse into child collections and prefix each child's errors with
//     a label (type, 1-based position, title or "Untitled") so the
//     flattened list stays traceable.
package model

import (
	"reflect"
	"strings"
)

// Document is the behaviour shared by all six content documents.
// The service layer works against this interface; handlers and the
// repository never see concrete document types.
type Document interface {
	// Normalize fills the receiver into its full default shape.
	Normalize()
	// Validate reports all problems, in field order, children last.
	Validate() []string
	// IsEmpty reports whether the document carries no data at all,
	// the result of decoding "{}" or an absent store entry. An empty
	// document is a load failure, not a valid empty state.
	IsEmpty() bool
}

// isZero reports whether the struct pointed to by doc is its zero value.
// A freshly decoded "{}" leaves every field at zero (nil slices included),
// which is exactly the "no data yet" case the editors must reject.
func isZero(doc any) bool {
	return reflect.ValueOf(doc).Elem().IsZero()
}

// orUntitled labels a child item in a validation message.
func orUntitled(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Untitled"
	}
	return title
}

// ensure returns s unchanged when non-nil, else a fresh empty slice.
// Keeps normalized documents free of nil collections so they always
// encode as JSON arrays, never null.
func ensure[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// compact drops whitespace-only entries from a string list, preserving
// the order of the rest. Mirrors the pre-save filtering the profile
// editor applies to highlights, interests, and similar chip lists.
func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
