// Package common provides shared types and helpers for dashboard features.
package common

// DefaultSelectionSize is how many distinct locations the sidebar selects
// on first visit.
const DefaultSelectionSize = 5

// Selection is the sidebar location filter for one request. Explicit is
// true when the request carried filter parameters (even an empty set, which
// means "show everything" under the fallback-to-all policy); when false the
// selection came from the session or the first-five default.
type Selection struct {
	Locations []string
	Explicit  bool
}
