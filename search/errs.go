package search

import "errors"

var (
	// errInternal marks a search-engine invariant violation: FindProof
	// panics with it when a generator returns a proof whose Size() is not
	// the size it was asked for. It should
	// never surface to a caller; not-found-at-this-size is a plain
	// (nil, false) return, not an error.
	errInternal = errors.New("search: internal invariant violation")
)
