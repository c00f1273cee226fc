package prop

import "errors"

var (
	errInternal = errors.New("internal error")

	// ErrBadFormula names a malformed formula (e.g. wrong arity for a
	// kind). The constructors in this package do not validate their
	// arguments and never return it.
	ErrBadFormula = errors.New("bad formula")
)
