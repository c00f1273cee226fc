package fitch

import "errors"

// ErrUnreachable marks a fatal invariant violation in the arranger: a
// reiteration citing a claim that isn't actually in scope, or a prereq
// line that is neither a Stmt nor a Block. Search only ever hands
// Arrange a well-formed proof.Node, so this should never surface; it
// is not a validation error callers are expected to handle.
var ErrUnreachable = errors.New("fitch: unreachable")
