// Package fitch lowers a recursive proof.Node into a flat, numbered
// Fitch-style presentation: nested assumptions become indented blocks,
// reiterations and already-derived claims are resolved to citations of
// existing lines instead of being re-derived.
package fitch
