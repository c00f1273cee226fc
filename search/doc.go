// Package search implements the proof-search engine: iterative deepening
// over the proof-size metric, dispatched across twelve rule-specific
// generators plus a direct BottomElim generator tried last.
//
// The engine is a direct Go translation of the decorator-composed
// generator functions in original_source/prove.py (min_size, exact_size,
// prop_kind, proofify), expressed as Go higher-order functions instead
// of Python decorators; see decorators.go.
package search
