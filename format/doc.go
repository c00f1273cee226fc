// Package format maps formula and rule values to their printed glyphs.
//
// The canonical rendering uses the Unicode symbols ¬ ∧ ∨ → ↔ ⊥. An ASCII
// fallback table is also provided so that a parser can recognize the
// alternate spellings listed in spec.md §6, and so that callers that
// cannot emit Unicode (e.g. a plain-ASCII terminal) get a consistent
// rendering instead of mojibake.
package format
