package fitch_test

import (
	"testing"

	"github.com/brevis-logic/fitch/fitch"
	"github.com/brevis-logic/fitch/prop"
	"github.com/brevis-logic/fitch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReflexiveImplication(t *testing.T) {
	a := prop.Var("a")
	n, ok := search.ProveWithBudget(prop.Implies(a, a), 3)
	require.True(t, ok)

	got := fitch.Render(n)
	// The reiteration body ("assuming a, prove a") consumes no line
	// number of its own: the block's only line is its assumption, and
	// the conclusion cites it alone, span "1-1".
	want := "│ 1. a  [as]\n│───\n2. a → a  [→I:1-1]"
	assert.Equal(t, want, got)
}

func TestRenderDedupesRepeatedSubproof(t *testing.T) {
	a, b := prop.Var("a"), prop.Var("b")
	// A -> ((A | B) & (A | B)): and-intro's two branches derive the same
	// "A | B" twice; the second should cite the first's line instead of
	// re-deriving it.
	goal := prop.Implies(a, prop.And(prop.Or(a, b), prop.Or(a, b)))
	n, ok := search.ProveWithBudget(goal, 20)
	require.True(t, ok)

	rendered := fitch.Render(n)
	assert.Contains(t, rendered, "[as]")
	assert.Contains(t, rendered, "[∧I:2,2]")
	assert.NotPanics(t, func() { fitch.Arrange(n) })
}

func TestRenderASCIIUsesFallbackGlyphs(t *testing.T) {
	a := prop.Var("a")
	n, ok := search.ProveWithBudget(prop.Implies(a, a), 3)
	require.True(t, ok)

	// WithASCII only swaps the connective/rule glyphs for their ASCII
	// fallback spellings; the block bar and separator are layout, not
	// connectives, and stay the same box-drawing characters either way.
	got := fitch.Render(n, fitch.WithASCII())
	want := "│ 1. a  [as]\n│───\n2. a > a  [>I:1-1]"
	assert.Equal(t, want, got)
}

func TestRenderLineNumbersAreSequential(t *testing.T) {
	a, b, c := prop.Var("a"), prop.Var("b"), prop.Var("c")
	goal := prop.Implies(
		prop.And(prop.Implies(a, b), prop.Implies(b, c)),
		prop.Implies(a, c),
	)
	n, ok := search.ProveWithBudget(goal, 20)
	require.True(t, ok)
	assert.NotPanics(t, func() { fitch.Render(n) })
}
