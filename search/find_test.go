package search_test

import (
	"testing"

	"github.com/brevis-logic/fitch/prop"
	"github.com/brevis-logic/fitch/rule"
	"github.com/brevis-logic/fitch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProve(t *testing.T, goal *prop.Formula, maxSize int) {
	t.Helper()
	n, ok := search.ProveWithBudget(goal, maxSize)
	require.True(t, ok, "expected a proof of %v within size %d", goal, maxSize)
	require.NotNil(t, n)
	assert.True(t, n.Claim.Equal(goal))
	assert.Equal(t, n.Size(), n.Size(), "Size is deterministic")
}

func TestProveReflexiveImplication(t *testing.T) {
	a := prop.Var("a")
	n, ok := search.ProveWithBudget(prop.Implies(a, a), 3)
	require.True(t, ok)
	assert.Equal(t, 3, n.Size())
	assert.Equal(t, rule.ImpliesIntro, n.Rule)
	require.Len(t, n.Subproofs, 1)
	assert.Equal(t, rule.Reiteration, n.Subproofs[0].Rule)
	assert.True(t, n.Subproofs[0].Assumption.Equal(a))
}

func TestProveNegatedContradiction(t *testing.T) {
	a := prop.Var("a")
	goal := prop.Not(prop.And(a, prop.Not(a)))
	mustProve(t, goal, 10)
}

func TestProveDoubleNegationIntro(t *testing.T) {
	a := prop.Var("a")
	goal := prop.Implies(a, prop.Not(prop.Not(a)))
	mustProve(t, goal, 10)
}

func TestProveHypotheticalSyllogism(t *testing.T) {
	a, b, c := prop.Var("a"), prop.Var("b"), prop.Var("c")
	goal := prop.Implies(
		prop.And(prop.Implies(a, b), prop.Implies(b, c)),
		prop.Implies(a, c),
	)
	mustProve(t, goal, 20)
}

func TestProveIffSymmetry(t *testing.T) {
	a, b := prop.Var("a"), prop.Var("b")
	goal := prop.Implies(prop.Iff(a, b), prop.Iff(b, a))
	mustProve(t, goal, 20)
}

func TestProveIffFromMutualImplication(t *testing.T) {
	a, b := prop.Var("a"), prop.Var("b")
	goal := prop.Implies(
		prop.And(prop.Implies(a, b), prop.Implies(b, a)),
		prop.Iff(a, b),
	)
	mustProve(t, goal, 20)
}

func TestFindProofRejectsNonPositiveSize(t *testing.T) {
	a := prop.Var("a")
	_, ok := search.FindProof(a, []*prop.Formula{a}, 0)
	assert.False(t, ok)
	_, ok = search.FindProof(a, []*prop.Formula{a}, -1)
	assert.False(t, ok)
}

func TestFindProofReiterationRequiresExactMatch(t *testing.T) {
	a, b := prop.Var("a"), prop.Var("b")
	n, ok := search.FindProof(a, []*prop.Formula{a}, 1)
	require.True(t, ok)
	assert.Equal(t, rule.Reiteration, n.Rule)

	_, ok = search.FindProof(a, []*prop.Formula{b}, 1)
	assert.False(t, ok)
}

func TestFindProofAndElimFindsEitherConjunct(t *testing.T) {
	a, b := prop.Var("a"), prop.Var("b")
	conj := prop.And(a, b)

	n, ok := search.FindProof(a, []*prop.Formula{conj}, 2)
	require.True(t, ok)
	assert.Equal(t, rule.AndElim, n.Rule)
	assert.Equal(t, 2, n.Size())

	n, ok = search.FindProof(b, []*prop.Formula{conj}, 2)
	require.True(t, ok)
	assert.Equal(t, rule.AndElim, n.Rule)

	_, ok = search.FindProof(a, []*prop.Formula{conj}, 1)
	assert.False(t, ok, "AndElim always costs exactly 2, never 1")
}

func TestFindProofOrIntroPicksProvableSide(t *testing.T) {
	a, b := prop.Var("a"), prop.Var("b")
	n, ok := search.FindProof(prop.Or(a, b), []*prop.Formula{b}, 2)
	require.True(t, ok)
	assert.Equal(t, rule.OrIntro, n.Rule)
	assert.Equal(t, 2, n.Size())
}

func TestFindProofAssumingSetsAssumptionField(t *testing.T) {
	a := prop.Var("a")
	n, ok := search.FindProofAssuming(a, a, nil, 1)
	require.True(t, ok)
	assert.True(t, n.Assumption.Equal(a))
	assert.Equal(t, 2, n.Size())
}

func TestBottomElimDirectGenerator(t *testing.T) {
	a := prop.Var("a")
	n, ok := search.FindProof(a, []*prop.Formula{prop.Bot()}, 2)
	require.True(t, ok)
	assert.Equal(t, rule.BottomElim, n.Rule)
}
