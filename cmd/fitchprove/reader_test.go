package main

import (
	"testing"

	"github.com/brevis-logic/fitch/format"
	"github.com/brevis-logic/fitch/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFormulaSimpleVariable(t *testing.T) {
	f, err := ReadFormula("a")
	require.NoError(t, err)
	assert.True(t, f.Equal(prop.Var("a")))
}

func TestReadFormulaMultiCharIdentifier(t *testing.T) {
	f, err := ReadFormula("rain")
	require.NoError(t, err)
	assert.True(t, f.Equal(prop.Var("rain")))
}

func TestReadFormulaImplicationASCII(t *testing.T) {
	f, err := ReadFormula("a > b")
	require.NoError(t, err)
	assert.True(t, f.Equal(prop.Implies(prop.Var("a"), prop.Var("b"))))
}

func TestReadFormulaUnicodeGlyphs(t *testing.T) {
	f, err := ReadFormula("a → a")
	require.NoError(t, err)
	assert.Equal(t, "a → a", format.Formula(f))
}

func TestReadFormulaRightAssociative(t *testing.T) {
	f, err := ReadFormula("a > b > c")
	require.NoError(t, err)
	a, b, c := prop.Var("a"), prop.Var("b"), prop.Var("c")
	assert.True(t, f.Equal(prop.Implies(a, prop.Implies(b, c))))
}

func TestReadFormulaNegationExtendsOverRemainder(t *testing.T) {
	// Negation's operand is a full recursive parse of what follows it,
	// not just the next simple term, matching the original reader: "-a &
	// b" parses as "-(a & b)", not "(-a) & b".
	f, err := ReadFormula("-a & b")
	require.NoError(t, err)
	want := prop.Not(prop.And(prop.Var("a"), prop.Var("b")))
	assert.True(t, f.Equal(want))
}

func TestReadFormulaNegationTighterWithExplicitParens(t *testing.T) {
	f, err := ReadFormula("(-a) & b")
	require.NoError(t, err)
	want := prop.And(prop.Not(prop.Var("a")), prop.Var("b"))
	assert.True(t, f.Equal(want))
}

func TestReadFormulaBrackets(t *testing.T) {
	f, err := ReadFormula("(a & b) > c")
	require.NoError(t, err)
	want := prop.Implies(prop.And(prop.Var("a"), prop.Var("b")), prop.Var("c"))
	assert.True(t, f.Equal(want))
}

func TestReadFormulaBottom(t *testing.T) {
	f, err := ReadFormula("(a & -a) > _")
	require.NoError(t, err)
	want := prop.Implies(prop.And(prop.Var("a"), prop.Not(prop.Var("a"))), prop.Bot())
	assert.True(t, f.Equal(want))
}

func TestReadFormulaRejectsTrailingGarbage(t *testing.T) {
	_, err := ReadFormula("a b")
	assert.Error(t, err)
}

func TestReadFormulaRejectsUnclosedBracket(t *testing.T) {
	_, err := ReadFormula("(a & b")
	assert.Error(t, err)
}

func TestReadFormulaRejectsEmptyInput(t *testing.T) {
	_, err := ReadFormula("")
	assert.Error(t, err)
}
