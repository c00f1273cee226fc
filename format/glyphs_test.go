package format_test

import (
	"testing"

	"github.com/brevis-logic/fitch/format"
	"github.com/brevis-logic/fitch/prop"
	"github.com/stretchr/testify/assert"
)

func TestFormulaPrecedence(t *testing.T) {
	a, b := prop.Var("a"), prop.Var("b")

	assert.Equal(t, "a", format.Formula(a))
	assert.Equal(t, "⊥", format.Formula(prop.Bot()))

	// unary Not binds tighter than any binary operator and adds no parens
	// of its own; a binary operand is parenthesized because it is not the
	// root.
	notAB := prop.Not(prop.And(a, b))
	assert.Equal(t, "¬(a ∧ b)", format.Formula(notAB))

	doubleNot := prop.Not(prop.Not(a))
	assert.Equal(t, "¬¬a", format.Formula(doubleNot))

	// every non-root binary application is parenthesized.
	nested := prop.Implies(prop.And(a, b), prop.Or(a, b))
	assert.Equal(t, "(a ∧ b) → (a ∨ b)", format.Formula(nested))

	// root binary application is not parenthesized.
	root := prop.And(a, b)
	assert.Equal(t, "a ∧ b", format.Formula(root))
}

func TestFormulaASCII(t *testing.T) {
	a, b := prop.Var("a"), prop.Var("b")
	f := prop.Implies(prop.Not(a), b)
	assert.Equal(t, "-a > b", format.FormulaASCII(f))
}
