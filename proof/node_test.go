package proof_test

import (
	"testing"

	"github.com/brevis-logic/fitch/proof"
	"github.com/brevis-logic/fitch/prop"
	"github.com/brevis-logic/fitch/rule"
	"github.com/stretchr/testify/assert"
)

func TestSizeReiteration(t *testing.T) {
	n := proof.Reiterate(prop.Var("a"))
	assert.Equal(t, 1, n.Size())
}

func TestSizeWithAssumptionAndChildren(t *testing.T) {
	a := prop.Var("a")
	// assuming <a>, prove <a & a> via and-intro: [re(a), re(a)]
	// size = 1 (and-intro) + 1 (assumption) + 1 + 1 = 4
	n := &proof.Node{
		Claim:      prop.And(a, a),
		Rule:       rule.AndIntro,
		Assumption: a,
		Subproofs: []*proof.Node{
			proof.Reiterate(a),
			proof.Reiterate(a),
		},
	}
	assert.Equal(t, 4, n.Size())
}

func TestEqualIgnoresNothingButStructure(t *testing.T) {
	a := prop.Var("a")
	n1 := &proof.Node{Claim: a, Rule: rule.Reiteration}
	n2 := &proof.Node{Claim: prop.Var("a"), Rule: rule.Reiteration}
	assert.True(t, n1.Equal(n2))

	n3 := &proof.Node{Claim: prop.Var("b"), Rule: rule.Reiteration}
	assert.False(t, n1.Equal(n3))
}

func TestDebugStringMentionsRuleAndClaim(t *testing.T) {
	a := prop.Var("a")
	n := proof.Reiterate(a)
	s := n.DebugString()
	assert.Contains(t, s, "Reiteration")
	assert.Contains(t, s, "a")
}
