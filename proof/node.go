package proof

import (
	"fmt"
	"strings"

	"github.com/brevis-logic/fitch/debug"
	"github.com/brevis-logic/fitch/format"
	"github.com/brevis-logic/fitch/prop"
	"github.com/brevis-logic/fitch/rule"
)

// Node is one application of an inference rule: what it proves, which
// rule justifies it, its ordered subproofs, and the assumption it
// discharges, if any.
//
// Only the outer node of a subderivation carries Assumption; its
// Subproofs are understood to have been proven with Assumption
// additionally in scope.
type Node struct {
	Claim      *prop.Formula
	Rule       rule.Rule
	Subproofs  []*Node
	Assumption *prop.Formula
}

// Reiterate builds a Reiteration leaf citing claim.
func Reiterate(claim *prop.Formula) *Node {
	return &Node{Claim: claim, Rule: rule.Reiteration}
}

// Size is the proof-size metric of spec.md §4.3:
//
//	size(node) = 1 + (1 if node.Assumption != nil else 0) + Σ size(child)
//
// A Reiteration node (no subproofs, no assumption) has size 1.
func (n *Node) Size() int {
	size := 1
	if n.Assumption != nil {
		size++
	}
	for _, sub := range n.Subproofs {
		size += sub.Size()
	}
	return size
}

// Equal is structural equality on (Assumption, Subproofs, Claim, Rule)
// over an entire proof tree. The Fitch arranger's own dedup compares
// claims alone (fitch.findStmt, per spec.md §9); Equal is the coarser,
// whole-tree comparison used to assert two independently constructed
// proofs are identical.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if !n.Assumption.Equal(o.Assumption) {
		return false
	}
	if !n.Claim.Equal(o.Claim) {
		return false
	}
	if n.Rule != o.Rule {
		return false
	}
	if len(n.Subproofs) != len(o.Subproofs) {
		return false
	}
	for i := range n.Subproofs {
		if !n.Subproofs[i].Equal(o.Subproofs[i]) {
			return false
		}
	}
	return true
}

// DebugString renders the recursive "prove <claim> via rule: ..." tree
// form used while tracing search, as opposed to the linear Fitch
// rendering produced by the fitch package. Ported from the original
// prove-tree dump (original_source/prove.py's Proof.pretty).
func (n *Node) DebugString() string {
	text := fmt.Sprintf("prove <%s> via %s", format.Formula(n.Claim), n.Rule)
	if n.Assumption != nil {
		text = fmt.Sprintf("assuming <%s>, %s", format.Formula(n.Assumption), text)
	}
	if len(n.Subproofs) > 0 {
		subtexts := make([]string, len(n.Subproofs))
		for i, sub := range n.Subproofs {
			subtexts[i] = sub.DebugString()
		}
		text += ":\n" + debug.Indent(strings.Join(subtexts, "\n"), "|   ")
	}
	return text
}
