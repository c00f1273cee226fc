package search

import (
	"github.com/brevis-logic/fitch/proof"
	"github.com/brevis-logic/fitch/prop"
	"github.com/brevis-logic/fitch/rule"
)

// rawGen produces the subproofs for one rule application, or reports
// failure. It is the Go analogue of an undecorated generator function
// in original_source/prove.py.
type rawGen func(goal *prop.Formula, assumptions []*prop.Formula, size int) ([]*proof.Node, bool)

// genFunc produces a complete proof node for one rule, or reports
// failure. asRule turns a rawGen into a genFunc.
type genFunc func(goal *prop.Formula, assumptions []*prop.Formula, size int) (*proof.Node, bool)

// withMinSize mirrors original_source/prove.py's min_size decorator.
func withMinSize(min int, f rawGen) rawGen {
	return func(goal *prop.Formula, assumptions []*prop.Formula, size int) ([]*proof.Node, bool) {
		if size < min {
			return nil, false
		}
		return f(goal, assumptions, size)
	}
}

// withExactSize mirrors original_source/prove.py's exact_size decorator.
func withExactSize(exact int, f rawGen) rawGen {
	return func(goal *prop.Formula, assumptions []*prop.Formula, size int) ([]*proof.Node, bool) {
		if size != exact {
			return nil, false
		}
		return f(goal, assumptions, size)
	}
}

// withKind mirrors original_source/prove.py's prop_kind decorator: the
// generator only applies when the goal has the given formula kind.
func withKind(k prop.Kind, f rawGen) rawGen {
	return func(goal *prop.Formula, assumptions []*prop.Formula, size int) ([]*proof.Node, bool) {
		if goal.Kind != k {
			return nil, false
		}
		return f(goal, assumptions, size)
	}
}

// asRule mirrors original_source/prove.py's proofify decorator: wraps a
// successful subproof list into a Node claiming goal via r.
func asRule(r rule.Rule, f rawGen) genFunc {
	return func(goal *prop.Formula, assumptions []*prop.Formula, size int) (*proof.Node, bool) {
		subs, ok := f(goal, assumptions, size)
		if !ok {
			return nil, false
		}
		return &proof.Node{Claim: goal, Rule: r, Subproofs: subs}, true
	}
}
