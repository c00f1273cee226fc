package fitch

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/brevis-logic/fitch/debug"
	"github.com/brevis-logic/fitch/proof"
	"github.com/brevis-logic/fitch/prop"
	"github.com/brevis-logic/fitch/rule"
)

// Arrange lowers a recursive proof tree into its flat, numbered Fitch
// presentation, resolving reiterations and redundant re-derivations of
// an already-proven claim to citations of the existing line.
//
// Grounded on original_source/fitch.py's arrange/arrange_aux, with two
// corrections:
//
//   - that version's "not subproof.assumption" branch splices in a
//     nonexistent `block.lines` attribute (Bunch and Block only ever
//     define `.body`). Fixed here by flattening the Bunch's body into
//     the current scope and citing only its final, concluding line —
//     the one actually proving the subproof's claim — as the
//     prerequisite.
//   - that version treats any subproof tagged Reiteration as a bare
//     citation of an existing line, even when the subproof also
//     discharges a new assumption (the minimal "assume X, reiterate
//     X" shape produced whenever an introduction rule's inner proof is
//     itself trivial). Taken literally, that citation would look for X
//     in the *parent* scope, before X has even been assumed, and panic
//     on the simplest possible proofs (e.g. a -> a). Fixed here by
//     opening the assumption block first in that case, and only then
//     resolving the reiteration against the scope that now includes
//     the freshly-assumed line. Per spec.md's own worked example, this
//     reiteration consumes no line number of its own: the block's body
//     stays empty and its span degenerates to the assumption's own
//     line (see Block.Span's empty-body case), rather than padding the
//     proof with a redundant citation of the line just above it.
func Arrange(n *proof.Node) Line {
	cursor := 1
	return arrangeAux(n, nil, &cursor)
}

func arrangeAux(n *proof.Node, parentContext []Line, cursor *int) Line {
	var lines []Line
	var blockAssumption *Stmt

	if n.Assumption != nil {
		blockAssumption = &Stmt{
			Claim:  n.Assumption,
			Rule:   rule.Assumption,
			LineNo: takeLineNo(cursor),
		}
		lines = append(lines, blockAssumption)
	}

	scope := func() []Line {
		return append(append([]Line(nil), parentContext...), lines...)
	}

	finish := func(claim *prop.Formula, justification rule.Rule, prereqs []Line) Line {
		stmt := &Stmt{
			Prereqs: prereqs,
			Claim:   claim,
			Rule:    justification,
			LineNo:  takeLineNo(cursor),
		}
		lines = append(lines, stmt)
		if n.Assumption == nil {
			return &Bunch{Body: lines}
		}
		return &Block{Assumption: blockAssumption, Body: lines[1:]}
	}

	// n itself is a bare reiteration (possibly one that also discharges
	// a just-opened assumption): its justification is a citation of
	// whatever in scope already claims the same formula, not a recursive
	// search over subproofs (it has none).
	if n.Rule == rule.Reiteration {
		found := findStmt(scope(), n.Claim)
		if found == nil {
			panic(pkgerrors.Wrapf(ErrUnreachable, "reiteration of %v not in scope", n.Claim))
		}
		if n.Assumption != nil {
			// The sole content of a just-opened block is this
			// reiteration: the "assuming X, prove X" pattern (and its
			// generalization, reiterating a formula from further out
			// in scope). Per spec.md, this never gets its own line
			// number — the freshly-assumed line alone keeps the block
			// visually non-empty, and the block's span collapses to
			// just that line.
			return &Block{Assumption: blockAssumption, Body: nil}
		}
		return finish(n.Claim, n.Rule, []Line{found})
	}

	var prereqs []Line
	for _, sub := range n.Subproofs {
		if debug.Arrange() {
			debug.Logf("arrange: claim=%v rule=%v\n", sub.Claim, sub.Rule)
		}

		if sub.Rule == rule.Reiteration && sub.Assumption == nil {
			found := findStmt(scope(), sub.Claim)
			if found == nil {
				panic(pkgerrors.Wrapf(ErrUnreachable, "reiteration of %v not in scope", sub.Claim))
			}
			prereqs = append(prereqs, found)
			continue
		}

		if existing := findStmt(scope(), sub.Claim); existing != nil {
			prereqs = append(prereqs, existing)
			continue
		}

		child := arrangeAux(sub, scope(), cursor)
		if sub.Assumption == nil {
			bunch := child.(*Bunch)
			lines = append(lines, bunch.Body...)
			if len(bunch.Body) > 0 {
				prereqs = append(prereqs, bunch.Body[len(bunch.Body)-1])
			}
		} else {
			lines = append(lines, child)
			prereqs = append(prereqs, child)
		}
	}

	return finish(n.Claim, n.Rule, prereqs)
}

func takeLineNo(cursor *int) int {
	no := *cursor
	*cursor++
	return no
}

// findStmt looks for a Stmt claiming exactly claim among the directly
// visible lines — not descending into nested Blocks, since a block's
// interior is not citable from outside it.
func findStmt(lines []Line, claim *prop.Formula) *Stmt {
	for _, l := range lines {
		if s, ok := l.(*Stmt); ok && s.Claim.Equal(claim) {
			return s
		}
	}
	return nil
}
