package fitch

import (
	"fmt"
	"strconv"

	"github.com/brevis-logic/fitch/format"
	"github.com/brevis-logic/fitch/prop"
	"github.com/brevis-logic/fitch/rule"
)

// Line is one of Stmt, Bunch, or Block, the three shapes a lowered
// Fitch proof is built from. Only Stmt and Block are ever cited as a
// prerequisite; Bunch is purely a container, flattened away into its
// parent's line list by Arrange.
type Line interface {
	StmtCount() int
	Pretty() string
}

// Stmt is a single numbered line: a claim, the rule that justifies it,
// and the lines it cites.
type Stmt struct {
	Prereqs []Line
	Claim   *prop.Formula
	Rule    rule.Rule
	LineNo  int
}

func (s *Stmt) StmtCount() int { return 1 }

// Span is the citation text for s: its line number alone.
func (s *Stmt) Span() string { return strconv.Itoa(s.LineNo) }

func (s *Stmt) Pretty() string {
	return lineStmt(s, format.UnicodeGlyphs, nil)
}

// Bunch is a flat run of lines with no assumption of their own. It is
// the top-level shape of a proof with no outermost assumption, and is
// otherwise always flattened into its parent before rendering.
type Bunch struct {
	Body []Line
}

func (b *Bunch) StmtCount() int {
	count := 0
	for _, l := range b.Body {
		count += l.StmtCount()
	}
	return count
}

func (b *Bunch) Pretty() string {
	return renderLine(b, format.UnicodeGlyphs, nil)
}

// Block is an indented subderivation: an assumption line followed by
// its body, rendered with a left bar and a separator under the
// assumption.
type Block struct {
	Assumption *Stmt
	Body       []Line
}

func (b *Block) StmtCount() int {
	count := 1 // the assumption line
	for _, l := range b.Body {
		count += l.StmtCount()
	}
	return count
}

// Span is the citation text for a whole subderivation: its first line
// through its last, e.g. "2-4". A block whose body is empty (the
// "assuming X, prove X" shape, whose sole reiteration renders no body
// line) degenerates to citing its own assumption line at both ends,
// e.g. "1-1".
func (b *Block) Span() string {
	return fmt.Sprintf("%d-%d", b.Assumption.LineNo, lastLineNo(b))
}

// lastLineNo returns the line number of the last rendered line within
// b: the line number of its final body entry (recursing through a
// trailing nested Block), or b's own assumption line if its body is
// empty.
func lastLineNo(b *Block) int {
	if len(b.Body) == 0 {
		return b.Assumption.LineNo
	}
	last := b.Body[len(b.Body)-1]
	if blk, ok := last.(*Block); ok {
		return lastLineNo(blk)
	}
	stmt, ok := last.(*Stmt)
	if !ok {
		panic(ErrUnreachable)
	}
	return stmt.LineNo
}

func (b *Block) Pretty() string {
	return renderLine(b, format.UnicodeGlyphs, nil)
}

// spanOf returns the citation text for a prerequisite line: a Block
// cites its full range, anything else (a Stmt) cites its own line.
func spanOf(l Line) string {
	switch v := l.(type) {
	case *Stmt:
		return v.Span()
	case *Block:
		return v.Span()
	default:
		panic(ErrUnreachable)
	}
}
