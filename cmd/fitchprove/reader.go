package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/brevis-logic/fitch/prop"
)

// ReadFormula parses s as a propositional formula using the operator
// table of spec.md §6 (¬ - ~ !, ∧ & . ^, ∨ |, → >, ↔ =, ⊥ _, brackets
// ( ) [ ] { }), ported from original_source/parse.py's recursive-descent
// structure. This is not a general-purpose parser: it exists solely to
// give the CLI something to accept on a command line, per spec.md's
// Non-goals.
//
// Unlike the original, identifiers may be more than one character (any
// run of characters other than whitespace and the reserved operator and
// bracket glyphs), so a
// formula can name variables like "rain" rather than only single
// letters. Binary operators are right-associative and have no relative
// precedence among themselves, exactly as the original has none: "a > b
// > c" parses as "a > (b > c)". Negation is ported faithfully too,
// quirk included: its operand is a full recursive parse of whatever
// follows, not just the next simple term, so "-a & b" parses as
// "-(a & b)" rather than "(-a) & b". Parenthesize explicitly
// ("(-a) & b") to get the tighter reading.
func ReadFormula(s string) (*prop.Formula, error) {
	rd := &reader{runes: []rune(s)}
	f, err := rd.top()
	if err != nil {
		return nil, err
	}
	rd.skipSpace()
	if rd.pos != len(rd.runes) {
		return nil, fmt.Errorf("reader: unexpected trailing input %q", string(rd.runes[rd.pos:]))
	}
	return f, nil
}

const (
	openChars     = "([{"
	closeChars    = ")]}"
	notChars      = "¬~-!"
	andChars      = "∧&.^"
	orChars       = "∨|"
	impliesChars  = "→>"
	iffChars      = "↔="
	bottomChars   = "⊥_"
	reservedChars = openChars + closeChars + notChars + andChars + orChars + impliesChars + iffChars + bottomChars
)

type reader struct {
	runes []rune
	pos   int
}

func (r *reader) skipSpace() {
	for r.pos < len(r.runes) && unicode.IsSpace(r.runes[r.pos]) {
		r.pos++
	}
}

func (r *reader) peek() (rune, bool) {
	r.skipSpace()
	if r.pos >= len(r.runes) {
		return 0, false
	}
	return r.runes[r.pos], true
}

func (r *reader) advance() rune {
	c := r.runes[r.pos]
	r.pos++
	return c
}

// top parses a formula, attempting a trailing binary operator after the
// leading simple term.
func (r *reader) top() (*prop.Formula, error) {
	left, err := r.simple()
	if err != nil {
		return nil, err
	}

	c, ok := r.peek()
	if !ok {
		return left, nil
	}

	switch {
	case strings.ContainsRune(impliesChars, c):
		r.advance()
		right, err := r.top()
		if err != nil {
			return nil, err
		}
		return prop.Implies(left, right), nil
	case strings.ContainsRune(iffChars, c):
		r.advance()
		right, err := r.top()
		if err != nil {
			return nil, err
		}
		return prop.Iff(left, right), nil
	case strings.ContainsRune(orChars, c):
		r.advance()
		right, err := r.top()
		if err != nil {
			return nil, err
		}
		return prop.Or(left, right), nil
	case strings.ContainsRune(andChars, c):
		r.advance()
		right, err := r.top()
		if err != nil {
			return nil, err
		}
		return prop.And(left, right), nil
	default:
		return left, nil
	}
}

// simple parses anything but a trailing binary operator: a bracketed
// group, a negation, the falsum constant, or an identifier.
func (r *reader) simple() (*prop.Formula, error) {
	c, ok := r.peek()
	if !ok {
		return nil, fmt.Errorf("reader: unexpected end of input")
	}

	switch {
	case strings.ContainsRune(openChars, c):
		r.advance()
		inner, err := r.top()
		if err != nil {
			return nil, err
		}
		closer, ok := r.peek()
		if !ok || !strings.ContainsRune(closeChars, closer) {
			return nil, fmt.Errorf("reader: missing closing bracket after %v", inner)
		}
		r.advance()
		return inner, nil

	case strings.ContainsRune(notChars, c):
		r.advance()
		child, err := r.top()
		if err != nil {
			return nil, err
		}
		return prop.Not(child), nil

	case strings.ContainsRune(bottomChars, c):
		r.advance()
		return prop.Bot(), nil

	case strings.ContainsRune(closeChars, c):
		return nil, fmt.Errorf("reader: unexpected closing bracket %q", c)

	default:
		return r.identifier()
	}
}

func (r *reader) identifier() (*prop.Formula, error) {
	start := r.pos
	for r.pos < len(r.runes) {
		c := r.runes[r.pos]
		if unicode.IsSpace(c) || strings.ContainsRune(reservedChars, c) {
			break
		}
		r.pos++
	}
	if r.pos == start {
		return nil, fmt.Errorf("reader: unexpected character %q", r.runes[start])
	}
	return prop.Var(string(r.runes[start:r.pos])), nil
}
