package format

import (
	"strings"

	"github.com/brevis-logic/fitch/prop"
)

// Canonical Unicode glyphs for the connectives and falsum.
const (
	Not     = "¬"
	And     = "∧"
	Or      = "∨"
	Implies = "→"
	Iff     = "↔"
	Bottom  = "⊥"
)

// ASCII fallback glyphs, in the order spec.md §6 lists them (first
// listed is used as the canonical ASCII spelling; the rest are
// recognized-but-not-emitted alternates belonging to a future parser).
var (
	NotASCII     = []string{"-", "~", "!"}
	AndASCII     = []string{"&", ".", "^"}
	OrASCII      = []string{"|"}
	ImpliesASCII = []string{">"}
	IffASCII     = []string{"="}
	BottomASCII  = []string{"_"}
)

// Glyphs bundles a complete glyph set for rendering. Use UnicodeGlyphs or
// ASCIIGlyphs, or build a custom set.
type Glyphs struct {
	Not, And, Or, Implies, Iff, Bottom string
}

// UnicodeGlyphs is the canonical glyph set.
var UnicodeGlyphs = Glyphs{
	Not: Not, And: And, Or: Or, Implies: Implies, Iff: Iff, Bottom: Bottom,
}

// ASCIIGlyphs emits the first ASCII fallback spelling for each connective.
var ASCIIGlyphs = Glyphs{
	Not:     NotASCII[0],
	And:     AndASCII[0],
	Or:      OrASCII[0],
	Implies: ImpliesASCII[0],
	Iff:     IffASCII[0],
	Bottom:  BottomASCII[0],
}

func (g Glyphs) sigil(k prop.Kind) string {
	switch k {
	case prop.ImpliesKind:
		return g.Implies
	case prop.IffKind:
		return g.Iff
	case prop.OrKind:
		return g.Or
	case prop.AndKind:
		return g.And
	case prop.NotKind:
		return g.Not
	case prop.BottomKind:
		return g.Bottom
	default:
		panic("format: no sigil for " + k.String())
	}
}

// Formula renders f using the canonical Unicode glyph set.
func Formula(f *prop.Formula) string {
	return UnicodeGlyphs.Formula(f)
}

// FormulaASCII renders f using the ASCII fallback glyph set.
func FormulaASCII(f *prop.Formula) string {
	return ASCIIGlyphs.Formula(f)
}

// Formula renders f with this glyph set. Every non-root binary
// application is parenthesized; unary Not binds tighter than any binary
// operator and is never parenthesized around its own operand.
func (g Glyphs) Formula(f *prop.Formula) string {
	return g.formula(f, true)
}

func (g Glyphs) formula(f *prop.Formula, isRoot bool) string {
	switch f.Kind {
	case prop.BottomKind:
		return g.Bottom
	case prop.NameKind:
		return f.Name
	case prop.NotKind:
		return g.sigil(f.Kind) + g.formula(f.Left, false)
	default:
		var b strings.Builder
		if !isRoot {
			b.WriteByte('(')
		}
		b.WriteString(g.formula(f.Left, false))
		b.WriteByte(' ')
		b.WriteString(g.sigil(f.Kind))
		b.WriteByte(' ')
		b.WriteString(g.formula(f.Right, false))
		if !isRoot {
			b.WriteByte(')')
		}
		return b.String()
	}
}
