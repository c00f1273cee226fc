package fitch

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/brevis-logic/fitch/debug"
	"github.com/brevis-logic/fitch/format"
	"github.com/brevis-logic/fitch/rule"
)

// ColorAttr names what part of a Stmt a color applies to.
type ColorAttr int

const (
	ClaimColor ColorAttr = iota
	RuleColor
)

// Colorable keys Colors.Map: a rule category paired with the part of
// the line being colored.
type Colorable struct {
	Category rule.Category
	Attr     ColorAttr
}

// Colors holds the color function for each (category, attribute) pair
// a Fitch line can need, plus fixed colors for line numbers and the
// block bar. Grounded on
// go-tony/encode/encode_colors.go's Colorable/ColorAttr/Colors design,
// retargeted from IR node types to proof rule categories.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
	LineNo  func(string, ...any) string
	Bar     func(string, ...any) string
}

func colorDefault(v string, _ ...any) string { return v }

// NewColors builds the default color scheme: introductions in green,
// eliminations in cyan, reiterations dimmed, assumptions in yellow.
func NewColors() *Colors {
	c := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}

	c.Map[Colorable{rule.IntroductionCategory, ClaimColor}] = color.GreenString
	c.Map[Colorable{rule.IntroductionCategory, RuleColor}] = color.New(color.FgGreen, color.Bold).SprintfFunc()

	c.Map[Colorable{rule.EliminationCategory, ClaimColor}] = color.CyanString
	c.Map[Colorable{rule.EliminationCategory, RuleColor}] = color.New(color.FgCyan, color.Bold).SprintfFunc()

	c.Map[Colorable{rule.ReiterationCategory, ClaimColor}] = color.New(color.FgHiBlack).SprintfFunc()
	c.Map[Colorable{rule.ReiterationCategory, RuleColor}] = color.New(color.FgHiBlack).SprintfFunc()

	c.Map[Colorable{rule.AssumptionCategory, ClaimColor}] = color.YellowString
	c.Map[Colorable{rule.AssumptionCategory, RuleColor}] = color.New(color.FgYellow, color.Bold).SprintfFunc()

	c.LineNo = color.New(color.FgHiBlack).SprintfFunc()
	c.Bar = color.New(color.FgHiBlack).SprintfFunc()
	return c
}

// Get returns the color function for (cat, a), falling back to
// Default if none was registered.
func (c *Colors) Get(cat rule.Category, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{cat, a}]
	if f == nil {
		return c.Default
	}
	return f
}

// Color applies the color registered for (cat, a) to s.
func (c *Colors) Color(cat rule.Category, a ColorAttr, s string) string {
	return c.Get(cat, a)(s)
}

// renderLine walks l and renders it with glyph set g, optionally
// applying ANSI color via c. c may be nil, in which case no color is
// applied and this is equivalent to the plain Pretty() walk, just with
// a chosen glyph set instead of always Unicode.
func renderLine(l Line, g format.Glyphs, c *Colors) string {
	switch v := l.(type) {
	case *Stmt:
		return lineStmt(v, g, c)
	case *Bunch:
		parts := make([]string, len(v.Body))
		for i, b := range v.Body {
			parts[i] = renderLine(b, g, c)
		}
		return strings.Join(parts, "\n")
	case *Block:
		bar, barPrefix := "───", "│"
		if c != nil {
			bar, barPrefix = c.Bar(bar), c.Bar(barPrefix)
		}
		lines := make([]string, 0, len(v.Body)+2)
		lines = append(lines, " "+lineStmt(v.Assumption, g, c))
		lines = append(lines, bar)
		for _, b := range v.Body {
			if _, ok := b.(*Stmt); ok {
				lines = append(lines, " "+renderLine(b, g, c))
			} else {
				lines = append(lines, renderLine(b, g, c))
			}
		}
		return debug.Indent(strings.Join(lines, "\n"), barPrefix)
	default:
		panic(ErrUnreachable)
	}
}

func lineStmt(s *Stmt, g format.Glyphs, c *Colors) string {
	cat := s.Rule.Category()
	lineNo := fmt.Sprintf("%d.", s.LineNo)
	claim := g.Formula(s.Claim)
	glyph := s.Rule.GlyphWith(g)
	if c != nil {
		lineNo = c.LineNo(lineNo)
		claim = c.Color(cat, ClaimColor, claim)
		glyph = c.Color(cat, RuleColor, glyph)
	}

	var prereqs string
	if len(s.Prereqs) > 0 {
		spans := make([]string, len(s.Prereqs))
		for i, p := range s.Prereqs {
			spans[i] = spanOf(p)
		}
		prereqs = ":" + strings.Join(spans, ",")
	}
	return fmt.Sprintf("%s %s  [%s%s]", lineNo, claim, glyph, prereqs)
}
