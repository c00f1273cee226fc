package fitch

import (
	"github.com/brevis-logic/fitch/format"
	"github.com/brevis-logic/fitch/proof"
)

type renderConfig struct {
	glyphs format.Glyphs
	colors *Colors
}

// RenderOption configures Render.
type RenderOption func(*renderConfig)

// WithASCII renders using the ASCII fallback connective glyphs instead
// of Unicode.
func WithASCII() RenderOption {
	return func(c *renderConfig) { c.glyphs = format.ASCIIGlyphs }
}

// WithColor renders with ANSI color applied per rule.Category, via c.
// Passing a nil c is a no-op (equivalent to omitting the option).
func WithColor(c *Colors) RenderOption {
	return func(rc *renderConfig) { rc.colors = c }
}

// Render lowers n and renders it as Fitch-style text: Unicode glyphs,
// uncolored, unless overridden by opts.
func Render(n *proof.Node, opts ...RenderOption) string {
	cfg := renderConfig{glyphs: format.UnicodeGlyphs}
	for _, opt := range opts {
		opt(&cfg)
	}
	return renderLine(Arrange(n), cfg.glyphs, cfg.colors)
}

// RenderColor lowers n and renders it with c applying ANSI color to
// each line's number, claim, and rule glyph, and to the block bars;
// citations are left uncolored. Pass nil to fall back
// to Render's plain output. Equivalent to Render(n, WithColor(c)).
func RenderColor(n *proof.Node, c *Colors) string {
	return Render(n, WithColor(c))
}
