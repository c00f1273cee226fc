package fitch_test

import (
	"testing"

	"github.com/fatih/color"

	"github.com/brevis-logic/fitch/fitch"
	"github.com/brevis-logic/fitch/prop"
	"github.com/brevis-logic/fitch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderColorNilFallsBackToPlain(t *testing.T) {
	a := prop.Var("a")
	n, ok := search.ProveWithBudget(prop.Implies(a, a), 3)
	require.True(t, ok)

	assert.Equal(t, fitch.Render(n), fitch.RenderColor(n, nil))
}

func TestRenderColorProducesLongerOutput(t *testing.T) {
	// fatih/color disables escapes outright when it doesn't think it's
	// writing to a terminal, which is always true under `go test`.
	// Force it on for this assertion and restore it afterward.
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	a := prop.Var("a")
	n, ok := search.ProveWithBudget(prop.Implies(a, a), 3)
	require.True(t, ok)

	colored := fitch.RenderColor(n, fitch.NewColors())
	plain := fitch.Render(n)
	assert.Greater(t, len(colored), len(plain), "ANSI escapes should make the colored render strictly longer")
}
