package search_test

import (
	"testing"

	"github.com/brevis-logic/fitch/search"
	"github.com/stretchr/testify/assert"
)

func collect(n, k int) [][]int {
	var out [][]int
	for c := range search.Compositions(n, k) {
		cp := append([]int(nil), c...)
		out = append(out, cp)
	}
	return out
}

func TestCompositionsTwoParts(t *testing.T) {
	got := collect(4, 2)
	assert.Equal(t, [][]int{{1, 3}, {2, 2}, {3, 1}}, got)
}

func TestCompositionsOnePart(t *testing.T) {
	got := collect(5, 1)
	assert.Equal(t, [][]int{{5}}, got)
}

func TestCompositionsTooSmall(t *testing.T) {
	assert.Empty(t, collect(1, 2))
}

func TestCompositionsEarlyStop(t *testing.T) {
	var seen int
	for range search.Compositions(10, 2) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}
