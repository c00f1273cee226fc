package prop_test

import (
	"testing"

	"github.com/brevis-logic/fitch/prop"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestEqualStructural(t *testing.T) {
	a := prop.Var("a")
	b := prop.Var("b")

	f1 := prop.Implies(prop.And(a, b), prop.Not(a))
	f2 := prop.Implies(prop.And(prop.Var("a"), prop.Var("b")), prop.Not(prop.Var("a")))

	assert.True(t, f1.Equal(f2))
	assert.False(t, f1.Equal(prop.Implies(prop.And(b, a), prop.Not(a))))
}

func TestEqualNilHandling(t *testing.T) {
	assert.True(t, (*prop.Formula)(nil).Equal(nil))
	assert.False(t, prop.Bot().Equal(nil))
}

func TestCloneIsIndependent(t *testing.T) {
	a := prop.Var("a")
	f := prop.Not(a)
	clone := f.Clone()
	assert.True(t, f.Equal(clone))
	clone.Left.Name = "b"
	assert.False(t, f.Equal(clone))
}

func TestContains(t *testing.T) {
	a, b, c := prop.Var("a"), prop.Var("b"), prop.Var("c")
	set := []*prop.Formula{a, b}
	assert.True(t, prop.Contains(set, prop.Var("a")))
	assert.False(t, prop.Contains(set, c))
}

func TestKindArity(t *testing.T) {
	if diff := cmp.Diff(0, prop.NameKind.Arity()); diff != "" {
		t.Errorf("NameKind arity mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, prop.NotKind.Arity())
	assert.Equal(t, 2, prop.AndKind.Arity())
	assert.True(t, prop.AndKind.IsBinary())
	assert.False(t, prop.NotKind.IsBinary())
}
