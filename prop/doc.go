// Package prop provides the formula model for zeroth-order (propositional)
// logic.
//
// A Formula is a tagged value: a propositional variable, the falsum
// constant, a negation, or one of the four binary connectives. Formulas
// are immutable once built and compare by structure, not identity.
//
//	a := prop.Var("a")
//	f := prop.Implies(a, prop.Not(prop.Not(a)))
//	f.Equal(prop.Implies(prop.Var("a"), prop.Not(prop.Not(prop.Var("a"))))) // true
//
// This package contains no search or proof logic; see the search and
// proof packages for that.
package prop
