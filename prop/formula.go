package prop

// Formula is a propositional formula: a tagged value with up to two
// children, depending on Kind. Formulas are immutable once constructed
// and compare by structure via Equal, never by pointer identity.
type Formula struct {
	Kind Kind

	// Name holds the identifier for NameKind formulas; empty otherwise.
	Name string

	// Left is the unary operand for NotKind, or the left operand of a
	// binary connective. Nil for NameKind and BottomKind.
	Left *Formula

	// Right is the right operand of a binary connective. Nil otherwise.
	Right *Formula
}

// Var constructs a propositional variable.
func Var(name string) *Formula {
	return &Formula{Kind: NameKind, Name: name}
}

// Bot constructs the falsum constant.
func Bot() *Formula {
	return &Formula{Kind: BottomKind}
}

// Not constructs a negation.
func Not(child *Formula) *Formula {
	return &Formula{Kind: NotKind, Left: child}
}

// And constructs a conjunction.
func And(left, right *Formula) *Formula {
	return &Formula{Kind: AndKind, Left: left, Right: right}
}

// Or constructs a disjunction.
func Or(left, right *Formula) *Formula {
	return &Formula{Kind: OrKind, Left: left, Right: right}
}

// Implies constructs an implication.
func Implies(left, right *Formula) *Formula {
	return &Formula{Kind: ImpliesKind, Left: left, Right: right}
}

// Iff constructs a biconditional.
func Iff(left, right *Formula) *Formula {
	return &Formula{Kind: IffKind, Left: left, Right: right}
}

// Contained returns the operand of a unary formula. Panics if f is not
// unary (i.e. not NotKind).
func (f *Formula) Contained() *Formula {
	if f.Kind != NotKind {
		panic("prop: Contained called on non-unary formula")
	}
	return f.Left
}

// Equal reports whether f and o have the same structure. Two formulas
// with different Kind, Name, or children are unequal; nil compares equal
// only to nil.
func (f *Formula) Equal(o *Formula) bool {
	if f == nil || o == nil {
		return f == o
	}
	if f == o {
		return true
	}
	if f.Kind != o.Kind {
		return false
	}
	switch f.Kind {
	case NameKind:
		return f.Name == o.Name
	case BottomKind:
		return true
	case NotKind:
		return f.Left.Equal(o.Left)
	default:
		return f.Left.Equal(o.Left) && f.Right.Equal(o.Right)
	}
}

// Contains reports whether needle is structurally equal to some member
// of haystack.
func Contains(haystack []*Formula, needle *Formula) bool {
	for _, f := range haystack {
		if f.Equal(needle) {
			return true
		}
	}
	return false
}

// Clone returns a deep, independent copy of f.
func (f *Formula) Clone() *Formula {
	if f == nil {
		return nil
	}
	return &Formula{
		Kind:  f.Kind,
		Name:  f.Name,
		Left:  f.Left.Clone(),
		Right: f.Right.Clone(),
	}
}
