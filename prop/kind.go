package prop

import "fmt"

// Kind tags the shape of a Formula.
type Kind int

const (
	NameKind Kind = iota
	BottomKind
	NotKind
	AndKind
	OrKind
	ImpliesKind
	IffKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NameKind:    "Name",
		BottomKind:  "Bottom",
		NotKind:     "Not",
		AndKind:     "And",
		OrKind:      "Or",
		ImpliesKind: "Implies",
		IffKind:     "Iff",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Name":    NameKind,
		"Bottom":  BottomKind,
		"Not":     NotKind,
		"And":     AndKind,
		"Or":      OrKind,
		"Implies": ImpliesKind,
		"Iff":     IffKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized formula kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NameKind,
		BottomKind,
		NotKind,
		AndKind,
		OrKind,
		ImpliesKind,
		IffKind,
	}
}

// Arity returns the number of children a formula of this kind carries.
func (k Kind) Arity() int {
	switch k {
	case NameKind, BottomKind:
		return 0
	case NotKind:
		return 1
	case AndKind, OrKind, ImpliesKind, IffKind:
		return 2
	default:
		panic("kind")
	}
}

// IsBinary reports whether the kind is a two-child connective.
func (k Kind) IsBinary() bool {
	return k.Arity() == 2
}
