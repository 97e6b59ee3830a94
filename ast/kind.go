package ast

import "fmt"

type Kind int

const (
	DocumentKind Kind = iota
	ElementKind
	TextKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		DocumentKind: "document",
		ElementKind:  "element",
		TextKind:     "text",
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
		"document": DocumentKind,
		"element":  ElementKind,
		"text":     TextKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		DocumentKind,
		ElementKind,
		TextKind,
	}
}

func (k Kind) IsLeaf() bool {
	return k == TextKind
}
