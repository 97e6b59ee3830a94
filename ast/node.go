package ast

// Node is a single value in a TAML syntax tree. The three kinds form a
// tagged union: documents and elements carry Children, text nodes carry
// Content, elements carry Tag. Start and End are offsets into the source
// text the node was parsed from; they are opaque to every operation here.
//
// Parent is a non-owning back-reference. It is nil exactly when the node is
// detached, and otherwise points to the container whose Children currently
// holds the node.
type Node struct {
	Kind     Kind
	Tag      string
	Content  string
	Parent   *Node
	Children []*Node

	Start, End int
}

// Doc constructs a document with zero span, attaching the given children.
func Doc(children ...*Node) *Node {
	return DocAt(0, 0, children...)
}

func DocAt(start, end int, children ...*Node) *Node {
	y := &Node{
		Kind:  DocumentKind,
		Start: start,
		End:   end,
	}
	for _, c := range children {
		y.Append(c)
	}
	return y
}

// Elem constructs an element with zero span, attaching the given children.
// The tag is not checked against the registry; callers that want validation
// use tag.IsValid before constructing.
func Elem(tag string, children ...*Node) *Node {
	return ElemAt(tag, 0, 0, children...)
}

func ElemAt(tag string, start, end int, children ...*Node) *Node {
	y := &Node{
		Kind:  ElementKind,
		Tag:   tag,
		Start: start,
		End:   end,
	}
	for _, c := range children {
		y.Append(c)
	}
	return y
}

// Text constructs a text leaf spanning [0, len(content)).
func Text(content string) *Node {
	return TextAt(content, 0, len(content))
}

func TextAt(content string, start, end int) *Node {
	return &Node{
		Kind:    TextKind,
		Content: content,
		Start:   start,
		End:     end,
	}
}
