package ast

// Root follows parent back-references to the top of the tree. Under the
// package invariants the top is always a document; a parentless non-document
// terminal means a corrupted tree and surfaces as a StructureError.
func (y *Node) Root() (*Node, error) {
	x := y
	for x.Parent != nil {
		x = x.Parent
	}
	if x.Kind != DocumentKind {
		return nil, &StructureError{Node: x}
	}
	return x, nil
}

// Ancestors returns y's ancestors ordered from immediate parent to root.
// Empty for the root and for detached nodes.
func (y *Node) Ancestors() []*Node {
	var res []*Node
	for p := y.Parent; p != nil; p = p.Parent {
		res = append(res, p)
	}
	return res
}

// Depth is the number of ancestors; the root has depth 0.
func (y *Node) Depth() int {
	n := 0
	for p := y.Parent; p != nil; p = p.Parent {
		n++
	}
	return n
}
