package ast

import (
	"slices"
	"strings"
)

// AllText concatenates the content of every text node of the subtree in
// traversal order, with no separators.
func AllText(root *Node) string {
	var b strings.Builder
	Walk(root, func(y *Node) bool {
		if y.Kind == TextKind {
			b.WriteString(y.Content)
		}
		return true
	})
	return b.String()
}

func ElementsWithTag(root *Node, tag string) []*Node {
	return FindAll(root, func(y *Node) bool {
		return y.Kind == ElementKind && y.Tag == tag
	})
}

func TextNodes(root *Node) []*Node {
	return FindAll(root, func(y *Node) bool { return y.Kind == TextKind })
}

func ElementNodes(root *Node) []*Node {
	return FindAll(root, func(y *Node) bool { return y.Kind == ElementKind })
}

// Contains reports whether descendant is y or below y. Reflexive: every
// node contains itself.
func Contains(y, descendant *Node) bool {
	for x := descendant; x != nil; x = x.Parent {
		if x == y {
			return true
		}
	}
	return false
}

// CommonAncestor returns the nearest node that is an ancestor-or-self of
// both a and b, or nil when they belong to disconnected trees.
func CommonAncestor(a, b *Node) *Node {
	onAChain := map[*Node]bool{}
	for x := a; x != nil; x = x.Parent {
		onAChain[x] = true
	}
	for x := b; x != nil; x = x.Parent {
		if onAChain[x] {
			return x
		}
	}
	return nil
}

// Siblings returns y's parent's other children, in order. Empty for the
// root and for detached nodes.
func (y *Node) Siblings() []*Node {
	if y.Parent == nil {
		return nil
	}
	var res []*Node
	for _, c := range y.Parent.Children {
		if c != y {
			res = append(res, c)
		}
	}
	return res
}

func (y *Node) PrevSibling() *Node {
	if y.Parent == nil {
		return nil
	}
	i := slices.Index(y.Parent.Children, y)
	if i <= 0 {
		return nil
	}
	return y.Parent.Children[i-1]
}

func (y *Node) NextSibling() *Node {
	if y.Parent == nil {
		return nil
	}
	i := slices.Index(y.Parent.Children, y)
	if i == -1 || i == len(y.Parent.Children)-1 {
		return nil
	}
	return y.Parent.Children[i+1]
}

// IsEmpty reports whether y carries no content: a text node whose content
// is empty or all whitespace, or a container with no children or only
// recursively empty children.
func (y *Node) IsEmpty() bool {
	if y.Kind == TextKind {
		return strings.TrimSpace(y.Content) == ""
	}
	for _, c := range y.Children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

type Counts struct {
	Documents int
	Elements  int
	Texts     int
}

// Count totals the subtree's nodes per kind in one traversal.
func Count(root *Node) Counts {
	var res Counts
	Walk(root, func(y *Node) bool {
		switch y.Kind {
		case DocumentKind:
			res.Documents++
		case ElementKind:
			res.Elements++
		case TextKind:
			res.Texts++
		}
		return true
	})
	return res
}

// MaxDepth is the depth of the deepest node of the subtree, counting root
// as depth 0.
func MaxDepth(root *Node) int {
	res := 0
	var rec func(y *Node, d int)
	rec = func(y *Node, d int) {
		if d > res {
			res = d
		}
		for _, c := range y.Children {
			rec(c, d+1)
		}
	}
	rec(root, 0)
	return res
}

// Flatten returns every node of the subtree in traversal order.
func Flatten(root *Node) []*Node {
	var res []*Node
	Walk(root, func(y *Node) bool {
		res = append(res, y)
		return true
	})
	return res
}

// DepthMap maps each node of the subtree to its depth relative to the tree
// root (root's own ancestors count), built in one traversal.
func DepthMap(root *Node) map[*Node]int {
	res := map[*Node]int{}
	base := root.Depth()
	var rec func(y *Node, d int)
	rec = func(y *Node, d int) {
		res[y] = d
		for _, c := range y.Children {
			rec(c, d+1)
		}
	}
	rec(root, base)
	return res
}
