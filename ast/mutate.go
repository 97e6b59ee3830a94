package ast

import "slices"

// Append attaches child at the end of y's children. A child still attached
// to a container is detached from it first, so the back-reference
// invariant holds on every path; when that container is y itself the child
// moves to the end. Appending to a text node panics: text nodes never have
// children.
func (y *Node) Append(child *Node) {
	if y.Kind.IsLeaf() {
		panic("append to leaf node")
	}
	if child.Parent != nil {
		child.Remove()
	}
	y.Children = append(y.Children, child)
	child.Parent = y
}

// Insert attaches child at index i, clamped to [0, len(Children)]. Same
// detach-first semantics as Append: the index is interpreted against y's
// children after any detach.
func (y *Node) Insert(i int, child *Node) {
	if y.Kind.IsLeaf() {
		panic("append to leaf node")
	}
	if child.Parent != nil {
		child.Remove()
	}
	i = max(0, min(i, len(y.Children)))
	y.Children = slices.Insert(y.Children, i, child)
	child.Parent = y
}

// Remove detaches y from its parent. No-op when y is already detached,
// when the parent is a leaf kind, or when y is not actually present in the
// parent's children. The first occurrence found by identity is removed.
func (y *Node) Remove() {
	p := y.Parent
	if p == nil || p.Kind.IsLeaf() {
		return
	}
	i := slices.Index(p.Children, y)
	if i == -1 {
		return
	}
	p.Children = slices.Delete(p.Children, i, i+1)
	y.Parent = nil
}

// Replace substitutes newChild for oldChild, preserving oldChild's
// position. No-op when oldChild is not found by identity among y's
// children, and when both arguments are the same node. A newChild attached
// elsewhere is detached first; oldChild's position is looked up after that
// detach, so replacing with one of y's own children moves it.
func (y *Node) Replace(oldChild, newChild *Node) {
	if oldChild == newChild {
		return
	}
	if !slices.Contains(y.Children, oldChild) {
		return
	}
	if newChild.Parent != nil {
		newChild.Remove()
	}
	i := slices.Index(y.Children, oldChild)
	oldChild.Parent = nil
	newChild.Parent = y
	y.Children[i] = newChild
}
