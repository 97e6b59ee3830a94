package ast

// Clone returns a deep copy of y with fresh identity. The clone is
// detached; its children are clones freshly parented to it, never to y's
// parent or to y.
func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Kind = y.Kind
	dst.Tag = y.Tag
	dst.Content = y.Content
	dst.Start = y.Start
	dst.End = y.End
	dst.Parent = nil
	if y.Children == nil {
		dst.Children = nil
		return dst
	}
	dst.Children = make([]*Node, len(y.Children))
	for i, c := range y.Children {
		dstI := &Node{}
		c.CloneTo(dstI)
		dstI.Parent = dst
		dst.Children[i] = dstI
	}
	return dst
}
