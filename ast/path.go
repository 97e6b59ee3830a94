package ast

import (
	"slices"
	"strconv"
)

// Path returns a positional path from the tree root to y, "$" for the root
// and "$[i][j]..." below it. Detached-in-between states (a node listed as a
// child it no longer is) render the missing index as [?].
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	i := slices.Index(y.Parent.Children, y)
	if i == -1 {
		return y.Parent.Path() + "[?]"
	}
	return y.Parent.Path() + "[" + strconv.Itoa(i) + "]"
}
