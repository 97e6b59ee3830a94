package ast

import "context"

// Walk traverses the subtree rooted at y depth-first in pre-order: y first,
// then each child's subtree in child order. fn returning false stops the
// whole traversal; Walk reports whether it ran to completion.
//
// Children are read live, not snapshotted. Mutating the tree from inside fn
// leaves the remaining iteration order undefined.
func Walk(y *Node, fn func(*Node) bool) bool {
	if !fn(y) {
		return false
	}
	for _, c := range y.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// WalkContext is Walk for callbacks that block. Order is identical and
// strictly sequential: a node's callback returns before the next node is
// visited, siblings are never visited concurrently. Context cancellation is
// checked before each callback; the first error stops the traversal and is
// returned.
func WalkContext(ctx context.Context, y *Node, fn func(context.Context, *Node) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(ctx, y); err != nil {
		return err
	}
	for _, c := range y.Children {
		if err := WalkContext(ctx, c, fn); err != nil {
			return err
		}
	}
	return nil
}

// FindAll collects every node of the subtree satisfying pred, in traversal
// order.
func FindAll(root *Node, pred func(*Node) bool) []*Node {
	var res []*Node
	Walk(root, func(y *Node) bool {
		if pred(y) {
			res = append(res, y)
		}
		return true
	})
	return res
}

// FindFirst returns the first node in traversal order satisfying pred, or
// nil. The walk stops as soon as a match is found.
func FindFirst(root *Node, pred func(*Node) bool) *Node {
	var res *Node
	Walk(root, func(y *Node) bool {
		if pred(y) {
			res = y
			return false
		}
		return true
	})
	return res
}
