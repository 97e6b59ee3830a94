// Package treediff computes structural differences between two syntax
// trees as a flat edit list, pre-order. It is a query utility: it defines
// no patch format and cannot be applied back.
package treediff

import (
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/suin/taml-ast/ast"
	"github.com/suin/taml-ast/debug"
)

type Op string

const (
	OpInsert  Op = "insert"
	OpDelete  Op = "delete"
	OpReplace Op = "replace"
	OpRetag   Op = "retag"
	OpText    Op = "text"
)

// Edit describes one difference. Path locates the node in the from tree
// ("$", "$[0][2]", ...); for OpInsert it locates the position the to tree
// adds a child at. Delta is set for OpText only: the character-level
// difference in compact -deleted/+inserted form.
type Edit struct {
	Path  string
	Op    Op
	From  string
	To    string
	Delta string
}

// Diff compares the two subtrees node by node, children index-wise.
// Nil edits means the trees are structurally equal with equal content.
// Spans are opaque and never compared.
func Diff(from, to *ast.Node) []Edit {
	if debug.Diff() {
		debug.Logf("diff %s against %s\n", describe(from), describe(to))
	}
	var res []Edit
	diff(from, to, "$", &res)
	return res
}

func diff(from, to *ast.Node, path string, res *[]Edit) {
	if from.Kind != to.Kind {
		*res = append(*res, Edit{
			Path: path,
			Op:   OpReplace,
			From: describe(from),
			To:   describe(to),
		})
		return
	}
	if from.Kind == ast.TextKind {
		diffText(from, to, path, res)
		return
	}
	if from.Kind == ast.ElementKind && from.Tag != to.Tag {
		*res = append(*res, Edit{
			Path: path,
			Op:   OpRetag,
			From: from.Tag,
			To:   to.Tag,
		})
	}
	n := min(len(from.Children), len(to.Children))
	for i := 0; i < n; i++ {
		diff(from.Children[i], to.Children[i], childPath(path, i), res)
	}
	for i := n; i < len(from.Children); i++ {
		*res = append(*res, Edit{
			Path: childPath(path, i),
			Op:   OpDelete,
			From: describe(from.Children[i]),
		})
	}
	for i := n; i < len(to.Children); i++ {
		*res = append(*res, Edit{
			Path: childPath(path, i),
			Op:   OpInsert,
			To:   describe(to.Children[i]),
		})
	}
}

func diffText(from, to *ast.Node, path string, res *[]Edit) {
	if from.Content == to.Content {
		return
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from.Content, to.Content, false)
	diffSize := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			diffSize += len(diffs[i].Text)
		}
	}
	// mostly-rewritten content reads better as a replace
	if diffSize > min(len(from.Content), len(to.Content))/2 {
		*res = append(*res, Edit{
			Path: path,
			Op:   OpReplace,
			From: describe(from),
			To:   describe(to),
		})
		return
	}
	*res = append(*res, Edit{
		Path:  path,
		Op:    OpText,
		From:  from.Content,
		To:    to.Content,
		Delta: delta(diffs),
	})
}

func delta(diffs []diffpatch.Diff) string {
	var b strings.Builder
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("-" + strconv.Quote(d.Text))
		case diffpatch.DiffInsert:
			b.WriteString("+" + strconv.Quote(d.Text))
		}
	}
	return b.String()
}

func childPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func describe(y *ast.Node) string {
	switch y.Kind {
	case ast.ElementKind:
		return "<" + y.Tag + ">"
	case ast.TextKind:
		return strconv.Quote(y.Content)
	default:
		return y.Kind.String()
	}
}
