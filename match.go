// Package tamlast ties the TAML syntax tree packages together with
// expression-driven node matching: a Match is a compiled boolean
// expression over a node's kind, tag, content and position, usable as a
// predicate for the ast package's search operations.
package tamlast

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/suin/taml-ast/ast"
	"github.com/suin/taml-ast/debug"
)

// matchEnv is the per-node expression environment.
type matchEnv struct {
	Kind       string `expr:"kind"`
	Tag        string `expr:"tag"`
	Content    string `expr:"content"`
	Depth      int    `expr:"depth"`
	ChildCount int    `expr:"childCount"`
}

// Match is a compiled node predicate. Not safe for concurrent use; each
// logical caller compiles its own.
type Match struct {
	src  string
	prog *vm.Program
	cur  *ast.Node
}

// CompileMatch compiles a boolean expression over the variables kind, tag,
// content, depth and childCount, plus the helper functions
// hasAncestor(tag), hasChild(tag) and hasText(substring).
//
//	m, err := tamlast.CompileMatch(`kind == "element" && hasAncestor("red")`)
func CompileMatch(src string) (*Match, error) {
	m := &Match{src: src}
	opts := []expr.Option{
		expr.Env(matchEnv{}),
		expr.AsBool(),
		expr.Function("hasAncestor", func(params ...any) (any, error) {
			want := params[0].(string)
			for _, a := range m.cur.Ancestors() {
				if a.Kind == ast.ElementKind && a.Tag == want {
					return true, nil
				}
			}
			return false, nil
		},
			new(func(string) bool)),
		expr.Function("hasChild", func(params ...any) (any, error) {
			want := params[0].(string)
			for _, c := range m.cur.Children {
				if c.Kind == ast.ElementKind && c.Tag == want {
					return true, nil
				}
			}
			return false, nil
		},
			new(func(string) bool)),
		expr.Function("hasText", func(params ...any) (any, error) {
			return strings.Contains(ast.AllText(m.cur), params[0].(string)), nil
		},
			new(func(string) bool)),
	}
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile match %q: %w", src, err)
	}
	m.prog = prog
	return m, nil
}

// Eval evaluates the match against a single node.
func (m *Match) Eval(y *ast.Node) (bool, error) {
	if debug.Match() {
		debug.Logf("match %q at %s\n", m.src, y.Path())
	}
	m.cur = y
	out, err := expr.Run(m.prog, matchEnv{
		Kind:       y.Kind.String(),
		Tag:        y.Tag,
		Content:    y.Content,
		Depth:      y.Depth(),
		ChildCount: len(y.Children),
	})
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

// FindAllMatch collects the subtree's matching nodes in traversal order.
func FindAllMatch(root *ast.Node, m *Match) ([]*ast.Node, error) {
	var res []*ast.Node
	var evalErr error
	ast.Walk(root, func(y *ast.Node) bool {
		ok, err := m.Eval(y)
		if err != nil {
			evalErr = err
			return false
		}
		if ok {
			res = append(res, y)
		}
		return true
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return res, nil
}

// FindFirstMatch returns the first matching node in traversal order, or
// nil. The walk stops at the first match.
func FindFirstMatch(root *ast.Node, m *Match) (*ast.Node, error) {
	var res *ast.Node
	var evalErr error
	ast.Walk(root, func(y *ast.Node) bool {
		ok, err := m.Eval(y)
		if err != nil {
			evalErr = err
			return false
		}
		if ok {
			res = y
			return false
		}
		return true
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return res, nil
}
