// Package visit dispatches over node kind: recursive visitors with
// enter/exit hooks, and a one-shot reducing transform.
package visit

import (
	"context"

	"github.com/suin/taml-ast/ast"
	"github.com/suin/taml-ast/debug"
)

// Visitor holds per-kind callbacks plus generic Enter/Exit hooks. Nil
// callbacks are skipped. Visitors produce no value; they act through side
// effects in their closures.
type Visitor struct {
	Document func(*ast.Node)
	Element  func(*ast.Node)
	Text     func(*ast.Node)
	Enter    func(*ast.Node)
	Exit     func(*ast.Node)
}

// Visit calls Enter, then the kind-specific callback, then recurses into
// children in order, then calls Exit.
func Visit(y *ast.Node, v *Visitor) {
	if debug.Visit() {
		debug.Logf("visit %s at %s\n", y.Kind, y.Path())
	}
	if v.Enter != nil {
		v.Enter(y)
	}
	switch y.Kind {
	case ast.DocumentKind:
		if v.Document != nil {
			v.Document(y)
		}
	case ast.ElementKind:
		if v.Element != nil {
			v.Element(y)
		}
	case ast.TextKind:
		if v.Text != nil {
			v.Text(y)
		}
	}
	for _, c := range y.Children {
		Visit(c, v)
	}
	if v.Exit != nil {
		v.Exit(y)
	}
}

// CtxVisitor is Visitor for hooks that block.
type CtxVisitor struct {
	Document func(context.Context, *ast.Node) error
	Element  func(context.Context, *ast.Node) error
	Text     func(context.Context, *ast.Node) error
	Enter    func(context.Context, *ast.Node) error
	Exit     func(context.Context, *ast.Node) error
}

// VisitContext visits in the same order as Visit. Every hook completes
// before the next hook runs, siblings are never visited concurrently.
// Context cancellation is checked once per node; the first error stops the
// visit and is returned.
func VisitContext(ctx context.Context, y *ast.Node, v *CtxVisitor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if debug.Visit() {
		debug.Logf("visit %s at %s\n", y.Kind, y.Path())
	}
	if v.Enter != nil {
		if err := v.Enter(ctx, y); err != nil {
			return err
		}
	}
	var kindHook func(context.Context, *ast.Node) error
	switch y.Kind {
	case ast.DocumentKind:
		kindHook = v.Document
	case ast.ElementKind:
		kindHook = v.Element
	case ast.TextKind:
		kindHook = v.Text
	}
	if kindHook != nil {
		if err := kindHook(ctx, y); err != nil {
			return err
		}
	}
	for _, c := range y.Children {
		if err := VisitContext(ctx, c, v); err != nil {
			return err
		}
	}
	if v.Exit != nil {
		return v.Exit(ctx, y)
	}
	return nil
}
