package visit

import (
	"errors"
	"fmt"

	"github.com/suin/taml-ast/ast"
)

var ErrDispatch = errors.New("no transformer callback for kind")

// DispatchError reports a Transform against a transformer that has no
// callback for the node's kind. It is the one hard failure in the model:
// a transformer is expected to be total over the kinds it claims.
type DispatchError struct {
	Kind ast.Kind
}

func (e *DispatchError) Unwrap() error {
	return ErrDispatch
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDispatch.Error(), e.Kind)
}

// Transformer reduces single nodes to values of type T. Transform does not
// recurse: a callback that wants a recursive reduction calls Transform on
// each child itself, composing children however T requires.
type Transformer[T any] struct {
	Document func(*ast.Node) (T, error)
	Element  func(*ast.Node) (T, error)
	Text     func(*ast.Node) (T, error)
}

// Transform calls exactly the one callback matching y's kind and returns
// its result. A nil callback for y's kind fails with a DispatchError.
func Transform[T any](y *ast.Node, t *Transformer[T]) (T, error) {
	var fn func(*ast.Node) (T, error)
	switch y.Kind {
	case ast.DocumentKind:
		fn = t.Document
	case ast.ElementKind:
		fn = t.Element
	case ast.TextKind:
		fn = t.Text
	}
	if fn == nil {
		var zero T
		return zero, &DispatchError{Kind: y.Kind}
	}
	return fn(y)
}
