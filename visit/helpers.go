package visit

import "github.com/suin/taml-ast/ast"

// Filtered builds a visitor that invokes fn only for nodes satisfying
// pred, in traversal order.
func Filtered(pred func(*ast.Node) bool, fn func(*ast.Node)) *Visitor {
	return &Visitor{
		Enter: func(y *ast.Node) {
			if pred(y) {
				fn(y)
			}
		},
	}
}

// Collector accumulates the nodes satisfying Pred, in traversal order.
type Collector struct {
	Pred  func(*ast.Node) bool
	Nodes []*ast.Node
}

func (c *Collector) Visitor() *Visitor {
	return Filtered(c.Pred, func(y *ast.Node) {
		c.Nodes = append(c.Nodes, y)
	})
}

// Counter accumulates per-kind totals, driven off the kind-specific
// callbacks rather than the enter hook.
type Counter struct {
	Documents int
	Elements  int
	Texts     int
}

func (c *Counter) Visitor() *Visitor {
	return &Visitor{
		Document: func(*ast.Node) { c.Documents++ },
		Element:  func(*ast.Node) { c.Elements++ },
		Text:     func(*ast.Node) { c.Texts++ },
	}
}

func (c *Counter) Counts() ast.Counts {
	return ast.Counts{
		Documents: c.Documents,
		Elements:  c.Elements,
		Texts:     c.Texts,
	}
}
