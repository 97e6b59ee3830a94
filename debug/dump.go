package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/suin/taml-ast/ast"
	"github.com/suin/taml-ast/tag"
)

// Dump writes an indented outline of the subtree to w, one node per line
// with its span. Element tags are colored with their own terminal attribute
// when w is a terminal.
func Dump(w io.Writer, y *ast.Node) {
	colored := false
	if f, ok := w.(*os.File); ok {
		colored = !color.NoColor && isatty.IsTerminal(f.Fd())
	}
	dump(w, y, 0, colored)
}

func dump(w io.Writer, y *ast.Node, depth int, colored bool) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, "  ")
	}
	switch y.Kind {
	case ast.ElementKind:
		label := y.Tag
		if colored {
			if c := tag.Color(y.Tag); c != nil {
				label = c.Sprint(y.Tag)
			}
		}
		fmt.Fprintf(w, "<%s> %d..%d\n", label, y.Start, y.End)
	case ast.TextKind:
		fmt.Fprintf(w, "%s %d..%d\n", strconv.Quote(y.Content), y.Start, y.End)
	default:
		fmt.Fprintf(w, "%s %d..%d\n", y.Kind, y.Start, y.End)
	}
	for _, c := range y.Children {
		dump(w, c, depth+1, colored)
	}
}
