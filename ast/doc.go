// Package ast defines the syntax tree for TAML documents: node
// construction, parent/child linkage, depth-first traversal and the query
// operations built on it.
//
// # Node structure
//
// A tree has exactly one document node at the root. Documents and elements
// contain an ordered, owned sequence of children; text nodes are leaves.
// Every node carries a non-owning Parent back-reference which is nil
// exactly when the node is detached. The mutation operations (Append,
// Insert, Remove, Replace) keep back-references consistent with container
// membership on every path; trees assembled by writing the struct fields
// directly are outside that guarantee.
//
// # Spans
//
// Start and End record where in the source text a node came from. They are
// set by the parser, carried by Clone, and otherwise opaque: no operation
// in this package reads or validates them.
//
// # Traversal
//
// Walk visits nodes depth-first in pre-order. Every query operation
// (FindAll, AllText, Flatten, ...) shares Walk's ordering. WalkContext is
// the blocking-callback variant with the same strictly sequential order.
//
// Trees are not safe for concurrent use. A traversal reads children live;
// mutating a tree while walking it is unsupported.
package ast
