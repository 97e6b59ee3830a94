package ast

import (
	"errors"
	"fmt"
)

var ErrStructure = errors.New("corrupted tree structure")

// StructureError reports root resolution terminating at a parentless node
// that is not a document. It indicates a tree built or mutated outside the
// package's invariants.
type StructureError struct {
	Node *Node
}

func (e *StructureError) Unwrap() error {
	return ErrStructure
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: root resolution reached a parentless %s node",
		ErrStructure.Error(), e.Node.Kind)
}
