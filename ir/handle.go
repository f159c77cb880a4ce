package ir

import "fmt"

// Handle denotes a specific node of a tree. The zero Handle denotes no
// node and stands for "not found".
type Handle struct {
	node *Node
	gen  uint64
}

func (h Handle) IsZero() bool { return h.node == nil }

// Valid reports whether h denotes a node that has not been removed from
// the tree h was taken from.
func (h Handle) Valid() bool {
	return h.node != nil && h.node.gen == h.gen
}

// Node returns the node denoted by h, or nil if h is not valid.
func (h Handle) Node() *Node {
	if !h.Valid() {
		return nil
	}
	return h.node
}

// Deref is like Node but reports an invalid handle as an error.
func (h Handle) Deref() (*Node, error) {
	if h.node == nil {
		return nil, fmt.Errorf("%w: zero handle", ErrInvalidHandle)
	}
	if h.node.gen != h.gen {
		return nil, fmt.Errorf("%w: %s was removed", ErrInvalidHandle, h.node.name)
	}
	return h.node, nil
}

func (h Handle) String() string {
	switch {
	case h.node == nil:
		return "<absent>"
	case !h.Valid():
		return "<removed " + h.node.name + ">"
	default:
		return h.node.Path()
	}
}
