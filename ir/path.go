package ir

import (
	"fmt"
	"strings"
)

// Path returns the names from the root of n's tree down to n, each
// preceded by '/'. Names never contain '/', so the path is unambiguous.
func (n *Node) Path() string {
	if n.parent == nil {
		return "/" + n.name
	}
	return n.parent.Path() + "/" + n.name
}

// GetPath navigates to the node at path. An absolute path (as returned
// by Path) is resolved from the root of n's tree and must start with
// the root's name. A relative path is resolved from the children of n.
// An empty relative path denotes n.
func (n *Node) GetPath(path string) (*Node, error) {
	cur := n
	rest, abs := strings.CutPrefix(path, "/")
	if abs {
		cur = n.Root()
		first, tail, _ := strings.Cut(rest, "/")
		if first != cur.name {
			return nil, fmt.Errorf("%w: %q does not start at root %q", ErrNotFound, path, cur.name)
		}
		rest = tail
	}
	if rest == "" {
		return cur, nil
	}
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrBadName, path)
		}
		next := cur.Child(seg)
		if next == nil {
			return nil, fmt.Errorf("%w: %q has no child %q", ErrNotFound, cur.Path(), seg)
		}
		cur = next
	}
	return cur, nil
}
