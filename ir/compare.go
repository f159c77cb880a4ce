package ir

import (
	"cmp"
	"strings"
)

// Compare orders nodes by name, then text, then children pairwise in
// canonical order, then number of children.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	if c := strings.Compare(a.Text, b.Text); c != 0 {
		return c
	}
	n := min(len(a.children), len(b.children))
	for i := range n {
		if c := Compare(a.children[i], b.children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.children), len(b.children))
}

// Equal reports whether a and b have the same shape, names and text.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
