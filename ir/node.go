package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/tagdoc/token"
)

// Node is a named element of a document tree.
//
// The name is fixed at creation. Text may be changed freely. Children
// are owned exclusively by their parent and are kept sorted by name.
type Node struct {
	name string
	Text string

	parent   *Node
	children []*Node
	gen      uint64
}

// ValidName reports whether name can name a node.
func ValidName(name string) bool {
	return token.ValidName(name)
}

// New creates a detached node.
func New(name, text string) (*Node, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return &Node{name: name, Text: text}, nil
}

// MustNew is like New but panics if name is not valid.
func MustNew(name, text string) *Node {
	n, err := New(name, text)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *Node) Name() string { return n.name }

func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// Parent returns the node owning n, or nil if n is a root or detached.
func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Handle returns a handle to n valid until n is removed from its tree.
func (n *Node) Handle() Handle {
	return Handle{node: n, gen: n.gen}
}

func (n *Node) Len() int { return len(n.children) }

// Children returns the direct children of n in ascending name order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Child returns the direct child of n with the given name, or nil.
func (n *Node) Child(name string) *Node {
	i, ok := n.search(name)
	if !ok {
		return nil
	}
	return n.children[i]
}

func (n *Node) search(name string) (int, bool) {
	return slices.BinarySearchFunc(n.children, name, func(c *Node, name string) int {
		return strings.Compare(c.name, name)
	})
}

// Locate searches the descendants of n, depth first and in ascending
// name order, for the first node called name whose text equals text.
// An empty text matches any text. n itself is never matched. The zero
// Handle is returned if nothing matches.
func (n *Node) Locate(name, text string) Handle {
	for _, c := range n.children {
		if c.name == name && (text == "" || c.Text == text) {
			return c.Handle()
		}
		if h := c.Locate(name, text); !h.IsZero() {
			return h
		}
	}
	return Handle{}
}

// Upsert sets the text of the direct child called name to value,
// creating the child if it does not exist. Existing handles to the
// child remain valid. If name is not a valid node name, the zero Handle
// is returned and n is unchanged.
func (n *Node) Upsert(name, value string) Handle {
	if !ValidName(name) {
		return Handle{}
	}
	i, ok := n.search(name)
	if ok {
		c := n.children[i]
		c.Text = value
		return c.Handle()
	}
	c := &Node{name: name, Text: value, parent: n}
	n.children = slices.Insert(n.children, i, c)
	return c.Handle()
}

// Attach adds the detached subtree c as a direct child of n. A child of
// n with the same name is removed first, invalidating handles into it.
// Attach panics if c already has a parent or is an ancestor of n.
func (n *Node) Attach(c *Node) Handle {
	if c.parent != nil {
		panic("ir: Attach of node with a parent")
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			panic("ir: Attach would create a cycle")
		}
	}
	i, ok := n.search(c.name)
	if ok {
		old := n.children[i]
		old.parent = nil
		old.invalidate()
		n.children[i] = c
	} else {
		n.children = slices.Insert(n.children, i, c)
	}
	c.parent = n
	return c.Handle()
}

// Delete removes the subtree denoted by h from n. It reports false, and
// leaves n unchanged, if h is the zero Handle, has been invalidated, or
// does not denote a strict descendant of n.
func (n *Node) Delete(h Handle) bool {
	return n.Detach(h) != nil
}

// Detach is like Delete but returns the removed subtree, or nil. The
// returned subtree is a fresh root: handles taken before the removal
// are invalid, new ones may be taken from it.
func (n *Node) Detach(h Handle) *Node {
	c := h.Node()
	if c == nil || !n.contains(c) {
		return nil
	}
	c.parent.removeChild(c)
	return c
}

// Remove removes the direct child of n called name, reporting whether
// there was one.
func (n *Node) Remove(name string) bool {
	c := n.Child(name)
	if c == nil {
		return false
	}
	n.removeChild(c)
	return true
}

func (n *Node) contains(c *Node) bool {
	for p := c.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) removeChild(c *Node) {
	i, ok := n.search(c.name)
	if !ok || n.children[i] != c {
		panic("ir: child not owned by parent")
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	c.invalidate()
}

func (n *Node) invalidate() {
	n.gen++
	for _, c := range n.children {
		c.invalidate()
	}
}

// Visit calls f on n before and after its children. Children are
// visited only if the pre-order call returns true.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Clone returns a deep copy of n with no parent.
func (n *Node) Clone() *Node {
	res := &Node{name: n.name, Text: n.Text}
	res.children = make([]*Node, len(n.children))
	for i, c := range n.children {
		cc := c.Clone()
		cc.parent = res
		res.children[i] = cc
	}
	return res
}

// Render returns the canonical text of n indented by depth levels of
// two spaces.
func (n *Node) Render(depth int) string {
	b := &strings.Builder{}
	n.render(b, strings.Repeat("  ", max(depth, 0)))
	return b.String()
}

func (n *Node) render(b *strings.Builder, indent string) {
	b.WriteString(indent + "<" + n.name + ">\n")
	inner := indent + "  "
	if n.Text != "" {
		b.WriteString(inner + n.Text + "\n")
	}
	for _, c := range n.children {
		c.render(b, inner)
	}
	b.WriteString(indent + "</" + n.name + ">\n")
}

func (n *Node) String() string {
	return n.Render(0)
}
