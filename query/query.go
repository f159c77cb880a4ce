// Package query selects nodes of a document with boolean expressions.
//
// Expressions use the expr language (github.com/expr-lang/expr) and are
// evaluated once per node against an Env describing that node:
//
//	name == "item" && text != ""
//	depth == 2 && has("price")
//	child("kind") == "book" || path startsWith "/root/archive"
//	leaf && text matches "^[0-9]+$"
package query

import (
	"errors"
	"fmt"

	"github.com/signadot/tagdoc/debug"
	"github.com/signadot/tagdoc/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Env is the environment an expression sees for one node.
type Env struct {
	Name     string `expr:"name"`
	Text     string `expr:"text"`
	Path     string `expr:"path"`
	Parent   string `expr:"parent"`
	Depth    int    `expr:"depth"`
	Children int    `expr:"children"`
	Leaf     bool   `expr:"leaf"`

	// Has reports whether the node has a direct child of that name.
	Has func(name string) bool `expr:"has"`
	// Child returns the text of the named direct child, or "".
	Child func(name string) string `expr:"child"`
	// Names returns the names of the direct children in order.
	Names func() []string `expr:"names"`
}

func NewEnv(n *ir.Node) Env {
	env := Env{
		Name:     n.Name(),
		Text:     n.Text,
		Path:     n.Path(),
		Depth:    n.Depth(),
		Children: n.Len(),
		Leaf:     n.Len() == 0,
		Has: func(name string) bool {
			return n.Child(name) != nil
		},
		Child: func(name string) string {
			if c := n.Child(name); c != nil {
				return c.Text
			}
			return ""
		},
		Names: func() []string {
			kids := n.Children()
			res := make([]string, len(kids))
			for i, c := range kids {
				res[i] = c.Name()
			}
			return res
		},
	}
	if p := n.Parent(); p != nil {
		env.Parent = p.Name()
	}
	return env
}

// Query is a compiled predicate. It is safe for concurrent use.
type Query struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prog: prog}, nil
}

func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string { return q.src }

// Match evaluates q on n.
func (q *Query) Match(n *ir.Node) (bool, error) {
	out, err := expr.Run(q.prog, NewEnv(n))
	if err != nil {
		return false, fmt.Errorf("%w: %s at %s: %w", ErrQuery, q.src, n.Path(), err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s gave %T", ErrQuery, q.src, out)
	}
	if debug.Query() {
		debug.Logf("query %q on %s: %t\n", q.src, n.Path(), b)
	}
	return b, nil
}

// Select returns handles to the nodes of the tree rooted at root, root
// included, for which q holds, in pre-order.
func (q *Query) Select(root *ir.Node) ([]ir.Handle, error) {
	var res []ir.Handle
	err := root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		ok, err := q.Match(n)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, n.Handle())
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// First returns a handle to the first node in pre-order for which q
// holds, or the zero Handle.
func (q *Query) First(root *ir.Node) (ir.Handle, error) {
	var res ir.Handle
	err := root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || !res.IsZero() {
			return false, nil
		}
		ok, err := q.Match(n)
		if err != nil {
			return false, err
		}
		if ok {
			res = n.Handle()
			return false, nil
		}
		return true, nil
	})
	return res, err
}

// Select compiles src and selects with it from root.
func Select(root *ir.Node, src string) ([]ir.Handle, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Select(root)
}

// Eval evaluates an arbitrary expression on n, for example
// `child("price") + " " + name`.
func Eval(n *ir.Node, src string) (any, error) {
	out, err := expr.Eval(src, NewEnv(n))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return out, nil
}
