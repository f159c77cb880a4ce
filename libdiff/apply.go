package libdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/tagdoc/debug"
	"github.com/signadot/tagdoc/ir"
)

var ErrConflict = errors.New("diff does not apply")

// Apply applies changes to a copy of doc and returns the copy. doc is
// not modified. Each change is checked against the copy: a Delete must
// find the subtree it removes, a Text change the text it replaces and an
// Insert a free name.
func Apply(doc *ir.Node, changes []Change) (*ir.Node, error) {
	res := doc.Clone()
	for i := range changes {
		c := &changes[i]
		if debug.Diff() {
			debug.Logf("apply %s\n", c)
		}
		var err error
		res, err = applyOne(res, c)
		if err != nil {
			return nil, fmt.Errorf("change %d (%s): %w", i, c, err)
		}
	}
	return res, nil
}

func applyOne(doc *ir.Node, c *Change) (*ir.Node, error) {
	switch c.Kind {
	case Replace:
		if c.Path != "/"+doc.Name() {
			return nil, fmt.Errorf("%w: document root is /%s", ErrConflict, doc.Name())
		}
		return c.To.Clone(), nil
	case Text:
		n, err := doc.GetPath(c.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		if n.Text != c.FromText {
			return nil, fmt.Errorf("%w: text is %q, expected %q", ErrConflict, n.Text, c.FromText)
		}
		n.Text = c.ToText
	case Delete:
		n, err := doc.GetPath(c.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		if n.Parent() == nil {
			return nil, fmt.Errorf("%w: cannot delete the root", ErrConflict)
		}
		if !ir.Equal(n, c.From) {
			return nil, fmt.Errorf("%w: subtree differs from the deleted one", ErrConflict)
		}
		n.Parent().Remove(n.Name())
	case Insert:
		dir, name := splitPath(c.Path)
		if name != c.To.Name() {
			return nil, fmt.Errorf("%w: path names %q but inserts %q", ErrConflict, name, c.To.Name())
		}
		parent, err := doc.GetPath(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		if parent.Child(name) != nil {
			return nil, fmt.Errorf("%w: %s already exists", ErrConflict, c.Path)
		}
		parent.Attach(c.To.Clone())
	default:
		return nil, fmt.Errorf("unknown change kind %s", c.Kind)
	}
	return doc, nil
}

func splitPath(p string) (string, string) {
	i := strings.LastIndexByte(p, '/')
	if i <= 0 {
		return p, ""
	}
	return p[:i], p[i+1:]
}
