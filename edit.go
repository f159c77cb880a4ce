package tagdoc

import (
	"errors"
	"fmt"

	"github.com/signadot/tagdoc/debug"
	"github.com/signadot/tagdoc/ir"
)

type EditOp int

const (
	// EditSet upserts Name with Text under the node at Path.
	EditSet EditOp = iota
	// EditDelete removes the first descendant of the node at Path
	// matching Name and Text (empty Text matches any text).
	EditDelete
)

func (o EditOp) String() string {
	switch o {
	case EditSet:
		return "set"
	case EditDelete:
		return "delete"
	default:
		return fmt.Sprintf("<bad edit op %d>", int(o))
	}
}

// Edit is one change to a document. Path selects the node the change is
// relative to, as accepted by ir.Node.GetPath; empty means the root.
type Edit struct {
	Op   EditOp
	Path string
	Name string
	Text string
}

func (e Edit) String() string {
	return fmt.Sprintf("%s %s %q=%q", e.Op, e.Path, e.Name, e.Text)
}

var ErrEdit = errors.New("edit error")

// EditResult reports what an Edit did.
type EditResult struct {
	Edit Edit
	// Handle denotes the node set by an EditSet.
	Handle ir.Handle
	// Applied is false for an EditDelete which found nothing to remove.
	Applied bool
}

// Apply applies edits to root in order. A delete matching nothing is not
// an error; it is reported with Applied false. The first failing edit
// stops processing; edits before it remain applied.
func (t *Tool) Apply(root *ir.Node, edits ...Edit) ([]EditResult, error) {
	res := make([]EditResult, 0, len(edits))
	for i, e := range edits {
		at, err := root.GetPath(e.Path)
		if err != nil {
			return res, fmt.Errorf("%w: edit %d (%s): %w", ErrEdit, i, e, err)
		}
		r := EditResult{Edit: e}
		switch e.Op {
		case EditSet:
			r.Handle = at.Upsert(e.Name, e.Text)
			if r.Handle.IsZero() {
				return res, fmt.Errorf("%w: edit %d (%s): %w: %q", ErrEdit, i, e, ir.ErrBadName, e.Name)
			}
			r.Applied = true
		case EditDelete:
			r.Applied = at.Delete(at.Locate(e.Name, e.Text))
		default:
			return res, fmt.Errorf("%w: edit %d: unknown op %s", ErrEdit, i, e.Op)
		}
		if debug.Edit() {
			debug.Logf("edit %s applied=%t on %s\n", e, r.Applied, at.Path())
		}
		res = append(res, r)
	}
	return res, nil
}
