package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/tagdoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Kind int

const (
	Insert Kind = iota
	Delete
	Text
	// Replace swaps the whole document, used when the roots differ in
	// name.
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Text:
		return "text"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("<bad kind %d>", int(k))
	}
}

func (k Kind) sigil() string {
	switch k {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Text:
		return "~"
	default:
		return "!"
	}
}

// Change is one difference between two documents. Path is the absolute
// path of the affected node; nodes present on both sides share a path.
type Change struct {
	Kind Kind
	Path string

	// From is the removed subtree of a Delete or Replace.
	From *ir.Node
	// To is the added subtree of an Insert or Replace.
	To *ir.Node

	FromText, ToText string
}

func (c *Change) String() string {
	switch c.Kind {
	case Text:
		return fmt.Sprintf("%s %s: %s", c.Kind.sigil(), c.Path, textDiff(c.FromText, c.ToText))
	case Replace:
		return fmt.Sprintf("%s %s -> /%s", c.Kind.sigil(), c.Path, c.To.Name())
	default:
		return c.Kind.sigil() + " " + c.Path
	}
}

// textDiff renders the character diff of from and to with deletions in
// [-...-] and insertions in {+...+}.
func textDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		}
	}
	return b.String()
}

// Format renders changes one per line. Inserted and deleted subtrees
// are followed by their markup, indented.
func Format(changes []Change) string {
	b := &strings.Builder{}
	for i := range changes {
		c := &changes[i]
		b.WriteString(c.String())
		b.WriteByte('\n')
		switch c.Kind {
		case Insert:
			b.WriteString(c.To.Render(1))
		case Delete:
			b.WriteString(c.From.Render(1))
		}
	}
	return b.String()
}

// Reverse returns the changes which undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i := range changes {
		c := changes[i]
		r := Change{Path: c.Path, From: c.To, To: c.From, FromText: c.ToText, ToText: c.FromText}
		switch c.Kind {
		case Insert:
			r.Kind = Delete
		case Delete:
			r.Kind = Insert
		case Replace:
			r.Kind = Replace
			r.Path = "/" + c.To.Name()
		default:
			r.Kind = c.Kind
		}
		res[len(changes)-1-i] = r
	}
	return res
}
