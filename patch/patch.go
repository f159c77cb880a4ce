// Package patch applies JSON merge patches (RFC 7386) and JSON patches
// (RFC 6902) to documents through their object form.
//
// The object form of a document is
//
//	{"<root>": {"text": "...", "children": {"<name>": {...}, ...}}}
//
// so a merge patch deleting child a of root r is
//
//	{"r": {"children": {"a": null}}}
//
// and the JSON pointer of a node is given by Pointer.
package patch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/tagdoc/debug"
	"github.com/signadot/tagdoc/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Merge applies the JSON merge patch p to doc and returns the result.
// doc is not modified.
func Merge(doc *ir.Node, p []byte) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", string(p), doc.Path())
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(out)
}

// CreateMerge returns the JSON merge patch taking from to to.
func CreateMerge(from, to *ir.Node) ([]byte, error) {
	fd, err := from.MarshalJSON()
	if err != nil {
		return nil, err
	}
	td, err := to.MarshalJSON()
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

// Apply applies the JSON patch ops to doc and returns the result. doc is
// not modified.
func Apply(doc *ir.Node, ops []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch with %d ops on %s\n", len(p), doc.Path())
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(out)
}

func fromJSON(d []byte) (*ir.Node, error) {
	res, err := ir.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: result is not a document: %w", ErrPatch, err)
	}
	return res, nil
}

// Pointer returns the JSON pointer to the body of n within the object
// form of its document.
func Pointer(n *ir.Node) string {
	if n.Parent() == nil {
		return "/" + escape(n.Name())
	}
	return Pointer(n.Parent()) + "/" + ir.ChildrenKey + "/" + escape(n.Name())
}

// TextPointer returns the JSON pointer to the text of n.
func TextPointer(n *ir.Node) string {
	return Pointer(n) + "/" + ir.TextKey
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escape(s string) string {
	return pointerEscaper.Replace(s)
}
