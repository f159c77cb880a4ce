package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Keys of a node body in the object form of a document.
//
// The object form of a document is {"<root name>": body} where body is
//
//	{"text": "...", "children": {"<name>": body, ...}}
//
// with either key omitted when empty. A body may also be a bare string,
// standing for a node with that text and no children, or null.
const (
	TextKey     = "text"
	ChildrenKey = "children"
)

// ToDoc returns the object form of the document rooted at n.
func (n *Node) ToDoc() map[string]any {
	return map[string]any{n.name: n.ToMap()}
}

// ToMap returns the object form body of n.
func (n *Node) ToMap() map[string]any {
	res := map[string]any{}
	if n.Text != "" {
		res[TextKey] = n.Text
	}
	if len(n.children) != 0 {
		cm := make(map[string]any, len(n.children))
		for _, c := range n.children {
			cm[c.name] = c.ToMap()
		}
		res[ChildrenKey] = cm
	}
	return res
}

// FromDoc builds a tree from its object form. The map must have exactly
// one key, the root name.
func FromDoc(doc map[string]any) (*Node, error) {
	if len(doc) != 1 {
		return nil, fmt.Errorf("%w: document must have exactly one root, got %d", ErrForm, len(doc))
	}
	for name, body := range doc {
		return FromMap(name, body)
	}
	panic("unreachable")
}

// FromMap builds a node called name from an object form body.
func FromMap(name string, body any) (*Node, error) {
	n, err := New(name, "")
	if err != nil {
		return nil, err
	}
	switch b := body.(type) {
	case nil:
		return n, nil
	case string:
		n.Text = b
		return n, nil
	}
	m, ok := asMap(body)
	if !ok {
		return nil, fmt.Errorf("%w: body of %q is %T", ErrForm, name, body)
	}
	for k, v := range m {
		switch k {
		case TextKey:
			text, err := scalarText(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			n.Text = text
		case ChildrenKey:
			if v == nil {
				continue
			}
			cm, ok := asMap(v)
			if !ok {
				return nil, fmt.Errorf("%w: children of %q is %T", ErrForm, name, v)
			}
			for _, cName := range slices.Sorted(maps.Keys(cm)) {
				c, err := FromMap(cName, cm[cName])
				if err != nil {
					return nil, err
				}
				n.Attach(c)
			}
		default:
			return nil, fmt.Errorf("%w: unknown key %q in %q", ErrForm, k, name)
		}
	}
	return n, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		res := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			res[ks] = v
		}
		return res, true
	}
	return nil, false
}

func scalarText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(x), nil
	}
	return "", fmt.Errorf("%w, got %T", errNotString, v)
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToDoc())
}

// FromJSON builds a tree from the JSON object form of a document.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForm, err)
	}
	return FromDoc(doc)
}
