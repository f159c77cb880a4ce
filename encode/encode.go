package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tagdoc/format"
	"github.com/signadot/tagdoc/ir"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.MarkupFormat:
		return encodeMarkup(node, w, es, es.depth)
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %w: %d", ErrEncoding, format.ErrBadFormat, int(es.format))
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func (es *EncState) tag(name string, closing bool) string {
	lt := "<"
	attr := OpenColor
	if closing {
		lt = "</"
		attr = CloseColor
	}
	return es.color(SepColor, lt) + es.color(attr, name) + es.color(SepColor, ">")
}

func encodeMarkup(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	indent := strings.Repeat(" ", es.indent*depth)
	if err := writeString(w, indent+es.tag(node.Name(), false)+"\n"); err != nil {
		return err
	}
	if node.Text != "" {
		inner := strings.Repeat(" ", es.indent*(depth+1))
		if err := writeString(w, inner+es.color(TextColor, node.Text)+"\n"); err != nil {
			return err
		}
	}
	for _, c := range node.Children() {
		if err := encodeMarkup(c, w, es, depth+1); err != nil {
			return err
		}
	}
	return writeString(w, indent+es.tag(node.Name(), true)+"\n")
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := json.MarshalIndent(node.ToDoc(), "", strings.Repeat(" ", es.indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

// ToMapSlice returns the object form of the document rooted at node with
// keys in canonical order.
func ToMapSlice(node *ir.Node) yaml.MapSlice {
	return yaml.MapSlice{{Key: node.Name(), Value: bodySlice(node)}}
}

func bodySlice(node *ir.Node) yaml.MapSlice {
	res := yaml.MapSlice{}
	if node.Text != "" {
		res = append(res, yaml.MapItem{Key: ir.TextKey, Value: node.Text})
	}
	if node.Len() != 0 {
		children := yaml.MapSlice{}
		for _, c := range node.Children() {
			children = append(children, yaml.MapItem{Key: c.Name(), Value: bodySlice(c)})
		}
		res = append(res, yaml.MapItem{Key: ir.ChildrenKey, Value: children})
	}
	return res
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(ToMapSlice(node), yaml.Indent(max(es.indent, 1)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
