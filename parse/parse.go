package parse

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/tagdoc/debug"
	"github.com/signadot/tagdoc/format"
	"github.com/signadot/tagdoc/ir"
	"github.com/signadot/tagdoc/token"

	"github.com/goccy/go-yaml"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.MarkupFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmptyDocument
	}
	switch pOpts.format {
	case format.JSONFormat:
		return ir.FromJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	return parseTokens(toks, token.NewPosDoc(d).End(), pOpts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

type open struct {
	node *ir.Node
	tok  *token.Token
}

func parseTokens(toks []token.Token, end *token.Pos, opts *parseOpts) (*ir.Node, error) {
	var (
		stack []open
		root  *ir.Node
	)
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case token.TText:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: %q at %s", ErrStrayText, t.Bytes, t.Pos)
			}
			stack[len(stack)-1].node.Text = string(t.Bytes)
		case token.TOpen:
			if root != nil {
				return nil, fmt.Errorf("%w: %s at %s follows </%s>", ErrMultiRoot, t.Markup(), t.Pos, root.Name())
			}
			node, err := ir.New(t.String(), "")
			if err != nil {
				return nil, fmt.Errorf("%w: %w at %s", ErrMalformed, err, t.Pos)
			}
			trackPos(node, t.Pos, opts)
			stack = append(stack, open{node: node, tok: t})
		case token.TClose:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: %s at %s", ErrUnopenedTag, t.Markup(), t.Pos)
			}
			top := stack[len(stack)-1]
			if top.node.Name() != t.String() {
				return nil, fmt.Errorf("%w: %s at %s closes %s at %s",
					ErrMismatched, t.Markup(), t.Pos, top.tok.Markup(), top.tok.Pos)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = top.node
				continue
			}
			stack[len(stack)-1].node.Attach(top.node)
		default:
			return nil, fmt.Errorf("%w: unexpected token %s", ErrMalformed, t.Info())
		}
	}
	if len(stack) != 0 {
		top := stack[len(stack)-1]
		return nil, fmt.Errorf("%w: %s at %s is still open at end of input %s", ErrUnclosed, top.tok.Markup(), top.tok.Pos, end)
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrForm, err)
	}
	return ir.FromDoc(doc)
}
