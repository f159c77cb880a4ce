package parse

import (
	"github.com/signadot/tagdoc/format"
	"github.com/signadot/tagdoc/ir"
	"github.com/signadot/tagdoc/token"
)

type parseOpts struct {
	format     format.Format
	whitespace token.Whitespace
	positions  map[*ir.Node]*token.Pos
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.TokenWhitespace(o.whitespace)}
}

type ParseOption func(*parseOpts)

func ParseMarkup() ParseOption {
	return ParseFormat(format.MarkupFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
func ParseWhitespace(w token.Whitespace) ParseOption {
	return func(o *parseOpts) { o.whitespace = w }
}

// ParsePositions records the position of the opening tag of every node
// created while parsing markup into m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
