package token

// Whitespace selects how formatting whitespace outside tags is treated.
type Whitespace int

const (
	// WhitespaceStrip drops every space, tab, newline and carriage
	// return that appears outside a tag.
	WhitespaceStrip Whitespace = iota
	// WhitespaceTrim keeps whitespace inside a text run and drops only
	// the leading and trailing runs.
	WhitespaceTrim
)

func (w Whitespace) String() string {
	switch w {
	case WhitespaceStrip:
		return "strip"
	case WhitespaceTrim:
		return "trim"
	default:
		return "<bad whitespace policy>"
	}
}

type tokenOpts struct {
	whitespace Whitespace
}

type TokenOpt func(*tokenOpts)

func TokenWhitespace(w Whitespace) TokenOpt {
	return func(o *tokenOpts) { o.whitespace = w }
}
