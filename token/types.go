package token

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	TOpen TokenType = iota
	TClose
	TText
)

func (t TokenType) String() string {
	switch t {
	case TOpen:
		return "TOpen"
	case TClose:
		return "TClose"
	case TText:
		return "TText"
	default:
		return fmt.Sprintf("<bad token type %d>", int(t))
	}
}

// Token is one open tag, close tag or run of text. For tags, Bytes holds
// the tag name without angle brackets or the closing '/'.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Markup returns the token as it would appear in a document.
func (t *Token) Markup() string {
	switch t.Type {
	case TOpen:
		return "<" + string(t.Bytes) + ">"
	case TClose:
		return "</" + string(t.Bytes) + ">"
	default:
		return string(t.Bytes)
	}
}

// ValidName reports whether name may be used as a tag name: it must be
// non-empty and contain none of '<', '>' or '/'.
func ValidName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "<>/")
}

func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
