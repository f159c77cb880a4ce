package token

import (
	"bytes"
)

type tkState int

const (
	stOutside tkState = iota
	stInTag
	stText
)

type tokenizer struct {
	opts   tokenOpts
	posDoc *PosDoc

	state     tkState
	text      []byte
	textStart int
}

// Tokenize appends the tokens of src to dst.
//
// Text between tags is emitted as a single TText token immediately
// before the tag that ends it, or at the end of input. Formatting
// whitespace outside tags is handled according to the Whitespace policy
// (default WhitespaceStrip).
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	tz := &tokenizer{posDoc: NewPosDoc(src), textStart: -1}
	for _, opt := range opts {
		opt(&tz.opts)
	}
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		if c == '<' {
			dst = tz.flush(dst)
			tz.state = stInTag
			end := bytes.IndexByte(src[i+1:], '>')
			if end == -1 {
				return nil, NewTokenizeErr(ErrUnterminated, tz.posDoc.Pos(i))
			}
			tok, err := tz.tag(src[i+1:i+1+end], i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i += end + 2
			tz.state = stOutside
			continue
		}
		tz.char(c, i)
		i++
	}
	return tz.flush(dst), nil
}

func (tz *tokenizer) char(c byte, i int) {
	if IsSpace(c) {
		if tz.opts.whitespace == WhitespaceStrip || tz.state == stOutside {
			return
		}
	}
	if tz.state == stOutside {
		tz.state = stText
		tz.textStart = i
	}
	tz.text = append(tz.text, c)
}

func (tz *tokenizer) flush(dst []Token) []Token {
	if tz.state != stText {
		return dst
	}
	text := tz.text
	if tz.opts.whitespace == WhitespaceTrim {
		text = bytes.TrimRight(text, " \t\n\r")
	}
	if len(text) != 0 {
		dst = append(dst, Token{
			Type:  TText,
			Pos:   tz.posDoc.Pos(tz.textStart),
			Bytes: bytes.Clone(text),
		})
	}
	tz.text = tz.text[:0]
	tz.textStart = -1
	tz.state = stOutside
	return dst
}

func (tz *tokenizer) tag(body []byte, off int) (Token, error) {
	pos := tz.posDoc.Pos(off)
	if len(body) == 0 {
		return Token{}, NewTokenizeErr(ErrEmptyTag, pos)
	}
	tok := Token{Type: TOpen, Pos: pos}
	if body[0] == '/' {
		tok.Type = TClose
		body = body[1:]
	}
	if !ValidName(string(body)) {
		return Token{}, NewTokenizeErr(ErrBadName, pos)
	}
	tok.Bytes = bytes.Clone(body)
	return tok, nil
}
