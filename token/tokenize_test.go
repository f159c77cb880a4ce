package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokSummary struct {
	Type TokenType
	Text string
	Off  int
}

func summarize(toks []Token) []tokSummary {
	res := make([]tokSummary, len(toks))
	for i := range toks {
		res[i] = tokSummary{Type: toks[i].Type, Text: string(toks[i].Bytes), Off: toks[i].Pos.I}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []TokenOpt
		want []tokSummary
	}{
		{
			name: "simple",
			in:   "<a>hi</a>",
			want: []tokSummary{
				{TOpen, "a", 0},
				{TText, "hi", 3},
				{TClose, "a", 5},
			},
		},
		{
			name: "formatting whitespace dropped",
			in:   "<a>\n  <b>\n    x y\n  </b>\n</a>\n",
			want: []tokSummary{
				{TOpen, "a", 0},
				{TOpen, "b", 6},
				{TText, "xy", 14},
				{TClose, "b", 20},
				{TClose, "a", 25},
			},
		},
		{
			name: "trim keeps interior whitespace",
			in:   "<a>\n  hello  world \n</a>",
			opts: []TokenOpt{TokenWhitespace(WhitespaceTrim)},
			want: []tokSummary{
				{TOpen, "a", 0},
				{TText, "hello  world", 6},
				{TClose, "a", 20},
			},
		},
		{
			name: "whitespace only text",
			in:   "<a> \t </a>",
			opts: []TokenOpt{TokenWhitespace(WhitespaceTrim)},
			want: []tokSummary{
				{TOpen, "a", 0},
				{TClose, "a", 6},
			},
		},
		{
			name: "trailing text",
			in:   "<a></a>tail",
			want: []tokSummary{
				{TOpen, "a", 0},
				{TClose, "a", 3},
				{TText, "tail", 7},
			},
		},
		{
			name: "names with spaces and dots",
			in:   "<a.b c></a.b c>",
			want: []tokSummary{
				{TOpen, "a.b c", 0},
				{TClose, "a.b c", 7},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tt.in), tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, summarize(toks)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
		off int
	}{
		{"<a>text<b", ErrUnterminated, 7},
		{"<>", ErrEmptyTag, 0},
		{"<a></>", ErrBadName, 3},
		{"<a/>", ErrBadName, 0},
		{"<a<b>", ErrBadName, 0},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.err, err)
			continue
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%q: %v does not wrap ErrMalformed", tt.in, err)
		}
		var tzErr *TokenizeErr
		if !errors.As(err, &tzErr) {
			t.Errorf("%q: expected *TokenizeErr, got %T", tt.in, err)
			continue
		}
		if tzErr.Pos.I != tt.off {
			t.Errorf("%q: error at offset %d, want %d", tt.in, tzErr.Pos.I, tt.off)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	d := []byte("<a>\n  <b>\n</a>")
	pd := NewPosDoc(d)
	tests := []struct {
		off       int
		line, col int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{4, 1, 0},
		{6, 1, 2},
		{10, 2, 0},
	}
	for _, tt := range tests {
		l, c := pd.Pos(tt.off).LineCol()
		if l != tt.line || c != tt.col {
			t.Errorf("offset %d: got (%d,%d) want (%d,%d)", tt.off, l, c, tt.line, tt.col)
		}
	}
}

func TestValidName(t *testing.T) {
	good := []string{"a", "child1", "a b", "x.y", "ü"}
	bad := []string{"", "a/b", "<a", "a>", "/"}
	for _, n := range good {
		if !ValidName(n) {
			t.Errorf("%q should be valid", n)
		}
	}
	for _, n := range bad {
		if ValidName(n) {
			t.Errorf("%q should be invalid", n)
		}
	}
}
