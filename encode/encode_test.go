package encode_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/signadot/tagdoc/encode"
	"github.com/signadot/tagdoc/format"
	"github.com/signadot/tagdoc/ir"
	"github.com/signadot/tagdoc/parse"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

var regexpANSI = regexp.MustCompile("\x1b\\[[0-9;]*m")

const doc = `<root><child1>hello</child1><child2>world<grand>x</grand></child2></root>`

func mustParse(t *testing.T, s string, opts ...parse.ParseOption) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEncodeMatchesRender(t *testing.T) {
	root := mustParse(t, doc)
	buf := &bytes.Buffer{}
	if err := encode.Encode(root, buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(root.Render(0), buf.String()); diff != "" {
		t.Errorf("encode differs from render (-render +encode):\n%s", diff)
	}
	buf.Reset()
	if err := encode.Encode(root.Child("child2"), buf, encode.Depth(3)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(root.Child("child2").Render(3), buf.String()); diff != "" {
		t.Errorf("encode differs from render (-render +encode):\n%s", diff)
	}
}

func TestEncodeIndent(t *testing.T) {
	root := mustParse(t, `<a><b>t</b></a>`)
	got := encode.MustString(root, encode.Indent(4))
	want := "<a>\n    <b>\n        t\n    </b>\n</a>"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	root := mustParse(t, `<a><b>100%</b></a>`)
	plain := encode.MustString(root)
	colored := encode.MustString(root, encode.EncodeColors(encode.NewColors()))
	if colored == plain {
		t.Fatal("expected escape sequences in colored output")
	}
	if !strings.Contains(colored, "100%") {
		t.Errorf("percent sign mangled: %q", colored)
	}
	stripped := regexpANSI.ReplaceAllString(colored, "")
	if diff := cmp.Diff(plain, stripped); diff != "" {
		t.Errorf("colored output differs beyond escapes (-plain +stripped):\n%s", diff)
	}
}

func TestEncodeJSON(t *testing.T) {
	root := mustParse(t, doc)
	got := encode.MustString(root, encode.EncodeFormat(format.JSONFormat), encode.Indent(1))
	want := `{
 "root": {
  "children": {
   "child1": {
    "text": "hello"
   },
   "child2": {
    "children": {
     "grand": {
      "text": "x"
     }
    },
    "text": "world"
   }
  }
 }
}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	back := mustParse(t, got, parse.ParseJSON())
	if !ir.Equal(root, back) {
		t.Errorf("json round trip mismatch:\n%s", back)
	}
}

func TestEncodeYAML(t *testing.T) {
	root := mustParse(t, doc)
	buf := &bytes.Buffer{}
	if err := encode.Encode(root, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "root:") || !strings.Contains(out, "text: hello") {
		t.Errorf("unexpected yaml:\n%s", out)
	}
	back := mustParse(t, out, parse.ParseYAML())
	if !ir.Equal(root, back) {
		t.Errorf("yaml round trip mismatch:\n%s", back)
	}
}

func TestToMapSliceOrder(t *testing.T) {
	root := mustParse(t, `<r>t<c></c><a></a><b></b></r>`)
	ms := encode.ToMapSlice(root)
	var keys []string
	for _, it := range ms[0].Value.(yaml.MapSlice) {
		keys = append(keys, it.Key.(string))
	}
	if diff := cmp.Diff([]string{ir.TextKey, ir.ChildrenKey}, keys); diff != "" {
		t.Errorf("body keys (-want +got):\n%s", diff)
	}
	keys = nil
	for _, it := range ms[0].Value.(yaml.MapSlice)[1].Value.(yaml.MapSlice) {
		keys = append(keys, it.Key.(string))
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("child keys (-want +got):\n%s", diff)
	}
}

func TestEncodeNil(t *testing.T) {
	if err := encode.Encode(nil, &bytes.Buffer{}); err == nil {
		t.Error("expected error")
	}
}
