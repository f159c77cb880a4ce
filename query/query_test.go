package query

import (
	"errors"
	"testing"

	"github.com/signadot/tagdoc/ir"
	"github.com/signadot/tagdoc/parse"

	"github.com/google/go-cmp/cmp"
)

const store = `<store>
  <book>
    <kind>paper</kind>
    <price>12</price>
  </book>
  <ebook>
    <kind>digital</kind>
  </ebook>
  <name>corner</name>
</store>`

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func paths(hs []ir.Handle) []string {
	var res []string
	for _, h := range hs {
		res = append(res, h.String())
	}
	return res
}

type selectTest struct {
	q    string
	want []string
}

func TestSelect(t *testing.T) {
	root := mustParse(t, store)
	sts := []selectTest{
		{q: `name == "kind"`, want: []string{"/store/book/kind", "/store/ebook/kind"}},
		{q: `has("price")`, want: []string{"/store/book"}},
		{q: `child("kind") == "digital"`, want: []string{"/store/ebook"}},
		{q: `depth == 1 && leaf`, want: []string{"/store/name"}},
		{q: `text matches "^[0-9]+$"`, want: []string{"/store/book/price"}},
		{q: `children == 3`, want: []string{"/store"}},
		{q: `parent == "book"`, want: []string{"/store/book/kind", "/store/book/price"}},
		{q: `path startsWith "/store/e"`, want: []string{"/store/ebook", "/store/ebook/kind"}},
		{q: `"price" in names()`, want: []string{"/store/book"}},
		{q: `false`},
	}
	for _, st := range sts {
		hs, err := Select(root, st.q)
		if err != nil {
			t.Errorf("%s: %v", st.q, err)
			continue
		}
		if diff := cmp.Diff(st.want, paths(hs)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", st.q, diff)
		}
	}
}

func TestSelectHandles(t *testing.T) {
	root := mustParse(t, store)
	hs, err := MustCompile(`name == "book"`).Select(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(hs) != 1 || !root.Delete(hs[0]) {
		t.Fatalf("could not delete selection %v", hs)
	}
	if hs[0].Valid() {
		t.Error("handle still valid after delete")
	}
}

func TestFirst(t *testing.T) {
	root := mustParse(t, store)
	h, err := MustCompile(`name == "kind"`).First(root)
	if err != nil {
		t.Fatal(err)
	}
	if h.String() != "/store/book/kind" {
		t.Errorf("got %s", h)
	}
	h, err = MustCompile(`name == "nope"`).First(root)
	if err != nil || !h.IsZero() {
		t.Errorf("got %s, %v", h, err)
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`name +`, `name`, `nosuchvar == 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrQuery) {
			t.Errorf("%s: got %v", src, err)
		}
	}
}

func TestEval(t *testing.T) {
	root := mustParse(t, store)
	got, err := Eval(root.Child("book"), `child("kind") + ":" + child("price")`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "paper:12" {
		t.Errorf("got %v", got)
	}
}
