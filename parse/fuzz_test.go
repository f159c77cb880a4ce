package parse

import (
	"testing"

	"github.com/signadot/tagdoc/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		``,
		`<a></a>`,
		`<a>x</a>`,
		`<root><child1>hello</child1><child2>world</child2></root>`,
		`<a><a>x</a></a>`,
		`<a>x<b>y</b>z</a>`,
		`<a><b></a>`,
		`<a>`,
		`</a>`,
		`<>`,
		`<a/>`,
		`text`,
		"<a>\n  <b>\n    t\n  </b>\n</a>\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// parse should not panic
		root, err := Parse(data)
		if err != nil {
			return
		}
		if root == nil {
			t.Fatal("nil root without error")
		}
		// a successful parse must survive render and reparse unchanged
		again, err := ParseString(root.Render(0))
		if err != nil {
			t.Fatalf("reparse of %q: %v", root.Render(0), err)
		}
		if !ir.Equal(root, again) {
			t.Fatalf("round trip mismatch:\n%s\nvs\n%s", root, again)
		}
	})
}
