package debug

import (
	"bytes"
	"testing"

	"github.com/signadot/tagdoc/ir"
)

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	old := out
	out = buf
	defer func() { out = old }()

	n := ir.MustNew("a", "x")
	h := n.Upsert("b", "")
	Logf("node %s handle %s n=%d\n", n, h, 3)
	want := "node <a>\n  x\n  <b>\n  </b>\n</a>\n handle /a/b n=3\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
