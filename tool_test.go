package tagdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/tagdoc/encode"
	"github.com/signadot/tagdoc/format"
	"github.com/signadot/tagdoc/ir"
	"github.com/signadot/tagdoc/parse"

	"github.com/google/go-cmp/cmp"
)

const sample = `<root><child1>hello</child1><child2>world</child2></root>`

func TestLoadStore(t *testing.T) {
	tool := DefaultTool()
	root, err := tool.Load(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	buf := &strings.Builder{}
	if err := tool.Store(buf, root); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(root.Render(0), buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	root, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	root.Upsert("child3", "new")
	if err := WriteFile(path, root); err != nil {
		t.Fatal(err)
	}
	again, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(root, again) {
		t.Errorf("got\n%s", again)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Errorf("temporary files left behind: %v", ents)
	}
}

func TestFileFormats(t *testing.T) {
	root, err := parse.ParseString(sample)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	for _, f := range format.AllFormats() {
		path := filepath.Join(dir, "doc"+f.Suffix())
		if err := WriteFile(path, root, encode.EncodeFormat(f)); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		back, err := ReadFile(path, parse.ParseFormat(format.FromSuffix(path)))
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if !ir.Equal(root, back) {
			t.Errorf("%s: got\n%s", f, back)
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.xml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
}

func TestReadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xml")
	if err := os.WriteFile(path, []byte("<a><b></a>"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadFile(path)
	if !errors.Is(err, parse.ErrMismatched) {
		t.Errorf("got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file: %v", err)
	}
}
