// Package tagdoc loads, edits and stores markup documents.
//
// The document tree itself lives in package ir, parsing in package
// parse and encoding in package encode. This package ties them to
// files and applies batches of edits.
package tagdoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/tagdoc/encode"
	"github.com/signadot/tagdoc/ir"
	"github.com/signadot/tagdoc/parse"
)

type Tool struct {
	ParseOpts  []parse.ParseOption
	EncodeOpts []encode.EncodeOption
}

func DefaultTool() *Tool {
	return &Tool{}
}

// Load reads all of r and parses it as one document.
func (t *Tool) Load(r io.Reader) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return parse.Parse(d, t.ParseOpts...)
}

func (t *Tool) LoadFile(path string) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	node, err := t.Load(f)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", path, err)
	}
	return node, nil
}

func (t *Tool) Store(w io.Writer, node *ir.Node) error {
	return encode.Encode(node, w, t.EncodeOpts...)
}

// StoreFile encodes node to path. The document is written to a
// temporary file in the same directory which then replaces path, so
// readers never observe a partial document.
func (t *Tool) StoreFile(path string, node *ir.Node) error {
	buf := bytes.NewBuffer(nil)
	if err := t.Store(buf, node); err != nil {
		return err
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}
	tmp := f.Name()
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error replacing %s: %w", path, err)
	}
	return nil
}

func ReadFile(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	return (&Tool{ParseOpts: opts}).LoadFile(path)
}

func WriteFile(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	return (&Tool{EncodeOpts: opts}).StoreFile(path, node)
}
