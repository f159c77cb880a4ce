package main

import (
	"fmt"

	"github.com/signadot/tagdoc/encode"
	"github.com/signadot/tagdoc/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a name or path argument", cli.ErrUsage)
	}
	what := args[0]
	files := fileArgs(args[1:])
	found := 0
	for i, file := range files {
		doc, err := getDocFile(cc, file, cfg.parseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		n, err := getNode(cfg, doc, what)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", what, file, err)
		}
		if n == nil {
			theLog.Info("not found", "file", file, "name", what)
			continue
		}
		found++
		if err := encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(files)); err != nil {
			return err
		}
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getNode(cfg *GetConfig, doc *ir.Node, what string) (*ir.Node, error) {
	if cfg.Path {
		n, err := doc.GetPath(what)
		if err != nil {
			return nil, err
		}
		if cfg.Text != "" && n.Text != cfg.Text {
			return nil, nil
		}
		return n, nil
	}
	if !ir.ValidName(what) {
		return nil, fmt.Errorf("%w: %w: %q", cli.ErrUsage, ir.ErrBadName, what)
	}
	if doc.Name() == what && (cfg.Text == "" || doc.Text == cfg.Text) {
		return doc, nil
	}
	return doc.Locate(what, cfg.Text).Node(), nil
}
