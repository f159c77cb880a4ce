package main

import (
	"fmt"
	"os"

	"github.com/signadot/tagdoc"
	"github.com/signadot/tagdoc/encode"
	"github.com/signadot/tagdoc/ir"

	"github.com/dustin/go-humanize"
	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a name, a text and at most one file", cli.ErrUsage)
	}
	e := tagdoc.Edit{Op: tagdoc.EditSet, Path: cfg.At, Name: args[0], Text: args[1]}
	return editFile(cfg.MainConfig, cc, cfg.Write, e, args[2:])
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: del requires a name and at most one file", cli.ErrUsage)
	}
	e := tagdoc.Edit{Op: tagdoc.EditDelete, Path: cfg.At, Name: args[0], Text: cfg.Text}
	return editFile(cfg.MainConfig, cc, cfg.Write, e, args[1:])
}

func editFile(cfg *MainConfig, cc *cli.Context, write bool, e tagdoc.Edit, args []string) error {
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	if write && file == "-" {
		return fmt.Errorf("%w: -w requires a file", cli.ErrUsage)
	}
	if !ir.ValidName(e.Name) {
		return fmt.Errorf("%w: %w: %q", cli.ErrUsage, ir.ErrBadName, e.Name)
	}
	doc, err := getDocFile(cc, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	tool := tagdoc.DefaultTool()
	res, err := tool.Apply(doc, e)
	if err != nil {
		return err
	}
	if !res[0].Applied {
		theLog.Info("nothing to delete", "file", file, "name", e.Name)
	}
	if write {
		tool.EncodeOpts = cfg.fileEncOpts(file)
		if err := tool.StoreFile(file, doc); err != nil {
			return err
		}
		size := "?"
		if fi, err := os.Stat(file); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}
		theLog.Info("wrote", "file", file, "op", e.Op.String(), "name", e.Name, "size", size)
		return nil
	}
	return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...)
}
