package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tagdoc/encode"
	"github.com/signadot/tagdoc/ir"
	"github.com/signadot/tagdoc/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch and at most one file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	if file == "-" && args[0] == "-" && !cfg.String {
		return fmt.Errorf("%w: patch and document cannot both be read from stdin", cli.ErrUsage)
	}
	target, err := getDocFile(cc, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	var res *ir.Node
	if cfg.Merge {
		res, err = patch.Merge(target, p)
	} else {
		res, err = patch.Apply(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func getPatch(cfg *PatchConfig, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	var r io.Reader = os.Stdin
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	return d, nil
}

func mkPatch(cfg *MkPatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.MkPatch.Parse(cc, args)
	if err != nil {
		cfg.MkPatch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: mkpatch requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := getDocFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getDocFile(cc, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d, err := patch.CreateMerge(from, to)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(append(d, '\n'))
	return err
}
