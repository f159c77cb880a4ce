package main

import (
	"fmt"

	"github.com/signadot/tagdoc/encode"
	"github.com/signadot/tagdoc/query"

	"github.com/scott-cotton/cli"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	files := fileArgs(args[1:])
	if cfg.Eval {
		for _, file := range files {
			doc, err := getDocFile(cc, file, cfg.parseOpts(file)...)
			if err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
			v, err := query.Eval(doc, src)
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "%v\n", v)
		}
		return nil
	}
	q, err := query.Compile(src)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range files {
		doc, err := getDocFile(cc, file, cfg.parseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		hs, err := q.Select(doc)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		for _, h := range hs {
			if !cfg.Render {
				fmt.Fprintln(cc.Out, h.String())
				continue
			}
			if err := encode.Encode(h.Node(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
		}
	}
	return nil
}
