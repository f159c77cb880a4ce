package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tagdoc/encode"
	"github.com/signadot/tagdoc/format"
	"github.com/signadot/tagdoc/parse"
	"github.com/signadot/tagdoc/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Trim   bool `cli:"name=trim desc='keep inner whitespace of text, trimming only the ends'"`
	Indent int  `cli:"name=indent desc='spaces per indentation level'"`

	M bool `cli:"name=m aliases=markup desc='do i/o in markup'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat returns the format selected by -m, -j or -y.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.M:
		return format.MarkupFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.MarkupFormat, false
}

// parseOpts returns the parse options for reading file. Without a format
// flag the format follows the file suffix.
func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	fmat, ok := cfg.flagFormat()
	if !ok && file != "-" && file != "" {
		fmat = format.FromSuffix(file)
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	res := []parse.ParseOption{
		parse.ParseFormat(fmat),
	}
	if cfg.Trim {
		res = append(res, parse.ParseWhitespace(token.WhitespaceTrim))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat, _ := cfg.flagFormat()
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// fileEncOpts returns encoding options for writing file in place: no
// color, and without a format flag the format follows the file suffix.
func (cfg *MainConfig) fileEncOpts(file string) []encode.EncodeOption {
	fmat, ok := cfg.flagFormat()
	if !ok {
		fmat = format.FromSuffix(file)
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{encode.EncodeFormat(fmat)}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Text string `cli:"name=t desc='only match nodes with this text'"`
	Path bool   `cli:"name=p desc='treat the argument as a path such as /root/a/b'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	At    string `cli:"name=at desc='path of the node under which to set, default the root'"`
	Write bool   `cli:"name=w desc='write the result back to the file'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig
	Text  string `cli:"name=t desc='only delete a node with this text'"`
	At    string `cli:"name=at desc='path of the subtree in which to delete, default the root'"`
	Write bool   `cli:"name=w desc='write the result back to the file'"`

	Del *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Render bool `cli:"name=r desc='render the matching subtrees instead of their paths'"`
	Eval   bool `cli:"name=e desc='print the value of the expression for the root'"`

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m desc='the patch is a json merge patch (rfc 7386) instead of a json patch (rfc 6902)'"`
	String bool `cli:"name=s desc='patch arg is the patch itself rather than a file'"`

	Patch *cli.Command
}

type MkPatchConfig struct {
	*MainConfig

	MkPatch *cli.Command
}
