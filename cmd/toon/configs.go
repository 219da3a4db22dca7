package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/go-toon/encode"
	"github.com/signadot/tony-format/go-toon/format"
	"github.com/signadot/tony-format/go-toon/parse"
	"github.com/signadot/tony-format/go-toon/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Relaxed  bool `cli:"name=relaxed desc='tabulate object arrays whose first element has all keys'"`
	Indent   int  `cli:"name=i aliases=indent desc='spaces per nesting level'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting depth'"`

	InFormat, OutFormat *format.Format
	Delim               rune

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

func (cfg *MainConfig) delimOpt(_ *cli.Context, v string) (any, error) {
	r, err := token.ParseDelimiter(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Delim = r
	return r, nil
}

// parseOpts returns the options for reading file, "-" for stdin.
func (cfg *MainConfig) parseOpts(file string) ([]parse.ParseOption, error) {
	fmat := format.JSONFormat
	if file != "-" {
		fmat = format.FromSuffix(file)
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	if !fmat.CanRead() {
		return nil, fmt.Errorf("%w: cannot read %s", cli.ErrUsage, fmat)
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}, nil
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TOONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.MaxDepth(cfg.MaxDepth),
		encode.RelaxedTables(cfg.Relaxed),
	}
	if cfg.Delim != 0 {
		res = append(res, encode.Delimiter(cfg.Delim))
	}
	if cfg.colorOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorOn reports whether output to w is colored: when -color is given,
// or when it is not given at all and w is a terminal.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type EncodeConfig struct {
	*MainConfig
	Query string `cli:"name=q aliases=query desc='expr-lang expression selecting what to encode'"`
	Patch string `cli:"name=p aliases=patch desc='json patch file applied before the query'"`

	Encode *cli.Command
}

type StatsConfig struct {
	*MainConfig
	All bool `cli:"name=all desc='include objects and scalars, not only arrays'"`

	Stats *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Context int `cli:"name=c desc='unchanged lines shown around changes, -1 for all'"`

	Diff *cli.Command
}

type BenchConfig struct {
	*MainConfig
	Gops    bool   `cli:"name=gops desc='start a gops diagnostics agent'"`
	Samples string `cli:"name=samples desc='directory to save the measured renderings in'"`
	N       int    `cli:"name=n desc='number of records in the built in datasets'"`

	Bench *cli.Command
}
