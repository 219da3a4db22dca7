package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2, MaxDepth: 256}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default from file suffix, else json)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: toon/t, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "d",
			Aliases:     []string{"delim"},
			Description: "delimiter: comma, tab, pipe, semicolon or a single character",
			Type:        cli.NamedFuncOpt(cfg.delimOpt, "(delimiter)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "toon").
		WithSynopsis("toon [opts] command [opts]").
		WithDescription("toon encodes JSON and YAML documents in token oriented object notation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toonMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			StatsCommand(cfg),
			DiffCommand(cfg),
			BenchCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [-q expr] [-p patchfile] [files]").
		WithDescription("encode documents, optionally patched and then queried").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithAliases("s", "st").
		WithSynopsis("stats [-all] [files]").
		WithDescription("show how the arrays of documents are laid out").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the encodings of two documents line by line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func BenchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BenchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Bench, "bench").
		WithAliases("b").
		WithSynopsis("bench [-gops] [-samples dir] [files]").
		WithDescription(benchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bench(cfg, cc, args)
		})
}

const benchDescription = `bench compares the size of documents encoded as pretty JSON,
minified JSON and TOON.

Without files, the built in datasets users, products and config are
measured.  Sizes are counted in characters and in estimated tokens (words
times 1.3).  Savings are relative to minified JSON.`
