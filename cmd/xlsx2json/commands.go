package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "transform",
			Aliases:     []string{"t"},
			Description: "transform rule <path>=split:<delims>|function:<expr>|command:<cmd> (repeatable)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.transformOpt), "(rule)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "xlsx2json").
		WithSynopsis("xlsx2json [opts] [inputs]").
		WithDescription("xlsx2json converts the named ranges of .xlsx workbooks into JSON documents.\n" +
			"Inputs are .xlsx files or directories, which are scanned for .xlsx files (not recursively).").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xlsx2jsonMain(cfg, cc, args)
		})
}
