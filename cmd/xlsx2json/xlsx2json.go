package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/signadot/xlsx2json"
	"github.com/signadot/xlsx2json/encode"
	"github.com/signadot/xlsx2json/schema"
	"github.com/signadot/xlsx2json/transform"
	"github.com/signadot/xlsx2json/validate"
	"github.com/signadot/xlsx2json/workbook"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func xlsx2jsonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	s, err := cfg.settings(args)
	if err != nil {
		return err
	}
	log := newLog(os.Stderr, s.LogLevel)
	if len(s.Inputs) == 0 {
		return fmt.Errorf("%w: no inputs given", cli.ErrUsage)
	}
	files := collectInputs(log, s.Inputs)
	if len(files) == 0 {
		log.Warn("no .xlsx files found", "inputs", s.Inputs)
		return nil
	}

	conv := &xlsx2json.Converter{
		Prefix:    s.Prefix,
		KeepEmpty: s.KeepEmpty,
		Trim:      s.Trim,
		Log:       log,
	}
	if s.Schema != "" {
		sch, err := schema.Load(s.Schema)
		if err != nil {
			log.Error("cannot load schema", "error", err)
			return cli.ExitCodeErr(1)
		}
		v, err := validate.New(sch.JSON)
		if err != nil {
			log.Error("cannot compile schema", "path", s.Schema, "error", err)
			return cli.ExitCodeErr(1)
		}
		conv.Schema = sch.Root
		conv.Validator = v
	}
	rules := transform.NewSet()
	for _, r := range s.Transform {
		rule, err := transform.Parse(r, s.Prefix)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		rules.Add(rule, conv.Schema)
	}
	conv.Rules = rules
	log.Debug("settings", "prefix", s.Prefix, "output-dir", s.OutputDir, "schema", s.Schema,
		"rules", rules.Len(), "inputs", len(files))

	out := &xlsx2json.Output{
		Dir:     s.OutputDir,
		Stdout:  cc.Out,
		Diff:    s.Diff,
		DiffOut: os.Stderr,
		Log:     log,
	}
	if s.OutputDir == xlsx2json.StdoutDir && (cfg.Color || isTerminal(cc.Out)) {
		out.Colors = encode.NewColors()
	} else if s.Diff && (cfg.Color || isTerminal(os.Stderr)) {
		out.Colors = encode.NewColors()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	failed := 0
	for _, file := range files {
		if err := convertFile(ctx, log, conv, out, file); err != nil {
			log.Error("conversion failed", "input", file, "error", err)
			failed++
		}
		if ctx.Err() != nil {
			break
		}
	}
	if failed != 0 {
		log.Error("some inputs failed", "failed", failed, "total", len(files))
		return cli.ExitCodeErr(1)
	}
	return nil
}

func convertFile(ctx context.Context, log *slog.Logger, conv *xlsx2json.Converter, out *xlsx2json.Output, file string) error {
	log.Info("converting", "input", file)
	r, err := workbook.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()
	r.Warnf = func(format string, args ...any) {
		log.Warn(fmt.Sprintf(format, args...))
	}
	res, err := conv.Convert(ctx, r)
	if err != nil {
		return err
	}
	if err := out.Write(stem(file), res); err != nil {
		return err
	}
	log.Debug("converted", "input", file, "stats", res.Stats)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
