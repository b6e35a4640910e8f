package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/signadot/xlsx2json"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	OutputDir string `cli:"name=output-dir aliases=o desc='output directory, - for stdout (default output)'"`
	Schema    string `cli:"name=schema aliases=s desc='JSON schema guiding key names, order and validation'"`
	KeepEmpty bool   `cli:"name=keep-empty desc='keep empty values'"`
	Prefix    string `cli:"name=prefix aliases=p desc='name prefix selecting the ranges to convert (default json.)'"`
	LogLevel  string `cli:"name=log-level desc='log level: debug, info, warn or error (default info)'"`
	Config    string `cli:"name=config aliases=c desc='YAML or JSON configuration file'"`
	Trim      bool   `cli:"name=trim desc='trim whitespace around string values'"`
	Diff      bool   `cli:"name=diff desc='report changes against existing output files'"`
	Color     bool   `cli:"name=color desc='color output even when not on a terminal'"`

	Transform []string

	Main *cli.Command
}

func (cfg *MainConfig) transformOpt(_ *cli.Context, v string) (any, error) {
	cfg.Transform = append(cfg.Transform, v)
	return v, nil
}

// isSet reports whether the option name was given on the command line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// FileConfig is the configuration file format.  Command line options
// take precedence over it.
type FileConfig struct {
	Inputs    []string `yaml:"inputs"`
	OutputDir string   `yaml:"output_dir"`
	Prefix    string   `yaml:"prefix"`
	Schema    string   `yaml:"schema"`
	KeepEmpty bool     `yaml:"keep_empty"`
	LogLevel  string   `yaml:"log_level"`
	Trim      bool     `yaml:"trim"`
	Diff      bool     `yaml:"diff"`
	Transform []string `yaml:"transform"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc := &FileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// Settings are the effective settings of a run.
type Settings struct {
	Inputs    []string
	OutputDir string
	Prefix    string
	Schema    string
	KeepEmpty bool
	LogLevel  slog.Level
	Trim      bool
	Diff      bool
	Transform []string
}

func (cfg *MainConfig) settings(args []string) (*Settings, error) {
	fc := &FileConfig{}
	if cfg.Config != "" {
		var err error
		fc, err = loadFileConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("%w: config: %w", cli.ErrUsage, err)
		}
	}
	s := &Settings{
		Inputs:    fc.Inputs,
		OutputDir: fc.OutputDir,
		Prefix:    fc.Prefix,
		Schema:    fc.Schema,
		KeepEmpty: fc.KeepEmpty || cfg.KeepEmpty,
		Trim:      fc.Trim || cfg.Trim,
		Diff:      fc.Diff || cfg.Diff,
		Transform: fc.Transform,
	}
	if len(args) != 0 {
		s.Inputs = args
	}
	if cfg.isSet("output-dir") {
		s.OutputDir = cfg.OutputDir
	}
	if cfg.isSet("prefix") {
		s.Prefix = cfg.Prefix
	}
	if cfg.isSet("schema") {
		s.Schema = cfg.Schema
	}
	if len(cfg.Transform) != 0 {
		s.Transform = cfg.Transform
	}
	level := fc.LogLevel
	if cfg.isSet("log-level") {
		level = cfg.LogLevel
	}
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	s.LogLevel = lvl

	if s.OutputDir == "" {
		s.OutputDir = "output"
	}
	if s.Prefix == "" {
		s.Prefix = xlsx2json.DefaultPrefix
	}
	s.Prefix = xlsx2json.NormalizePrefix(s.Prefix)
	return s, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	case "critical":
		return slog.LevelError, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q: want debug, info, warn or error", cli.ErrUsage, s)
	}
	return lvl, nil
}
