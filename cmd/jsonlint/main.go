// Copyright (C) 2026 The nen-io Authors. All Rights Reserved.

// Command jsonlint checks that its inputs are structurally well-formed
// JSON and reports the first problem in each, with byte offset and
// line/column. It reads the named files, or stdin when none are given;
// gzip, zstd, lz4 and s2 compressed files are decompressed transparently.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-yaml"
	"github.com/tailscale/hujson"

	nenio "github.com/Nen-Co/nen-io"
	"github.com/Nen-Co/nen-io/diagnose"
	"github.com/Nen-Co/nen-io/source"
)

// Exit codes.
const (
	exitOK      = 0 // every input is valid
	exitInvalid = 1 // at least one input failed structurally
	exitFailure = 2 // usage, configuration, or I/O failure
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	maxDepth int
	maxSize  int64
	chunk    int
	format   string
	config   string
	hujson   bool
	rate     int
}

// fileConfig is the YAML shape of -config files. Absent fields keep the
// flag (or default) value.
type fileConfig struct {
	MaxNestingDepth *int    `yaml:"max_nesting_depth"`
	MaxInputSize    *int64  `yaml:"max_input_size"`
	Format          *string `yaml:"format"`
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsonlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opt options
	def := nenio.DefaultLimits()
	fs.IntVar(&opt.maxDepth, "max-depth", int(def.MaxNestingDepth), "maximum nesting depth")
	fs.Int64Var(&opt.maxSize, "max-size", def.MaxInputSize, "maximum input size in bytes")
	fs.IntVar(&opt.chunk, "chunk", 4096, "read chunk size in bytes")
	fs.StringVar(&opt.format, "format", "text", `output format ("text", "json", or "xml")`)
	fs.StringVar(&opt.config, "config", "", "YAML file overriding limits and format")
	fs.BoolVar(&opt.hujson, "hujson", false, "standardize HuJSON input before validating")
	fs.IntVar(&opt.rate, "rate", 0, "read rate limit in bytes per second (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	if opt.config != "" {
		if err := applyConfig(opt.config, &opt); err != nil {
			fmt.Fprintf(stderr, "jsonlint: %v\n", err)
			return exitFailure
		}
	}
	if opt.maxDepth < 0 || opt.maxDepth > 255 {
		fmt.Fprintf(stderr, "jsonlint: max nesting depth %d is out of range\n", opt.maxDepth)
		return exitFailure
	}
	limits := nenio.Limits{MaxNestingDepth: uint8(opt.maxDepth), MaxInputSize: opt.maxSize}
	if err := limits.Check(); err != nil {
		fmt.Fprintf(stderr, "jsonlint: %v\n", err)
		return exitFailure
	}
	fm, err := newFormatter(opt.format)
	if err != nil {
		fmt.Fprintf(stderr, "jsonlint: %v\n", err)
		return exitFailure
	}

	var reps []diagnose.Report
	code := exitOK
	check := func(name string, r io.Reader) {
		res, err := checkReader(ctx, r, opt, limits)
		if err != nil {
			fmt.Fprintf(stderr, "jsonlint: %s: %v\n", name, err)
			code = exitFailure
			return
		}
		if !res.Valid && code == exitOK {
			code = exitInvalid
		}
		reps = append(reps, diagnose.New(name, res))
	}

	if fs.NArg() == 0 {
		check("stdin", stdin)
	}
	for _, path := range fs.Args() {
		rc, err := source.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "jsonlint: %v\n", err)
			code = exitFailure
			continue
		}
		check(path, rc)
		rc.Close()
	}

	if err := fm.Format(stdout, reps...); err != nil {
		fmt.Fprintf(stderr, "jsonlint: %v\n", err)
		return exitFailure
	}
	return code
}

// checkReader validates one input stream with the configured source
// wrappers applied.
func checkReader(ctx context.Context, r io.Reader, opt options, limits nenio.Limits) (nenio.Result, error) {
	r = source.Chunked(source.Throttle(ctx, r, opt.rate), opt.chunk)
	if !opt.hujson {
		return nenio.Validate(r, limits)
	}

	// Standardizing HuJSON needs the whole document in memory; the size
	// limit still applies, enforced on the standardized bytes.
	raw, err := io.ReadAll(io.LimitReader(r, limits.MaxInputSize+1))
	if err != nil {
		return nenio.Result{}, err
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return nenio.Result{}, fmt.Errorf("standardize hujson: %w", err)
	}
	return nenio.ValidateBytes(std, limits)
}

func applyConfig(path string, opt *options) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxNestingDepth != nil {
		opt.maxDepth = *cfg.MaxNestingDepth
	}
	if cfg.MaxInputSize != nil {
		opt.maxSize = *cfg.MaxInputSize
	}
	if cfg.Format != nil {
		opt.format = *cfg.Format
	}
	return nil
}

func newFormatter(name string) (diagnose.Formatter, error) {
	switch name {
	case "text":
		return diagnose.Text{}, nil
	case "json":
		return diagnose.JSON{Indent: true}, nil
	case "xml":
		return diagnose.XML{Indent: true}, nil
	}
	return nil, errors.New("unknown output format: " + name)
}
