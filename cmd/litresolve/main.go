// Command litresolve runs the Lit semantic analyzer over source files
// and reports diagnostics, following the teacher's manual os.Args
// subcommand style (cmd/funxy/main.go) rather than the flag package.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dorichev/lit/internal/cache"
	"github.com/dorichev/lit/internal/config"
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/externals"
	"github.com/dorichev/lit/internal/pipeline"
	"github.com/dorichev/lit/internal/symbols"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] != "check" {
		fmt.Fprintf(os.Stderr, "Usage: %s check <file> [file2...] [--cache path] [--config path]\n", os.Args[0])
		os.Exit(1)
	}

	var files []string
	var cachePath, configPath string
	args := os.Args[2:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--cache":
			i++
			if i < len(args) {
				cachePath = args[i]
			}
		case "--config":
			i++
			if i < len(args) {
				configPath = args[i]
			}
		default:
			files = append(files, args[i])
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "litresolve check: no files given")
		os.Exit(1)
	}

	if configPath == "" {
		configPath = config.DefaultConfigFile
	}
	opts, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cachePath == "" {
		cachePath = opts.CachePath
	}

	var diskCache *cache.Cache
	if cachePath != "" {
		diskCache, err = cache.Open(cachePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer diskCache.Close()
	}

	colorize := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	ext := buildExternals(opts)

	hadError := false
	for _, file := range files {
		errs, err := checkFile(file, ext, diskCache)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			hadError = true
			continue
		}
		for _, e := range errs {
			hadError = true
			printDiagnostic(e, colorize)
		}
	}

	if hadError {
		os.Exit(1)
	}
}

// buildExternals layers a project's --config-declared externals on top
// of the built-in set every run gets.
func buildExternals(opts *config.Options) symbols.Scope {
	scope := externals.Standard()
	for name, sig := range opts.Externals {
		scope[name] = &symbols.Letal{Type: sig, Defined: true}
	}
	return scope
}

func checkFile(file string, ext symbols.Scope, diskCache *cache.Cache) ([]*diagnostics.DiagnosticError, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	if diskCache != nil {
		hash := cache.Hash(content)
		if cached, ok, err := diskCache.Lookup(file, hash); err == nil && ok {
			return cached, nil
		}
	}

	ctx := &pipeline.PipelineContext{
		File:      file,
		Source:    string(content),
		Externals: ext,
	}
	ctx = pipeline.Standard().Run(ctx)

	var errs []*diagnostics.DiagnosticError
	if ctx.Sink != nil {
		errs = ctx.Sink.Errors()
	}

	if diskCache != nil {
		hash := cache.Hash(content)
		if err := diskCache.Store(file, hash, errs); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return errs, nil
}

func printDiagnostic(e *diagnostics.DiagnosticError, colorize bool) {
	if colorize {
		fmt.Printf("\x1b[31m%s\x1b[0m\n", e.Error())
		return
	}
	fmt.Println(e.Error())
}
