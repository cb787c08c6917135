// Package main is the entry point for textcore, a small inspection tool
// over the text engine: it loads a file and reports its line structure.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/textcore/internal/config"
	"github.com/dshills/textcore/internal/engine"
	"github.com/dshills/textcore/internal/engine/text"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath  string
	backend     string
	showLines   bool
	offset      int
	showVersion bool
	files       []string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "textcore %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.backend != "" {
		cfg.Engine.Backend = opts.backend
	}
	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	src, name, closeFn, err := openInput(opts.files, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFn()

	e, err := engine.NewFromReader(src, engineOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load %s: %v\n", name, err)
		return 1
	}

	fmt.Fprintf(stdout, "%s: %d characters, %d lines (%s backend)\n", name, e.Len(), e.LineCount(), e.Backend())

	if opts.showLines {
		printLines(stdout, e)
	}
	if opts.offset >= 0 {
		if err := printOffset(stdout, e, opts.offset); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("textcore", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.backend, "backend", "", "Storage backend (gap, list, string, memory, builder)")
	fs.StringVar(&opts.backend, "b", "", "Storage backend (shorthand)")
	fs.BoolVar(&opts.showLines, "lines", false, "Print every line with its offsets")
	fs.BoolVar(&opts.showLines, "l", false, "Print every line (shorthand)")
	fs.IntVar(&opts.offset, "offset", -1, "Convert a character offset to line and column")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "textcore - inspect the line structure of a text\n\n")
		fmt.Fprintf(stderr, "Usage: textcore [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  textcore -l notes.txt         List lines\n")
		fmt.Fprintf(stderr, "  textcore -offset 120 main.go  Locate offset 120\n")
		fmt.Fprintf(stderr, "  cat file | textcore -b list   Read stdin into a list backend\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.files = fs.Args()
	if len(opts.files) > 1 {
		fmt.Fprintf(stderr, "Error: at most one file may be given\n")
		return opts, errors.New("too many files")
	}
	if opts.backend != "" {
		if _, err := text.ParseKind(opts.backend); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return opts, err
		}
	}
	return opts, nil
}

func openInput(files []string, stdin io.Reader) (io.Reader, string, func(), error) {
	if len(files) == 0 || files[0] == "-" {
		return stdin, "<stdin>", func() {}, nil
	}
	f, err := os.Open(files[0])
	if err != nil {
		return nil, "", nil, err
	}
	return f, files[0], func() { _ = f.Close() }, nil
}

func printLines(w io.Writer, e *engine.Engine) {
	for i, l := range e.Lines() {
		content, _ := e.Substring(l.Start, l.Length)
		fmt.Fprintf(w, "%6d  start=%-6d len=%-5d term=%d  %q\n", i, l.Start, l.Length, l.Terminator, content)
	}
}

func printOffset(w io.Writer, e *engine.Engine, offset int) error {
	pos, err := e.OffsetToPosition(offset)
	if err != nil {
		return fmt.Errorf("offset %d: %w", offset, err)
	}
	units, err := e.OffsetToUTF16(offset)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "offset %d: line %d, column %d (utf16 %d)\n", offset, pos.Line, pos.Character, units)
	return nil
}
