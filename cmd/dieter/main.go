// Command dieter parses and typechecks Dieter source files.
//
// Usage: dieter [-a] [-s] [-v] <file.dtr> ...
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/dieterlang/dieter/internal/config"
	"github.com/dieterlang/dieter/internal/debugdump"
	"github.com/dieterlang/dieter/internal/diagnostics"
	"github.com/dieterlang/dieter/internal/pipeline"
	"github.com/dieterlang/dieter/internal/trace"
)

// projectConfigName is the optional per-directory project file
// consulted before typechecking each source file.
const projectConfigName = "dieter.yaml"

type options struct {
	dumpAST    bool
	dumpSymtab bool
	verbose    bool
	files      []string
}

func parseArgs(args []string) options {
	var o options
	for _, arg := range args {
		switch arg {
		case "-a", "--dump-ast":
			o.dumpAST = true
		case "-s", "--dump-symtab":
			o.dumpSymtab = true
		case "-v", "--verbose":
			o.verbose = true
		default:
			o.files = append(o.files, arg)
		}
	}
	return o
}

func main() {
	// Catch panics from a misbehaving checker rather than crash with a
	// raw Go stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a bug in dieter itself, not your source file")
			os.Exit(1)
		}
	}()

	o := parseArgs(os.Args[1:])
	if len(o.files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: dieter [-a] [-s] [-v] <file.dtr> ...")
		os.Exit(1)
	}

	colorize := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	var sink trace.Sink = trace.Discard{}
	if o.verbose {
		sink = trace.Writer{Write: func(s string) {
			if colorize {
				fmt.Fprintf(os.Stderr, "\033[2m%s\033[0m\n", s)
			} else {
				fmt.Fprintln(os.Stderr, s)
			}
		}}
	}

	exitCode := 0
	for _, file := range o.files {
		if !runFile(file, o, sink, colorize) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// runFile processes one source file with its own, independent root
// typing context. It returns false if the file failed to parse or
// typecheck (and wasn't a module that expected to).
func runFile(file string, o options, sink trace.Sink, colorize bool) bool {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
		return false
	}

	proj, err := config.LoadProject(filepath.Join(filepath.Dir(file), projectConfigName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
		return false
	}

	pl := pipeline.New(pipeline.ParseStage{}, pipeline.CheckStage{Sink: sink})
	ctx := pl.Run(&pipeline.Context{File: file, Source: string(src), Project: proj})

	for _, d := range ctx.Diagnostics {
		printDiagnostic(d, colorize)
	}
	if len(ctx.Diagnostics) > 0 {
		return false
	}

	if ctx.Err != nil {
		printError(file, ctx.Err, colorize)
		return false
	}

	if o.dumpAST {
		fmt.Println("--- AST:", file, "---")
		fmt.Println(debugdump.Program(ctx.Program))
	}
	if o.dumpSymtab {
		fmt.Println("--- Symbol table:", file, "---")
		fmt.Print(debugdump.Context(ctx.RootContext))
	}
	return true
}

func printDiagnostic(d *diagnostics.Diagnostic, colorize bool) {
	if colorize {
		fmt.Fprintf(os.Stderr, "\033[31m%s\033[0m\n", d.Error())
		return
	}
	fmt.Fprintln(os.Stderr, d.Error())
}

func printError(file string, err error, colorize bool) {
	msg := fmt.Sprintf("%s: %v", file, err)
	if colorize {
		fmt.Fprintf(os.Stderr, "\033[31m%s\033[0m\n", msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}
