package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/kpmcc/golox/lox"
)

const version = "0.1.0"

// Exit codes follow the usual interpreter convention: 64 for bad usage,
// 65 for scan/parse errors, 70 for runtime errors.
const (
	exitUsage      = 64
	exitDataErr    = 65
	exitRuntimeErr = 70
)

func main() {
	os.Exit(runCLI(os.Args[1:]))
}

func runCLI(args []string) int {
	fs := flag.NewFlagSet("golox", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	showTokens := fs.Bool("tokens", false, "print the scanned tokens and stop")
	showAST := fs.Bool("ast", false, "print the parsed expression tree and stop")
	plain := fs.Bool("plain", false, "use the plain line REPL instead of the full-screen one")
	noColor := fs.Bool("no-color", false, "disable styled output")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage()
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		return exitUsage
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if *plain {
		cfg.REPL.Plain = true
	}
	if *noColor {
		cfg.REPL.Color = false
	}

	opts := runOptions{Tokens: *showTokens, AST: *showAST}
	switch rest := fs.Args(); len(rest) {
	case 0:
		return runREPL(cfg, opts)
	case 1:
		return runFile(rest[0], opts, os.Stdout, os.Stderr)
	default:
		printUsage()
		return exitUsage
	}
}

type runOptions struct {
	Tokens bool
	AST    bool
}

func runFile(path string, opts runOptions, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "golox: cannot read %s: %v\n", path, err)
		return 1
	}
	return runSource(string(source), opts, stdout, stderr)
}

// runSource drives one trip through the pipeline: scan, parse, evaluate,
// print. Scan errors are all reported before anything else; a parse
// error or any scan error stops the run before evaluation.
func runSource(source string, opts runOptions, stdout, stderr io.Writer) int {
	scanner := lox.NewScanner(source)
	tokens := scanner.ScanTokens()
	for _, scanErr := range scanner.Errors() {
		fmt.Fprintln(stderr, scanErr.Error())
	}

	if opts.Tokens {
		for _, tok := range tokens {
			fmt.Fprintln(stdout, tok)
		}
		if len(scanner.Errors()) > 0 {
			return exitDataErr
		}
		return 0
	}

	expr, err := lox.NewParser(tokens).Parse()
	if err != nil {
		fmt.Fprintln(stderr, lox.FormatErrorWithSource(err, source))
		return exitDataErr
	}
	if len(scanner.Errors()) > 0 {
		return exitDataErr
	}
	if expr == nil {
		return 0
	}

	if opts.AST {
		fmt.Fprintln(stdout, lox.PrintExpr(expr))
		return 0
	}

	result, err := lox.Evaluate(expr)
	if err != nil {
		fmt.Fprintln(stderr, lox.FormatErrorWithSource(err, source))
		return exitRuntimeErr
	}
	fmt.Fprintln(stdout, lox.FormatValue(result))
	return 0
}

func runREPL(cfg config, opts runOptions) int {
	if cfg.REPL.Plain || !stdinIsTerminal() {
		return runPlainREPL(cfg, opts)
	}
	if err := runTUIREPL(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [script]\n", prog)
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -tokens")
	fmt.Fprintln(os.Stderr, "    print the scanned tokens and stop")
	fmt.Fprintln(os.Stderr, "  -ast")
	fmt.Fprintln(os.Stderr, "    print the parsed expression tree and stop")
	fmt.Fprintln(os.Stderr, "  -plain")
	fmt.Fprintln(os.Stderr, "    use the plain line REPL instead of the full-screen one")
	fmt.Fprintln(os.Stderr, "  -no-color")
	fmt.Fprintln(os.Stderr, "    disable styled output")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
