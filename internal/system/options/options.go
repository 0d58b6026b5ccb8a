// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by --version.
const Version = "lisp 0.1.0"

//nolint:gochecknoglobals
var (
	deepCapture      bool
	expr             string
	interactive      bool
	nestedQuasiquote bool
	prelude          bool
	repl             bool
	scripts          []string
	terminal         int
	verbose          bool
	watch            bool
	usage            = `lisp

Usage:
  lisp [-nv] [--deep-capture] [--nested-quasiquote] -e EXPR
  lisp [-inv] [--deep-capture] [--nested-quasiquote] [-w] SCRIPT...
  lisp [-inv] [--deep-capture] [--nested-quasiquote]
  lisp -h
  lisp --version

Arguments:
  SCRIPT  Path to a script. The last path element may contain wildcards.

Options:
  -e, --eval=EXPR      Evaluate EXPR and print the result.
  -i, --interactive    Start the REPL after evaluating scripts.
  -n, --no-prelude     Do not evaluate the prelude.
  -v, --verbose        Log debug information to stderr.
  -w, --watch          Re-evaluate a script whenever it changes.
  --deep-capture       Closures also capture for the lambdas nested in them.
  --nested-quasiquote  Track the nesting depth of quasiquotes.
  -h, --help           Display this help.
  --version            Print the version.

If no expression or scripts are given, or -i is given, lisp reads and
evaluates expressions from stdin. If stdin is a TTY, lisp prompts for
them and keeps a history in ~/.lisp_history.
`
)

// DeepCapture returns true if --deep-capture was given.
func DeepCapture() bool {
	return deepCapture
}

// Expr returns the expression given with -e, if any.
func Expr() string {
	return expr
}

// Interactive returns true if the REPL runs and stdin is a TTY.
func Interactive() bool {
	return interactive
}

// NestedQuasiquote returns true if --nested-quasiquote was given.
func NestedQuasiquote() bool {
	return nestedQuasiquote
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse() {
	err := parse(docopt.DefaultParser, nil)
	if err != nil {
		// Bad input is reported by docopt before it exits.
		panic(err.Error())
	}
}

// Prelude returns false if -n was given.
func Prelude() bool {
	return prelude
}

// REPL returns true if expressions should be read from stdin.
func REPL() bool {
	return repl
}

// Scripts returns the scripts named on the command line.
func Scripts() []string {
	return scripts
}

// Terminal returns the file descriptor for stdin.
func Terminal() int {
	return terminal
}

// Verbose returns true if -v was given.
func Verbose() bool {
	return verbose
}

// Watch returns true if -w was given.
func Watch() bool {
	return watch
}

func parse(p *docopt.Parser, argv []string) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	deepCapture, _ = opts.Bool("--deep-capture")
	expr, _ = opts.String("--eval")
	nestedQuasiquote, _ = opts.Bool("--nested-quasiquote")
	verbose, _ = opts.Bool("--verbose")
	watch, _ = opts.Bool("--watch")

	noPrelude, _ := opts.Bool("--no-prelude")
	prelude = !noPrelude

	scripts, _ = opts["SCRIPT"].([]string)

	repl, _ = opts.Bool("--interactive")
	if expr == "" && len(scripts) == 0 {
		repl = true
	}

	terminal = int(os.Stdin.Fd())
	interactive = repl && isatty.IsTerminal(os.Stdin.Fd())

	return nil
}
