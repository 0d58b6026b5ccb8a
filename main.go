// Released under an MIT license. See LICENSE.

/*
Lisp is a small interpreter for a Lisp dialect with closures that capture
their free variables, unhygienic macros and quasiquotation.

	lisp                  # Read expressions from stdin.
	lisp -e '(+ 1 2)'     # Evaluate an expression and print the result.
	lisp script.scm       # Evaluate a script.
	lisp -w 'lib/*.scm'   # Evaluate scripts again when they change.

Lisp is released under an MIT-style license.
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/engine"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/system/options"
	"github.com/michaelmacinnis/lisp/internal/system/watch"
	"github.com/michaelmacinnis/lisp/internal/ui"
)

func main() {
	options.Parse()

	os.Exit(run())
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	return 1
}

func logger() *slog.Logger {
	level := slog.LevelError
	if options.Verbose() {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run() int {
	log := logger()

	opts := []engine.Option{engine.Logger(log)}
	if options.DeepCapture() {
		opts = append(opts, engine.DeepCapture())
	}

	if options.NestedQuasiquote() {
		opts = append(opts, engine.NestedQuasiquote())
	}

	if !options.Prelude() {
		opts = append(opts, engine.NoPrelude())
	}

	e, err := engine.New(opts...)
	if err != nil {
		return fail(err)
	}

	if expr := options.Expr(); expr != "" {
		v, err := e.EvaluateString("-e", expr)
		if err != nil {
			return fail(err)
		}

		fmt.Println(literal.String(v))

		return 0
	}

	paths := []string{}

	for _, pattern := range options.Scripts() {
		matches, err := reader.Expand(pattern)
		if err != nil {
			return fail(err)
		}

		paths = append(paths, matches...)
	}

	status := 0

	for _, path := range paths {
		_, err := e.EvaluateFile(path)
		if err != nil {
			if !options.Watch() {
				return fail(err)
			}

			status = fail(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watching := make(chan error, 1)

	if options.Watch() && len(paths) > 0 {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		go func() {
			watching <- watch.Watch(ctx, log, func(path string) {
				_, err := e.EvaluateFile(path)
				if err != nil {
					fail(err)
				}
			}, paths...)
		}()
	} else {
		watching <- nil
	}

	if options.REPL() {
		err = ui.Run(e)
		if err != nil {
			status = fail(err)
		}

		cancel()
	}

	err = <-watching
	if err != nil {
		return fail(err)
	}

	return status
}
