// Released under an MIT license. See LICENSE.

// Package ui provides a read-eval-print loop for the lisp language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/system/history"
	"github.com/michaelmacinnis/lisp/internal/system/options"
	"github.com/michaelmacinnis/lisp/internal/system/process"
)

const (
	continued = ".. "
	prompt    = "=> "
)

// Evaluator is the interface for things that want to process parsed expressions.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Names() []string
}

// Run reads expressions from stdin, evaluates them with e and prints the
// results. It returns when stdin is exhausted.
func Run(e Evaluator) error {
	if !options.Interactive() {
		return Stream(e, os.Stdin, os.Stdout, os.Stderr)
	}

	err := process.BecomeForegroundGroup(options.Terminal())
	if err != nil {
		return err
	}

	defer process.RestoreForegroundGroup(options.Terminal()) //nolint:errcheck

	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e.Names()))

	_ = history.Load(cli.ReadHistory)

	r := reader.New("stdin")

	for {
		p := prompt
		if r.Pending() {
			p = continued
		}

		line, err := cli.Prompt(p)

		switch {
		case err == nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
		case errors.Is(err, liner.ErrPromptAborted):
			r.Reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stdout)

			return history.Save(cli.WriteHistory)
		default:
			_ = history.Save(cli.WriteHistory)

			return err
		}

		// The completer is rebuilt so that new definitions are offered.
		if respond(e, r, line+"\n", os.Stdout, os.Stderr) {
			cli.SetWordCompleter(completer(e.Names()))
		}
	}
}

// Stream evaluates expressions read from in without prompting. Results are
// written to out and errors to errs.
func Stream(e Evaluator, in io.Reader, out, errs io.Writer) error {
	r := reader.New("stdin")

	br := bufio.NewReader(in)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			respond(e, r, line, out, errs)
		}

		if errors.Is(err, io.EOF) {
			if r.Pending() {
				fmt.Fprintln(errs, "error: unexpected end of input")
			}

			return nil
		} else if err != nil {
			return err
		}
	}
}

func completer(names []string) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexAny(head, " \t()'`,\"") + 1
		word := head[start:]
		head = head[:start]

		if word == "" {
			return head, nil, tail
		}

		for _, name := range names {
			if strings.HasPrefix(name, word) {
				completions = append(completions, name)
			}
		}

		return head, completions, tail
	}
}

// respond scans line and evaluates any complete expressions. It returns
// true if at least one expression was evaluated.
func respond(e Evaluator, r *reader.T, line string, out, errs io.Writer) bool {
	cs, err := r.Scan(line)
	if err != nil {
		fmt.Fprintf(errs, "error: %v\n", err)

		return false
	}

	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			fmt.Fprintf(errs, "error: %v\n", err)

			continue
		}

		fmt.Fprintln(out, literal.String(v))
	}

	return len(cs) > 0
}
