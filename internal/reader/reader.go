// Released under an MIT license. See LICENSE.

// Package reader turns text into expressions. It buffers lines until they
// hold one or more complete expressions.
package reader

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
)

// T (reader) encapsulates the lexer and parser.
type T struct {
	buffer strings.Builder
	label  string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{label: name}
}

// Pending returns true if the reader holds part of an expression.
func (r *reader) Pending() bool {
	return r.buffer.Len() > 0
}

// Reset discards any partial expression.
func (r *reader) Reset() {
	r.buffer.Reset()
}

// Scan adds line to the reader's buffer. If the buffer now holds only
// complete expressions they are returned and the buffer is cleared. If the
// buffer ends part way through an expression, Scan returns no expressions
// and no error and waits for more input.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.buffer.WriteString(line)

	l := lexer.New(r.label)
	l.Scan(r.buffer.String())

	cs, err := parse(l)
	if errors.Is(err, parser.ErrIncomplete) || (err == nil && l.Pending()) {
		return nil, nil
	}

	r.Reset()

	if err != nil {
		return nil, err
	}

	return cs, nil
}

// Parse returns all of the expressions in text.
func Parse(label, text string) ([]cell.I, error) {
	l := lexer.New(label)

	l.Scan(text)
	l.Scan("\n")

	cs, err := parse(l)
	if err != nil {
		return nil, err
	}

	if l.Pending() {
		return nil, fault.New(fault.ParseFailure, "%s: %s", label, "unterminated string")
	}

	return cs, nil
}

// Load reads and parses the file at path.
func Load(path string) ([]cell.I, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.Wrap(fault.IOFailure, err)
	}

	return Parse(path, string(b))
}

// Expand returns the paths matching pattern. The last path element may
// contain wildcards. A pattern that matches nothing is returned as is so
// that the failure to open it can be reported.
func Expand(pattern string) ([]string, error) {
	dir, file := filepath.Split(pattern)
	if !strings.ContainsAny(file, "*?[") {
		return []string{pattern}, nil
	}

	open := dir
	if open == "" {
		open = "."
	}

	entries, err := os.ReadDir(open)
	if err != nil {
		return nil, fault.Wrap(fault.IOFailure, err)
	}

	var matches []string

	for _, e := range entries {
		ok, err := adapted.Match(file, e.Name())
		if err != nil {
			return nil, fault.Wrap(fault.IOFailure, err)
		}

		if ok && !e.IsDir() {
			matches = append(matches, dir+e.Name())
		}
	}

	if len(matches) == 0 {
		return []string{pattern}, nil
	}

	sort.Strings(matches)

	return matches, nil
}

func parse(l *lexer.T) ([]cell.I, error) {
	var cs []cell.I

	err := parser.New(func(c cell.I) {
		cs = append(cs, c)
	}, l.Token).Parse()

	return cs, err
}
