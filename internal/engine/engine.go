// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed code.
package engine

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/hash"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/engine/boot"
	"github.com/michaelmacinnis/lisp/internal/engine/eval"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
	"github.com/michaelmacinnis/lisp/internal/engine/state"
	"github.com/michaelmacinnis/lisp/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating code.
// Every evaluation shares one global tier and evaluations are serialized.
type T struct {
	mu      sync.Mutex
	eval    *eval.T
	global  *hash.T
	log     *slog.Logger
	options eval.Options
	out     io.Writer
	prelude bool
}

// Option configures an engine.
type Option func(*T)

// DeepCapture makes closures also capture the free variables of the
// lambdas nested inside them.
func DeepCapture() Option {
	return func(e *T) {
		e.options.DeepCapture = true
	}
}

// Logger sets where diagnostics go.
func Logger(l *slog.Logger) Option {
	return func(e *T) {
		e.log = l
	}
}

// NestedQuasiquote makes quasiquote track nesting depth.
func NestedQuasiquote() Option {
	return func(e *T) {
		e.options.NestedQuasiquote = true
	}
}

// NoPrelude skips evaluation of the prelude.
func NoPrelude() Option {
	return func(e *T) {
		e.prelude = false
	}
}

// Output sets where print and print-debug write.
func Output(w io.Writer) Option {
	return func(e *T) {
		e.out = w
	}
}

// New creates a new engine and evaluates the prelude.
func New(opts ...Option) (*T, error) {
	e := &T{
		global:  hash.New(),
		log:     slog.Default(),
		out:     os.Stdout,
		prelude: true,
	}

	for _, o := range opts {
		o(e)
	}

	e.eval = eval.New(e.out, e.log, e.options)

	if e.prelude {
		_, err := e.EvaluateString("boot", boot.Script())
		if err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Evaluate evaluates c as a top-level form in a fresh state.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.evaluate(c)
}

// EvaluateFile evaluates each form in the file at path, stopping at the
// first error. A file that cannot be read is logged and yields Null.
func (e *T) EvaluateFile(path string) (cell.I, error) {
	cs, err := reader.Load(path)
	if fault.KindOf(err) == fault.IOFailure {
		e.log.Error("evaluate", "error", err)

		return pair.Null, nil
	} else if err != nil {
		return pair.Null, err
	}

	e.log.Debug("evaluate", "path", path, "forms", len(cs))

	return e.all(cs)
}

// EvaluateString evaluates each form in text, stopping at the first error.
func (e *T) EvaluateString(label, text string) (cell.I, error) {
	cs, err := reader.Parse(label, text)
	if err != nil {
		return pair.Null, err
	}

	return e.all(cs)
}

// Lookup returns the global binding for name, or nil.
func (e *T) Lookup(name string) cell.I {
	return e.global.Get(name)
}

// Names returns every global and reserved identifier, sorted.
func (e *T) Names() []string {
	names := append(e.global.Names(), special.Names()...)

	sort.Strings(names)

	return names
}

func (e *T) all(cs []cell.I) (cell.I, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var r cell.I = pair.Null

	for _, c := range cs {
		var err error

		r, err = e.evaluate(c)
		if err != nil {
			return r, err
		}
	}

	return r, nil
}

func (e *T) evaluate(c cell.I) (cell.I, error) {
	v, err := e.eval.Eval(state.New(e.global).WithExpr(c)).Result()
	if err != nil {
		return pair.Null, err
	}

	return v, nil
}
