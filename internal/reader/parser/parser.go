// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for s-expressions.
package parser

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/token"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/quote"
	"github.com/michaelmacinnis/lisp/internal/common/type/str"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// ErrIncomplete is reported when the tokens run out part way through an
// expression. More input may complete it.
var ErrIncomplete = fault.New(fault.ParseFailure, "unexpected end of input") //nolint:gochecknoglobals

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.I)    // Function to call to emit a parsed expression.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits cells until there are no more tokens.
// It returns a ParseFailure fault for malformed input and ErrIncomplete if
// the input ends part way through an expression.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = fault.New(fault.ParseFailure, "%s", r)
		default:
			err = fault.New(fault.ParseFailure, "unexpected error")
		}
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.expression())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// require returns the next token or reports that the input is incomplete.
func (p *T) require() *token.T {
	t := p.peek()
	if t == nil {
		panic(ErrIncomplete)
	}

	return t
}

// T state functions.

// An expression is an atom, a list or a quote, quasiquote or unquote
// character followed by an expression.
func (p *T) expression() cell.I {
	t := p.require()

	switch {
	case t.Is('('):
		p.consume()

		return p.list()
	case t.Is(')'):
		panic(t.Source().String() + ": unexpected ')'")
	case t.Is('\''):
		p.consume()

		return quote.New(quote.Quote, p.expression())
	case t.Is('`'):
		p.consume()

		return quote.New(quote.Quasiquote, p.expression())
	case t.Is(','):
		p.consume()

		return quote.New(quote.Unquote, p.expression())
	case t.Is(token.String):
		p.consume()

		return p.text(t)
	}

	return p.atom(p.consume())
}

// <list> ::= <expression>* ('.' <expression>)? ')' .
func (p *T) list() cell.I {
	var elements []cell.I

	for {
		t := p.require()

		if t.Is(')') {
			p.consume()

			return list.New(elements...)
		}

		if t.Is(token.Symbol) && t.Value() == "." {
			if len(elements) == 0 {
				panic(t.Source().String() + ": unexpected '.'")
			}

			p.consume()

			tail := p.expression()

			t = p.require()
			if !t.Is(')') {
				panic(t.Source().String() + ": expected ')' after dotted tail, got '" + t.Value() + "'")
			}

			p.consume()

			return list.Improper(tail, elements...)
		}

		elements = append(elements, p.expression())
	}
}

func (p *T) atom(t *token.T) cell.I {
	s := t.Value()

	if s == "." {
		panic(t.Source().String() + ": unexpected '.'")
	}

	if !numeric(s) {
		return sym.Token(t)
	}

	if strings.Count(s, ".") == 0 {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			panic(t.Source().String() + ": invalid integer literal '" + s + "'")
		}

		return num.NewInt(i)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || strings.Count(s, ".") != 1 || strings.ContainsAny(s, "eExXpP_") {
		panic(t.Source().String() + ": invalid float literal '" + s + "'")
	}

	return num.NewFloat(f)
}

func (p *T) text(t *token.T) cell.I {
	v := t.Value()

	s, err := adapted.ActualBytes(v[1 : len(v)-1])
	if err != nil {
		panic(t.Source().String() + ": invalid string literal " + v)
	}

	return str.New(s)
}

// numeric returns true if s looks like the start of a number: an optional
// sign followed by a digit, or by a decimal point and a digit.
func numeric(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if s != "" && s[0] == '.' {
		s = s[1:]
	}

	return s != "" && s[0] >= '0' && s[0] <= '9'
}
