// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for s-expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/lisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/lisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	saved action   // Escaped action.
	state action   // Current action.

	source loc.T // Current location.
	start  loc.T // Location of the current token's first rune.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.start = l.source
	l.state = skipWhitespace

	return l
}

// Pending returns true if the lexer is part way through a token. A token
// is only emitted once the character after it has been seen so a symbol
// at the very end of the input stays pending until more text is scanned.
func (l *T) Pending() bool {
	return l.first < len(l.bytes)
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t, ok := <-l.tokens:
			if !ok {
				return nil
			}

			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.source.Char = l.runes
	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.start

	l.tokens <- token.New(c, v, &source)
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	bytes := strings.Join(l.queue, "")

	if l.first < len(l.bytes) {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16) //nolint:gomnd
}

func (l *T) next() token.Class {
	r, w := l.peek()
	if r != eof {
		l.accept(r, w)
	}

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.start = l.source
	l.first = l.index
}

// T states.

func escapeNextCharacter(l *T) action {
	r := l.next()

	if r == eof {
		return nil
	}

	return l.resume()
}

func scanString(l *T) action {
	for {
		c := l.next()

		switch c {
		case eof:
			return nil
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		case '\\':
			return l.escape(scanString, escapeNextCharacter)
		}
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ', '"', '\'', '(', ')', ',', ';', '`':
			l.emit(token.Symbol, l.Text())

			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ':
			l.skip()

			continue
		case '(', ')', '\'', ',', '`':
			l.emit(r, l.Text())

			return skipWhitespace
		case '"':
			return scanString
		case ';':
			return skipComment
		default:
			return scanSymbol
		}
	}
}
