package engine

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/reader"
)

func setup(t *testing.T, opts ...Option) (*T, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}

	e, err := New(append(opts, Output(out))...)
	if err != nil {
		t.Fatalf("Starting engine failed: %v", err)
	}

	return e, out
}

func check(t *testing.T, e *T, src, expected string) {
	t.Helper()

	c, err := e.EvaluateString("test", src)
	if err != nil {
		t.Fatalf("(%s) failed: %v", src, err)
	}

	if a := literal.String(c); a != expected {
		t.Fatalf("(%s): expected %s; got %s", src, expected, a)
	}
}

func TestPrelude(t *testing.T) {
	e, out := setup(t)

	tests := []struct {
		src, expected string
	}{
		{"(list 1 2 3)", "(1 2 3)"},
		{"(not ())", "t"},
		{"(not 1)", "()"},
		{"(and 1 2)", "2"},
		{"(or () 2)", "2"},
		{"(when t 1)", "1"},
		{"(unless t 1)", "()"},
		{"(let1 x 5 (* x x))", "25"},
		{"(length '(1 2 3))", "3"},
		{"(nth 1 '(a b c))", "b"},
		{"(cadr '(1 2 3))", "2"},
		{"(caddr '(1 2 3))", "3"},
		{"(map (lambda (x) (* x 2)) '(1 2 3))", "(2 4 6)"},
		{"(filter (lambda (x) (> x 1)) '(1 2 3))", "(2 3)"},
		{"(foldl '+ 0 '(1 2 3 4))", "10"},
		{"(append '(1 2) '(3))", "(1 2 3)"},
		{"(reverse '(1 2 3))", "(3 2 1)"},
		{"(<= 1 1)", "t"},
		{"(>= 1 2)", "()"},
		{"(!= 1 2)", "t"},
		{"(abs -2.5)", "2.5"},
		{"(min 3 1)", "1"},
		{"(max 3 1)", "3"},
		{"nil", "()"},
	}

	for _, tt := range tests {
		check(t, e, tt.src, tt.expected)
	}

	check(t, e, `(println "hi")`, "()")

	if out.String() != "hi\n" {
		t.Fatalf("Expected \"hi\\n\"; got %q", out.String())
	}
}

func TestNoPrelude(t *testing.T) {
	e, _ := setup(t, NoPrelude())

	_, err := e.EvaluateString("test", "(list 1)")
	if fault.KindOf(err) != fault.UnboundIdentifier {
		t.Fatalf("Expected unbound identifier; got %v", err)
	}
}

func TestStructuralEquality(t *testing.T) {
	e, _ := setup(t)

	check(t, e, "(= '(1 2) '(1 2))", "t")
	check(t, e, "(= '(1 2) '(1 3))", "()")
	check(t, e, "(= '(1 (2 \"x\")) '(1 (2 \"x\")))", "t")
	check(t, e, "(= 1 1.0)", "t")
	check(t, e, "(= () ())", "t")
	check(t, e, "(= 'a 'a)", "t")
}

func TestDefInsideCall(t *testing.T) {
	e, _ := setup(t)

	check(t, e, "(defn set-x () (def x 5))", "#Lambda")
	check(t, e, "(set-x)", "5")
	check(t, e, "x", "5")
}

func TestEvaluateStopsAtFirstError(t *testing.T) {
	e, out := setup(t)

	c, err := e.EvaluateString("test", `(print "a") (car 1) (print "b")`)
	if fault.KindOf(err) != fault.TypeMismatch || c != pair.Null {
		t.Fatalf("Expected type mismatch and Null; got %v, %v", c, err)
	}

	if out.String() != "a" {
		t.Fatalf("Expected evaluation to stop; got %q", out.String())
	}

	// The engine keeps working after an error.
	check(t, e, "(+ 1 2)", "3")
}

func TestParameterShadowsPrelude(t *testing.T) {
	e, _ := setup(t)

	check(t, e, "(defn count (list) (map (lambda (e) (length list)) list))", "#Lambda")
	check(t, e, "(count '(a b))", "(2 2)")
}

func TestEvaluateFile(t *testing.T) {
	var diagnostics strings.Builder

	e, _ := setup(t, Logger(slog.New(slog.NewTextHandler(&diagnostics, nil))))

	path := filepath.Join(t.TempDir(), "script.scm")

	err := os.WriteFile(path, []byte("(defn sq (x) (* x x))\n(sq 12)\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	c, err := e.EvaluateFile(path)
	if err != nil || literal.String(c) != "144" {
		t.Fatalf("Expected 144; got %v, %v", c, err)
	}

	// A file that cannot be read has no forms.
	c, err = e.EvaluateFile(filepath.Join(t.TempDir(), "missing.scm"))
	if err != nil || c != pair.Null {
		t.Fatalf("Expected Null and no error; got %v, %v", c, err)
	}

	if !strings.Contains(diagnostics.String(), "missing.scm") {
		t.Fatalf("Expected the i/o failure to be logged; got %q", diagnostics.String())
	}
}

func TestRoundTrip(t *testing.T) {
	e, _ := setup(t)

	for _, src := range []string{
		"'(1 -2 3.5 \"s\\\"q\\\\\" sym ())",
		"'(((1 (2.0 (\"three\" (four)))) . 5) '6 `(7 ,8))",
		"(cons 1.0 (cons '(a . b) 100000000000.0))",
		"\"tab\\there\\nnewline\"",
	} {
		c, err := e.EvaluateString("test", src)
		if err != nil {
			t.Fatalf("(%s) failed: %v", src, err)
		}

		text := literal.String(c)

		cs, err := reader.Parse("render", text)
		if err != nil || len(cs) != 1 {
			t.Fatalf("Reparsing (%s) failed: %v", text, err)
		}

		if !c.Equal(cs[0]) {
			t.Fatalf("Rendered %s does not reparse to an equal expression", text)
		}
	}
}

func TestConcurrentEvaluation(t *testing.T) {
	e, _ := setup(t)

	check(t, e, "(def n 0)", "0")

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 25; j++ {
				_, err := e.EvaluateString("test", "(def n (+ n 1))")
				if err != nil {
					t.Error(err)

					return
				}
			}
		}()
	}

	wg.Wait()

	check(t, e, "n", "200")
}

func TestNames(t *testing.T) {
	e, _ := setup(t)

	names := e.Names()

	for _, k := range []string{"if", "map", "print-debug", "t"} {
		found := false

		for _, n := range names {
			if n == k {
				found = true

				break
			}
		}

		if !found {
			t.Fatalf("%s missing from %v", k, names)
		}
	}

	if e.Lookup("map") == nil || e.Lookup("missing") != nil {
		t.Fatal("Lookup returned the wrong binding")
	}
}
