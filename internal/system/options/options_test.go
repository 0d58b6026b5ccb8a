package options

import (
	"reflect"
	"testing"

	"github.com/docopt/docopt-go"
)

func setup(t *testing.T, argv ...string) {
	t.Helper()

	// A nil argv makes docopt parse os.Args.
	if argv == nil {
		argv = []string{}
	}

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	err := parse(p, argv)
	if err != nil {
		t.Fatalf("Parsing %v failed: %v", argv, err)
	}
}

func TestDefaults(t *testing.T) {
	setup(t)

	if !REPL() || !Prelude() || Verbose() || Watch() || DeepCapture() || NestedQuasiquote() {
		t.Fatal("Unexpected defaults")
	}

	if Expr() != "" || len(Scripts()) != 0 {
		t.Fatal("Expected no expression or scripts")
	}
}

func TestExpr(t *testing.T) {
	setup(t, "-n", "--deep-capture", "-e", "(+ 1 2)")

	if Expr() != "(+ 1 2)" || REPL() || Prelude() || !DeepCapture() {
		t.Fatalf("Unexpected options for -e: %q", Expr())
	}
}

func TestScripts(t *testing.T) {
	setup(t, "-w", "--nested-quasiquote", "a.scm", "b.scm")

	if !reflect.DeepEqual(Scripts(), []string{"a.scm", "b.scm"}) {
		t.Fatalf("Unexpected scripts %v", Scripts())
	}

	if REPL() || !Watch() || !NestedQuasiquote() {
		t.Fatal("Unexpected options for scripts")
	}

	setup(t, "-iv", "a.scm")

	if !REPL() || !Verbose() {
		t.Fatal("Expected -i to start the REPL after scripts")
	}
}

func TestInvalid(t *testing.T) {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	if err := parse(p, []string{"-w", "-e", "1"}); err == nil {
		t.Fatal("Expected -w with -e to be rejected")
	}
}
