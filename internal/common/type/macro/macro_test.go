package macro

import (
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

func TestMacro(t *testing.T) {
	m := New(pair.Null, pair.Null)

	if !Is(m) || Is(pair.Null) {
		t.Fatal("Is misclassified a value")
	}

	if s := literal.String(m); s != "#Macro" {
		t.Fatalf("Expected #Macro; got %s", s)
	}

	if !m.Equal(m) || m.Equal(New(pair.Null, pair.Null)) {
		t.Fatal("Macros are equal only to themselves")
	}

	if To(m).Params() != pair.Null || To(m).Body() != pair.Null {
		t.Fatal("Unexpected params or body")
	}
}
