package state

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/struct/hash"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
)

func TestDefineGlobal(t *testing.T) {
	root := New(nil)
	child, err := root.Extend("y", num.NewInt(1))
	if err != nil {
		t.Fatal(err)
	}

	if err := child.DefineGlobal("x", num.NewInt(2)); err != nil {
		t.Fatal(err)
	}

	v, err := root.Lookup("x")
	if err != nil || !v.Equal(num.NewInt(2)) {
		t.Fatalf("Expected global x to be visible from the root; got %v, %v", v, err)
	}
}

func TestExtendCopies(t *testing.T) {
	parent, err := New(nil).Extend("x", num.NewInt(1))
	if err != nil {
		t.Fatal(err)
	}

	child, err := parent.Extend("x", num.NewInt(2))
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := parent.Lookup("x"); !v.Equal(num.NewInt(1)) {
		t.Fatalf("Parent frame changed: x = %v", v)
	}

	if v, _ := child.Lookup("x"); !v.Equal(num.NewInt(2)) {
		t.Fatalf("Child frame missing binding: x = %v", v)
	}
}

func TestLocalShadowsGlobal(t *testing.T) {
	s := New(nil)

	if err := s.DefineGlobal("x", num.NewInt(1)); err != nil {
		t.Fatal(err)
	}

	s, _ = s.Extend("x", num.NewInt(2))

	if v, _ := s.Lookup("x"); !v.Equal(num.NewInt(2)) {
		t.Fatalf("Expected local x; got %v", v)
	}
}

func TestMerge(t *testing.T) {
	s, _ := New(nil).Extend("x", num.NewInt(1))

	o := hash.New()
	o.Set("x", num.NewInt(2))
	o.Set("y", num.NewInt(3))

	m := s.Merge(o)

	if v, _ := m.Lookup("x"); !v.Equal(num.NewInt(2)) {
		t.Fatalf("Expected overlay to win; got %v", v)
	}

	if _, err := s.Lookup("y"); err == nil {
		t.Fatal("Merge changed the original frame")
	}
}

func TestReserved(t *testing.T) {
	s := New(nil)

	for _, name := range []string{"if", "+", "&", "print-debug"} {
		if _, err := s.Extend(name, num.NewInt(1)); !errors.Is(err, fault.Of(fault.ReservedIdentifier)) {
			t.Fatalf("Expected reserved identifier error for %s; got %v", name, err)
		}

		if err := s.DefineGlobal(name, num.NewInt(1)); !errors.Is(err, fault.Of(fault.ReservedIdentifier)) {
			t.Fatalf("Expected reserved identifier error for %s; got %v", name, err)
		}

		if s.Global().Has(name) || s.Local().Has(name) {
			t.Fatalf("%s was bound", name)
		}
	}
}

func TestUnbound(t *testing.T) {
	_, err := New(nil).Lookup("missing")
	if fault.KindOf(err) != fault.UnboundIdentifier {
		t.Fatalf("Expected unbound identifier; got %v", err)
	}
}
