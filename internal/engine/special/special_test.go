package special

import "testing"

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		f := Lookup(name)
		if f == None {
			t.Fatalf("%s is not reserved", name)
		}

		if f.String() != name {
			t.Fatalf("Expected %s; got %s", name, f.String())
		}
	}

	if Reserved("x") || Lookup("x") != None {
		t.Fatal("x should not be reserved")
	}
}

func TestArity(t *testing.T) {
	tests := []struct {
		form  Form
		arity int
	}{
		{Add, 2},
		{Cons, 2},
		{Str, 2},
		{Car, 1},
		{IsUnquote, 1},
		{If, 0},
		{Print, 0},
		{Rest, 0},
	}

	for _, tt := range tests {
		if a := tt.form.Arity(); a != tt.arity {
			t.Fatalf("%s: expected arity %d; got %d", tt.form, tt.arity, a)
		}

		if p := tt.form.Primitive(); p != (tt.arity > 0) {
			t.Fatalf("%s: expected primitive %v; got %v", tt.form, !p, p)
		}
	}
}
