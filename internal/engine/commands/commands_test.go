package commands

import (
	"errors"
	"math"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/type/closure"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/common/type/quote"
	"github.com/michaelmacinnis/lisp/internal/common/type/str"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/engine/special"
)

func i(n int64) cell.I {
	return num.NewInt(n)
}

func f(n float64) cell.I {
	return num.NewFloat(n)
}

func apply(t *testing.T, form special.Form, v ...cell.I) cell.I {
	t.Helper()

	c, err := Apply(form, v...)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", form, err)
	}

	return c
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		form     special.Form
		a, b     cell.I
		expected string
	}{
		{special.Add, i(1), i(2), "3"},
		{special.Sub, i(1), i(2), "-1"},
		{special.Mul, i(6), i(7), "42"},
		{special.Div, i(7), i(2), "3"},
		{special.Div, i(-7), i(2), "-3"},
		{special.Add, i(1), f(2), "3.0"},
		{special.Sub, f(1.5), i(1), "0.5"},
		{special.Mul, f(2), f(2.5), "5.0"},
		{special.Div, i(1), f(4), "0.25"},
		{special.Add, i(math.MaxInt64), i(1), "-9223372036854775808"},
		{special.Div, i(math.MinInt64), i(-1), "-9223372036854775808"},
	}

	for _, tt := range tests {
		c := apply(t, tt.form, tt.a, tt.b)
		if a := literal.String(c); a != tt.expected {
			t.Fatalf("(%s %s %s): expected %s; got %s",
				tt.form, literal.String(tt.a), literal.String(tt.b), tt.expected, a)
		}
	}
}

func TestNumericTower(t *testing.T) {
	ops := []special.Form{special.Add, special.Sub, special.Mul, special.Div}
	operands := []cell.I{i(3), f(1.5)}

	for _, op := range ops {
		for _, a := range operands {
			for _, b := range operands {
				c := apply(t, op, a, b)

				float := num.IsFloat(a) || num.IsFloat(b)
				if float != num.IsFloat(c) || float == num.IsInt(c) {
					t.Fatalf("(%s %s %s) produced %s", op, literal.String(a), literal.String(b), c.Name())
				}
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := Apply(special.Div, i(1), i(0))
	if !errors.Is(err, fault.Of(fault.DivisionByZero)) {
		t.Fatalf("Expected division by zero; got %v", err)
	}

	c := apply(t, special.Div, f(1), i(0))
	if !math.IsInf(num.ToFloat(c), 1) {
		t.Fatalf("Expected +Inf; got %s", literal.String(c))
	}
}

func TestEqual(t *testing.T) {
	a := list.New(i(1), i(2))

	tests := []struct {
		a, b     cell.I
		expected bool
	}{
		{a, list.New(i(1), i(2)), true},
		{a, list.New(i(1), i(3)), false},
		{a, a, true},
		{pair.Null, pair.Null, true},
		{i(2), f(2), true},
		{str.New("a"), str.New("a"), true},
		{sym.New("a"), sym.New("a"), true},
		{str.New("a"), sym.New("a"), false},
		{pair.Null, list.New(pair.Null), false},
	}

	for _, tt := range tests {
		c := apply(t, special.Equal, tt.a, tt.b)
		if (c != pair.Null) != tt.expected {
			t.Fatalf("(= %s %s): expected %v", literal.String(tt.a), literal.String(tt.b), tt.expected)
		}
	}
}

func TestRelational(t *testing.T) {
	if apply(t, special.Less, i(1), f(1.5)) != True {
		t.Fatal("Expected 1 < 1.5")
	}

	if apply(t, special.Greater, i(1), i(1)) != pair.Null {
		t.Fatal("Expected (> 1 1) to be nil")
	}

	if apply(t, special.Less, str.New("abc"), str.New("abd")) != True {
		t.Fatal("Expected strings to compare lexically")
	}

	_, err := Apply(special.Less, i(1), str.New("a"))
	if fault.KindOf(err) != fault.TypeMismatch {
		t.Fatalf("Expected type mismatch; got %v", err)
	}
}

func TestPairs(t *testing.T) {
	l := apply(t, special.Cons, i(1), i(2))
	if literal.String(l) != "(1 . 2)" {
		t.Fatalf("Expected (1 . 2); got %s", literal.String(l))
	}

	if !apply(t, special.Car, l).Equal(i(1)) || !apply(t, special.Cdr, l).Equal(i(2)) {
		t.Fatal("car/cdr returned the wrong element")
	}

	for _, form := range []special.Form{special.Car, special.Cdr} {
		_, err := Apply(form, pair.Null)
		if fault.KindOf(err) != fault.TypeMismatch {
			t.Fatalf("%s: expected type mismatch; got %v", form, err)
		}
	}
}

func TestNotPrimitive(t *testing.T) {
	for _, form := range []special.Form{special.If, special.Print} {
		_, err := Apply(form, i(1))
		if fault.KindOf(err) != fault.ArityMismatch {
			t.Fatalf("%s: expected arity mismatch; got %v", form, err)
		}
	}
}

func TestPredicates(t *testing.T) {
	lambda := closure.New("", pair.Null, pair.Null, nil)

	tests := []struct {
		form  special.Form
		value cell.I
	}{
		{special.IsFloat, f(1)},
		{special.IsIdent, sym.New("x")},
		{special.IsInteger, i(1)},
		{special.IsLambda, lambda},
		{special.IsList, list.New(i(1))},
		{special.IsNil, pair.Null},
		{special.IsQuasiquote, quote.New(quote.Quasiquote, i(1))},
		{special.IsQuote, quote.New(quote.Quote, i(1))},
		{special.IsString, str.New("")},
		{special.IsUnquote, quote.New(quote.Unquote, i(1))},
	}

	for _, tt := range tests {
		if apply(t, tt.form, tt.value) != True {
			t.Fatalf("(%s %s) should hold", tt.form, literal.String(tt.value))
		}

		for _, other := range tests {
			if other.form != tt.form && apply(t, tt.form, other.value) != pair.Null {
				t.Fatalf("(%s %s) should not hold", tt.form, literal.String(other.value))
			}
		}
	}
}

func TestStr(t *testing.T) {
	c := apply(t, special.Str, str.New("n = "), i(42))
	if str.To(c).String() != "n = 42" {
		t.Fatalf("Expected \"n = 42\"; got %s", literal.String(c))
	}

	c = apply(t, special.Str, list.New(str.New("a")), f(1))
	if str.To(c).String() != "(\"a\")1.0" {
		t.Fatalf("Unexpected concatenation %s", literal.String(c))
	}
}

func TestDump(t *testing.T) {
	c := list.New(i(1), str.New("s"), quote.New(quote.Quote, sym.New("x")))
	e := `Cons(Integer(1), Cons(String("s"), Cons(Quote(Ident("x")), Nil)))`

	if a := Dump(c); a != e {
		t.Fatalf("Expected %s; got %s", e, a)
	}
}
