package capture

import (
	"reflect"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/fault"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/hash"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/macro"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
	"github.com/michaelmacinnis/lisp/internal/engine/state"
	"github.com/michaelmacinnis/lisp/internal/reader"
)

func read(t *testing.T, src string) cell.I {
	t.Helper()

	cs, err := reader.Parse("test", src)
	if err != nil || len(cs) != 1 {
		t.Fatalf("Parsing (%s) failed: %v", src, err)
	}

	return cs[0]
}

func scope(t *testing.T, names ...string) state.T {
	t.Helper()

	global := hash.New()
	global.Set("g", num.NewInt(0))
	global.Set("m", macro.New(pair.Null, pair.Null))

	s := state.New(global)

	for i, k := range names {
		var err error

		s, err = s.Extend(k, num.NewInt(int64(i+1)))
		if err != nil {
			t.Fatal(err)
		}
	}

	return s
}

func free(t *testing.T, s state.T, o Options, self, params, body string) []string {
	t.Helper()

	captured, err := Free(s, o, self, read(t, params), read(t, body))
	if err != nil {
		t.Fatalf("Capturing (%s) failed: %v", body, err)
	}

	return captured.Names()
}

func TestFree(t *testing.T) {
	s := scope(t, "a", "b", "c", "d")

	tests := []struct {
		self, params, body string
		expected           []string
	}{
		{"", "(x)", "(+ x a)", []string{"a"}},
		{"", "(x & rest)", "(cons rest (b x))", []string{"b"}},
		{"f", "()", "(f a)", []string{"a"}},
		{"", "()", "(g a)", []string{"a"}},
		{"", "()", "'(a b)", nil},
		{"", "()", "`(a ,b (c ,d))", []string{"b", "d"}},
		{"", "()", "(lambda (x) (+ x a))", nil},
		{"", "()", "(def z b)", []string{"b"}},
		{"", "()", "(defmacro z (x) a)", nil},
		{"", "()", "(if a b c)", []string{"a", "b", "c"}},
		{"", "()", "(m a unbound)", []string{"a"}},
		{"", "()", "42", nil},
	}

	for _, tt := range tests {
		a := free(t, s, Options{}, tt.self, tt.params, tt.body)
		if !reflect.DeepEqual(a, tt.expected) {
			t.Fatalf("(%s): expected %v; got %v", tt.body, tt.expected, a)
		}
	}
}

func TestFreeDeep(t *testing.T) {
	s := scope(t, "a", "b")

	a := free(t, s, Options{Deep: true}, "", "()", "(lambda (x) (lambda y (z) (+ x y z a)))")
	if !reflect.DeepEqual(a, []string{"a"}) {
		t.Fatalf("Expected [a]; got %v", a)
	}

	_, err := Free(s, Options{Deep: true}, "", pair.Null, read(t, "(lambda () missing)"))
	if fault.KindOf(err) != fault.UnboundIdentifier {
		t.Fatalf("Expected unbound identifier; got %v", err)
	}
}

func TestFreeNested(t *testing.T) {
	s := scope(t, "a", "b")

	body := "`(x `(y ,(z ,a ,b)))"

	if a := free(t, s, Options{}, "", "()", body); a != nil {
		t.Fatalf("Expected nothing captured; got %v", a)
	}

	a := free(t, s, Options{Nested: true}, "", "()", body)
	if !reflect.DeepEqual(a, []string{"a", "b"}) {
		t.Fatalf("Expected [a b]; got %v", a)
	}
}

func TestFreeShadowedGlobal(t *testing.T) {
	s := scope(t, "g")

	captured, err := Free(s, Options{}, "", pair.Null, read(t, "(+ g 1)"))
	if err != nil {
		t.Fatal(err)
	}

	if v := captured.Get("g"); v == nil || !v.Equal(num.NewInt(1)) {
		t.Fatalf("Expected the local g to be captured; got %v", captured.Names())
	}
}

func TestFreeUnbound(t *testing.T) {
	_, err := Free(scope(t), Options{}, "", pair.Null, read(t, "(+ 1 missing)"))
	if fault.KindOf(err) != fault.UnboundIdentifier {
		t.Fatalf("Expected unbound identifier; got %v", err)
	}
}

func TestParams(t *testing.T) {
	a := Params(list.New(read(t, "a"), read(t, "&"), read(t, "b")))
	if !reflect.DeepEqual(a, []string{"a", "b"}) {
		t.Fatalf("Expected [a b]; got %v", a)
	}
}
