package value

import "testing"

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil equals nil", Nil, Nil, true},
		{"equal integers", NewInteger(3), NewInteger(3), true},
		{"unequal integers", NewInteger(3), NewInteger(4), false},
		{"equal strings", NewString(`"hi"`), NewString(`"hi"`), true},
		{"equal symbols", NewSymbol("x"), NewSymbol("x"), true},
		{"symbol not string", NewSymbol("x"), NewString(`"x"`), false},
		{"equal pairs", Cons(NewInteger(1), NewInteger(2)), Cons(NewInteger(1), NewInteger(2)), true},
		{"unequal pairs", Cons(NewInteger(1), NewInteger(2)), Cons(NewInteger(1), NewInteger(3)), false},
		{"list structural equality", List(NewInteger(1), NewInteger(2)), List(NewInteger(1), NewInteger(2)), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Equal(c.a, c.b); got != c.want {
				t.Fatalf("Equal(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestIsList(t *testing.T) {
	if !IsList(Nil) {
		t.Fatal("Nil should be a list")
	}
	if !IsList(List(NewInteger(1), NewInteger(2))) {
		t.Fatal("a proper list should be a list")
	}
	if IsList(Cons(NewInteger(1), NewInteger(2))) {
		t.Fatal("a dotted pair should not be a list")
	}
}

func TestConsCarCdr(t *testing.T) {
	p := Cons(NewInteger(1), NewInteger(2))
	if p.Car().Integer() != 1 {
		t.Fatalf("Car() = %v, want 1", p.Car())
	}
	if p.Cdr().Integer() != 2 {
		t.Fatalf("Cdr() = %v, want 2", p.Cdr())
	}
}

func TestCarOnNonPairPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Car() on an Integer to panic")
		}
	}()
	NewInteger(5).Car()
}

func TestListRoundTrip(t *testing.T) {
	vs := []Value{NewInteger(1), NewInteger(2), NewInteger(3)}
	got := ToSlice(List(vs...))
	if len(got) != len(vs) {
		t.Fatalf("ToSlice length = %d, want %d", len(got), len(vs))
	}
	for i := range vs {
		if !Equal(got[i], vs[i]) {
			t.Fatalf("element %d = %v, want %v", i, got[i], vs[i])
		}
	}
}

func TestComposedAccessors(t *testing.T) {
	l := List(NewInteger(1), NewInteger(2), NewInteger(3), NewInteger(4))
	if Cadr(l).Integer() != 2 {
		t.Fatalf("Cadr = %v, want 2", Cadr(l))
	}
	if Caddr(l).Integer() != 3 {
		t.Fatalf("Caddr = %v, want 3", Caddr(l))
	}
	if Cadddr(l).Integer() != 4 {
		t.Fatalf("Cadddr = %v, want 4", Cadddr(l))
	}
}

func TestZipStopsAtShorter(t *testing.T) {
	a := []Value{NewSymbol("x"), NewSymbol("y"), NewSymbol("z")}
	b := []Value{NewInteger(1), NewInteger(2)}
	got := Zip(a, b)
	if len(got) != 2 {
		t.Fatalf("Zip length = %d, want 2", len(got))
	}
}
