package env

import (
	"testing"

	"github.com/scmgo/scmrepl/value"
)

func TestDefineAndLookup(t *testing.T) {
	e := New()
	e.Define(value.Symbol("x"), value.NewInteger(42))
	v, err := e.Lookup(value.Symbol("x"))
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if !value.Equal(v, value.NewInteger(42)) {
		t.Fatalf("Lookup = %v, want 42", v)
	}
}

func TestLookupUnbound(t *testing.T) {
	e := New()
	if _, err := e.Lookup(value.Symbol("nope")); err == nil {
		t.Fatal("expected an error for an unbound identifier")
	}
}

func TestLookupWalksOuter(t *testing.T) {
	outer := New()
	outer.Define(value.Symbol("x"), value.NewInteger(1))
	inner := Extend(nil, nil, outer)
	v, err := inner.Lookup(value.Symbol("x"))
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if v.Integer() != 1 {
		t.Fatalf("Lookup = %v, want 1", v)
	}
}

func TestInnerShadowsOuter(t *testing.T) {
	outer := New()
	outer.Define(value.Symbol("x"), value.NewInteger(1))
	inner := Extend([]value.Value{value.NewSymbol("x")}, []value.Value{value.NewInteger(2)}, outer)
	v, err := inner.Lookup(value.Symbol("x"))
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if v.Integer() != 2 {
		t.Fatalf("Lookup = %v, want the shadowing 2", v)
	}
}

func TestDefineOnlyAffectsHeadFrame(t *testing.T) {
	outer := New()
	inner := Extend(nil, nil, outer)
	inner.Define(value.Symbol("y"), value.NewInteger(9))
	if _, err := outer.Lookup(value.Symbol("y")); err == nil {
		t.Fatal("define in inner frame should not leak to outer")
	}
}
