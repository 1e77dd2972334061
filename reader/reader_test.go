package reader

import (
	"testing"

	"github.com/scmgo/scmrepl/value"
)

func TestReadInteger(t *testing.T) {
	v, err := Read("test", "42")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !v.IsInteger() || v.Integer() != 42 {
		t.Fatalf("Read(\"42\") = %v, want Integer 42", v)
	}
}

func TestReadNegativeInteger(t *testing.T) {
	v, err := Read("test", "-7")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !v.IsInteger() || v.Integer() != -7 {
		t.Fatalf("Read(\"-7\") = %v, want Integer -7", v)
	}
}

func TestReadSymbol(t *testing.T) {
	v, err := Read("test", "foo")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !v.IsSymbol() || v.Symbol() != "foo" {
		t.Fatalf("Read(\"foo\") = %v, want Symbol foo", v)
	}
}

func TestReadStringKeepsQuotes(t *testing.T) {
	v, err := Read("test", `"hello"`)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !v.IsString() || v.Str() != `"hello"` {
		t.Fatalf("Read(%q) = %v, want String with quotes retained", `"hello"`, v)
	}
}

func TestReadUnterminatedString(t *testing.T) {
	if _, err := Read("test", `"hello`); err == nil {
		t.Fatal("expected a lexical error for an unterminated string")
	}
}

func TestReadEmptyList(t *testing.T) {
	v, err := Read("test", "()")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if !v.IsNil() {
		t.Fatalf("Read(\"()\") = %v, want Nil", v)
	}
}

func TestReadList(t *testing.T) {
	v, err := Read("test", "(+ 1 2)")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	want := value.List(value.NewSymbol("+"), value.NewInteger(1), value.NewInteger(2))
	if !value.Equal(v, want) {
		t.Fatalf("Read(\"(+ 1 2)\") = %v, want %v", v, want)
	}
}

func TestReadQuote(t *testing.T) {
	v, err := Read("test", "'x")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	want := value.List(value.NewSymbol("quote"), value.NewSymbol("x"))
	if !value.Equal(v, want) {
		t.Fatalf("Read(\"'x\") = %v, want %v", v, want)
	}
}

func TestReadMissingCloseParen(t *testing.T) {
	if _, err := Read("test", "(+ 1 2"); err == nil {
		t.Fatal("expected a lexical error for a missing close paren")
	}
}

func TestReadNestedList(t *testing.T) {
	v, err := Read("test", "(1 (2 3) 4)")
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	want := value.List(value.NewInteger(1), value.List(value.NewInteger(2), value.NewInteger(3)), value.NewInteger(4))
	if !value.Equal(v, want) {
		t.Fatalf("Read(\"(1 (2 3) 4)\") = %v, want %v", v, want)
	}
}

func TestReadOneLeavesRemainder(t *testing.T) {
	expr, rest, ok, err := ReadOne("test", "1 2 3")
	if err != nil {
		t.Fatalf("ReadOne returned error: %v", err)
	}
	if !ok {
		t.Fatal("ReadOne should report ok for non-empty input")
	}
	if !expr.IsInteger() || expr.Integer() != 1 {
		t.Fatalf("ReadOne first expr = %v, want 1", expr)
	}
	if rest != "2 3" {
		t.Fatalf("ReadOne rest = %q, want %q", rest, "2 3")
	}
}

func TestReadOneExhausted(t *testing.T) {
	_, _, ok, err := ReadOne("test", "   ")
	if err != nil {
		t.Fatalf("ReadOne returned error: %v", err)
	}
	if ok {
		t.Fatal("ReadOne should report !ok once input is exhausted")
	}
}
