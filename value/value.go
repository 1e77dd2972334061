// Package value implements the tagged-union runtime representation shared by
// the reader, environment, and evaluator: integers, characters, strings,
// symbols, pairs, the empty list, and host-implemented functions.
package value

import "fmt"

// Kind tags the alternative a Value currently holds. It replaces the C
// source's hand-rolled enum-plus-union with Go's native sum-type idiom: a
// small tag field plus a switch over every Kind at each consumer, and
// accessors that panic when called on the wrong Kind.
type Kind int

const (
	KindNil Kind = iota
	KindInteger
	KindCharacter
	KindString
	KindSymbol
	KindPair
	KindFunction
	KindClosure
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInteger:
		return "integer"
	case KindCharacter:
		return "character"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindPair:
		return "pair"
	case KindFunction:
		return "function"
	case KindClosure:
		return "closure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Symbol is an identifier's text. Two Symbols are the same binding key iff
// their text is equal; nothing is interned, matching spec.md's "interned-or-
// copied text" leeway.
type Symbol string

// pair is a cons cell. It is never mutated after construction: cons always
// allocates a fresh pair, so pairs may be shared freely between lists without
// aliasing surprises (there is no set-car!/set-cdr! in this dialect).
type pair struct {
	Car, Cdr Value
}

// Func is the signature every host-implemented callable has: it receives the
// full argument list as a single Value (a proper list, per spec.md §3) and
// returns a single Value, or an error if the arguments don't fit the
// primitive's contract.
type Func func(args Value) (Value, error)

// Function is a primitive procedure: a name (for diagnostics and printing)
// plus the Go callable it wraps.
type Function struct {
	Name string
	Fn   Func
}

// Environment is the slice of the env package's *Frame that a Closure needs
// to capture. It is an interface, not a direct dependency on package env, so
// that value (the leaf of the dependency graph) never imports its own
// consumer: env.Frame satisfies this interface structurally.
type Environment interface {
	Lookup(Symbol) (Value, error)
	Define(Symbol, Value)
}

// Closure is a compound procedure: spec.md §3 describes it as the
// four-element list (compound-tag params body env); like the teacher's own
// Proc{Params, Body, En} (scm/scm.go), it is kept as a native Go struct
// inside the tagged union instead, which is exactly the "target language's
// native tagged-union construct" spec.md §9's design notes ask for in place
// of list-encoded ad hoc tags.
type Closure struct {
	Params Value // a proper list of Symbols
	Body   Value // a proper list of expressions (the sequence)
	Env    Environment
}

// Value is the tagged union. It is a small value type (cheap to copy) with at
// most one of its payload fields meaningful, selected by kind.
type Value struct {
	kind Kind
	i    int64
	s    string
	p    *pair
	fn   *Function
	cl   *Closure
}

// Nil is the singleton empty list. It is also the canonical self-evaluating
// "nothing" value returned by define and other side-effecting forms.
var Nil = Value{kind: KindNil}

// NewInteger constructs an Integer Value.
func NewInteger(i int64) Value { return Value{kind: KindInteger, i: i} }

// NewCharacter constructs a Character Value from a single code point.
func NewCharacter(r rune) Value { return Value{kind: KindCharacter, i: int64(r)} }

// NewString constructs a String Value.
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewSymbol constructs a Symbol Value.
func NewSymbol(s string) Value { return Value{kind: KindSymbol, s: s} }

// Cons allocates a fresh Pair with the given car and cdr.
func Cons(car, cdr Value) Value {
	return Value{kind: KindPair, p: &pair{Car: car, Cdr: cdr}}
}

// NewFunction wraps a host callable as a Function Value.
func NewFunction(name string, fn Func) Value {
	return Value{kind: KindFunction, fn: &Function{Name: name, Fn: fn}}
}

// NewClosure wraps a compound procedure's params, body, and captured
// environment as a Closure Value, per spec.md §4.5's lambda rule.
func NewClosure(params, body Value, env Environment) Value {
	return Value{kind: KindClosure, cl: &Closure{Params: params, Body: body, Env: env}}
}

// Kind reports which alternative v currently holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNil() bool {
	return v.kind == KindNil
}

func (v Value) IsInteger() bool {
	return v.kind == KindInteger
}

func (v Value) IsCharacter() bool {
	return v.kind == KindCharacter
}

func (v Value) IsString() bool {
	return v.kind == KindString
}

func (v Value) IsSymbol() bool {
	return v.kind == KindSymbol
}

func (v Value) IsPair() bool {
	return v.kind == KindPair
}

func (v Value) IsFunction() bool {
	return v.kind == KindFunction
}

func (v Value) IsClosure() bool {
	return v.kind == KindClosure
}

// IsList reports whether v is a proper list: Nil, or a Pair whose cdr is
// itself a proper list. It walks spec.md §4.1's recursive definition with a
// loop over the cdr chain, and terminates
// because every cdr chain in this dialect is finite (no set-cdr! to build a
// cycle with).
func IsList(v Value) bool {
	for {
		switch v.kind {
		case KindNil:
			return true
		case KindPair:
			v = v.p.Cdr
		default:
			return false
		}
	}
}

// Integer returns the payload of an Integer Value. The caller must check
// IsInteger first; Integer panics otherwise, mirroring the teacher's
// type-switch-or-panic accessor style (scm/scmer.go's Int()/Float()).
func (v Value) Integer() int64 {
	if v.kind != KindInteger {
		panic("value: Integer() on a " + v.kind.String())
	}
	return v.i
}

// Character returns the code point of a Character Value.
func (v Value) Character() rune {
	if v.kind != KindCharacter {
		panic("value: Character() on a " + v.kind.String())
	}
	return rune(v.i)
}

// Str returns the text of a String or Symbol Value.
func (v Value) Str() string {
	if v.kind != KindString && v.kind != KindSymbol {
		panic("value: Str() on a " + v.kind.String())
	}
	return v.s
}

// Symbol returns the Symbol payload as a Symbol.
func (v Value) Symbol() Symbol {
	if v.kind != KindSymbol {
		panic("value: Symbol() on a " + v.kind.String())
	}
	return Symbol(v.s)
}

// Function returns the wrapped host callable.
func (v Value) Function() *Function {
	if v.kind != KindFunction {
		panic("value: Function() on a " + v.kind.String())
	}
	return v.fn
}

// Closure returns the wrapped compound procedure.
func (v Value) Closure() *Closure {
	if v.kind != KindClosure {
		panic("value: Closure() on a " + v.kind.String())
	}
	return v.cl
}

// Car returns the head of a Pair. Per spec.md §3's invariant, car is only
// valid on Pairs; the caller is expected to have checked IsPair, or to accept
// the panic as the "fatal error" spec.md calls for at this layer. eval does
// not recover it; the REPL driver's per-turn recover reports it to the user.
func (v Value) Car() Value {
	if v.kind != KindPair {
		panic("value: Car() on a " + v.kind.String())
	}
	return v.p.Car
}

// Cdr returns the tail of a Pair.
func (v Value) Cdr() Value {
	if v.kind != KindPair {
		panic("value: Cdr() on a " + v.kind.String())
	}
	return v.p.Cdr
}

// Equal implements the structural equality spec.md §4.1 defines: same Kind
// required, then a kind-specific comparison. Pairs compare recursively;
// equality fails rather than erroring when kinds differ.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindInteger:
		return a.i == b.i
	case KindCharacter:
		return a.i == b.i
	case KindString, KindSymbol:
		return a.s == b.s
	case KindFunction:
		return a.fn == b.fn
	case KindClosure:
		return a.cl == b.cl
	case KindPair:
		return Equal(a.p.Car, b.p.Car) && Equal(a.p.Cdr, b.p.Cdr)
	default:
		return false
	}
}
