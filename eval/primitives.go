package eval

import (
	"sort"
	"strings"

	"github.com/scmgo/scmrepl/env"
	"github.com/scmgo/scmrepl/printer"
	"github.com/scmgo/scmrepl/scmerr"
	"github.com/scmgo/scmrepl/value"
)

// declaration bundles one primitive's registration with the metadata the
// help primitive reports, grounded on the teacher's Declaration/Declare
// pattern (scm/declare.go) — a Name, a human Desc, and the Go callable
// itself, here typed to the dialect's narrower Func signature rather than
// the teacher's variadic Scmer one.
type declaration struct {
	name string
	desc string
	fn   value.Func
}

var registry = make(map[string]*declaration)

// Global builds the process's one global environment with every primitive
// in spec.md §4.4 installed, plus the SPEC_FULL.md §12 help primitive. It is
// the Go-native counterpart of the teacher's package-level init() calls into
// Declare (scm/mysql.go and friends each register their own primitives the
// same way); here all of them live together since this dialect has only one
// built-in surface.
func Global() *env.Frame {
	e := env.New()
	for _, d := range []*declaration{
		declare("+", "Sums its Integer arguments; the empty argument list sums to 0.", primitiveAdd),
		declare("*", "Multiplies its Integer arguments; the empty argument list multiplies to 1.", primitiveMul),
		declare("-", "Negates a single Integer argument, or left-folds subtraction across two or more.", primitiveSub),
		declare("=", "Reports #t if both Integer arguments are equal, #f otherwise.", primitiveNumEq),
		declare("<", "Reports #t if the first Integer argument is less than the second.", primitiveLt),
		declare(">", "Reports #t if the first Integer argument is greater than the second.", primitiveGt),
		declare("eq", "Reports #t if its two arguments are structurally equal.", primitiveEq),
		declare("cons", "Builds a new Pair from its two arguments.", primitiveCons),
		declare("car", "Returns the head of a Pair.", primitiveCar),
		declare("cdr", "Returns the tail of a Pair.", primitiveCdr),
		declare("help", "Lists every primitive, or describes one by name.", primitiveHelp),
	} {
		registry[d.name] = d
		e.Define(value.Symbol(d.name), value.NewFunction(d.name, d.fn))
	}
	return e
}

func declare(name, desc string, fn value.Func) *declaration {
	return &declaration{name: name, desc: desc, fn: fn}
}

// numericArgs implements spec.md §4.4's "numeric primitives also accept the
// degenerate case of being handed a single Integer rather than a list"
// quirk: a bare Integer Value is treated as a one-element argument list,
// matching SPEC_FULL.md §3's decision to preserve rather than reject it.
func numericArgs(args value.Value) []value.Value {
	if args.IsInteger() {
		return []value.Value{args}
	}
	return value.ToSlice(args)
}

func primitiveAdd(args value.Value) (value.Value, error) {
	sum := int64(0)
	for _, a := range numericArgs(args) {
		if !a.IsInteger() {
			return value.Nil, scmerr.Structuralf("+ expects Integer arguments, got %s", printer.Sprint(a))
		}
		sum += a.Integer()
	}
	return value.NewInteger(sum), nil
}

func primitiveMul(args value.Value) (value.Value, error) {
	product := int64(1)
	for _, a := range numericArgs(args) {
		if !a.IsInteger() {
			return value.Nil, scmerr.Structuralf("* expects Integer arguments, got %s", printer.Sprint(a))
		}
		product *= a.Integer()
	}
	return value.NewInteger(product), nil
}

func primitiveSub(args value.Value) (value.Value, error) {
	nums := numericArgs(args)
	if len(nums) == 0 {
		return value.Nil, scmerr.Arityf("- expects at least 1 argument, got 0")
	}
	for _, a := range nums {
		if !a.IsInteger() {
			return value.Nil, scmerr.Structuralf("- expects Integer arguments, got %s", printer.Sprint(a))
		}
	}
	if len(nums) == 1 {
		return value.NewInteger(-nums[0].Integer()), nil
	}
	result := nums[0].Integer()
	for _, a := range nums[1:] {
		result -= a.Integer()
	}
	return value.NewInteger(result), nil
}

func twoIntegers(name string, args value.Value) (int64, int64, error) {
	elems := value.ToSlice(args)
	if len(elems) != 2 {
		return 0, 0, scmerr.Arityf("%s expects 2 arguments, got %d", name, len(elems))
	}
	if !elems[0].IsInteger() || !elems[1].IsInteger() {
		return 0, 0, scmerr.Structuralf("%s expects Integer arguments, got %s and %s", name, printer.Sprint(elems[0]), printer.Sprint(elems[1]))
	}
	return elems[0].Integer(), elems[1].Integer(), nil
}

func boolSymbol(b bool) value.Value {
	if b {
		return value.NewSymbol("#t")
	}
	return value.NewSymbol("#f")
}

func primitiveNumEq(args value.Value) (value.Value, error) {
	a, b, err := twoIntegers("=", args)
	if err != nil {
		return value.Nil, err
	}
	return boolSymbol(a == b), nil
}

func primitiveLt(args value.Value) (value.Value, error) {
	a, b, err := twoIntegers("<", args)
	if err != nil {
		return value.Nil, err
	}
	return boolSymbol(a < b), nil
}

func primitiveGt(args value.Value) (value.Value, error) {
	a, b, err := twoIntegers(">", args)
	if err != nil {
		return value.Nil, err
	}
	return boolSymbol(a > b), nil
}

func primitiveEq(args value.Value) (value.Value, error) {
	elems := value.ToSlice(args)
	if len(elems) != 2 {
		return value.Nil, scmerr.Arityf("eq expects 2 arguments, got %d", len(elems))
	}
	return boolSymbol(value.Equal(elems[0], elems[1])), nil
}

func primitiveCons(args value.Value) (value.Value, error) {
	elems := value.ToSlice(args)
	if len(elems) != 2 {
		return value.Nil, scmerr.Arityf("cons expects 2 arguments, got %d", len(elems))
	}
	return value.Cons(elems[0], elems[1]), nil
}

func primitiveCar(args value.Value) (value.Value, error) {
	elems := value.ToSlice(args)
	if len(elems) != 1 {
		return value.Nil, scmerr.Arityf("car expects 1 argument, got %d", len(elems))
	}
	if !elems[0].IsPair() {
		return value.Nil, scmerr.Structuralf("car expects a Pair, got %s", printer.Sprint(elems[0]))
	}
	return elems[0].Car(), nil
}

func primitiveCdr(args value.Value) (value.Value, error) {
	elems := value.ToSlice(args)
	if len(elems) != 1 {
		return value.Nil, scmerr.Arityf("cdr expects 1 argument, got %d", len(elems))
	}
	if !elems[0].IsPair() {
		return value.Nil, scmerr.Structuralf("cdr expects a Pair, got %s", printer.Sprint(elems[0]))
	}
	return elems[0].Cdr(), nil
}

// primitiveHelp implements the SPEC_FULL.md §12 introspection primitive:
// called with no arguments it lists every registered primitive's name and
// one-line description; called with a String naming one, it reports that
// primitive's full description. Grounded on the teacher's Help(fn string)
// (scm/declare.go), adapted to return a printable Value instead of writing
// straight to stdout, keeping the REPL's print step the single place output
// actually happens.
func primitiveHelp(args value.Value) (value.Value, error) {
	elems := value.ToSlice(args)
	if len(elems) == 0 {
		names := make([]string, 0, len(registry))
		for name := range registry {
			names = append(names, name)
		}
		sort.Strings(names)
		var b strings.Builder
		b.WriteString("available primitives:")
		for _, name := range names {
			b.WriteString("\n  " + name + " - " + registry[name].desc)
		}
		return value.NewString("\"" + b.String() + "\""), nil
	}
	if len(elems) != 1 || !elems[0].IsString() {
		return value.Nil, scmerr.Structuralf("help expects zero arguments or a single String naming a primitive")
	}
	name := strings.Trim(elems[0].Str(), "\"")
	d, ok := registry[name]
	if !ok {
		return value.Nil, scmerr.Structuralf("help: no such primitive %q", name)
	}
	return value.NewString("\"" + name + ": " + d.desc + "\""), nil
}
