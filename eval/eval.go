// Package eval implements spec.md §4.5's tree-walking evaluator: dispatch on
// a Value's shape, the four special forms (quote, if, lambda, define), and
// application, plus the apply rule that drives both primitive and compound
// procedures.
package eval

import (
	"github.com/scmgo/scmrepl/env"
	"github.com/scmgo/scmrepl/printer"
	"github.com/scmgo/scmrepl/reader"
	"github.com/scmgo/scmrepl/scmerr"
	"github.com/scmgo/scmrepl/value"
)

var falseSymbol = value.NewSymbol("#f")

// IsTrue reports whether v is the canonical true value, the Symbol #t.
// Every other value — including the Symbol #f — is false to `if`. spec.md
// §9 leaves the choice between this rule and standard Scheme's "only #f is
// false" open; SPEC_FULL.md §3 settles on this one because it is the rule
// spec.md's own end-to-end scenarios are written against.
func IsTrue(v value.Value) bool {
	return v.IsSymbol() && v.Symbol() == "#t"
}

// tailCall carries a not-yet-evaluated expression and the environment to
// evaluate it in back out to Eval's trampoline, so that `if`'s chosen branch
// and a procedure body's final form are evaluated by looping rather than by
// a fresh Go stack frame. Grounded on the teacher's `goto restart` (scm/scm.go
// Eval) — same effect, expressed without goto.
type tailCall struct {
	expr value.Value
	env  *env.Frame
}

// Eval evaluates expr against e, implementing spec.md §4.5's seven dispatch
// cases: self-evaluating atoms, quote, symbol lookup, if, lambda, define,
// and application.
func Eval(expr value.Value, e *env.Frame) (value.Value, error) {
	for {
		result, tc, err := step(expr, e)
		if err != nil {
			return value.Nil, err
		}
		if tc == nil {
			return result, nil
		}
		expr, e = tc.expr, tc.env
	}
}

// EvalAll reads and evaluates every expression text holds in sequence
// (spec.md's surface syntax is one expression per line, but nothing stops a
// caller — a script loader, a test — from handing EvalAll several), and
// returns the value of the last one, per spec.md §4.5's eval-sequence rule
// applied at the top level. source tags any reader error for diagnostics.
func EvalAll(source, text string, e *env.Frame) (value.Value, error) {
	result := value.Nil
	remaining := text
	for {
		expr, rest, ok, err := reader.ReadOne(source, remaining)
		if err != nil {
			return value.Nil, err
		}
		if !ok {
			return result, nil
		}
		result, err = Eval(expr, e)
		if err != nil {
			return value.Nil, err
		}
		remaining = rest
	}
}

// step performs one dispatch round: it either fully resolves expr (tc == nil)
// or hands back the tail position still to be evaluated, which Eval's loop
// picks up.
func step(expr value.Value, e *env.Frame) (value.Value, *tailCall, error) {
	switch expr.Kind() {
	case value.KindInteger, value.KindString, value.KindNil, value.KindCharacter:
		return expr, nil, nil
	case value.KindFunction, value.KindClosure:
		// Already-evaluated values re-entering Eval (e.g. a primitive
		// looked up and then handed back unchanged) are self-evaluating;
		// the reader itself never produces either kind.
		return expr, nil, nil
	case value.KindSymbol:
		v, err := e.Lookup(expr.Symbol())
		return v, nil, err
	case value.KindPair:
		if head := expr.Car(); head.IsSymbol() {
			switch head.Symbol() {
			case "quote":
				return value.Cadr(expr), nil, nil
			case "if":
				return stepIf(expr, e)
			case "lambda":
				v, err := evalLambda(expr, e)
				return v, nil, err
			case "define":
				v, err := evalDefine(expr, e)
				return v, nil, err
			}
		}
		return evalApplication(expr, e)
	default:
		return value.Nil, nil, scmerr.UnknownFormf("I don't know how to evaluate %s", printer.Sprint(expr))
	}
}

// stepIf implements spec.md §4.5's if: evaluate the test, then hand the
// chosen branch back as a tail call. A missing alternative evaluates to #f.
func stepIf(expr value.Value, e *env.Frame) (value.Value, *tailCall, error) {
	parts := value.ToSlice(expr.Cdr())
	if len(parts) < 2 {
		return value.Nil, nil, scmerr.UnknownFormf("if needs a test and a consequent")
	}
	test, err := Eval(parts[0], e)
	if err != nil {
		return value.Nil, nil, err
	}
	if IsTrue(test) {
		return value.Nil, &tailCall{expr: parts[1], env: e}, nil
	}
	if len(parts) < 3 {
		return falseSymbol, nil, nil
	}
	return value.Nil, &tailCall{expr: parts[2], env: e}, nil
}

// evalLambda implements spec.md §4.5's lambda: build a Closure capturing e,
// with params taken verbatim and the remaining forms as the body sequence.
func evalLambda(expr value.Value, e *env.Frame) (value.Value, error) {
	rest := value.ToSlice(expr.Cdr())
	if len(rest) < 1 {
		return value.Nil, scmerr.UnknownFormf("lambda needs a parameter list")
	}
	params := rest[0]
	if !value.IsList(params) {
		return value.Nil, scmerr.Structuralf("lambda parameters must be a proper list of symbols: %s", printer.Sprint(params))
	}
	return value.NewClosure(params, value.List(rest[1:]...), e), nil
}

// evalDefine implements spec.md §4.5's two define surface forms, desugaring
// `(define (name p...) body...)` into `(define name (lambda (p...) body...))`
// before proceeding. It always installs into e's own frame (env.Define's
// contract) and returns Nil.
func evalDefine(expr value.Value, e *env.Frame) (value.Value, error) {
	parts := value.ToSlice(expr.Cdr())
	if len(parts) < 1 {
		return value.Nil, scmerr.UnknownFormf("define needs a target")
	}
	target := parts[0]
	if target.IsPair() {
		name := target.Car()
		if !name.IsSymbol() {
			return value.Nil, scmerr.Structuralf("define target name must be a symbol: %s", printer.Sprint(name))
		}
		lambdaForm := append([]value.Value{value.NewSymbol("lambda"), target.Cdr()}, parts[1:]...)
		closure, err := Eval(value.List(lambdaForm...), e)
		if err != nil {
			return value.Nil, err
		}
		e.Define(name.Symbol(), closure)
		return value.Nil, nil
	}
	if !target.IsSymbol() {
		return value.Nil, scmerr.Structuralf("define target must be a symbol or a (name params...) form: %s", printer.Sprint(target))
	}
	if len(parts) < 2 {
		return value.Nil, scmerr.UnknownFormf("define needs a value expression")
	}
	v, err := Eval(parts[1], e)
	if err != nil {
		return value.Nil, err
	}
	e.Define(target.Symbol(), v)
	return value.Nil, nil
}

// evalApplication implements spec.md §4.5's application rule: every element
// of the list — operator included — is evaluated in e, left to right, then
// apply dispatches on the resulting procedure's kind.
func evalApplication(expr value.Value, e *env.Frame) (value.Value, *tailCall, error) {
	elems := value.ToSlice(expr)
	args := make([]value.Value, len(elems))
	for i, x := range elems {
		v, err := Eval(x, e)
		if err != nil {
			return value.Nil, nil, err
		}
		args[i] = v
	}
	procedure, operands := args[0], args[1:]
	switch procedure.Kind() {
	case value.KindFunction:
		v, err := procedure.Function().Fn(value.List(operands...))
		return v, nil, err
	case value.KindClosure:
		newEnv, body, err := extendForClosure(procedure, operands)
		if err != nil {
			return value.Nil, nil, err
		}
		if len(body) == 0 {
			return value.Nil, nil, nil
		}
		for _, b := range body[:len(body)-1] {
			if _, err := Eval(b, newEnv); err != nil {
				return value.Nil, nil, err
			}
		}
		return value.Nil, &tailCall{expr: body[len(body)-1], env: newEnv}, nil
	default:
		return value.Nil, nil, scmerr.Structuralf("%s is not a procedure", printer.Sprint(procedure))
	}
}

// extendForClosure checks arity (spec.md §9 REDESIGN FLAGS: enforced, unlike
// the source) and builds the frame a closure's body runs in.
func extendForClosure(procedure value.Value, args []value.Value) (*env.Frame, []value.Value, error) {
	cl := procedure.Closure()
	params := value.ToSlice(cl.Params)
	if len(params) != len(args) {
		return nil, nil, scmerr.Arityf("closure expects %d argument(s), got %d", len(params), len(args))
	}
	return env.Extend(params, args, cl.Env), value.ToSlice(cl.Body), nil
}

// Apply implements spec.md §4.5's apply(fn, args) directly, without the
// trampoline Eval's internal evalApplication uses — this is the entry point
// primitives like a hypothetical higher-order `map` would call, and what
// package tests exercise to check apply's contract in isolation from a
// surrounding application form.
func Apply(procedure value.Value, args []value.Value) (value.Value, error) {
	switch procedure.Kind() {
	case value.KindFunction:
		return procedure.Function().Fn(value.List(args...))
	case value.KindClosure:
		newEnv, body, err := extendForClosure(procedure, args)
		if err != nil {
			return value.Nil, err
		}
		return evalBodySequence(body, newEnv)
	default:
		return value.Nil, scmerr.Structuralf("%s is not a procedure", printer.Sprint(procedure))
	}
}

// evalBodySequence implements spec.md §4.5's eval-sequence: evaluate each
// expression in order for effect, returning the value of the last. An empty
// sequence is not expected per spec.md but is treated as Nil rather than
// panicking.
func evalBodySequence(body []value.Value, e *env.Frame) (value.Value, error) {
	if len(body) == 0 {
		return value.Nil, nil
	}
	for _, x := range body[:len(body)-1] {
		if _, err := Eval(x, e); err != nil {
			return value.Nil, err
		}
	}
	return Eval(body[len(body)-1], e)
}
