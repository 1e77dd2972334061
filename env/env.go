// Package env implements the environment model spec.md §4.3 describes: a
// chain of association frames, innermost first, with lookup walking
// outward and define always acting on the innermost frame only.
package env

import (
	"github.com/scmgo/scmrepl/scmerr"
	"github.com/scmgo/scmrepl/value"
)

// Frame is one lexical scope: its own bindings plus the enclosing frame.
// Grounded directly on the teacher's Env{Vars map[Symbol]Scmer, Outer *Env}
// (scm/scm.go) — an association list of (symbol . value) Pairs, per
// spec.md's "Association frame" derived structure, would also satisfy the
// spec, but nothing in this dialect reifies an environment as a first-class
// Value a program can inspect, so the native Go map the teacher uses is the
// simpler and equally faithful choice.
//
// outer is typed as value.Environment, not *Frame: a captured closure
// (value.Closure.Env) holds its environment through that same interface so
// that package value — the leaf of the dependency graph — never has to
// import env. Every Environment in this program is in fact a *Frame; the
// interface only exists to break that import cycle.
type Frame struct {
	bindings map[value.Symbol]value.Value
	outer    value.Environment
}

// New creates the distinguished empty environment: a single frame with no
// bindings and no parent. It must exist before any reader or evaluator
// activity, per spec.md §3's lifetime rule.
func New() *Frame {
	return &Frame{bindings: make(map[value.Symbol]value.Value)}
}

// Extend zips params with args into a fresh frame and conses it onto parent,
// per spec.md §4.3's extend(params, args, parent). params and args need not
// be the same length: Zip pairs positionally and stops at the shorter one,
// matching spec.md §4.1's zip semantics; callers that must enforce exact
// arity (eval.Apply, for compound procedures) check lengths themselves
// before calling Extend and return a scmerr.KindArity error instead.
func Extend(params, args []value.Value, parent value.Environment) *Frame {
	f := &Frame{bindings: make(map[value.Symbol]value.Value, len(params)), outer: parent}
	for _, pair := range value.Zip(params, args) {
		f.bindings[pair[0].Symbol()] = pair[1]
	}
	return f
}

// Lookup walks the head frame for a binding to s, then delegates to the
// parent environment in order; the *first* match (innermost) always wins,
// per spec.md's lexical shadowing rule. Reaching the empty environment
// without a match is a structural error (spec.md §9 Open Question: elevated
// to a hard error here — see SPEC_FULL.md §3).
func (f *Frame) Lookup(s value.Symbol) (value.Value, error) {
	if v, ok := f.bindings[s]; ok {
		return v, nil
	}
	if f.outer == nil {
		return value.Nil, scmerr.Structuralf("unbound identifier %q", string(s))
	}
	return f.outer.Lookup(s)
}

// Define installs or updates a binding in the head frame only, per spec.md
// §4.3: if s is already bound there, its value is overwritten; otherwise a
// new binding is added. Parent frames are never searched or modified, which
// is what gives inner defines local effect and REPL top-level redefinition
// its expected behavior.
func (f *Frame) Define(s value.Symbol, v value.Value) {
	f.bindings[s] = v
}

// Outer returns the enclosing environment, or nil for the empty environment.
func (f *Frame) Outer() value.Environment { return f.outer }
