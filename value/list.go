package value

// List builds the right-nested, Nil-terminated list of vs, per spec.md
// §4.1's list(v1, ..., vn) constructor.
func List(vs ...Value) Value {
	result := Nil
	for i := len(vs) - 1; i >= 0; i-- {
		result = Cons(vs[i], result)
	}
	return result
}

// ToSlice flattens a proper list into a Go slice, in list order. It panics if
// v is not a proper list; callers that accept improper input should check
// IsList first.
func ToSlice(v Value) []Value {
	var out []Value
	for v.kind != KindNil {
		out = append(out, v.Car())
		v = v.Cdr()
	}
	return out
}

// Cadr, Caddr, Cadddr, Caadr, Cdadr, and Cddr are the composed Pair
// accessors spec.md §4.1 names explicitly; each is a literal composition of
// Car/Cdr, e.g. Cadr(v) == Car(Cdr(v)).
func Cadr(v Value) Value   { return v.Cdr().Car() }
func Caddr(v Value) Value  { return v.Cdr().Cdr().Car() }
func Cadddr(v Value) Value { return v.Cdr().Cdr().Cdr().Car() }
func Caadr(v Value) Value  { return v.Cdr().Car().Car() }
func Cdadr(v Value) Value  { return v.Cdr().Car().Cdr() }
func Cddr(v Value) Value   { return v.Cdr().Cdr() }

// Zip pairs elements of a and b positionally, stopping at whichever slice is
// shorter, per spec.md §4.1's zip(a, b). It is the primitive Extend builds a
// frame out of: params zipped with args.
func Zip(a, b []Value) [][2]Value {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([][2]Value, n)
	for i := 0; i < n; i++ {
		out[i] = [2]Value{a[i], b[i]}
	}
	return out
}
