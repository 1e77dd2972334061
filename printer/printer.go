// Package printer renders a Value as external text, the boundary spec.md §6
// specifies for the (out-of-scope) print half of the REPL: Integer as
// decimal, String as its content with surrounding quote marks stripped
// (SPEC_FULL.md §3's resolution of the open question spec.md leaves
// unspecified), Symbol as its text, Nil as "()", and Pair as a
// space-separated, parenthesized sequence with a " . " before an improper
// tail.
package printer

import (
	"io"
	"strconv"
	"strings"

	"github.com/scmgo/scmrepl/value"
)

// Sprint renders v as its external representation and returns the result as
// a string. It is a thin wrapper around Fprint, grounded on the teacher's
// String()/Write() split (scm/printer.go) between an allocating path and a
// stream-to-writer path.
func Sprint(v value.Value) string {
	var b strings.Builder
	Fprint(&b, v)
	return b.String()
}

// Fprint writes v's external representation to w without building an
// intermediate string for the whole value: each leaf is written as it is
// reached, and Pair recurses directly into w.
func Fprint(w io.Writer, v value.Value) {
	switch v.Kind() {
	case value.KindNil:
		io.WriteString(w, "()")
	case value.KindInteger:
		writeInt(w, v.Integer())
	case value.KindCharacter:
		io.WriteString(w, string(v.Character()))
	case value.KindString:
		io.WriteString(w, unquote(v.Str()))
	case value.KindSymbol:
		io.WriteString(w, string(v.Symbol()))
	case value.KindFunction:
		io.WriteString(w, "#<primitive:"+v.Function().Name+">")
	case value.KindClosure:
		io.WriteString(w, "#<closure>")
	case value.KindPair:
		writePair(w, v)
	default:
		io.WriteString(w, "#<unknown>")
	}
}

// unquote strips a leading and trailing '"' if both are present. The reader
// stores string tokens with their quote marks included (spec.md §4.2); the
// printer is where they come back off, so a String's printed form is its
// actual content, not its source-literal spelling.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func writeInt(w io.Writer, i int64) {
	var buf [20]byte
	w.Write(strconv.AppendInt(buf[:0], i, 10))
}

// writePair renders a list or dotted pair: "(" then each element separated
// by spaces; if the final cdr is Nil the list closes with ")", otherwise the
// improper tail is printed after " . " before the closing ")".
func writePair(w io.Writer, v value.Value) {
	io.WriteString(w, "(")
	first := true
	for {
		if !first {
			io.WriteString(w, " ")
		}
		first = false
		Fprint(w, v.Car())
		cdr := v.Cdr()
		switch cdr.Kind() {
		case value.KindNil:
			io.WriteString(w, ")")
			return
		case value.KindPair:
			v = cdr
		default:
			io.WriteString(w, " . ")
			Fprint(w, cdr)
			io.WriteString(w, ")")
			return
		}
	}
}
