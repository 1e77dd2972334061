// Command scm-repl is a minimal Scheme-dialect REPL: it wires up the global
// environment with every built-in primitive, then hands control to the
// interactive driver until EOF or interrupt.
package main

import (
	"os"

	"github.com/scmgo/scmrepl/eval"
	"github.com/scmgo/scmrepl/replloop"
)

func main() {
	os.Exit(replloop.Run(eval.Global()))
}
