// Package replloop is the REPL driver: readline-backed input, a trivial
// turn counter, and the print half of read-eval-print. It is ambient
// operational wiring around the language core (value/env/reader/eval/
// printer), grounded on the teacher's Repl (scm/prompt.go), not a part of
// the language itself.
package replloop

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/google/uuid"

	"github.com/scmgo/scmrepl/env"
	"github.com/scmgo/scmrepl/eval"
	"github.com/scmgo/scmrepl/printer"
	"github.com/scmgo/scmrepl/reader"
)

const (
	banner       = "a minimal Scheme dialect -- Ctrl-D or an empty line's EOF to quit"
	historyPath  = ".scm-repl-history"
	promptPrefix = "[In "
	outPrefix    = "[Out "
)

// Run drives the interactive loop against the global environment e until
// EOF or an interrupt, then returns the process exit code (always 0 on a
// clean exit; spec.md §6 assigns no other code to the language layer).
func Run(e *env.Frame) int {
	historyFile := claimHistoryFile()
	l, err := readline.NewEx(&readline.Config{
		Prompt:            fmt.Sprintf("%s0]: ", promptPrefix),
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "scm-repl: could not start line editor:", err)
		return 1
	}
	defer l.Close()
	l.CaptureExitSignal()

	onexit.Register(func() {
		l.Close()
	})

	fmt.Println(banner)

	turn := 0
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			return 0
		}
		if err == io.EOF {
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "scm-repl:", err)
			return 1
		}
		if line == "" {
			continue
		}

		turnEval(line, e, turn)
		turn++
		l.SetPrompt(fmt.Sprintf("%s%d]: ", promptPrefix, turn))
	}
}

// turnEval runs one read-eval-print turn, recovering from any panic the
// core raises (a non-Pair car/cdr, say) so a single bad line can never take
// the whole process down. Grounded on the teacher's own anti-panic closure
// in scm/prompt.go, which prints the recovered value plus a stack trace and
// continues the loop.
func turnEval(line string, e *env.Frame, turn int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("%s%d]: panic: %v\n%s\n", outPrefix, turn, r, debug.Stack())
		}
	}()

	expr, err := reader.Read("user input", line)
	if err != nil {
		fmt.Printf("%s%d]: error: %v\n", outPrefix, turn, err)
		return
	}
	result, err := eval.Eval(expr, e)
	if err != nil {
		fmt.Printf("%s%d]: error: %v\n", outPrefix, turn, err)
		return
	}
	fmt.Printf("%s%d]: %s\n", outPrefix, turn, printer.Sprint(result))
}

// claimHistoryFile returns the fixed history path, or that path suffixed
// with a fresh session id when another instance already holds the lock — so
// two REPLs running at once never interleave writes to the same history
// file. The lock is a separate sentinel file, not the history file itself,
// since the history file is meant to persist and accumulate across runs.
func claimHistoryFile() string {
	lockPath := historyPath + ".lock"
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err == nil {
		f.Close()
		onexit.Register(func() { os.Remove(lockPath) })
		return historyPath
	}
	return historyPath + "." + uuid.New().String()
}
