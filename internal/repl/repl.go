// Package repl implements the interactive read-eval-print loop from
// spec.md §6: prompt "> ", read one line, run it, clear latches, loop.
package repl

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/Marllon-Freitas/oxente/internal/diagnostics"
	"github.com/Marllon-Freitas/oxente/internal/interpreter"
	"github.com/Marllon-Freitas/oxente/internal/parser"
	"github.com/Marllon-Freitas/oxente/internal/scanner"
)

// Run drives the REPL against stdout until EOF (Ctrl-D), printing
// "\nExiting." and returning nil on clean exit. Line editing and
// history are provided by chzyer/readline, the same dependency
// marcuscaisey/lox uses for its REPL in this pack — the teacher's
// main.go used a bare bufio.Reader with manual CRLF trimming
// (trimSuffix(line, 2)), which breaks on plain LF input; readline
// hands back lines with the newline already stripped.
func Run(stdout io.Writer, log *logrus.Entry) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		Stdout:          stdout,
	})
	if err != nil {
		return diagnostics.WrapInternal(err, "initializing readline")
	}
	defer rl.Close()

	reporter := diagnostics.New(stdout)
	in := interpreter.New(stdout, reporter, log.WithField("mode", "repl"))

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			fmt.Fprintln(stdout, "\nExiting.")
			return nil
		}
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return diagnostics.WrapInternal(err, "reading line")
		}
		if line == "" {
			continue
		}

		log.WithField("line", line).Debug("Scanning")
		toks := scanner.New(line, reporter).ScanTokens()

		log.Debug("Parsing")
		stmts := parser.New(toks, reporter).Parse()

		if !reporter.HadError {
			in.Interpret(stmts)
		}
		reporter.Reset()
	}
}
