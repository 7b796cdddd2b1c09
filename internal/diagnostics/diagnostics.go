// Package diagnostics implements the error-reporting sink shared by the
// scanner, parser and interpreter, plus the latches ("had_error",
// "had_runtime_error" in spec.md §4.4/§9) that decide the driver's exit
// code. Kept as fields on a Reporter value rather than package-level
// globals, per spec.md §9 ("Global mutable latches").
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/Marllon-Freitas/oxente/internal/token"
)

// ParseError is thrown (as a Go error) by the parser to unwind out of
// the current declaration for panic-mode recovery. It is reported
// through Reporter.TokenError before being discarded.
type ParseError struct {
	Tok token.Token
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// RuntimeError carries the offending token so the top-level driver can
// pin the diagnostic to a source line. It unwinds the Go call stack as
// an error value returned from interpreter methods.
type RuntimeError struct {
	Tok token.Token
	Msg string
}

func (e *RuntimeError) Error() string {
	return e.Msg
}

// Reporter accumulates the had_error/had_runtime_error latches and
// writes colorized diagnostics to an io.Writer (normally os.Stderr).
type Reporter struct {
	out             io.Writer
	HadError        bool
	HadRuntimeError bool
	errColor        *color.Color
	runtimeErrColor *color.Color
}

// New returns a Reporter writing to out. Whether color is emitted is
// decided by fatih/color's global auto-detection, which checks via
// go-isatty whether standard output (not out) is a terminal.
func New(out io.Writer) *Reporter {
	return &Reporter{
		out:             out,
		errColor:        color.New(color.FgRed),
		runtimeErrColor: color.New(color.FgRed, color.Bold),
	}
}

// Reset clears both latches. Called at each REPL line boundary
// (spec.md §4.4 state machine: Reporting -> Idle).
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// LineError reports a lexical/early error pinned to a raw line number,
// format: "[line N] Error: MSG".
func (r *Reporter) LineError(line int, msg string) {
	r.report(line, "", msg)
}

// TokenError reports a parse-time error pinned to a token, format:
// "[line N] Error at 'LEXEME': MSG", or "[line N] Error at end: MSG"
// when the token is EOF.
func (r *Reporter) TokenError(tok token.Token, msg string) {
	if tok.Type == token.EOF {
		r.report(tok.Line, "at end", msg)
		return
	}
	r.report(tok.Line, fmt.Sprintf("at '%s'", tok.Lexeme), msg)
}

func (r *Reporter) report(line int, where, msg string) {
	if where == "" {
		r.errColor.Fprintf(r.out, "[line %d] Error: %s\n", line, msg)
	} else {
		r.errColor.Fprintf(r.out, "[line %d] Error %s: %s\n", line, where, msg)
	}
	r.HadError = true
}

// Runtime reports a runtime error, format: "Runtime Error: MSG [line N]".
func (r *Reporter) Runtime(err *RuntimeError) {
	r.runtimeErrColor.Fprintf(r.out, "Runtime Error: %s [line %d]\n", err.Msg, err.Tok.Line)
	r.HadRuntimeError = true
}

// WrapInternal marks an unexpected, non-user-facing failure (a bug, or
// an I/O failure outside the language's own error channel) with a
// stack trace via pkg/errors. It is never shown to the end user: in
// cmd/oxente it travels inside an exitError, of which only the exit
// code is used.
func WrapInternal(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Internal constructs a stack-carrying error for an invariant
// violation that has no underlying cause to wrap (an AST shape the
// evaluator did not expect to reach).
func Internal(msg string) error {
	return errors.New(msg)
}
