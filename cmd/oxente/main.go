// Command oxente is the CLI entry point: file-vs-REPL dispatch, exit
// codes, and flag parsing. spec.md §1 calls this an external
// collaborator "not re-specified" by the language spec itself, but
// §6 pins its exact contract (usage text, exit codes 0/64/65/70/74),
// which this command implements byte-for-byte.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Marllon-Freitas/oxente/internal/diagnostics"
	"github.com/Marllon-Freitas/oxente/internal/interpreter"
	"github.com/Marllon-Freitas/oxente/internal/parser"
	"github.com/Marllon-Freitas/oxente/internal/repl"
	"github.com/Marllon-Freitas/oxente/internal/scanner"
)

// exitCodes, per spec.md §6.
const (
	exitOK          = 0
	exitUsage       = 64
	exitDataError   = 65 // parse/scan error in file mode
	exitSoftware    = 70 // runtime error in file mode
	exitUnavailable = 74 // file read error
)

// exitError carries the process exit code a failed run should use.
// cobra's own error printing is silenced (see newRootCmd) so this is
// the only thing that ever decides the process exit status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd, debug := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		if *debug {
			fmt.Fprintf(stderr, "%+v\n", err)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return exitSoftware
	}
	return exitOK
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *bool) {
	var debug bool

	cmd := &cobra.Command{
		Use:           "oxente [script]",
		Short:         "Oxente is a tree-walking interpreter for the Oxente scripting language.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs, // spec.md §6 defines its own 0/1/2+ dispatch and usage error
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr, debug)
			switch len(args) {
			case 0:
				if err := repl.Run(stdout, log.WithField("component", "repl")); err != nil {
					return &exitError{code: exitSoftware, err: err}
				}
				return nil
			case 1:
				return runFile(args[0], stdout, stderr, log)
			default:
				fmt.Fprintln(stderr, "Usage: oxente [script]")
				return &exitError{code: exitUsage}
			}
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose pipeline tracing")
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		fmt.Fprintln(stdout, "Usage: oxente [script]")
	})
	return cmd, &debug
}

func newLogger(out io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: false})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

func runFile(path string, stdout, stderr io.Writer, log *logrus.Logger) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Can't open file at '%s'.\n", path)
		return &exitError{code: exitUnavailable, err: diagnostics.WrapInternal(err, "reading script")}
	}

	reporter := diagnostics.New(stderr)
	entry := log.WithField("component", "file").WithField("path", path)

	entry.Debug("Scanning")
	toks := scanner.New(string(contents), reporter).ScanTokens()

	entry.Debug("Parsing")
	stmts := parser.New(toks, reporter).Parse()

	if reporter.HadError {
		return &exitError{code: exitDataError}
	}

	in := interpreter.New(stdout, reporter, entry)
	in.Interpret(stmts)
	if reporter.HadRuntimeError {
		return &exitError{code: exitSoftware}
	}
	return nil
}
