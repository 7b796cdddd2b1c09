// Package interpreter implements the tree-walking evaluator: it
// executes the statement list the parser produces against a chain of
// lexically-scoped environments, enforcing the arity and type checks
// spec.md §4.4 names at each operation.
package interpreter

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/Marllon-Freitas/oxente/internal/ast"
	"github.com/Marllon-Freitas/oxente/internal/diagnostics"
	"github.com/Marllon-Freitas/oxente/internal/environment"
	"github.com/Marllon-Freitas/oxente/internal/token"
)

// Interpreter is a single-threaded tree walker. It holds the global
// scope and the scope currently in force, both as handles into an
// Arena (see package environment's doc comment for why the teacher's
// bare *Environment pointer chain was generalized to an arena).
type Interpreter struct {
	arena    *environment.Arena
	globals  environment.Handle
	env      environment.Handle
	reporter *diagnostics.Reporter
	log      *logrus.Entry
	stdout   io.Writer
}

// New returns an Interpreter with clock/str/type already defined in
// its global scope, per spec.md §4.4 ("At construction, defines clock
// in globals..."). print statements write to stdout.
func New(stdout io.Writer, reporter *diagnostics.Reporter, log *logrus.Entry) *Interpreter {
	arena := environment.NewArena()
	in := &Interpreter{
		arena:    arena,
		globals:  arena.Global,
		env:      arena.Global,
		reporter: reporter,
		log:      log,
		stdout:   stdout,
	}
	in.defineNatives()
	return in
}

func (in *Interpreter) writeLine(s string) {
	fmt.Fprintln(in.stdout, s)
}

// Interpret executes stmts in source order against the global
// environment. A runtime error aborts the remainder of the program
// (it does not panic the process) and is reported through the
// Reporter; the REPL driver is responsible for resetting latches
// between lines, per spec.md §4.4's state machine.
func (in *Interpreter) Interpret(stmts []ast.Stmt) {
	in.log.WithField("statements", len(stmts)).Debug("Executing")
	for _, stmt := range stmts {
		_, err := in.execute(stmt)
		if err == nil {
			continue
		}
		if rerr, ok := err.(*diagnostics.RuntimeError); ok {
			in.log.WithField("line", rerr.Tok.Line).Debug("Reporting")
			in.reporter.Runtime(rerr)
			return
		}
		// Not a language-level RuntimeError: an internal invariant was
		// violated. Surface it the same way, and also log the error
		// at debug level.
		in.log.WithError(err).Debug("internal evaluator error")
		in.reporter.Runtime(&diagnostics.RuntimeError{Msg: err.Error()})
		return
	}
}

func (in *Interpreter) execute(s ast.Stmt) (interface{}, error) {
	return s.Accept(in)
}

func (in *Interpreter) evaluate(e ast.Expr) (interface{}, error) {
	return e.Accept(in)
}

// executeBlock runs stmts against envHandle, restoring the previously
// current environment on every exit path (normal completion, error,
// or a Return/Break signal), per spec.md §3 ("Block: ... on any exit
// restore the previous environment").
func (in *Interpreter) executeBlock(stmts []ast.Stmt, envHandle environment.Handle) (interface{}, error) {
	previous := in.env
	in.env = envHandle
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		sig, err := in.execute(stmt)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

// --- statements ---

func (in *Interpreter) VisitExpressionStmt(s *ast.Expression) (interface{}, error) {
	_, err := in.evaluate(s.Expression)
	return nil, err
}

func (in *Interpreter) VisitPrintStmt(s *ast.Print) (interface{}, error) {
	val, err := in.evaluate(s.Expression)
	if err != nil {
		return nil, err
	}
	in.writeLine(stringify(val))
	return nil, nil
}

func (in *Interpreter) VisitVarStmt(s *ast.Var) (interface{}, error) {
	var val interface{}
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return nil, err
		}
		val = v
	}
	in.arena.Define(in.env, s.Name.Lexeme, val)
	return nil, nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.Block) (interface{}, error) {
	return in.executeBlock(s.Statements, in.arena.New(in.env))
}

func (in *Interpreter) VisitIfStmt(s *ast.If) (interface{}, error) {
	cond, err := in.evaluate(s.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil, nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.While) (interface{}, error) {
	for {
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}
		sig, err := in.execute(s.Body)
		if err != nil {
			return nil, err
		}
		if sig == nil {
			continue
		}
		if _, ok := sig.(breakSignal); ok {
			return nil, nil
		}
		// a return signal unwinds past this loop to the function call
		return sig, nil
	}
}

func (in *Interpreter) VisitBreakStmt(s *ast.Break) (interface{}, error) {
	return breakSignal{}, nil
}

func (in *Interpreter) VisitFunctionStmt(s *ast.Function) (interface{}, error) {
	fn := NewFunction(s, in.env)
	in.arena.Define(in.env, s.Name.Lexeme, fn)
	return nil, nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.Return) (interface{}, error) {
	var val interface{}
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return nil, err
		}
		val = v
	}
	return returnSignal{value: val}, nil
}

// --- expressions ---

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Value, nil
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return in.evaluate(e.Expression)
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.Minus:
		num, ok := right.(float64)
		if !ok {
			return nil, &diagnostics.RuntimeError{Tok: e.Op, Msg: "Operand must be a number."}
		}
		return -num, nil
	case token.Bang:
		return !isTruthy(right), nil
	}
	return nil, diagnostics.Internal("unreachable unary operator " + e.Op.Type.String())
}

func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	// left-to-right evaluation order (spec.md §5) holds here even
	// for comma, since its left side is only evaluated for side
	// effects before the switch below discards it.
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual, token.Minus, token.Star:
		l, r, err := in.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return compareOrArith(e.Op.Type, l, r), nil
	case token.Slash:
		l, r, err := in.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, &diagnostics.RuntimeError{Tok: e.Op, Msg: "Division by zero."}
		}
		return l / r, nil
	case token.Plus:
		return in.add(e.Op, left, right)
	case token.EqualEqual:
		return isEqual(left, right), nil
	case token.BangEqual:
		return !isEqual(left, right), nil
	case token.Comma:
		return right, nil
	}
	return nil, diagnostics.Internal("unreachable binary operator " + e.Op.Type.String())
}

func compareOrArith(op token.Type, l, r float64) interface{} {
	switch op {
	case token.Greater:
		return l > r
	case token.GreaterEqual:
		return l >= r
	case token.Less:
		return l < r
	case token.LessEqual:
		return l <= r
	case token.Minus:
		return l - r
	case token.Star:
		return l * r
	}
	return nil
}

func (in *Interpreter) add(op token.Token, left, right interface{}) (interface{}, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if lok && rok {
		return ln + rn, nil
	}
	_, lStr := left.(string)
	_, rStr := right.(string)
	if lStr || rStr {
		// spec.md §9: the stringifier is used on either side when one
		// side is a string, so "n=" + 3 yields "n=3".
		return stringify(left) + stringify(right), nil
	}
	return nil, &diagnostics.RuntimeError{Tok: op, Msg: "Operands must be two numbers or two strings."}
}

func (in *Interpreter) VisitTernaryExpr(e *ast.Ternary) (interface{}, error) {
	cond, err := in.evaluate(e.Expr)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.evaluate(e.Then)
	}
	return in.evaluate(e.Else)
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	return in.arena.Get(in.env, e.Name)
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	val, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := in.arena.Assign(in.env, e.Name, val); err != nil {
		return nil, err
	}
	return val, nil
}

func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Type == token.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &diagnostics.RuntimeError{Tok: e.Paren, Msg: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, &diagnostics.RuntimeError{
			Tok: e.Paren,
			Msg: expectedArgsMsg(fn.Arity(), len(args)),
		}
	}
	return fn.Call(in, args)
}

func expectedArgsMsg(want, got int) string {
	return fmt.Sprintf("Expected %d arguments but got %d.", want, got)
}

func (in *Interpreter) numberOperands(op token.Token, left, right interface{}) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, &diagnostics.RuntimeError{Tok: op, Msg: "Operands must be numbers."}
	}
	return l, r, nil
}
