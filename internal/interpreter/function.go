package interpreter

import (
	"github.com/Marllon-Freitas/oxente/internal/ast"
	"github.com/Marllon-Freitas/oxente/internal/diagnostics"
	"github.com/Marllon-Freitas/oxente/internal/environment"
)

// Function is a user-defined, closure-capturing callable. Adapted
// from the teacher's LoxFunction (a bare type alias over FunctionStmt
// with no captured environment — the teacher always ran bodies in
// in.globals, so nested functions there could not close over an
// enclosing call's locals). Here Closure records the environment in
// force at the point of declaration, giving the closure semantics
// spec.md §3/§4.4 require (example 4 in spec.md §8 depends on this).
type Function struct {
	declaration *ast.Function
	closure     environment.Handle
}

// NewFunction builds a Function capturing closure as its defining
// environment.
func NewFunction(decl *ast.Function, closure environment.Handle) *Function {
	return &Function{declaration: decl, closure: closure}
}

// Arity returns the function's fixed parameter count.
func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Call binds each parameter to its argument in a fresh environment
// whose parent is the closure (not the caller's current environment),
// executes the body there, and returns the Return signal's value or
// Nil on normal completion. A Break signal escaping the body is a
// runtime error per spec.md §9.
func (f *Function) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	callEnv := in.arena.New(f.closure)
	for i, param := range f.declaration.Params {
		in.arena.Define(callEnv, param.Lexeme, args[i])
	}

	sig, err := in.executeBlock(f.declaration.Body, callEnv)
	if err != nil {
		return nil, err
	}
	switch s := sig.(type) {
	case returnSignal:
		return s.value, nil
	case breakSignal:
		return nil, &diagnostics.RuntimeError{
			Tok: f.declaration.Name,
			Msg: "Cannot break outside of a loop.",
		}
	default:
		return nil, nil
	}
}

// String renders the callable's display form for stringify/print.
func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// NativeFunction wraps a Go closure as a Callable, used for clock,
// str and type (SPEC_FULL.md, Supplemented Features).
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []interface{}) (interface{}, error)
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return n.fn(in, args)
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}
