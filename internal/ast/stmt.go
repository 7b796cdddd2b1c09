package ast

import "github.com/Marllon-Freitas/oxente/internal/token"

// StmtVisitor is implemented by anything that walks statement nodes.
// Visit methods return an opaque control-flow signal alongside an
// error; package interpreter defines the concrete signal values
// (nil for normal completion, a return-signal, a break-signal) and
// type-switches on what comes back. Keeping the signal type opaque
// here avoids an import cycle between ast and interpreter.
type StmtVisitor interface {
	VisitExpressionStmt(s *Expression) (interface{}, error)
	VisitPrintStmt(s *Print) (interface{}, error)
	VisitVarStmt(s *Var) (interface{}, error)
	VisitBlockStmt(s *Block) (interface{}, error)
	VisitIfStmt(s *If) (interface{}, error)
	VisitWhileStmt(s *While) (interface{}, error)
	VisitBreakStmt(s *Break) (interface{}, error)
	VisitFunctionStmt(s *Function) (interface{}, error)
	VisitReturnStmt(s *Return) (interface{}, error)
}

// Stmt is any statement AST node.
type Stmt interface {
	Accept(v StmtVisitor) (interface{}, error)
}

// Expression is an expression evaluated solely for its side effects.
type Expression struct {
	Expression Expr
}

func (s *Expression) Accept(v StmtVisitor) (interface{}, error) { return v.VisitExpressionStmt(s) }

// Print evaluates an expression and writes its stringified form
// followed by a newline to standard output.
type Print struct {
	Expression Expr
}

func (s *Print) Accept(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

// Var declares a new binding in the current environment, optionally
// initialized by an expression (nil otherwise).
type Var struct {
	Name        token.Token
	Initializer Expr // nil if omitted
}

func (s *Var) Accept(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

// Block introduces a new lexical scope around a sequence of
// statements.
type Block struct {
	Statements []Stmt
}

func (s *Block) Accept(v StmtVisitor) (interface{}, error) { return v.VisitBlockStmt(s) }

// If executes Then or Else (if present) depending on Cond's
// truthiness.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if omitted
}

func (s *If) Accept(v StmtVisitor) (interface{}, error) { return v.VisitIfStmt(s) }

// While repeatedly executes Body while Cond is truthy. It is also the
// target of the parser's for-loop desugaring; no keyword token is kept.
type While struct {
	Cond Expr
	Body Stmt
}

func (s *While) Accept(v StmtVisitor) (interface{}, error) { return v.VisitWhileStmt(s) }

// Break is a non-local transfer out of the nearest enclosing While.
type Break struct {
	Keyword token.Token
}

func (s *Break) Accept(v StmtVisitor) (interface{}, error) { return v.VisitBreakStmt(s) }

// Function declares a named, closure-capturing user function.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *Function) Accept(v StmtVisitor) (interface{}, error) { return v.VisitFunctionStmt(s) }

// Return transfers a value (or Nil if Value is nil) non-locally out
// of the current user-function call.
type Return struct {
	Keyword token.Token
	Value   Expr // nil if omitted
}

func (s *Return) Accept(v StmtVisitor) (interface{}, error) { return v.VisitReturnStmt(s) }
