package ast

import (
	"fmt"
	"strings"
)

// Printer is a canonical parenthesiser used by the round-trip tests in
// spec.md §8 ("Parsing then printing ... yields a string that
// reparses to an equivalent AST"). Adapted from the teacher's
// ASTPrinter, generalized to every expression kind.
type Printer struct{}

// Print renders e as a fully-parenthesized string.
func (p *Printer) Print(e Expr) string {
	s, _ := e.Accept(p)
	return s.(string)
}

func (p *Printer) VisitBinaryExpr(e *Binary) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitGroupingExpr(e *Grouping) (interface{}, error) {
	return p.parenthesize("group", e.Expression), nil
}

func (p *Printer) VisitLiteralExpr(e *Literal) (interface{}, error) {
	if e.Value == nil {
		return "nil", nil
	}
	return fmt.Sprintf("%v", e.Value), nil
}

func (p *Printer) VisitUnaryExpr(e *Unary) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Right), nil
}

func (p *Printer) VisitTernaryExpr(e *Ternary) (interface{}, error) {
	return p.parenthesize("?:", e.Expr, e.Then, e.Else), nil
}

func (p *Printer) VisitVariableExpr(e *Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *Printer) VisitAssignExpr(e *Assign) (interface{}, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value), nil
}

func (p *Printer) VisitLogicalExpr(e *Logical) (interface{}, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitCallExpr(e *Call) (interface{}, error) {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Arguments...)...), nil
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		s, _ := e.Accept(p)
		b.WriteString(s.(string))
	}
	b.WriteByte(')')
	return b.String()
}
