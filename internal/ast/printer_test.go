package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Marllon-Freitas/oxente/internal/ast"
	"github.com/Marllon-Freitas/oxente/internal/token"
)

// Adapted from the teacher's ast_printer.go main() harness, which
// built "(* (- 123) (group 45.67))" by hand and printed it.
func TestPrinterParenthesizesNestedExpression(t *testing.T) {
	expr := &ast.Binary{
		Left: &ast.Unary{
			Op:    token.New(token.Minus, "-", nil, 1),
			Right: &ast.Literal{Value: 123.0},
		},
		Op: token.New(token.Star, "*", nil, 1),
		Right: &ast.Grouping{
			Expression: &ast.Literal{Value: 45.67},
		},
	}

	p := &ast.Printer{}
	assert.Equal(t, "(* (- 123) (group 45.67))", p.Print(expr))
}

func TestPrinterTernaryAndCall(t *testing.T) {
	p := &ast.Printer{}

	ternary := &ast.Ternary{
		Expr: &ast.Literal{Value: true},
		Then: &ast.Literal{Value: 1.0},
		Else: &ast.Literal{Value: 2.0},
	}
	assert.Equal(t, "(?: true 1 2)", p.Print(ternary))

	call := &ast.Call{
		Callee:    &ast.Variable{Name: token.New(token.Identifier, "f", nil, 1)},
		Paren:     token.New(token.RightParen, ")", nil, 1),
		Arguments: []ast.Expr{&ast.Literal{Value: 1.0}, &ast.Literal{Value: 2.0}},
	}
	assert.Equal(t, "(call f 1 2)", p.Print(call))
}
