package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marllon-Freitas/oxente/internal/ast"
	"github.com/Marllon-Freitas/oxente/internal/diagnostics"
	"github.com/Marllon-Freitas/oxente/internal/parser"
	"github.com/Marllon-Freitas/oxente/internal/scanner"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *diagnostics.Reporter, string) {
	t.Helper()
	var errBuf bytes.Buffer
	reporter := diagnostics.New(&errBuf)
	toks := scanner.New(source, reporter).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	return stmts, reporter, errBuf.String()
}

func TestParsesPrintStatement(t *testing.T) {
	stmts, reporter, errOut := parse(t, `print 1 + 2;`)
	require.False(t, reporter.HadError, errOut)
	require.Len(t, stmts, 1)

	printStmt, ok := stmts[0].(*ast.Print)
	require.True(t, ok)
	_, ok = printStmt.Expression.(*ast.Binary)
	assert.True(t, ok)
}

func TestMissingLeftHandOperandRecovers(t *testing.T) {
	stmts, reporter, errOut := parse(t, `== 1;`)
	assert.True(t, reporter.HadError)
	assert.Contains(t, errOut, "Missing left-hand operand.")
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.Expression)
	require.True(t, ok)
	lit, ok := exprStmt.Expression.(*ast.Literal)
	require.True(t, ok)
	assert.Nil(t, lit.Value)
}

func TestInvalidAssignmentTargetIsNonFatal(t *testing.T) {
	stmts, reporter, errOut := parse(t, `1 + 2 = 3;`)
	assert.True(t, reporter.HadError)
	assert.Contains(t, errOut, "Invalid assignment target.")
	// parsing continued: one statement still came out
	assert.Len(t, stmts, 1)
}

func TestBreakOutsideLoopReportsError(t *testing.T) {
	_, reporter, errOut := parse(t, `break;`)
	assert.True(t, reporter.HadError)
	assert.Contains(t, errOut, "Can't use 'break' outside of a loop.")
}

func TestBreakInsideWhileIsAccepted(t *testing.T) {
	_, reporter, errOut := parse(t, `while (true) { break; }`)
	assert.False(t, reporter.HadError, errOut)
}

func TestForDesugarsToWhileInBlocks(t *testing.T) {
	stmts, reporter, errOut := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, reporter.HadError, errOut)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*ast.Var)
	assert.True(t, ok)

	whileStmt, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok)

	innerBlock, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, innerBlock.Statements, 2)
	_, ok = innerBlock.Statements[1].(*ast.Expression)
	assert.True(t, ok)
}

func TestOmittedForConditionBecomesTrueLiteral(t *testing.T) {
	stmts, reporter, errOut := parse(t, `for (;;) break;`)
	require.False(t, reporter.HadError, errOut)

	whileStmt, ok := stmts[0].(*ast.While)
	require.True(t, ok)
	lit, ok := whileStmt.Cond.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestFunctionDeclarationParses(t *testing.T) {
	stmts, reporter, errOut := parse(t, `fun add(a, b) { return a + b; }`)
	require.False(t, reporter.HadError, errOut)
	require.Len(t, stmts, 1)

	fn, ok := stmts[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
	_, ok = fn.Body[0].(*ast.Return)
	assert.True(t, ok)
}

func TestTooManyArgumentsReportsButContinues(t *testing.T) {
	var b bytes.Buffer
	b.WriteString("f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("1")
	}
	b.WriteString(");")

	_, reporter, errOut := parse(t, b.String())
	assert.True(t, reporter.HadError)
	assert.Contains(t, errOut, "Can't have more than 255 arguments.")
}

func TestAndOrPrecedenceBetweenTernaryAndAssignment(t *testing.T) {
	stmts, reporter, errOut := parse(t, `var x = true and false or true;`)
	require.False(t, reporter.HadError, errOut)

	v, ok := stmts[0].(*ast.Var)
	require.True(t, ok)
	logical, ok := v.Initializer.(*ast.Logical)
	require.True(t, ok)
	assert.Equal(t, "or", logical.Op.Lexeme)
}
