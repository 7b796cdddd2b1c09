package scanner_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marllon-Freitas/oxente/internal/diagnostics"
	"github.com/Marllon-Freitas/oxente/internal/scanner"
	"github.com/Marllon-Freitas/oxente/internal/token"
)

// Adapted from the teacher's lexer_test.go TestEmptyScanToken /
// TestArithScanToken, generalized to the full token kind set and the
// Reporter-based error sink.
func TestEmptyScanTerminatesWithEOF(t *testing.T) {
	var errBuf bytes.Buffer
	s := scanner.New("", diagnostics.New(&errBuf))
	toks := s.ScanTokens()

	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)
	assert.Equal(t, 1, toks[0].Line)
}

func TestArithmeticTokens(t *testing.T) {
	var errBuf bytes.Buffer
	s := scanner.New("2 + 4", diagnostics.New(&errBuf))
	toks := s.ScanTokens()

	want := []token.Type{token.Number, token.Plus, token.Number, token.EOF}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type, "token %d", i)
	}
	assert.Equal(t, 2.0, toks[0].Literal)
	assert.Equal(t, 4.0, toks[2].Literal)
}

func TestMaximalMunchTwoCharOperators(t *testing.T) {
	var errBuf bytes.Buffer
	s := scanner.New("!= == <= >= ! = < >", diagnostics.New(&errBuf))
	toks := s.ScanTokens()

	want := []token.Type{
		token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
		token.Bang, token.Equal, token.Less, token.Greater, token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type, "token %d", i)
	}
}

func TestStringLiteralSpanningLines(t *testing.T) {
	var errBuf bytes.Buffer
	s := scanner.New("\"a\nb\" 1", diagnostics.New(&errBuf))
	toks := s.ScanTokens()

	require.Len(t, toks, 3)
	assert.Equal(t, "a\nb", toks[0].Literal)
	assert.Equal(t, 2, toks[1].Line)
}

func TestUnterminatedStringReportsError(t *testing.T) {
	var errBuf bytes.Buffer
	reporter := diagnostics.New(&errBuf)
	s := scanner.New(`"unterminated`, reporter)
	s.ScanTokens()

	assert.True(t, reporter.HadError)
	assert.Contains(t, errBuf.String(), "Unterminated string.")
}

func TestUnterminatedBlockCommentReportsErrorAtEOF(t *testing.T) {
	var errBuf bytes.Buffer
	reporter := diagnostics.New(&errBuf)
	s := scanner.New("/* never closed", reporter)
	s.ScanTokens()

	assert.True(t, reporter.HadError)
	assert.Contains(t, errBuf.String(), "Unterminated block comment.")
}

func TestLineCommentConsumesToNewline(t *testing.T) {
	var errBuf bytes.Buffer
	s := scanner.New("1 // a comment\n2", diagnostics.New(&errBuf))
	toks := s.ScanTokens()

	require.Len(t, toks, 3)
	assert.Equal(t, 1.0, toks[0].Literal)
	assert.Equal(t, 2.0, toks[1].Literal)
	assert.Equal(t, 2, toks[1].Line)
}

func TestKeywordVersusIdentifier(t *testing.T) {
	var errBuf bytes.Buffer
	s := scanner.New("var printing = true", diagnostics.New(&errBuf))
	toks := s.ScanTokens()

	want := []token.Type{token.Var, token.Identifier, token.Equal, token.True, token.EOF}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type, "token %d", i)
	}
}

func TestUnexpectedCharacterContinuesScanning(t *testing.T) {
	var errBuf bytes.Buffer
	reporter := diagnostics.New(&errBuf)
	s := scanner.New("1 @ 2", reporter)
	toks := s.ScanTokens()

	assert.True(t, reporter.HadError)
	assert.Contains(t, errBuf.String(), "Unexpected character.")
	// scanning continued past the bad character
	require.Len(t, toks, 3)
	assert.Equal(t, token.Number, toks[0].Type)
	assert.Equal(t, token.Number, toks[1].Type)
}

func TestTrailingDotWithoutFractionalDigitsIsNotPartOfNumber(t *testing.T) {
	var errBuf bytes.Buffer
	s := scanner.New("1.", diagnostics.New(&errBuf))
	toks := s.ScanTokens()

	require.Len(t, toks, 3)
	assert.Equal(t, token.Number, toks[0].Type)
	assert.Equal(t, 1.0, toks[0].Literal)
	assert.Equal(t, token.Dot, toks[1].Type)
}
