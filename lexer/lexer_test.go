/*
File    : golox/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenTypes extracts just the Type field from a token slice, dropping
// lexeme/literal/line so tests can assert on the token shape without
// hand-writing every field.
func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func scan(t *testing.T, source string) ([]Token, *report.Sink) {
	t.Helper()
	var buf bytes.Buffer
	sink := report.New(&buf)
	sc := NewScanner(source, sink)
	return sc.ScanTokens(), sink
}

func TestScanTokens_Operators(t *testing.T) {
	tokens, sink := scan(t, `(){},.-+;*!!====<=>=<>/`)
	assert.False(t, sink.HadError)
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, MINUS, PLUS,
		SEMICOLON, STAR, BANG, BANG_EQUAL, EQUAL_EQUAL, EQUAL, LESS_EQUAL, GREATER_EQUAL,
		LESS, GREATER, SLASH, EOF,
	}, tokenTypes(tokens))
}

func TestScanTokens_Keywords(t *testing.T) {
	tokens, sink := scan(t, `and class else false for fun if nil or print return super this true var while`)
	assert.False(t, sink.HadError)
	assert.Equal(t, []TokenType{
		AND, CLASS, ELSE, FALSE, FOR, FUN, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE, VAR, WHILE, EOF,
	}, tokenTypes(tokens))
}

func TestScanTokens_Identifiers(t *testing.T) {
	tokens, sink := scan(t, `orchid classroom x_1 _y`)
	assert.False(t, sink.HadError)
	require.Len(t, tokens, 5)
	for i := 0; i < 4; i++ {
		assert.Equal(t, IDENTIFIER, tokens[i].Type)
	}
}

func TestScanTokens_NumberLiteralIsFloat64(t *testing.T) {
	tokens, sink := scan(t, `123 3.14`)
	assert.False(t, sink.HadError)
	require.Len(t, tokens, 3)
	assert.Equal(t, float64(123), tokens[0].Literal)
	assert.Equal(t, 3.14, tokens[1].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens, sink := scan(t, `"hello, world"`)
	assert.False(t, sink.HadError)
	require.Len(t, tokens, 2)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello, world", tokens[0].Literal)
}

func TestScanTokens_UnterminatedStringReportsError(t *testing.T) {
	_, sink := scan(t, `"never closed`)
	assert.True(t, sink.HadError)
}

func TestScanTokens_UnexpectedCharacterReportsError(t *testing.T) {
	_, sink := scan(t, `@`)
	assert.True(t, sink.HadError)
}

func TestScanTokens_CommentsAndWhitespaceIgnored(t *testing.T) {
	tokens, sink := scan(t, "// a whole line comment\nvar a = 1; // trailing\n")
	assert.False(t, sink.HadError)
	assert.Equal(t, []TokenType{VAR, IDENTIFIER, EQUAL, NUMBER, SEMICOLON, EOF}, tokenTypes(tokens))
}

func TestScanTokens_NewlinesIncrementLine(t *testing.T) {
	tokens, sink := scan(t, "var a = 1;\nvar b = 2;")
	assert.False(t, sink.HadError)
	var secondVarLine int
	seen := 0
	for _, tok := range tokens {
		if tok.Type == VAR {
			seen++
			if seen == 2 {
				secondVarLine = tok.Line
			}
		}
	}
	assert.Equal(t, 2, secondVarLine)
}

func TestScanTokens_AlwaysEndsWithEOF(t *testing.T) {
	tokens, _ := scan(t, ``)
	require.Len(t, tokens, 1)
	assert.Equal(t, EOF, tokens[0].Type)
}
