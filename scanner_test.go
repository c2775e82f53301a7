package glox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func scanSource(t *testing.T, source string) ([]Token, *Runtime) {
	t.Helper()

	runtime := NewRuntimeWithStdio(&bytes.Buffer{}, &bytes.Buffer{})
	scanner := NewScanner(bytes.NewBufferString(source), runtime)
	return scanner.ScanTokens(), runtime
}

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	tokens, runtime := scanSource(t, "(){},.-+;*!!====<=>=<>/")
	require.False(t, runtime.HadError())

	want := []TokenType{
		LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Minus, Plus,
		Semicolon, Star, Bang, BangEqual, EqualEqual, Equal, LessEqual,
		GreaterEqual, Less, Greater, Slash, Eof,
	}

	require.Len(t, tokens, len(want))
	for i, tt := range want {
		require.Equalf(t, tt, tokens[i].Type, "token %d", i)
	}
}

func TestScanTokensLineComment(t *testing.T) {
	tokens, runtime := scanSource(t, "1 // this is a comment\n2")
	require.False(t, runtime.HadError())
	require.Equal(t, []TokenType{Number, Number, Eof}, []TokenType{tokens[0].Type, tokens[1].Type, tokens[2].Type})
}

func TestScanTokensNestedBlockComment(t *testing.T) {
	tokens, runtime := scanSource(t, "1 /* outer /* inner */ still outer */ 2")
	require.False(t, runtime.HadError())
	require.Equal(t, []TokenType{Number, Number, Eof}, []TokenType{tokens[0].Type, tokens[1].Type, tokens[2].Type})
}

func TestScanTokensUnterminatedBlockComment(t *testing.T) {
	_, runtime := scanSource(t, "/* never closed")
	require.True(t, runtime.HadError())
}

func TestScanTokensStringAndNumber(t *testing.T) {
	tokens, runtime := scanSource(t, `"hello" 3.14`)
	require.False(t, runtime.HadError())

	require.Equal(t, String, tokens[0].Type)
	require.Equal(t, "hello", tokens[0].Literal)

	require.Equal(t, Number, tokens[1].Type)
	require.Equal(t, 3.14, tokens[1].Literal)
}

func TestScanTokensUnterminatedString(t *testing.T) {
	_, runtime := scanSource(t, `"hello`)
	require.True(t, runtime.HadError())
}

func TestScanTokensKeywordsAndIdentifiers(t *testing.T) {
	tokens, runtime := scanSource(t, "and class else false for fun if nil or print return super this true var while foo")
	require.False(t, runtime.HadError())

	want := []TokenType{
		And, Class, Else, False, For, Fun, If, Nil, Or, PRINT, Return, Super,
		This, True, Var, While, Identifiers, Eof,
	}

	require.Len(t, tokens, len(want))
	for i, tt := range want {
		require.Equalf(t, tt, tokens[i].Type, "token %d", i)
	}
}
