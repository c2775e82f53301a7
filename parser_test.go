package glox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) ([]Stmt, *Runtime) {
	t.Helper()

	runtime := NewRuntimeWithStdio(&bytes.Buffer{}, &bytes.Buffer{})
	scanner := NewScanner(bytes.NewBufferString(source), runtime)
	parser := NewParser(scanner.ScanTokens(), runtime)
	return parser.Parse(), runtime
}

func TestParserArithmeticPrecedence(t *testing.T) {
	stmts, runtime := parseSource(t, "1 + 2 * 3;")
	require.False(t, runtime.HadError())
	require.Len(t, stmts, 1)

	printer := &AstPrinter{}
	require.Equal(t, "(; (+ 1 (* 2 3)))", printer.Print(stmts))
}

func TestParserForLoopDesugarsToWhile(t *testing.T) {
	stmts, runtime := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, runtime.HadError())
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	_, ok = block.Statements[0].(*VarStmt)
	require.True(t, ok)

	_, ok = block.Statements[1].(*WhileStmt)
	require.True(t, ok)
}

func TestParserClassWithSuperclassAndMethods(t *testing.T) {
	stmts, runtime := parseSource(t, `
		class Animal {
			speak() { return "..."; }
		}
		class Dog < Animal {
			speak() { return super.speak(); }
		}
	`)
	require.False(t, runtime.HadError())
	require.Len(t, stmts, 2)

	dog, ok := stmts[1].(*ClassStmt)
	require.True(t, ok)
	require.Equal(t, "Dog", dog.Name.Lexeme)
	require.NotNil(t, dog.Superclass)
	require.Equal(t, "Animal", dog.Superclass.Name.Lexeme)
	require.Len(t, dog.Methods, 1)
}

func TestParserInvalidAssignmentTarget(t *testing.T) {
	_, runtime := parseSource(t, "1 = 2;")
	require.True(t, runtime.HadError())
}

func TestParserMissingSemicolonSynchronizes(t *testing.T) {
	stmts, runtime := parseSource(t, "print 1\nprint 2;")
	require.True(t, runtime.HadError())
	require.Len(t, stmts, 1)
}

func TestParserTooManyArguments(t *testing.T) {
	source := "fn("
	for i := 0; i < 256; i++ {
		if i > 0 {
			source += ", "
		}
		source += "1"
	}
	source += ");"

	_, runtime := parseSource(t, source)
	require.True(t, runtime.HadError())
}
