package glox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvironmentDefineGetAssign(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)

	val, err := env.Get(Token{Type: Identifiers, Lexeme: "a"})
	require.NoError(t, err)
	require.Equal(t, 1.0, val)

	require.NoError(t, env.Assign(Token{Type: Identifiers, Lexeme: "a"}, 2.0))
	val, err = env.Get(Token{Type: Identifiers, Lexeme: "a"})
	require.NoError(t, err)
	require.Equal(t, 2.0, val)
}

func TestEnvironmentGetUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get(Token{Type: Identifiers, Lexeme: "missing"})
	require.Error(t, err)
}

func TestEnvironmentAssignUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign(Token{Type: Identifiers, Lexeme: "missing"}, 1.0)
	require.Error(t, err)
}

func TestEnvironmentChainsToEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", "outer")

	inner := NewEnvironment(outer)
	val, err := inner.Get(Token{Type: Identifiers, Lexeme: "a"})
	require.NoError(t, err)
	require.Equal(t, "outer", val)

	require.NoError(t, inner.Assign(Token{Type: Identifiers, Lexeme: "a"}, "changed"))
	val, err = outer.Get(Token{Type: Identifiers, Lexeme: "a"})
	require.NoError(t, err)
	require.Equal(t, "changed", val)
}

func TestEnvironmentGetAtAssignAt(t *testing.T) {
	global := NewEnvironment(nil)
	middle := NewEnvironment(global)
	inner := NewEnvironment(middle)

	global.Define("a", "global-value")

	require.Equal(t, "global-value", inner.GetAt(2, "a"))

	inner.AssignAt(2, Token{Type: Identifiers, Lexeme: "a"}, "new-value")
	require.Equal(t, "new-value", global.GetAt(0, "a"))
}

func TestEnvironmentNamesIsSortedAndLocalOnly(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("z", 1)

	inner := NewEnvironment(outer)
	inner.Define("b", 2)
	inner.Define("a", 3)

	require.Equal(t, []string{"a", "b"}, inner.Names())
}
