package glox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, source string) *Runtime {
	t.Helper()

	runtime := NewRuntimeWithStdio(&bytes.Buffer{}, &bytes.Buffer{})
	scanner := NewScanner(bytes.NewBufferString(source), runtime)
	parser := NewParser(scanner.ScanTokens(), runtime)
	stmts := parser.Parse()
	require.False(t, runtime.HadError())

	resolver := NewResolver(runtime.Interpreter(), runtime)
	resolver.ResolveStatements(stmts)
	return runtime
}

func TestResolverRejectsSelfReferentialInitializer(t *testing.T) {
	runtime := resolveSource(t, "var a = 1; { var a = a; }")
	require.True(t, runtime.HadError())
}

func TestResolverRejectsDuplicateLocalDeclaration(t *testing.T) {
	runtime := resolveSource(t, "{ var a = 1; var a = 2; }")
	require.True(t, runtime.HadError())
}

func TestResolverRejectsReturnAtTopLevel(t *testing.T) {
	runtime := resolveSource(t, "return 1;")
	require.True(t, runtime.HadError())
}

func TestResolverRejectsReturnValueFromInitializer(t *testing.T) {
	runtime := resolveSource(t, `
		class Foo {
			init() { return 1; }
		}
	`)
	require.True(t, runtime.HadError())
}

func TestResolverRejectsSelfInheritingClass(t *testing.T) {
	runtime := resolveSource(t, "class Oops < Oops {}")
	require.True(t, runtime.HadError())
}

func TestResolverRejectsThisOutsideClass(t *testing.T) {
	runtime := resolveSource(t, "print this;")
	require.True(t, runtime.HadError())
}

func TestResolverRejectsSuperWithoutSuperclass(t *testing.T) {
	runtime := resolveSource(t, `
		class Foo {
			bar() { return super.bar(); }
		}
	`)
	require.True(t, runtime.HadError())
}

func TestResolverAcceptsShadowingAcrossScopes(t *testing.T) {
	runtime := resolveSource(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
		}
	`)
	require.False(t, runtime.HadError())
}
