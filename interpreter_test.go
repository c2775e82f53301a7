package glox

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, source string) (string, *Runtime) {
	t.Helper()

	var out bytes.Buffer
	var errOut bytes.Buffer
	runtime := NewRuntimeWithStdio(&out, &errOut)

	code := runtime.RunFileExitCode(writeTempScript(t, source))
	_ = code
	return out.String(), runtime
}

func writeTempScript(t *testing.T, source string) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "*.lox")
	require.NoError(t, err)
	_, err = f.WriteString(source)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return f.Name()
}

func TestInterpretArithmeticPrecedence(t *testing.T) {
	out, runtime := runSource(t, `print 1 + 2 * 3;`)
	require.False(t, runtime.HadError())
	require.False(t, runtime.HadRuntimeError())
	require.Equal(t, "7", strings.TrimSpace(out))
}

func TestInterpretFractionalNumberStringify(t *testing.T) {
	out, _ := runSource(t, `print 1.5;`)
	require.Equal(t, "1.5", strings.TrimSpace(out))
}

func TestInterpretEqualityOperators(t *testing.T) {
	out, runtime := runSource(t, `
		print 1 == 1;
		print 1 == 2;
		print 1 != 2;
	`)
	require.False(t, runtime.HadError())
	require.False(t, runtime.HadRuntimeError())
	require.Equal(t, "true\nfalse\ntrue", strings.TrimSpace(out))
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, _ := runSource(t, `print "foo" + "bar";`)
	require.Equal(t, "foobar", strings.TrimSpace(out))
}

func TestInterpretClosureCapturesDeclarationEnvironment(t *testing.T) {
	out, runtime := runSource(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}

		var counter = makeCounter();
		counter();
		counter();
	`)
	require.False(t, runtime.HadError())
	require.Equal(t, "1\n2", strings.TrimSpace(out))
}

func TestInterpretClassFieldsAndMethods(t *testing.T) {
	out, runtime := runSource(t, `
		class Greeter {
			init(name) {
				this.name = name;
			}

			greet() {
				print "Hello, " + this.name + "!";
			}
		}

		var g = Greeter("World");
		g.greet();
	`)
	require.False(t, runtime.HadError())
	require.False(t, runtime.HadRuntimeError())
	require.Equal(t, "Hello, World!", strings.TrimSpace(out))
}

func TestInterpretInheritanceWithSuper(t *testing.T) {
	out, runtime := runSource(t, `
		class Animal {
			speak() {
				print "...";
			}
		}

		class Dog < Animal {
			speak() {
				super.speak();
				print "Woof!";
			}
		}

		Dog().speak();
	`)
	require.False(t, runtime.HadError())
	require.False(t, runtime.HadRuntimeError())
	require.Equal(t, "...\nWoof!", strings.TrimSpace(out))
}

func TestInterpretUndefinedPropertyIsRuntimeError(t *testing.T) {
	_, runtime := runSource(t, `
		class Foo {}
		var f = Foo();
		print f.bar;
	`)
	require.True(t, runtime.HadRuntimeError())
}

func TestInterpretTypeMismatchIsRuntimeError(t *testing.T) {
	_, runtime := runSource(t, `print "foo" + 1;`)
	require.True(t, runtime.HadRuntimeError())
}

func TestInterpretArityMismatchIsRuntimeError(t *testing.T) {
	_, runtime := runSource(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	require.True(t, runtime.HadRuntimeError())
}

func TestInterpretLogicalShortCircuits(t *testing.T) {
	out, runtime := runSource(t, `
		fun explode() {
			print "should not print";
			return true;
		}

		print false and explode();
		print true or explode();
	`)
	require.False(t, runtime.HadError())
	require.Equal(t, "false\ntrue", strings.TrimSpace(out))
}

func TestInterpretWhileAndForLoops(t *testing.T) {
	out, runtime := runSource(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}

		for (var j = 0; j < 2; j = j + 1) {
			print j;
		}
	`)
	require.False(t, runtime.HadError())
	require.Equal(t, "0\n1\n2\n0\n1", strings.TrimSpace(out))
}
