package maincmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mna/mainer"

	"github.com/tinylox/glox"
)

// Resolve runs the scanner, parser, and resolver phases against the file at
// path, prints the syntax tree, then interprets it and reports which names
// ended up bound in the global scope. The resolver reports its diagnostics
// through the same tokenError/hadError path the scanner and parser use, so
// a resolve failure is detected the same way, by checking HadError after
// the resolver pass.
func Resolve(ctx context.Context, stdio mainer.Stdio, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	runtime := glox.NewRuntimeWithStdio(stdio.Stdout, stdio.Stderr)
	scanner := glox.NewScanner(bytes.NewBuffer(data), runtime)
	tokens := scanner.ScanTokens()
	if runtime.HadError() {
		return fmt.Errorf("%s: scan error", path)
	}

	parser := glox.NewParser(tokens, runtime)
	statements := parser.Parse()
	if runtime.HadError() {
		return fmt.Errorf("%s: parse error", path)
	}

	resolver := glox.NewResolver(runtime.Interpreter(), runtime)
	resolver.ResolveStatements(statements)
	if runtime.HadError() {
		return fmt.Errorf("%s: resolve error", path)
	}

	printer := &glox.AstPrinter{}
	fmt.Fprintln(stdio.Stdout, printer.Print(statements))

	runtime.Interpreter().Interpret(statements)
	if runtime.HadRuntimeError() {
		return fmt.Errorf("%s: runtime error", path)
	}

	fmt.Fprintf(stdio.Stdout, "globals: %s\n", strings.Join(runtime.Interpreter().Globals().Names(), ", "))
	return nil
}
