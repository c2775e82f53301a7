package maincmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/tinylox/glox"
)

// Parse runs the scanner and parser phases against the file at path and
// prints the resulting syntax tree as parenthesized s-expressions.
func Parse(ctx context.Context, stdio mainer.Stdio, path string) error {
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

	printer := &glox.AstPrinter{}
	fmt.Fprintln(stdio.Stdout, printer.Print(statements))

	return nil
}
