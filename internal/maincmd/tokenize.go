package maincmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/tinylox/glox"
)

// Tokenize runs just the scanner phase against the file at path and prints
// every token it produces, one per line.
func Tokenize(ctx context.Context, stdio mainer.Stdio, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	runtime := glox.NewRuntimeWithStdio(stdio.Stdout, stdio.Stderr)
	scanner := glox.NewScanner(bytes.NewBuffer(data), runtime)
	tokens := scanner.ScanTokens()

	for _, tok := range tokens {
		fmt.Fprintln(stdio.Stdout, tok.ToString())
	}

	if runtime.HadError() {
		return fmt.Errorf("%s: scan error", path)
	}

	return nil
}
