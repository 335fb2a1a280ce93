package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/mainer"
)

// TokenizeFiles runs only the scanner stage (§4.1) over each file and
// prints the resulting tokens, one per line. It is the teacher's own
// "tokenize" introspection command, kept as ambient pipeline tooling
// beyond what §6 requires of the CLI.
func TokenizeFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	var firstErr error
	for _, file := range files {
		toks, err := scanner.ScanFile(file)
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%s:%d: %s\n", file, tok.Line, tok)
		}
		if err != nil {
			printDiagnostics(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
