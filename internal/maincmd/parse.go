package maincmd

import (
	"context"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/mainer"
)

// ParseFiles runs the scanner+parser stages (§4.1, §4.2) over each file and
// pretty-prints the resulting AST, one node per line indented by nesting
// depth. Kept as an introspection command beyond §6's bare run contract.
func ParseFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	printer := ast.Printer{Output: stdio.Stdout, Lines: true}

	var firstErr error
	for _, file := range files {
		prog, err := parser.ParseFile(file)
		if prog != nil {
			if perr := printer.Print(prog); perr != nil {
				return perr
			}
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
