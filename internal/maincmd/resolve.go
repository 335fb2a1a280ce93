package maincmd

import (
	"context"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

// ResolveFiles runs the full static pipeline (§4.1-§4.3) over each file and
// pretty-prints the AST annotated with resolver scope-distance information
// (the Depth field of each resolved Variable/Assign/This/Super node, which
// ast.Printer appends as "[depth N]"). Kept as an introspection
// command beyond §6's bare run contract.
func ResolveFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	printer := ast.Printer{Output: stdio.Stdout, Lines: true}

	var firstErr error
	for _, file := range files {
		prog, err := parser.ParseFile(file)
		if err != nil {
			printDiagnostics(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if rerr := resolver.Resolve(file, prog); rerr != nil {
			printDiagnostics(stdio.Stderr, rerr)
			if firstErr == nil {
				firstErr = rerr
			}
		}

		if prog != nil {
			if perr := printer.Print(prog); perr != nil {
				return perr
			}
		}
	}
	return firstErr
}
