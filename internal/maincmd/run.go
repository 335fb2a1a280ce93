package maincmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/token"
	"github.com/mna/mainer"
)

// runFile implements the one-arg branch of §6: read path, run it to
// completion, and map the outcome to the exit codes the spec mandates.
func runFile(ctx context.Context, stdio mainer.Stdio, path string) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", errorPrefix(stdio.Stderr), err)
		return exitDataError
	}

	prog, cerr := compile(path, src)
	if cerr != nil {
		printDiagnostics(stdio.Stderr, cerr)
		return exitDataError
	}

	in := interp.New(stdio.Stdout)
	if rerr := in.Interpret(prog.Stmts); rerr != nil {
		printDiagnostics(stdio.Stderr, rerr)
		return exitSoftware
	}
	return exitSuccess
}

// runREPL implements the zero-arg branch of §6: read a line, run the
// whole pipeline on it, print any errors, loop; EOF exits. The REPL shares
// one Interpreter (and so one global environment) across lines, which is
// what lets `var x = 1;` on one line be visible to `print x;` on the next.
//
// A bare expression statement typed at the prompt echoes its value instead
// of discarding it (supplemented feature, not part of file-mode §6
// semantics): e.g. typing `1 + 2;` prints `3`. The statement still needs
// its terminating ';' like any other.
func runREPL(ctx context.Context, stdio mainer.Stdio) mainer.ExitCode {
	in := interp.New(stdio.Stdout)
	reader := newReader(stdio)

	for {
		fmt.Fprint(stdio.Stdout, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(stdio.Stdout)
				return exitSuccess
			}
			fmt.Fprintf(stdio.Stderr, "%s: %s\n", errorPrefix(stdio.Stderr), err)
			return exitSoftware
		}

		prog, cerr := compile("<stdin>", []byte(line))
		if cerr != nil {
			printDiagnostics(stdio.Stderr, cerr)
			continue
		}

		if echo, ok := bareExpressionStatement(prog.Stmts); ok {
			v, rerr := in.EvalExpr(echo)
			if rerr != nil {
				printDiagnostics(stdio.Stderr, rerr)
				continue
			}
			fmt.Fprintln(stdio.Stdout, interp.Stringify(v))
			continue
		}

		if rerr := in.Interpret(prog.Stmts); rerr != nil {
			printDiagnostics(stdio.Stderr, rerr)
		}
	}
}

// bareExpressionStatement reports whether stmts is a single expression
// statement, the shape the REPL echoes (supplemented feature, §6).
func bareExpressionStatement(stmts []ast.Stmt) (ast.Expr, bool) {
	if len(stmts) != 1 {
		return nil, false
	}
	if es, ok := stmts[0].(*ast.Expression); ok {
		return es.X, true
	}
	return nil, false
}

// compile runs the scan/parse/resolve stages (§2): source → tokens → AST →
// annotated AST. Any diagnostic short-circuits the remaining stages, per
// §2's data-flow rule.
func compile(filename string, src []byte) (*ast.Program, error) {
	prog, err := parser.ParseSource(filename, src)
	if err != nil {
		return nil, err
	}
	if err := resolver.Resolve(filename, prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// printDiagnostics writes err to w in the "[line N] Error: message" form
// required by §4.5, one line per diagnostic. A token.ErrorList (from the
// scanner, parser or resolver) is expanded one entry per line; a
// *interp.RuntimeError prints its token's line; anything else (a driver
// I/O error) prints after the "Error" prefix, with no line number.
func printDiagnostics(w io.Writer, err error) {
	var el token.ErrorList
	if errors.As(err, &el) {
		for _, e := range el {
			fmt.Fprintf(w, "[line %d] %s: %s\n", e.Pos.Line, errorPrefix(w), e.Msg)
		}
		return
	}

	var rerr *interp.RuntimeError
	if errors.As(err, &rerr) {
		fmt.Fprintf(w, "[line %d] %s: %s\n", rerr.Token.Line, errorPrefix(w), rerr.Message)
		return
	}

	fmt.Fprintf(w, "%s: %s\n", errorPrefix(w), err)
}
