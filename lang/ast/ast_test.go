package ast_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.Print{LineNo: 1, X: &ast.Binary{
			LineNo: 1,
			Left:   &ast.Literal{LineNo: 1, Value: 1.0},
			Op:     token.Token{Kind: token.PLUS, Lexeme: "+", Line: 1},
			Right:  &ast.Literal{LineNo: 1, Value: 2.0},
		}},
	}}

	var buf bytes.Buffer
	p := &ast.Printer{Output: &buf}
	require.NoError(t, p.Print(prog))

	out := buf.String()
	require.Contains(t, out, "program")
	require.Contains(t, out, "print")
	require.Contains(t, out, "binary(+)")
	require.Contains(t, out, "literal(1)")
}

func TestPrinterWithLines(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.Expression{X: &ast.Literal{LineNo: 3, Value: "hi"}},
	}}

	var buf bytes.Buffer
	p := &ast.Printer{Output: &buf, Lines: true}
	require.NoError(t, p.Print(prog))
	require.Contains(t, buf.String(), "[line 3]")
}

func TestVariableFormatWidth(t *testing.T) {
	v := &ast.Variable{Name: token.Token{Lexeme: "count"}}
	require.Equal(t, "variable(co", fmt.Sprintf("%11v", v))
}
