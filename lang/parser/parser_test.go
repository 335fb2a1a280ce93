package parser_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseSource("test", []byte(src))
	require.NoError(t, err)
	return prog
}

func TestParseExpressionStatement(t *testing.T) {
	prog := parse(t, `1 + 2 * 3;`)
	require.Len(t, prog.Stmts, 1)

	stmt, ok := prog.Stmts[0].(*ast.Expression)
	require.True(t, ok)
	bin, ok := stmt.X.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, token.PLUS, bin.Op.Kind)

	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, token.STAR, rhs.Op.Kind)
}

func TestParsePrecedenceAndGrouping(t *testing.T) {
	prog := parse(t, `(1 + 2) * 3;`)
	bin := prog.Stmts[0].(*ast.Expression).X.(*ast.Binary)
	require.Equal(t, token.STAR, bin.Op.Kind)
	_, ok := bin.Left.(*ast.Grouping)
	require.True(t, ok)
}

func TestParseVarDeclaration(t *testing.T) {
	prog := parse(t, `var x = 1;`)
	v, ok := prog.Stmts[0].(*ast.Var)
	require.True(t, ok)
	require.Equal(t, "x", v.Name.Lexeme)
	lit, ok := v.Init.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, 1.0, lit.Value)
}

func TestParseVarDeclarationNoInitializer(t *testing.T) {
	prog := parse(t, `var x;`)
	v := prog.Stmts[0].(*ast.Var)
	require.Nil(t, v.Init)
}

func TestParseAssignment(t *testing.T) {
	prog := parse(t, `x = 1;`)
	assign := prog.Stmts[0].(*ast.Expression).X.(*ast.Assign)
	require.Equal(t, "x", assign.Name.Lexeme)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.ParseSource("test", []byte(`1 = 2;`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid assignment target")
}

func TestParseLogical(t *testing.T) {
	prog := parse(t, `true and false or true;`)
	lo := prog.Stmts[0].(*ast.Expression).X.(*ast.Logical)
	require.Equal(t, token.OR, lo.Op.Kind)
	la, ok := lo.Left.(*ast.Logical)
	require.True(t, ok)
	require.Equal(t, token.AND, la.Op.Kind)
}

func TestParseIfElse(t *testing.T) {
	prog := parse(t, `if (x) print 1; else print 2;`)
	ifs, ok := prog.Stmts[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifs.Then)
	require.NotNil(t, ifs.Else)
}

func TestParseWhile(t *testing.T) {
	prog := parse(t, `while (x) x = x - 1;`)
	_, ok := prog.Stmts[0].(*ast.While)
	require.True(t, ok)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	prog := parse(t, `for (var i = 0; i < 10; i = i + 1) print i;`)
	block, ok := prog.Stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*ast.Var)
	require.True(t, ok)

	while, ok := block.Stmts[1].(*ast.While)
	require.True(t, ok)

	bodyBlock, ok := while.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, bodyBlock.Stmts, 2)
}

func TestParseForAllClausesOptional(t *testing.T) {
	prog := parse(t, `for (;;) print 1;`)
	while, ok := prog.Stmts[0].(*ast.While)
	require.True(t, ok)
	lit, ok := while.Cond.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, true, lit.Value)
}

func TestParseFunctionDeclaration(t *testing.T) {
	prog := parse(t, `fun add(a, b) { return a + b; }`)
	fn, ok := prog.Stmts[0].(*ast.Function)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParseReturnWithoutValue(t *testing.T) {
	prog := parse(t, `fun f() { return; }`)
	fn := prog.Stmts[0].(*ast.Function)
	ret, ok := fn.Body[0].(*ast.Return)
	require.True(t, ok)
	require.Nil(t, ret.Value)
}

func TestParseClassDeclaration(t *testing.T) {
	prog := parse(t, `class Greeter < Base { greet() { print "hi"; } }`)
	c, ok := prog.Stmts[0].(*ast.Class)
	require.True(t, ok)
	require.Equal(t, "Greeter", c.Name.Lexeme)
	require.NotNil(t, c.Superclass)
	require.Equal(t, "Base", c.Superclass.Name.Lexeme)
	require.Len(t, c.Methods, 1)
	require.Equal(t, "greet", c.Methods[0].Name.Lexeme)
}

func TestParseCallAndGetChain(t *testing.T) {
	prog := parse(t, `a.b().c;`)
	get, ok := prog.Stmts[0].(*ast.Expression).X.(*ast.Get)
	require.True(t, ok)
	require.Equal(t, "c", get.Name.Lexeme)
	call, ok := get.Object.(*ast.Call)
	require.True(t, ok)
	getB, ok := call.Callee.(*ast.Get)
	require.True(t, ok)
	require.Equal(t, "b", getB.Name.Lexeme)
}

func TestParseThisAndSuper(t *testing.T) {
	prog := parse(t, `class A { f() { return this; } } class B < A { f() { return super.f(); } }`)
	a := prog.Stmts[0].(*ast.Class)
	ret := a.Methods[0].Body[0].(*ast.Return)
	_, ok := ret.Value.(*ast.This)
	require.True(t, ok)

	b := prog.Stmts[1].(*ast.Class)
	ret2 := b.Methods[0].Body[0].(*ast.Return)
	call := ret2.Value.(*ast.Call)
	sup, ok := call.Callee.(*ast.Super)
	require.True(t, ok)
	require.Equal(t, "f", sup.Method.Lexeme)
}

func TestParseSynchronizesAfterError(t *testing.T) {
	prog, err := parser.ParseSource("test", []byte(`var = ; var y = 1;`))
	require.Error(t, err)
	require.Len(t, prog.Stmts, 1)
	v, ok := prog.Stmts[0].(*ast.Var)
	require.True(t, ok)
	require.Equal(t, "y", v.Name.Lexeme)
}

func TestParseTooManyArguments(t *testing.T) {
	args := "1"
	for i := 0; i < 255; i++ {
		args += ", 1"
	}
	_, err := parser.ParseSource("test", []byte(`f(`+args+`);`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "can't have more than 255 arguments")
}
