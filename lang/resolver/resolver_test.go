package resolver_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	prog, err := parser.ParseSource("test", []byte(src))
	require.NoError(t, err)
	return prog, resolver.Resolve("test", prog)
}

func TestResolveGlobalLeftUnresolved(t *testing.T) {
	prog, err := resolve(t, `var x = 1; print x;`)
	require.NoError(t, err)
	print := prog.Stmts[1].(*ast.Print)
	v := print.X.(*ast.Variable)
	require.Nil(t, v.Depth)
}

func TestResolveLocalDepth(t *testing.T) {
	prog, err := resolve(t, `{ var x = 1; { print x; } }`)
	require.NoError(t, err)
	outer := prog.Stmts[0].(*ast.Block)
	inner := outer.Stmts[1].(*ast.Block)
	v := inner.Stmts[0].(*ast.Print).X.(*ast.Variable)
	require.NotNil(t, v.Depth)
	require.Equal(t, 1, *v.Depth)
}

func TestResolveSelfReferentialInitializerError(t *testing.T) {
	_, err := resolve(t, `{ var a = a; }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "its own initializer")
}

func TestResolveDuplicateLocalError(t *testing.T) {
	_, err := resolve(t, `{ var a = 1; var a = 2; }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already a variable")
}

func TestResolveDuplicateGlobalAllowed(t *testing.T) {
	_, err := resolve(t, `var a = 1; var a = 2;`)
	require.NoError(t, err)
}

func TestResolveReturnOutsideFunctionError(t *testing.T) {
	_, err := resolve(t, `return 1;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "return from top-level code")
}

func TestResolveReturnValueFromInitializerError(t *testing.T) {
	_, err := resolve(t, `class A { init() { return 1; } }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "return a value from an initializer")
}

func TestResolveBareReturnFromInitializerAllowed(t *testing.T) {
	_, err := resolve(t, `class A { init() { return; } }`)
	require.NoError(t, err)
}

func TestResolveThisOutsideClassError(t *testing.T) {
	_, err := resolve(t, `print this;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "'this' outside of a class")
}

func TestResolveThisInsideMethodResolves(t *testing.T) {
	prog, err := resolve(t, `class A { f() { print this; } }`)
	require.NoError(t, err)
	class := prog.Stmts[0].(*ast.Class)
	print := class.Methods[0].Body[0].(*ast.Print)
	this := print.X.(*ast.This)
	require.NotNil(t, this.Depth)
}

func TestResolveSuperOutsideClassError(t *testing.T) {
	_, err := resolve(t, `print super.f();`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "'super' outside of a class")
}

func TestResolveSuperWithoutSuperclassError(t *testing.T) {
	_, err := resolve(t, `class A { f() { return super.f(); } }`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no superclass")
}

func TestResolveClassInheritFromItselfError(t *testing.T) {
	_, err := resolve(t, `class A < A {}`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "inherit from itself")
}

func TestResolveSuperResolvesInSubclass(t *testing.T) {
	prog, err := resolve(t, `class A { f() {} } class B < A { f() { return super.f(); } }`)
	require.NoError(t, err)
	b := prog.Stmts[1].(*ast.Class)
	ret := b.Methods[0].Body[0].(*ast.Return)
	call := ret.Value.(*ast.Call)
	sup := call.Callee.(*ast.Super)
	require.NotNil(t, sup.Depth)
}

func TestResolveFunctionParamsShadowOuter(t *testing.T) {
	prog, err := resolve(t, `var x = 1; fun f(x) { print x; }`)
	require.NoError(t, err)
	fn := prog.Stmts[1].(*ast.Function)
	v := fn.Body[0].(*ast.Print).X.(*ast.Variable)
	require.NotNil(t, v.Depth)
	require.Equal(t, 0, *v.Depth)
}
