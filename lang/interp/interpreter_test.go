package interp_test

import (
	"bytes"
	"testing"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.ParseSource("test", []byte(src))
	require.NoError(t, err)
	require.NoError(t, resolver.Resolve("test", prog))

	var buf bytes.Buffer
	in := interp.New(&buf)
	err = in.Interpret(prog.Stmts)
	return buf.String(), err
}

func TestClosureCapture(t *testing.T) {
	out, err := run(t, `var a = "global"; { fun show() { print a; } show(); var a = "block"; show(); }`)
	require.NoError(t, err)
	require.Equal(t, "global\nglobal\n", out)
}

func TestInitializerReturnsInstance(t *testing.T) {
	out, err := run(t, `class A { init() { return; } } print A();`)
	require.NoError(t, err)
	require.Equal(t, "A instance\n", out)
}

func TestSuperDispatch(t *testing.T) {
	out, err := run(t, `class A { m() { print "A"; } } class B < A { m() { super.m(); print "B"; } } B().m();`)
	require.NoError(t, err)
	require.Equal(t, "A\nB\n", out)
}

func TestFibonacci(t *testing.T) {
	out, err := run(t, `fun fib(n){ if (n<2) return n; return fib(n-1)+fib(n-2);} print fib(10);`)
	require.NoError(t, err)
	require.Equal(t, "55\n", out)
}

func TestRuntimeTypeErrorReportsLine(t *testing.T) {
	_, err := run(t, `print "a" + 1;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "[line 1]")
	require.Contains(t, err.Error(), "Operands must be two numbers or two strings.")
}

func TestUndefinedVariable(t *testing.T) {
	_, err := run(t, `print x;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Undefined variable 'x'")
}

func TestIntegerPrintHasNoFractionalSuffix(t *testing.T) {
	out, err := run(t, `print 3; print 3.0; print -1; print 1000000;`)
	require.NoError(t, err)
	require.Equal(t, "3\n3\n-1\n1000000\n", out)
}

func TestShortCircuitReturnsOperandValue(t *testing.T) {
	out, err := run(t, `print "hi" or 2; print nil or "fallback"; print false and "nope"; print 1 and 2;`)
	require.NoError(t, err)
	require.Equal(t, "hi\nfallback\nfalse\n2\n", out)
}

func TestNilEquality(t *testing.T) {
	out, err := run(t, `print nil == nil; print nil == 0; print nil == false; print nil == "";`)
	require.NoError(t, err)
	require.Equal(t, "true\nfalse\nfalse\nfalse\n", out)
}

func TestNaNInequality(t *testing.T) {
	out, err := run(t, `var nan = 0.0/0.0; print nan == nan;`)
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestArityMismatch(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}

func TestFieldsAreDynamic(t *testing.T) {
	out, err := run(t, `class Point {} var p = Point(); p.x = 3; p.y = 4; print p.x + p.y;`)
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}

func TestUninitializedVarIsNil(t *testing.T) {
	out, err := run(t, `var a; print a;`)
	require.NoError(t, err)
	require.Equal(t, "nil\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `var i = 0; while (i < 3) { print i; i = i + 1; }`)
	require.NoError(t, err)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestForLoopDesugaring(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	require.Equal(t, "foobar\n", out)
}

func TestCallOnNonCallable(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestPropertyAccessOnNonInstance(t *testing.T) {
	_, err := run(t, `var x = 1; print x.y;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Only instances have properties.")
}
