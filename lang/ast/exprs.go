package ast

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

// Literal is a literal expression: a number, string, true, false or nil
// (§3, §4.1).
type Literal struct {
	Value  any // float64, string, bool, or nil
	LineNo int
}

func (n *Literal) expr() {}
func (n *Literal) Line() int {
	return n.LineNo
}
func (n *Literal) Walk(v Visitor) {}
func (n *Literal) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("literal(%#v)", n.Value), nil)
}

// Grouping is a parenthesized expression (§3).
type Grouping struct {
	Expression Expr
	LineNo     int
}

func (n *Grouping) expr() {}
func (n *Grouping) Line() int {
	return n.LineNo
}
func (n *Grouping) Walk(v Visitor) {
	Walk(v, n.Expression)
}
func (n *Grouping) Format(f fmt.State, verb rune) {
	format(f, verb, n, "group", map[string]int{"children": 1})
}

// Unary is a unary operator expression, `!` or `-` (§3).
type Unary struct {
	Op     token.Token
	Right  Expr
	LineNo int
}

func (n *Unary) expr() {}
func (n *Unary) Line() int {
	return n.LineNo
}
func (n *Unary) Walk(v Visitor) {
	Walk(v, n.Right)
}
func (n *Unary) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("unary(%s)", n.Op.Kind), map[string]int{"children": 1})
}

// Binary is a binary operator expression (§3); both operands are always
// evaluated.
type Binary struct {
	Left   Expr
	Op     token.Token
	Right  Expr
	LineNo int
}

func (n *Binary) expr() {}
func (n *Binary) Line() int {
	return n.LineNo
}
func (n *Binary) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *Binary) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("binary(%s)", n.Op.Kind), map[string]int{"children": 2})
}

// Logical is a short-circuiting `and`/`or` expression (§3, §4.4): the value
// yielded is one of the operand's own values, not necessarily a bool.
type Logical struct {
	Left   Expr
	Op     token.Token
	Right  Expr
	LineNo int
}

func (n *Logical) expr() {}
func (n *Logical) Line() int {
	return n.LineNo
}
func (n *Logical) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *Logical) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("logical(%s)", n.Op.Kind), map[string]int{"children": 2})
}

// Variable is a reference to a named variable (§3). Depth is filled in by
// the resolver: nil means the variable is resolved at the global scope, a
// non-nil value is the number of enclosing scopes to walk up to find its
// binding.
type Variable struct {
	Name   token.Token
	Depth  *int
	LineNo int
}

func (n *Variable) expr() {}
func (n *Variable) Line() int {
	return n.LineNo
}
func (n *Variable) Walk(v Visitor) {}
func (n *Variable) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("variable(%s)", n.Name.Lexeme), nil)
}

// Assign assigns a new value to an existing variable (§3). Depth has the
// same meaning as on Variable.
type Assign struct {
	Name   token.Token
	Value  Expr
	Depth  *int
	LineNo int
}

func (n *Assign) expr() {}
func (n *Assign) Line() int {
	return n.LineNo
}
func (n *Assign) Walk(v Visitor) {
	Walk(v, n.Value)
}
func (n *Assign) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("assign(%s)", n.Name.Lexeme), map[string]int{"children": 1})
}

// Call is a function or method call expression (§3); Paren is the closing
// ')' token, used for its line number when reporting call-related errors.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (n *Call) expr() {}
func (n *Call) Line() int {
	return n.Callee.Line()
}
func (n *Call) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *Call) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}

// Get reads a property off an instance (§3).
type Get struct {
	Object Expr
	Name   token.Token
}

func (n *Get) expr() {}
func (n *Get) Line() int {
	return n.Object.Line()
}
func (n *Get) Walk(v Visitor) {
	Walk(v, n.Object)
}
func (n *Get) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("get(%s)", n.Name.Lexeme), map[string]int{"children": 1})
}

// Set assigns a property on an instance (§3).
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (n *Set) expr() {}
func (n *Set) Line() int {
	return n.Object.Line()
}
func (n *Set) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *Set) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("set(%s)", n.Name.Lexeme), map[string]int{"children": 2})
}

// This is a reference to the receiver inside a method body (§3). Depth has
// the same meaning as on Variable.
type This struct {
	Keyword token.Token
	Depth   *int
}

func (n *This) expr() {}
func (n *This) Line() int {
	return n.Keyword.Line
}
func (n *This) Walk(v Visitor) {}
func (n *This) Format(f fmt.State, verb rune) {
	format(f, verb, n, "this", nil)
}

// Super is a reference to a superclass method from within a method body
// (§3). Depth has the same meaning as on Variable; it resolves "super", not
// Method.
type Super struct {
	Keyword token.Token
	Method  token.Token
	Depth   *int
}

func (n *Super) expr() {}
func (n *Super) Line() int {
	return n.Keyword.Line
}
func (n *Super) Walk(v Visitor) {}
func (n *Super) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("super(%s)", n.Method.Lexeme), nil)
}
