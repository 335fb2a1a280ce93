package ast

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

// Expression is an expression-statement: an expression evaluated for its
// side effects, its value discarded (§3). In REPL mode, a line consisting of
// a single expression statement has its value echoed by the REPL loop.
type Expression struct {
	X Expr
}

func (n *Expression) stmt() {}
func (n *Expression) Line() int {
	return n.X.Line()
}
func (n *Expression) Walk(v Visitor) {
	Walk(v, n.X)
}
func (n *Expression) Format(f fmt.State, verb rune) {
	format(f, verb, n, "exprstmt", map[string]int{"children": 1})
}

// Print is a `print` statement (§3).
type Print struct {
	X      Expr
	LineNo int
}

func (n *Print) stmt() {}
func (n *Print) Line() int {
	return n.LineNo
}
func (n *Print) Walk(v Visitor) {
	Walk(v, n.X)
}
func (n *Print) Format(f fmt.State, verb rune) {
	format(f, verb, n, "print", map[string]int{"children": 1})
}

// Var is a `var` declaration, with an optional initializer (§3). Init is
// nil when the variable is declared without one, in which case it is bound
// to nil (§4.3).
type Var struct {
	Name token.Token
	Init Expr
}

func (n *Var) stmt() {}
func (n *Var) Line() int {
	return n.Name.Line
}
func (n *Var) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
}
func (n *Var) Format(f fmt.State, verb rune) {
	counts := map[string]int{}
	if n.Init != nil {
		counts["children"] = 1
	}
	format(f, verb, n, fmt.Sprintf("var(%s)", n.Name.Lexeme), counts)
}

// Block is a brace-delimited sequence of statements introducing a new
// lexical scope (§3, §4.3).
type Block struct {
	Stmts  []Stmt
	LineNo int
}

func (n *Block) stmt() {}
func (n *Block) Line() int {
	return n.LineNo
}
func (n *Block) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *Block) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Stmts)})
}

// If is an `if` statement with an optional `else` branch (§3). Else is nil
// when there is no else branch.
type If struct {
	Cond   Expr
	Then   Stmt
	Else   Stmt
	LineNo int
}

func (n *If) stmt() {}
func (n *If) Line() int {
	return n.LineNo
}
func (n *If) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *If) Format(f fmt.State, verb rune) {
	counts := map[string]int{"children": 2}
	if n.Else != nil {
		counts["children"] = 3
	}
	format(f, verb, n, "if", counts)
}

// While is a `while` statement (§3); `for` loops are desugared into While
// by the parser (§4.2).
type While struct {
	Cond   Expr
	Body   Stmt
	LineNo int
}

func (n *While) stmt() {}
func (n *While) Line() int {
	return n.LineNo
}
func (n *While) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *While) Format(f fmt.State, verb rune) {
	format(f, verb, n, "while", map[string]int{"children": 2})
}

// Function is a function or method declaration (§3). It is also used, with
// an empty Name, to represent the body of an anonymous function wherever
// the grammar needs one; Lox itself has no anonymous function literal, so
// this is always named in practice.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (n *Function) stmt() {}
func (n *Function) Line() int {
	return n.Name.Line
}
func (n *Function) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *Function) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("function(%s)", n.Name.Lexeme),
		map[string]int{"params": len(n.Params), "stmts": len(n.Body)})
}

// Return is a `return` statement (§3). Value is nil for a bare `return;`,
// in which case the function returns nil (§4.4).
type Return struct {
	Keyword token.Token
	Value   Expr
}

func (n *Return) stmt() {}
func (n *Return) Line() int {
	return n.Keyword.Line
}
func (n *Return) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *Return) Format(f fmt.State, verb rune) {
	counts := map[string]int{}
	if n.Value != nil {
		counts["children"] = 1
	}
	format(f, verb, n, "return", counts)
}

// Class is a class declaration, with an optional superclass and zero or
// more methods (§3). Superclass is nil when the class has none.
type Class struct {
	Name       token.Token
	Superclass *Variable
	Methods    []*Function
}

func (n *Class) stmt() {}
func (n *Class) Line() int {
	return n.Name.Line
}
func (n *Class) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *Class) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("class(%s)", n.Name.Lexeme), map[string]int{"methods": len(n.Methods)})
}
