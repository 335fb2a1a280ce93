// Package ast defines the types representing the abstract syntax tree (AST)
// of a Lox program: expression and statement node variants (§3), a
// Visitor/Walk pair for generic tree traversal, and a pretty-printer used by
// the "parse"/"resolve" introspection subcommands.
package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Node is any node in the AST.
type Node interface {
	// Every Node implements fmt.Formatter so it can print a description of
	// itself. The only supported verbs are 'v' and 's'; the '#' flag prints
	// child-count information, a width pads or truncates the label, and '-'
	// pads on the right instead of the left.
	fmt.Formatter

	// Line reports the 1-based source line the node starts on.
	Line() int

	// Walk visits each child node, implementing the Visitor pattern for
	// generic traversal (used by the printer). The resolver and interpreter
	// do not use Walk; they switch on concrete node type directly, since
	// each pass needs different data threaded through the recursion.
	Walk(v Visitor)
}

// Expr is an expression node (§3).
type Expr interface {
	Node
	expr()
}

// Stmt is a statement node (§3).
type Stmt interface {
	Node
	stmt()
}

// Program is the root of a parsed Lox source file: a sequence of top-level
// declarations.
type Program struct {
	Stmts []Stmt
}

func (n *Program) Format(f fmt.State, verb rune) {
	format(f, verb, n, "program", map[string]int{"stmts": len(n.Stmts)})
}
func (n *Program) Line() int {
	if len(n.Stmts) == 0 {
		return 0
	}
	return n.Stmts[0].Line()
}
func (n *Program) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func format(f fmt.State, verb rune, n Node, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\n", "⏎")
	label = strings.ReplaceAll(label, "\t", "⭾")

	if w, ok := f.Width(); ok {
		minus, plus := f.Flag('-'), f.Flag('+')
		runes := []rune(label)
		switch {
		case len(runes) >= w:
			runes = runes[:w]
		case minus:
			runes = append(runes, []rune(strings.Repeat(" ", w-len(runes)))...)
		case !plus:
			runes = append([]rune(strings.Repeat(" ", w-len(runes))), runes...)
		}
		label = string(runes)
	}

	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprint(f, " {")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(f, ", ")
			}
			fmt.Fprintf(f, "%s=%d", k, counts[k])
		}
		fmt.Fprint(f, "}")
	}
}
