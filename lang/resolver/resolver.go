// Package resolver implements the static analysis pass that runs between
// parsing and interpretation: it walks the AST once to bind every variable
// reference to the scope it belongs in, and records on the AST (§4.3) how
// many enclosing scopes separate a use of a variable from its declaration.
// The interpreter then looks a variable up directly in that numbered
// environment instead of walking the environment chain name by name, which
// is what gives closures their well-defined, lexically-scoped semantics.
//
// The resolver also doubles as a static checker: it reports `return`
// outside a function, `this`/`super` outside a class, self-referential
// initializers, and a class inheriting from itself (§4.3, §5).
package resolver

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// FunctionType tracks the kind of function body currently being resolved,
// needed to validate `return` statements.
type FunctionType int

const (
	FuncNone FunctionType = iota
	FuncFunction
	FuncInitializer
	FuncMethod
)

// ClassType tracks the kind of class body currently being resolved, needed
// to validate `this` and `super`.
type ClassType int

const (
	ClassNone ClassType = iota
	ClassClass
	ClassSubclass
)

// Resolve statically resolves every variable reference in prog, annotating
// Variable, Assign, This and Super nodes with their scope distance. The
// error, if non-nil, is guaranteed to be a token.ErrorList.
func Resolve(filename string, prog *ast.Program) error {
	r := &resolver{filename: filename}
	r.resolveStmts(prog.Stmts)
	r.errors.Sort()
	return r.errors.Err()
}

// scope maps a name to whether its initializer has finished resolving:
// false while the declaring statement's own initializer is being resolved
// (catches `var a = a;`), true once it is in scope for use.
type scope map[string]bool

type resolver struct {
	filename        string
	scopes          []scope
	currentFunction FunctionType
	currentClass    ClassType
	errors          token.ErrorList
}

func (r *resolver) errorf(line int, format string, args ...any) {
	r.errors.Add(token.Position{Filename: r.filename, Line: line}, fmt.Sprintf(format, args...))
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.errorf(name.Line, "already a variable named %q in this scope", name.Lexeme)
	}
	sc[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost out, and if name is
// found, reports its depth (number of scopes out from the current one) via
// setDepth. If name is never found in a local scope, it is left unresolved,
// meaning the interpreter will look it up as a global at run time.
func (r *resolver) resolveLocal(name token.Token, setDepth func(int)) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			setDepth(len(r.scopes) - 1 - i)
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Stmts)
		r.endScope()

	case *ast.Var:
		r.declare(n.Name)
		if n.Init != nil {
			r.resolveExpr(n.Init)
		}
		r.define(n.Name)

	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, FuncFunction)

	case *ast.Expression:
		r.resolveExpr(n.X)

	case *ast.If:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.Print:
		r.resolveExpr(n.X)

	case *ast.Return:
		if r.currentFunction == FuncNone {
			r.errorf(n.Keyword.Line, "can't return from top-level code")
		}
		if n.Value != nil {
			if r.currentFunction == FuncInitializer {
				r.errorf(n.Keyword.Line, "can't return a value from an initializer")
			}
			r.resolveExpr(n.Value)
		}

	case *ast.While:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Body)

	case *ast.Class:
		r.resolveClass(n)

	default:
		panic("resolver: unknown statement type")
	}
}

func (r *resolver) resolveClass(n *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = ClassClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(n.Name)
	r.define(n.Name)

	if n.Superclass != nil {
		if n.Superclass.Name.Lexeme == n.Name.Lexeme {
			r.errorf(n.Superclass.Name.Line, "a class can't inherit from itself")
		}
		r.currentClass = ClassSubclass
		r.resolveExpr(n.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, m := range n.Methods {
		declType := FuncMethod
		if m.Name.Lexeme == "init" {
			declType = FuncInitializer
		}
		r.resolveFunction(m, declType)
	}
}

func (r *resolver) resolveFunction(fn *ast.Function, typ FunctionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	defer r.endScope()

	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
}

func (r *resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !defined {
				r.errorf(n.Name.Line, "can't read local variable %q in its own initializer", n.Name.Lexeme)
			}
		}
		r.resolveLocal(n.Name, func(d int) { n.Depth = &d })

	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n.Name, func(d int) { n.Depth = &d })

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Grouping:
		r.resolveExpr(n.Expression)

	case *ast.Literal:
		// no identifiers to resolve

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(n.Object)

	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)

	case *ast.This:
		if r.currentClass == ClassNone {
			r.errorf(n.Keyword.Line, "can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(n.Keyword, func(d int) { n.Depth = &d })

	case *ast.Super:
		switch r.currentClass {
		case ClassNone:
			r.errorf(n.Keyword.Line, "can't use 'super' outside of a class")
			return
		case ClassClass:
			r.errorf(n.Keyword.Line, "can't use 'super' in a class with no superclass")
			return
		}
		r.resolveLocal(n.Keyword, func(d int) { n.Depth = &d })

	default:
		panic("resolver: unknown expression type")
	}
}
