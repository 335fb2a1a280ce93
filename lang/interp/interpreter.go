package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// Interpreter walks a resolved AST, evaluating expressions and executing
// statements against a chain of Environment frames (§4.4). It is stateful
// across calls to Interpret/EvalExpr, which is what lets a REPL keep
// global variables alive from one typed-in line to the next (§6).
type Interpreter struct {
	Globals *Environment
	env     *Environment
	Stdout  io.Writer
}

// New returns an Interpreter with a fresh global environment, with the
// builtin clock() function already defined (§4.4).
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	in := &Interpreter{Globals: globals, env: globals, Stdout: stdout}
	globals.Define("clock", &NativeFunction{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(*Interpreter, []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
	return in
}

// ctrl is the non-local control signal a `return` statement produces,
// threaded explicitly through execStmt/execBlock instead of a host
// exception (§9): nil means "fell off the end normally", non-nil means
// "unwind to the nearest enclosing call frame with this value".
type ctrl struct {
	isReturn bool
	value    Value
}

// Interpret executes stmts in program order (§4.4). It is the entry point
// used for whole-program (file mode) execution; any *RuntimeError returned
// has already unwound the whole call stack.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := in.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// EvalExpr evaluates a single top-level expression, used by the REPL to
// echo the value of a bare expression statement (§6, supplemented feature).
func (in *Interpreter) EvalExpr(e ast.Expr) (Value, error) {
	return in.eval(e)
}

func (in *Interpreter) execStmt(s ast.Stmt) (*ctrl, error) {
	switch n := s.(type) {
	case *ast.Expression:
		_, err := in.eval(n.X)
		return nil, err

	case *ast.Print:
		v, err := in.eval(n.X)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(in.Stdout, Stringify(v))
		return nil, nil

	case *ast.Var:
		var v Value
		if n.Init != nil {
			var err error
			v, err = in.eval(n.Init)
			if err != nil {
				return nil, err
			}
		}
		in.env.Define(n.Name.Lexeme, v)
		return nil, nil

	case *ast.Block:
		return in.execBlock(n.Stmts, NewEnvironment(in.env))

	case *ast.If:
		cond, err := in.eval(n.Cond)
		if err != nil {
			return nil, err
		}
		if Truthy(cond) {
			return in.execStmt(n.Then)
		} else if n.Else != nil {
			return in.execStmt(n.Else)
		}
		return nil, nil

	case *ast.While:
		for {
			cond, err := in.eval(n.Cond)
			if err != nil {
				return nil, err
			}
			if !Truthy(cond) {
				return nil, nil
			}
			sig, err := in.execStmt(n.Body)
			if err != nil || sig != nil {
				return sig, err
			}
		}

	case *ast.Function:
		fn := &Function{Declaration: n, Closure: in.env}
		in.env.Define(n.Name.Lexeme, fn)
		return nil, nil

	case *ast.Return:
		var v Value
		if n.Value != nil {
			var err error
			v, err = in.eval(n.Value)
			if err != nil {
				return nil, err
			}
		}
		return &ctrl{isReturn: true, value: v}, nil

	case *ast.Class:
		return in.execClass(n)

	default:
		panic("interp: unknown statement type")
	}
}

// execBlock runs stmts in a new scope env, restoring the previous scope
// when done (including when a return signal or error unwinds early).
func (in *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) (*ctrl, error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, s := range stmts {
		sig, err := in.execStmt(s)
		if err != nil || sig != nil {
			return sig, err
		}
	}
	return nil, nil
}

func (in *Interpreter) execClass(n *ast.Class) (*ctrl, error) {
	var superclass *Class
	if n.Superclass != nil {
		v, err := in.eval(n.Superclass)
		if err != nil {
			return nil, err
		}
		sc, ok := v.(*Class)
		if !ok {
			return nil, runtimeErrorf(n.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(n.Name.Lexeme, nil)

	env := in.env
	if superclass != nil {
		env = NewEnvironment(in.env)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name.Lexeme] = &Function{
			Declaration:   m,
			Closure:       env,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: n.Name.Lexeme, Superclass: superclass, Methods: methods}
	in.env.AssignAt(0, n.Name.Lexeme, class)
	return nil, nil
}

func (in *Interpreter) eval(e ast.Expr) (Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Grouping:
		return in.eval(n.Expression)

	case *ast.Unary:
		right, err := in.eval(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Op.Kind {
		case token.MINUS:
			num, ok := right.(float64)
			if !ok {
				return nil, runtimeErrorf(n.Op, "Operand must be a number.")
			}
			return -num, nil
		case token.BANG:
			return !Truthy(right), nil
		}
		panic("interp: unknown unary operator")

	case *ast.Binary:
		return in.evalBinary(n)

	case *ast.Logical:
		left, err := in.eval(n.Left)
		if err != nil {
			return nil, err
		}
		if n.Op.Kind == token.OR {
			if Truthy(left) {
				return left, nil
			}
		} else {
			if !Truthy(left) {
				return left, nil
			}
		}
		return in.eval(n.Right)

	case *ast.Variable:
		return in.lookUpVariable(n.Name, n.Depth)

	case *ast.Assign:
		v, err := in.eval(n.Value)
		if err != nil {
			return nil, err
		}
		if n.Depth != nil {
			in.env.AssignAt(*n.Depth, n.Name.Lexeme, v)
		} else if err := in.Globals.Assign(n.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Call:
		return in.evalCall(n)

	case *ast.Get:
		obj, err := in.eval(n.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, runtimeErrorf(n.Name, "Only instances have properties.")
		}
		return inst.Get(n.Name)

	case *ast.Set:
		obj, err := in.eval(n.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, runtimeErrorf(n.Name, "Only instances have fields.")
		}
		v, err := in.eval(n.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(n.Name, v)
		return v, nil

	case *ast.This:
		return in.lookUpVariable(n.Keyword, n.Depth)

	case *ast.Super:
		return in.evalSuper(n)

	default:
		panic("interp: unknown expression type")
	}
}

func (in *Interpreter) lookUpVariable(name token.Token, depth *int) (Value, error) {
	if depth != nil {
		return in.env.GetAt(*depth, name.Lexeme), nil
	}
	return in.Globals.Get(name)
}

func (in *Interpreter) evalBinary(n *ast.Binary) (Value, error) {
	left, err := in.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.PLUS:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, runtimeErrorf(n.Op, "Operands must be two numbers or two strings.")

	case token.MINUS:
		l, r, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil

	case token.STAR:
		l, r, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil

	case token.SLASH:
		l, r, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil

	case token.GREATER:
		l, r, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil

	case token.GREATER_EQUAL:
		l, r, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil

	case token.LESS:
		l, r, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil

	case token.LESS_EQUAL:
		l, r, err := numberOperands(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil

	case token.BANG_EQUAL:
		return !isEqual(left, right), nil

	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	panic("interp: unknown binary operator")
}

func numberOperands(op token.Token, left, right Value) (float64, float64, error) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	if !ok1 || !ok2 {
		return 0, 0, runtimeErrorf(op, "Operands must be numbers.")
	}
	return l, r, nil
}

// isEqual implements Lox's `==`/`!=` rule (§4.4, §9): nil equals only nil,
// numbers compare with plain IEEE-754 float64 equality (so NaN != NaN),
// callables and instances compare by identity (Go's `==` on an interface
// already does this for pointer-shaped dynamic types), everything else is
// structural.
func isEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

func (in *Interpreter) evalCall(n *ast.Call) (Value, error) {
	callee, err := in.eval(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(n.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErrorf(n.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) evalSuper(n *ast.Super) (Value, error) {
	superclass := in.env.GetAt(*n.Depth, "super").(*Class)
	instance := in.env.GetAt(*n.Depth-1, "this").(*Instance)

	method, ok := superclass.FindMethod(n.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(n.Method, "Undefined property '%s'.", n.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
