package interp

import (
	"github.com/mna/lox/lang/ast"
)

// Function is a user-defined function or method value (§3): a declaration
// paired with the environment active when it was declared (its closure).
// IsInitializer marks a class's `init` method, which always returns the
// bound instance regardless of its body (§3, §4.4).
type Function struct {
	Declaration   *ast.Function
	Closure       *Environment
	IsInitializer bool
}

func (fn *Function) Arity() int { return len(fn.Declaration.Params) }

func (fn *Function) String() string {
	name := fn.Declaration.Name.Lexeme
	if name == "" {
		name = "anonymous"
	}
	return "<fn " + name + ">"
}

// Call creates a fresh environment over fn's closure, binds the parameters
// positionally, and executes the body as a block (§4.4). A `return`
// statement unwinds to this call frame; an initializer always returns the
// bound `this` regardless of explicit returns or fall-through (§3).
func (fn *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(fn.Closure)
	for i, p := range fn.Declaration.Params {
		env.Define(p.Lexeme, args[i])
	}

	sig, err := in.execBlock(fn.Declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this"), nil
	}
	if sig != nil && sig.isReturn {
		return sig.value, nil
	}
	return nil, nil
}

// Bind returns a copy of fn whose closure has been extended with a `this`
// binding to instance (§3): the mechanism that turns a raw method value
// into a bound method.
func (fn *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(fn.Closure)
	env.Define("this", instance)
	return &Function{Declaration: fn.Declaration, Closure: env, IsInitializer: fn.IsInitializer}
}
