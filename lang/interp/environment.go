package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/lox/lang/token"
)

// Environment is one frame in the chain of lexical scopes described in §3:
// a name-to-value map with a pointer to the enclosing frame. The innermost
// frame is current; the outermost (Enclosing == nil) is globals.
//
// Frame storage uses a swiss.Map instead of a builtin Go map, the same
// choice the teacher makes for its own Map value (lang/machine/map.go):
// every variable read or property access looks one up, so a fast
// open-addressed table pays for itself.
type Environment struct {
	Enclosing *Environment
	values    *swiss.Map[string, Value]
}

// NewEnvironment returns a fresh frame parented on enclosing (nil for the
// global frame).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{Enclosing: enclosing, values: swiss.NewMap[string, Value](8)}
}

// Define writes name to the current frame, shadowing any binding of the
// same name in an enclosing frame (§3: "shadowing permitted").
func (e *Environment) Define(name string, v Value) {
	e.values.Put(name, v)
}

func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name from exactly depth frames outward. The resolver
// guarantees the binding exists at that depth, so this never fails (§3).
func (e *Environment) GetAt(depth int, name string) Value {
	v, _ := e.ancestor(depth).values.Get(name)
	return v
}

// AssignAt writes name at exactly depth frames outward (§3).
func (e *Environment) AssignAt(depth int, name string, v Value) {
	e.ancestor(depth).values.Put(name, v)
}

// Get searches from the current frame outward for name, used for
// unresolved (global) variable references (§3, §4.4).
func (e *Environment) Get(name token.Token) (Value, error) {
	for env := e; env != nil; env = env.Enclosing {
		if v, ok := env.values.Get(name.Lexeme); ok {
			return v, nil
		}
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// Assign searches from the current frame outward for name and overwrites
// its value, used for unresolved (global) assignment targets (§3, §4.4).
func (e *Environment) Assign(name token.Token, v Value) error {
	for env := e; env != nil; env = env.Enclosing {
		if _, ok := env.values.Get(name.Lexeme); ok {
			env.values.Put(name.Lexeme, v)
			return nil
		}
	}
	return &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}
