package interp

import (
	"github.com/dolthub/swiss"
	"github.com/mna/lox/lang/token"
)

// Instance is a runtime object: a class pointer and a mutable field table
// (§3). Field storage uses the same swiss.Map choice as Environment, for
// the same reason: every `.name` access looks one up.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

// NewInstance allocates an instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get reads a property off i: a field if present, else a bound method
// looked up on the class, else a runtime error (§3, §4.4).
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.fields.Get(name.Lexeme); ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, runtimeErrorf(name, "Undefined property '%s'.", name.Lexeme)
}

// Set assigns a field on i unconditionally, creating it if absent (§3).
func (i *Instance) Set(name token.Token, v Value) {
	i.fields.Put(name.Lexeme, v)
}
