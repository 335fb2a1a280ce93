package interp

// Class is a runtime class value (§3): a name, an optional superclass, and
// its own method table. Method lookup walks self then the superclass
// chain (§3).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// FindMethod looks up name on c, then on c's superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

func (c *Class) String() string { return c.Name }

// Arity is 0 if the class has no `init` method, else `init`'s arity (§4.4).
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call allocates a new Instance and, if the class has an `init` method,
// binds it to the instance and invokes it with args; the instance is
// returned regardless of what `init` does (§3, §4.4).
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
