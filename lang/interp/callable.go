package interp

// Callable is any Value that can appear as the callee of a Call expression:
// a user-defined Function, a Class (instantiation), or a NativeFunction
// (§3, §4.4).
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	String() string
}

// NativeFunction wraps a host function as a Lox callable. The only one
// defined by this interpreter is the builtin clock() (§4.4).
type NativeFunction struct {
	NameStr string
	ArityN  int
	Fn      func(in *Interpreter, args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int { return n.ArityN }
func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.Fn(in, args)
}
func (n *NativeFunction) String() string { return "<native fn " + n.NameStr + ">" }
