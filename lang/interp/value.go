// Package interp implements the tree-walking evaluator that executes a
// resolved Lox program (§4.4): expression evaluation, statement execution,
// environments, and the runtime representations of functions, classes and
// instances.
package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is any value a Lox expression can produce: nil, a bool, a float64,
// a string, or one of the runtime types below (*Function, *Class,
// *Instance, *NativeFunction). Go's nil stands for Lox's nil; there is no
// wrapper type for it, since nil comparisons and truthiness fall out of the
// stdlib `any` naturally.
type Value = any

// Stringify renders v the way `print` does (§4.4, §4.1): numbers drop a
// trailing ".0", nil prints as "nil", and everything
// else defers to its own String method where it has one.
func Stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// The shortest 'g' form never has a trailing ".0", but it switches to
	// scientific notation for small/large magnitudes; in that case the
	// shortest 'f' form is used instead, so numbers always print in plain
	// decimal.
	if !strings.ContainsAny(s, "eE") {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Truthy implements Lox's truthiness rule (§4.4): everything is truthy
// except nil and the boolean false.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// TypeName returns the short name of v's runtime type.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case *Function:
		return "function"
	case *NativeFunction:
		return "native function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return fmt.Sprintf("%T", v)
	}
}
