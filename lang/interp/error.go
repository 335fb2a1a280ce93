package interp

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

// RuntimeError is a §4.4/§4.5 runtime diagnostic: it carries the offending
// token (for its line) and a message. Unlike the scanner/parser/resolver's
// accumulating token.ErrorList, a RuntimeError unwinds the call stack
// immediately and stops the program — the interpreter's runtime sink never
// collects more than one.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Token.Line, e.Message)
}

func runtimeErrorf(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
