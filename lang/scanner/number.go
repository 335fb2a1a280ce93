package scanner

import (
	"strconv"

	"github.com/mna/lox/lang/token"
)

// number scans a number literal: one or more digits, optionally followed by
// a '.' and one or more digits (§4.1). A trailing '.' not followed by a
// digit is left unconsumed (so "1." parses as NUMBER(1) then DOT). Numbers
// are always parsed as IEEE-754 doubles.
func (s *Scanner) number() token.Token {
	for isDigit(s.cur) {
		s.advance()
	}

	if s.cur == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.cur) {
			s.advance()
		}
	}

	lexeme := string(s.src[s.start:s.off])
	// the lexical grammar guarantees a parseable float; any error here would
	// indicate a scanner bug, not bad input.
	n, _ := strconv.ParseFloat(lexeme, 64)
	return token.Token{
		Kind:    token.NUMBER,
		Lexeme:  lexeme,
		Literal: token.Literal{IsSet: true, Number: n},
		Line:    s.line,
	}
}
