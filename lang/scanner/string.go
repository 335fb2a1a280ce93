package scanner

import "github.com/mna/lox/lang/token"

// string scans a double-quote delimited string literal. The opening '"' has
// already been consumed. Newlines are permitted inside the literal and are
// not escaped; an unterminated string is reported at its starting line
// (§4.1) and scanning continues from end of input.
func (s *Scanner) string() token.Token {
	startLine := s.line
	for !s.atEnd() && s.cur != '"' {
		if s.cur == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.atEnd() {
		s.errorf(startLine, "unterminated string")
		return token.Token{Kind: token.ILLEGAL, Lexeme: string(s.src[s.start:s.off]), Line: startLine}
	}

	s.advance() // closing '"'
	lexeme := string(s.src[s.start:s.off])
	value := string(s.src[s.start+1 : s.off-1])
	return token.Token{
		Kind:    token.STRING,
		Lexeme:  lexeme,
		Literal: token.Literal{IsSet: true, String: value},
		Line:    startLine,
	}
}
