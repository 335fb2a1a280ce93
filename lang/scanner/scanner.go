// Package scanner implements the lexer that turns Lox source text into a
// stream of tokens for the parser to consume.
package scanner

import (
	"fmt"
	"os"

	"github.com/mna/lox/lang/token"
)

// ScanFile is a helper that reads filename, scans it and returns the
// resulting tokens and any error encountered. The error, if non-nil, is
// guaranteed to be a token.ErrorList.
func ScanFile(filename string) ([]token.Token, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		var el token.ErrorList
		el.Add(token.Position{Filename: filename}, err.Error())
		return nil, el.Err()
	}
	return ScanSource(filename, src)
}

// ScanSource scans src (named filename for diagnostics) and returns the
// resulting tokens, always ending with a single EOF token, and any error
// encountered. The error, if non-nil, is guaranteed to be a
// token.ErrorList; scanning does not stop at the first error; it continues
// to the end of input, collecting every diagnostic along the way (§4.1).
func ScanSource(filename string, src []byte) ([]token.Token, error) {
	var s Scanner
	s.Init(filename, src)

	var toks []token.Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, s.errors.Err()
}

// Scanner tokenizes Lox source text.
type Scanner struct {
	filename string
	src      []byte
	errors   token.ErrorList

	start int // byte offset of the start of the token being scanned
	off   int // byte offset of cur
	roff  int // byte offset just past cur
	cur   byte
	line  int
}

// Init prepares s to scan src, named filename for diagnostics.
func (s *Scanner) Init(filename string, src []byte) {
	s.filename = filename
	s.src = src
	s.errors = nil
	s.start = 0
	s.off = 0
	s.roff = 0
	s.line = 1
	if len(src) > 0 {
		s.cur = src[0]
		s.roff = 1
	} else {
		s.cur = 0
		s.roff = 0
	}
}

func (s *Scanner) atEnd() bool {
	return s.off >= len(s.src)
}

// advance consumes the current byte and returns it, moving cur to the next
// byte (0 at end of input).
func (s *Scanner) advance() byte {
	c := s.cur
	s.off = s.roff
	if s.off < len(s.src) {
		s.cur = s.src[s.off]
		s.roff = s.off + 1
	} else {
		s.cur = 0
	}
	return c
}

// match consumes the current byte and returns true if it equals want,
// otherwise it leaves the scanner position untouched and returns false.
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.cur != want {
		return false
	}
	s.advance()
	return true
}

// peekNext returns the byte following cur without consuming anything, or 0
// at end of input.
func (s *Scanner) peekNext() byte {
	if s.roff >= len(s.src) {
		return 0
	}
	return s.src[s.roff]
}

func (s *Scanner) errorf(line int, format string, args ...any) {
	s.errors.Add(token.Position{Filename: s.filename, Line: line}, fmt.Sprintf(format, args...))
}

// Scan returns the next token in the source. At end of input it returns an
// EOF token forever.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespaceAndComments()
	s.start = s.off

	if s.atEnd() {
		return s.make(token.EOF, "")
	}

	c := s.advance()
	switch {
	case isAlpha(c):
		return s.identifier()
	case isDigit(c):
		return s.number()
	}

	switch c {
	case '(':
		return s.make(token.LEFT_PAREN, "(")
	case ')':
		return s.make(token.RIGHT_PAREN, ")")
	case '{':
		return s.make(token.LEFT_BRACE, "{")
	case '}':
		return s.make(token.RIGHT_BRACE, "}")
	case ',':
		return s.make(token.COMMA, ",")
	case '.':
		return s.make(token.DOT, ".")
	case '-':
		return s.make(token.MINUS, "-")
	case '+':
		return s.make(token.PLUS, "+")
	case ';':
		return s.make(token.SEMICOLON, ";")
	case '*':
		return s.make(token.STAR, "*")
	case '!':
		if s.match('=') {
			return s.make(token.BANG_EQUAL, "!=")
		}
		return s.make(token.BANG, "!")
	case '=':
		if s.match('=') {
			return s.make(token.EQUAL_EQUAL, "==")
		}
		return s.make(token.EQUAL, "=")
	case '<':
		if s.match('=') {
			return s.make(token.LESS_EQUAL, "<=")
		}
		return s.make(token.LESS, "<")
	case '>':
		if s.match('=') {
			return s.make(token.GREATER_EQUAL, ">=")
		}
		return s.make(token.GREATER, ">")
	case '/':
		return s.make(token.SLASH, "/")
	case '"':
		return s.string()
	}

	s.errorf(s.line, "unexpected character: %q", c)
	return s.make(token.ILLEGAL, string(c))
}

// skipWhitespaceAndComments advances past spaces, tabs, carriage returns,
// newlines (incrementing the line counter) and "//" line comments.
func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch s.cur {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.cur != '\n' {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) identifier() token.Token {
	for isAlpha(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	lit := string(s.src[s.start:s.off])
	return s.make(token.LookupIdent(lit), lit)
}

func (s *Scanner) make(kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: s.line}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z'
}
