// Package parser implements the recursive-descent parser that transforms a
// stream of tokens into an abstract syntax tree (§4.2).
package parser

import (
	"errors"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

// ParseFile is a helper that reads filename, scans and parses it, and
// returns the resulting program and any error encountered. The error, if
// non-nil, is guaranteed to be a token.ErrorList.
func ParseFile(filename string) (*ast.Program, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		var el token.ErrorList
		el.Add(token.Position{Filename: filename}, err.Error())
		return nil, el.Err()
	}
	return ParseSource(filename, src)
}

// ParseSource scans and parses src (named filename for diagnostics) and
// returns the resulting program and any error encountered. The error, if
// non-nil, is guaranteed to be a token.ErrorList. Parsing does not stop at
// the first error: it synchronizes at the next statement boundary and
// continues, collecting every diagnostic along the way.
func ParseSource(filename string, src []byte) (*ast.Program, error) {
	toks, scanErr := scanner.ScanSource(filename, src)

	prog, parseErr := parseTokens(filename, toks)

	var el token.ErrorList
	if scanErr != nil {
		var scanEl token.ErrorList
		if errors.As(scanErr, &scanEl) {
			el = append(el, scanEl...)
		}
	}
	if parseErr != nil {
		var parseEl token.ErrorList
		if errors.As(parseErr, &parseEl) {
			el = append(el, parseEl...)
		}
	}
	if len(el) == 0 {
		return prog, nil
	}
	el.Sort()
	return prog, el.Err()
}

func parseTokens(filename string, toks []token.Token) (*ast.Program, error) {
	p := &parser{filename: filename, tokens: toks}
	prog := &ast.Program{}
	for !p.isAtEnd() {
		if d := p.declaration(); d != nil {
			prog.Stmts = append(prog.Stmts, d)
		}
	}
	p.errors.Sort()
	return prog, p.errors.Err()
}

// parseError unwinds the recursive descent back to the nearest statement
// boundary, where synchronize resumes parsing. The error has already been
// recorded in p.errors by the time it is thrown.
var parseError = errors.New("parse error")

type parser struct {
	filename string
	tokens   []token.Token
	current  int
	errors   token.ErrorList
}

func (p *parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *parser) check(k token.Kind) bool {
	return !p.isAtEnd() && p.peek().Kind == k
}

func (p *parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has kind k, otherwise it
// records a diagnostic and panics with parseError, to be recovered by
// synchronize.
func (p *parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAtCurrent(msg)
	panic(parseError)
}

func (p *parser) errorAtCurrent(msg string) {
	p.errorf(p.peek(), msg)
}

func (p *parser) errorf(tok token.Token, msg string) {
	if tok.Kind == token.EOF {
		p.errors.Add(token.Position{Filename: p.filename, Line: tok.Line}, "at end: "+msg)
	} else {
		p.errors.Add(token.Position{Filename: p.filename, Line: tok.Line}, "at '"+tok.Lexeme+"': "+msg)
	}
}

// synchronize discards tokens until it is likely at the start of the next
// statement, so that a single syntax error does not cascade into a flood of
// unrelated ones (§4.2).
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
