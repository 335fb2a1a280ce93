package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

const maxArgs = 255

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → ( call "." )? IDENTIFIER "=" assignment | logic_or ;
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: e.Name, Value: value, LineNo: e.LineNo}
		case *ast.Get:
			return &ast.Set{Object: e.Object, Name: e.Name, Value: value}
		}
		p.errorf(equals, "invalid assignment target")
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right, LineNo: op.Line}
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right, LineNo: op.Line}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right, LineNo: op.Line}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right, LineNo: op.Line}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right, LineNo: op.Line}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right, LineNo: op.Line}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right, LineNo: op.Line}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" | "." IDENTIFIER )* ;
func (p *parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "expect property name after '.'")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorf(p.peek(), "can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "expect ')' after arguments")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary → "true" | "false" | "nil" | "this" | NUMBER | STRING | IDENTIFIER
//         | "(" expression ")" | "super" "." IDENTIFIER ;
func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false, LineNo: p.previous().Line}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true, LineNo: p.previous().Line}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil, LineNo: p.previous().Line}
	case p.match(token.NUMBER):
		tok := p.previous()
		return &ast.Literal{Value: tok.Literal.Number, LineNo: tok.Line}
	case p.match(token.STRING):
		tok := p.previous()
		return &ast.Literal{Value: tok.Literal.String, LineNo: tok.Line}
	case p.match(token.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.SUPER):
		kw := p.previous()
		p.consume(token.DOT, "expect '.' after 'super'")
		method := p.consume(token.IDENTIFIER, "expect superclass method name")
		return &ast.Super{Keyword: kw, Method: method}
	case p.match(token.IDENTIFIER):
		tok := p.previous()
		return &ast.Variable{Name: tok, LineNo: tok.Line}
	case p.match(token.LEFT_PAREN):
		lp := p.previous()
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "expect ')' after expression")
		return &ast.Grouping{Expression: expr, LineNo: lp.Line}
	}

	p.errorAtCurrent("expect expression")
	panic(parseError)
}
