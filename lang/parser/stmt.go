package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

const maxParams = 255

// declaration → classDecl | funDecl | varDecl | statement ;
//
// A panic(parseError) from anywhere below is recovered here and turns into
// a synchronize-and-skip, so that one bad statement does not prevent the
// rest of the file from being parsed (§4.2).
func (p *parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != parseError {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "expect class name")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		sc := p.consume(token.IDENTIFIER, "expect superclass name")
		superclass = &ast.Variable{Name: sc, LineNo: sc.Line}
	}

	p.consume(token.LEFT_BRACE, "expect '{' before class body")
	var methods []*ast.Function
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RIGHT_BRACE, "expect '}' after class body")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}

// function parses both function declarations and method declarations; kind
// is "function" or "method", used only in error messages.
func (p *parser) function(kind string) *ast.Function {
	name := p.consume(token.IDENTIFIER, "expect "+kind+" name")
	p.consume(token.LEFT_PAREN, "expect '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxParams {
				p.errorf(p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.consume(token.IDENTIFIER, "expect parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "expect ')' after parameters")

	p.consume(token.LEFT_BRACE, "expect '{' before "+kind+" body")
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}

func (p *parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "expect variable name")

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "expect ';' after variable declaration")
	return &ast.Var{Name: name, Init: init}
}

// statement → exprStmt | forStmt | ifStmt | printStmt | returnStmt
//           | whileStmt | block ;
func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		lb := p.previous()
		return &ast.Block{Stmts: p.block(), LineNo: lb.Line}
	default:
		return p.expressionStatement()
	}
}

// forStmt → "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement ;
//
// There is no For AST node (§3): a for loop desugars here into the
// equivalent combination of Block, Var and While nodes, so the resolver and
// interpreter only ever have to deal with While (§4.2).
func (p *parser) forStatement() ast.Stmt {
	forTok := p.previous()
	p.consume(token.LEFT_PAREN, "expect '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "expect ';' after loop condition")

	var post ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		post = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "expect ')' after for clauses")

	body := p.statement()

	if post != nil {
		body = &ast.Block{LineNo: forTok.Line, Stmts: []ast.Stmt{body, &ast.Expression{X: post}}}
	}

	if cond == nil {
		cond = &ast.Literal{Value: true, LineNo: forTok.Line}
	}
	body = &ast.While{Cond: cond, Body: body, LineNo: forTok.Line}

	if init != nil {
		body = &ast.Block{LineNo: forTok.Line, Stmts: []ast.Stmt{init, body}}
	}
	return body
}

func (p *parser) ifStatement() ast.Stmt {
	ifTok := p.previous()
	p.consume(token.LEFT_PAREN, "expect '(' after 'if'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "expect ')' after if condition")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: els, LineNo: ifTok.Line}
}

func (p *parser) printStatement() ast.Stmt {
	tok := p.previous()
	value := p.expression()
	p.consume(token.SEMICOLON, "expect ';' after value")
	return &ast.Print{X: value, LineNo: tok.Line}
}

func (p *parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "expect ';' after return value")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *parser) whileStatement() ast.Stmt {
	tok := p.previous()
	p.consume(token.LEFT_PAREN, "expect '(' after 'while'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "expect ')' after condition")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body, LineNo: tok.Line}
}

func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if d := p.declaration(); d != nil {
			stmts = append(stmts, d)
		}
	}
	p.consume(token.RIGHT_BRACE, "expect '}' after block")
	return stmts
}

func (p *parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "expect ';' after expression")
	return &ast.Expression{X: expr}
}
