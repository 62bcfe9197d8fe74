package parser

import (
	"math"
	"strconv"

	"numem/pkg/lexer"
	"numem/pkg/memory"
)

type Parser struct {
	lexer        *lexer.Lexer // lexer instance
	currentToken lexer.Token  // current token
	statements   []Statement  // parsed statements
	errors       []string     // list of errors
}

// NewParser creates a new parser instance
func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{
		lexer:  l,
		errors: []string{},
	}

	// Initialize current token
	p.nextToken()

	return p
}

// Parse reads statements until the end of input. A statement with a syntax
// error is reported and skipped; parsing resumes after the next ';' or newline.
func (p *Parser) Parse() []Statement {
	for p.currentToken.Type != lexer.EOF {
		if p.currentToken.Type.IsTerminator() {
			p.nextToken()
			continue
		}

		stmt, ok := p.parseStatement()
		if ok && p.expectTerminator() {
			p.statements = append(p.statements, stmt)
		}

		p.skipToTerminator()
	}

	return p.statements
}

// nextToken advances to the next token from the lexer
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

func (p *Parser) parseStatement() (Statement, bool) {
	stmt := Statement{Pos: p.currentToken.Pos}

	switch p.currentToken.Type {
	case lexer.PRINT, lexer.MAP, lexer.DUMP, lexer.SIZE, lexer.CAPACITY:
		// `size = 3` tries to bind a command name
		if p.lexer.Peek().Type == lexer.ASSIGN {
			p.handleUnexpected("id")
			return stmt, false
		}
		stmt.Kind = StmtCommand
		stmt.Command = p.currentToken.Type
		p.nextToken()
		return stmt, true

	case lexer.ADDR:
		p.nextToken()
		if p.currentToken.Type != lexer.ID {
			p.handleUnexpected("id")
			return stmt, false
		}
		stmt.Kind = StmtAddrOf
		stmt.Target = Ref{Name: p.currentToken.Literal}
		p.nextToken()
		return stmt, true

	case lexer.ID, lexer.AT:
		ref, ok := p.parseRef()
		if !ok {
			return stmt, false
		}
		stmt.Target = ref

		if p.currentToken.Type != lexer.ASSIGN {
			if p.currentToken.Type.IsTerminator() {
				stmt.Kind = StmtRead
				return stmt, true
			}
			p.handleUnexpected("=")
			return stmt, false
		}
		p.nextToken()

		expr, ok := p.parseExpr()
		if !ok {
			return stmt, false
		}
		stmt.Kind = StmtAssign
		stmt.Expr = expr
		return stmt, true

	default:
		p.handleUnexpected("statement")
		return stmt, false
	}
}

// parseRef parses `id` or `@ int`.
func (p *Parser) parseRef() (Ref, bool) {
	if p.currentToken.Type == lexer.ID {
		ref := Ref{Name: p.currentToken.Literal}
		p.nextToken()
		return ref, true
	}

	// '@'
	p.nextToken()
	if p.currentToken.Type != lexer.INT {
		p.handleUnexpected("address")
		return Ref{}, false
	}

	addr, err := strconv.Atoi(p.currentToken.Literal)
	if err != nil {
		p.addError("Address out of range")
		return Ref{}, false
	}
	p.nextToken()

	return Ref{Addr: addr, ByAddr: true}, true
}

func (p *Parser) parseExpr() (Expr, bool) {
	tok := p.currentToken

	switch tok.Type {
	case lexer.ID, lexer.AT:
		ref, ok := p.parseRef()
		return Expr{IsRef: true, Ref: ref}, ok

	case lexer.INT:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.addError("Integer out of range")
			return Expr{}, false
		}
		p.nextToken()
		return Expr{Value: memory.Int(n)}, true

	case lexer.REAL:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil && !math.IsInf(f, 0) {
			p.addError("Invalid real number")
			return Expr{}, false
		}
		p.nextToken()
		return Expr{Value: memory.Real(f)}, true

	case lexer.STRING:
		p.nextToken()
		return Expr{Value: memory.Str(tok.Literal)}, true

	case lexer.TRUE, lexer.FALSE:
		p.nextToken()
		return Expr{Value: memory.Boolean(tok.Type == lexer.TRUE)}, true

	case lexer.NIL:
		p.nextToken()
		return Expr{Value: memory.None()}, true

	case lexer.PTR:
		return p.parsePtr()

	default:
		p.handleUnexpected("expression")
		return Expr{}, false
	}
}

// parsePtr parses `ptr ( int )`.
func (p *Parser) parsePtr() (Expr, bool) {
	p.nextToken()
	if p.currentToken.Type != lexer.LPAREN {
		p.handleUnexpected("(")
		return Expr{}, false
	}

	p.nextToken()
	if p.currentToken.Type != lexer.INT {
		p.handleUnexpected("int")
		return Expr{}, false
	}
	n, err := strconv.ParseInt(p.currentToken.Literal, 10, 64)
	if err != nil {
		p.addError("Integer out of range")
		return Expr{}, false
	}

	p.nextToken()
	if p.currentToken.Type != lexer.RPAREN {
		p.handleUnexpected(")")
		return Expr{}, false
	}
	p.nextToken()

	return Expr{Value: memory.Address(n)}, true
}

func (p *Parser) expectTerminator() bool {
	if p.currentToken.Type.IsTerminator() {
		return true
	}

	p.handleUnexpected(";")
	return false
}

func (p *Parser) skipToTerminator() {
	for !p.currentToken.Type.IsTerminator() {
		p.nextToken()
	}
}
