package parser

import (
	"numem/pkg/color"
	"numem/pkg/lexer"
)

// handleUnexpected reports the current token when `expected` was wanted.
// It only reports an error. It does NOT advance tokens.
func (p *Parser) handleUnexpected(expected string) {
	p.addError(p.categorizeError(expected, p.currentToken))
}

// addError records a parsing error with location
func (p *Parser) addError(msg string) {
	pos := p.currentToken.Pos
	formatted := color.RedText(msg) + " at " + color.Position(pos.Line, pos.Column)
	p.errors = append(p.errors, formatted)
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() []string {
	return p.errors
}

// categorizeError provides a specific error message based on expected symbol and current token
func (p *Parser) categorizeError(expected string, current lexer.Token) string {
	if current.Type == lexer.ILLEGAL {
		if current.Literal == "unterminated string" {
			return "Unterminated string"
		}
		return "Illegal character '" + current.Lexeme + "'"
	}

	switch expected {
	case ")":
		return "Missing closing parenthesis"
	case "(":
		return "Missing opening parenthesis"
	case "=":
		return "Missing assignment operator"
	case ";":
		return "Expected end of statement"
	case "int":
		return "Expected integer"
	case "address":
		return "Expected address after '@'"
	}

	switch expected {
	case "id":
		if current.Type.GetCategory() == lexer.KEYWORD {
			return "Cannot use reserved keyword as identifier"
		}
		return "Expected identifier"
	case "expression":
		if current.Type.IsTerminator() {
			return "Missing expression"
		}
		return "Expected value"
	case "statement":
		if current.Type.GetCategory() == lexer.LITERAL {
			return "Value is not a statement"
		}
	}

	return "Syntax error"
}
