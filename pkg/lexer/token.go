package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Literal value (unquoted and unescaped for strings)
	Pos     Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	IDENTIFIER
	LITERAL
	OPERATOR
	DELIMITER
)

const (
	EOF TokenType = iota // End of input

	ADDR     // addr
	PRINT    // print
	MAP      // map
	DUMP     // dump
	SIZE     // size
	CAPACITY // capacity
	PTR      // ptr
	TRUE     // True
	FALSE    // False
	NIL      // None

	ID     // identifier
	INT    // integer literal
	REAL   // real literal
	STRING // string literal

	ASSIGN // =
	AT     // @

	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;
	NEWLINE   // \n

	ILLEGAL // illegal token
)

var Keywords = map[string]TokenType{
	"addr":     ADDR,
	"print":    PRINT,
	"map":      MAP,
	"dump":     DUMP,
	"size":     SIZE,
	"capacity": CAPACITY,
	"ptr":      PTR,
	"True":     TRUE,
	"False":    FALSE,
	"None":     NIL,
}

var tokenNames = map[TokenType]string{
	ADDR:      "addr",
	PRINT:     "print",
	MAP:       "map",
	DUMP:      "dump",
	SIZE:      "size",
	CAPACITY:  "capacity",
	PTR:       "ptr",
	TRUE:      "True",
	FALSE:     "False",
	NIL:       "None",
	ID:        "id",
	INT:       "int",
	REAL:      "real",
	STRING:    "string",
	ASSIGN:    "=",
	AT:        "@",
	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",
	NEWLINE:   "newline",
	ILLEGAL:   "illegal",
	EOF:       "$",
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("T_{%s, %q, nil, %s}", t.Type, t.Lexeme, t.Pos)
	}

	return fmt.Sprintf("T_{%s, %q, %q, %s}", t.Type, t.Lexeme, t.Literal, t.Pos)
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := tokenNames[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case ADDR, PRINT, MAP, DUMP, SIZE, CAPACITY, PTR, TRUE, FALSE, NIL:
		return KEYWORD
	case ID:
		return IDENTIFIER
	case INT, REAL, STRING:
		return LITERAL
	case ASSIGN, AT:
		return OPERATOR
	case LPAREN, RPAREN, SEMICOLON, NEWLINE:
		return DELIMITER
	default:
		return NONE
	}
}

// IsTerminator reports whether t ends a statement.
func (t TokenType) IsTerminator() bool {
	return t == SEMICOLON || t == NEWLINE || t == EOF
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}
