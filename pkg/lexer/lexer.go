package lexer

import (
	"strings"
	"unicode/utf8"
)

type Lexer struct {
	input    string // input string to be tokenized
	length   int    // length of the input string
	position int    // current position in the input string
	line     int    // current line number for error reporting
	column   int    // current column number for error reporting
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
		line:     1,
		column:   1,
	}
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.currentPosition()

	// End of input
	if l.position >= l.length {
		return NewToken(EOF, "", "", pos)
	}

	if l.input[l.position] == '\n' {
		l.advance(1)
		return NewToken(NEWLINE, "\n", "", pos)
	}

	remaining := l.input[l.position:]
	tokenType, lexeme, matched := MatchToken(remaining)

	if !matched {
		// an opening quote that never closes swallows the rest of the line
		if remaining[0] == '"' {
			lexeme = remaining
			if nl := strings.IndexByte(remaining, '\n'); nl >= 0 {
				lexeme = remaining[:nl]
			}
			l.advance(len(lexeme))
			return NewToken(ILLEGAL, lexeme, "unterminated string", pos)
		}

		// lexeme is one whole character, possibly multi-byte
		l.advance(len(lexeme))
		return NewToken(ILLEGAL, lexeme, "", pos)
	}

	var literal string
	switch tokenType {
	case STRING:
		literal = unescape(lexeme[1 : len(lexeme)-1])
	default:
		literal = lexeme
	}

	l.advance(len(lexeme))
	return NewToken(tokenType, lexeme, literal, pos)
}

// View next token without advancing the position
func (l *Lexer) Peek() Token {
	// save state
	cpos := l.position
	cline := l.line
	ccol := l.column

	token := l.NextToken()

	// restore state
	l.position = cpos
	l.line = cline
	l.column = ccol

	return token
}

// Tokenize returns every token up to and including EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// Skip blanks and comments, stopping at newlines
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		tokenType, match, ok := MatchToken(l.input[l.position:])
		if !ok || tokenType != EOF || match == "" {
			return
		}
		l.advance(len(match))
	}
}

// Advance the lexer position by n bytes. Columns count characters.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else if utf8.RuneStart(l.input[l.position]) {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return NewPosition(l.line, l.column, l.position)
}

// unescape resolves \n, \t, \r, \" and \\ inside a string literal. Any other
// escaped character stands for itself.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
