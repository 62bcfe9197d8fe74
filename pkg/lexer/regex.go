package lexer

import (
	"regexp"
	"unicode/utf8"
)

type tokenRegex struct {
	Type    TokenType
	Pattern *regexp.Regexp
}

// Token patterns in match order. REAL comes before INT so "1.5" is not split.
// Keywords are matched as ID and resolved through Keywords.
var tokenRegexes = []tokenRegex{
	{REAL, regexp.MustCompile(`^-?(\d+\.\d*([eE][+-]?\d+)?|\d+[eE][+-]?\d+)`)},
	{INT, regexp.MustCompile(`^-?\d+`)},
	{STRING, regexp.MustCompile(`^"([^"\\\n]|\\.)*"`)},
	{ID, regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`)},
	{ASSIGN, regexp.MustCompile(`^=`)},
	{AT, regexp.MustCompile(`^@`)},
	{LPAREN, regexp.MustCompile(`^\(`)},
	{RPAREN, regexp.MustCompile(`^\)`)},
	{SEMICOLON, regexp.MustCompile(`^;`)},
}

var (
	whitespaceRegex = regexp.MustCompile(`^[ \t\r]+`)
	commentRegex    = regexp.MustCompile(`^#[^\n]*`)
)

// MatchToken matches the first token at the start of s. Whitespace and
// comments come back as (EOF, text, true) so the caller can skip them.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, r := range tokenRegexes {
		if match := r.Pattern.FindString(s); match != "" {
			if r.Type == ID {
				if kw, ok := IsKeyword(match); ok {
					return kw, match, true
				}
			}
			return r.Type, match, true
		}
	}

	_, width := utf8.DecodeRuneInString(s)
	return ILLEGAL, s[:width], false
}
