// Package minidart is the analyzer's host frontend: a scanner and
// recursive-descent parser for the Dart subset the lint fixtures are written
// in, producing syntax trees, together with the import-table resolver that
// maps annotations to library symbols. The analyzer itself never depends on
// this package; any frontend producing syntax nodes can drive it.
package minidart

import "github.com/lintdart/requirednamed/syntax"

// TokenType identifies a lexical token class.
type TokenType int

const (
	EOF TokenType = iota
	ILLEGAL

	IDENT
	NUMBER
	STRING

	// Keywords
	IMPORT
	AS
	CLASS
	VAR
	FINAL
	RETURN
	ASSERT
	THIS
	NULL
	TRUE
	FALSE

	// Punctuation and operators
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	DOT       // .
	AT        // @
	ARROW     // =>
	ASSIGN    // =
	BANG      // !
	EQ        // ==
	NOT_EQ    // !=
	AND       // &&
	OR        // ||
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	PLUS      // +
	MINUS     // -
	ASTERISK  // *
	SLASH     // /
)

var keywords = map[string]TokenType{
	"import": IMPORT,
	"as":     AS,
	"class":  CLASS,
	"var":    VAR,
	"final":  FINAL,
	"return": RETURN,
	"assert": ASSERT,
	"this":   THIS,
	"null":   NULL,
	"true":   TRUE,
	"false":  FALSE,
}

// Token is a single lexical token with its source position. For STRING
// tokens, Literal holds the unquoted contents.
type Token struct {
	Type    TokenType
	Literal string
	Pos     syntax.Pos
}

type lexer struct {
	filename string
	src      []byte
	offset   int
	line     int
	column   int
}

// scanAll tokenizes src, always ending the result with an EOF token.
// Malformed input surfaces as ILLEGAL tokens; the parser turns those into
// positioned errors.
func scanAll(filename string, src []byte) []Token {
	lx := &lexer{filename: filename, src: src, line: 1, column: 1}
	var toks []Token
	for {
		tok := lx.next()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func (lx *lexer) pos() syntax.Pos {
	return syntax.Pos{Filename: lx.filename, Offset: lx.offset, Line: lx.line, Column: lx.column}
}

func (lx *lexer) peek() byte {
	if lx.offset >= len(lx.src) {
		return 0
	}
	return lx.src[lx.offset]
}

func (lx *lexer) peekAt(n int) byte {
	if lx.offset+n >= len(lx.src) {
		return 0
	}
	return lx.src[lx.offset+n]
}

func (lx *lexer) advance() byte {
	ch := lx.src[lx.offset]
	lx.offset++
	if ch == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
	return ch
}

func (lx *lexer) skipSpaceAndComments() {
	for lx.offset < len(lx.src) {
		switch ch := lx.peek(); {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			lx.advance()
		case ch == '/' && lx.peekAt(1) == '/':
			for lx.offset < len(lx.src) && lx.peek() != '\n' {
				lx.advance()
			}
		case ch == '/' && lx.peekAt(1) == '*':
			lx.advance()
			lx.advance()
			for lx.offset < len(lx.src) {
				if lx.peek() == '*' && lx.peekAt(1) == '/' {
					lx.advance()
					lx.advance()
					break
				}
				lx.advance()
			}
		default:
			return
		}
	}
}

func (lx *lexer) next() Token {
	lx.skipSpaceAndComments()
	pos := lx.pos()
	if lx.offset >= len(lx.src) {
		return Token{Type: EOF, Pos: pos}
	}

	ch := lx.advance()
	switch {
	case isLetter(ch):
		start := pos.Offset
		for lx.offset < len(lx.src) && isIdentPart(lx.peek()) {
			lx.advance()
		}
		lit := string(lx.src[start:lx.offset])
		if kw, ok := keywords[lit]; ok {
			return Token{Type: kw, Literal: lit, Pos: pos}
		}
		return Token{Type: IDENT, Literal: lit, Pos: pos}

	case isDigit(ch):
		start := pos.Offset
		for lx.offset < len(lx.src) && (isDigit(lx.peek()) || lx.peek() == '.') {
			if lx.peek() == '.' && !isDigit(lx.peekAt(1)) {
				break
			}
			lx.advance()
		}
		return Token{Type: NUMBER, Literal: string(lx.src[start:lx.offset]), Pos: pos}

	case ch == '\'' || ch == '"':
		quote := ch
		start := lx.offset
		for lx.offset < len(lx.src) && lx.peek() != quote && lx.peek() != '\n' {
			if lx.peek() == '\\' {
				lx.advance()
			}
			if lx.offset < len(lx.src) {
				lx.advance()
			}
		}
		lit := string(lx.src[start:lx.offset])
		if lx.offset >= len(lx.src) || lx.peek() != quote {
			return Token{Type: ILLEGAL, Literal: "unterminated string", Pos: pos}
		}
		lx.advance()
		return Token{Type: STRING, Literal: lit, Pos: pos}
	}

	two := func(t TokenType, lit string) Token {
		lx.advance()
		return Token{Type: t, Literal: lit, Pos: pos}
	}

	switch ch {
	case '(':
		return Token{Type: LPAREN, Literal: "(", Pos: pos}
	case ')':
		return Token{Type: RPAREN, Literal: ")", Pos: pos}
	case '{':
		return Token{Type: LBRACE, Literal: "{", Pos: pos}
	case '}':
		return Token{Type: RBRACE, Literal: "}", Pos: pos}
	case '[':
		return Token{Type: LBRACKET, Literal: "[", Pos: pos}
	case ']':
		return Token{Type: RBRACKET, Literal: "]", Pos: pos}
	case ',':
		return Token{Type: COMMA, Literal: ",", Pos: pos}
	case ';':
		return Token{Type: SEMICOLON, Literal: ";", Pos: pos}
	case ':':
		return Token{Type: COLON, Literal: ":", Pos: pos}
	case '.':
		return Token{Type: DOT, Literal: ".", Pos: pos}
	case '@':
		return Token{Type: AT, Literal: "@", Pos: pos}
	case '+':
		return Token{Type: PLUS, Literal: "+", Pos: pos}
	case '-':
		return Token{Type: MINUS, Literal: "-", Pos: pos}
	case '*':
		return Token{Type: ASTERISK, Literal: "*", Pos: pos}
	case '/':
		return Token{Type: SLASH, Literal: "/", Pos: pos}
	case '=':
		switch lx.peek() {
		case '=':
			return two(EQ, "==")
		case '>':
			return two(ARROW, "=>")
		}
		return Token{Type: ASSIGN, Literal: "=", Pos: pos}
	case '!':
		if lx.peek() == '=' {
			return two(NOT_EQ, "!=")
		}
		return Token{Type: BANG, Literal: "!", Pos: pos}
	case '&':
		if lx.peek() == '&' {
			return two(AND, "&&")
		}
	case '|':
		if lx.peek() == '|' {
			return two(OR, "||")
		}
	case '<':
		if lx.peek() == '=' {
			return two(LE, "<=")
		}
		return Token{Type: LT, Literal: "<", Pos: pos}
	case '>':
		if lx.peek() == '=' {
			return two(GE, ">=")
		}
		return Token{Type: GT, Literal: ">", Pos: pos}
	}

	return Token{Type: ILLEGAL, Literal: string(ch), Pos: pos}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch == '$'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isIdentPart(ch byte) bool { return isLetter(ch) || isDigit(ch) }
