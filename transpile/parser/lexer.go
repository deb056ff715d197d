package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dangerclosesec/cpp2py/transpile/model"
)

// Lexer tokenizes C++ source text
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int
	column       int

	warnings []model.Diagnostic
}

// NewLexer creates a new Lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// Warnings returns the lexical diagnostics collected so far. Illegal
// characters are reported here and skipped; they never abort scanning.
func (l *Lexer) Warnings() []model.Diagnostic {
	return l.warnings
}

// readChar reads the next character and advances the position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = rune(l.input[l.readPosition])
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar returns the next character without advancing the position
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0 // EOF
	}
	return rune(l.input[l.readPosition])
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	var tok Token

	for {
		// Skip whitespace and line comments before the next token
		for isSpace(l.ch) || (l.ch == '/' && l.peekChar() == '/') {
			if l.ch == '/' && l.peekChar() == '/' {
				l.skipComment()
			} else {
				l.readChar()
			}
		}

		switch l.ch {
		case '+':
			tok = l.newToken(TokenPlus)
		case '-':
			tok = l.newToken(TokenMinus)
		case '*':
			tok = l.newToken(TokenStar)
		case '/':
			tok = l.newToken(TokenSlash)
		case '(':
			tok = l.newToken(TokenLParen)
		case ')':
			tok = l.newToken(TokenRParen)
		case '{':
			tok = l.newToken(TokenLBrace)
		case '}':
			tok = l.newToken(TokenRBrace)
		case ';':
			tok = l.newToken(TokenSemicolon)
		case '=':
			tok = l.newToken(TokenAssign)
		case ',':
			tok = l.newToken(TokenComma)
		case '<':
			// << and <= must win over a bare <
			switch l.peekChar() {
			case '<':
				tok = l.newTwoCharToken(TokenShiftLeft, "<<")
			case '=':
				tok = l.newTwoCharToken(TokenLTE, "<=")
			default:
				tok = l.newToken(TokenLT)
			}
		case '>':
			switch l.peekChar() {
			case '>':
				tok = l.newTwoCharToken(TokenShiftRight, ">>")
			case '=':
				tok = l.newTwoCharToken(TokenGTE, ">=")
			default:
				tok = l.newToken(TokenGT)
			}
		case '"':
			if tok, ok := l.readString(); ok {
				return tok
			}
			// Unterminated: diagnostic recorded, opening quote skipped
			continue
		case 0:
			tok = Token{Type: TokenEOF, Literal: "", Line: l.line, Column: l.column}
		default:
			if isLetter(l.ch) {
				tok.Literal = l.readIdentifier()
				tok.Type = lookupIdent(tok.Literal)
				tok.Line = l.line
				tok.Column = l.column - len(tok.Literal)
				return tok
			}
			if isDigit(l.ch) {
				return l.readNumber()
			}
			// No rule matches: record a diagnostic, skip one character and
			// keep scanning. A '#' before "include" lands here.
			l.warnings = append(l.warnings, model.Diagnostic{
				Message: fmt.Sprintf("illegal character %q", l.ch),
				Line:    l.line,
				Column:  l.column,
			})
			l.readChar()
			continue
		}

		l.readChar()
		return tok
	}
}

func (l *Lexer) newToken(tt TokenType) Token {
	return Token{Type: tt, Literal: string(l.ch), Line: l.line, Column: l.column}
}

func (l *Lexer) newTwoCharToken(tt TokenType, literal string) Token {
	tok := Token{Type: tt, Literal: literal, Line: l.line, Column: l.column}
	l.readChar()
	return tok
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads an integer or floating point literal. The int/float
// decision is made here, once, and never revisited by the parser: the
// literal is normalized through strconv so "05" becomes "5".
func (l *Lexer) readNumber() Token {
	line, column := l.line, l.column
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	isFloat := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	raw := l.input[position:l.position]

	var literal string
	if isFloat {
		v, _ := strconv.ParseFloat(raw, 64)
		literal = strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(literal, ".e") {
			literal += ".0"
		}
	} else if v, err := strconv.Atoi(raw); err == nil {
		literal = strconv.Itoa(v)
	} else {
		// Out of int range: strip leading zeros textually so the value
		// is preserved digit for digit.
		literal = strings.TrimLeft(raw, "0")
		if literal == "" {
			literal = "0"
		}
	}
	return Token{Type: TokenNumber, Literal: literal, Line: line, Column: column}
}

// readString reads a string literal, quotes preserved so the fragment
// passes through to the Python output unchanged. On an unterminated
// literal it records a diagnostic, skips the opening quote and reports
// failure so scanning resumes at the next character.
func (l *Lexer) readString() (Token, bool) {
	line, column := l.line, l.column
	opening := l.readPosition
	position := l.position
	l.readChar() // consume opening quote
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == 0 {
		l.warnings = append(l.warnings, model.Diagnostic{
			Message: "unterminated string literal",
			Line:    line,
			Column:  column,
		})
		// Rewind to just after the opening quote; the contents will be
		// re-scanned as ordinary tokens, typically ending in a syntax error.
		l.readPosition = opening
		l.line, l.column = line, column
		l.readChar()
		return Token{}, false
	}
	l.readChar() // consume closing quote
	return Token{
		Type:    TokenStringLit,
		Literal: l.input[position:l.position],
		Line:    line,
		Column:  column,
	}, true
}

// skipComment skips over a // comment line
func (l *Lexer) skipComment() {
	l.readChar()
	l.readChar()
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
