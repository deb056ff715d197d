package parser

import "fmt"

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// TokenType represents the type of a token
type TokenType int

// Token types
const (
	TokenEOF TokenType = iota

	// Identifiers and literals
	TokenIdent
	TokenNumber    // integer or float literal, normalized in Literal
	TokenStringLit // string literal, quotes included in Literal

	// Keywords
	TokenInclude
	TokenIostream
	TokenInt
	TokenFloat
	TokenString
	TokenVoid
	TokenCout
	TokenCin
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenReturn
	TokenUsing
	TokenNamespace
	TokenStd

	// Operators and delimiters
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // {
	TokenRBrace    // }
	TokenSemicolon // ;
	TokenAssign    // =
	TokenComma     // ,

	// Comparison operators (<< and >> must win over < and >)
	TokenLT         // <
	TokenGT         // >
	TokenLTE        // <=
	TokenGTE        // >=
	TokenShiftLeft  // << stream insertion
	TokenShiftRight // >> stream extraction
)

// Keywords maps reserved words to their token types
var Keywords = map[string]TokenType{
	"include":   TokenInclude,
	"iostream":  TokenIostream,
	"int":       TokenInt,
	"float":     TokenFloat,
	"string":    TokenString,
	"void":      TokenVoid,
	"cout":      TokenCout,
	"cin":       TokenCin,
	"if":        TokenIf,
	"else":      TokenElse,
	"while":     TokenWhile,
	"for":       TokenFor,
	"return":    TokenReturn,
	"using":     TokenUsing,
	"namespace": TokenNamespace,
	"std":       TokenStd,
}

var tokenNames = [...]string{
	TokenEOF:        "EOF",
	TokenIdent:      "IDENT",
	TokenNumber:     "NUMBER",
	TokenStringLit:  "STRING_LITERAL",
	TokenInclude:    "INCLUDE",
	TokenIostream:   "IOSTREAM",
	TokenInt:        "INT",
	TokenFloat:      "FLOAT",
	TokenString:     "STRING",
	TokenVoid:       "VOID",
	TokenCout:       "COUT",
	TokenCin:        "CIN",
	TokenIf:         "IF",
	TokenElse:       "ELSE",
	TokenWhile:      "WHILE",
	TokenFor:        "FOR",
	TokenReturn:     "RETURN",
	TokenUsing:      "USING",
	TokenNamespace:  "NAMESPACE",
	TokenStd:        "STD",
	TokenPlus:       "PLUS",
	TokenMinus:      "MINUS",
	TokenStar:       "STAR",
	TokenSlash:      "SLASH",
	TokenLParen:     "LPAREN",
	TokenRParen:     "RPAREN",
	TokenLBrace:     "LBRACE",
	TokenRBrace:     "RBRACE",
	TokenSemicolon:  "SEMICOLON",
	TokenAssign:     "ASSIGN",
	TokenComma:      "COMMA",
	TokenLT:         "LESS",
	TokenGT:         "GREATER",
	TokenLTE:        "LESSEQUAL",
	TokenGTE:        "GREATEREQUAL",
	TokenShiftLeft:  "LEFTSHIFT",
	TokenShiftRight: "RIGHTSHIFT",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// lookupIdent classifies an identifier against the reserved word table
func lookupIdent(ident string) TokenType {
	if tt, ok := Keywords[ident]; ok {
		return tt
	}
	return TokenIdent
}

// isType reports whether tt is one of the declaration type keywords
func isType(tt TokenType) bool {
	switch tt {
	case TokenInt, TokenFloat, TokenString, TokenVoid:
		return true
	}
	return false
}
