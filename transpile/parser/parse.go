package parser

import (
	"os"

	"github.com/dangerclosesec/cpp2py/transpile/model"
)

// Translate converts one complete C++ source text into Python source
// text. Lexical diagnostics (illegal characters, unterminated strings)
// are returned as warnings alongside a successful translation; a syntax
// error aborts the call with no partial output. Each call builds its own
// lexer and parser, so concurrent callers never share mutable state.
func Translate(source string) (string, []model.Diagnostic, error) {
	lexer := NewLexer(source)
	p := NewParser(lexer)

	python, err := p.ParseProgram()
	if err != nil {
		return "", lexer.Warnings(), err
	}
	return python, lexer.Warnings(), nil
}

// TranslateFile reads a C++ source file and translates it
func TranslateFile(filePath string) (string, []model.Diagnostic, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", nil, err
	}
	return Translate(string(content))
}
