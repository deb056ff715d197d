package model

import "fmt"

// Diagnostic is a non-fatal lexical warning collected while scanning.
// The lexer skips the offending character and keeps going; callers decide
// whether to log or display the accumulated diagnostics.
type Diagnostic struct {
	Message string
	Line    int
	Column  int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (line %d, column %d)", d.Message, d.Line, d.Column)
}

// Declarator is one name in a declaration list, with its optional
// initializer already translated to Python text. It only lives long enough
// for the enclosing declaration to flatten it into output lines.
type Declarator struct {
	Name    string
	Init    string // translated initializer expression
	HasInit bool
}

// Parameter is a typed function parameter. The type is kept for fidelity
// but only the name survives into the Python definition.
type Parameter struct {
	Type string
	Name string
}
