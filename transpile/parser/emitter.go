package parser

import (
	"fmt"
	"strings"

	"github.com/dangerclosesec/cpp2py/transpile/model"
)

// Python emission conventions. Nesting is represented purely by
// accumulated indentation: compound statements parse to raw, unindented
// text and every wrapping production indents its block exactly once.

const pythonIndent = "    "

const (
	includeMarker = "# C++ iostream included\n"
	usingMarker   = "# using namespace std; (ignored in Python)\n"
	mainGuard     = "if __name__ == \"__main__\":\n"
	readPrimitive = "input()"
)

// indentBlock shifts a block of newline-terminated statements one level
// deeper. Blank and whitespace-only lines pass through empty, trailing
// blank lines are dropped, and the result ends with a single newline.
func indentBlock(block string) string {
	lines := strings.Split(strings.TrimRight(block, " \t\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = pythonIndent + line
	}
	return strings.Join(lines, "\n") + "\n"
}

// declarationLine renders one declarator as a Python assignment suffixed
// with a comment naming the original static type. An uninitialized
// declarator is bound to None.
func declarationLine(typ string, d model.Declarator) string {
	if !d.HasInit {
		return fmt.Sprintf("%s = None  # %s in C++", d.Name, typ)
	}
	return fmt.Sprintf("%s = %s  # %s in C++", d.Name, d.Init, typ)
}
