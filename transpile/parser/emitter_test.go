package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dangerclosesec/cpp2py/transpile/model"
)

func TestIndentBlockSingleLevel(t *testing.T) {
	got := indentBlock("print(i)\ni = i + 1\n")
	assert.Equal(t, "    print(i)\n    i = i + 1\n", got)
}

func TestIndentBlockBlankLinesPassThroughUnindented(t *testing.T) {
	got := indentBlock("a = 1\n\nb = 2\n")
	assert.Equal(t, "    a = 1\n\n    b = 2\n", got)
}

func TestIndentBlockWhitespaceOnlyLinesBecomeEmpty(t *testing.T) {
	got := indentBlock("a = 1\n   \nb = 2\n")
	assert.Equal(t, "    a = 1\n\n    b = 2\n", got)
}

func TestIndentBlockTrimsTrailingBlankLines(t *testing.T) {
	got := indentBlock("a = 1\n\n\n")
	assert.Equal(t, "    a = 1\n", got)
}

func TestIndentBlockAddsExactlyOneLevel(t *testing.T) {
	// A block with no nested block must come out at a single level:
	// the pipeline indents once per wrapping production and never again.
	got := translate(t, "if (x < 1) { cout << x; x = x + 1; }")
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n")[1:] {
		assert.True(t, strings.HasPrefix(line, pythonIndent))
		assert.False(t, strings.HasPrefix(line, pythonIndent+pythonIndent), "double indent in %q", line)
	}
}

func TestDeclarationLine(t *testing.T) {
	withInit := model.Declarator{Name: "x", Init: "5", HasInit: true}
	assert.Equal(t, "x = 5  # int in C++", declarationLine("int", withInit))

	bare := model.Declarator{Name: "x"}
	assert.Equal(t, "x = None  # int in C++", declarationLine("int", bare))
}
