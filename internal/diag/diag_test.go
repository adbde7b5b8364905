package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeErrorFormatting(t *testing.T) {
	err := CodeError{Message: "unexpected token", Line: 3, Column: 7}
	assert.Equal(t, "line 3, column 7: unexpected token", err.Error())

	err = CodeError{Message: "unexpected end of input"}
	assert.Equal(t, "unexpected end of input", err.Error())
}

func TestSnippetCaretPlacement(t *testing.T) {
	source := "let a = 1;\nlet b = @;\nlet c = 3;"
	got := Snippet(source, 2, 9)
	assert.Equal(t, "let b = @;\n        ^", got)
}

func TestSnippetPreservesTabs(t *testing.T) {
	source := "\tlet x = @;"
	got := Snippet(source, 1, 10)
	assert.Equal(t, "\tlet x = @;\n\t        ^", got)
}

func TestSnippetOutOfRange(t *testing.T) {
	assert.Equal(t, "", Snippet("one line", 5, 1))
	assert.Equal(t, "", Snippet("one line", 0, 1))
}

func TestRenderIncludesSnippet(t *testing.T) {
	source := "x ="
	got := Render(source, CodeError{Message: "expected expression", Line: 1, Column: 3})
	assert.Contains(t, got, "line 1, column 3: expected expression")
	assert.Contains(t, got, "x =\n  ^")
}
