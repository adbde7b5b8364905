package diag

import (
	"fmt"
	"strings"
)

// CodeError is a positioned diagnostic for a piece of source code.
// Line and Column are 1-based; zero values mean the position is unknown.
type CodeError struct {
	Message string
	Line    int
	Column  int
}

func (e CodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// Snippet renders the offending source line with a caret under the column:
//
//	let x = @;
//	        ^
//
// Returns "" when the position falls outside the source.
func Snippet(source string, line, col int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	src := lines[line-1]
	if col < 1 || col > len(src)+1 {
		return src
	}

	var pad strings.Builder
	for _, ch := range src[:col-1] {
		// Tabs keep their width so the caret lines up.
		if ch == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	return src + "\n" + pad.String() + "^"
}

// Render formats an error with its source snippet for terminal output.
func Render(source string, err CodeError) string {
	out := err.Error()
	if snip := Snippet(source, err.Line, err.Column); snip != "" {
		out += "\n" + snip
	}
	return out
}
