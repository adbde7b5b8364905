package lexer

import "js2ts/internal/token"

func (l *Lexer) skipIgnored() {
	for {
		l.skipWhitespace()

		// Line comment: // ...
		if l.ch == '/' && l.peekChar() == '/' {
			l.skipLineComment()
			continue
		}

		// Block comment: /* ... */
		if l.ch == '/' && l.peekChar() == '*' {
			l.skipBlockComment()
			continue
		}

		return
	}
}

// skipWhitespace ignores spaces, tabs, newlines, carriage returns
// These have no meaning except to separate tokens
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipLineComment() {
	// Skip leading "//"
	l.readChar()
	l.readChar()
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) skipBlockComment() {
	// Skip leading "/*"
	l.readChar()
	l.readChar()
	for {
		if l.ch == 0 {
			return
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return
		}
		l.readChar()
	}
}

// readIdentifier reads an identifier.
// First char is guaranteed to be a letter/underscore/$ by caller.
// Subsequent chars may include digits.
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads a numeric literal: decimal, float, exponent, hex/octal/
// binary prefixes, and the BigInt "n" suffix.
func (l *Lexer) readNumber() (token.TokenType, string) {
	position := l.position
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X' ||
		l.peekChar() == 'o' || l.peekChar() == 'O' ||
		l.peekChar() == 'b' || l.peekChar() == 'B') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
	} else {
		for isDigit(l.ch) {
			l.readChar()
		}
		if l.ch == '.' && isDigit(l.peekChar()) {
			l.readChar()
			for isDigit(l.ch) {
				l.readChar()
			}
		}
		if l.ch == 'e' || l.ch == 'E' {
			next := l.peekChar()
			if isDigit(next) || next == '+' || next == '-' {
				l.readChar()
				if l.ch == '+' || l.ch == '-' {
					l.readChar()
				}
				for isDigit(l.ch) {
					l.readChar()
				}
			}
		}
	}
	if l.ch == 'n' {
		l.readChar()
		return token.BIGINT, l.input[position:l.position]
	}
	return token.NUMBER, l.input[position:l.position]
}

// readString reads a single- or double-quoted string.
// Backslash escapes the next character; the literal keeps escapes unresolved
// except for \" \' \\ which are unquoted.
func (l *Lexer) readString(quote byte) string {
	l.readChar() // consume opening quote
	var out []byte
	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			next := l.peekChar()
			if next == quote || next == '\\' {
				l.readChar()
			}
		}
		out = append(out, l.ch)
		l.readChar()
	}
	if l.ch == quote {
		l.readChar()
	}
	return string(out)
}

// readTemplate reads a backtick template literal, keeping the raw contents
// (including ${...} interpolations, with nested braces balanced) for the
// parser to split.
func (l *Lexer) readTemplate() string {
	l.readChar() // consume opening backtick
	position := l.position
	depth := 0
	for l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '$' && l.peekChar() == '{' {
			depth++
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '}' && depth > 0 {
			depth--
			l.readChar()
			continue
		}
		if l.ch == '`' && depth == 0 {
			break
		}
		l.readChar()
	}
	lit := l.input[position:l.position]
	if l.ch == '`' {
		l.readChar()
	}
	return lit
}

// readRegex reads a /pattern/flags literal. Character classes may contain
// an unescaped '/', so bracket depth is tracked.
func (l *Lexer) readRegex() string {
	position := l.position
	l.readChar() // consume opening slash
	inClass := false
	for l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '[' {
			inClass = true
		} else if l.ch == ']' {
			inClass = false
		} else if l.ch == '/' && !inClass {
			break
		}
		l.readChar()
	}
	if l.ch == '/' {
		l.readChar()
	}
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// isLetter checks if ch can start or continue an identifier
// JavaScript allows '$' alongside letters and underscores
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch == '$'
}

// isDigit checks if ch is 0-9
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

// newToken is a helper to create single-character tokens
func newToken(tokenType token.TokenType, ch byte) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}
