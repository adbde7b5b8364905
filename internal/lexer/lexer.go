package lexer

import "js2ts/internal/token"

// Lexer holds the state while tokenizing input
// It reads character by character, like a tape reader
type Lexer struct {
	input        string // The source code
	position     int    // Current position in input (points to current char)
	readPosition int    // Current reading position (after current char)
	ch           byte   // Current character under examination

	line   int // 1-based line of the current character
	column int // 1-based column of the current character

	prevType token.TokenType // Last emitted token, for regex/division disambiguation
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar() // Initialize with first character
	return l
}

// readChar advances to the next character
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	// If we've reached the end, set ch to 0 (NUL byte, signifies EOF)
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column++
}

// peekChar looks at the next character without consuming it
// Used for multi-character tokens like === and =>
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) peekCharAt(offset int) byte {
	pos := l.readPosition + offset - 1
	if pos >= len(l.input) {
		return 0
	}
	return l.input[pos]
}

// NextToken returns the next token from input
// This is the heart of the lexer - it recognizes patterns
func (l *Lexer) NextToken() token.Token {
	tok := l.nextToken()
	l.prevType = tok.Type
	return tok
}

func (l *Lexer) nextToken() token.Token {
	var tok token.Token

	l.skipIgnored() // Spaces, newlines, comments

	line, column := l.line, l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' && l.peekCharAt(2) == '=' {
			tok = l.makeToken(token.STRICT_EQ, 3)
		} else if l.peekChar() == '=' {
			tok = l.makeToken(token.EQ, 2)
		} else if l.peekChar() == '>' {
			tok = l.makeToken(token.ARROW, 2)
		} else {
			tok = newToken(token.ASSIGN, l.ch)
		}
	case '+':
		if l.peekChar() == '+' {
			tok = l.makeToken(token.INC, 2)
		} else if l.peekChar() == '=' {
			tok = l.makeToken(token.PLUS_EQ, 2)
		} else {
			tok = newToken(token.PLUS, l.ch)
		}
	case '-':
		if l.peekChar() == '-' {
			tok = l.makeToken(token.DEC, 2)
		} else if l.peekChar() == '=' {
			tok = l.makeToken(token.MINUS_EQ, 2)
		} else {
			tok = newToken(token.MINUS, l.ch)
		}
	case '~':
		tok = newToken(token.TILDE, l.ch)
	case '!':
		if l.peekChar() == '=' && l.peekCharAt(2) == '=' {
			tok = l.makeToken(token.STRICT_NOT_EQ, 3)
		} else if l.peekChar() == '=' {
			tok = l.makeToken(token.NOT_EQ, 2)
		} else {
			tok = newToken(token.BANG, l.ch)
		}
	case '/':
		if l.regexAllowed() {
			tok.Type = token.REGEX
			tok.Literal = l.readRegex()
			tok.Line, tok.Column = line, column
			return tok
		}
		if l.peekChar() == '=' {
			tok = l.makeToken(token.DIV_EQ, 2)
		} else {
			tok = newToken(token.SLASH, l.ch)
		}
	case '*':
		if l.peekChar() == '*' {
			tok = l.makeToken(token.POWER, 2)
		} else if l.peekChar() == '=' {
			tok = l.makeToken(token.MUL_EQ, 2)
		} else {
			tok = newToken(token.ASTERISK, l.ch)
		}
	case '%':
		if l.peekChar() == '=' {
			tok = l.makeToken(token.MOD_EQ, 2)
		} else {
			tok = newToken(token.PERCENT, l.ch)
		}
	case '<':
		if l.peekChar() == '<' {
			tok = l.makeToken(token.SHL, 2)
		} else if l.peekChar() == '=' {
			tok = l.makeToken(token.LT_EQ, 2)
		} else {
			tok = newToken(token.LT, l.ch)
		}
	case '>':
		if l.peekChar() == '>' && l.peekCharAt(2) == '>' {
			tok = l.makeToken(token.USHR, 3)
		} else if l.peekChar() == '>' {
			tok = l.makeToken(token.SHR, 2)
		} else if l.peekChar() == '=' {
			tok = l.makeToken(token.GT_EQ, 2)
		} else {
			tok = newToken(token.GT, l.ch)
		}
	case '&':
		if l.peekChar() == '&' {
			tok = l.makeToken(token.AND, 2)
		} else {
			tok = newToken(token.BIT_AND, l.ch)
		}
	case '|':
		if l.peekChar() == '|' {
			tok = l.makeToken(token.OR, 2)
		} else {
			tok = newToken(token.BIT_OR, l.ch)
		}
	case '^':
		tok = newToken(token.BIT_XOR, l.ch)
	case '?':
		if l.peekChar() == '?' {
			tok = l.makeToken(token.NULLISH, 2)
		} else if l.peekChar() == '.' {
			tok = l.makeToken(token.OPT_CHAIN, 2)
		} else {
			tok = newToken(token.QUESTION, l.ch)
		}
	case '.':
		if l.peekChar() == '.' && l.peekCharAt(2) == '.' {
			tok = l.makeToken(token.SPREAD, 3)
		} else {
			tok = newToken(token.DOT, l.ch)
		}
	case ';':
		tok = newToken(token.SEMICOLON, l.ch)
	case ':':
		tok = newToken(token.COLON, l.ch)
	case ',':
		tok = newToken(token.COMMA, l.ch)
	case '(':
		tok = newToken(token.LPAREN, l.ch)
	case ')':
		tok = newToken(token.RPAREN, l.ch)
	case '{':
		tok = newToken(token.LBRACE, l.ch)
	case '}':
		tok = newToken(token.RBRACE, l.ch)
	case '[':
		tok = newToken(token.LBRACKET, l.ch)
	case ']':
		tok = newToken(token.RBRACKET, l.ch)
	case '"', '\'':
		tok.Type = token.STRING
		tok.Literal = l.readString(l.ch)
		tok.Line, tok.Column = line, column
		return tok
	case '`':
		tok.Type = token.TEMPLATE
		tok.Literal = l.readTemplate()
		tok.Line, tok.Column = line, column
		return tok
	case '#':
		if isLetter(l.peekChar()) {
			l.readChar()
			tok.Type = token.PRIVATE
			tok.Literal = "#" + l.readIdentifier()
			tok.Line, tok.Column = line, column
			return tok
		}
		tok = newToken(token.ILLEGAL, l.ch)
	case 0:
		tok.Literal = ""
		tok.Type = token.EOF
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			tok.Line, tok.Column = line, column
			return tok
		} else if isDigit(l.ch) {
			tok.Type, tok.Literal = l.readNumber()
			tok.Line, tok.Column = line, column
			return tok
		} else {
			tok = newToken(token.ILLEGAL, l.ch)
		}
	}

	tok.Line, tok.Column = line, column
	l.readChar()
	return tok
}

// makeToken consumes width-1 extra characters and builds a multi-char token.
// The caller's switch has already matched the lookahead.
func (l *Lexer) makeToken(t token.TokenType, width int) token.Token {
	start := l.position
	for i := 1; i < width; i++ {
		l.readChar()
	}
	return token.Token{Type: t, Literal: l.input[start : l.position+1]}
}

// regexAllowed reports whether a '/' at the current position starts a regex
// literal rather than a division. A regex can only follow a token that does
// not end an expression.
func (l *Lexer) regexAllowed() bool {
	switch l.prevType {
	case token.IDENT, token.NUMBER, token.BIGINT, token.STRING, token.TEMPLATE,
		token.REGEX, token.RPAREN, token.RBRACKET, token.TRUE, token.FALSE,
		token.NULL, token.INC, token.DEC:
		return false
	}
	return true
}
