package lexer

import (
	"testing"

	"js2ts/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `
let five = 5;
const name = "John";
var ok = true;
if (five <= 10) { return true; } else { return false; }
5 === 5;
5 !== 10;
a ?? b;
obj?.prop;
x ** 2;
x >>> 1;
[...rest];
(x) => x;
`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.NUMBER, "5"},
		{token.SEMICOLON, ";"},
		{token.CONST, "const"},
		{token.IDENT, "name"},
		{token.ASSIGN, "="},
		{token.STRING, "John"},
		{token.SEMICOLON, ";"},
		{token.VAR, "var"},
		{token.IDENT, "ok"},
		{token.ASSIGN, "="},
		{token.TRUE, "true"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.LT_EQ, "<="},
		{token.NUMBER, "10"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.TRUE, "true"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.FALSE, "false"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.NUMBER, "5"},
		{token.STRICT_EQ, "==="},
		{token.NUMBER, "5"},
		{token.SEMICOLON, ";"},
		{token.NUMBER, "5"},
		{token.STRICT_NOT_EQ, "!=="},
		{token.NUMBER, "10"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "a"},
		{token.NULLISH, "??"},
		{token.IDENT, "b"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "obj"},
		{token.OPT_CHAIN, "?."},
		{token.IDENT, "prop"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "x"},
		{token.POWER, "**"},
		{token.NUMBER, "2"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "x"},
		{token.USHR, ">>>"},
		{token.NUMBER, "1"},
		{token.SEMICOLON, ";"},
		{token.LBRACKET, "["},
		{token.SPREAD, "..."},
		{token.IDENT, "rest"},
		{token.RBRACKET, "]"},
		{token.SEMICOLON, ";"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.RPAREN, ")"},
		{token.ARROW, "=>"},
		{token.IDENT, "x"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] wrong token type. want=%q got=%q (%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] wrong literal. want=%q got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		input   string
		tokType token.TokenType
		literal string
	}{
		{"42", token.NUMBER, "42"},
		{"3.14", token.NUMBER, "3.14"},
		{"1e9", token.NUMBER, "1e9"},
		{"2.5e-3", token.NUMBER, "2.5e-3"},
		{"0xff", token.NUMBER, "0xff"},
		{"0b101", token.NUMBER, "0b101"},
		{"123n", token.BIGINT, "123n"},
	}

	for _, tt := range tests {
		tok := New(tt.input).NextToken()
		if tok.Type != tt.tokType || tok.Literal != tt.literal {
			t.Fatalf("lex(%q)=%q %q want %q %q", tt.input, tok.Type, tok.Literal, tt.tokType, tt.literal)
		}
	}
}

func TestStringQuoteStyles(t *testing.T) {
	tok := New(`'hi'`).NextToken()
	if tok.Type != token.STRING || tok.Literal != "hi" {
		t.Fatalf("single-quoted string: %q %q", tok.Type, tok.Literal)
	}
	tok = New(`"she said \"no\""`).NextToken()
	if tok.Type != token.STRING || tok.Literal != `she said "no"` {
		t.Fatalf("escaped string: %q %q", tok.Type, tok.Literal)
	}
}

func TestTemplateLiteral(t *testing.T) {
	tok := New("`hello ${first + last}!`").NextToken()
	if tok.Type != token.TEMPLATE {
		t.Fatalf("expected TEMPLATE, got %q", tok.Type)
	}
	if tok.Literal != "hello ${first + last}!" {
		t.Fatalf("template literal=%q", tok.Literal)
	}
}

func TestRegexVersusDivision(t *testing.T) {
	l := New(`let r = /ab+c/gi;`)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	if toks[3].Type != token.REGEX || toks[3].Literal != "/ab+c/gi" {
		t.Fatalf("expected regex literal, got %q %q", toks[3].Type, toks[3].Literal)
	}

	l = New(`a / b`)
	l.NextToken()
	op := l.NextToken()
	if op.Type != token.SLASH {
		t.Fatalf("expected division after identifier, got %q", op.Type)
	}
}

func TestPrivateName(t *testing.T) {
	tok := New("#count").NextToken()
	if tok.Type != token.PRIVATE || tok.Literal != "#count" {
		t.Fatalf("private name: %q %q", tok.Type, tok.Literal)
	}
}

func TestCommentsSkipped(t *testing.T) {
	l := New("// line\n/* block */ 7")
	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Literal != "7" {
		t.Fatalf("comments not skipped: %q %q", tok.Type, tok.Literal)
	}
}

func TestTokenPositions(t *testing.T) {
	l := New("let x = 1;\nlet y = 2;")
	var yTok token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Literal == "y" {
			yTok = tok
		}
	}
	if yTok.Line != 2 || yTok.Column != 5 {
		t.Fatalf("position of y: line=%d col=%d", yTok.Line, yTok.Column)
	}
}
