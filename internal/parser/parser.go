package parser

import (
	"fmt"

	"js2ts/internal/ast"
	"js2ts/internal/diag"
	"js2ts/internal/lexer"
	"js2ts/internal/token"
)

// precedence levels (lowest to highest)
// These determine operator binding: 5 + 3 * 2 parses as 5 + (3 * 2) because * has higher precedence
const (
	_ int = iota // Start at 0, ignore this
	LOWEST
	ASSIGNMENT  // = += -= *= /= %=
	TERNARY     // a ? b : c
	NULLISH     // ??
	LOGICOR     // ||
	LOGICAND    // &&
	BITOR       // |
	BITXOR      // ^
	BITAND      // &
	EQUALS      // == != === !==
	LESSGREATER // < > <= >= in instanceof
	SHIFT       // << >> >>>
	SUM         // + -
	PRODUCT     // * / %
	EXPONENT    // ** (right associative)
	PREFIX      // -x !x typeof x
	POSTFIX     // x++ x--
	CALL        // myFunction(X)
	MEMBER      // obj.prop, arr[i] (binds tighter than call for new expressions)
)

// precedence table maps token types to their precedence level
var precedences = map[token.TokenType]int{
	token.ASSIGN:        ASSIGNMENT,
	token.PLUS_EQ:       ASSIGNMENT,
	token.MINUS_EQ:      ASSIGNMENT,
	token.MUL_EQ:        ASSIGNMENT,
	token.DIV_EQ:        ASSIGNMENT,
	token.MOD_EQ:        ASSIGNMENT,
	token.QUESTION:      TERNARY,
	token.NULLISH:       NULLISH,
	token.OR:            LOGICOR,
	token.AND:           LOGICAND,
	token.BIT_OR:        BITOR,
	token.BIT_XOR:       BITXOR,
	token.BIT_AND:       BITAND,
	token.EQ:            EQUALS,
	token.NOT_EQ:        EQUALS,
	token.STRICT_EQ:     EQUALS,
	token.STRICT_NOT_EQ: EQUALS,
	token.LT:            LESSGREATER,
	token.GT:            LESSGREATER,
	token.LT_EQ:         LESSGREATER,
	token.GT_EQ:         LESSGREATER,
	token.IN:            LESSGREATER,
	token.INSTANCEOF:    LESSGREATER,
	token.SHL:           SHIFT,
	token.SHR:           SHIFT,
	token.USHR:          SHIFT,
	token.PLUS:          SUM,
	token.MINUS:         SUM,
	token.ASTERISK:      PRODUCT,
	token.SLASH:         PRODUCT,
	token.PERCENT:       PRODUCT,
	token.POWER:         EXPONENT,
	token.INC:           POSTFIX,
	token.DEC:           POSTFIX,
	token.LPAREN:        CALL,
	token.LBRACKET:      MEMBER,
	token.DOT:           MEMBER,
	token.OPT_CHAIN:     MEMBER,
}

type Parser struct {
	l *lexer.Lexer // The lexer feeding us tokens

	curToken  token.Token // Current token under examination
	peekToken token.Token // Next Token (for look-ahead)

	errors []diag.CodeError // Accumulated parse errors

	// Pratt parser tables
	prefixParseFns map[token.TokenType]prefixParseFn // Functions for tokens that start expressions
	infixParseFns  map[token.TokenType]infixParseFn  // Functions for tokens that appear in the middle
}

// prefixParseFn parses expressions that start with a specific token
// Example: -5, !true, 42, x
type prefixParseFn func() ast.Expression

// infixParseFn parses expressions where the operator is between operands
// Example: 5 + 3, add(2, 3)
// The ast.Expression is the left side already parsed
type infixParseFn func(ast.Expression) ast.Expression

// New creates a new parser for the given lexer
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []diag.CodeError{},
	}

	// Initialize function tables
	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.infixParseFns = make(map[token.TokenType]infixParseFn)

	// Register prefix parsers (tokens that can START an expression)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.PRIVATE, p.parsePrivateName)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.BIGINT, p.parseBigIntLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TEMPLATE, p.parseTemplateLiteral)
	p.registerPrefix(token.REGEX, p.parseRegexLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.PLUS, p.parsePrefixExpression)
	p.registerPrefix(token.TILDE, p.parsePrefixExpression)
	p.registerPrefix(token.TYPEOF, p.parsePrefixExpression)
	p.registerPrefix(token.VOID, p.parsePrefixExpression)
	p.registerPrefix(token.DELETE, p.parsePrefixExpression)
	p.registerPrefix(token.INC, p.parsePrefixUpdate)
	p.registerPrefix(token.DEC, p.parsePrefixUpdate)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseObjectLiteral)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(token.NEW, p.parseNewExpression)
	p.registerPrefix(token.SPREAD, p.parseSpreadElement)

	// Register infix parsers (tokens that appear BETWEEN expressions)
	p.registerInfix(token.PLUS, p.parseBinaryExpression)
	p.registerInfix(token.MINUS, p.parseBinaryExpression)
	p.registerInfix(token.ASTERISK, p.parseBinaryExpression)
	p.registerInfix(token.SLASH, p.parseBinaryExpression)
	p.registerInfix(token.PERCENT, p.parseBinaryExpression)
	p.registerInfix(token.POWER, p.parseExponentExpression)
	p.registerInfix(token.EQ, p.parseBinaryExpression)
	p.registerInfix(token.NOT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.STRICT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.STRICT_NOT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.LT, p.parseBinaryExpression)
	p.registerInfix(token.GT, p.parseBinaryExpression)
	p.registerInfix(token.LT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.GT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.IN, p.parseBinaryExpression)
	p.registerInfix(token.INSTANCEOF, p.parseBinaryExpression)
	p.registerInfix(token.SHL, p.parseBinaryExpression)
	p.registerInfix(token.SHR, p.parseBinaryExpression)
	p.registerInfix(token.USHR, p.parseBinaryExpression)
	p.registerInfix(token.BIT_AND, p.parseBinaryExpression)
	p.registerInfix(token.BIT_OR, p.parseBinaryExpression)
	p.registerInfix(token.BIT_XOR, p.parseBinaryExpression)
	p.registerInfix(token.AND, p.parseLogicalExpression)
	p.registerInfix(token.OR, p.parseLogicalExpression)
	p.registerInfix(token.NULLISH, p.parseLogicalExpression)
	p.registerInfix(token.QUESTION, p.parseConditionalExpression)
	p.registerInfix(token.ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(token.PLUS_EQ, p.parseAssignmentExpression)
	p.registerInfix(token.MINUS_EQ, p.parseAssignmentExpression)
	p.registerInfix(token.MUL_EQ, p.parseAssignmentExpression)
	p.registerInfix(token.DIV_EQ, p.parseAssignmentExpression)
	p.registerInfix(token.MOD_EQ, p.parseAssignmentExpression)
	p.registerInfix(token.INC, p.parsePostfixUpdate)
	p.registerInfix(token.DEC, p.parsePostfixUpdate)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.DOT, p.parseMemberExpression)
	p.registerInfix(token.OPT_CHAIN, p.parseMemberExpression)

	// Read two tokens to set curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

// registerPrefix adds a prefix parser for a token type
func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

// registerInfix adds an infix parser for a token type
func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Errors returns accumulated parse errors
func (p *Parser) Errors() []diag.CodeError {
	return p.errors
}

func (p *Parser) addError(msg string, tok token.Token) {
	p.errors = append(p.errors, diag.CodeError{Message: msg, Line: tok.Line, Column: tok.Column})
}

// peekError adds an error when we expected a different token
func (p *Parser) peekError(t token.TokenType) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekToken.Type)
	p.addError(msg, p.peekToken)
}

// curTokenIs checks if current token matches
func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs checks if next token matches
func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek checks next token and advances if correct, else errors
// Used for mandatory syntax like "if (<test>)"
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// peekPrecedence returns precedence of next token
func (p *Parser) peekPrecedence() int {
	if p, ok := precedences[p.peekToken.Type]; ok {
		return p
	}
	return LOWEST
}

// curPrecedence returns precedence of current token
func (p *Parser) curPrecedence() int {
	if p, ok := precedences[p.curToken.Type]; ok {
		return p
	}
	return LOWEST
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	// Keep parsing statements until EOF
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) synchronize() {
	for !p.curTokenIs(token.EOF) && !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.RBRACE) {
		p.nextToken()
	}
}

// consumeSemicolon eats an optional trailing semicolon. JavaScript inserts
// them automatically, so statements never require one.
func (p *Parser) consumeSemicolon() {
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}
