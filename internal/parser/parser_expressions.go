package parser

import (
	"fmt"
	"strconv"
	"strings"

	"js2ts/internal/ast"
	"js2ts/internal/lexer"
	"js2ts/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	// First, find a prefix parser for current token
	// This handles: literals, identifiers, prefix operators (!, -), grouped expressions
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	// While next token is an infix operator with higher precedence than ours,
	// consume it and build the expression tree
	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()            // Advance to the operator
		leftExp = infix(leftExp) // Parse with left side already known
	}

	return leftExp
}

func (p *Parser) noPrefixParseFnError(t token.TokenType) {
	msg := fmt.Sprintf("no prefix parse function for %s found", t)
	p.addError(msg, p.curToken)
}

// parseIdentifier parses a variable name. A name directly followed by =>
// is the single parameter of a parenless arrow function.
func (p *Parser) parseIdentifier() ast.Expression {
	if p.peekTokenIs(token.ARROW) {
		param := &ast.Parameter{
			Token: p.curToken,
			Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal},
		}
		lit := &ast.FunctionLiteral{Token: p.curToken, Arrow: true, Params: []*ast.Parameter{param}}
		p.nextToken() // =>
		return p.parseArrowBody(lit)
	}
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parsePrivateName() ast.Expression {
	return &ast.PrivateName{Token: p.curToken, Value: p.curToken.Literal}
}

// parseNumberLiteral parses a number
func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.NumberLiteral{Token: p.curToken}

	value, err := parseNumericText(p.curToken.Literal)
	if err != nil {
		msg := fmt.Sprintf("could not parse %q as number", p.curToken.Literal)
		p.addError(msg, p.curToken)
		return nil
	}

	lit.Value = value
	return lit
}

// parseNumericText converts any numeric literal form the lexer accepts.
// Hex, octal and binary forms go through ParseInt; everything else is a float.
func parseNumericText(text string) (float64, error) {
	if len(text) > 1 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			n, err := strconv.ParseInt(text, 0, 64)
			return float64(n), err
		}
	}
	return strconv.ParseFloat(text, 64)
}

func (p *Parser) parseBigIntLiteral() ast.Expression {
	return &ast.BigIntLiteral{Token: p.curToken, Value: strings.TrimSuffix(p.curToken.Literal, "n")}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

// parseTemplateLiteral splits the raw backtick contents the lexer kept into
// literal chunks and interpolated sub-expressions.
func (p *Parser) parseTemplateLiteral() ast.Expression {
	lit := &ast.TemplateLiteral{Token: p.curToken}

	quasis, sources, err := splitTemplate(p.curToken.Literal)
	if err != nil {
		p.addError("invalid template literal: "+err.Error(), p.curToken)
		return nil
	}
	lit.Quasis = quasis

	for _, src := range sources {
		expr, ok := parseEmbeddedExpression(src)
		if !ok {
			p.addError("invalid template interpolation: "+src, p.curToken)
			return nil
		}
		lit.Expressions = append(lit.Expressions, expr)
	}
	return lit
}

// splitTemplate separates "a${x}b${y}c" into quasis [a b c] and
// interpolation sources [x y]. Quasis always has one more entry than sources.
func splitTemplate(input string) (quasis []string, sources []string, err error) {
	var text strings.Builder

	for i := 0; i < len(input); i++ {
		ch := input[i]
		if ch == '$' && i+1 < len(input) && input[i+1] == '{' {
			quasis = append(quasis, text.String())
			text.Reset()

			i += 2
			start := i
			depth := 1
			for i < len(input) {
				switch input[i] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						src := strings.TrimSpace(input[start:i])
						if src == "" {
							return nil, nil, fmt.Errorf("empty ${} expression")
						}
						sources = append(sources, src)
						goto next
					}
				}
				i++
			}
			return nil, nil, fmt.Errorf("unterminated ${...} expression")
		}
		text.WriteByte(ch)
	next:
	}

	quasis = append(quasis, text.String())
	return quasis, sources, nil
}

// parseEmbeddedExpression runs a fresh parser over an interpolation source.
func parseEmbeddedExpression(src string) (ast.Expression, bool) {
	lp := lexer.New(src + ";")
	pp := New(lp)
	program := pp.ParseProgram()
	if len(pp.Errors()) != 0 {
		return nil, false
	}
	if program == nil || len(program.Statements) != 1 {
		return nil, false
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok || stmt.Expression == nil {
		return nil, false
	}
	return stmt.Expression, true
}

// parseRegexLiteral splits /pattern/flags at the closing slash.
func (p *Parser) parseRegexLiteral() ast.Expression {
	lit := p.curToken.Literal
	end := strings.LastIndexByte(lit, '/')
	if end <= 0 {
		p.addError("malformed regex literal", p.curToken)
		return nil
	}
	return &ast.RegexLiteral{
		Token:   p.curToken,
		Pattern: lit[1:end],
		Flags:   lit[end+1:],
	}
}

// parseBooleanLiteral handles true/false
func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{
		Token: p.curToken,
		Value: p.curTokenIs(token.TRUE),
	}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

// parsePrefixExpression handles !x, -x, +x, ~x and the keyword forms
// typeof x, void x, delete x.prop
func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.UnaryExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken() // Advance past the operator

	// Parse the operand with PREFIX precedence (high)
	expression.Operand = p.parseExpression(PREFIX)

	return expression
}

func (p *Parser) parsePrefixUpdate() ast.Expression {
	expression := &ast.UpdateExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Prefix:   true,
	}
	p.nextToken()
	expression.Operand = p.parseExpression(PREFIX)
	return expression
}

func (p *Parser) parsePostfixUpdate(left ast.Expression) ast.Expression {
	return &ast.UpdateExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Operand:  left,
	}
}

// parseBinaryExpression handles <left> <op> <right>
// Called with left side already parsed
func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expression := &ast.BinaryExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

// parseExponentExpression is parseBinaryExpression with right associativity:
// 2 ** 3 ** 2 is 2 ** (3 ** 2).
func (p *Parser) parseExponentExpression(left ast.Expression) ast.Expression {
	expression := &ast.BinaryExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence - 1)
	return expression
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	expression := &ast.LogicalExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	return expression
}

// parseConditionalExpression handles test ? consequent : alternate.
// Nested ternaries associate to the right.
func (p *Parser) parseConditionalExpression(test ast.Expression) ast.Expression {
	expression := &ast.ConditionalExpression{Token: p.curToken, Test: test}

	p.nextToken()
	expression.Consequent = p.parseExpression(LOWEST)

	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	expression.Alternate = p.parseExpression(TERNARY - 1)

	return expression
}

// parseAssignmentExpression handles x = v and the compound forms. Only
// identifiers and member accesses are valid targets.
func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	switch left.(type) {
	case *ast.Identifier, *ast.MemberExpression:
	default:
		p.addError("invalid assignment target", p.curToken)
		return nil
	}

	expression := &ast.AssignmentExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	// Right associative: a = b = c assigns c to both.
	expression.Right = p.parseExpression(precedence - 1)
	return expression
}

// parseGroupedExpression handles ( <expr> ) and arrow parameter lists,
// which look identical until the closing parenthesis.
func (p *Parser) parseGroupedExpression() ast.Expression {
	if p.lparenStartsArrow() {
		return p.parseArrowFunction()
	}

	p.nextToken() // Advance past (

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

// lparenStartsArrow reports whether the parenthesis under curToken opens an
// arrow function's parameter list. It scans ahead for the matching ) and
// checks for =>, then restores the parser and lexer state untouched.
func (p *Parser) lparenStartsArrow() bool {
	savedLexer := *p.l
	savedCur, savedPeek := p.curToken, p.peekToken
	defer func() {
		*p.l = savedLexer
		p.curToken, p.peekToken = savedCur, savedPeek
	}()

	depth := 1
	for depth > 0 {
		p.nextToken()
		switch p.curToken.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
		case token.EOF:
			return false
		}
	}
	return p.peekTokenIs(token.ARROW)
}

// parseArrowFunction handles (params) => body with curToken on the (.
func (p *Parser) parseArrowFunction() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken, Arrow: true}

	lit.Params = p.parseParameterList()
	if lit.Params == nil {
		return nil
	}

	if !p.expectPeek(token.ARROW) {
		return nil
	}
	return p.parseArrowBody(lit)
}

// parseArrowBody fills in the block or single-expression body with curToken
// on the =>.
func (p *Parser) parseArrowBody(lit *ast.FunctionLiteral) ast.Expression {
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		lit.Body = p.parseBlockStatement()
		return lit
	}
	p.nextToken()
	lit.ExprBody = p.parseExpression(LOWEST)
	if lit.ExprBody == nil {
		return nil
	}
	return lit
}

// parseFunctionLiteral handles: function name(params) { body }
// The name is optional for function expressions.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		lit.Name = p.curToken.Literal
	}

	// Expect (
	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	lit.Params = p.parseParameterList()
	if lit.Params == nil {
		return nil
	}

	// Expect {
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

// parseParameterList parses (a, b = 1, ...rest) with curToken on the (.
func (p *Parser) parseParameterList() []*ast.Parameter {
	params := []*ast.Parameter{}

	// Empty params: ()
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken() // Advance to first param

	for {
		param := p.parseParameter()
		if param == nil {
			return nil
		}
		params = append(params, param)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // skip comma
		p.nextToken() // advance to next param
	}

	// Expect closing )
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	switch p.curToken.Type {
	case token.SPREAD:
		param := &ast.Parameter{Token: p.curToken, Rest: true}
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		param.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		return param
	case token.LBRACKET:
		// Destructuring patterns bind no single name; skip the pattern and
		// leave the parameter opaque.
		param := &ast.Parameter{Token: p.curToken, Array: true}
		if !p.skipBalanced(token.LBRACKET, token.RBRACKET) {
			return nil
		}
		return param
	case token.LBRACE:
		param := &ast.Parameter{Token: p.curToken, Object: true}
		if !p.skipBalanced(token.LBRACE, token.RBRACE) {
			return nil
		}
		return param
	case token.IDENT:
		param := &ast.Parameter{
			Token: p.curToken,
			Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal},
		}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			param.Default = p.parseExpression(LOWEST)
			if param.Default == nil {
				return nil
			}
		}
		return param
	default:
		p.addError("invalid function parameter", p.curToken)
		return nil
	}
}

// skipBalanced consumes tokens until the close matching the open under
// curToken, leaving curToken on the closer.
func (p *Parser) skipBalanced(open, close token.TokenType) bool {
	depth := 1
	for depth > 0 {
		p.nextToken()
		switch p.curToken.Type {
		case open:
			depth++
		case close:
			depth--
		case token.EOF:
			p.addError(fmt.Sprintf("unterminated %s", open), p.curToken)
			return false
		}
	}
	return true
}

// parseNewExpression handles new Ctor(args) and bare new Ctor. The callee
// may be a member chain but the argument parenthesis terminates it.
func (p *Parser) parseNewExpression() ast.Expression {
	exp := &ast.NewExpression{Token: p.curToken}

	p.nextToken()
	exp.Callee = p.parseExpression(CALL)
	if exp.Callee == nil {
		return nil
	}

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		exp.Arguments = p.parseCallArguments()
	}
	return exp
}

func (p *Parser) parseSpreadElement() ast.Expression {
	exp := &ast.SpreadElement{Token: p.curToken}
	p.nextToken()
	exp.Argument = p.parseExpression(LOWEST)
	if exp.Argument == nil {
		return nil
	}
	return exp
}

// parseArrayLiteral handles [a, b, ...rest] with trailing commas allowed.
func (p *Parser) parseArrayLiteral() ast.Expression {
	lit := &ast.ArrayLiteral{Token: p.curToken}
	lit.Elements = []ast.Expression{}

	for !p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		lit.Elements = append(lit.Elements, el)

		if !p.peekTokenIs(token.RBRACKET) && !p.expectPeek(token.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return lit
}

// parseObjectLiteral handles { key: value, shorthand, [computed]: v,
// method() {}, ...spread } with trailing commas allowed.
func (p *Parser) parseObjectLiteral() ast.Expression {
	obj := &ast.ObjectLiteral{Token: p.curToken}
	obj.Properties = []*ast.ObjectProperty{}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		prop := p.parseObjectProperty()
		if prop == nil {
			return nil
		}
		obj.Properties = append(obj.Properties, prop)

		if !p.peekTokenIs(token.RBRACE) && !p.expectPeek(token.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}

	return obj
}

func (p *Parser) parseObjectProperty() *ast.ObjectProperty {
	prop := &ast.ObjectProperty{Token: p.curToken}

	switch p.curToken.Type {
	case token.SPREAD:
		prop.Spread = true
		p.nextToken()
		prop.Value = p.parseExpression(LOWEST)
		if prop.Value == nil {
			return nil
		}
		return prop

	case token.LBRACKET:
		prop.Computed = true
		p.nextToken()
		prop.Key = p.parseExpression(LOWEST)
		if prop.Key == nil {
			return nil
		}
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		prop.Value = p.parseExpression(LOWEST)
		if prop.Value == nil {
			return nil
		}
		return prop

	case token.STRING:
		prop.Key = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case token.NUMBER:
		num := p.parseNumberLiteral()
		if num == nil {
			return nil
		}
		prop.Key = num
	default:
		// Identifiers and keywords are both valid property names: { default: 1 }.
		if !isWordToken(p.curToken) {
			p.addError("invalid object property key", p.curToken)
			return nil
		}
		prop.Key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}

	switch {
	case p.peekTokenIs(token.LPAREN):
		// Method shorthand: { greet(who) { ... } }
		prop.Method = true
		fn := &ast.FunctionLiteral{Token: p.curToken}
		p.nextToken()
		fn.Params = p.parseParameterList()
		if fn.Params == nil {
			return nil
		}
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		fn.Body = p.parseBlockStatement()
		prop.Value = fn
	case p.peekTokenIs(token.COLON):
		p.nextToken()
		p.nextToken()
		prop.Value = p.parseExpression(LOWEST)
		if prop.Value == nil {
			return nil
		}
	default:
		// Shorthand: { x } means { x: x }
		key, ok := prop.Key.(*ast.Identifier)
		if !ok {
			p.addError("object property requires a value", p.curToken)
			return nil
		}
		prop.Shorthand = true
		prop.Value = key
	}

	return prop
}

// isWordToken reports whether the token's literal is an identifier-shaped
// word (identifier or reserved keyword).
func isWordToken(tok token.Token) bool {
	if tok.Literal == "" {
		return false
	}
	ch := tok.Literal[0]
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch == '$'
}

// parseCallExpression handles: <function>(<arguments>)
// Called when we see ( after parsing a function expression
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Callee: function}
	exp.Arguments = p.parseCallArguments()
	return exp
}

// parseCallArguments parses the argument list: 1, x, ...rest
func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return args
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	exp := &ast.MemberExpression{Token: p.curToken, Object: left, Computed: true}
	p.nextToken()
	exp.Property = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return exp
}

// parseMemberExpression handles obj.prop and obj?.prop. Optional chaining
// parses as a plain member access: the annotation is unaffected.
func (p *Parser) parseMemberExpression(left ast.Expression) ast.Expression {
	exp := &ast.MemberExpression{Token: p.curToken, Object: left}

	p.nextToken()
	switch {
	case p.curTokenIs(token.PRIVATE):
		exp.Property = &ast.PrivateName{Token: p.curToken, Value: p.curToken.Literal}
	case isWordToken(p.curToken):
		exp.Property = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	default:
		p.addError("expected property name after .", p.curToken)
		return nil
	}
	return exp
}
