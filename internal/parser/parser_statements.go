package parser

import (
	"strings"

	"js2ts/internal/ast"
	"js2ts/internal/token"
)

// parseStatement dispatches to specific statement parsers based on token type
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET, token.CONST, token.VAR:
		return p.parseVarStatement()
	case token.FUNCTION:
		if p.peekTokenIs(token.IDENT) {
			return p.parseFunctionDeclaration()
		}
		return p.parseExpressionStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.IMPORT:
		return p.parseImportStatement()
	case token.EXPORT:
		return p.parseExportStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.IDENT:
		if p.peekTokenIs(token.COLON) {
			return p.parseLabeledStatement()
		}
		return p.parseExpressionStatement()
	case token.SEMICOLON:
		// Stray semicolons are empty statements.
		return &ast.ExpressionStatement{Token: p.curToken}
	default:
		return p.parseExpressionStatement()
	}
}

// parseVarStatement handles let/const/var declarations.
// Destructuring declarations are not supported; the name must be a plain
// identifier.
func (p *Parser) parseVarStatement() ast.Statement {
	stmt := &ast.VarStatement{Token: p.curToken, Kind: p.curToken.Literal}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
		if stmt.Value == nil {
			return nil
		}
	}

	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	stmt := &ast.FunctionDeclaration{Token: p.curToken}

	fn := p.parseFunctionLiteral()
	if fn == nil {
		return nil
	}
	lit := fn.(*ast.FunctionLiteral)
	stmt.Function = lit
	stmt.Name = &ast.Identifier{
		Token: token.Token{Type: token.IDENT, Literal: lit.Name, Line: stmt.Token.Line, Column: stmt.Token.Column},
		Value: lit.Name,
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.EOF) {
		p.consumeSemicolon()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	p.consumeSemicolon()
	return stmt
}

// parseBlockStatement parses a sequence of statements inside { }
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	block.Statements = []ast.Statement{}

	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.nextToken()
	}

	return block
}

// parseBodyBlock parses a statement body that may or may not be braced.
// A braceless body wraps its single statement in a synthetic block.
func (p *Parser) parseBodyBlock() *ast.BlockStatement {
	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		return p.parseBlockStatement()
	}

	p.nextToken()
	block := &ast.BlockStatement{Token: p.curToken}
	stmt := p.parseStatement()
	if stmt == nil {
		return nil
	}
	block.Statements = []ast.Statement{stmt}
	return block
}

// parseIfStatement handles: if (test) body else body, with else-if chains
// kept as nested IfStatements.
func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Test = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	stmt.Consequence = p.parseBodyBlock()
	if stmt.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			alt := p.parseIfStatement()
			if alt == nil {
				return nil
			}
			stmt.Alternate = alt
		} else {
			alt := p.parseBodyBlock()
			if alt == nil {
				return nil
			}
			stmt.Alternate = alt
		}
	}

	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Test = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	stmt.Body = p.parseBodyBlock()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	stmt := &ast.DoWhileStatement{Token: p.curToken}

	stmt.Body = p.parseBodyBlock()
	if stmt.Body == nil {
		return nil
	}

	if !p.expectPeek(token.WHILE) {
		return nil
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Test = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.consumeSemicolon()
	return stmt
}

// parseForStatement distinguishes the classic three-part loop from for-in
// and for-of by what follows the loop variable.
func (p *Parser) parseForStatement() ast.Statement {
	forTok := p.curToken

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	// Declared loop variable: for (let x ...)
	if p.peekTokenIs(token.LET) || p.peekTokenIs(token.CONST) || p.peekTokenIs(token.VAR) {
		p.nextToken()
		kindTok := p.curToken
		kind := p.curToken.Literal

		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

		if p.peekTokenIs(token.IN) || p.peekTokenIs(token.OF) {
			return p.parseForInTail(forTok, kind, name)
		}

		init := &ast.VarStatement{Token: kindTok, Kind: kind, Name: name}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			init.Value = p.parseExpression(LOWEST)
			if init.Value == nil {
				return nil
			}
		}
		return p.parseClassicForTail(forTok, init)
	}

	// Empty init: for (; test; update)
	if p.peekTokenIs(token.SEMICOLON) {
		return p.parseClassicForTail(forTok, nil)
	}

	// Bare identifier loop variable: for (x in obj)
	p.nextToken()
	if p.curTokenIs(token.IDENT) && (p.peekTokenIs(token.IN) || p.peekTokenIs(token.OF)) {
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		return p.parseForInTail(forTok, "", name)
	}

	exprTok := p.curToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	return p.parseClassicForTail(forTok, &ast.ExpressionStatement{Token: exprTok, Expression: expr})
}

// parseClassicForTail parses "; test; update) body" after the init clause.
func (p *Parser) parseClassicForTail(forTok token.Token, init ast.Statement) ast.Statement {
	stmt := &ast.ForStatement{Token: forTok, Init: init}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		stmt.Test = p.parseExpression(LOWEST)
		if stmt.Test == nil {
			return nil
		}
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	if !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		stmt.Update = p.parseExpression(LOWEST)
		if stmt.Update == nil {
			return nil
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	stmt.Body = p.parseBodyBlock()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseForInTail parses "in expr) body" / "of expr) body" with curToken on
// the loop variable.
func (p *Parser) parseForInTail(forTok token.Token, kind string, name *ast.Identifier) ast.Statement {
	stmt := &ast.ForInStatement{Token: forTok, Kind: kind, Name: name}

	p.nextToken() // in / of
	stmt.Of = p.curTokenIs(token.OF)

	p.nextToken()
	stmt.Right = p.parseExpression(LOWEST)
	if stmt.Right == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	stmt.Body = p.parseBodyBlock()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	stmt := &ast.SwitchStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Discriminant = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for p.peekTokenIs(token.CASE) || p.peekTokenIs(token.DEFAULT) {
		p.nextToken()
		c := &ast.SwitchCase{Token: p.curToken}

		if p.curTokenIs(token.CASE) {
			p.nextToken()
			c.Test = p.parseExpression(LOWEST)
			if c.Test == nil {
				return nil
			}
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}

		for !p.peekTokenIs(token.CASE) && !p.peekTokenIs(token.DEFAULT) &&
			!p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
			p.nextToken()
			s := p.parseStatement()
			if s != nil {
				c.Body = append(c.Body, s)
			} else {
				p.synchronize()
			}
		}

		stmt.Cases = append(stmt.Cases, c)
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return stmt
}

func (p *Parser) parseTryStatement() ast.Statement {
	stmt := &ast.TryStatement{Token: p.curToken}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Block = p.parseBlockStatement()

	if p.peekTokenIs(token.CATCH) {
		p.nextToken()
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			stmt.CatchParam = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
		}
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		stmt.Handler = p.parseBlockStatement()
	}

	if p.peekTokenIs(token.FINALLY) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		stmt.Finalizer = p.parseBlockStatement()
	}

	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.addError("try statement requires catch or finally", stmt.Token)
		return nil
	}
	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	stmt := &ast.ThrowStatement{Token: p.curToken}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	p.consumeSemicolon()
	return stmt
}

// parseBreakStatement handles break and break label. The label must sit on
// the same line, matching automatic semicolon insertion.
func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Token: p.curToken}

	if p.peekTokenIs(token.IDENT) && p.peekToken.Line == p.curToken.Line {
		p.nextToken()
		stmt.Label = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseContinueStatement() ast.Statement {
	stmt := &ast.ContinueStatement{Token: p.curToken}

	if p.peekTokenIs(token.IDENT) && p.peekToken.Line == p.curToken.Line {
		p.nextToken()
		stmt.Label = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}
	p.consumeSemicolon()
	return stmt
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	stmt := &ast.LabeledStatement{Token: p.curToken}
	stmt.Label = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	p.nextToken() // colon
	p.nextToken()
	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	p.consumeSemicolon()
	return stmt
}

// parseImportStatement carries the whole import line through untouched.
// The inference core never looks inside it.
func (p *Parser) parseImportStatement() ast.Statement {
	stmt := &ast.ImportStatement{Token: p.curToken}
	stmt.Raw = p.collectRawLine()
	return stmt
}

// parseExportStatement strips the export wrapper and parses the declaration
// underneath. Re-export lists (export { a, b }) pass through raw like
// imports do.
func (p *Parser) parseExportStatement() ast.Statement {
	if p.peekTokenIs(token.LBRACE) || p.peekTokenIs(token.ASTERISK) {
		stmt := &ast.ImportStatement{Token: p.curToken}
		stmt.Raw = p.collectRawLine()
		return stmt
	}

	if p.peekTokenIs(token.DEFAULT) {
		p.nextToken()
	}
	p.nextToken()
	return p.parseStatement()
}

// collectRawLine reassembles tokens up to the terminating semicolon (or end
// of line) into source text. String literals get their quotes back.
func (p *Parser) collectRawLine() string {
	startLine := p.curToken.Line
	var parts []string
	for {
		parts = append(parts, renderRawToken(p.curToken))
		if p.curTokenIs(token.SEMICOLON) || p.peekTokenIs(token.EOF) {
			break
		}
		if p.peekToken.Line > startLine {
			break
		}
		p.nextToken()
	}

	raw := strings.Join(parts, " ")
	raw = strings.ReplaceAll(raw, " ,", ",")
	raw = strings.ReplaceAll(raw, " ;", ";")
	if !strings.HasSuffix(raw, ";") {
		raw += ";"
	}
	return raw
}

func renderRawToken(tok token.Token) string {
	switch tok.Type {
	case token.STRING:
		return "'" + tok.Literal + "'"
	case token.TEMPLATE:
		return "`" + tok.Literal + "`"
	default:
		return tok.Literal
	}
}
