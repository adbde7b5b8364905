package ast

import (
	"testing"

	"js2ts/internal/token"
)

func tok(tt token.TokenType, lit string) token.Token { return token.Token{Type: tt, Literal: lit} }

func TestProgramAndNodeStrings(t *testing.T) {
	idX := &Identifier{Token: tok(token.IDENT, "x"), Value: "x"}
	idY := &Identifier{Token: tok(token.IDENT, "y"), Value: "y"}
	num := &NumberLiteral{Token: tok(token.NUMBER, "1"), Value: 1}
	str := &StringLiteral{Token: tok(token.STRING, "hello"), Value: "hello"}
	null := &NullLiteral{Token: tok(token.NULL, "null")}
	big := &BigIntLiteral{Token: tok(token.BIGINT, "9n"), Value: "9"}
	re := &RegexLiteral{Token: tok(token.REGEX, "/a/g"), Pattern: "a", Flags: "g"}
	priv := &PrivateName{Token: tok(token.PRIVATE, "#c"), Value: "#c"}
	tmpl := &TemplateLiteral{Token: tok(token.TEMPLATE, "hi ${x}"), Quasis: []string{"hi ", ""}, Expressions: []Expression{idX}}
	arr := &ArrayLiteral{Token: tok(token.LBRACKET, "["), Elements: []Expression{num, &SpreadElement{Token: tok(token.SPREAD, "..."), Argument: idY}}}
	obj := &ObjectLiteral{Token: tok(token.LBRACE, "{"), Properties: []*ObjectProperty{
		{Token: tok(token.IDENT, "a"), Key: &Identifier{Token: tok(token.IDENT, "a"), Value: "a"}, Value: num},
		{Token: tok(token.SPREAD, "..."), Value: idY, Spread: true},
	}}
	un := &UnaryExpression{Token: tok(token.TYPEOF, "typeof"), Operator: "typeof", Operand: idX}
	bin := &BinaryExpression{Token: tok(token.PLUS, "+"), Operator: "+", Left: idX, Right: num}
	log := &LogicalExpression{Token: tok(token.AND, "&&"), Operator: "&&", Left: idX, Right: idY}
	cond := &ConditionalExpression{Token: tok(token.QUESTION, "?"), Test: idX, Consequent: num, Alternate: str}
	mem := &MemberExpression{Token: tok(token.DOT, "."), Object: idX, Property: idY}
	idxm := &MemberExpression{Token: tok(token.LBRACKET, "["), Object: idX, Property: num, Computed: true}
	call := &CallExpression{Token: tok(token.LPAREN, "("), Callee: mem, Arguments: []Expression{num}}
	nw := &NewExpression{Token: tok(token.NEW, "new"), Callee: idY, Arguments: []Expression{num}}

	blk := &BlockStatement{Token: tok(token.LBRACE, "{"), Statements: []Statement{
		&ReturnStatement{Token: tok(token.RETURN, "return"), Value: bin},
	}}
	fn := &FunctionLiteral{Token: tok(token.FUNCTION, "function"), Name: "f",
		Params: []*Parameter{
			{Name: idX},
			{Name: idY, Default: num},
			{Name: &Identifier{Token: tok(token.IDENT, "rest"), Value: "rest"}, Rest: true},
		},
		Body: blk,
	}
	arrow := &FunctionLiteral{Token: tok(token.LPAREN, "("), Params: []*Parameter{{Name: idX}}, ExprBody: bin, Arrow: true}

	stmts := []Statement{
		&ImportStatement{Token: tok(token.IMPORT, "import"), Raw: `import fs from "fs";`},
		&VarStatement{Token: tok(token.LET, "let"), Kind: "let", Name: idX, Value: num},
		&VarStatement{Token: tok(token.CONST, "const"), Kind: "const", Name: idY, Value: obj},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: cond},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: log},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: un},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: call},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: nw},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: arr},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: tmpl},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: re},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: big},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: priv},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: null},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: idxm},
		&ExpressionStatement{Token: tok(token.IDENT, "x"), Expression: arrow},
		&IfStatement{Token: tok(token.IF, "if"), Test: idX, Consequence: blk, Alternate: blk},
		&WhileStatement{Token: tok(token.WHILE, "while"), Test: idX, Body: blk},
		&DoWhileStatement{Token: tok(token.DO, "do"), Body: blk, Test: idX},
		&ForStatement{Token: tok(token.FOR, "for"), Init: &VarStatement{Token: tok(token.LET, "let"), Kind: "let", Name: idX, Value: num}, Test: bin, Update: bin, Body: blk},
		&ForInStatement{Token: tok(token.FOR, "for"), Kind: "const", Name: idX, Of: true, Right: idY, Body: blk},
		&SwitchStatement{Token: tok(token.SWITCH, "switch"), Discriminant: idX, Cases: []*SwitchCase{
			{Token: tok(token.CASE, "case"), Test: num, Body: []Statement{blk}},
			{Token: tok(token.DEFAULT, "default"), Body: []Statement{blk}},
		}},
		&TryStatement{Token: tok(token.TRY, "try"), Block: blk, CatchParam: idY, Handler: blk, Finalizer: blk},
		&ThrowStatement{Token: tok(token.THROW, "throw"), Value: str},
		&LabeledStatement{Token: tok(token.IDENT, "outer"), Label: &Identifier{Token: tok(token.IDENT, "outer"), Value: "outer"}, Body: blk},
		&BreakStatement{Token: tok(token.BREAK, "break")},
		&ContinueStatement{Token: tok(token.CONTINUE, "continue")},
		&FunctionDeclaration{Token: tok(token.FUNCTION, "function"), Name: &Identifier{Token: tok(token.IDENT, "f"), Value: "f"}, Function: fn},
		blk,
	}
	prog := &Program{Statements: stmts}

	if prog.TokenLiteral() == "" || prog.String() == "" {
		t.Fatalf("program stringify/token literal empty")
	}
	for _, s := range stmts {
		if s.String() == "" {
			t.Fatalf("empty String() for %T", s)
		}
	}
}

func TestStringRendering(t *testing.T) {
	idX := &Identifier{Token: tok(token.IDENT, "x"), Value: "x"}
	num := &NumberLiteral{Token: tok(token.NUMBER, "2"), Value: 2}
	bin := &BinaryExpression{Token: tok(token.ASTERISK, "*"), Operator: "*", Left: idX, Right: num}
	if got := bin.String(); got != "(x * 2)" {
		t.Fatalf("binary String()=%q", got)
	}
	un := &UnaryExpression{Token: tok(token.TYPEOF, "typeof"), Operator: "typeof", Operand: idX}
	if got := un.String(); got != "(typeof x)" {
		t.Fatalf("unary String()=%q", got)
	}
	mem := &MemberExpression{Token: tok(token.LBRACKET, "["), Object: idX, Property: num, Computed: true}
	if got := mem.String(); got != "x[2]" {
		t.Fatalf("member String()=%q", got)
	}
}
