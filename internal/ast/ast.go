package ast

import (
	"bytes"
	"strconv"
	"strings"

	"js2ts/internal/token"
)

// Node is the base interface for all AST nodes
// Every node must provide a TokenLiteral (for debugging) and String (for printing)
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement nodes don't produce values
// Examples: let x = 5; return 10;
type Statement interface {
	Node
	statementNode() // Dummy method to distinguish statements from expressions
}

// Expression nodes produce values
// Examples: 5, x, add(2, 3), 5 + 3
type Expression interface {
	Node
	expressionNode() // Dummy method to distinguish expressions from statements
}

// Program is the root node of every AST
// It contains a slice of statements (the top-level code)
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String builds the program back into source code (useful for debugging)
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// Identifier represents a variable name
type Identifier struct {
	Token token.Token // The IDENT token
	Value string      // The actual name: "x", "foo"
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// PrivateName represents a class private field reference like #count
type PrivateName struct {
	Token token.Token
	Value string // includes the leading '#'
}

func (pn *PrivateName) expressionNode()      {}
func (pn *PrivateName) TokenLiteral() string { return pn.Token.Literal }
func (pn *PrivateName) String() string       { return pn.Value }

// NumberLiteral represents a number like 5 or 3.14
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string       { return nl.Token.Literal }

// BigIntLiteral represents 123n
type BigIntLiteral struct {
	Token token.Token
	Value string // digits without the trailing 'n'
}

func (bl *BigIntLiteral) expressionNode()      {}
func (bl *BigIntLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BigIntLiteral) String() string       { return bl.Token.Literal }

// StringLiteral represents a string like "hello" or 'hello'
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return strconv.Quote(sl.Value) }

// TemplateLiteral represents `hello ${name}`
// Quasis holds the literal chunks; Expressions the interpolations between them.
type TemplateLiteral struct {
	Token       token.Token
	Quasis      []string
	Expressions []Expression
}

func (tl *TemplateLiteral) expressionNode()      {}
func (tl *TemplateLiteral) TokenLiteral() string { return tl.Token.Literal }
func (tl *TemplateLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("`")
	for i, q := range tl.Quasis {
		out.WriteString(q)
		if i < len(tl.Expressions) {
			out.WriteString("${")
			out.WriteString(tl.Expressions[i].String())
			out.WriteString("}")
		}
	}
	out.WriteString("`")
	return out.String()
}

// BooleanLiteral represents true or false
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }

// NullLiteral represents null.
type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) expressionNode()      {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NullLiteral) String() string       { return "null" }

// RegexLiteral represents /ab+c/gi
type RegexLiteral struct {
	Token   token.Token
	Pattern string
	Flags   string
}

func (rl *RegexLiteral) expressionNode()      {}
func (rl *RegexLiteral) TokenLiteral() string { return rl.Token.Literal }
func (rl *RegexLiteral) String() string       { return "/" + rl.Pattern + "/" + rl.Flags }

// SpreadElement represents ...expr inside array literals and call arguments
type SpreadElement struct {
	Token    token.Token
	Argument Expression
}

func (se *SpreadElement) expressionNode()      {}
func (se *SpreadElement) TokenLiteral() string { return se.Token.Literal }
func (se *SpreadElement) String() string       { return "..." + se.Argument.String() }

// ArrayLiteral represents [expr1, expr2, ...]
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	elems := make([]string, 0, len(al.Elements))
	for _, e := range al.Elements {
		elems = append(elems, e.String())
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// ObjectProperty is one member of an object literal.
// Exactly one of the flags describes its form:
//   - Spread: {...rest} (Value holds the spread argument, Key is nil)
//   - Computed: {[expr]: v} (Key is the bracketed expression)
//   - Method: {fn() {...}} shorthand (Value is a *FunctionLiteral)
//   - Shorthand: {x} (Key and Value are the same identifier)
type ObjectProperty struct {
	Token     token.Token
	Key       Expression
	Value     Expression
	Computed  bool
	Shorthand bool
	Method    bool
	Spread    bool
}

func (op *ObjectProperty) String() string {
	switch {
	case op.Spread:
		return "..." + op.Value.String()
	case op.Method:
		return op.Key.String() + op.Value.String()
	case op.Computed:
		return "[" + op.Key.String() + "]: " + op.Value.String()
	case op.Shorthand:
		return op.Key.String()
	default:
		return op.Key.String() + ": " + op.Value.String()
	}
}

// ObjectLiteral represents { a: 1, b: 2 }
type ObjectLiteral struct {
	Token      token.Token
	Properties []*ObjectProperty
}

func (ol *ObjectLiteral) expressionNode()      {}
func (ol *ObjectLiteral) TokenLiteral() string { return ol.Token.Literal }
func (ol *ObjectLiteral) String() string {
	props := make([]string, 0, len(ol.Properties))
	for _, p := range ol.Properties {
		props = append(props, p.String())
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

// UnaryExpression represents !x, -x, typeof x, void x, delete x.prop
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) String() string {
	op := ue.Operator
	if len(op) > 1 {
		op += " " // keyword operators need a separating space
	}
	return "(" + op + ue.Operand.String() + ")"
}

// BinaryExpression represents a + b, a === b, a instanceof b
type BinaryExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) String() string {
	return "(" + be.Left.String() + " " + be.Operator + " " + be.Right.String() + ")"
}

// LogicalExpression represents a && b, a || b, a ?? b
type LogicalExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (le *LogicalExpression) expressionNode()      {}
func (le *LogicalExpression) TokenLiteral() string { return le.Token.Literal }
func (le *LogicalExpression) String() string {
	return "(" + le.Left.String() + " " + le.Operator + " " + le.Right.String() + ")"
}

// AssignmentExpression represents x = v and the compound forms x += v.
// Operator keeps the full token text ("=", "+=", ...).
type AssignmentExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (ae *AssignmentExpression) expressionNode()      {}
func (ae *AssignmentExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AssignmentExpression) String() string {
	return ae.Left.String() + " " + ae.Operator + " " + ae.Right.String()
}

// UpdateExpression represents i++ and --i.
type UpdateExpression struct {
	Token    token.Token
	Operator string // "++" or "--"
	Operand  Expression
	Prefix   bool
}

func (ue *UpdateExpression) expressionNode()      {}
func (ue *UpdateExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UpdateExpression) String() string {
	if ue.Prefix {
		return ue.Operator + ue.Operand.String()
	}
	return ue.Operand.String() + ue.Operator
}

// ConditionalExpression represents test ? consequent : alternate
type ConditionalExpression struct {
	Token      token.Token
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (ce *ConditionalExpression) expressionNode()      {}
func (ce *ConditionalExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *ConditionalExpression) String() string {
	return "(" + ce.Test.String() + " ? " + ce.Consequent.String() + " : " + ce.Alternate.String() + ")"
}

// CallExpression represents fn(args) and obj.method(args)
type CallExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return ce.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// MemberExpression represents obj.prop and obj[expr]
type MemberExpression struct {
	Token    token.Token
	Object   Expression
	Property Expression
	Computed bool // true for bracket notation
}

func (me *MemberExpression) expressionNode()      {}
func (me *MemberExpression) TokenLiteral() string { return me.Token.Literal }
func (me *MemberExpression) String() string {
	if me.Computed {
		return me.Object.String() + "[" + me.Property.String() + "]"
	}
	return me.Object.String() + "." + me.Property.String()
}

// NewExpression represents new Ctor(args)
type NewExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
}

func (ne *NewExpression) expressionNode()      {}
func (ne *NewExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NewExpression) String() string {
	args := make([]string, 0, len(ne.Arguments))
	for _, a := range ne.Arguments {
		args = append(args, a.String())
	}
	return "new " + ne.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Parameter is one formal parameter of a function.
// Name is the bound identifier for plain, default-valued and rest parameters;
// it is nil for destructuring patterns, which the inferrer treats as opaque.
type Parameter struct {
	Token   token.Token
	Name    *Identifier
	Default Expression // non-nil for  x = expr  parameters
	Rest    bool       // ...args
	Array   bool       // [a, b] destructuring
	Object  bool       // {a, b} destructuring
}

func (p *Parameter) String() string {
	switch {
	case p.Rest:
		return "..." + p.Name.Value
	case p.Array:
		return "[...]"
	case p.Object:
		return "{...}"
	case p.Default != nil:
		return p.Name.Value + " = " + p.Default.String()
	default:
		return p.Name.Value
	}
}

// FunctionLiteral represents function declarations, function expressions and
// arrow functions. Exactly one of Body (statement block) or ExprBody
// (single-expression arrow body) is set.
type FunctionLiteral struct {
	Token    token.Token
	Name     string // empty for anonymous functions
	Params   []*Parameter
	Body     *BlockStatement
	ExprBody Expression
	Arrow    bool
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) String() string {
	params := make([]string, 0, len(fl.Params))
	for _, p := range fl.Params {
		params = append(params, p.String())
	}
	sig := "(" + strings.Join(params, ", ") + ")"
	if fl.Arrow {
		if fl.ExprBody != nil {
			return sig + " => " + fl.ExprBody.String()
		}
		return sig + " => " + fl.Body.String()
	}
	return "function " + fl.Name + sig + " " + fl.Body.String()
}

// --- Statements ---

// VarStatement represents let/const/var declarations
type VarStatement struct {
	Token token.Token // LET, CONST or VAR
	Kind  string      // "let", "const", "var"
	Name  *Identifier
	Value Expression // nil for bare declarations: let x;
}

func (vs *VarStatement) statementNode()       {}
func (vs *VarStatement) TokenLiteral() string { return vs.Token.Literal }
func (vs *VarStatement) String() string {
	var out bytes.Buffer
	out.WriteString(vs.Kind + " " + vs.Name.String())
	if vs.Value != nil {
		out.WriteString(" = " + vs.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ExpressionStatement wraps an expression used as a statement
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String() + ";"
	}
	return ";"
}

// ReturnStatement represents return; and return expr;
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil for a bare return
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "return " + rs.Value.String() + ";"
	}
	return "return;"
}

// BlockStatement is { stmt; stmt; }
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String() + " ")
	}
	out.WriteString("}")
	return out.String()
}

// IfStatement represents if (test) {...} else {...}
// Alternate may be another IfStatement (else-if chains) or a BlockStatement.
type IfStatement struct {
	Token       token.Token
	Test        Expression
	Consequence *BlockStatement
	Alternate   Statement // nil when there is no else
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	out := "if (" + is.Test.String() + ") " + is.Consequence.String()
	if is.Alternate != nil {
		out += " else " + is.Alternate.String()
	}
	return out
}

// WhileStatement represents while (test) {...}
type WhileStatement struct {
	Token token.Token
	Test  Expression
	Body  *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Test.String() + ") " + ws.Body.String()
}

// DoWhileStatement represents do {...} while (test);
type DoWhileStatement struct {
	Token token.Token
	Body  *BlockStatement
	Test  Expression
}

func (dw *DoWhileStatement) statementNode()       {}
func (dw *DoWhileStatement) TokenLiteral() string { return dw.Token.Literal }
func (dw *DoWhileStatement) String() string {
	return "do " + dw.Body.String() + " while (" + dw.Test.String() + ");"
}

// ForStatement represents the classic three-part for loop
type ForStatement struct {
	Token  token.Token
	Init   Statement  // nil when omitted
	Test   Expression // nil when omitted
	Update Expression // nil when omitted
	Body   *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if fs.Init != nil {
		out.WriteString(fs.Init.String())
	} else {
		out.WriteString(";")
	}
	if fs.Test != nil {
		out.WriteString(" " + fs.Test.String())
	}
	out.WriteString(";")
	if fs.Update != nil {
		out.WriteString(" " + fs.Update.String())
	}
	out.WriteString(") " + fs.Body.String())
	return out.String()
}

// ForInStatement covers both for-in and for-of loops
type ForInStatement struct {
	Token token.Token
	Kind  string // "let", "const", "var" or "" for bare identifiers
	Name  *Identifier
	Of    bool // true for for-of
	Right Expression
	Body  *BlockStatement
}

func (fi *ForInStatement) statementNode()       {}
func (fi *ForInStatement) TokenLiteral() string { return fi.Token.Literal }
func (fi *ForInStatement) String() string {
	word := "in"
	if fi.Of {
		word = "of"
	}
	decl := fi.Name.String()
	if fi.Kind != "" {
		decl = fi.Kind + " " + decl
	}
	return "for (" + decl + " " + word + " " + fi.Right.String() + ") " + fi.Body.String()
}

// SwitchCase is one case (or default) arm of a switch statement
type SwitchCase struct {
	Token token.Token
	Test  Expression // nil for default
	Body  []Statement
}

func (sc *SwitchCase) String() string {
	var out bytes.Buffer
	if sc.Test != nil {
		out.WriteString("case " + sc.Test.String() + ": ")
	} else {
		out.WriteString("default: ")
	}
	for _, s := range sc.Body {
		out.WriteString(s.String() + " ")
	}
	return out.String()
}

// SwitchStatement represents switch (expr) { case ...: ... }
type SwitchStatement struct {
	Token        token.Token
	Discriminant Expression
	Cases        []*SwitchCase
}

func (ss *SwitchStatement) statementNode()       {}
func (ss *SwitchStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *SwitchStatement) String() string {
	var out bytes.Buffer
	out.WriteString("switch (" + ss.Discriminant.String() + ") { ")
	for _, c := range ss.Cases {
		out.WriteString(c.String())
	}
	out.WriteString("}")
	return out.String()
}

// TryStatement represents try/catch/finally
type TryStatement struct {
	Token      token.Token
	Block      *BlockStatement
	CatchParam *Identifier     // nil for parameterless catch
	Handler    *BlockStatement // nil when there is no catch
	Finalizer  *BlockStatement // nil when there is no finally
}

func (ts *TryStatement) statementNode()       {}
func (ts *TryStatement) TokenLiteral() string { return ts.Token.Literal }
func (ts *TryStatement) String() string {
	out := "try " + ts.Block.String()
	if ts.Handler != nil {
		out += " catch"
		if ts.CatchParam != nil {
			out += " (" + ts.CatchParam.String() + ")"
		}
		out += " " + ts.Handler.String()
	}
	if ts.Finalizer != nil {
		out += " finally " + ts.Finalizer.String()
	}
	return out
}

// ThrowStatement represents throw expr;
type ThrowStatement struct {
	Token token.Token
	Value Expression
}

func (ts *ThrowStatement) statementNode()       {}
func (ts *ThrowStatement) TokenLiteral() string { return ts.Token.Literal }
func (ts *ThrowStatement) String() string       { return "throw " + ts.Value.String() + ";" }

// LabeledStatement represents label: stmt
type LabeledStatement struct {
	Token token.Token
	Label *Identifier
	Body  Statement
}

func (ls *LabeledStatement) statementNode()       {}
func (ls *LabeledStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LabeledStatement) String() string       { return ls.Label.String() + ": " + ls.Body.String() }

// BreakStatement represents break;
type BreakStatement struct {
	Token token.Token
	Label *Identifier // nil without a label
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) String() string {
	if bs.Label != nil {
		return "break " + bs.Label.String() + ";"
	}
	return "break;"
}

// ContinueStatement represents continue;
type ContinueStatement struct {
	Token token.Token
	Label *Identifier
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) String() string {
	if cs.Label != nil {
		return "continue " + cs.Label.String() + ";"
	}
	return "continue;"
}

// FunctionDeclaration wraps a named FunctionLiteral used in statement position
type FunctionDeclaration struct {
	Token    token.Token
	Name     *Identifier
	Function *FunctionLiteral
}

func (fd *FunctionDeclaration) statementNode()       {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDeclaration) String() string       { return fd.Function.String() }

// ImportStatement carries an import (or re-export list) line through
// untouched. The inference core never inspects it; the emitter reprints Raw
// verbatim.
type ImportStatement struct {
	Token token.Token
	Raw   string
}

func (is *ImportStatement) statementNode()       {}
func (is *ImportStatement) TokenLiteral() string { return is.Token.Literal }
func (is *ImportStatement) String() string       { return is.Raw }
