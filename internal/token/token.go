package token

// TokenType is a string alias for token types
// Using string makes debugging easier (we can print "ARROW" instead of a number)
type TokenType string

// Token holds the type, the literal text, and where it was found.
// Line and Column are 1-based and feed diagnostic positions.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// Token constants - the vocabulary of the JavaScript subset we read
const (
	// Special
	ILLEGAL TokenType = "ILLEGAL" // Unknown/invalid character
	EOF     TokenType = "EOF"     // End of file, tells parser we're done

	// Identifiers and literals
	IDENT    TokenType = "IDENT"    // Variable names: x, y, foo
	PRIVATE  TokenType = "PRIVATE"  // Private class field names: #count
	NUMBER   TokenType = "NUMBER"   // 1, 3.14, 0xff, 1e9
	BIGINT   TokenType = "BIGINT"   // 123n
	STRING   TokenType = "STRING"   // "hello", 'hello'
	TEMPLATE TokenType = "TEMPLATE" // `hello ${name}`
	REGEX    TokenType = "REGEX"    // /ab+c/gi

	// Operators
	ASSIGN        TokenType = "="
	PLUS          TokenType = "+"
	MINUS         TokenType = "-"
	BANG          TokenType = "!"
	ASTERISK      TokenType = "*"
	POWER         TokenType = "**"
	SLASH         TokenType = "/"
	PERCENT       TokenType = "%"
	TILDE         TokenType = "~"
	LT            TokenType = "<"
	GT            TokenType = ">"
	LT_EQ         TokenType = "<="
	GT_EQ         TokenType = ">="
	EQ            TokenType = "=="
	NOT_EQ        TokenType = "!="
	STRICT_EQ     TokenType = "==="
	STRICT_NOT_EQ TokenType = "!=="
	AND           TokenType = "&&"
	OR            TokenType = "||"
	NULLISH       TokenType = "??"
	BIT_AND       TokenType = "&"
	BIT_OR        TokenType = "|"
	BIT_XOR       TokenType = "^"
	SHL           TokenType = "<<"
	SHR           TokenType = ">>"
	USHR          TokenType = ">>>"
	ARROW         TokenType = "=>"
	SPREAD        TokenType = "..."
	OPT_CHAIN     TokenType = "?."
	INC           TokenType = "++"
	DEC           TokenType = "--"
	PLUS_EQ       TokenType = "+="
	MINUS_EQ      TokenType = "-="
	MUL_EQ        TokenType = "*="
	DIV_EQ        TokenType = "/="
	MOD_EQ        TokenType = "%="

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	QUESTION  TokenType = "?"
	DOT       TokenType = "."
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Keywords
	FUNCTION   TokenType = "FUNCTION"
	LET        TokenType = "LET"
	CONST      TokenType = "CONST"
	VAR        TokenType = "VAR"
	TRUE       TokenType = "TRUE"
	FALSE      TokenType = "FALSE"
	IF         TokenType = "IF"
	ELSE       TokenType = "ELSE"
	RETURN     TokenType = "RETURN"
	NULL       TokenType = "NULL"
	WHILE      TokenType = "WHILE"
	DO         TokenType = "DO"
	FOR        TokenType = "FOR"
	IN         TokenType = "IN"
	OF         TokenType = "OF"
	SWITCH     TokenType = "SWITCH"
	CASE       TokenType = "CASE"
	DEFAULT    TokenType = "DEFAULT"
	BREAK      TokenType = "BREAK"
	CONTINUE   TokenType = "CONTINUE"
	TRY        TokenType = "TRY"
	CATCH      TokenType = "CATCH"
	FINALLY    TokenType = "FINALLY"
	THROW      TokenType = "THROW"
	TYPEOF     TokenType = "TYPEOF"
	VOID       TokenType = "VOID"
	DELETE     TokenType = "DELETE"
	NEW        TokenType = "NEW"
	INSTANCEOF TokenType = "INSTANCEOF"
	IMPORT     TokenType = "IMPORT"
	EXPORT     TokenType = "EXPORT"
	FROM       TokenType = "FROM"
)

// keywords maps string identifiers to their token type
// This lets us distinguish between "let" (keyword) and "x" (identifier)
var keywords = map[string]TokenType{
	"function":   FUNCTION,
	"let":        LET,
	"const":      CONST,
	"var":        VAR,
	"true":       TRUE,
	"false":      FALSE,
	"if":         IF,
	"else":       ELSE,
	"return":     RETURN,
	"null":       NULL,
	"while":      WHILE,
	"do":         DO,
	"for":        FOR,
	"in":         IN,
	"of":         OF,
	"switch":     SWITCH,
	"case":       CASE,
	"default":    DEFAULT,
	"break":      BREAK,
	"continue":   CONTINUE,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
	"throw":      THROW,
	"typeof":     TYPEOF,
	"void":       VOID,
	"delete":     DELETE,
	"new":        NEW,
	"instanceof": INSTANCEOF,
	"import":     IMPORT,
	"export":     EXPORT,
	"from":       FROM,
}

// LookupIdent checks if an identifier is a keyword
// If "let" is in keywords map, returns LET token type
// Otherwise returns IDENT (it's a variable name)
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
