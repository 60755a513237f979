package swiftlet

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ    TokenType
	Lexeme string
	Line   int
	Column int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, line, column int) *Token {
	return &Token{typ, lexeme, line, column}
}

func (t *Token) String() string {
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.Typ, t.Lexeme)
}

// KeywordTokens maps reserved words to their token type.
var KeywordTokens = map[string]TokenType{
	"func":   FUNC,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
}

// TokenType is the closed set of token kinds produced by the scanner.
type TokenType uint

const (
	// Delimiters
	L_PAREN TokenType = iota
	R_PAREN
	L_BRACE
	R_BRACE
	COLON
	COMMA
	ARROW

	// Operators are kept as raw text and classified by the parser
	BINARY_OP

	// Literals
	IDENT
	INTEGER
	FLOAT

	// Keywords
	FUNC
	RETURN
	IF
	ELSE

	EOF
)

func (tt TokenType) String() string {
	switch tt {
	case L_PAREN:
		return "("
	case R_PAREN:
		return ")"
	case L_BRACE:
		return "{"
	case R_BRACE:
		return "}"
	case COLON:
		return ":"
	case COMMA:
		return ","
	case ARROW:
		return "->"
	case BINARY_OP:
		return "OPERATOR"
	case IDENT:
		return "IDENTIFIER"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case FUNC:
		return "FUNC"
	case RETURN:
		return "RETURN"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case EOF:
		return "EOF"
	}
	return fmt.Sprintf("TokenType(%d)", uint(tt))
}
