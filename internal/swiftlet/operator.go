package swiftlet

import "fmt"

// Operator is a binary operator of the language.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpLess
)

var operatorSymbols = map[string]Operator{
	"+": OpAdd,
	"-": OpSub,
	"*": OpMul,
	"/": OpDiv,
	"<": OpLess,
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpLess:
		return "<"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// precedence returns the binding power of op. Less-than is reserved but has
// no precedence yet, so it reports false.
func (op Operator) precedence() (int, bool) {
	switch op {
	case OpAdd, OpSub:
		return 20, true
	case OpMul, OpDiv:
		return 40, true
	}
	return 0, false
}

// binaryOperatorOf classifies tok. It reports false for anything that is not
// an operator token with a known spelling.
func binaryOperatorOf(tok *Token) (Operator, bool) {
	if tok.Typ != BINARY_OP {
		return 0, false
	}
	op, ok := operatorSymbols[tok.Lexeme]
	return op, ok
}

// Type is a value type that can be named in a declaration.
type Type int

const (
	TypeInt Type = iota
	TypeDouble
)

var typeNames = map[string]Type{
	"Int":    TypeInt,
	"Double": TypeDouble,
}

func (typ Type) String() string {
	switch typ {
	case TypeInt:
		return "Int"
	case TypeDouble:
		return "Double"
	}
	return fmt.Sprintf("Type(%d)", int(typ))
}

func typeNamed(name string) (Type, bool) {
	typ, ok := typeNames[name]
	return typ, ok
}
