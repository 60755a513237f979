package swiftlet

import (
	"errors"
	"fmt"
)

// ScanError is reported when the scanner meets a character sequence that can
// not be turned into a token.
type ScanError struct {
	line    int
	column  int
	message string
}

// NewScanError creates a new scanning error
func NewScanError(line, column int, message string) error {
	return &ScanError{line, column, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[line %d:%d] Error: %s", err.line, err.column, err.message)
}

// ErrorKind classifies a syntax error.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota + 1
	UnknownOperator
	UnknownType
	MalformedNumber
	UnterminatedGroup
)

// Sentinels matched by ParseError.Is, so callers can write
// errors.Is(err, ErrUnterminatedGroup).
var (
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrUnknownOperator   = errors.New("unknown operator")
	ErrUnknownType       = errors.New("unknown type")
	ErrMalformedNumber   = errors.New("malformed number")
	ErrUnterminatedGroup = errors.New("unterminated group")
)

func (kind ErrorKind) sentinel() error {
	switch kind {
	case UnexpectedToken:
		return ErrUnexpectedToken
	case UnknownOperator:
		return ErrUnknownOperator
	case UnknownType:
		return ErrUnknownType
	case MalformedNumber:
		return ErrMalformedNumber
	case UnterminatedGroup:
		return ErrUnterminatedGroup
	}
	return nil
}

func (kind ErrorKind) String() string {
	if err := kind.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

// ParseError wraps the error message returned by the parser with the token
// where the error occurred.
type ParseError struct {
	Kind    ErrorKind
	Token   *Token
	message string
}

// NewParseError creates a new parse error
func NewParseError(kind ErrorKind, token *Token, message string) error {
	return &ParseError{kind, token, message}
}

func (err *ParseError) Error() string {
	if err.Token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d:%d] Error at end: %s",
			err.Token.Line,
			err.Token.Column,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d:%d] Error at '%s': %s",
		err.Token.Line,
		err.Token.Column,
		err.Token.Lexeme,
		err.message,
	)
}

// Is reports whether target is the sentinel of the error's kind.
func (err *ParseError) Is(target error) bool {
	return target != nil && target == err.Kind.sentinel()
}

// ResolveError is reported by the resolver when a name can not be bound.
type ResolveError struct {
	function string
	message  string
}

// NewResolveError creates a new resolving error for code inside the given
// function
func NewResolveError(function, message string) error {
	return &ResolveError{function, message}
}

func (err *ResolveError) Error() string {
	return fmt.Sprintf("[func %s] Error: %s", err.function, err.message)
}

// RuntimeError is returned by the interpreter when evaluation fails.
type RuntimeError struct {
	function string
	message  string
}

// NewRuntimeError creates a new runtime error for code inside the given
// function
func NewRuntimeError(function, message string) error {
	return &RuntimeError{function, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("[func %s] Runtime error: %s", err.function, err.message)
}
