package swiftlet

import "errors"

// Parser composes the syntax tree from a sequence of tokens that follow the
// grammar described in the package documentation. A parser holds all of its
// state, independent parsers can run side by side.
type Parser struct {
	cursor   *Cursor
	reporter Reporter
}

// NewParser creates a new parser over the given tokens
func NewParser(tokens []*Token, reporter Reporter) *Parser {
	return &Parser{NewCursor(tokens), reporter}
}

// Parse returns the top-level nodes of the program in source order. A bare
// expression at the top level is wrapped in a function named "main".
//
// A failing top-level item is reported, then the parser skips ahead to the
// next "func" keyword and keeps going so that later errors are found too. If
// anything failed, no nodes are returned and the error joins every
// *ParseError that was reported.
func (parser *Parser) Parse() ([]Node, error) {
	var (
		nodes []Node
		errs  []error
	)
	parser.cursor.Read()
	for !parser.cursor.AtEOF() {
		start := parser.cursor.next
		var (
			node Node
			err  error
		)
		if parser.check(FUNC) {
			node, err = parser.functionDefinition()
		} else {
			node, err = parser.topLevelExpression()
		}
		if err != nil {
			parser.reporter.Report(err)
			errs = append(errs, err)
			parser.sync(start)
			continue
		}
		nodes = append(nodes, node)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nodes, nil
}

// topLevelExpression --> expression ;
func (parser *Parser) topLevelExpression() (Node, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, NewParseError(UnexpectedToken, parser.cursor.Current(), "Expect expression.")
	}
	return NewFunctionDef("main", nil, TypeInt, expr), nil
}

// sync discards tokens until the start of the next function definition. The
// item that failed is never resumed, even when it began with "func".
func (parser *Parser) sync(start int) {
	for !parser.cursor.AtEOF() {
		if parser.check(FUNC) && parser.cursor.next != start {
			return
		}
		parser.cursor.Read()
	}
}

func (parser *Parser) match(typ TokenType) bool {
	if parser.check(typ) {
		parser.advance()
		return true
	}
	return false
}

// consume eats a token of the given type or fails with UnexpectedToken.
func (parser *Parser) consume(typ TokenType, message string) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, NewParseError(UnexpectedToken, parser.cursor.Current(), message)
}

// consumeClosing eats the delimiter that ends a group. Running out of input
// first is an UnterminatedGroup, any other token in its place is an
// UnexpectedToken.
func (parser *Parser) consumeClosing(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	kind := UnexpectedToken
	if parser.cursor.AtEOF() {
		kind = UnterminatedGroup
	}
	return NewParseError(kind, parser.cursor.Current(), message)
}

func (parser *Parser) check(typ TokenType) bool {
	return parser.cursor.Current().Typ == typ
}

// advance returns the current token and moves on to the next one. It stays
// on EOF.
func (parser *Parser) advance() *Token {
	tok := parser.cursor.Current()
	if !parser.cursor.AtEOF() {
		parser.cursor.Read()
	}
	return tok
}
