package swiftlet

import "fmt"

// function --> "func" IDENT "(" params? ")" "->" TYPE block ;
func (parser *Parser) functionDefinition() (Node, error) {
	if _, err := parser.consume(FUNC, "Expect 'func'."); err != nil {
		return nil, err
	}
	name, err := parser.consume(IDENT, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(L_PAREN, "Expect '(' after function name."); err != nil {
		return nil, err
	}
	args, err := parser.parameters()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(ARROW, "Expect '->' after parameters."); err != nil {
		return nil, err
	}
	returnType, err := parser.typeAnnotation("Expect return type after '->'.")
	if err != nil {
		return nil, err
	}
	body, err := parser.block("function body")
	if err != nil {
		return nil, err
	}
	return NewFunctionDef(name.Lexeme, args, returnType, body), nil
}

// params --> param ( "," param )* ;
//
// The opening parenthesis has already been consumed, the closing one is
// consumed here.
func (parser *Parser) parameters() ([]Argument, error) {
	var args []Argument
	if !parser.check(R_PAREN) {
		for {
			arg, err := parser.parameter()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	if err := parser.consumeClosing(R_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	return args, nil
}

// param --> IDENT IDENT? ":" TYPE ;
//
// Two identifiers in a row are an argument label followed by the name.
func (parser *Parser) parameter() (Argument, error) {
	var label *Token
	if parser.check(IDENT) && parser.cursor.Peek(1).Typ == IDENT {
		label = parser.advance()
	}
	name, err := parser.consume(IDENT, "Expect parameter name.")
	if err != nil {
		return Argument{}, err
	}
	if label == nil {
		label = name
	}
	if _, err := parser.consume(COLON, "Expect ':' after parameter name."); err != nil {
		return Argument{}, err
	}
	typ, err := parser.typeAnnotation("Expect parameter type after ':'.")
	if err != nil {
		return Argument{}, err
	}
	return Argument{Label: label.Lexeme, Name: name.Lexeme, Type: typ}, nil
}

func (parser *Parser) typeAnnotation(message string) (Type, error) {
	tok, err := parser.consume(IDENT, message)
	if err != nil {
		return 0, err
	}
	typ, ok := typeNamed(tok.Lexeme)
	if !ok {
		return 0, NewParseError(UnknownType, tok, fmt.Sprintf("Unknown type '%s'.", tok.Lexeme))
	}
	return typ, nil
}
