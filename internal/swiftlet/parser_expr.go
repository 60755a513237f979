package swiftlet

import (
	"fmt"
	"strconv"
	"unicode"
)

// expression --> primary ( OPERATOR primary )* ;
//
// Returns a nil node without an error when the input is already at EOF.
func (parser *Parser) expression() (Node, error) {
	lhs, err := parser.primary()
	if err != nil || lhs == nil {
		return nil, err
	}
	return parser.binaryOperatorRHS(0, lhs)
}

// primary --> identExpr | NUMBER | "(" expression ")"
//           | function | returnStmt | ifExpr ;
func (parser *Parser) primary() (Node, error) {
	switch tok := parser.cursor.Current(); tok.Typ {
	case IDENT:
		return parser.identifierExpression()
	case INTEGER, FLOAT:
		return parser.number()
	case L_PAREN:
		return parser.paren()
	case FUNC:
		return parser.functionDefinition()
	case RETURN:
		return parser.returnStmt()
	case IF:
		return parser.ifExpr()
	case EOF:
		return nil, nil
	default:
		return nil, NewParseError(UnexpectedToken, tok, "Expect expression.")
	}
}

// binaryOperatorRHS folds "( OPERATOR primary )*" into lhs using precedence
// climbing. Operators binding looser than minPrec are left for the caller.
func (parser *Parser) binaryOperatorRHS(minPrec int, lhs Node) (Node, error) {
	for {
		op, prec, isOp, err := parser.currentOperator()
		if err != nil {
			return nil, err
		}
		if !isOp || prec < minPrec {
			return lhs, nil
		}
		parser.advance() // eat operator

		rhs, err := parser.primary()
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, NewParseError(
				UnexpectedToken,
				parser.cursor.Current(),
				fmt.Sprintf("Expect expression after '%s'.", op),
			)
		}

		// When the operator after rhs binds tighter, rhs becomes its left
		// operand before we close over it.
		_, nextPrec, nextIsOp, err := parser.currentOperator()
		if err != nil {
			return nil, err
		}
		if nextIsOp && prec < nextPrec {
			if rhs, err = parser.binaryOperatorRHS(prec+1, rhs); err != nil {
				return nil, err
			}
		}
		lhs = NewBinaryExpr(op, lhs, rhs)
	}
}

// currentOperator classifies the current token. isOp is false for tokens that
// are not operators at all; operator tokens that can not take part in a binary
// expression are an error.
func (parser *Parser) currentOperator() (op Operator, prec int, isOp bool, err error) {
	tok := parser.cursor.Current()
	if tok.Typ != BINARY_OP {
		return 0, 0, false, nil
	}
	op, known := binaryOperatorOf(tok)
	if !known {
		return 0, 0, false, NewParseError(
			UnknownOperator,
			tok,
			fmt.Sprintf("Unknown operator '%s'.", tok.Lexeme),
		)
	}
	prec, defined := op.precedence()
	if !defined {
		return 0, 0, false, NewParseError(
			UnknownOperator,
			tok,
			fmt.Sprintf("Operator '%s' has no precedence.", op),
		)
	}
	return op, prec, true, nil
}

// number --> INTEGER | FLOAT ;
func (parser *Parser) number() (Node, error) {
	tok := parser.cursor.Current()
	value, ok := numberLiteralOf(tok)
	if !ok {
		return nil, NewParseError(MalformedNumber, tok, "Malformed number literal.")
	}
	parser.advance() // eat literal
	return NewNumberLiteral(value), nil
}

// numberLiteralOf converts a literal token to its value. Only plain decimal
// spellings are accepted, so words like "inf" or "NaN" are rejected.
func numberLiteralOf(tok *Token) (float64, bool) {
	if tok.Typ != INTEGER && tok.Typ != FLOAT {
		return 0, false
	}
	if tok.Lexeme == "" {
		return 0, false
	}
	if first := []rune(tok.Lexeme)[0]; !unicode.IsDigit(first) && first != '.' {
		return 0, false
	}
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// identExpr --> IDENT ( "(" ( expression ( "," expression )* )? ")" )? ;
func (parser *Parser) identifierExpression() (Node, error) {
	name := parser.advance()
	if !parser.match(L_PAREN) {
		return NewVariableRef(name.Lexeme), nil
	}

	var args []Node
	if !parser.check(R_PAREN) {
		for {
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			if arg == nil {
				break
			}
			args = append(args, arg)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	if err := parser.consumeClosing(
		R_PAREN,
		fmt.Sprintf("Expect ')' after arguments to '%s'.", name.Lexeme),
	); err != nil {
		return nil, err
	}
	return NewCallExpr(name.Lexeme, args), nil
}

// "(" expression ")"
func (parser *Parser) paren() (Node, error) {
	parser.advance() // eat (
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, NewParseError(UnterminatedGroup, parser.cursor.Current(), "Expect expression after '('.")
	}
	if err := parser.consumeClosing(R_PAREN, "Expect ')' after expression."); err != nil {
		return nil, err
	}
	return expr, nil
}

// returnStmt --> "return" expression? ;
func (parser *Parser) returnStmt() (Node, error) {
	parser.advance() // eat return
	if !startsExpression(parser.cursor.Current().Typ) {
		return NewReturnStmt(nil), nil
	}
	body, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return NewReturnStmt(body), nil
}

// ifExpr --> "if" expression block "else" ( ifExpr | block ) ;
func (parser *Parser) ifExpr() (Node, error) {
	parser.advance() // eat if
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, NewParseError(UnexpectedToken, parser.cursor.Current(), "Expect condition after 'if'.")
	}
	then, err := parser.block("'if' branch")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(ELSE, "Expect 'else' after 'if' branch."); err != nil {
		return nil, err
	}
	var otherwise Node
	if parser.check(IF) {
		otherwise, err = parser.ifExpr()
	} else {
		otherwise, err = parser.block("'else' branch")
	}
	if err != nil {
		return nil, err
	}
	return NewIfExpr(cond, then, otherwise), nil
}

// block --> "{" expression "}" ;
func (parser *Parser) block(what string) (Node, error) {
	if _, err := parser.consume(L_BRACE, fmt.Sprintf("Expect '{' before %s.", what)); err != nil {
		return nil, err
	}
	body, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, NewParseError(UnterminatedGroup, parser.cursor.Current(), fmt.Sprintf("Expect expression in %s.", what))
	}
	if err := parser.consumeClosing(R_BRACE, fmt.Sprintf("Expect '}' after %s.", what)); err != nil {
		return nil, err
	}
	return body, nil
}

func startsExpression(typ TokenType) bool {
	switch typ {
	case IDENT, INTEGER, FLOAT, L_PAREN, FUNC, RETURN, IF:
		return true
	}
	return false
}
