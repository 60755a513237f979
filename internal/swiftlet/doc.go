/*
Package swiftlet implements the front end and a small evaluator for a
Swift-flavoured toy language.

Grammars

	program    --> ( function | expression )* EOF ;
	function   --> "func" IDENT "(" params? ")" "->" TYPE block ;
	params     --> param ( "," param )* ;
	param      --> IDENT IDENT? ":" TYPE ;
	block      --> "{" expression "}" ;
	expression --> primary ( OPERATOR primary )* ;
	primary    --> NUMBER
	             | IDENT ( "(" args? ")" )?
	             | "(" expression ")"
	             | function
	             | "return" expression?
	             | "if" expression block "else" ( ifExpr | block ) ;
	args       --> expression ( "," expression )* ;

Binary operators are resolved by precedence climbing:

	"+" "-"    20
	"*" "/"    40
	"<"        reserved, rejected by the parser

A bare expression at the top level becomes the body of a function named
"main" returning Int. An explicit "main" must not declare parameters.

A group whose closing ")" or "}" is missing when the input ends fails with
ErrUnterminatedGroup. Any other token where the closing delimiter belongs
fails with ErrUnexpectedToken.
*/
package swiftlet
