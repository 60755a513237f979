package swiftlet

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders nodes as S-expressions, e.g. "(+ 1 (* 2 3))".
type AstPrinter struct{}

func (printer *AstPrinter) Print(node Node) string {
	s, _ := node.Accept(printer)
	return fmt.Sprintf("%v", s)
}

// PrintAll renders each node on its own line.
func (printer *AstPrinter) PrintAll(nodes []Node) string {
	var sb strings.Builder
	for _, node := range nodes {
		sb.WriteString(printer.Print(node))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (printer *AstPrinter) VisitNumberLiteral(node *NumberLiteral) (interface{}, error) {
	return stringify(node.Value), nil
}

func (printer *AstPrinter) VisitVariableRef(node *VariableRef) (interface{}, error) {
	return node.Name, nil
}

func (printer *AstPrinter) VisitCallExpr(node *CallExpr) (interface{}, error) {
	parts := []string{"call", node.Callee}
	for _, arg := range node.Args {
		parts = append(parts, printer.Print(arg))
	}
	return printer.parenthesize(parts...), nil
}

func (printer *AstPrinter) VisitBinaryExpr(node *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(
		node.Op.String(),
		printer.Print(node.Lhs),
		printer.Print(node.Rhs),
	), nil
}

func (printer *AstPrinter) VisitFunctionDef(node *FunctionDef) (interface{}, error) {
	params := make([]string, 0, len(node.Args))
	for _, arg := range node.Args {
		if arg.Label == arg.Name {
			params = append(params, printer.parenthesize(arg.Name, arg.Type.String()))
		} else {
			params = append(params, printer.parenthesize(arg.Label, arg.Name, arg.Type.String()))
		}
	}
	return printer.parenthesize(
		"func",
		node.Name,
		printer.parenthesize(params...),
		node.ReturnType.String(),
		printer.Print(node.Body),
	), nil
}

func (printer *AstPrinter) VisitReturnStmt(node *ReturnStmt) (interface{}, error) {
	if node.Body == nil {
		return "(return)", nil
	}
	return printer.parenthesize("return", printer.Print(node.Body)), nil
}

func (printer *AstPrinter) VisitIfExpr(node *IfExpr) (interface{}, error) {
	return printer.parenthesize(
		"if",
		printer.Print(node.Cond),
		printer.Print(node.Then),
		printer.Print(node.Else),
	), nil
}

func (printer *AstPrinter) parenthesize(parts ...string) string {
	return "(" + strings.Join(parts, " ") + ")"
}

func stringify(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
