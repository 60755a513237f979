package swiftlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinter(t *testing.T) {
	testCases := []struct {
		node Node
		str  string
	}{
		{num(1), "1"},
		{num(3.14), "3.14"},
		{num(4294967296), "4294967296"},
		{NewVariableRef("x"), "x"},
		{NewCallExpr("f", nil), "(call f)"},
		{NewCallExpr("f", []Node{num(1), NewVariableRef("y")}), "(call f 1 y)"},
		{NewBinaryExpr(OpMul, num(2), NewBinaryExpr(OpLess, num(3), num(4))), "(* 2 (< 3 4))"},
		{NewReturnStmt(nil), "(return)"},
		{NewReturnStmt(num(0)), "(return 0)"},
		{NewIfExpr(NewVariableRef("c"), num(1), num(2)), "(if c 1 2)"},
		{
			NewFunctionDef("add",
				[]Argument{{"a", "a", TypeInt}, {"to", "b", TypeDouble}},
				TypeDouble,
				NewBinaryExpr(OpAdd, NewVariableRef("a"), NewVariableRef("b"))),
			"(func add ((a Int) (to b Double)) Double (+ a b))",
		},
		{mainOf(num(1)), "(func main () Int 1)"},
	}

	assert := assert.New(t)
	printer := new(AstPrinter)
	for _, tc := range testCases {
		assert.Equal(tc.str, printer.Print(tc.node))
	}
}

func TestAstPrinterPrintAll(t *testing.T) {
	assert := assert.New(t)

	nodes, err := NewParser(scan(t, "func one() -> Int { 1 } one() + 2"), newMockReporter()).Parse()
	assert.NoError(err)
	assert.Equal(
		"(func one () Int 1)\n(func main () Int (+ (call one) 2))\n",
		new(AstPrinter).PrintAll(nodes),
	)
}
