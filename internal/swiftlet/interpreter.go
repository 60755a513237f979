package swiftlet

import (
	"fmt"
	"io"
	"math"
)

const (
	mainFunction = "main"
	maxCallDepth = 512
)

// returnValue unwinds evaluation from a "return" up to the enclosing call.
type returnValue struct {
	val float64
}

func (r *returnValue) Error() string {
	return fmt.Sprintf("return %s", stringify(r.val))
}

// Interpreter evaluates syntax trees. Function definitions outlive a single
// call to Interpret so a REPL can build on earlier input. This struct
// implements NodeVisitor.
type Interpreter struct {
	functions   map[string]*FunctionDef
	environment *Environment
	output      io.Writer
	reporter    Reporter
	depth       int
}

func NewInterpreter(output io.Writer, reporter Reporter) *Interpreter {
	return &Interpreter{
		functions:   make(map[string]*FunctionDef),
		environment: NewEnvironment(mainFunction),
		output:      output,
		reporter:    reporter,
	}
}

// Interpret defines every named function first, then runs each "main" in
// source order and writes its result to the output. Evaluation stops at the
// first runtime error.
func (in *Interpreter) Interpret(nodes []Node) {
	for _, node := range nodes {
		if fn, ok := node.(*FunctionDef); ok && fn.Name != mainFunction {
			in.functions[fn.Name] = fn
		}
	}
	for _, node := range nodes {
		fn, ok := node.(*FunctionDef)
		if !ok || fn.Name != mainFunction {
			continue
		}
		if len(fn.Args) > 0 {
			msg := fmt.Sprintf("Function '%s' takes no parameters.", mainFunction)
			in.reporter.Report(NewRuntimeError(mainFunction, msg))
			return
		}
		val, err := in.call(fn, nil)
		if err != nil {
			in.reporter.Report(err)
			return
		}
		fmt.Fprintln(in.output, stringify(val))
	}
}

func (in *Interpreter) VisitNumberLiteral(node *NumberLiteral) (interface{}, error) {
	return node.Value, nil
}

func (in *Interpreter) VisitVariableRef(node *VariableRef) (interface{}, error) {
	return in.environment.Get(node.Name)
}

func (in *Interpreter) VisitCallExpr(node *CallExpr) (interface{}, error) {
	fn, ok := in.functions[node.Callee]
	if !ok {
		msg := fmt.Sprintf("Undefined function '%s'.", node.Callee)
		return nil, NewRuntimeError(in.environment.function, msg)
	}
	if len(node.Args) != len(fn.Args) {
		msg := fmt.Sprintf("Expected %d arguments but got %d.", len(fn.Args), len(node.Args))
		return nil, NewRuntimeError(in.environment.function, msg)
	}
	args := make([]float64, 0, len(node.Args))
	for _, arg := range node.Args {
		val, err := in.eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return in.call(fn, args)
}

func (in *Interpreter) VisitBinaryExpr(node *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(node.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(node.Rhs)
	if err != nil {
		return nil, err
	}

	switch node.Op {
	case OpAdd:
		return lhs + rhs, nil
	case OpSub:
		return lhs - rhs, nil
	case OpMul:
		return lhs * rhs, nil
	case OpDiv:
		if rhs == 0 {
			return nil, NewRuntimeError(in.environment.function, "Division by zero.")
		}
		return lhs / rhs, nil
	case OpLess:
		if lhs < rhs {
			return 1.0, nil
		}
		return 0.0, nil
	}
	panic("Unreachable")
}

// A nested definition is registered when it is evaluated and yields zero.
func (in *Interpreter) VisitFunctionDef(node *FunctionDef) (interface{}, error) {
	in.functions[node.Name] = node
	return 0.0, nil
}

func (in *Interpreter) VisitReturnStmt(node *ReturnStmt) (interface{}, error) {
	var val float64
	if node.Body != nil {
		var err error
		if val, err = in.eval(node.Body); err != nil {
			return nil, err
		}
	}
	return nil, &returnValue{val}
}

// Any non-zero condition selects the "then" branch.
func (in *Interpreter) VisitIfExpr(node *IfExpr) (interface{}, error) {
	cond, err := in.eval(node.Cond)
	if err != nil {
		return nil, err
	}
	if cond != 0 {
		return in.eval(node.Then)
	}
	return in.eval(node.Else)
}

// call runs fn with its parameters bound to args. Values are converted to the
// declared types on the way in and out.
func (in *Interpreter) call(fn *FunctionDef, args []float64) (float64, error) {
	if in.depth >= maxCallDepth {
		return 0, NewRuntimeError(fn.Name, "Stack overflow.")
	}
	env := NewEnvironment(fn.Name)
	for i, arg := range fn.Args {
		env.Define(arg.Name, convert(args[i], arg.Type))
	}

	enclosing := in.environment
	in.environment = env
	in.depth++
	defer func() {
		in.environment = enclosing
		in.depth--
	}()

	val, err := in.eval(fn.Body)
	if err != nil {
		ret, ok := err.(*returnValue)
		if !ok {
			return 0, err
		}
		val = ret.val
	}
	return convert(val, fn.ReturnType), nil
}

func (in *Interpreter) eval(node Node) (float64, error) {
	val, err := node.Accept(in)
	if err != nil {
		return 0, err
	}
	return val.(float64), nil
}

func convert(val float64, typ Type) float64 {
	if typ == TypeInt {
		return math.Trunc(val)
	}
	return val
}
