package swiftlet

import (
	"container/list"
	"fmt"
)

// Each map represents the parameters of one function. Functions do not close
// over their surroundings, so only the innermost scope is ever consulted.
type scopeMap = map[string]bool

// Resolver performs semantics analysis on the syntax tree. It checks that
// every variable names a parameter of its function and that every call
// names a known function with the right number of arguments.
type Resolver struct {
	scopes      *list.List
	functions   map[string]int
	declared    map[string]bool
	interpreter *Interpreter
	reporter    Reporter
	currentFn   string
}

// NewResolver creates a resolver. Functions the interpreter already knows,
// e.g. from earlier REPL lines, count as defined.
func NewResolver(interpreter *Interpreter, reporter Reporter) *Resolver {
	r := new(Resolver)
	r.scopes = list.New()
	r.functions = make(map[string]int)
	r.declared = make(map[string]bool)
	r.interpreter = interpreter
	r.reporter = reporter
	return r
}

func (r *Resolver) Resolve(nodes []Node) {
	if r.interpreter != nil {
		for name, fn := range r.interpreter.functions {
			r.functions[name] = len(fn.Args)
		}
	}
	// top-level functions may be called before their definition
	for _, node := range nodes {
		if fn, ok := node.(*FunctionDef); ok && fn.Name != mainFunction {
			r.declareFunction(fn)
		}
	}
	for _, node := range nodes {
		if fn, ok := node.(*FunctionDef); ok {
			if fn.Name == mainFunction && len(fn.Args) > 0 {
				r.reporter.Report(NewResolveError(mainFunction,
					fmt.Sprintf("Function '%s' takes no parameters.", mainFunction)))
			}
			r.resolveFunction(fn)
			continue
		}
		r.resolve(node)
	}
}

func (r *Resolver) VisitNumberLiteral(node *NumberLiteral) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitVariableRef(node *VariableRef) (interface{}, error) {
	if r.scopes.Front() != nil {
		if _, ok := r.scopes.Front().Value.(scopeMap)[node.Name]; ok {
			return nil, nil
		}
	}
	r.reporter.Report(NewResolveError(r.currentFn,
		fmt.Sprintf("Undefined variable '%s'.", node.Name)))
	return nil, nil
}

func (r *Resolver) VisitCallExpr(node *CallExpr) (interface{}, error) {
	arity, ok := r.functions[node.Callee]
	switch {
	case !ok:
		r.reporter.Report(NewResolveError(r.currentFn,
			fmt.Sprintf("Undefined function '%s'.", node.Callee)))
	case arity != len(node.Args):
		r.reporter.Report(NewResolveError(r.currentFn,
			fmt.Sprintf("Expected %d arguments but got %d.", arity, len(node.Args))))
	}
	for _, arg := range node.Args {
		r.resolve(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(node *BinaryExpr) (interface{}, error) {
	r.resolve(node.Lhs)
	r.resolve(node.Rhs)
	return nil, nil
}

// A function nested in an expression becomes callable from where it is
// defined onwards.
func (r *Resolver) VisitFunctionDef(node *FunctionDef) (interface{}, error) {
	r.declareFunction(node)
	r.resolveFunction(node)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(node *ReturnStmt) (interface{}, error) {
	if node.Body != nil {
		r.resolve(node.Body)
	}
	return nil, nil
}

func (r *Resolver) VisitIfExpr(node *IfExpr) (interface{}, error) {
	r.resolve(node.Cond)
	r.resolve(node.Then)
	r.resolve(node.Else)
	return nil, nil
}

// declareFunction records fn. Redefining a function the interpreter knows
// from an earlier run is allowed, defining it twice in one program is not.
func (r *Resolver) declareFunction(fn *FunctionDef) {
	if r.declared[fn.Name] {
		r.reporter.Report(NewResolveError(fn.Name,
			fmt.Sprintf("Already has a function named '%s'.", fn.Name)))
	}
	r.declared[fn.Name] = true
	r.functions[fn.Name] = len(fn.Args)
}

func (r *Resolver) resolveFunction(fn *FunctionDef) {
	enclosingFn := r.currentFn
	r.currentFn = fn.Name

	r.beginScope()
	for _, arg := range fn.Args {
		r.declare(arg.Name)
	}
	r.resolve(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

// Similar to Interpreter.eval
func (r *Resolver) resolve(node Node) {
	node.Accept(r)
}

// called when resolver enters a function body
func (r *Resolver) beginScope() {
	r.scopes.PushFront(make(scopeMap))
}

// called when resolver leaves a function body
func (r *Resolver) endScope() {
	r.scopes.Remove(r.scopes.Front())
}

func (r *Resolver) declare(name string) {
	scope := r.scopes.Front().Value.(scopeMap)
	if _, hasName := scope[name]; hasName {
		r.reporter.Report(NewResolveError(r.currentFn,
			fmt.Sprintf("Already has a parameter named '%s'.", name)))
	}
	scope[name] = true
}
