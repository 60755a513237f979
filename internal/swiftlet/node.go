package swiftlet

// Node is a syntax tree node. The set of nodes is closed: the unexported
// marker method keeps other packages from adding variants, and every
// NodeVisitor has to handle each of them.
type Node interface {
	Accept(visitor NodeVisitor) (interface{}, error)
	node()
}

type NodeVisitor interface {
	VisitNumberLiteral(node *NumberLiteral) (interface{}, error)
	VisitVariableRef(node *VariableRef) (interface{}, error)
	VisitCallExpr(node *CallExpr) (interface{}, error)
	VisitBinaryExpr(node *BinaryExpr) (interface{}, error)
	VisitFunctionDef(node *FunctionDef) (interface{}, error)
	VisitReturnStmt(node *ReturnStmt) (interface{}, error)
	VisitIfExpr(node *IfExpr) (interface{}, error)
}

type NumberLiteral struct {
	Value float64
}

func NewNumberLiteral(Value float64) *NumberLiteral {
	return &NumberLiteral{Value}
}
func (node *NumberLiteral) Accept(visitor NodeVisitor) (interface{}, error) {
	return visitor.VisitNumberLiteral(node)
}
func (*NumberLiteral) node() {}

type VariableRef struct {
	Name string
}

func NewVariableRef(Name string) *VariableRef {
	return &VariableRef{Name}
}
func (node *VariableRef) Accept(visitor NodeVisitor) (interface{}, error) {
	return visitor.VisitVariableRef(node)
}
func (*VariableRef) node() {}

type CallExpr struct {
	Callee string
	Args   []Node
}

func NewCallExpr(Callee string, Args []Node) *CallExpr {
	return &CallExpr{Callee, Args}
}
func (node *CallExpr) Accept(visitor NodeVisitor) (interface{}, error) {
	return visitor.VisitCallExpr(node)
}
func (*CallExpr) node() {}

type BinaryExpr struct {
	Op  Operator
	Lhs Node
	Rhs Node
}

func NewBinaryExpr(Op Operator, Lhs Node, Rhs Node) *BinaryExpr {
	return &BinaryExpr{Op, Lhs, Rhs}
}
func (node *BinaryExpr) Accept(visitor NodeVisitor) (interface{}, error) {
	return visitor.VisitBinaryExpr(node)
}
func (*BinaryExpr) node() {}

// Argument is a declared function parameter. Label is what callers would
// write, Name is what the body refers to; they are equal unless the
// declaration spells out both.
type Argument struct {
	Label string
	Name  string
	Type  Type
}

type FunctionDef struct {
	Name       string
	Args       []Argument
	ReturnType Type
	Body       Node
}

func NewFunctionDef(Name string, Args []Argument, ReturnType Type, Body Node) *FunctionDef {
	return &FunctionDef{Name, Args, ReturnType, Body}
}
func (node *FunctionDef) Accept(visitor NodeVisitor) (interface{}, error) {
	return visitor.VisitFunctionDef(node)
}
func (*FunctionDef) node() {}

// ReturnStmt has a nil Body when nothing follows the keyword.
type ReturnStmt struct {
	Body Node
}

func NewReturnStmt(Body Node) *ReturnStmt {
	return &ReturnStmt{Body}
}
func (node *ReturnStmt) Accept(visitor NodeVisitor) (interface{}, error) {
	return visitor.VisitReturnStmt(node)
}
func (*ReturnStmt) node() {}

type IfExpr struct {
	Cond Node
	Then Node
	Else Node
}

func NewIfExpr(Cond Node, Then Node, Else Node) *IfExpr {
	return &IfExpr{Cond, Then, Else}
}
func (node *IfExpr) Accept(visitor NodeVisitor) (interface{}, error) {
	return visitor.VisitIfExpr(node)
}
func (*IfExpr) node() {}
