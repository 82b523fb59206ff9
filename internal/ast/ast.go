// Package ast defines the rustlite abstract syntax tree: a
// discriminated union of statement and expression node kinds sharing
// a uniform base of Kind() and Line(). The tree is an owning forest
// rooted at Program — each node exclusively owns the children it
// lists, and destroying the root releases the entire tree.
package ast

import "fmt"

// Kind discriminates AST node variants at runtime, paralleling the
// Stmt/Expr interfaces below with an explicit tag.
type Kind int

const (
	KindProgram Kind = iota
	KindFnDecl
	KindParam
	KindBlock
	KindLetStmt
	KindReturnStmt
	KindWhileStmt
	KindIfStmt
	KindExprStmt
	KindAssignExpr
	KindBinaryExpr
	KindUnaryExpr
	KindCallExpr
	KindIdentExpr
	KindNumberLiteral
	KindStringLiteral
)

var kindNames = map[Kind]string{
	KindProgram:       "Program",
	KindFnDecl:        "FnDecl",
	KindParam:         "Param",
	KindBlock:         "Block",
	KindLetStmt:       "LetStmt",
	KindReturnStmt:    "ReturnStmt",
	KindWhileStmt:     "WhileStmt",
	KindIfStmt:        "IfStmt",
	KindExprStmt:      "ExprStmt",
	KindAssignExpr:    "AssignExpr",
	KindBinaryExpr:    "BinaryExpr",
	KindUnaryExpr:     "UnaryExpr",
	KindCallExpr:      "CallExpr",
	KindIdentExpr:     "IdentExpr",
	KindNumberLiteral: "NumberLiteral",
	KindStringLiteral: "StringLiteral",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is implemented by every AST node: statements, expressions, and
// the Program root.
type Node interface {
	Kind() Kind
	Line() int
}

// Stmt is implemented by every statement-position node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression-position node.
type Expr interface {
	Node
	exprNode()
}

// baseNode carries the fields common to every node: its kind tag and
// the line of the first token that produced it.
type baseNode struct {
	kind Kind
	line int
}

func (n baseNode) Kind() Kind { return n.kind }
func (n baseNode) Line() int  { return n.line }

func newBase(kind Kind, line int) baseNode {
	return baseNode{kind: kind, line: line}
}

// Program is the root of the tree: an ordered sequence of top-level
// statements. spec.md does not restrict it to function declarations
// only, so any statement may appear here.
type Program struct {
	baseNode
	Statements []Stmt
}

// NewProgram constructs an empty Program at line 1 (the conventional
// line for a tree with no tokens at all, e.g. an empty source file).
func NewProgram() *Program {
	return &Program{baseNode: newBase(KindProgram, 1)}
}

func (p *Program) stmtNode() {}

// Param is a single function parameter: name and type name, both
// identifiers.
type Param struct {
	baseNode
	Name     string
	TypeName string
}

// NewParam constructs a Param at the given line.
func NewParam(line int, name, typeName string) *Param {
	return &Param{baseNode: newBase(KindParam, line), Name: name, TypeName: typeName}
}

// FnDecl is a function declaration: name, ordered parameters, body.
type FnDecl struct {
	baseNode
	Name   string
	Params []*Param
	Body   *Block
}

// NewFnDecl constructs an FnDecl at the given line (the line of the
// 'fn' token).
func NewFnDecl(line int, name string, params []*Param, body *Block) *FnDecl {
	return &FnDecl{baseNode: newBase(KindFnDecl, line), Name: name, Params: params, Body: body}
}

func (d *FnDecl) stmtNode() {}

// Block is an ordered sequence of statements delimited by braces.
type Block struct {
	baseNode
	Statements []Stmt
}

// NewBlock constructs a Block at the line of its opening brace.
func NewBlock(line int) *Block {
	return &Block{baseNode: newBase(KindBlock, line)}
}

func (b *Block) stmtNode() {}

// LetStmt is a let/let-mut binding with an optional type annotation
// and a required initializer expression.
type LetStmt struct {
	baseNode
	IsMut    bool
	Name     string
	TypeName string // empty if no annotation was given
	Init     Expr   // may be nil if the initializer could not be parsed
}

// NewLetStmt constructs a LetStmt at the line of its 'let' token.
func NewLetStmt(line int, isMut bool, name, typeName string, init Expr) *LetStmt {
	return &LetStmt{baseNode: newBase(KindLetStmt, line), IsMut: isMut, Name: name, TypeName: typeName, Init: init}
}

func (s *LetStmt) stmtNode() {}

// ReturnStmt is a return statement with an optional value.
type ReturnStmt struct {
	baseNode
	Value Expr // nil when 'return;' has no value
}

// NewReturnStmt constructs a ReturnStmt at the line of its 'return'
// token.
func NewReturnStmt(line int, value Expr) *ReturnStmt {
	return &ReturnStmt{baseNode: newBase(KindReturnStmt, line), Value: value}
}

func (s *ReturnStmt) stmtNode() {}

// WhileStmt is a condition/body loop. The condition is parsed without
// surrounding parentheses.
type WhileStmt struct {
	baseNode
	Condition Expr
	Body      *Block
}

// NewWhileStmt constructs a WhileStmt at the line of its 'while'
// token.
func NewWhileStmt(line int, condition Expr, body *Block) *WhileStmt {
	return &WhileStmt{baseNode: newBase(KindWhileStmt, line), Condition: condition, Body: body}
}

func (s *WhileStmt) stmtNode() {}

// IfStmt is a conditional with a then-branch and an optional
// else-branch, which is either a Block or another IfStmt (forming an
// else-if chain) or nil.
type IfStmt struct {
	baseNode
	Condition  Expr
	Then       *Block
	ElseBranch Stmt // *Block, *IfStmt, or nil
}

// NewIfStmt constructs an IfStmt at the line of its 'if' token.
func NewIfStmt(line int, condition Expr, then *Block, elseBranch Stmt) *IfStmt {
	return &IfStmt{baseNode: newBase(KindIfStmt, line), Condition: condition, Then: then, ElseBranch: elseBranch}
}

func (s *IfStmt) stmtNode() {}

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	baseNode
	Expression Expr
}

// NewExprStmt constructs an ExprStmt at the line of its leading
// token.
func NewExprStmt(line int, expr Expr) *ExprStmt {
	return &ExprStmt{baseNode: newBase(KindExprStmt, line), Expression: expr}
}

func (s *ExprStmt) stmtNode() {}

// AssignExpr is a simple identifier assignment: target = value.
type AssignExpr struct {
	baseNode
	Target string
	Value  Expr
}

// NewAssignExpr constructs an AssignExpr at the line of its target
// identifier.
func NewAssignExpr(line int, target string, value Expr) *AssignExpr {
	return &AssignExpr{baseNode: newBase(KindAssignExpr, line), Target: target, Value: value}
}

func (e *AssignExpr) exprNode() {}

// BinaryExpr is a two-operand arithmetic or comparison expression.
// Op is one of "+ - * / == != < > <= >=".
type BinaryExpr struct {
	baseNode
	Op    string
	Left  Expr
	Right Expr
}

// NewBinaryExpr constructs a BinaryExpr at the line of its operator
// token.
func NewBinaryExpr(line int, op string, left, right Expr) *BinaryExpr {
	return &BinaryExpr{baseNode: newBase(KindBinaryExpr, line), Op: op, Left: left, Right: right}
}

func (e *BinaryExpr) exprNode() {}

// UnaryExpr is a prefix negation. Op is always "-".
type UnaryExpr struct {
	baseNode
	Op      string
	Operand Expr
}

// NewUnaryExpr constructs a UnaryExpr at the line of its '-' token.
func NewUnaryExpr(line int, op string, operand Expr) *UnaryExpr {
	return &UnaryExpr{baseNode: newBase(KindUnaryExpr, line), Op: op, Operand: operand}
}

func (e *UnaryExpr) exprNode() {}

// CallExpr is a function call: callee identifier plus ordered
// argument expressions.
type CallExpr struct {
	baseNode
	Callee string
	Args   []Expr
}

// NewCallExpr constructs a CallExpr at the line of its callee
// identifier.
func NewCallExpr(line int, callee string, args []Expr) *CallExpr {
	return &CallExpr{baseNode: newBase(KindCallExpr, line), Callee: callee, Args: args}
}

func (e *CallExpr) exprNode() {}

// IdentExpr is a bare identifier reference.
type IdentExpr struct {
	baseNode
	Name string
}

// NewIdentExpr constructs an IdentExpr at the line of its token.
func NewIdentExpr(line int, name string) *IdentExpr {
	return &IdentExpr{baseNode: newBase(KindIdentExpr, line), Name: name}
}

func (e *IdentExpr) exprNode() {}

// NumberLiteral holds an integer literal's digits as a string;
// numeric conversion is deferred to later phases.
type NumberLiteral struct {
	baseNode
	Value string
}

// NewNumberLiteral constructs a NumberLiteral at the line of its
// token.
func NewNumberLiteral(line int, value string) *NumberLiteral {
	return &NumberLiteral{baseNode: newBase(KindNumberLiteral, line), Value: value}
}

func (e *NumberLiteral) exprNode() {}

// StringLiteral holds a string literal's raw content, without
// surrounding quotes and without escape processing.
type StringLiteral struct {
	baseNode
	Value string
}

// NewStringLiteral constructs a StringLiteral at the line of its
// token.
func NewStringLiteral(line int, value string) *StringLiteral {
	return &StringLiteral{baseNode: newBase(KindStringLiteral, line), Value: value}
}

func (e *StringLiteral) exprNode() {}
