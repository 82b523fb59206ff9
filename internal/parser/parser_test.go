package parser

import (
	"testing"

	"github.com/rustlite-lang/rustlitec/internal/ast"
)

func TestEmptyProgram(t *testing.T) {
	p := New("")
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	if len(program.Statements) != 0 {
		t.Fatalf("expected no statements, got %d", len(program.Statements))
	}
}

func TestFnDeclWithLet(t *testing.T) {
	input := `fn main() { let x: i32 = 42; }`

	p := New(input)
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}

	fn, ok := program.Statements[0].(*ast.FnDecl)
	if !ok {
		t.Fatalf("statement is not *ast.FnDecl, got %T", program.Statements[0])
	}

	if fn.Name != "main" {
		t.Errorf("fn.Name = %q, want %q", fn.Name, "main")
	}

	if len(fn.Params) != 0 {
		t.Errorf("expected 0 params, got %d", len(fn.Params))
	}

	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Statements))
	}

	let, ok := fn.Body.Statements[0].(*ast.LetStmt)
	if !ok {
		t.Fatalf("body statement is not *ast.LetStmt, got %T", fn.Body.Statements[0])
	}

	if let.IsMut {
		t.Errorf("expected IsMut false")
	}

	if let.Name != "x" || let.TypeName != "i32" {
		t.Errorf("let.Name/TypeName = %q/%q, want x/i32", let.Name, let.TypeName)
	}

	num, ok := let.Init.(*ast.NumberLiteral)
	if !ok {
		t.Fatalf("let.Init is not *ast.NumberLiteral, got %T", let.Init)
	}

	if num.Value != "42" {
		t.Errorf("num.Value = %q, want %q", num.Value, "42")
	}
}

func TestFnDeclWithParams(t *testing.T) {
	input := `fn add(a: i32, b: i32) { return a + b; }`

	p := New(input)
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	fn := program.Statements[0].(*ast.FnDecl)
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}

	if fn.Params[0].Name != "a" || fn.Params[0].TypeName != "i32" {
		t.Errorf("param 0 = %+v", fn.Params[0])
	}

	if fn.Params[1].Name != "b" || fn.Params[1].TypeName != "i32" {
		t.Errorf("param 1 = %+v", fn.Params[1])
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	input := `1 + 2 * 3;`

	p := New(input)
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	exprStmt := program.Statements[0].(*ast.ExprStmt)
	bin, ok := exprStmt.Expression.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expression is not *ast.BinaryExpr, got %T", exprStmt.Expression)
	}

	if bin.Op != "+" {
		t.Fatalf("top operator = %q, want %q", bin.Op, "+")
	}

	if _, ok := bin.Left.(*ast.NumberLiteral); !ok {
		t.Fatalf("left of + is not a literal, got %T", bin.Left)
	}

	right, ok := bin.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("right of + is not *ast.BinaryExpr, got %T", bin.Right)
	}

	if right.Op != "*" {
		t.Fatalf("nested operator = %q, want %q", right.Op, "*")
	}
}

func TestGroupingOverridesPrecedence(t *testing.T) {
	input := `(1 + 2) * 3;`

	p := New(input)
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	exprStmt := program.Statements[0].(*ast.ExprStmt)
	bin := exprStmt.Expression.(*ast.BinaryExpr)

	if bin.Op != "*" {
		t.Fatalf("top operator = %q, want %q", bin.Op, "*")
	}

	left, ok := bin.Left.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("left of * is not *ast.BinaryExpr, got %T", bin.Left)
	}

	if left.Op != "+" {
		t.Fatalf("grouped operator = %q, want %q", left.Op, "+")
	}
}

func TestElseIfChainNests(t *testing.T) {
	input := `if a { return 1; } else if b { return 2; } else { return 3; }`

	p := New(input)
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	outer, ok := program.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement is not *ast.IfStmt, got %T", program.Statements[0])
	}

	inner, ok := outer.ElseBranch.(*ast.IfStmt)
	if !ok {
		t.Fatalf("else branch is not *ast.IfStmt, got %T", outer.ElseBranch)
	}

	if _, ok := inner.ElseBranch.(*ast.Block); !ok {
		t.Fatalf("innermost else branch is not *ast.Block, got %T", inner.ElseBranch)
	}
}

func TestErrorRecoveryOnMissingAssignmentTarget(t *testing.T) {
	input := `let = 1; let y: i32 = 2;`

	p := New(input)
	program := p.ParseProgram()

	if !p.HasErrors() {
		t.Fatalf("expected parse errors for %q", input)
	}

	var sawY bool

	for _, stmt := range program.Statements {
		if let, ok := stmt.(*ast.LetStmt); ok && let.Name == "y" {
			sawY = true
		}
	}

	if !sawY {
		t.Fatalf("expected parser to recover and still parse the second let statement, got %+v", program.Statements)
	}
}

func TestEqualityNotConfusedWithAssignment(t *testing.T) {
	input := `x == y;`

	p := New(input)
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	exprStmt := program.Statements[0].(*ast.ExprStmt)
	bin, ok := exprStmt.Expression.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expression is not *ast.BinaryExpr, got %T", exprStmt.Expression)
	}

	if bin.Op != "==" {
		t.Fatalf("operator = %q, want %q", bin.Op, "==")
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	input := `x = y = 1;`

	p := New(input)
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	exprStmt := program.Statements[0].(*ast.ExprStmt)
	assign, ok := exprStmt.Expression.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expression is not *ast.AssignExpr, got %T", exprStmt.Expression)
	}

	if assign.Target != "x" {
		t.Fatalf("outer target = %q, want %q", assign.Target, "x")
	}

	inner, ok := assign.Value.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("assigned value is not *ast.AssignExpr, got %T", assign.Value)
	}

	if inner.Target != "y" {
		t.Fatalf("inner target = %q, want %q", inner.Target, "y")
	}
}

func TestCallExpression(t *testing.T) {
	input := `add(1, 2);`

	p := New(input)
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	exprStmt := program.Statements[0].(*ast.ExprStmt)
	call, ok := exprStmt.Expression.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expression is not *ast.CallExpr, got %T", exprStmt.Expression)
	}

	if call.Callee != "add" {
		t.Fatalf("callee = %q, want %q", call.Callee, "add")
	}

	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
}

func TestWhileLoop(t *testing.T) {
	input := `while x < 10 { x = x + 1; }`

	p := New(input)
	program := p.ParseProgram()

	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	while, ok := program.Statements[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("statement is not *ast.WhileStmt, got %T", program.Statements[0])
	}

	cond, ok := while.Condition.(*ast.BinaryExpr)
	if !ok || cond.Op != "<" {
		t.Fatalf("condition = %+v, want a < comparison", while.Condition)
	}
}

func TestMissingSemicolonReportsDiagnosticAndRecovers(t *testing.T) {
	input := `let x: i32 = 1 let y: i32 = 2;`

	p := New(input)
	program := p.ParseProgram()

	if !p.HasErrors() {
		t.Fatalf("expected a diagnostic for the missing ';'")
	}

	errs := p.Errors()
	if errs[0].Message != "Expected ';' after let statement" {
		t.Fatalf("unexpected message: %q", errs[0].Message)
	}

	if len(program.Statements) != 2 {
		t.Fatalf("expected recovery to still yield 2 statements, got %d", len(program.Statements))
	}
}
