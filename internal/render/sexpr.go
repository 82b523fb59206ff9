// Package render turns a parsed rustlite AST into human-inspectable
// text: an s-expression form and a JSON form, for the `rustlitec ast`
// dump command. Neither form is part of the core pipeline spec.md
// defines; both are pure presentation over the tree it produces.
package render

import (
	"fmt"
	"strings"

	"github.com/rustlite-lang/rustlitec/internal/ast"
)

// SExpr renders node as a parenthesised s-expression.
func SExpr(node ast.Node) string {
	var sb strings.Builder
	writeSExpr(&sb, node)

	return sb.String()
}

func writeSExpr(sb *strings.Builder, node ast.Node) {
	if node == nil {
		sb.WriteString("nil")

		return
	}

	switch n := node.(type) {
	case *ast.Program:
		sb.WriteString("(program")
		for _, stmt := range n.Statements {
			sb.WriteString(" ")
			writeSExpr(sb, stmt)
		}
		sb.WriteString(")")

	case *ast.FnDecl:
		fmt.Fprintf(sb, "(fn %s (", n.Name)
		for i, param := range n.Params {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(sb, "(%s %s)", param.Name, param.TypeName)
		}
		sb.WriteString(") ")
		writeSExpr(sb, n.Body)
		sb.WriteString(")")

	case *ast.Block:
		sb.WriteString("(block")
		for _, stmt := range n.Statements {
			sb.WriteString(" ")
			writeSExpr(sb, stmt)
		}
		sb.WriteString(")")

	case *ast.LetStmt:
		kw := "let"
		if n.IsMut {
			kw = "let-mut"
		}
		fmt.Fprintf(sb, "(%s %s", kw, n.Name)
		if n.TypeName != "" {
			fmt.Fprintf(sb, ":%s", n.TypeName)
		}
		sb.WriteString(" ")
		writeSExpr(sb, n.Init)
		sb.WriteString(")")

	case *ast.ReturnStmt:
		sb.WriteString("(return")
		if n.Value != nil {
			sb.WriteString(" ")
			writeSExpr(sb, n.Value)
		}
		sb.WriteString(")")

	case *ast.WhileStmt:
		sb.WriteString("(while ")
		writeSExpr(sb, n.Condition)
		sb.WriteString(" ")
		writeSExpr(sb, n.Body)
		sb.WriteString(")")

	case *ast.IfStmt:
		sb.WriteString("(if ")
		writeSExpr(sb, n.Condition)
		sb.WriteString(" ")
		writeSExpr(sb, n.Then)
		if n.ElseBranch != nil {
			sb.WriteString(" ")
			writeSExpr(sb, n.ElseBranch)
		}
		sb.WriteString(")")

	case *ast.ExprStmt:
		writeSExpr(sb, n.Expression)

	case *ast.AssignExpr:
		fmt.Fprintf(sb, "(= %s ", n.Target)
		writeSExpr(sb, n.Value)
		sb.WriteString(")")

	case *ast.BinaryExpr:
		fmt.Fprintf(sb, "(%s ", n.Op)
		writeSExpr(sb, n.Left)
		sb.WriteString(" ")
		writeSExpr(sb, n.Right)
		sb.WriteString(")")

	case *ast.UnaryExpr:
		fmt.Fprintf(sb, "(%s ", n.Op)
		writeSExpr(sb, n.Operand)
		sb.WriteString(")")

	case *ast.CallExpr:
		fmt.Fprintf(sb, "(call %s", n.Callee)
		for _, arg := range n.Args {
			sb.WriteString(" ")
			writeSExpr(sb, arg)
		}
		sb.WriteString(")")

	case *ast.IdentExpr:
		sb.WriteString(n.Name)

	case *ast.NumberLiteral:
		sb.WriteString(n.Value)

	case *ast.StringLiteral:
		fmt.Fprintf(sb, "%q", n.Value)

	default:
		fmt.Fprintf(sb, "(unknown %s)", node.Kind())
	}
}
