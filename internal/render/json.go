package render

import (
	"encoding/json"

	"github.com/rustlite-lang/rustlitec/internal/ast"
)

// JSONNode is a presentation-only mirror of an AST node, shaped for
// encoding/json. It is never constructed by the parser and carries no
// ownership semantics of its own.
type JSONNode struct {
	Kind     string      `json:"kind"`
	Line     int         `json:"line"`
	Name     string      `json:"name,omitempty"`
	TypeName string      `json:"typeName,omitempty"`
	Op       string      `json:"op,omitempty"`
	IsMut    bool        `json:"isMut,omitempty"`
	Value    string      `json:"value,omitempty"`
	Params   []*JSONNode `json:"params,omitempty"`
	Body     *JSONNode   `json:"body,omitempty"`
	Then     *JSONNode   `json:"then,omitempty"`
	Else     *JSONNode   `json:"else,omitempty"`
	Cond     *JSONNode   `json:"condition,omitempty"`
	Init     *JSONNode   `json:"init,omitempty"`
	Target   *JSONNode   `json:"target,omitempty"`
	Left     *JSONNode   `json:"left,omitempty"`
	Right    *JSONNode   `json:"right,omitempty"`
	Operand  *JSONNode   `json:"operand,omitempty"`
	Callee   string      `json:"callee,omitempty"`
	Args     []*JSONNode `json:"args,omitempty"`
	Stmts    []*JSONNode `json:"statements,omitempty"`
}

// ToJSONNode converts node into its JSON mirror, recursively.
func ToJSONNode(node ast.Node) *JSONNode {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *ast.Program:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Stmts: toJSONList(n.Statements)}

	case *ast.FnDecl:
		params := make([]*JSONNode, 0, len(n.Params))
		for _, param := range n.Params {
			params = append(params, ToJSONNode(param))
		}

		return &JSONNode{
			Kind:   n.Kind().String(),
			Line:   n.Line(),
			Name:   n.Name,
			Params: params,
			Body:   ToJSONNode(n.Body),
		}

	case *ast.Param:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Name: n.Name, TypeName: n.TypeName}

	case *ast.Block:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Stmts: toJSONList(n.Statements)}

	case *ast.LetStmt:
		return &JSONNode{
			Kind:     n.Kind().String(),
			Line:     n.Line(),
			Name:     n.Name,
			TypeName: n.TypeName,
			IsMut:    n.IsMut,
			Init:     ToJSONNode(n.Init),
		}

	case *ast.ReturnStmt:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Init: ToJSONNode(n.Value)}

	case *ast.WhileStmt:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Cond: ToJSONNode(n.Condition), Body: ToJSONNode(n.Body)}

	case *ast.IfStmt:
		return &JSONNode{
			Kind: n.Kind().String(),
			Line: n.Line(),
			Cond: ToJSONNode(n.Condition),
			Then: ToJSONNode(n.Then),
			Else: ToJSONNode(n.ElseBranch),
		}

	case *ast.ExprStmt:
		return ToJSONNode(n.Expression)

	case *ast.AssignExpr:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Name: n.Target, Right: ToJSONNode(n.Value)}

	case *ast.BinaryExpr:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Op: n.Op, Left: ToJSONNode(n.Left), Right: ToJSONNode(n.Right)}

	case *ast.UnaryExpr:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Op: n.Op, Operand: ToJSONNode(n.Operand)}

	case *ast.CallExpr:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Callee: n.Callee, Args: toJSONList(exprsToNodes(n.Args))}

	case *ast.IdentExpr:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Name: n.Name}

	case *ast.NumberLiteral:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Value: n.Value}

	case *ast.StringLiteral:
		return &JSONNode{Kind: n.Kind().String(), Line: n.Line(), Value: n.Value}

	default:
		return &JSONNode{Kind: node.Kind().String(), Line: node.Line()}
	}
}

func exprsToNodes(exprs []ast.Expr) []ast.Node {
	nodes := make([]ast.Node, len(exprs))
	for i, e := range exprs {
		nodes[i] = e
	}

	return nodes
}

func toJSONList[T ast.Node](nodes []T) []*JSONNode {
	out := make([]*JSONNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, ToJSONNode(n))
	}

	return out
}

// JSON marshals node's JSON mirror with two-space indentation, the
// format the `rustlitec ast --format json` mode prints.
func JSON(node ast.Node) ([]byte, error) {
	return json.MarshalIndent(ToJSONNode(node), "", "  ")
}
