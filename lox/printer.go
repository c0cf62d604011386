package lox

import (
	"fmt"
	"strings"
)

// PrintExpr renders an expression tree in parenthesized prefix form,
// e.g. (* (- 123) (group 45.67)). Handy for inspecting what the parser
// built.
func PrintExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		return literalText(e.Token)
	case *Grouping:
		return parenthesize("group", e.Expression)
	case *Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	default:
		panic(fmt.Sprintf("lox: unknown expression node %T", expr))
	}
}

func literalText(tok Token) string {
	switch tok.Kind {
	case TokenNil:
		return "nil"
	case TokenString:
		return tok.Literal.Text()
	default:
		return tok.Literal.String()
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteString(" ")
		sb.WriteString(PrintExpr(e))
	}
	sb.WriteString(")")
	return sb.String()
}
