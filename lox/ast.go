package lox

// Expr is an expression tree node. Each node owns its children outright:
// the tree is built bottom-up by the parser, shares nothing, and is
// consumed top-down by Evaluate.
type Expr interface {
	exprNode()
}

type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *Binary) exprNode() {}

type Unary struct {
	Operator Token
	Right    Expr
}

func (e *Unary) exprNode() {}

type Grouping struct {
	Expression Expr
}

func (e *Grouping) exprNode() {}

// Literal wraps the token it was parsed from; the token's payload
// carries the decoded value.
type Literal struct {
	Token Token
}

func (e *Literal) exprNode() {}
