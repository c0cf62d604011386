package lox

import "fmt"

// RuntimeError reports an operand type error during evaluation. It
// carries the operator token the evaluator was applying when the
// mismatch surfaced.
type RuntimeError struct {
	Token   Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// Evaluate reduces an expression tree to a runtime value. Evaluation is
// a pure structural recursion: the tree is never mutated, so the same
// tree evaluates to the same value every time, and the first
// RuntimeError aborts the whole reduction.
func Evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *Literal:
		return evalLiteral(e), nil
	case *Grouping:
		return Evaluate(e.Expression)
	case *Unary:
		return evalUnary(e)
	case *Binary:
		return evalBinary(e)
	default:
		panic(fmt.Sprintf("lox: unknown expression node %T", expr))
	}
}

func evalLiteral(e *Literal) Value {
	switch e.Token.Kind {
	case TokenNumber, TokenString, TokenTrue, TokenFalse:
		return e.Token.Literal
	case TokenNil:
		return NewNil()
	default:
		panic(fmt.Sprintf("lox: literal node wraps non-literal token %s", e.Token.Kind))
	}
}

func evalUnary(e *Unary) (Value, error) {
	right, err := Evaluate(e.Right)
	if err != nil {
		return NewNil(), err
	}

	switch e.Operator.Kind {
	case TokenBang:
		return NewBool(!right.Truthy()), nil
	case TokenMinus:
		if right.Kind() != KindNumber {
			return NewNil(), newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return NewNumber(-right.Number()), nil
	default:
		panic(fmt.Sprintf("lox: unary node carries operator %s", e.Operator.Kind))
	}
}

// evalBinary evaluates left then right; both operands are always
// evaluated before the operator is applied, since and/or live above this
// grammar and nothing here short-circuits.
func evalBinary(e *Binary) (Value, error) {
	left, err := Evaluate(e.Left)
	if err != nil {
		return NewNil(), err
	}
	right, err := Evaluate(e.Right)
	if err != nil {
		return NewNil(), err
	}

	switch e.Operator.Kind {
	case TokenEqualEqual:
		return NewBool(left.Equal(right)), nil
	case TokenBangEqual:
		return NewBool(!left.Equal(right)), nil
	case TokenPlus:
		return addValues(e.Operator, left, right)
	case TokenMinus, TokenSlash, TokenStar, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual:
		if left.Kind() != KindNumber || right.Kind() != KindNumber {
			return NewNil(), newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return numberOp(e.Operator, left.Number(), right.Number()), nil
	default:
		panic(fmt.Sprintf("lox: binary node carries operator %s", e.Operator.Kind))
	}
}

func addValues(operator Token, left, right Value) (Value, error) {
	switch {
	case left.Kind() == KindNumber && right.Kind() == KindNumber:
		return NewNumber(left.Number() + right.Number()), nil
	case left.Kind() == KindString && right.Kind() == KindString:
		return NewString(left.Text() + right.Text()), nil
	default:
		return NewNil(), newRuntimeError(operator, "Operands must be two numbers or two strings.")
	}
}

// numberOp applies an arithmetic or comparison operator to two numbers.
// Arithmetic follows IEEE-754: dividing by zero yields an infinity, not
// an error.
func numberOp(operator Token, l, r float64) Value {
	switch operator.Kind {
	case TokenMinus:
		return NewNumber(l - r)
	case TokenSlash:
		return NewNumber(l / r)
	case TokenStar:
		return NewNumber(l * r)
	case TokenGreater:
		return NewBool(l > r)
	case TokenGreaterEqual:
		return NewBool(l >= r)
	case TokenLess:
		return NewBool(l < r)
	case TokenLessEqual:
		return NewBool(l <= r)
	default:
		panic(fmt.Sprintf("lox: numberOp got operator %s", operator.Kind))
	}
}

func newRuntimeError(tok Token, message string) error {
	return &RuntimeError{Token: tok, Message: message}
}
