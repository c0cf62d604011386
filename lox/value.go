package lox

import "fmt"

// ValueKind identifies which variant a Value holds.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindString
)

// Value is the runtime representation of an evaluated expression. The
// zero value is nil. Values are never mutated in place; every operator
// produces a fresh one.
type Value struct {
	kind ValueKind
	data any
}

func NewNil() Value             { return Value{kind: KindNil} }
func NewBool(b bool) Value      { return Value{kind: KindBool, data: b} }
func NewNumber(f float64) Value { return Value{kind: KindNumber, data: f} }
func NewString(s string) Value  { return Value{kind: KindString, data: s} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return false
}

func (v Value) Number() float64 {
	if v.kind == KindNumber {
		return v.data.(float64)
	}
	return 0
}

func (v Value) Text() string {
	if v.kind == KindString {
		return v.data.(string)
	}
	return ""
}

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindNumber:
		return fmt.Sprintf("%g", v.data.(float64))
	case KindString:
		return v.data.(string)
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// Truthy reports whether the value counts as true under logical
// negation. Only nil and false are falsy; zero and the empty string are
// truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool()
	default:
		return true
	}
}

// Equal reports value equality. Values of different kinds are never
// equal and never error; number equality follows IEEE-754.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindNumber:
		return v.data.(float64) == other.data.(float64)
	case KindString:
		return v.data.(string) == other.data.(string)
	default:
		return v.data == other.data
	}
}

// FormatValue renders a value the way the command line presents results:
// identical to String except string values are wrapped in double quotes.
func FormatValue(v Value) string {
	if v.kind == KindString {
		return "\"" + v.data.(string) + "\""
	}
	return v.String()
}
