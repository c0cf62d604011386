// Package lox implements the front half of the Lox language: a scanner
// that turns source text into tokens, a recursive-descent parser that
// builds an expression tree, and a tree-walking evaluator that reduces
// the tree to a runtime value.
//
// The grammar covers a single expression:
//
//	expression  → equality
//	equality    → comparison ( ("!=" | "==") comparison )*
//	comparison  → term ( (">" | ">=" | "<" | "<=") term )*
//	term        → factor ( ("-" | "+") factor )*
//	factor      → unary ( ("/" | "*") unary )*
//	unary       → ("!" | "-") unary | primary
//	primary     → NUMBER | STRING | "true" | "false" | "nil"
//	            | "(" expression ")"
//
// Comments beginning with `//` run to the end of the line and are
// ignored. Values are dynamically typed: nil, booleans, 64-bit floats,
// and strings. The three stages are independent: the scanner never
// fails, the parser returns the first syntax error it hits, and the
// evaluator returns the first operand type error.
package lox
