package lox

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind string

const (
	TokenLeftParen  TokenKind = "LeftParen"
	TokenRightParen TokenKind = "RightParen"
	TokenLeftBrace  TokenKind = "LeftBrace"
	TokenRightBrace TokenKind = "RightBrace"
	TokenComma      TokenKind = "Comma"
	TokenDot        TokenKind = "Dot"
	TokenMinus      TokenKind = "Minus"
	TokenPlus       TokenKind = "Plus"
	TokenSemicolon  TokenKind = "Semicolon"
	TokenSlash      TokenKind = "Slash"
	TokenStar       TokenKind = "Star"

	TokenBang         TokenKind = "Bang"
	TokenBangEqual    TokenKind = "BangEqual"
	TokenEqual        TokenKind = "Equal"
	TokenEqualEqual   TokenKind = "EqualEqual"
	TokenGreater      TokenKind = "Greater"
	TokenGreaterEqual TokenKind = "GreaterEqual"
	TokenLess         TokenKind = "Less"
	TokenLessEqual    TokenKind = "LessEqual"

	TokenIdentifier TokenKind = "Identifier"
	TokenString     TokenKind = "String"
	TokenNumber     TokenKind = "Number"

	TokenAnd    TokenKind = "And"
	TokenClass  TokenKind = "Class"
	TokenElse   TokenKind = "Else"
	TokenFalse  TokenKind = "False"
	TokenFor    TokenKind = "For"
	TokenFun    TokenKind = "Fun"
	TokenIf     TokenKind = "If"
	TokenNil    TokenKind = "Nil"
	TokenOr     TokenKind = "Or"
	TokenPrint  TokenKind = "Print"
	TokenReturn TokenKind = "Return"
	TokenSuper  TokenKind = "Super"
	TokenThis   TokenKind = "This"
	TokenTrue   TokenKind = "True"
	TokenVar    TokenKind = "Var"
	TokenWhile  TokenKind = "While"

	TokenEOF TokenKind = "EOF"
)

// Token captures lexical information for the parser. Literal carries the
// decoded payload for Number, String, True, and False tokens and is the
// nil value for every other kind. Tokens are immutable once scanned.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal Value
	Line    int
}

func (t Token) String() string {
	var literal string
	switch t.Kind {
	case TokenNumber, TokenString, TokenTrue, TokenFalse:
		literal = t.Literal.String()
	case TokenNil:
		literal = "Nil"
	default:
		literal = "Other"
	}
	return fmt.Sprintf("(%s, %s, %s, %d)", t.Kind, t.Lexeme, literal, t.Line)
}

func lookupKeyword(name string) TokenKind {
	switch name {
	case "and":
		return TokenAnd
	case "class":
		return TokenClass
	case "else":
		return TokenElse
	case "false":
		return TokenFalse
	case "for":
		return TokenFor
	case "fun":
		return TokenFun
	case "if":
		return TokenIf
	case "nil":
		return TokenNil
	case "or":
		return TokenOr
	case "print":
		return TokenPrint
	case "return":
		return TokenReturn
	case "super":
		return TokenSuper
	case "this":
		return TokenThis
	case "true":
		return TokenTrue
	case "var":
		return TokenVar
	case "while":
		return TokenWhile
	}
	return TokenIdentifier
}
