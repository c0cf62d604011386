package lox

import (
	"errors"
	"fmt"
	"strconv"
)

// ScanError describes one lexical problem. Scanning continues past the
// error, so a single run may report several.
type ScanError struct {
	Line    int
	Message string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Scanner converts source text into tokens. Build a fresh Scanner per
// source string; it carries no state across runs.
type Scanner struct {
	runes []rune

	start   int
	current int
	line    int

	errors []ScanError
}

func NewScanner(source string) *Scanner {
	return &Scanner{runes: []rune(source), line: 1}
}

// ScanTokens scans the whole source in one left-to-right pass. It never
// fails: lexical errors are recorded and scanning resumes at the next
// character. The returned stream always ends with an EOF token.
func (s *Scanner) ScanTokens() []Token {
	var tokens []Token
	for !s.isAtEnd() {
		s.start = s.current
		if tok, ok := s.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, Token{Kind: TokenEOF, Line: s.line})
	return tokens
}

// Errors returns the lexical errors reported so far, in source order.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() (Token, bool) {
	c := s.advance()
	switch c {
	case '(':
		return s.makeToken(TokenLeftParen), true
	case ')':
		return s.makeToken(TokenRightParen), true
	case '{':
		return s.makeToken(TokenLeftBrace), true
	case '}':
		return s.makeToken(TokenRightBrace), true
	case ',':
		return s.makeToken(TokenComma), true
	case '.':
		return s.makeToken(TokenDot), true
	case '-':
		return s.makeToken(TokenMinus), true
	case '+':
		return s.makeToken(TokenPlus), true
	case ';':
		return s.makeToken(TokenSemicolon), true
	case '*':
		return s.makeToken(TokenStar), true
	case '!':
		if s.match('=') {
			return s.makeToken(TokenBangEqual), true
		}
		return s.makeToken(TokenBang), true
	case '=':
		if s.match('=') {
			return s.makeToken(TokenEqualEqual), true
		}
		return s.makeToken(TokenEqual), true
	case '<':
		if s.match('=') {
			return s.makeToken(TokenLessEqual), true
		}
		return s.makeToken(TokenLess), true
	case '>':
		if s.match('=') {
			return s.makeToken(TokenGreaterEqual), true
		}
		return s.makeToken(TokenGreater), true
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
			return Token{}, false
		}
		return s.makeToken(TokenSlash), true
	case ' ', '\r', '\t':
		return Token{}, false
	case '\n':
		s.line++
		return Token{}, false
	case '"':
		return s.scanString(), true
	default:
		switch {
		case isDigit(c):
			return s.scanNumber(), true
		case isAlpha(c):
			return s.scanIdentifier(), true
		default:
			s.errorf("Unexpected character: %c", c)
			return Token{}, false
		}
	}
}

func (s *Scanner) scanString() Token {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		// Emit the partial token with the text consumed so far.
		s.errorf("Unterminated string.")
		text := string(s.runes[s.start+1 : s.current])
		return s.makeLiteralToken(TokenString, NewString(text))
	}

	s.advance() // closing quote

	text := string(s.runes[s.start+1 : s.current-1])
	return s.makeLiteralToken(TokenString, NewString(text))
}

func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A trailing dot with no digit after it is not part of the number.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// An all-digit lexeme can only fail by overflowing, in which case
	// ParseFloat already returned ±Inf.
	n, err := strconv.ParseFloat(s.lexeme(), 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			panic(fmt.Sprintf("lox: number lexeme %q failed to parse: %v", s.lexeme(), err))
		}
	}
	return s.makeLiteralToken(TokenNumber, NewNumber(n))
}

func (s *Scanner) scanIdentifier() Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	kind := lookupKeyword(s.lexeme())
	switch kind {
	case TokenTrue:
		return s.makeLiteralToken(kind, NewBool(true))
	case TokenFalse:
		return s.makeLiteralToken(kind, NewBool(false))
	default:
		return s.makeToken(kind)
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.runes)
}

func (s *Scanner) advance() rune {
	c := s.runes[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.runes[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.runes) {
		return 0
	}
	return s.runes[s.current+1]
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.runes[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) lexeme() string {
	return string(s.runes[s.start:s.current])
}

func (s *Scanner) makeToken(kind TokenKind) Token {
	return s.makeLiteralToken(kind, Value{})
}

func (s *Scanner) makeLiteralToken(kind TokenKind, literal Value) Token {
	return Token{Kind: kind, Lexeme: s.lexeme(), Literal: literal, Line: s.line}
}

func (s *Scanner) errorf(format string, args ...any) {
	s.errors = append(s.errors, ScanError{Line: s.line, Message: fmt.Sprintf(format, args...)})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
