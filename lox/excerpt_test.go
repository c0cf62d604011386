package lox

import (
	"errors"
	"testing"
)

func TestFormatErrorWithSourceParseError(t *testing.T) {
	source := "(1 + 2"
	_, err := parseSource(t, source)
	if err == nil {
		t.Fatalf("expected a parse error")
	}

	got := FormatErrorWithSource(err, source)
	want := "[line 1] Error: Expect ')' after expression.\n  --> line 1\n 1 | (1 + 2"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatErrorWithSourceRuntimeError(t *testing.T) {
	source := "1\n+ \"a\""
	_, err := evalSource(t, source)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}

	got := FormatErrorWithSource(err, source)
	want := "Operands must be two numbers or two strings.\n[line 2]\n  --> line 2\n 2 | + \"a\""
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatErrorWithSourceForeignError(t *testing.T) {
	err := errors.New("boom")
	if got := FormatErrorWithSource(err, "1 + 2"); got != "boom" {
		t.Fatalf("expected plain message, got %q", got)
	}
}

func TestFormatErrorWithSourceLineOutOfRange(t *testing.T) {
	err := &ParseError{Line: 99, Message: "Expect expression."}
	if got := FormatErrorWithSource(err, "1 + 2"); got != err.Error() {
		t.Fatalf("expected plain rendering for out-of-range line, got %q", got)
	}
}
