package lox

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func evalSource(t *testing.T, source string) (Value, error) {
	t.Helper()
	expr, err := parseSource(t, source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if expr == nil {
		t.Fatalf("expected an expression for %q", source)
	}
	return Evaluate(expr)
}

func mustEval(t *testing.T, source string) Value {
	t.Helper()
	v, err := evalSource(t, source)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	return v
}

func TestEvaluatePrecedence(t *testing.T) {
	if v := mustEval(t, "2 + 3 * 4"); v.Kind() != KindNumber || v.Number() != 14 {
		t.Fatalf("expected 14, got %s", v)
	}
	if v := mustEval(t, "(2 + 3) * 4"); v.Number() != 20 {
		t.Fatalf("expected 20, got %s", v)
	}
}

func TestEvaluateNumericLiteralRoundTrip(t *testing.T) {
	for _, n := range []float64{0, 1, 42, 0.25, 45.67, 123456.789} {
		source := fmt.Sprintf("%g", n)
		v := mustEval(t, source)
		if v.Kind() != KindNumber || v.Number() != n {
			t.Fatalf("%q: expected %g back, got %s", source, n, v)
		}
	}
}

func TestEvaluateStringConcatenation(t *testing.T) {
	v := mustEval(t, `"a" + "b"`)
	if v.Kind() != KindString || v.Text() != "ab" {
		t.Fatalf("expected \"ab\", got %s", v)
	}
}

func TestEvaluatePlusTypeMismatch(t *testing.T) {
	_, err := evalSource(t, `"a" + 1`)

	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected *RuntimeError, got %v", err)
	}
	if runtimeErr.Message != "Operands must be two numbers or two strings." {
		t.Fatalf("unexpected message: %q", runtimeErr.Message)
	}
	if runtimeErr.Token.Kind != TokenPlus {
		t.Fatalf("error should carry the operator token, got %s", runtimeErr.Token.Kind)
	}
	if got := err.Error(); got != "Operands must be two numbers or two strings.\n[line 1]" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestEvaluateEquality(t *testing.T) {
	cases := []struct {
		source string
		want   bool
	}{
		{"1 == 1", true},
		{"1 == 2", false},
		{`1 == "1"`, false},
		{"nil == nil", true},
		{"nil == false", false},
		{"true == 1", false},
		{`"a" == "a"`, true},
		{`"a" == "b"`, false},
		{"1 != 2", true},
		{`1 != "1"`, true},
	}
	for _, tc := range cases {
		v := mustEval(t, tc.source)
		if v.Kind() != KindBool || v.Bool() != tc.want {
			t.Fatalf("%q: expected %v, got %s", tc.source, tc.want, v)
		}
	}
}

func TestEvaluateTruthiness(t *testing.T) {
	cases := []struct {
		source string
		want   bool
	}{
		{"!nil", true},
		{"!false", true},
		{"!true", false},
		{"!0", false},
		{`!""`, false},
		{"!!nil", false},
	}
	for _, tc := range cases {
		v := mustEval(t, tc.source)
		if v.Kind() != KindBool || v.Bool() != tc.want {
			t.Fatalf("%q: expected %v, got %s", tc.source, tc.want, v)
		}
	}
}

func TestEvaluateComparisons(t *testing.T) {
	cases := []struct {
		source string
		want   bool
	}{
		{"2 > 1", true},
		{"1 > 2", false},
		{"1 >= 1", true},
		{"1 < 2", true},
		{"2 <= 1", false},
		{"2 <= 2", true},
	}
	for _, tc := range cases {
		v := mustEval(t, tc.source)
		if v.Kind() != KindBool || v.Bool() != tc.want {
			t.Fatalf("%q: expected %v, got %s", tc.source, tc.want, v)
		}
	}
}

func TestEvaluateComparisonRequiresNumbers(t *testing.T) {
	for _, source := range []string{"1 > true", `"a" < "b"`, "nil - 1", "2 * nil"} {
		_, err := evalSource(t, source)
		var runtimeErr *RuntimeError
		if !errors.As(err, &runtimeErr) {
			t.Fatalf("%q: expected *RuntimeError, got %v", source, err)
		}
		if runtimeErr.Message != "Operands must be numbers." {
			t.Fatalf("%q: unexpected message %q", source, runtimeErr.Message)
		}
	}
}

func TestEvaluateUnaryMinus(t *testing.T) {
	if v := mustEval(t, "-3"); v.Number() != -3 {
		t.Fatalf("expected -3, got %s", v)
	}
	if v := mustEval(t, "--3"); v.Number() != 3 {
		t.Fatalf("expected 3, got %s", v)
	}

	_, err := evalSource(t, `-"x"`)
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected *RuntimeError, got %v", err)
	}
	if runtimeErr.Message != "Operand must be a number." {
		t.Fatalf("unexpected message: %q", runtimeErr.Message)
	}
	if runtimeErr.Token.Kind != TokenMinus {
		t.Fatalf("error should carry the minus token, got %s", runtimeErr.Token.Kind)
	}
}

func TestEvaluateDivisionFollowsIEEE(t *testing.T) {
	if v := mustEval(t, "1 / 0"); !math.IsInf(v.Number(), 1) {
		t.Fatalf("expected +Inf, got %s", v)
	}
	if v := mustEval(t, "-1 / 0"); !math.IsInf(v.Number(), -1) {
		t.Fatalf("expected -Inf, got %s", v)
	}
	if v := mustEval(t, "0 / 0"); !math.IsNaN(v.Number()) {
		t.Fatalf("expected NaN, got %s", v)
	}
}

func TestEvaluateNilLiteral(t *testing.T) {
	v := mustEval(t, "nil")
	if !v.IsNil() {
		t.Fatalf("expected nil, got %s", v)
	}
}

func TestEvaluateLeftOperandErrorWins(t *testing.T) {
	// The left subtree is reduced first, so its failure is the one
	// reported even when the operator's own checks would also fail.
	_, err := evalSource(t, `-"x" + 1`)
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected *RuntimeError, got %v", err)
	}
	if runtimeErr.Message != "Operand must be a number." {
		t.Fatalf("unexpected message: %q", runtimeErr.Message)
	}
}

func TestEvaluateRuntimeErrorCarriesOperatorLine(t *testing.T) {
	_, err := evalSource(t, "1\n+ \"a\"")
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected *RuntimeError, got %v", err)
	}
	if runtimeErr.Token.Line != 2 {
		t.Fatalf("expected the operator's line 2, got %d", runtimeErr.Token.Line)
	}
	if got := err.Error(); got != "Operands must be two numbers or two strings.\n[line 2]" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestEvaluateSameTreeTwice(t *testing.T) {
	expr, err := parseSource(t, "2 + 3 * 4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	first, err := Evaluate(expr)
	if err != nil {
		t.Fatalf("first evaluation failed: %v", err)
	}
	second, err := Evaluate(expr)
	if err != nil {
		t.Fatalf("second evaluation failed: %v", err)
	}
	if !first.Equal(second) || first.Number() != 14 {
		t.Fatalf("expected identical results, got %s and %s", first, second)
	}
}
