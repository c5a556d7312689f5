/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package expr

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func mustEval(t *testing.T, input string) int64 {
	t.Helper()
	v, err := Evaluate(input)
	if err != nil {
		t.Fatalf("Evaluate(%q): unexpected error: %v", input, err)
	}
	return v
}

func TestEval_Basics(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"42", 42},
		{"-42", -42},
		{"0", 0},
		{" 42", 42}, // one leading space is allowed
		{"(add 10 20)", 30},
		{"(mult 4 5)", 20},
		{"(add -5 -6)", -11},
		{"(add (mult 2 3) (add 1 1))", 8},
		{"(let x 2 y 3 (mult x y))", 6},
		{"(let x 1 (let y x y))", 1},
	}
	for _, c := range cases {
		if got := mustEval(t, c.input); got != c.want {
			t.Fatalf("Evaluate(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestEval_SequentialBinding(t *testing.T) {
	// the binding for y sees the prior binding of x in the same let
	if got := mustEval(t, "(let x 2 y (add x 1) y)"); got != 3 {
		t.Fatalf("sequential binding: got %d, want 3", got)
	}
}

func TestEval_Shadowing(t *testing.T) {
	if got := mustEval(t, "(let x 3 (let x 2 x))"); got != 2 {
		t.Fatalf("shadowing: got %d, want 2", got)
	}
	// the inner let must not destroy the outer binding
	if got := mustEval(t, "(let x 3 (add (let x 2 x) x))"); got != 5 {
		t.Fatalf("shadowed outer binding damaged: got %d, want 5", got)
	}
}

func TestEval_RebindingOverwrites(t *testing.T) {
	if got := mustEval(t, "(let x 2 x 5 x)"); got != 5 {
		t.Fatalf("rebinding: got %d, want 5", got)
	}
	// the second binding of x may use the first
	if got := mustEval(t, "(let x 2 x (mult x x) x)"); got != 4 {
		t.Fatalf("rebinding with self-reference: got %d, want 4", got)
	}
}

func TestEval_UndefinedVariable(t *testing.T) {
	_, err := Evaluate("(add x 5)")
	var everr *EvaluationError
	if !errors.As(err, &everr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
	if !strings.Contains(everr.Msg, "x") {
		t.Fatalf("error should name the variable: %v", everr)
	}
}

func TestEval_UnknownOperator(t *testing.T) {
	_, err := Evaluate("(foo 1 2)")
	var everr *EvaluationError
	if !errors.As(err, &everr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
	if !strings.Contains(everr.Msg, "foo") {
		t.Fatalf("error should name the operator: %v", everr)
	}
}

func TestEval_Arity(t *testing.T) {
	for _, input := range []string{"(mult 1 2 3)", "(add 1)", "(add 1 2 3)"} {
		_, err := Evaluate(input)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("Evaluate(%q): expected *SyntaxError, got %v", input, err)
		}
	}

	// a third operand is reported as the offending token
	_, err := Evaluate("(mult 1 2 3)")
	var serr *SyntaxError
	if !errors.As(err, &serr) || !strings.Contains(serr.Msg, `integer "3"`) {
		t.Fatalf("third operand should be named: %v", err)
	}
	// a space directly before ')' is still rejected as the space itself
	_, err = Evaluate("(add 1 2 )")
	if !errors.As(err, &serr) || !strings.Contains(serr.Msg, "found space") {
		t.Fatalf("trailing space before ')': %v", err)
	}
}

func TestEval_SyntaxErrors(t *testing.T) {
	cases := []string{
		"",                // empty input
		"(",               // unexpected end of input
		"(add 1 2",        // missing )
		"(add",            // operand missing
		"()",              // operator missing
		"(42 1 2)",        // integer in operator position
		"42 extra",        // trailing tokens
		"42 ",             // trailing space
		"  42",            // two leading spaces
		"(add  1 2)",      // double space between operands
		"(add 1 2]",       // unexpected character
		"(add - 1)",       // bare minus is no integer
		"(let )",          // no bindings, no body
		"(let x 1)",       // binding without body
		"(add 1\t2)",      // tab is not a space token
		"9999999999999999999999", // out of 64-bit range
	}
	for _, input := range cases {
		_, err := Evaluate(input)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("Evaluate(%q): expected *SyntaxError, got %v", input, err)
		}
	}
}

func TestEval_ErrorOrder(t *testing.T) {
	// left operand errors before the right operand is even looked at
	_, err := Evaluate("(add nope (foo 1 2))")
	var everr *EvaluationError
	if !errors.As(err, &everr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
	if !strings.Contains(everr.Msg, "nope") {
		t.Fatalf("left operand should fail first: %v", everr)
	}
	// bindings fail in declared order
	_, err = Evaluate("(let a b c d a)")
	if !errors.As(err, &everr) || !strings.Contains(everr.Msg, "b") {
		t.Fatalf("first binding should fail first: %v", err)
	}
}

func TestEval_OverflowWraps(t *testing.T) {
	if got := mustEval(t, "(add 9223372036854775807 1)"); got != math.MinInt64 {
		t.Fatalf("add overflow: got %d, want %d", got, int64(math.MinInt64))
	}
	if got := mustEval(t, "(mult 9223372036854775807 2)"); got != -2 {
		t.Fatalf("mult overflow: got %d, want -2", got)
	}
	if got := mustEval(t, "-9223372036854775808"); got != math.MinInt64 {
		t.Fatalf("min literal: got %d", got)
	}
}

func TestEval_Idempotence(t *testing.T) {
	const input = "(let x 2 y (add x 1) (mult x y))"
	first := mustEval(t, input)
	second := mustEval(t, input)
	if first != second {
		t.Fatalf("evaluation is not idempotent: %d vs %d", first, second)
	}
}

func TestEval_DepthGuard(t *testing.T) {
	saved := Settings.MaxDepth
	Settings.MaxDepth = 16
	defer func() { Settings.MaxDepth = saved }()

	deep := strings.Repeat("(add 1 ", 64) + "1" + strings.Repeat(")", 64)
	_, err := Evaluate(deep)
	var everr *EvaluationError
	if !errors.As(err, &everr) {
		t.Fatalf("expected *EvaluationError for deep nesting, got %v", err)
	}
	if !strings.Contains(everr.Msg, "depth") {
		t.Fatalf("depth guard message: %v", everr)
	}

	// shallow input still passes under the same limit
	if got := mustEval(t, "(add 1 (add 2 3))"); got != 6 {
		t.Fatalf("shallow input under depth limit: got %d", got)
	}
}

func TestEval_LetBodyForms(t *testing.T) {
	// body may be any expression, not only an identifier
	if got := mustEval(t, "(let x 2 (add x 3))"); got != 5 {
		t.Fatalf("compound body: got %d", got)
	}
	if got := mustEval(t, "(let x 2 7)"); got != 7 {
		t.Fatalf("literal body: got %d", got)
	}
	// zero bindings with a parenthesized body
	if got := mustEval(t, "(let (add 1 2))"); got != 3 {
		t.Fatalf("zero bindings: got %d", got)
	}
}
