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

import "fmt"

// SyntaxError means the input is malformed: an unexpected character in
// the lexer, an unexpected token in the parser, a premature end of
// input or trailing garbage after the top-level expression.
type SyntaxError struct {
	Pos int // byte offset into the input
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// EvaluationError means the input is well-formed but cannot be
// computed: an undefined variable, an unknown operator or an exhausted
// recursion budget.
type EvaluationError struct {
	Msg string
}

func (e *EvaluationError) Error() string {
	return "evaluation error: " + e.Msg
}

// errSyntax and errEval abort the current evaluation; the panic is
// caught again in Evaluate. The first error wins, there is no recovery
// or partial result.
func errSyntax(pos int, format string, a ...any) {
	panic(&SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, a...)})
}

func errEval(format string, a ...any) {
	panic(&EvaluationError{Msg: fmt.Sprintf(format, a...)})
}
