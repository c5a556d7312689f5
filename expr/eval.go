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
/*
 * A minimal prefix expression evaluator in the spirit of lis.py
 * http://norvig.com/lispy.html
 *
 * The parser evaluates while it parses; there is no syntax tree.
 */

package expr

import (
	"fmt"
	"strconv"
	"time"
)

/*
 Eval
*/

// Evaluate parses and evaluates exactly one expression and returns its
// value. The returned error is either a *SyntaxError or an
// *EvaluationError; the first error encountered aborts the whole
// evaluation. Each call owns its own lexer state and environment chain,
// so concurrent or repeated calls do not interact.
func Evaluate(input string) (result int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *SyntaxError:
				err = e
			case *EvaluationError:
				err = e
			default:
				panic(r)
			}
		}
	}()
	var start time.Time
	if TracePrint {
		start = time.Now()
	}
	if Trace != nil {
		Trace.Duration(traceLabel(input), "eval", func() {
			result = evalString(input)
		})
	} else {
		result = evalString(input)
	}
	if TracePrint {
		fmt.Println("trace", time.Since(start).String(), traceLabel(input))
	}
	return
}

func evalString(input string) int64 {
	ev := &evaluator{lex: NewLexer(input)}
	ev.advance()
	if ev.cur.Kind == Space {
		// tolerate one leading space, like any space between forms
		ev.advance()
	}
	value := ev.evalExpr(NewEnv(nil))
	if ev.cur.Kind != EndOfFile {
		errSyntax(ev.cur.Pos, "extra characters after expression, found %s", ev.cur)
	}
	return value
}

// evaluator is the per-call parse state: the one lookahead token held
// as cur, plus the recursion depth for the stack guard. Nothing in here
// survives a call to Evaluate.
type evaluator struct {
	lex   *Lexer
	cur   Token
	depth int
}

func (ev *evaluator) advance() {
	ev.cur = ev.lex.Next()
}

// expect consumes the current token if it has the wanted kind.
func (ev *evaluator) expect(kind TokenKind) Token {
	if ev.cur.Kind != kind {
		errSyntax(ev.cur.Pos, "expected %s, found %s", kind, ev.cur)
	}
	t := ev.cur
	ev.advance()
	return t
}

// evalExpr parses one expression starting at the current token and
// immediately computes its value in en.
func (ev *evaluator) evalExpr(en *Env) int64 {
	ev.depth++
	if ev.depth > Settings.MaxDepth {
		errEval("maximum recursion depth exceeded (%d)", Settings.MaxDepth)
	}
	defer func() { ev.depth-- }()

	switch ev.cur.Kind {
	case Integer:
		v, err := strconv.ParseInt(ev.cur.Text, 10, 64)
		if err != nil {
			errSyntax(ev.cur.Pos, "invalid integer literal %q", ev.cur.Text)
		}
		ev.advance()
		return v
	case Identifier:
		name := ev.cur.Text
		ev.advance()
		return en.Lookup(name)
	case OpenParen:
		return ev.evalForm(en)
	case EndOfFile:
		errSyntax(ev.cur.Pos, "unexpected end of input")
	}
	errSyntax(ev.cur.Pos, "unexpected %s in expression", ev.cur)
	return 0
}

// evalForm handles a parenthesized form: a keyword (let) or a declared
// operator applied to its operands.
func (ev *evaluator) evalForm(en *Env) int64 {
	ev.expect(OpenParen)
	if ev.cur.Kind != Identifier {
		errSyntax(ev.cur.Pos, "expected operator or keyword after '(', found %s", ev.cur)
	}
	head := ev.cur.Text
	ev.advance()

	if head == "let" {
		return ev.evalLet(en)
	}

	def := LookupOperator(head)
	if def == nil {
		errEval("unknown operator or keyword: %s", head)
	}
	args := make([]int64, 0, def.MaxParameter)
	for i := 0; i < def.MinParameter; i++ {
		// operands are separated by exactly one space
		ev.expect(Space)
		args = append(args, ev.evalExpr(en))
	}
	// the closing paren must follow the last operand directly; a stray
	// space means a further operand follows, report that token
	if ev.cur.Kind == Space {
		if t := ev.lex.Peek(); t.Kind != CloseParen && t.Kind != EndOfFile {
			errSyntax(t.Pos, "expected %s, found %s", CloseParen, t)
		}
	}
	ev.expect(CloseParen)
	return def.Fn(args...)
}

// evalLet evaluates a sequential binding form. Every binding value is
// evaluated in the child environment under construction, so later
// bindings see earlier ones. The binding loop stops when the current
// identifier is directly followed by ')': that identifier is the body.
func (ev *evaluator) evalLet(en *Env) int64 {
	child := NewEnv(en)
	ev.expect(Space)
	for ev.cur.Kind == Identifier {
		if ev.lex.Peek().Kind == CloseParen {
			break // body expression, not a binding
		}
		name := ev.cur.Text
		ev.advance()
		ev.expect(Space)
		child.Define(name, ev.evalExpr(child))
		if ev.cur.Kind != CloseParen {
			ev.expect(Space)
		}
	}
	value := ev.evalExpr(child)
	ev.expect(CloseParen)
	return value
}

// traceLabel keeps trace entries readable for very long inputs.
func traceLabel(input string) string {
	if len(input) > 120 {
		return input[:117] + "..."
	}
	return input
}
