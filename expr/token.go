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

// TokenKind classifies a token produced by the Lexer.
type TokenKind int

const (
	OpenParen TokenKind = iota
	CloseParen
	Identifier
	Integer
	Space
	EndOfFile
)

func (k TokenKind) String() string {
	switch k {
	case OpenParen:
		return "'('"
	case CloseParen:
		return "')'"
	case Identifier:
		return "identifier"
	case Integer:
		return "integer"
	case Space:
		return "space"
	case EndOfFile:
		return "end of input"
	}
	return "unknown token"
}

// Token is a single lexeme. Text is only filled for Identifier and
// Integer; Pos is the byte offset of the first character in the input.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (t Token) String() string {
	if t.Kind == Identifier || t.Kind == Integer {
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
	return t.Kind.String()
}

/*
 tokenizer rules, checked in order:
   end of input        -> EndOfFile
   ' '                 -> Space (whitespace is a real token here; the
                          grammar consumes it deliberately, the lexer
                          never skips it)
   '(' / ')'           -> OpenParen / CloseParen
   digit, or '-'+digit -> Integer (optional leading '-', then digits)
   letter              -> Identifier (letters and digits)
   anything else       -> syntax error
*/

// Lexer turns the input into tokens on demand. It supports one token of
// lookahead through a held-back token; the cursor is never rewound.
type Lexer struct {
	input  string
	pos    int
	peeked *Token
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token and advances past it. A held-back token
// from Peek is drained first.
func (l *Lexer) Next() Token {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t
	}
	return l.scan()
}

// Peek returns the upcoming token without consuming it.
func (l *Lexer) Peek() Token {
	if l.peeked == nil {
		t := l.scan()
		l.peeked = &t
	}
	return *l.peeked
}

func (l *Lexer) scan() Token {
	start := l.pos
	if l.pos >= len(l.input) {
		return Token{Kind: EndOfFile, Pos: start}
	}
	ch := l.input[l.pos]
	switch {
	case ch == ' ':
		l.pos++
		return Token{Kind: Space, Pos: start}
	case ch == '(':
		l.pos++
		return Token{Kind: OpenParen, Pos: start}
	case ch == ')':
		l.pos++
		return Token{Kind: CloseParen, Pos: start}
	case isDigit(ch) || ch == '-' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]):
		l.pos++ // sign or first digit
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		return Token{Kind: Integer, Text: l.input[start:l.pos], Pos: start}
	case isLetter(ch):
		l.pos++
		for l.pos < len(l.input) && isAlnum(l.input[l.pos]) {
			l.pos++
		}
		return Token{Kind: Identifier, Text: l.input[start:l.pos], Pos: start}
	}
	panic(&SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", rune(ch))})
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isAlnum(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
