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
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

const newprompt = "\033[32m>\033[0m "
const contprompt = "\033[32m.\033[0m "
const resultprompt = "\033[31m=\033[0m "

var ReplInstance *readline.Instance

// Repl reads one expression per line, evaluates it and prints the
// value or the error. A line ending in the middle of an expression
// continues on the next prompt. Meta commands start with a dot.
func Repl() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".letcalc-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()
	ReplInstance = l

	oldline := ""
	for {
		line, err := l.Readline()
		if oldline != "" {
			// the grammar separates forms with single spaces, so a
			// continued line is joined with one space
			line = strings.TrimRight(oldline, " ") + " " + strings.TrimLeft(line, " ")
		}
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			oldline = ""
			l.SetPrompt(newprompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		oldline = replLine(line)
		if oldline != "" {
			l.SetPrompt(contprompt)
		} else {
			l.SetPrompt(newprompt)
		}
	}
}

// replLine handles one completed input line. It returns the line again
// when it ended in the middle of an expression and the next prompt has
// to continue it, otherwise the empty string.
func replLine(line string) (oldline string) {
	// anti-panic func
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("panic:", r)
			if Settings.Backtrace {
				fmt.Println(string(debug.Stack()))
			}
			oldline = ""
		}
	}()
	if strings.HasPrefix(line, ".") {
		replMeta(line)
		return ""
	}

	result, err := Evaluate(line)
	if err != nil {
		var serr *SyntaxError
		if errors.As(err, &serr) && strings.Contains(serr.Msg, "end of input") {
			// the expression continues on the next line
			return line
		}
		fmt.Println(err)
		return ""
	}
	fmt.Print(resultprompt)
	fmt.Println(strconv.FormatInt(result, 10))
	return ""
}

func replMeta(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".help":
		if len(fields) > 1 {
			Help(fields[1])
		} else {
			Help("")
		}
	case ".set":
		fmt.Println(ChangeSettings(fields[1:]...))
	default:
		fmt.Println("unknown command " + fields[0] + " (try .help or .set)")
	}
}
