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
	"fmt"
	"strconv"

	"github.com/dc0d/onexit"
)

type SettingsT struct {
	Backtrace  bool // print a stack trace when the REPL catches a panic
	Trace      bool
	TracePrint bool
	MaxDepth   int // recursion depth guard for deeply nested input
}

var Settings SettingsT = SettingsT{false, false, false, 10000}

// call this after you filled Settings
func InitSettings() {
	SetTrace(Settings.Trace)
	TracePrint = Settings.TracePrint
	if Settings.MaxDepth <= 0 {
		Settings.MaxDepth = 10000
	}
	onexit.Register(func() { SetTrace(false) }) // close trace file on exit
}

// ChangeSettings lists, reads or writes the runtime settings: no
// arguments lists all of them, one argument reads a setting, two
// arguments write it. Writes to Trace and TracePrint apply right away.
func ChangeSettings(a ...string) string {
	if len(a) == 0 {
		return fmt.Sprint(
			"Backtrace ", Settings.Backtrace,
			"\nTrace ", Settings.Trace,
			"\nTracePrint ", Settings.TracePrint,
			"\nMaxDepth ", Settings.MaxDepth)
	} else if len(a) == 1 {
		switch a[0] {
		case "Backtrace":
			return strconv.FormatBool(Settings.Backtrace)
		case "Trace":
			return strconv.FormatBool(Settings.Trace)
		case "TracePrint":
			return strconv.FormatBool(Settings.TracePrint)
		case "MaxDepth":
			return strconv.Itoa(Settings.MaxDepth)
		default:
			panic("unknown setting: " + a[0])
		}
	} else {
		switch a[0] {
		case "Backtrace":
			Settings.Backtrace = parseSettingBool(a[0], a[1])
		case "Trace":
			Settings.Trace = parseSettingBool(a[0], a[1])
			SetTrace(Settings.Trace)
		case "TracePrint":
			Settings.TracePrint = parseSettingBool(a[0], a[1])
			TracePrint = Settings.TracePrint
		case "MaxDepth":
			n, err := strconv.Atoi(a[1])
			if err != nil || n <= 0 {
				panic("setting MaxDepth needs a positive number, got " + a[1])
			}
			Settings.MaxDepth = n
		default:
			panic("unknown setting: " + a[0])
		}
		return a[1]
	}
}

func parseSettingBool(name, value string) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		panic("setting " + name + " needs a boolean, got " + value)
	}
	return b
}
