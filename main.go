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
	letcalc - a tiny parenthesized prefix calculator with let bindings

	expressions: 42 | (add a b) | (mult a b) | (let name value ... body)
*/
package main

import "os"
import "fmt"
import "flag"
import "time"
import "strings"
import "syscall"
import "os/signal"
import "crypto/rand"
import "github.com/google/uuid"
import "github.com/fsnotify/fsnotify"
import "github.com/launix-de/letcalc/expr"

// runScript evaluates a file, one expression per non-empty line, and
// prints one result per line. The first error stops the file.
func runScript(filename string) error {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	for i, line := range strings.Split(string(bytes), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		result, err := expr.Evaluate(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
		fmt.Println(result)
	}
	return nil
}

// watchScript runs a file once and reruns it whenever it changes on
// disk. Errors during a rerun are logged, watching continues.
func watchScript(filename string) {
	rerun := func() {
		if err := runScript(filename); err != nil {
			fmt.Println(err)
		}
	}
	rerun() // run once at the beginning in sync
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		panic(err)
	}
	go func() {
		for {
			select {
			case <-watcher.Events:
				// flush all other events
				for {
					time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
					select {
					case <-watcher.Events:
						// ignore
					default:
						goto to_rerun
					}
				}
			to_rerun:
				rerun()
				watcher.Add(filename) // text editors rename, so we have to rewatch
			}
		}
	}()
	err = watcher.Add(filename)
	if err != nil {
		panic(err)
	}
}

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func main() {
	fmt.Print(`letcalc Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)

	// init random generator for trace session ids
	uuid.SetRand(rand.Reader)

	// parse command line options
	var commands arrayFlags
	flag.Var(&commands, "c", "Evaluate expression")

	watch := false
	flag.BoolVar(&watch, "watch", false, "Rerun script files whenever they change on disk")

	trace := false
	flag.BoolVar(&trace, "trace", false, "Write a Chrome trace-event file per run")

	traceprint := false
	flag.BoolVar(&traceprint, "traceprint", false, "Print evaluation durations to stdout")

	backtrace := false
	flag.BoolVar(&backtrace, "backtrace", false, "Print stack traces for panics caught in the REPL")

	docfolder := ""
	flag.StringVar(&docfolder, "doc", "", "Write operator documentation to this folder and exit")

	maxdepth := 10000
	flag.IntVar(&maxdepth, "depth", 10000, "Maximum expression nesting depth")

	flag.Parse()
	scripts := flag.Args()

	expr.Settings.Backtrace = backtrace
	expr.Settings.Trace = trace
	expr.Settings.TracePrint = traceprint
	expr.Settings.MaxDepth = maxdepth
	expr.InitSettings()

	if docfolder != "" {
		if err := expr.WriteDocumentation(docfolder); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	// install exit handler
	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
	go (func() {
		<-cancelChan
		exitroutine()
		os.Exit(1)
	})()

	for _, command := range commands {
		result, err := expr.Evaluate(command)
		if err != nil {
			fmt.Println(err)
			exitroutine()
			os.Exit(1)
		}
		fmt.Println(result)
	}

	if watch && len(scripts) > 0 {
		for _, script := range scripts {
			watchScript(script)
		}
		select {} // keep watching until SIGINT
	}

	for _, script := range scripts {
		if err := runScript(script); err != nil {
			fmt.Println(err)
			exitroutine()
			os.Exit(1)
		}
	}

	if len(commands) == 0 && len(scripts) == 0 {
		fmt.Print(`
    Type .help to list operators

`)
		// REPL shell
		expr.Repl()
	}

	// normal shutdown
	exitroutine()
}

func exitroutine() {
	if expr.ReplInstance != nil {
		// in case it dosen't exit properly
		expr.ReplInstance.Close()
	}
	expr.SetTrace(false)
}
