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
	"bytes"
	"encoding/json"
	"testing"
)

type bufCloser struct {
	bytes.Buffer
}

func (b *bufCloser) Close() error { return nil }

func TestTrace_DurationFraming(t *testing.T) {
	buf := new(bufCloser)
	tr := NewTrace(buf)
	tr.Duration("(add 1 2)", "eval", func() {})
	tr.Event("marker", "eval", "X")
	tr.Close()

	var events []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &events); err != nil {
		t.Fatalf("trace is not a JSON array: %v\n%s", err, buf.Bytes())
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0]["ph"] != "B" || events[1]["ph"] != "E" || events[2]["ph"] != "X" {
		t.Fatalf("event phases wrong: %v", events)
	}
	if events[0]["name"] != "(add 1 2)" || events[0]["cat"] != "eval" {
		t.Fatalf("event payload wrong: %v", events[0])
	}
}

func TestTrace_EvaluateEmitsEvents(t *testing.T) {
	buf := new(bufCloser)
	Trace = NewTrace(buf)
	defer func() { Trace = nil }()

	if _, err := Evaluate("(add 1 2)"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	Trace.Close()
	Trace = nil

	var events []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &events); err != nil {
		t.Fatalf("trace output: %v\n%s", err, buf.Bytes())
	}
	if len(events) != 2 {
		t.Fatalf("expected B+E events, got %d", len(events))
	}
	if events[0]["name"] != "(add 1 2)" {
		t.Fatalf("trace label: %v", events[0])
	}
}
