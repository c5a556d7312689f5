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

/*
 Environments
*/

type Vars map[string]int64

// Env is one scope in the lexical environment chain. A name defined
// here shadows any same-named binding in an outer scope; lookups never
// write to outer scopes.
type Env struct {
	Vars  Vars
	Outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{Vars: make(Vars), Outer: outer}
}

// Define inserts or overwrites a binding in the local scope only.
func (e *Env) Define(name string, value int64) {
	e.Vars[name] = value
}

// Lookup resolves a name against this scope, then the outer chain.
func (e *Env) Lookup(name string) int64 {
	if v, ok := e.Vars[name]; ok {
		return v
	}
	if e.Outer == nil {
		errEval("undefined variable: %s", name)
	}
	return e.Outer.Lookup(name)
}
