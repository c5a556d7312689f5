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

import "os"
import "fmt"
import "strings"
import "path/filepath"

// Declaration describes one operator of the language. The grammar
// enforces the parameter count: operands are space-separated and the
// closing parenthesis must follow the last one.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Params       []DeclarationParameter
	Returns      string // int
	Fn           func(...int64) int64
}

type DeclarationParameter struct {
	Name string
	Type string
	Desc string
}

var declaration_titles []string
var declarations map[string]*Declaration = make(map[string]*Declaration)

func DeclareTitle(title string) {
	declaration_titles = append(declaration_titles, "#"+title)
}

func Declare(def *Declaration) {
	declaration_titles = append(declaration_titles, def.Name)
	declarations[def.Name] = def
}

// LookupOperator returns the declaration for an operator name, or nil.
// The keyword let is not an operator; it is handled by the evaluator.
func LookupOperator(name string) *Declaration {
	return declarations[name]
}

func init() {
	DeclareTitle("Arithmetic")
	Declare(&Declaration{
		"add", "adds two integers; the result wraps around on overflow",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"left", "int", "left operand"},
			DeclarationParameter{"right", "int", "right operand"},
		}, "int",
		func(a ...int64) int64 {
			return a[0] + a[1]
		},
	})
	Declare(&Declaration{
		"mult", "multiplies two integers; the result wraps around on overflow",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"left", "int", "left operand"},
			DeclarationParameter{"right", "int", "right operand"},
		}, "int",
		func(a ...int64) int64 {
			return a[0] * a[1]
		},
	})
}

func Help(topic string) {
	if topic == "" {
		fmt.Println("Available operators:")
		for _, title := range declaration_titles {
			if title[0] == '#' {
				fmt.Println("")
				fmt.Println("-- " + title[1:] + " --")
			} else {
				fmt.Println("  " + title + ": " + strings.Split(declarations[title].Desc, "\n")[0])
			}
		}
		fmt.Println("")
		fmt.Println("get further information with .help OPERATOR")
	} else {
		def := declarations[topic]
		if def == nil {
			fmt.Println("operator not found: " + topic)
			return
		}
		fmt.Println("Help for: " + def.Name)
		fmt.Println("===")
		fmt.Println("")
		fmt.Println(def.Desc)
		fmt.Println("")
		fmt.Println("Allowed nø of parameters: ", def.MinParameter, "-", def.MaxParameter)
		fmt.Println("")
		for _, p := range def.Params {
			fmt.Println(" - " + p.Name + " (" + p.Type + "): " + p.Desc)
		}
		fmt.Println("")
	}
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "chapter"
	}
	return out
}

// WriteDocumentation generates Markdown docs: index.md with links to
// chapters, one <chapter>.md per chapter with all its operators.
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}

	type Chapter struct {
		Title string
		Slug  string
		Fns   []*Declaration
	}

	var chapters []*Chapter
	var current *Chapter
	usedSlugs := map[string]int{}

	uniqSlug := func(s string) string {
		base := slugify(s)
		if usedSlugs[base] == 0 {
			usedSlugs[base] = 1
			return base
		}
		for i := 2; ; i++ {
			candidate := fmt.Sprintf("%s-%d", base, i)
			if usedSlugs[candidate] == 0 {
				usedSlugs[candidate] = 1
				return candidate
			}
		}
	}

	for _, t := range declaration_titles {
		if len(t) > 0 && t[0] == '#' {
			title := strings.TrimSpace(t[1:])
			ch := &Chapter{Title: title, Slug: uniqSlug(title)}
			chapters = append(chapters, ch)
			current = ch
			continue
		}
		def, ok := declarations[t]
		if !ok || current == nil {
			continue
		}
		current.Fns = append(current.Fns, def)
	}

	indexPath := filepath.Join(folder, "index.md")
	indexFile, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer indexFile.Close()

	fmt.Fprintf(indexFile, "# Documentation\n\n")
	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fmt.Fprintf(indexFile, "- [%s](%s.md)\n", ch.Title, ch.Slug)
	}

	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fp := filepath.Join(folder, ch.Slug+".md")
		f, err := os.Create(fp)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", fp, err)
		}

		fmt.Fprintf(f, "# %s\n\n", ch.Title)
		for _, def := range ch.Fns {
			fmt.Fprintf(f, "## %s\n\n", def.Name)
			if def.Desc != "" {
				fmt.Fprintf(f, "%s\n\n", def.Desc)
			}
			fmt.Fprintf(f, "**Allowed number of parameters:** %d–%d\n\n", def.MinParameter, def.MaxParameter)

			fmt.Fprintf(f, "### Parameters\n\n")
			if len(def.Params) == 0 {
				fmt.Fprintf(f, "_This operator has no parameters._\n\n")
			} else {
				for _, p := range def.Params {
					fmt.Fprintf(f, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
				}
				fmt.Fprintln(f)
			}

			fmt.Fprintf(f, "### Returns\n\n`%s`\n\n", def.Returns)
		}

		_ = f.Close()
	}

	return nil
}
