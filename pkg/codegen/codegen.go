// Package codegen projects console statement configurations into Go source
// that reproduces their output when run against a console.Sink named out.
package codegen

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/entry"
	"github.com/dkoosis/artisan/pkg/style"
)

// Mode selects the projection style.
type Mode string

const (
	// Usage calls the named emitters of pkg/console.
	Usage Mode = "usage"
	// Inline issues the low-level sink calls with directives flattened.
	Inline Mode = "inline"
	// Library returns the emitter and normalizer source unchanged.
	Library Mode = "library"
)

// Modes lists the supported modes.
func Modes() []Mode { return []Mode{Usage, Inline, Library} }

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want usage, inline or library)", s)
}

// Import paths referenced by generated code.
const (
	ConsoleImport = "github.com/dkoosis/artisan/pkg/console"
	StyleImport   = "github.com/dkoosis/artisan/pkg/style"
)

// SinkName is the identifier generated code writes to.
const SinkName = "out"

// Project renders cfg in mode. Unknown modes fall back to Usage.
func Project(cfg entry.Config, mode Mode) string {
	switch mode {
	case Library:
		return LibrarySource()
	case Inline:
		return tidy(inline(cfg))
	default:
		return tidy(usage(cfg))
	}
}

// ProjectAll renders items in order separated by blank lines. Usage and
// inline output is prefixed with the import block it needs.
func ProjectAll(items []entry.Item, mode Mode) string {
	if mode == Library {
		return LibrarySource()
	}
	bodies := make([]string, 0, len(items))
	for _, it := range items {
		if body := Project(it.Config, mode); body != "" {
			bodies = append(bodies, body)
		}
	}
	code := strings.Join(bodies, "\n\n")
	if imports := importBlock(code); imports != "" {
		code = imports + "\n\n" + code
	}
	return strings.TrimSpace(code)
}

// LibrarySource is the normalizer source followed by the emitter source,
// minus the first two lines of the combined text. Those lines are the
// normalizer's package comment; the emitter's package comment stays.
func LibrarySource() string {
	combined := strings.ReplaceAll(style.Source+"\n"+console.Source, "\r\n", "\n")
	lines := strings.Split(combined, "\n")
	if len(lines) <= 2 {
		return ""
	}
	return strings.Join(lines[2:], "\n")
}

func importBlock(code string) string {
	used := referencedPackages(code)
	var paths []string
	if used["console"] {
		paths = append(paths, ConsoleImport)
	}
	if used["style"] {
		paths = append(paths, StyleImport)
	}
	switch len(paths) {
	case 0:
		return ""
	case 1:
		return "import " + strconv.Quote(paths[0])
	}
	var b strings.Builder
	b.WriteString("import (\n")
	for _, p := range paths {
		b.WriteString("\t" + strconv.Quote(p) + "\n")
	}
	b.WriteString(")")
	return b.String()
}

// referencedPackages reports the package selectors (console.X, style.X)
// used by a statement list.
func referencedPackages(code string) map[string]bool {
	used := map[string]bool{}
	file, err := parser.ParseFile(token.NewFileSet(), "", "package p\nfunc _() {\n"+code+"\n}", 0)
	if err != nil {
		return used
	}
	ast.Inspect(file, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok {
				used[id.Name] = true
			}
		}
		return true
	})
	return used
}

// tidy gofmts a statement list, leaving it untouched when it does not parse.
func tidy(code string) string {
	if code == "" {
		return ""
	}
	formatted, err := format.Source([]byte(code))
	if err != nil {
		return code
	}
	return strings.TrimSpace(string(formatted))
}

func call(fn string, args ...string) string {
	return fn + "(" + strings.Join(args, ", ") + ")"
}

func method(name string, args ...string) string {
	return call(SinkName+"."+name, args...)
}
