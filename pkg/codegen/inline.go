package codegen

import (
	"strings"

	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/entry"
)

// inline replays the calls Emit issues for cfg as source text.
func inline(cfg entry.Config) string {
	rec := console.NewRecorder()
	entry.Emit(rec, cfg)

	lines := make([]string, 0, len(rec.Calls))
	for _, c := range rec.Calls {
		lines = append(lines, callLit(c))
	}
	return strings.Join(lines, "\n")
}

func callLit(c console.Call) string {
	switch c.Method {
	case console.MethodGroupEnd:
		return method("GroupEnd")
	case console.MethodTable:
		var rows []any
		if len(c.Args) == 1 {
			rows, _ = c.Args[0].([]any)
		}
		return method("Table", rowsLit(rows))
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = Literal(a)
	}
	return method(methodName(c.Method), args...)
}

func methodName(m string) string {
	switch m {
	case console.MethodGroup:
		return "Group"
	case console.MethodGroupCollapsed:
		return "GroupCollapsed"
	default:
		return "Log"
	}
}

func rowsLit(rows []any) string {
	if rows == nil {
		return "nil"
	}
	if len(rows) == 0 {
		return "[]any{}"
	}
	var b strings.Builder
	b.WriteString("[]any{\n")
	for _, r := range rows {
		b.WriteString(Literal(r) + ",\n")
	}
	b.WriteString("}")
	return b.String()
}
