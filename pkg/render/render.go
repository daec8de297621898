// Package render provides console sinks that draw styled statements on an
// io.Writer: ANSI terminal output, plain text and JSON lines.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dkoosis/artisan/pkg/console"
)

// Format names an output format.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatPlain    Format = "plain"
	FormatJSON     Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTerminal, FormatPlain, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want terminal, plain or json)", s)
}

// Options configure the text sinks.
type Options struct {
	Theme Theme
	// Width bounds table rendering; 0 means 80 columns.
	Width int
	// Expand shows the body of collapsed groups.
	Expand bool
	// NoColor strips all colour from terminal output.
	NoColor bool
}

// New returns the sink for f writing to w.
func New(f Format, w io.Writer, opts Options) console.Sink {
	switch f {
	case FormatJSON:
		return NewJSON(w)
	case FormatPlain:
		return NewPlain(w, opts)
	default:
		return NewTerminal(w, opts)
	}
}

// painter draws the pieces of a statement for one output style.
type painter interface {
	segments(segs []console.Segment) string
	groupLabel(label string, collapsed bool) string
	table(rows []any, width int) string
}

// layout tracks group nesting and collapsed visibility for the text sinks.
// Write errors are sticky and reported by Err.
type layout struct {
	w      io.Writer
	p      painter
	width  int
	expand bool
	depth  int
	// hiddenAt is the depth at which a collapsed group started hiding
	// output; 0 when everything is visible.
	hiddenAt int
	err      error
}

func newLayout(w io.Writer, p painter, opts Options) layout {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	return layout{w: w, p: p, width: width, expand: opts.Expand}
}

func (l *layout) hidden() bool {
	return l.hiddenAt > 0 && l.depth >= l.hiddenAt
}

func (l *layout) Log(args ...any) {
	if l.hidden() || len(args) == 0 {
		return
	}
	l.write(l.p.segments(console.Segments(args)))
}

func (l *layout) Group(args ...any) { l.open(args, false) }

func (l *layout) GroupCollapsed(args ...any) { l.open(args, true) }

func (l *layout) open(args []any, collapsed bool) {
	if !l.hidden() {
		folded := collapsed && !l.expand
		l.write(l.p.groupLabel(l.p.segments(console.Segments(args)), folded))
		if folded {
			l.hiddenAt = l.depth + 1
		}
	}
	l.depth++
}

func (l *layout) GroupEnd() {
	if l.depth == 0 {
		return
	}
	l.depth--
	if l.hiddenAt > l.depth {
		l.hiddenAt = 0
	}
}

func (l *layout) Table(rows []any) {
	if l.hidden() {
		return
	}
	l.write(l.p.table(rows, l.width-2*l.depth))
}

// write prints text indented by two spaces per open group.
func (l *layout) write(text string) {
	if l.err != nil {
		return
	}
	indent := strings.Repeat("  ", l.depth)
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	_, l.err = io.WriteString(l.w, strings.Join(lines, "\n")+"\n")
}

// Err returns the first write error.
func (l *layout) Err() error { return l.err }

// columns lays out rows the way a browser console table does: an index
// column, the union of row keys in first-seen order, and a Values column
// for scalar rows.
func columns(rows []any) (headers []string, cells [][]string) {
	seen := map[string]bool{}
	var keys []string
	hasScalar := false
	for _, r := range rows {
		row, ok := r.(console.Row)
		if !ok {
			hasScalar = true
			continue
		}
		for _, k := range row.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	headers = append([]string{"(index)"}, keys...)
	if hasScalar {
		headers = append(headers, "Value")
	}
	for i, r := range rows {
		line := make([]string, len(headers))
		line[0] = fmt.Sprint(i)
		if row, ok := r.(console.Row); ok {
			for j, k := range keys {
				if v, ok := row.Get(k); ok {
					line[j+1] = console.CellText(v)
				}
			}
		} else {
			line[len(line)-1] = console.CellText(r)
		}
		cells = append(cells, line)
	}
	return headers, cells
}

// Err returns the first write error recorded by a sink from this package,
// or nil for sinks that do not track errors.
func Err(s console.Sink) error {
	if e, ok := s.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}
