package render

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/artisan/pkg/console"
)

// Plain renders sink calls as text without ANSI codes. Directives are
// dropped; groups, collapsed sections and tables keep their layout.
type Plain struct {
	layout
	icons ThemeIcons
}

// NewPlain creates a plain text sink writing to w.
func NewPlain(w io.Writer, opts Options) *Plain {
	icons := opts.Theme.Icons
	if icons.Collapsed == "" {
		icons = MonoTheme().Icons
	}
	p := &Plain{icons: icons}
	p.layout = newLayout(w, p, opts)
	return p
}

func (p *Plain) segments(segs []console.Segment) string {
	var sb strings.Builder
	for _, seg := range segs {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

func (p *Plain) groupLabel(label string, collapsed bool) string {
	if collapsed {
		return p.icons.Collapsed + " " + label
	}
	return p.icons.Expanded + " " + label
}

// table aligns cells by display width. Multi-line cells are flattened to
// one line. Width is not enforced.
func (p *Plain) table(rows []any, _ int) string {
	headers, cells := columns(rows)
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, line := range cells {
		for i := range line {
			line[i] = flatten(line[i])
			if w := runewidth.StringWidth(line[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(line []string) {
		for i, cell := range line {
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		sb.WriteString("\n")
	}
	writeRow(headers)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString("-+-")
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")
	for _, line := range cells {
		writeRow(line)
	}
	return sb.String()
}

// flatten joins the lines of a cell, trimming the indentation of nested
// JSON text.
func flatten(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, " ")
}
