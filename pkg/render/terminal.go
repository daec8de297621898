package render

import (
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/style"
)

// Terminal renders sink calls as styled terminal output via lipgloss.
type Terminal struct {
	layout
	theme    Theme
	renderer *lipgloss.Renderer
}

// NewTerminal creates a terminal sink writing to w. The colour profile is
// detected from w; NoColor or the mono theme force plain ASCII.
func NewTerminal(w io.Writer, opts Options) *Terminal {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor || opts.Theme.Name == "mono" {
		r.SetColorProfile(termenv.Ascii)
	}
	t := &Terminal{renderer: r}
	t.layout = newLayout(w, t, opts)
	t.theme = opts.Theme.bind(r)
	return t
}

// SetColorProfile overrides the detected colour profile.
func (t *Terminal) SetColorProfile(p termenv.Profile) {
	t.renderer.SetColorProfile(p)
}

func (t *Terminal) segments(segs []console.Segment) string {
	var sb strings.Builder
	for _, seg := range segs {
		sb.WriteString(t.paint(seg))
	}
	return sb.String()
}

func (t *Terminal) groupLabel(label string, collapsed bool) string {
	if collapsed {
		return t.theme.Muted.Render(t.theme.Icons.Collapsed) + " " + label
	}
	return t.theme.Primary.Render(t.theme.Icons.Expanded) + " " + label
}

func (t *Terminal) table(rows []any, width int) string {
	headers, cells := columns(rows)
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.theme.Muted).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := t.renderer.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Inherit(t.theme.Bold).Inherit(t.theme.Primary)
			case col == 0:
				return s.Inherit(t.theme.Muted)
			}
			return s
		})
	out := tbl.Render()
	if width > 0 && lipgloss.Width(out) > width {
		out = tbl.Width(width).Render()
	}
	return out
}

// paint renders one segment with the terminal equivalent of its directive.
// Unsupported declarations are ignored.
func (t *Terminal) paint(seg console.Segment) string {
	if seg.Directive == "" {
		return seg.Text
	}
	decls := style.Parse(seg.Directive)
	base := t.renderer.NewStyle()

	if v, ok := decls.Get(style.Color); ok {
		if c, ok := ParseColor(v); ok {
			base = base.Foreground(lipgloss.Color(c.Hex()))
		}
	}
	if v, ok := decls.Get(style.FontWeight); ok && isBold(v) {
		base = base.Bold(true)
	}
	if v, ok := decls.Get(style.FontStyle); ok && strings.Contains(v, "italic") {
		base = base.Italic(true)
	}
	if v, ok := decls.Get(style.TextDecoration); ok {
		if strings.Contains(v, "underline") {
			base = base.Underline(true)
		}
		if strings.Contains(v, "line-through") {
			base = base.Strikethrough(true)
		}
	}

	text := seg.Text
	if v, ok := decls.Get(style.Padding); ok {
		pad := strings.Repeat(" ", horizontalPadding(v))
		text = pad + text + pad
	}

	bg, _ := decls.Get(style.Background)
	if stops := gradientStops(bg); len(stops) > 0 {
		return paintGradient(base, text, stops)
	}
	if c, ok := ParseColor(bg); ok {
		base = base.Background(lipgloss.Color(c.Hex()))
	}
	return renderLines(base, text)
}

// renderLines styles each line separately so that multi-line text keeps
// its shape.
func renderLines(s lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = s.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// paintGradient blends the background across the runes of text.
func paintGradient(base lipgloss.Style, text string, stops []colorful.Color) string {
	runes := []rune(text)
	var sb strings.Builder
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		c := blend(stops, pos)
		sb.WriteString(base.Background(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return sb.String()
}

func blend(stops []colorful.Color, pos float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	scaled := pos * float64(len(stops)-1)
	i := int(math.Floor(scaled))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLab(stops[i+1], scaled-float64(i)).Clamped()
}

// gradientStops extracts the colours of a linear-gradient() background in
// left to right order. Leftward and upward directions reverse the stops.
func gradientStops(v string) []colorful.Color {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "linear-gradient(") || !strings.HasSuffix(v, ")") {
		return nil
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(v, "linear-gradient("), ")")
	var stops []colorful.Color
	reverse := false
	for i, part := range splitTopLevel(inner) {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		if c, ok := ParseColor(fields[0]); ok {
			stops = append(stops, c)
			continue
		}
		if i == 0 {
			reverse = runsBackward(part)
		}
	}
	if reverse {
		slices.Reverse(stops)
	}
	return stops
}

// runsBackward reports whether a gradient direction ends on the left or at
// the top. Angles follow CSS: 0deg points up and 90deg points right.
func runsBackward(direction string) bool {
	d := strings.ToLower(strings.TrimSpace(direction))
	if side, ok := strings.CutPrefix(d, "to "); ok {
		words := strings.Fields(side)
		if slices.Contains(words, "left") {
			return true
		}
		return slices.Contains(words, "top") && !slices.Contains(words, "right")
	}
	if deg, ok := strings.CutSuffix(d, "deg"); ok {
		a, err := strconv.ParseFloat(deg, 64)
		if err != nil {
			return false
		}
		a = math.Mod(a, 360)
		if a < 0 {
			a += 360
		}
		return a == 0 || a > 180
	}
	return false
}

// splitTopLevel splits on commas that are not inside parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func isBold(weight string) bool {
	switch strings.TrimSpace(weight) {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(strings.TrimSpace(weight))
	return err == nil && n >= 600
}

// horizontalPadding converts a CSS padding shorthand to terminal cells,
// four pixels per cell.
func horizontalPadding(v string) int {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return 0
	}
	h := fields[0]
	if len(fields) > 1 {
		h = fields[1]
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(h, "px"), 64)
	if err != nil || px <= 0 {
		return 0
	}
	return int(math.Round(px / 4))
}
