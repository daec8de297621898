package codegen

import (
	"strconv"
	"strings"

	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/entry"
	"github.com/dkoosis/artisan/pkg/style"
)

func usage(cfg entry.Config) string {
	var lines []string
	if cfg.Grouped() {
		name := "Group"
		if cfg.Group.Collapsed {
			name = "GroupCollapsed"
		}
		lines = append(lines, method(name, quote(cfg.Group.Label)))
	}
	if body := usageBody(cfg); body != "" {
		lines = append(lines, body)
	}
	if cfg.Grouped() {
		lines = append(lines, method("GroupEnd"))
	}
	return strings.Join(lines, "\n")
}

func usageBody(cfg entry.Config) string {
	switch cfg.Type {
	case entry.Text:
		return call("console.PrettyLog", SinkName, quote(cfg.Message), styleLit(cfg.Styles))
	case entry.Raw:
		raw := console.RawStyle(cfg.Styles)
		if len(raw) == 0 {
			return method("Log", quote(cfg.Message))
		}
		return method("Log", quote(console.Marker+cfg.Message), quote(style.Serialize(raw)))
	case entry.Emoji:
		if cfg.Emoji == nil {
			return ""
		}
		return call("console.LogEmoji", SinkName, quote(cfg.Emoji.Emoji), strconv.FormatFloat(cfg.Emoji.Size, 'f', -1, 64))
	case entry.Badge:
		if cfg.Badge == nil {
			return ""
		}
		return call("console.LogBadge", SinkName, badgeLit(*cfg.Badge))
	case entry.Gradient:
		colors, direction := "nil", quote("")
		if cfg.Gradient != nil {
			colors, direction = stringsLit(cfg.Gradient.Colors), quote(cfg.Gradient.Direction)
		}
		return call("console.LogGradient", SinkName, quote(cfg.Message), colors, direction, styleLit(cfg.Styles))
	case entry.JSON:
		return call("console.LogJSON", SinkName, quote(cfg.Message), Literal(cfg.JSONData), styleLit(cfg.Styles))
	case entry.Table:
		if !console.IsStructured(cfg.JSONData) {
			return call("console.PrettyLog", SinkName, quote(entry.TableDataError), "style.Error")
		}
		data := cfg.JSONData
		if !console.IsCollection(data) {
			data = []any{data}
		}
		return call("console.LogTable", SinkName, quote(cfg.Message), Literal(data), styleLit(cfg.Styles))
	case entry.ASCII:
		if cfg.ASCII == nil {
			return ""
		}
		return call("console.LogASCII", SinkName, quote(cfg.ASCII.Art), quote(cfg.ASCII.Color))
	default:
		return ""
	}
}

func styleLit(m style.Map) string {
	if len(m) == 0 {
		return "nil"
	}
	var b strings.Builder
	b.WriteString("style.Of(\n")
	for _, d := range m {
		b.WriteString(quote(string(d.Property)) + ", " + quote(d.Value) + ",\n")
	}
	b.WriteString(")")
	return b.String()
}

func badgeLit(badge console.Badge) string {
	fields := []struct{ name, value string }{
		{"Label", badge.Label},
		{"Value", badge.Value},
		{"LabelColor", badge.LabelColor},
		{"LabelBg", badge.LabelBg},
		{"ValueColor", badge.ValueColor},
		{"ValueBg", badge.ValueBg},
	}
	var b strings.Builder
	b.WriteString("console.Badge{\n")
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString(f.name + ": " + quote(f.value) + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

func stringsLit(ss []string) string {
	if ss == nil {
		return "nil"
	}
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = quote(s)
	}
	return "[]string{" + strings.Join(parts, ", ") + "}"
}
