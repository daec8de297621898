// Package console holds the directive emitters: small helpers that turn a
// style description into marker/directive print calls on a Sink.
package console

import (
	"strconv"
	"strings"

	"github.com/dkoosis/artisan/pkg/style"
)

// Badge is a two-segment "label | value" tag. Empty colors fall back to the
// Default* values.
type Badge struct {
	Label      string `json:"label" yaml:"label"`
	Value      string `json:"value" yaml:"value"`
	LabelColor string `json:"labelColor,omitempty" yaml:"labelColor,omitempty"`
	LabelBg    string `json:"labelBg,omitempty" yaml:"labelBg,omitempty"`
	ValueColor string `json:"valueColor,omitempty" yaml:"valueColor,omitempty"`
	ValueBg    string `json:"valueBg,omitempty" yaml:"valueBg,omitempty"`
}

// Badge color fallbacks.
const (
	DefaultLabelColor = "#ffffff"
	DefaultLabelBg    = "#555555"
	DefaultValueColor = "#ffffff"
	DefaultValueBg    = "#333333"
)

// Defaults for the remaining helpers.
const (
	DefaultDirection  = "to right"
	DefaultASCIIColor = "#ffffff"
	DefaultEmojiSize  = 50

	JSONPrefix  = "📦 "
	TablePrefix = "📊 "
)

// PrettyLog prints message styled by s.
func PrettyLog(out Sink, message string, s style.Map) {
	out.Log(Marker+message, style.Serialize(s))
}

// Raw prints message with only the color, font size and font weight of s.
// Without any of those it prints the bare message.
func Raw(out Sink, message string, s style.Map) {
	raw := RawStyle(s)
	if len(raw) == 0 {
		out.Log(message)
		return
	}
	out.Log(Marker+message, style.Serialize(raw))
}

// RawStyle is the subset of s honoured by Raw.
func RawStyle(s style.Map) style.Map {
	return style.Pick(s, style.Color, style.FontSize, style.FontWeight)
}

// LogBadge prints b as " label " and " value " segments.
func LogBadge(out Sink, b Badge) {
	label, value := BadgeStyles(b)
	out.Log(Marker+" "+b.Label+" "+Marker+" "+b.Value+" ", style.Serialize(label), style.Serialize(value))
}

// BadgeStyles returns the label and value segment styles of b.
func BadgeStyles(b Badge) (label, value style.Map) {
	label = style.Of(
		string(style.Background), fallback(b.LabelBg, DefaultLabelBg),
		string(style.Color), fallback(b.LabelColor, DefaultLabelColor),
		string(style.Padding), "2px 6px",
		string(style.BorderRadius), "3px 0 0 3px",
		string(style.FontWeight), "bold",
	)
	value = style.Of(
		string(style.Background), fallback(b.ValueBg, DefaultValueBg),
		string(style.Color), fallback(b.ValueColor, DefaultValueColor),
		string(style.Padding), "2px 6px",
		string(style.BorderRadius), "0 3px 3px 0",
	)
	return label, value
}

// LogGradient prints message on a linear-gradient background. Explicit
// entries in s win over the gradient defaults.
func LogGradient(out Sink, message string, colors []string, direction string, s style.Map) {
	out.Log(Marker+message, style.Serialize(GradientStyle(colors, direction, s)))
}

// GradientStyle is the directive used by LogGradient.
func GradientStyle(colors []string, direction string, s style.Map) style.Map {
	defaults := style.Of(
		string(style.Background), "linear-gradient("+fallback(direction, DefaultDirection)+", "+strings.Join(colors, ", ")+")",
		string(style.Color), "#ffffff",
		string(style.Padding), "4px 8px",
		string(style.BorderRadius), "4px",
		string(style.FontWeight), "bold",
	)
	return style.Merge(defaults, s)
}

// LogJSON opens a labelled group, prints data as a single argument and
// closes the group. The sink decides how to present data.
func LogJSON(out Sink, label string, data any, s style.Map) {
	out.Group(Marker+JSONPrefix+label, style.Serialize(JSONHeaderStyle(s)))
	out.Log(data)
	out.GroupEnd()
}

// JSONHeaderStyle is the group label directive used by LogJSON.
func JSONHeaderStyle(s style.Map) style.Map {
	return headerStyle("#4ade80", s)
}

// LogTable prints a styled label line followed by data as a table. Data
// that is not a collection becomes a single row; nested values are
// flattened to text by NormalizeForTable.
func LogTable(out Sink, label string, data any, s style.Map) {
	out.Log(Marker+TablePrefix+label, style.Serialize(TableHeaderStyle(s)))
	out.Table(NormalizeForTable(data))
}

// TableHeaderStyle is the label directive used by LogTable.
func TableHeaderStyle(s style.Map) style.Map {
	return headerStyle("#60a5fa", s)
}

func headerStyle(color string, s style.Map) style.Map {
	defaults := style.Of(
		string(style.FontWeight), "bold",
		string(style.FontSize), "12px",
		string(style.Color), color,
		string(style.MarginBottom), "4px",
	)
	return style.Merge(defaults, s)
}

// LogASCII prints art verbatim in a monospace, pre-formatted directive.
func LogASCII(out Sink, art, color string) {
	out.Log(Marker+art, style.Serialize(ASCIIStyle(color)))
}

// ASCIIStyle is the directive used by LogASCII.
func ASCIIStyle(color string) style.Map {
	return style.Of(
		string(style.Color), fallback(color, DefaultASCIIColor),
		string(style.FontFamily), "'JetBrains Mono', 'Fira Code', 'Consolas', 'Monaco', monospace",
		string(style.FontSize), "12px",
		string(style.FontWeight), "bold",
		string(style.WhiteSpace), "pre",
		string(style.LineHeight), "1",
		string(style.LetterSpacing), "0",
	)
}

// LogEmoji prints emoji at size pixels.
func LogEmoji(out Sink, emoji string, size float64) {
	out.Log(Marker+emoji, style.Serialize(EmojiStyle(size)))
}

// EmojiStyle is the directive used by LogEmoji. Sizes <= 0 use the default.
func EmojiStyle(size float64) style.Map {
	if size <= 0 {
		size = DefaultEmojiSize
	}
	return style.Of(
		string(style.FontSize), strconv.FormatFloat(size, 'f', -1, 64)+"px",
		string(style.LineHeight), "1.2",
		string(style.FontFamily), "'Segoe UI Emoji', 'Apple Color Emoji', sans-serif",
	)
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
