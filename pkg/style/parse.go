package style

import (
	"strings"
	"unicode"
)

// Parse reads a directive string back into a Map. It accepts the output of
// Serialize as well as hand-written directives with trailing semicolons,
// newlines or extra whitespace. Hyphenated names are converted back to
// camel-case. Segments without a colon are ignored.
func Parse(directive string) Map {
	var m Map
	for _, seg := range strings.Split(directive, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		key, value, ok := strings.Cut(seg, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		m.Set(Camel(key), value)
	}
	return m
}

// Camel converts a hyphenated property name to camel-case (font-size ->
// fontSize). Names without hyphens are returned unchanged.
func Camel(name string) Property {
	if !strings.Contains(name, "-") {
		return Property(name)
	}
	var sb strings.Builder
	upper := false
	for _, r := range name {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			sb.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		sb.WriteRune(r)
	}
	return Property(sb.String())
}
