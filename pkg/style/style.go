// Package style models CSS-like declarations and serializes them into the
// directive strings that console sinks apply to %c segments.
package style

import (
	"strings"
	"unicode"
)

// Property is a style property name in camel-case form (fontSize).
type Property string

// Properties offered by the editor.
const (
	Color              Property = "color"
	Background         Property = "background"
	FontSize           Property = "fontSize"
	FontWeight         Property = "fontWeight"
	Padding            Property = "padding"
	BorderRadius       Property = "borderRadius"
	Border             Property = "border"
	TextDecoration     Property = "textDecoration"
	BoxShadow          Property = "boxShadow"
	MarginTop          Property = "marginTop"
	MarginBottom       Property = "marginBottom"
	BackgroundImage    Property = "backgroundImage"
	BackgroundSize     Property = "backgroundSize"
	BackgroundRepeat   Property = "backgroundRepeat"
	BackgroundPosition Property = "backgroundPosition"
	LineHeight         Property = "lineHeight"
)

// Properties used by built-in directives only.
const (
	FontFamily    Property = "fontFamily"
	FontStyle     Property = "fontStyle"
	WhiteSpace    Property = "whiteSpace"
	LetterSpacing Property = "letterSpacing"
)

// Decl is a single property/value pair.
type Decl struct {
	Property Property
	Value    string
}

// Map is an ordered set of declarations. Order is significant: it is the
// order in which declarations are serialized. The zero value is empty.
type Map []Decl

// Of builds a Map from alternating property/value strings. Pairs with an
// empty value are skipped; a trailing odd element is ignored.
func Of(kv ...string) Map {
	var m Map
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(Property(kv[i]), kv[i+1])
	}
	return m
}

// Set assigns v to p. An existing declaration keeps its position; a new one
// is appended. An empty value removes p.
func (m *Map) Set(p Property, v string) {
	if v == "" {
		m.Delete(p)
		return
	}
	for i := range *m {
		if (*m)[i].Property == p {
			(*m)[i].Value = v
			return
		}
	}
	*m = append(*m, Decl{Property: p, Value: v})
}

// Delete removes p if present.
func (m *Map) Delete(p Property) {
	for i := range *m {
		if (*m)[i].Property == p {
			*m = append((*m)[:i], (*m)[i+1:]...)
			return
		}
	}
}

// Get returns the value of p and whether it is set.
func (m Map) Get(p Property) (string, bool) {
	for _, d := range m {
		if d.Property == p {
			return d.Value, true
		}
	}
	return "", false
}

// Has reports whether p is set.
func (m Map) Has(p Property) bool {
	_, ok := m.Get(p)
	return ok
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	copy(out, m)
	return out
}

// Serialize renders m as a directive string: "hyphenated-key: value" pairs
// joined by "; ". Values are emitted verbatim. An empty map yields "".
func Serialize(m Map) string {
	parts := make([]string, 0, len(m))
	for _, d := range m {
		if d.Value == "" {
			continue
		}
		parts = append(parts, Kebab(d.Property)+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// Kebab converts a camel-case property name to its hyphenated form:
// every upper-case letter becomes "-" followed by its lower-case form.
func Kebab(p Property) string {
	var sb strings.Builder
	sb.Grow(len(p) + 4)
	for _, r := range string(p) {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Merge applies overrides on top of defaults. Overrides always win; a
// property present in defaults keeps its position, new ones are appended in
// override order. Neither input is modified.
func Merge(defaults, overrides Map) Map {
	out := defaults.Clone()
	for _, d := range overrides {
		out.Set(d.Property, d.Value)
	}
	return out
}

// Pick returns the declarations of m named by props, in props order.
func Pick(m Map, props ...Property) Map {
	var out Map
	for _, p := range props {
		if v, ok := m.Get(p); ok {
			out.Set(p, v)
		}
	}
	return out
}
