package codegen

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dkoosis/artisan/pkg/console"
)

// Literal renders v as a Go expression. Scalars map to basic literals,
// console.Row to a Row literal, and any other structured value to a literal
// built from its JSON form, so struct fields follow their json tags and
// repeated references appear as the string "[Circular]". Objects whose keys
// are already sorted become map[string]any literals; any other object keeps
// its field order as a console.Row literal.
func Literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return quote(x)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case console.Row:
		return rowLit(x)
	}
	if console.IsStructured(v) {
		return structuredLit(v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "nil"
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case reflect.String:
		return quote(rv.String())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return quote(console.CellText(v))
}

func structuredLit(v any) string {
	text := console.Stringify(v)
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	generic, err := decodeOrdered(dec)
	if err != nil {
		return quote(text)
	}
	return genericLit(generic)
}

// decodeOrdered reads one JSON value, turning objects into console.Row so
// key order survives.
func decodeOrdered(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		row := console.Row{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", kt)
			}
			v, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			row = append(row, console.Cell{Key: key, Value: v})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return row, nil
	case '[':
		items := []any{}
		for dec.More() {
			v, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}

func genericLit(v any) string {
	switch x := v.(type) {
	case console.Row:
		if len(x) == 0 {
			return "map[string]any{}"
		}
		var b strings.Builder
		if strictlySorted(x) {
			b.WriteString("map[string]any{\n")
			for _, c := range x {
				fmt.Fprintf(&b, "%s: %s,\n", quote(c.Key), genericLit(c.Value))
			}
		} else {
			b.WriteString("console.Row{\n")
			for _, c := range x {
				fmt.Fprintf(&b, "{Key: %s, Value: %s},\n", quote(c.Key), genericLit(c.Value))
			}
		}
		b.WriteString("}")
		return b.String()
	case []any:
		if len(x) == 0 {
			return "[]any{}"
		}
		var b strings.Builder
		b.WriteString("[]any{\n")
		for _, e := range x {
			b.WriteString(genericLit(e) + ",\n")
		}
		b.WriteString("}")
		return b.String()
	}
	return Literal(v)
}

// strictlySorted reports whether the keys ascend without repeats, which is
// the order a map literal renders in.
func strictlySorted(r console.Row) bool {
	for i := 1; i < len(r); i++ {
		if r[i-1].Key >= r[i].Key {
			return false
		}
	}
	return true
}

func rowLit(r console.Row) string {
	if len(r) == 0 {
		return "console.Row{}"
	}
	var b strings.Builder
	b.WriteString("console.Row{\n")
	for _, c := range r {
		fmt.Fprintf(&b, "{Key: %s, Value: %s},\n", quote(c.Key), Literal(c.Value))
	}
	b.WriteString("}")
	return b.String()
}

// quote prefers a raw string for multi-line text that a raw string can
// hold exactly.
func quote(s string) string {
	if strings.Contains(s, "\n") && !strings.ContainsAny(s, "`\r") && utf8.ValidString(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
