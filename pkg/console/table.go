package console

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Circular replaces a structured value that was already visited.
const Circular = "[Circular]"

// Cell is one column of a normalized table row.
type Cell struct {
	Key   string
	Value any
}

// Row is a normalized structured row. Cell values are nil, scalars, or the
// indented text of a nested value. A nested value that was already visited
// is the bare Circular text.
type Row []Cell

// Get returns the value stored under key.
func (r Row) Get(key string) (any, bool) {
	for _, c := range r {
		if c.Key == key {
			return c.Value, true
		}
	}
	return nil, false
}

// Keys returns the column keys of r in order.
func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, c := range r {
		keys[i] = c.Key
	}
	return keys
}

// NormalizeForTable coerces data into table rows. Slices and arrays keep
// their elements; anything else becomes a single row. Structured rows turn
// into Row values whose nested structured fields are rendered as indented
// text; scalar rows pass through unchanged.
//
// One identity-keyed seen set covers the whole call. A map, slice or pointer
// met a second time anywhere in the call renders as Circular, so a value
// shared between two rows is flagged in the later row as well as true
// cycles.
func NormalizeForTable(data any) []any {
	items := collection(data)
	seen := make(map[identity]struct{})
	rows := make([]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, normalizeRow(item, seen))
	}
	return rows
}

// IsCollection reports whether data is a slice or array.
func IsCollection(data any) bool {
	rv := reflect.ValueOf(data)
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

func collection(data any) []any {
	if items, ok := data.([]any); ok {
		return items
	}
	if r, ok := data.(Row); ok {
		return []any{r}
	}
	if !IsCollection(data) {
		return []any{data}
	}
	rv := reflect.ValueOf(data)
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

func normalizeRow(item any, seen map[identity]struct{}) any {
	cells, ok := fieldsOf(item)
	if !ok {
		return item
	}
	row := make(Row, 0, len(cells))
	for _, c := range cells {
		v := c.Value
		if isNil(v) {
			v = nil
		}
		if v != nil && IsStructured(v) {
			e := encoder{seen: seen}
			e.encode(reflect.ValueOf(v), 0)
			if text := e.buf.String(); text == quote(Circular) {
				v = Circular
			} else {
				v = text
			}
		}
		row = append(row, Cell{Key: c.Key, Value: v})
	}
	return row
}

// Stringify renders v as two-space indented JSON text. Repeated maps,
// slices and pointers render as "[Circular]". It never fails.
func Stringify(v any) string {
	e := encoder{seen: make(map[identity]struct{})}
	e.encode(reflect.ValueOf(v), 0)
	return e.buf.String()
}

// fieldsOf lists the fields of a structured value in display order.
func fieldsOf(v any) ([]Cell, bool) {
	if r, ok := v.(Row); ok {
		return r, true
	}
	if !IsStructured(v) {
		return nil, false
	}
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		keys := sortedKeys(rv)
		cells := make([]Cell, len(keys))
		for i, k := range keys {
			cells[i] = Cell{Key: keyString(k), Value: rv.MapIndex(k).Interface()}
		}
		return cells, true
	case reflect.Struct:
		var cells []Cell
		eachField(rv, func(name string, fv reflect.Value) {
			cells = append(cells, Cell{Key: name, Value: fv.Interface()})
		})
		return cells, true
	case reflect.Slice, reflect.Array:
		cells := make([]Cell, rv.Len())
		for i := range cells {
			cells[i] = Cell{Key: strconv.Itoa(i), Value: rv.Index(i).Interface()}
		}
		return cells, true
	}
	return nil, false
}

// IsStructured reports whether v renders as an object or array: maps,
// structs, slices and arrays, through any number of pointers.
func IsStructured(v any) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case Row:
		return true
	case json.Marshaler, encoding.TextMarshaler, []byte:
		return false
	}
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// isNil reports whether v is nil or a nil map, slice or pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// indirect follows pointers and interfaces; it returns the zero Value for nil.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// identity keys the seen set. The type is part of the key because a
// struct and its first field share an address.
type identity struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

type encoder struct {
	buf  strings.Builder
	seen map[identity]struct{}
}

// visit marks rv as seen and reports whether it was new.
func (e *encoder) visit(rv reflect.Value) bool {
	id := identity{typ: rv.Type(), ptr: rv.Pointer()}
	if rv.Kind() == reflect.Slice {
		if rv.Len() == 0 {
			return true
		}
		id.n = rv.Len()
	}
	if _, ok := e.seen[id]; ok {
		return false
	}
	e.seen[id] = struct{}{}
	return true
}

func (e *encoder) encode(rv reflect.Value, depth int) {
	for rv.IsValid() && rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() || (rv.Kind() == reflect.Interface && rv.IsNil()) {
		e.buf.WriteString("null")
		return
	}
	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case Row:
			if !e.visit(rv) {
				e.buf.WriteString(quote(Circular))
				return
			}
			e.object(len(x), func(i int) (string, reflect.Value) {
				return x[i].Key, reflect.ValueOf(x[i].Value)
			}, depth)
			return
		case json.Marshaler:
			if rv.Kind() == reflect.Pointer && rv.IsNil() {
				e.buf.WriteString("null")
				return
			}
			if b, err := json.Marshal(x); err == nil {
				e.buf.Write(b)
				return
			}
		case encoding.TextMarshaler:
			if rv.Kind() == reflect.Pointer && rv.IsNil() {
				e.buf.WriteString("null")
				return
			}
			if b, err := x.MarshalText(); err == nil {
				e.buf.WriteString(quote(string(b)))
				return
			}
		}
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			e.buf.WriteString("null")
			return
		}
		if !e.visit(rv) {
			e.buf.WriteString(quote(Circular))
			return
		}
		e.encode(rv.Elem(), depth)
	case reflect.Map:
		if rv.IsNil() {
			e.buf.WriteString("null")
			return
		}
		if !e.visit(rv) {
			e.buf.WriteString(quote(Circular))
			return
		}
		keys := sortedKeys(rv)
		e.object(len(keys), func(i int) (string, reflect.Value) {
			return keyString(keys[i]), rv.MapIndex(keys[i])
		}, depth)
	case reflect.Struct:
		var names []string
		var values []reflect.Value
		eachField(rv, func(name string, fv reflect.Value) {
			names = append(names, name)
			values = append(values, fv)
		})
		e.object(len(names), func(i int) (string, reflect.Value) {
			return names[i], values[i]
		}, depth)
	case reflect.Slice:
		if rv.IsNil() {
			e.buf.WriteString("null")
			return
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			e.buf.WriteString(quote(string(rv.Bytes())))
			return
		}
		if !e.visit(rv) {
			e.buf.WriteString(quote(Circular))
			return
		}
		e.array(rv, depth)
	case reflect.Array:
		e.array(rv, depth)
	case reflect.String:
		e.buf.WriteString(quote(rv.String()))
	default:
		e.buf.WriteString(scalarJSON(rv))
	}
}

func (e *encoder) object(n int, field func(int) (string, reflect.Value), depth int) {
	if n == 0 {
		e.buf.WriteString("{}")
		return
	}
	e.buf.WriteString("{")
	for i := 0; i < n; i++ {
		if i > 0 {
			e.buf.WriteString(",")
		}
		name, v := field(i)
		e.newline(depth + 1)
		e.buf.WriteString(quote(name))
		e.buf.WriteString(": ")
		e.encode(v, depth+1)
	}
	e.newline(depth)
	e.buf.WriteString("}")
}

func (e *encoder) array(rv reflect.Value, depth int) {
	if rv.Len() == 0 {
		e.buf.WriteString("[]")
		return
	}
	e.buf.WriteString("[")
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			e.buf.WriteString(",")
		}
		e.newline(depth + 1)
		e.encode(rv.Index(i), depth+1)
	}
	e.newline(depth)
	e.buf.WriteString("]")
}

func (e *encoder) newline(depth int) {
	e.buf.WriteString("\n")
	e.buf.WriteString(strings.Repeat("  ", depth))
}

// eachField visits the exported fields of a struct, honouring json tags.
func eachField(rv reflect.Value, fn func(name string, fv reflect.Value)) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, opts, _ := strings.Cut(tag, ",")
			if tagName == "-" && opts == "" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
			if strings.Contains(opts, "omitempty") && rv.Field(i).IsZero() {
				continue
			}
		}
		fn(name, rv.Field(i))
	}
}

func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keyString(keys[i]) < keyString(keys[j])
	})
	return keys
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// scalarJSON renders numbers and booleans as JSON. Values JSON cannot
// represent (NaN, channels, funcs) become null.
func scalarJSON(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "null"
		}
		b, err := json.Marshal(f)
		if err != nil {
			return "null"
		}
		return string(b)
	}
	return "null"
}

// scalarText renders a non-structured value for display.
func scalarText(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return scalarJSON(rv)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return scalarText(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// CellText renders a normalized cell value for display in a table.
func CellText(v any) string {
	if v == nil {
		return "null"
	}
	if IsStructured(v) {
		return Stringify(v)
	}
	return scalarText(v)
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
