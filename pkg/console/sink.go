package console

import (
	"fmt"
	"strings"
)

// Marker is the placeholder that applies the next directive argument to the
// text that follows it.
const Marker = "%c"

// Sink is the output channel emitters write to. It mirrors the browser
// console: print calls whose first argument may carry markers, a named group
// that is opened expanded or collapsed, and a tabular view.
type Sink interface {
	Log(args ...any)
	Group(args ...any)
	GroupCollapsed(args ...any)
	GroupEnd()
	Table(rows []any)
}

// Sink method names as recorded by Recorder.
const (
	MethodLog            = "log"
	MethodGroup          = "group"
	MethodGroupCollapsed = "groupCollapsed"
	MethodGroupEnd       = "groupEnd"
	MethodTable          = "table"
)

// Markers counts the markers in format.
func Markers(format string) int {
	return strings.Count(format, Marker)
}

// Segment is a run of text and the directive that styles it. Directive is
// empty for unstyled text.
type Segment struct {
	Text      string
	Directive string
}

// Segments splits the arguments of a print call into styled runs. When the
// first argument is a string, each marker in it consumes the next argument
// as the directive for the text up to the following marker. Arguments left
// over after all markers are consumed are appended, space separated, as
// unstyled text. Structured values are rendered with Stringify.
func Segments(args []any) []Segment {
	if len(args) == 0 {
		return nil
	}
	format, ok := args[0].(string)
	if !ok {
		return []Segment{{Text: joinArgs(args)}}
	}

	parts := strings.Split(format, Marker)
	segs := make([]Segment, 0, len(parts)+1)
	if parts[0] != "" {
		segs = append(segs, Segment{Text: parts[0]})
	}
	next := 1
	for _, text := range parts[1:] {
		var directive string
		if next < len(args) {
			directive = FormatArg(args[next])
			next++
		}
		if text != "" {
			segs = append(segs, Segment{Text: text, Directive: directive})
		}
	}
	if next < len(args) {
		segs = append(segs, Segment{Text: " " + joinArgs(args[next:])})
	}
	return segs
}

// FormatArg renders a single print argument as text.
func FormatArg(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	if IsStructured(v) {
		return Stringify(v)
	}
	return scalarText(v)
}

func joinArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = FormatArg(a)
	}
	return strings.Join(parts, " ")
}

// Call is one recorded sink invocation.
type Call struct {
	Method string
	Args   []any
}

// Recorder is a Sink that keeps every call in order.
type Recorder struct {
	Calls []Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Log(args ...any)            { r.record(MethodLog, args) }
func (r *Recorder) Group(args ...any)          { r.record(MethodGroup, args) }
func (r *Recorder) GroupCollapsed(args ...any) { r.record(MethodGroupCollapsed, args) }
func (r *Recorder) GroupEnd()                  { r.record(MethodGroupEnd, nil) }
func (r *Recorder) Table(rows []any)           { r.record(MethodTable, []any{rows}) }

func (r *Recorder) record(method string, args []any) {
	r.Calls = append(r.Calls, Call{Method: method, Args: args})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Replay issues the recorded calls against out, in order.
func (r *Recorder) Replay(out Sink) {
	for _, c := range r.Calls {
		switch c.Method {
		case MethodLog:
			out.Log(c.Args...)
		case MethodGroup:
			out.Group(c.Args...)
		case MethodGroupCollapsed:
			out.GroupCollapsed(c.Args...)
		case MethodGroupEnd:
			out.GroupEnd()
		case MethodTable:
			if len(c.Args) == 1 {
				rows, _ := c.Args[0].([]any)
				out.Table(rows)
			}
		}
	}
}

// Methods returns the method names of the recorded calls.
func (r *Recorder) Methods() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Method
	}
	return out
}
