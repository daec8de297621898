package render

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/dkoosis/artisan/pkg/console"
)

// JSON renders every sink call as one JSON object per line:
// {"method":"log","args":[...]}. Structured arguments are encoded through
// console.Stringify so cyclic values are safe.
type JSON struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewJSON creates a JSON lines sink.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

type jsonCall struct {
	Method string            `json:"method"`
	Args   []json.RawMessage `json:"args"`
}

func (j *JSON) Log(args ...any)            { j.emit(console.MethodLog, args) }
func (j *JSON) Group(args ...any)          { j.emit(console.MethodGroup, args) }
func (j *JSON) GroupCollapsed(args ...any) { j.emit(console.MethodGroupCollapsed, args) }
func (j *JSON) GroupEnd()                  { j.emit(console.MethodGroupEnd, nil) }
func (j *JSON) Table(rows []any)           { j.emit(console.MethodTable, []any{rows}) }

func (j *JSON) emit(method string, args []any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return
	}
	call := jsonCall{Method: method, Args: make([]json.RawMessage, len(args))}
	for i, a := range args {
		call.Args[i] = json.RawMessage(console.Stringify(a))
	}
	data, err := json.Marshal(call)
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		data = errJSON
	}
	_, j.err = j.w.Write(append(data, '\n'))
}

// Err returns the first write error.
func (j *JSON) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}
