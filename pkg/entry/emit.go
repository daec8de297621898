package entry

import (
	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/style"
)

// TableDataError is printed in place of a table whose data is neither a
// collection nor an object.
const TableDataError = "Table data must be an array or object"

// Emit issues the print calls for cfg: an optional group wrapper around
// exactly one variant. Unknown types emit nothing inside the wrapper.
func Emit(out console.Sink, cfg Config) {
	if cfg.Grouped() {
		if cfg.Group.Collapsed {
			out.GroupCollapsed(cfg.Group.Label)
		} else {
			out.Group(cfg.Group.Label)
		}
	}

	switch cfg.Type {
	case Text:
		console.PrettyLog(out, cfg.Message, cfg.Styles)
	case Raw:
		console.Raw(out, cfg.Message, cfg.Styles)
	case Emoji:
		if cfg.Emoji != nil {
			console.LogEmoji(out, cfg.Emoji.Emoji, cfg.Emoji.Size)
		}
	case Badge:
		if cfg.Badge != nil {
			console.LogBadge(out, *cfg.Badge)
		}
	case JSON:
		console.LogJSON(out, cfg.Message, cfg.JSONData, cfg.Styles)
	case Table:
		if !console.IsStructured(cfg.JSONData) {
			console.PrettyLog(out, TableDataError, style.Error)
			break
		}
		console.LogTable(out, cfg.Message, cfg.JSONData, cfg.Styles)
	case Gradient:
		var colors []string
		var direction string
		if cfg.Gradient != nil {
			colors, direction = cfg.Gradient.Colors, cfg.Gradient.Direction
		}
		console.LogGradient(out, cfg.Message, colors, direction, cfg.Styles)
	case ASCII:
		if cfg.ASCII != nil {
			console.LogASCII(out, cfg.ASCII.Art, cfg.ASCII.Color)
		}
	default:
	}

	if cfg.Grouped() {
		out.GroupEnd()
	}
}

// Run emits items in order. Each item is isolated: a GroupEnd without a
// matching open group is dropped and groups left open are closed before the
// next item starts.
func Run(out console.Sink, items []Item) {
	for _, it := range items {
		g := Guard(out)
		Emit(g, it.Config)
		g.Close()
	}
}

// Guarded forwards calls to a Sink while tracking group depth.
type Guarded struct {
	out   console.Sink
	depth int
}

// Guard wraps out so that the calls issued through it can be balanced with
// Close.
func Guard(out console.Sink) *Guarded {
	return &Guarded{out: out}
}

func (g *Guarded) Log(args ...any) { g.out.Log(args...) }

func (g *Guarded) Group(args ...any) {
	g.depth++
	g.out.Group(args...)
}

func (g *Guarded) GroupCollapsed(args ...any) {
	g.depth++
	g.out.GroupCollapsed(args...)
}

// GroupEnd is dropped when no group is open.
func (g *Guarded) GroupEnd() {
	if g.depth == 0 {
		return
	}
	g.depth--
	g.out.GroupEnd()
}

func (g *Guarded) Table(rows []any) { g.out.Table(rows) }

// Depth is the number of groups currently open through g.
func (g *Guarded) Depth() int { return g.depth }

// Close ends every group still open through g.
func (g *Guarded) Close() {
	for ; g.depth > 0; g.depth-- {
		g.out.GroupEnd()
	}
}
