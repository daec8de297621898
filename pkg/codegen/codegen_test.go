package codegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/entry"
	"github.com/dkoosis/artisan/pkg/render"
	"github.com/dkoosis/artisan/pkg/style"
)

type profile struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
	Age  int      `json:"age,omitempty"`
}

// representative returns one configuration per type plus a few edge cases.
func representative() map[string]entry.Config {
	cases := map[string]entry.Config{}
	for _, typ := range entry.Types() {
		cfg := entry.Default()
		cfg.Type = typ
		cases[string(typ)] = cfg
	}

	raw := entry.Default()
	raw.Type = entry.Raw
	raw.Styles = style.Of("background", "#000")
	cases["raw without text styles"] = raw

	grouped := entry.Default()
	grouped.Type = entry.Badge
	grouped.Group = &entry.Group{Enabled: true, Label: "X", Collapsed: true}
	cases["collapsed group"] = grouped

	table := entry.Default()
	table.Type = entry.Table
	table.JSONData = []profile{{Name: "ada", Tags: []string{"math"}}, {Name: "alan", Age: 41}}
	cases["table of structs"] = table

	scalar := entry.Default()
	scalar.Type = entry.Table
	scalar.JSONData = "nope"
	cases["table of scalar"] = scalar

	emptyTable := entry.Default()
	emptyTable.Type = entry.Table
	emptyTable.JSONData = []any{}
	cases["empty table"] = emptyTable

	nested := entry.Default()
	nested.Type = entry.JSON
	nested.JSONData = profile{Name: "grace", Tags: []string{"cobol", "navy"}}
	cases["json struct"] = nested

	gradient := entry.Default()
	gradient.Type = entry.Gradient
	gradient.Gradient = &entry.GradientData{Colors: []string{"#111", "#222"}, Direction: "to left"}
	gradient.Styles = style.Of("color", "#000")
	cases["gradient override"] = gradient

	quoting := entry.Default()
	quoting.Message = "say \"hi\" %c `tick`\n\tdone"
	cases["text needing escapes"] = quoting

	unknown := entry.Default()
	unknown.Type = "SPARKLE"
	unknown.Group = &entry.Group{Enabled: true, Label: "empty"}
	cases["unknown type"] = unknown

	for i, it := range entry.Showcase() {
		cases["showcase "+string(rune('1'+i))] = it.Config
	}
	return cases
}

func TestProject_RoundTrip(t *testing.T) {
	for name, cfg := range representative() {
		direct := console.NewRecorder()
		entry.Emit(direct, cfg)
		want := visual(t, direct)

		for _, mode := range []Mode{Usage, Inline} {
			t.Run(name+"/"+string(mode), func(t *testing.T) {
				code := Project(cfg, mode)
				got := visual(t, replay(t, code))
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("replayed output differs (-direct +replayed):\n%s\ncode:\n%s", diff, code)
				}
			})
		}
	}
}

func TestProject_InlineCyclicTable(t *testing.T) {
	row := map[string]any{"name": "loop"}
	row["self"] = row
	cfg := entry.Config{Type: entry.Table, Message: "cycle", JSONData: []any{row}}

	direct := console.NewRecorder()
	entry.Emit(direct, cfg)

	code := Project(cfg, Inline)
	assert.Contains(t, code, console.Circular)
	assert.Equal(t, visual(t, direct), visual(t, replay(t, code)))
}

// plain renders recorded calls the way the plain sink prints them.
func plain(t *testing.T, rec *console.Recorder) string {
	t.Helper()
	var buf strings.Builder
	sink := render.NewPlain(&buf, render.Options{Width: 120})
	rec.Replay(sink)
	require.NoError(t, render.Err(sink))
	return buf.String()
}

func TestProject_UsageKeepsStructFieldOrder(t *testing.T) {
	type record struct {
		Name string `json:"name"`
		Zeta string `json:"zeta"`
		Age  int    `json:"age"`
	}
	data := []record{{Name: "ada", Zeta: "z", Age: 36}, {Name: "alan", Zeta: "y", Age: 41}}

	for _, typ := range []entry.Type{entry.Table, entry.JSON} {
		t.Run(string(typ), func(t *testing.T) {
			cfg := entry.Default()
			cfg.Type = typ
			cfg.JSONData = data

			direct := console.NewRecorder()
			entry.Emit(direct, cfg)
			want := plain(t, direct)

			code := Project(cfg, Usage)
			assert.Contains(t, code, "console.Row{")
			assert.Equal(t, want, plain(t, replay(t, code)), code)
			assert.Regexp(t, `(?s)name.*zeta.*age`, want)
		})
	}
}

func TestProject_UsageCyclicDataTerminates(t *testing.T) {
	data := map[string]any{"name": "loop"}
	data["self"] = data
	cfg := entry.Config{Type: entry.JSON, Message: "cycle", JSONData: data}

	code := Project(cfg, Usage)
	assert.Contains(t, code, `"self": "[Circular]"`)
	replay(t, code)
}

func TestProject_GroupWrapping(t *testing.T) {
	cfg := entry.Default()
	cfg.Group = &entry.Group{Enabled: true, Label: "X", Collapsed: true}

	for _, mode := range []Mode{Usage, Inline} {
		t.Run(string(mode), func(t *testing.T) {
			lines := strings.Split(Project(cfg, mode), "\n")
			require.GreaterOrEqual(t, len(lines), 3)
			assert.Equal(t, `out.GroupCollapsed("X")`, lines[0])
			assert.Equal(t, "out.GroupEnd()", lines[len(lines)-1])
			assert.Equal(t, 1, strings.Count(strings.Join(lines, "\n"), "GroupEnd"))
		})
	}
}

func TestProject_Usage(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() entry.Config
		want string
	}{
		{
			name: "text",
			cfg: func() entry.Config {
				return entry.Config{Type: entry.Text, Message: "hi", Styles: style.Of("color", "red", "fontSize", "12px")}
			},
			want: "console.PrettyLog(out, \"hi\", style.Of(\n\t\"color\", \"red\",\n\t\"fontSize\", \"12px\",\n))",
		},
		{
			name: "raw without styles",
			cfg:  func() entry.Config { return entry.Config{Type: entry.Raw, Message: "plain"} },
			want: `out.Log("plain")`,
		},
		{
			name: "raw with styles",
			cfg: func() entry.Config {
				return entry.Config{Type: entry.Raw, Message: "r", Styles: style.Of("background", "#000", "color", "red")}
			},
			want: `out.Log("%cr", "color: red")`,
		},
		{
			name: "emoji",
			cfg: func() entry.Config {
				return entry.Config{Type: entry.Emoji, Emoji: &entry.EmojiData{Emoji: "🚀", Size: 64}}
			},
			want: `console.LogEmoji(out, "🚀", 64)`,
		},
		{
			name: "ascii",
			cfg: func() entry.Config {
				return entry.Config{Type: entry.ASCII, ASCII: &entry.ASCIIData{Art: "a\nb", Color: "#fff"}}
			},
			want: "console.LogASCII(out, `a\nb`, \"#fff\")",
		},
		{
			name: "scalar table",
			cfg:  func() entry.Config { return entry.Config{Type: entry.Table, JSONData: 3} },
			want: `console.PrettyLog(out, "Table data must be an array or object", style.Error)`,
		},
		{
			name: "nil payload",
			cfg:  func() entry.Config { return entry.Config{Type: entry.Badge} },
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project(tt.cfg(), Usage))
		})
	}
}

func TestProject_InlineFlattensDirectives(t *testing.T) {
	cfg := entry.Default()
	cfg.Type = entry.Badge
	code := Project(cfg, Inline)

	label, value := console.BadgeStyles(*cfg.Badge)
	assert.Equal(t,
		`out.Log("%c Status %c Operational ", "`+style.Serialize(label)+`", "`+style.Serialize(value)+`")`,
		code)
	assert.NotContains(t, code, "console.")
}

func TestProjectAll(t *testing.T) {
	items := entry.Showcase()

	t.Run("usage imports what it references", func(t *testing.T) {
		code := ProjectAll(items, Usage)
		assert.True(t, strings.HasPrefix(code, "import "+`"`+ConsoleImport+`"`), code)
		assert.NotContains(t, code, StyleImport)

		_, body, ok := strings.Cut(code, "\n\n")
		require.True(t, ok)
		direct := console.NewRecorder()
		entry.Run(direct, items)
		assert.Equal(t, visual(t, direct), visual(t, replay(t, body)))
	})

	t.Run("both imports", func(t *testing.T) {
		cfg := entry.Default()
		code := ProjectAll([]entry.Item{{Config: cfg}}, Usage)
		assert.True(t, strings.HasPrefix(code, "import (\n\t\""+ConsoleImport+"\"\n\t\""+StyleImport+"\"\n)"), code)
	})

	t.Run("inline needs no imports", func(t *testing.T) {
		code := ProjectAll(items[:2], Inline)
		assert.False(t, strings.HasPrefix(code, "import"))
		assert.Equal(t, 1, strings.Count(code, "\n\n"))
	})

	t.Run("library ignores items", func(t *testing.T) {
		assert.Equal(t, LibrarySource(), ProjectAll(items, Library))
	})
}

func TestLibrarySource(t *testing.T) {
	src := LibrarySource()
	assert.True(t, strings.HasPrefix(src, "package style"), src[:40])
	assert.Contains(t, src, "package console")
	assert.NotContains(t, src, "// Package style")
	assert.Contains(t, src, "// Package console holds")
	assert.Contains(t, src, "func Serialize(m Map) string")
	assert.Contains(t, src, "func LogBadge(out Sink, b Badge)")
	assert.Equal(t, src, Project(entry.Default(), Library))
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("pretty")
	assert.Error(t, err)
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "nil"},
		{"a\"b", `"a\"b"`},
		{true, "true"},
		{42, "42"},
		{uint8(7), "7"},
		{1.5, "1.5"},
		{map[string]any{}, "map[string]any{}"},
		{[]int{}, "[]any{}"},
		{console.Row{}, "console.Row{}"},
		{struct {
			B int `json:"b"`
			A int `json:"a"`
		}{1, 2}, "console.Row{\n{Key: \"b\", Value: 1},\n{Key: \"a\", Value: 2},\n}"},
		{struct {
			A int `json:"a"`
			B int `json:"b"`
		}{1, 2}, "map[string]any{\n\"a\": 1,\n\"b\": 2,\n}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Literal(tt.in))
	}
}
