package entry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/style"
)

func emit(cfg Config) *console.Recorder {
	rec := console.NewRecorder()
	Emit(rec, cfg)
	return rec
}

func TestEmit_EveryTypeEmits(t *testing.T) {
	for _, typ := range Types() {
		t.Run(string(typ), func(t *testing.T) {
			cfg := Default()
			cfg.Type = typ
			rec := emit(cfg)
			require.NotEmpty(t, rec.Calls)
			for _, c := range rec.Calls {
				if c.Method == console.MethodTable || len(c.Args) == 0 {
					continue
				}
				if format, ok := c.Args[0].(string); ok {
					assert.Equal(t, console.Markers(format), len(c.Args)-1, format)
				}
			}
		})
	}
}

func TestEmit_DefaultText(t *testing.T) {
	rec := emit(Default())
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, []any{
		"%cHello World",
		"color: #ffffff; background: #4f46e5; padding: 6px 12px; border-radius: 6px; font-size: 13px; font-weight: bold",
	}, rec.Calls[0].Args)
}

func TestEmit_GroupWrapper(t *testing.T) {
	tests := []struct {
		name      string
		collapsed bool
		want      []string
	}{
		{name: "expanded", want: []string{console.MethodGroup, console.MethodLog, console.MethodGroupEnd}},
		{name: "collapsed", collapsed: true, want: []string{console.MethodGroupCollapsed, console.MethodLog, console.MethodGroupEnd}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Group = &Group{Enabled: true, Label: "G", Collapsed: tt.collapsed}
			rec := emit(cfg)
			assert.Equal(t, tt.want, rec.Methods())
			assert.Equal(t, []any{"G"}, rec.Calls[0].Args)
		})
	}
}

func TestEmit_DisabledGroupIsIgnored(t *testing.T) {
	cfg := Default()
	cfg.Group = &Group{Enabled: false, Label: "G", Collapsed: true}
	assert.Equal(t, []string{console.MethodLog}, emit(cfg).Methods())
}

func TestEmit_UnknownTypeIsNoop(t *testing.T) {
	cfg := Default()
	cfg.Type = "SPARKLE"
	assert.Empty(t, emit(cfg).Calls)

	cfg.Group = &Group{Enabled: true, Label: "G"}
	assert.Equal(t, []string{console.MethodGroup, console.MethodGroupEnd}, emit(cfg).Methods())
}

func TestEmit_NilPayloadsRenderNothing(t *testing.T) {
	for _, typ := range []Type{Emoji, Badge, ASCII} {
		cfg := Config{Type: typ}
		assert.Empty(t, emit(cfg).Calls, typ)
	}
}

func TestEmit_Table(t *testing.T) {
	t.Run("object is promoted to one row", func(t *testing.T) {
		cfg := Default()
		cfg.Type = Table
		cfg.Message = "Users"
		rec := emit(cfg)
		require.Equal(t, []string{console.MethodLog, console.MethodTable}, rec.Methods())
		assert.Equal(t, "%c📊 Users", rec.Calls[0].Args[0])
		rows := rec.Calls[1].Args[0].([]any)
		require.Len(t, rows, 1)
		row := rows[0].(console.Row)
		assert.Equal(t, []string{"id", "meta", "status"}, row.Keys())
	})
	t.Run("collection keeps its rows", func(t *testing.T) {
		cfg := Config{Type: Table, JSONData: []any{
			map[string]any{"a": 1},
			map[string]any{"a": 2},
		}}
		rows := emit(cfg).Calls[1].Args[0].([]any)
		assert.Len(t, rows, 2)
	})
	t.Run("scalar or missing data prints an error", func(t *testing.T) {
		for _, data := range []any{nil, 42, "text"} {
			rec := emit(Config{Type: Table, JSONData: data})
			require.Len(t, rec.Calls, 1)
			assert.Equal(t, []any{"%c" + TableDataError, style.Serialize(style.Error)}, rec.Calls[0].Args)
		}
	})
}

func TestEmit_GradientWithoutPayload(t *testing.T) {
	rec := emit(Config{Type: Gradient, Message: "m"})
	require.Len(t, rec.Calls, 1)
	assert.Contains(t, rec.Calls[0].Args[1], "linear-gradient(to right, )")
}

func TestRun_PreservesOrder(t *testing.T) {
	items := Showcase()
	rec := console.NewRecorder()
	Run(rec, items)

	want := console.NewRecorder()
	for _, it := range items {
		Emit(want, it.Config)
	}
	assert.Equal(t, want.Calls, rec.Calls)
}

func TestGuard(t *testing.T) {
	rec := console.NewRecorder()
	g := Guard(rec)
	g.GroupEnd()
	g.Group("a")
	g.GroupCollapsed("b")
	g.Log("x")
	g.GroupEnd()
	assert.Equal(t, 1, g.Depth())
	g.Close()
	assert.Equal(t, 0, g.Depth())
	assert.Equal(t, []string{
		console.MethodGroup,
		console.MethodGroupCollapsed,
		console.MethodLog,
		console.MethodGroupEnd,
		console.MethodGroupEnd,
	}, rec.Methods())
}

func TestShowcase(t *testing.T) {
	items := Showcase()
	require.Len(t, items, 6)
	assert.Equal(t, ASCII, items[0].Config.Type)
	assert.Equal(t, Emoji, items[4].Config.Type)
	assert.InDelta(t, 80.0, items[4].Config.Emoji.Size, 0)

	ids := map[string]bool{}
	for _, it := range items {
		assert.NotEmpty(t, it.ID)
		ids[it.ID] = true
	}
	assert.Len(t, ids, len(items))
}

func TestConfig_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	for _, key := range []string{"type", "message", "styles", "badge", "jsonData", "emojiData", "gradientData", "asciiData", "group"} {
		assert.Contains(t, generic, key)
	}

	var back Config
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Default().Styles, back.Styles)
	assert.Equal(t, Default().Badge, back.Badge)
}

func TestPreset_LegacyUpgrade(t *testing.T) {
	legacy := `{"id":"p1","name":"old","createdAt":1700000000000,"config":{"type":"TEXT","message":"hi","styles":{"color":"red"}}}`

	var p Preset
	require.NoError(t, json.Unmarshal([]byte(legacy), &p))
	assert.True(t, p.Upgraded)
	assert.Equal(t, "old", p.Name)
	assert.Equal(t, int64(1700000000000), p.CreatedAt)
	require.Len(t, p.Logs, 1)
	assert.NotEmpty(t, p.Logs[0].ID)
	assert.Equal(t, "hi", p.Logs[0].Config.Message)
	assert.Equal(t, style.Of("color", "red"), p.Logs[0].Config.Styles)
}

func TestPreset_CurrentLayout(t *testing.T) {
	doc := `
id: p2
name: current
createdAt: 1
logs:
  - id: a
    config:
      type: RAW
      message: raw
`
	var p Preset
	require.NoError(t, yaml.Unmarshal([]byte(doc), &p))
	assert.False(t, p.Upgraded)
	require.Len(t, p.Logs, 1)
	assert.Equal(t, "a", p.Logs[0].ID)
	assert.Equal(t, Raw, p.Logs[0].Config.Type)
}

func TestWithFreshIDs(t *testing.T) {
	items := []Item{{ID: "a"}, {ID: "b"}}
	fresh := WithFreshIDs(items)
	require.Len(t, fresh, 2)
	assert.NotEqual(t, "a", fresh[0].ID)
	assert.NotEqual(t, fresh[0].ID, fresh[1].ID)
	assert.Equal(t, "a", items[0].ID)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		messages []string
	}{
		{name: "json config", in: `{"type":"TEXT","message":"one"}`, messages: []string{"one"}},
		{name: "json config list", in: `[{"type":"TEXT","message":"a"},{"type":"RAW","message":"b"}]`, messages: []string{"a", "b"}},
		{name: "json item", in: `{"id":"x","config":{"type":"TEXT","message":"it"}}`, messages: []string{"it"}},
		{name: "yaml item list", in: "- id: x\n  config:\n    type: TEXT\n    message: y1\n- config:\n    type: RAW\n    message: y2\n", messages: []string{"y1", "y2"}},
		{name: "preset", in: `{"id":"p","name":"n","createdAt":0,"logs":[{"id":"i","config":{"type":"TEXT","message":"p1"}}]}`, messages: []string{"p1"}},
		{name: "legacy preset", in: `{"id":"p","name":"n","createdAt":0,"config":{"type":"TEXT","message":"legacy"}}`, messages: []string{"legacy"}},
		{name: "preset list uses the first", in: `[{"name":"a","logs":[{"id":"1","config":{"type":"TEXT","message":"first"}}]},{"name":"b","logs":[]}]`, messages: []string{"first"}},
		{name: "empty list", in: `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Decode([]byte(tt.in))
			require.NoError(t, err)
			require.Len(t, items, len(tt.messages))
			for i, it := range items {
				assert.Equal(t, tt.messages[i], it.Config.Message)
				assert.NotEmpty(t, it.ID)
			}
		})
	}
}

func TestDecode_Unrecognized(t *testing.T) {
	for _, in := range []string{"", "just text", `{"foo":1}`, `[1,2,3]`} {
		_, err := Decode([]byte(in))
		assert.ErrorIs(t, err, ErrUnrecognized, in)
	}
}

func TestDecode_YAMLStylesKeepOrder(t *testing.T) {
	doc := "type: TEXT\nmessage: m\nstyles:\n  padding: 2px\n  color: red\n"
	items, err := Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "padding: 2px; color: red", style.Serialize(items[0].Config.Styles))
}

func TestTypeKnown(t *testing.T) {
	assert.True(t, Table.Known())
	assert.False(t, Type("table").Known())
}

func TestTypeTitle(t *testing.T) {
	assert.Equal(t, "Gradient", Gradient.Title())
	assert.Equal(t, "Text", Text.Title())
}
