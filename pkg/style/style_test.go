package style

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		in   Map
		want string
	}{
		{name: "empty", in: nil, want: ""},
		{name: "single", in: Of("color", "red"), want: "color: red"},
		{
			name: "camel keys are hyphenated",
			in:   Of("color", "red", "fontSize", "12px", "borderRadius", "4px"),
			want: "color: red; font-size: 12px; border-radius: 4px",
		},
		{
			name: "order follows insertion",
			in:   Of("fontWeight", "bold", "color", "#000"),
			want: "font-weight: bold; color: #000",
		},
		{
			name: "values are not escaped",
			in:   Of("fontFamily", "'Fira Code', monospace"),
			want: "font-family: 'Fira Code', monospace",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.in))
		})
	}
}

func TestSerialize_SegmentCountMatchesMap(t *testing.T) {
	m := Of("color", "a", "background", "b", "padding", "c", "marginTop", "d")
	out := Serialize(m)
	segs := strings.Split(out, "; ")
	require.Len(t, segs, len(m))
	for i, seg := range segs {
		assert.Equal(t, Kebab(m[i].Property)+": "+m[i].Value, seg)
	}
	assert.NotContains(t, out, "border")
}

func TestKebab(t *testing.T) {
	assert.Equal(t, "font-size", Kebab(FontSize))
	assert.Equal(t, "border-radius", Kebab(BorderRadius))
	assert.Equal(t, "background-position", Kebab(BackgroundPosition))
	assert.Equal(t, "color", Kebab(Color))
}

func TestCamel(t *testing.T) {
	assert.Equal(t, FontSize, Camel("font-size"))
	assert.Equal(t, BackgroundRepeat, Camel("background-repeat"))
	assert.Equal(t, Color, Camel("color"))
}

func TestSet_EmptyValueRemoves(t *testing.T) {
	m := Of("color", "red", "fontSize", "")
	assert.Len(t, m, 1)

	m.Set(Color, "")
	assert.Empty(t, m)
	assert.Equal(t, "", Serialize(m))
}

func TestSet_ReplacesInPlace(t *testing.T) {
	m := Of("color", "red", "padding", "1px")
	m.Set(Color, "blue")
	assert.Equal(t, "color: blue; padding: 1px", Serialize(m))
}

func TestMerge_OverridesWin(t *testing.T) {
	defaults := Of("color", "#ffffff", "padding", "4px 8px", "fontWeight", "bold")
	overrides := Of("color", "#000", "marginTop", "2px")

	got := Merge(defaults, overrides)

	assert.Equal(t, "color: #000; padding: 4px 8px; font-weight: bold; margin-top: 2px", Serialize(got))
	// inputs untouched
	v, _ := defaults.Get(Color)
	assert.Equal(t, "#ffffff", v)
}

func TestMerge_NilInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
	assert.Equal(t, "color: red", Serialize(Merge(nil, Of("color", "red"))))
	assert.Equal(t, "color: red", Serialize(Merge(Of("color", "red"), nil)))
}

func TestPick(t *testing.T) {
	m := Of("background", "#000", "fontWeight", "bold", "color", "red", "padding", "2px")
	got := Pick(m, Color, FontSize, FontWeight)
	assert.Equal(t, "color: red; font-weight: bold", Serialize(got))
	assert.Empty(t, Pick(m, LineHeight))
}

func TestParse_RoundTrip(t *testing.T) {
	m := Of("color", "#fff", "fontSize", "12px", "background", "linear-gradient(to right, #111, #222)")
	assert.Equal(t, m, Parse(Serialize(m)))
}

func TestParse_Tolerant(t *testing.T) {
	got := Parse(`
    color: #fff;
    font-family: 'JetBrains Mono', monospace;
    bogus;
    : nothing;
  `)
	assert.Equal(t, Of("color", "#fff", "fontFamily", "'JetBrains Mono', monospace"), got)
}

func TestJSON_PreservesOrder(t *testing.T) {
	var m Map
	require.NoError(t, json.Unmarshal([]byte(`{"padding":"1px","color":"red","fontWeight":700,"border":null,"margin":""}`), &m))
	assert.Equal(t, Of("padding", "1px", "color", "red", "fontWeight", "700"), m)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"padding":"1px","color":"red","fontWeight":"700"}`, string(out))
	assert.True(t, strings.HasPrefix(string(out), `{"padding"`))
}

func TestJSON_RejectsNonObject(t *testing.T) {
	var m Map
	assert.Error(t, json.Unmarshal([]byte(`["color"]`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{"color":{"nested":true}}`), &m))
}

func TestYAML_PreservesOrder(t *testing.T) {
	var m Map
	require.NoError(t, yaml.Unmarshal([]byte("lineHeight: \"1.2\"\ncolor: red\nborder: ~\n"), &m))
	assert.Equal(t, Of("lineHeight", "1.2", "color", "red"), m)

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "lineHeight: \"1.2\"\ncolor: red\n", string(out))
}

func TestPreset(t *testing.T) {
	m, ok := Preset("error")
	require.True(t, ok)
	v, _ := m.Get(Color)
	assert.Equal(t, "#dc2626", v)

	m.Set(Color, "blue")
	v, _ = Error.Get(Color)
	assert.Equal(t, "#dc2626", v, "Preset must return a copy")

	_, ok = Preset("nope")
	assert.False(t, ok)
}

func TestSource_IsEmbedded(t *testing.T) {
	assert.Contains(t, Source, "func Serialize(m Map) string")
}
