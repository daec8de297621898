// Package entry defines the configuration of a single console statement,
// the ordered items built from them and saved presets, and dispatches a
// configuration to the matching emitter.
package entry

import (
	"encoding/json"

	"github.com/nats-io/nuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/style"
)

// Type selects the emitter used for a configuration.
type Type string

const (
	Text     Type = "TEXT"
	Raw      Type = "RAW"
	Emoji    Type = "EMOJI"
	Badge    Type = "BADGE"
	JSON     Type = "JSON"
	Table    Type = "TABLE"
	Gradient Type = "GRADIENT"
	ASCII    Type = "ASCII"
)

// Types lists every known type in editor order.
func Types() []Type {
	return []Type{Text, Raw, Emoji, Badge, JSON, Table, Gradient, ASCII}
}

// Known reports whether t is one of Types.
func (t Type) Known() bool {
	for _, k := range Types() {
		if k == t {
			return true
		}
	}
	return false
}

var titler = cases.Title(language.English)

// Title is the display name of t ("Gradient").
func (t Type) Title() string {
	return titler.String(string(t))
}

// EmojiData is the payload of an EMOJI statement.
type EmojiData struct {
	Emoji string  `json:"emoji" yaml:"emoji"`
	Size  float64 `json:"size" yaml:"size"`
}

// GradientData is the payload of a GRADIENT statement.
type GradientData struct {
	Colors    []string `json:"colors" yaml:"colors"`
	Direction string   `json:"direction" yaml:"direction"`
}

// ASCIIData is the payload of an ASCII statement.
type ASCIIData struct {
	Art   string `json:"art" yaml:"art"`
	Color string `json:"color" yaml:"color"`
}

// Group wraps a statement in a console group.
type Group struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Label     string `json:"label" yaml:"label"`
	Collapsed bool   `json:"collapsed" yaml:"collapsed"`
}

// Config describes one console statement. Payload fields only matter for
// the matching Type; a nil payload renders nothing.
type Config struct {
	Type     Type           `json:"type" yaml:"type"`
	Message  string         `json:"message" yaml:"message"`
	Styles   style.Map      `json:"styles" yaml:"styles"`
	Badge    *console.Badge `json:"badge,omitempty" yaml:"badge,omitempty"`
	JSONData any            `json:"jsonData,omitempty" yaml:"jsonData,omitempty"`
	Emoji    *EmojiData     `json:"emojiData,omitempty" yaml:"emojiData,omitempty"`
	Gradient *GradientData  `json:"gradientData,omitempty" yaml:"gradientData,omitempty"`
	ASCII    *ASCIIData     `json:"asciiData,omitempty" yaml:"asciiData,omitempty"`
	Group    *Group         `json:"group,omitempty" yaml:"group,omitempty"`
}

// Grouped reports whether the statement is wrapped in a group.
func (c Config) Grouped() bool {
	return c.Group != nil && c.Group.Enabled
}

// Item is one statement in a sequence.
type Item struct {
	ID     string `json:"id" yaml:"id"`
	Config Config `json:"config" yaml:"config"`
}

// Preset is a named, saved sequence of items. CreatedAt is in Unix
// milliseconds.
type Preset struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	CreatedAt int64  `json:"createdAt" yaml:"createdAt"`
	Logs      []Item `json:"logs" yaml:"logs"`

	// Upgraded is set when the preset was decoded from the legacy
	// single-config layout.
	Upgraded bool `json:"-" yaml:"-"`
}

// storedPreset accepts both the current and the legacy preset layout.
type storedPreset struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	CreatedAt int64   `json:"createdAt" yaml:"createdAt"`
	Logs      []Item  `json:"logs" yaml:"logs"`
	Config    *Config `json:"config" yaml:"config"`
}

func (s storedPreset) preset() Preset {
	p := Preset{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, Logs: s.Logs}
	if s.Logs == nil && s.Config != nil {
		p.Logs = []Item{{ID: NewID(), Config: *s.Config}}
		p.Upgraded = true
	}
	return p
}

// UnmarshalJSON decodes a preset, upgrading the legacy layout to a
// one-item sequence.
func (p *Preset) UnmarshalJSON(data []byte) error {
	var s storedPreset
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = s.preset()
	return nil
}

// UnmarshalYAML is the YAML counterpart of UnmarshalJSON.
func (p *Preset) UnmarshalYAML(value *yaml.Node) error {
	var s storedPreset
	if err := value.Decode(&s); err != nil {
		return err
	}
	*p = s.preset()
	return nil
}

// NewID returns a fresh unique identifier.
func NewID() string {
	return nuid.Next()
}

// WithFreshIDs returns a copy of items with new identifiers.
func WithFreshIDs(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Item{ID: NewID(), Config: it.Config}
	}
	return out
}
