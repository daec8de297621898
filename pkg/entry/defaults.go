package entry

import (
	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/style"
)

// Default returns the configuration a new statement starts from.
func Default() Config {
	return Config{
		Type:    Text,
		Message: "Hello World",
		Styles: style.Of(
			"color", "#ffffff",
			"background", "#4f46e5",
			"padding", "6px 12px",
			"borderRadius", "6px",
			"fontSize", "13px",
			"fontWeight", "bold",
		),
		Badge: &console.Badge{
			Label:      "Status",
			Value:      "Operational",
			LabelBg:    "#374151",
			LabelColor: "#f9fafb",
			ValueBg:    "#10b981",
			ValueColor: "#ffffff",
		},
		JSONData: map[string]any{
			"id":     101,
			"status": "active",
			"meta":   map[string]any{"attempts": 3},
		},
		Emoji: &EmojiData{Emoji: "🚀", Size: 50},
		Gradient: &GradientData{
			Colors:    []string{"#6366f1", "#a855f7"},
			Direction: "to right",
		},
		ASCII: &ASCIIData{
			Art:   "  /\\_/\\\n ( o.o )\n  > ^ <",
			Color: "#ff5f56",
		},
		Group: &Group{Label: "Debug Group"},
	}
}

const showcaseArt = `
██████ ██████ ██████ ██████ ████████ ██ ███   ███ ███████
██  ██ ██  ██     ██     ██    ██    ██ ████ ████ ██
██████ ██  ██ ██████ ██████    ██    ██ ██ ███ ██ █████
██  ██ ██  ██ ██         ██    ██    ██ ██  █  ██ ██
██████ ██████ ██████ ██████    ██    ██ ██     ██ ███████
`

// Showcase returns the demonstration sequence, each item with a fresh id.
func Showcase() []Item {
	with := func(edit func(*Config)) Item {
		c := Default()
		edit(&c)
		return Item{ID: NewID(), Config: c}
	}
	return []Item{
		with(func(c *Config) {
			c.Type = ASCII
			c.ASCII = &ASCIIData{Art: showcaseArt, Color: "#3b82f6"}
		}),
		with(func(c *Config) {
			c.Type = Raw
			c.Message = "✨ Welcome to artisan"
			c.Styles = style.Of("color", "#3b82f6", "fontSize", "14px", "fontWeight", "bold")
		}),
		with(func(c *Config) {
			c.Type = Badge
			c.Badge = &console.Badge{
				Label:      "💝 Tip",
				Value:      "A gentle logging helper that brings some warmth to your console.",
				LabelBg:    "#ec4899",
				LabelColor: "#fff",
				ValueBg:    "#fff",
				ValueColor: "#333",
			}
		}),
		with(func(c *Config) {
			c.Type = Raw
			c.Message = "🌸 Supports text, badges, emoji, JSON and more"
		}),
		with(func(c *Config) {
			c.Type = Emoji
			c.Emoji = &EmojiData{Emoji: "🎨 🌈 ✨", Size: 80}
		}),
		with(func(c *Config) {
			c.Type = Badge
			c.Badge = &console.Badge{
				Label:      "🎉 Get started",
				Value:      "Customize your logs and put some warmth into your code.",
				LabelBg:    "#10b981",
				LabelColor: "#fff",
				ValueBg:    "#fff",
				ValueColor: "#333",
			}
		}),
	}
}
