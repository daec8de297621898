package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome colors and icons used around rendered
// statements and in the browser. Primary marks open groups and table
// headers; Warning and Error color browser status messages.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Expanded  string
	Collapsed string
	Bullet    string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Expanded:  "▾",
			Collapsed: "▸",
			Bullet:    "·",
		},
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:    "orca",
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Expanded:  "▿",
			Collapsed: "▹",
			Bullet:    "·",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Primary: lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Expanded:  "v",
			Collapsed: ">",
			Bullet:    "-",
		},
	}
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	return []string{"default", "orca", "mono"}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// bind rebuilds the theme's styles on r so they follow r's colour profile.
// A zero theme binds as DefaultTheme.
func (t Theme) bind(r *lipgloss.Renderer) Theme {
	if t.Name == "" {
		t = DefaultTheme()
	}
	on := func(s lipgloss.Style) lipgloss.Style { return r.NewStyle().Inherit(s) }
	t.Primary = on(t.Primary)
	t.Success = on(t.Success)
	t.Warning = on(t.Warning)
	t.Error = on(t.Error)
	t.Muted = on(t.Muted)
	t.Bold = on(t.Bold)
	return t
}
