package style

// Named presets shipped with the library.
var (
	Success = Of(
		string(Background), "#ecfdf5",
		string(Color), "#059669",
		string(Padding), "4px 8px",
		string(BorderRadius), "4px",
		string(Border), "1px solid #34d399",
		string(FontWeight), "bold",
	)
	Error = Of(
		string(Background), "#fef2f2",
		string(Color), "#dc2626",
		string(Padding), "4px 8px",
		string(BorderRadius), "4px",
		string(Border), "1px solid #f87171",
		string(FontWeight), "bold",
	)
	Warning = Of(
		string(Background), "#fffbeb",
		string(Color), "#d97706",
		string(Padding), "4px 8px",
		string(BorderRadius), "4px",
		string(Border), "1px solid #fbbf24",
		string(FontWeight), "bold",
	)
	Neon = Of(
		string(Background), "#000000",
		string(Color), "#00ff00",
		string(Padding), "6px 12px",
		string(Border), "1px solid #00ff00",
		string(BoxShadow), "0 0 10px #00ff00",
		string(FontFamily), "monospace",
		string(FontSize), "14px",
	)
)

// Preset returns a copy of the named preset (success, error, warning, neon).
func Preset(name string) (Map, bool) {
	switch name {
	case "success", "SUCCESS":
		return Success.Clone(), true
	case "error", "ERROR":
		return Error.Clone(), true
	case "warning", "WARNING":
		return Warning.Clone(), true
	case "neon", "NEON":
		return Neon.Clone(), true
	default:
		return nil, false
	}
}
