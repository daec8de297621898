package render

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"navy":    "#000080",
	"teal":    "#008080",
	"gold":    "#ffd700",
}

// ParseColor reads a CSS colour: #rgb, #rrggbb, rgb(r, g, b) or a common
// colour name. Transparent and unknown values are rejected.
func ParseColor(v string) (colorful.Color, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if hex, ok := namedColors[v]; ok {
		v = hex
	}
	switch {
	case strings.HasPrefix(v, "#") && len(v) == 4:
		v = "#" + string([]byte{v[1], v[1], v[2], v[2], v[3], v[3]})
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGB(strings.TrimSuffix(strings.TrimPrefix(v, "rgb("), ")"))
	}
	if !strings.HasPrefix(v, "#") || len(v) != 7 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func parseRGB(args string) (colorful.Color, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return colorful.Color{}, false
	}
	var ch [3]float64
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return colorful.Color{}, false
		}
		ch[i] = float64(n) / 255
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, true
}
