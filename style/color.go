package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 3-byte RGB triple.
type Color struct {
	R, G, B uint8
}

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the upper-case 6-digit hex form without the leading '#'.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// IsLight reports whether the color has high luminance. Overlaid text on a
// light background keeps a dark foreground; on a dark one it is forced light.
func IsLight(c Color) bool {
	return 0.299*float64(c.R)+0.587*float64(c.G)+0.114*float64(c.B) > 180
}

var namedColors = map[string]Color{
	"white": {0xFF, 0xFF, 0xFF},
	"black": {0, 0, 0},
	"red":   {0xFF, 0, 0},
	"green": {0, 0x80, 0},
	"blue":  {0, 0, 0xFF},
}

// ParseColor parses a CSS color string. It is pure and total: any input
// yields either a valid triple or ok=false ("no color"), never an error.
// Recognized forms: #rgb, #rrggbb, rgb(), rgba() with alpha discarded, a
// small named set, and "transparent" (no color).
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "transparent" {
		return Color{}, false
	}

	if c, ok := namedColors[s]; ok {
		return c, true
	}

	if rest, ok := strings.CutPrefix(s, "#"); ok {
		switch len(rest) {
		case 6:
			v, err := strconv.ParseUint(rest, 16, 32)
			if err != nil {
				return Color{}, false
			}
			return Color{uint8(v >> 16), uint8(v >> 8 & 0xFF), uint8(v & 0xFF)}, true
		case 3:
			v, err := strconv.ParseUint(rest, 16, 16)
			if err != nil {
				return Color{}, false
			}
			r, g, b := uint8(v>>8), uint8(v>>4&0xF), uint8(v&0xF)
			return Color{r<<4 | r, g<<4 | g, b<<4 | b}, true
		}
		return Color{}, false
	}

	if rest, ok := cutFuncPrefix(s, "rgb", "rgba"); ok {
		parts := strings.Split(rest, ",")
		if len(parts) < 3 {
			return Color{}, false
		}
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil || n < 0 || n > 255 {
				return Color{}, false
			}
			ch[i] = uint8(n)
		}
		return Color{ch[0], ch[1], ch[2]}, true
	}

	return Color{}, false
}

// cutFuncPrefix strips "name(" for any of the names and the closing paren.
func cutFuncPrefix(s string, names ...string) (string, bool) {
	for _, name := range names {
		if rest, ok := strings.CutPrefix(s, name+"("); ok {
			return strings.TrimSuffix(rest, ")"), true
		}
	}
	return "", false
}

// BorderColor extracts the color from a CSS border shorthand like
// "1px solid #ccc", trying tokens right to left.
func BorderColor(s string) (Color, bool) {
	parts := strings.Fields(s)
	for i := len(parts) - 1; i >= 0; i-- {
		if c, ok := ParseColor(parts[i]); ok {
			return c, true
		}
	}
	return Color{}, false
}

// Px reads the leading numeric token of a length value, ignoring any unit
// suffix (source pixels assumed). Missing or malformed values yield 0.
func Px(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// Pct reads the leading numeric token of a percentage value, or 0 when the
// '%' sign is absent.
func Pct(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 || !strings.HasPrefix(strings.TrimSpace(s[end:]), "%") {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// IsBoldWeight reports whether a font-weight value means bold. Empty,
// "normal" and "400" do not.
func IsBoldWeight(weight string) bool {
	switch strings.TrimSpace(weight) {
	case "", "400", "normal":
		return false
	}
	return true
}
