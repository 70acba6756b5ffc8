package style

// Theme holds the fallback constants used when neither inline styles nor the
// stylesheet declare a property. It is passed into the resolver at
// construction so tests can substitute alternates.
type Theme struct {
	FontFamily string

	White  Color // light foreground forced over dark fills
	Text   Color // default body foreground
	Muted  Color // secondary text (legend)
	Border Color // separators, table borders, chrome fills
	Accent Color // titles, links
	Bullet Color // list bullet glyphs
}

// DefaultTheme returns the stock fallback palette.
func DefaultTheme() Theme {
	return Theme{
		FontFamily: "Arial",
		White:      RGB(0xFF, 0xFF, 0xFF),
		Text:       RGB(0x33, 0x33, 0x33),
		Muted:      RGB(0x66, 0x66, 0x66),
		Border:     RGB(0xCC, 0xCC, 0xCC),
		Accent:     RGB(0x00, 0x62, 0x72),
		Bullet:     RGB(0xCC, 0x00, 0x00),
	}
}
