package render

import (
	"strings"

	"slidec/css"
	"slidec/dom"
	"slidec/style"
)

// BlockKind is the closed set of renderings for an absolutely positioned
// content block. Every block is classified exactly once and dispatched on
// the result; anything that matches nothing is skipped, never guessed at.
type BlockKind int

const (
	// BlockNone marks divs that are not positioned content blocks, or are
	// handled by the chrome pass (footer containers).
	BlockNone BlockKind = iota
	// BlockLegend is a bottom-anchored note with color swatch spans.
	BlockLegend
	// BlockLink is a block of underlined reference links.
	BlockLink
	// BlockProgress is a section whose box holds rounded progress bars.
	BlockProgress
	// BlockSectionTable is a section whose box holds a table.
	BlockSectionTable
	// BlockSection is a regular section: header, outlined box, flowed content.
	BlockSection
	// BlockTable is a standalone table with no section header.
	BlockTable
)

func (k BlockKind) String() string {
	switch k {
	case BlockLegend:
		return "legend"
	case BlockLink:
		return "link"
	case BlockProgress:
		return "progress"
	case BlockSectionTable:
		return "section-table"
	case BlockSection:
		return "section"
	case BlockTable:
		return "table"
	default:
		return "none"
	}
}

// Classify decides how a div is rendered. Only divs positioned absolutely
// count as content blocks; structural probes run in a fixed order so the
// first matching kind wins.
func Classify(div *dom.Element, p *css.Parser) BlockKind {
	st := p.ParseInline(div.Attr("style"))
	if st.Get("position") != "absolute" {
		return BlockNone
	}
	if div.Has(".footer-bar") || div.Has(".bottom-bar") {
		return BlockNone
	}
	if isLegend(div, p) {
		return BlockLegend
	}
	if div.Has("a.link-text") && !div.Has(".section-header") {
		return BlockLink
	}
	if div.Has(".section-header") {
		box := div.Find(".section-box")
		switch {
		case box != nil && hasProgressBar(box, p):
			return BlockProgress
		case box != nil && box.Has("table"):
			return BlockSectionTable
		default:
			return BlockSection
		}
	}
	if div.Has("table") {
		return BlockTable
	}
	return BlockNone
}

// backgroundOf reads "background" falling back to "background-color".
func backgroundOf(props css.Props) (style.Color, bool) {
	if c, ok := style.ParseColor(props.Get("background")); ok {
		return c, true
	}
	return style.ParseColor(props.Get("background-color"))
}

// isLegend detects a legend by structure alone: anchored with "bottom",
// no section header, and containing at least one color swatch span (a
// background with a border radius, or a ● glyph with a declared color).
// The probe is deliberately loose and must stay that way; legends carry no
// identifying class.
func isLegend(div *dom.Element, p *css.Parser) bool {
	st := p.ParseInline(div.Attr("style"))
	if !st.Has("bottom") {
		return false
	}
	if div.Has(".section-header") {
		return false
	}
	for _, span := range div.FindAll("span[style]") {
		ss := p.ParseInline(span.Attr("style"))
		bg := ss.Get("background")
		if bg == "" {
			bg = ss.Get("background-color")
		}
		if bg != "" && ss.Has("border-radius") {
			return true
		}
		if ss.Get("color") != "" && strings.Contains(span.Text, "●") {
			return true
		}
	}
	return false
}

// hasProgressBar reports whether a section box holds a progress track: a
// nested div declaring border-radius, height and a parsable background.
func hasProgressBar(box *dom.Element, p *css.Parser) bool {
	for _, child := range box.Children {
		for _, inner := range child.Children {
			if inner.Tag != "div" {
				continue
			}
			iss := p.ParseInline(inner.Attr("style"))
			if !iss.Has("border-radius") || !iss.Has("height") {
				continue
			}
			if _, ok := backgroundOf(iss); ok {
				return true
			}
		}
	}
	return false
}

// circleColor finds the indicator color inside a table cell: the first span
// with a parsable background, or a ● glyph span with a declared color.
func circleColor(el *dom.Element, p *css.Parser) (style.Color, bool) {
	for _, span := range el.FindAll("span[style]") {
		ss := p.ParseInline(span.Attr("style"))
		if c, ok := backgroundOf(ss); ok {
			return c, true
		}
		if ss.Get("color") != "" && strings.Contains(span.Text, "●") {
			return style.ParseColor(ss.Get("color"))
		}
	}
	return style.Color{}, false
}
