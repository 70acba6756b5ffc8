package render

import (
	"strings"

	"slidec/dom"
	"slidec/pptx"
	"slidec/style"
)

// richRun is one pending run of a mixed-style line: plain, bold, or colored.
type richRun struct {
	text     string
	bold     bool
	color    style.Color
	hasColor bool
}

// splitRuns walks the element's direct children and flattens them into runs.
// Bold elements keep their full text content; spans either collapse into a
// swatch glyph, carry their declared color, or fall through as plain text;
// anchors and anything unrecognized flatten to plain text. Tails always
// follow their element. With skipBlocks set, nested block elements are
// dropped but their tails survive.
func (r *Renderer) splitRuns(el *dom.Element, skipBlocks bool) []richRun {
	var parts []richRun
	plain := func(text string) {
		parts = append(parts, richRun{text: text})
	}

	if el.Text != "" {
		plain(el.Text)
	}
	for _, sub := range el.Children {
		if skipBlocks && (sub.Tag == "ul" || sub.Tag == "div" || sub.Tag == "table") {
			if sub.Tail != "" {
				plain(sub.Tail)
			}
			continue
		}
		switch sub.Tag {
		case "strong", "b":
			parts = append(parts, richRun{text: sub.TextContent(), bold: true})
		case "span":
			ss := r.p.ParseInline(sub.Attr("style"))
			bg := ss.Get("background")
			if bg == "" {
				bg = ss.Get("background-color")
			}
			// swatch: a background with a shape hint renders as a colored dot
			if bg != "" && (ss.Has("border-radius") || ss.Has("display")) {
				if c, ok := style.ParseColor(bg); ok {
					parts = append(parts, richRun{text: "●", color: c, hasColor: true})
				}
				if sub.Tail != "" {
					plain(sub.Tail)
				}
				continue
			}
			txt := strings.TrimSpace(sub.TextContent())
			if txt == "●" {
				if c, ok := style.ParseColor(ss.Get("color")); ok {
					parts = append(parts, richRun{text: "●", color: c, hasColor: true})
				}
				if sub.Tail != "" {
					plain(sub.Tail)
				}
				continue
			}
			if txt == "" {
				if sub.Tail != "" {
					plain(sub.Tail)
				}
				continue
			}
			c, ok := style.ParseColor(ss.Get("color"))
			parts = append(parts, richRun{text: sub.TextContent(), color: c, hasColor: ok})
		case "a":
			plain(sub.TextContent())
		default:
			plain(sub.TextContent())
		}
		if sub.Tail != "" {
			plain(sub.Tail)
		}
	}
	return parts
}

// renderRich emits the element's runs into the frame at the given point
// size. Whitespace-only runs are dropped; when nothing splits out, the
// trimmed text content becomes a single plain run.
func (r *Renderer) renderRich(frame *pptx.TextFrame, el *dom.Element, pt float64, skipBlocks bool) {
	parts := r.splitRuns(el, skipBlocks)
	if len(parts) == 0 {
		if clean := trimmedText(el); clean != "" {
			frame.AddRun(r.plainRun(clean, pt))
		}
		return
	}
	for _, part := range parts {
		txt := part.text
		if skipBlocks {
			txt = strings.Trim(txt, "\n")
		}
		if strings.TrimSpace(txt) == "" {
			continue
		}
		run := r.plainRun(txt, pt)
		if part.bold {
			run.Bold = true
		}
		if part.hasColor {
			run.Color = paint(part.color)
		}
		frame.AddRun(run)
	}
}

func (r *Renderer) plainRun(text string, pt float64) pptx.Run {
	return pptx.Run{
		Text:   text,
		Font:   r.font,
		SizePt: pt,
		Color:  paint(r.res.Theme.Text),
	}
}
