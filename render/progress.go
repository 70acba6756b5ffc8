package render

import (
	"strings"

	"slidec/css"
	"slidec/dom"
	"slidec/pptx"
	"slidec/style"
)

// progress draws a planning section: rounded progress tracks with
// percentage fills and a right-aligned percent label, interleaved with
// milestone text lines.
func (r *Renderer) progress(div *dom.Element, st css.Props) {
	top := style.Px(st.Get("top"))
	left := style.Px(st.Get("left"))
	w := blockWidth(st, 900)
	box := div.Find(".section-box")
	if box == nil {
		return
	}
	cur := Cursor{Y: top + 28}

	for _, child := range box.Children {
		drewBar := false
		for _, inner := range child.Children {
			if inner.Tag != "div" {
				continue
			}
			iss := r.p.ParseInline(inner.Attr("style"))
			if !iss.Has("border-radius") || !iss.Has("height") {
				continue
			}
			trackBg, ok := backgroundOf(iss)
			if !ok {
				continue
			}
			fills := progressFills(inner, r.p)
			hasSpan := false
			for _, sp := range inner.Children {
				if sp.Tag == "span" {
					hasSpan = true
					break
				}
			}
			if len(fills) == 0 && !hasSpan {
				continue
			}
			drewBar = true

			barH := style.Px(iss.Get("height"))
			barW := w - 24
			r.roundedRect(left+12, cur.Y, barW, barH, trackBg)
			for _, f := range fills {
				fw := barW * f.pct / 100
				if fw > 0 {
					r.roundedRect(left+12, cur.Y, fw, barH, f.color)
				}
			}
			r.progressLabel(inner, left, cur.Y, barW, barH)
			cur = cur.Advance(barH + 8)
		}
		if drewBar {
			continue
		}

		if trimmedText(child) == "" || child.Tag != "div" {
			continue
		}
		if hasBlockChildren(child) {
			tb := r.textBox(left+12, cur.Y, w-24, 14, "", textSpec{})
			r.renderRich(tb.Frame, child, 8, true)
			cur = cur.Advance(16)
			cur = r.flowContent(child, left, cur, w, 12, 8)
		} else {
			tb := r.textBox(left+12, cur.Y, w-24, 14, "", textSpec{})
			r.renderRich(tb.Frame, child, 8, false)
			cur = cur.Advance(16)
		}
	}
}

type progressFill struct {
	color style.Color
	pct   float64
}

// progressFills collects the fill divs of a track: children with a parsable
// background, their width read as a percentage of the track.
func progressFills(track *dom.Element, p *css.Parser) []progressFill {
	var fills []progressFill
	for _, fd := range track.Children {
		if fd.Tag != "div" {
			continue
		}
		fds := p.ParseInline(fd.Attr("style"))
		c, ok := backgroundOf(fds)
		if !ok {
			continue
		}
		fills = append(fills, progressFill{color: c, pct: style.Pct(fds.Get("width"))})
	}
	return fills
}

// progressLabel draws the percent span of a track right-aligned at its end.
func (r *Renderer) progressLabel(track *dom.Element, left, y, barW, barH float64) {
	for _, sp := range track.Children {
		if sp.Tag != "span" {
			continue
		}
		txt := trimmedText(sp)
		if !strings.Contains(txt, "%") {
			continue
		}
		sty := r.p.ParseInline(sp.Attr("style"))
		fs := 8.0
		if v := sty.Get("font-size"); v != "" {
			fs = PxToPt(style.Px(v))
		}
		color := r.res.Theme.Text
		if c, ok := style.ParseColor(sty.Get("color")); ok {
			color = c
		}
		r.textBox(left+barW-60, y, 72, barH, txt, textSpec{
			Size:  fs,
			Color: color,
			Align: pptx.AlignRight,
		})
	}
}
