package render

import (
	"strconv"
	"strings"

	"slidec/css"
	"slidec/dom"
	"slidec/style"
)

// lineHeightPx is the base line advance for flowed text, in source pixels.
const lineHeightPx = 13

// Cursor is the vertical flow position inside a box. It is a value type:
// every layout step returns the advanced cursor instead of mutating shared
// state, and Advance clamps at zero, so flowing content can never move the
// cursor back up.
type Cursor struct {
	Y float64
}

// Advance returns a cursor moved down by dy pixels (never up).
func (c Cursor) Advance(dy float64) Cursor {
	if dy < 0 {
		dy = 0
	}
	return Cursor{Y: c.Y + dy}
}

// lineHeight resolves a line-height declaration against the base advance:
// small values are multipliers, large ones absolute pixel heights.
func lineHeight(decl string) float64 {
	if decl == "" {
		return lineHeightPx
	}
	v := style.Px(decl)
	switch {
	case v > 0 && v < 5:
		return float64(int(lineHeightPx * v))
	case v >= 5:
		return float64(int(v))
	}
	return lineHeightPx
}

// decodeBulletContent turns a CSS content value into the bullet glyph:
// quotes stripped, the common escapes mapped, and any short \hhhh escape
// decoded as a codepoint. Empty input falls back to ▪.
func decodeBulletContent(raw string) string {
	s := css.Unquote(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, `\25aa`, "▪")
	s = strings.ReplaceAll(s, `\2022`, "•")
	if s == "" {
		return "▪"
	}
	if strings.HasPrefix(s, `\`) && len(s) <= 5 {
		if cp, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return string(rune(cp))
		}
	}
	return s
}

// inlineTags are skipped when flowing block content; their text reaches the
// output through their parent's rich runs.
var inlineTags = map[string]bool{
	"strong": true, "b": true, "em": true, "i": true,
	"span": true, "a": true, "br": true, "sub": true, "sup": true,
}

// flowContent lays out the block children of parent below the cursor and
// returns the cursor past the last line. left and w describe the owning
// box; indent shifts nested content right and fsPt is the inherited font
// size in points.
func (r *Renderer) flowContent(parent *dom.Element, left float64, cur Cursor, w float64, indent, fsPt float64) Cursor {
	xBase := left + 8 + indent
	wInner := w - 16 - indent

	before := r.res.Rules(".bullet-item::before")
	bulletColor := before.Color("color", r.res.Theme.Bullet)
	bulletChar := decodeBulletContent(before.Raw("content"))
	bulletSize := PxToPt(before.Px("font-size", 10))

	for _, child := range parent.Children {
		if inlineTags[child.Tag] {
			continue
		}
		cst := r.p.ParseInline(child.Attr("style"))
		mt := style.Px(cst.Get("margin-top"))
		mb := style.Px(cst.Get("margin-bottom"))
		cur = cur.Advance(mt)
		lh := lineHeight(cst.Get("line-height"))

		switch {
		case child.HasClass("budget-label"):
			v := r.res.Resolve(child, ".budget-label")
			r.textBox(xBase, cur.Y, wInner, 14, trimmedText(child), textSpec{
				Size:  PxToPt(v.Px("font-size", 12)),
				Bold:  v.Bold("700"),
				Color: v.Color("color", r.res.Theme.Text),
			})
			cur = cur.Advance(14 + mb)

		case child.HasClass("sub-label"):
			v := r.res.Resolve(child, ".sub-label")
			r.textBox(xBase, cur.Y, wInner, 14, trimmedText(child), textSpec{
				Size:  PxToPt(v.Px("font-size", 11)),
				Bold:  v.Bold("700"),
				Color: v.Color("color", r.res.Theme.Text),
			})
			cur = cur.Advance(14 + mb)

		case child.HasClass("bullet-item"):
			v := r.res.Resolve(child, ".bullet-item")
			fpt := PxToPt(v.Px("font-size", 11))
			itemMb := v.Px("margin-bottom", 4)
			r.textBox(xBase, cur.Y, 10, 12, bulletChar, textSpec{Size: bulletSize, Color: bulletColor})
			tb := r.textBox(xBase+12, cur.Y, wInner-12, 14, "", textSpec{})
			r.renderRich(tb.Frame, child, fpt, false)
			cur = cur.Advance(max(14, float64(int(fpt*1.8))) + itemMb)

		case child.Tag == "ul":
			ulMargin := style.Px(cst.Get("margin-left"))
			liX := xBase + ulMargin
			liW := wInner - ulMargin
			for _, li := range child.Children {
				if li.Tag != "li" {
					continue
				}
				if trimmedText(li) == "" {
					continue
				}
				liColor := r.res.Theme.Text
				if c, ok := style.ParseColor(r.p.ParseInline(li.Attr("style")).Get("color")); ok {
					liColor = c
				}
				r.textBox(liX, cur.Y, 10, lh, "•", textSpec{Size: 8, Color: liColor})
				tb := r.textBox(liX+12, cur.Y, liW-12, lh, "", textSpec{})
				r.renderRich(tb.Frame, li, fsPt, false)
				cur = cur.Advance(lh)
			}
			cur = cur.Advance(mb)

		case child.Tag == "p":
			if trimmedText(child) != "" {
				tb := r.textBox(xBase, cur.Y, wInner, 14, "", textSpec{})
				r.renderRich(tb.Frame, child, fsPt, false)
				cur = cur.Advance(14)
			}
			cur = cur.Advance(mb)

		case child.Tag == "div":
			if hasBlockChildren(child) {
				childFs := fsPt
				if fs := cst.Get("font-size"); fs != "" {
					childFs = PxToPt(style.Px(fs))
				}
				childIndent := indent + style.Px(cst.Get("margin-left"))
				cur = r.flowContent(child, left, cur, w, childIndent, childFs)
			} else if trimmedText(child) != "" {
				tb := r.textBox(xBase, cur.Y, wInner, 14, "", textSpec{})
				r.renderRich(tb.Frame, child, fsPt, false)
				cur = cur.Advance(14)
			}
			cur = cur.Advance(mb)
		}
	}
	return cur
}

// hasBlockChildren reports whether the element nests further block content.
func hasBlockChildren(el *dom.Element) bool {
	for _, c := range el.Children {
		switch c.Tag {
		case "p", "ul", "div", "table":
			return true
		}
	}
	return false
}
