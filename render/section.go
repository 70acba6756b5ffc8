package render

import (
	"strings"

	"slidec/css"
	"slidec/dom"
	"slidec/style"
)

// sectionChrome draws the shared section furniture: the hairline separator
// from the header's top border, the section title, and the outlined box.
// st is the block's inline style; geometry comes from it alone.
func (r *Renderer) sectionChrome(div *dom.Element, st css.Props) {
	top := style.Px(st.Get("top"))
	left := style.Px(st.Get("left"))
	w := blockWidth(st, 420)

	hdr := div.Find(".section-header")
	hv := r.res.Resolve(hdr, ".section-header")
	r.rect(left, top, w, 1, hv.BorderColor("border-top", r.res.Theme.Border))

	if title := div.Find(".section-title"); title != nil {
		tv := r.res.Resolve(title, ".section-title")
		r.textBox(left, top+2, w, 16, trimmedText(title), textSpec{
			Size:  PxToPt(tv.Px("font-size", 13)),
			Bold:  tv.Bold("700"),
			Color: tv.Color("color", r.res.Theme.Accent),
		})
	}

	if box := div.Find(".section-box"); box != nil {
		bv := r.res.Resolve(box, ".section-box")
		r.outlinedRect(left, top+20, w, bv.Px("height", 80),
			bv.Background(r.res.Theme.White),
			bv.BorderColor("border", r.res.Theme.Border), 0.75)
	}
}

// sectionTable draws a section whose box holds a table: chrome is already
// drawn, the table starts right below the header line.
func (r *Renderer) sectionTable(div *dom.Element, st css.Props) {
	box := div.Find(".section-box")
	tbl := box.Find("table")

	dashed := false
	if cls := tbl.FirstClass(); cls != "" {
		dashed = strings.Contains(r.res.Rules("."+cls, "."+cls+" td").Raw("border"), "dashed")
	}
	r.renderTable(tbl,
		style.Px(st.Get("left")),
		style.Px(st.Get("top"))+20,
		blockWidth(st, 420),
		dashed)
}

// sectionFull draws a regular section: chrome plus whatever the box holds —
// an inline table, a row of trend items, or flowed block content.
func (r *Renderer) sectionFull(div *dom.Element, st css.Props) {
	r.sectionChrome(div, st)
	top := style.Px(st.Get("top"))
	left := style.Px(st.Get("left"))
	w := blockWidth(st, 420)
	box := div.Find(".section-box")
	boxTop := top + 20

	if box != nil {
		if tbl := box.Find("table"); tbl != nil {
			border := r.p.ParseInline(tbl.Attr("style")).Get("border")
			if border == "" {
				if cls := tbl.FirstClass(); cls != "" {
					border = r.res.Rules("." + cls + " td").Raw("border")
				}
			}
			r.renderTable(tbl, left+2, boxTop+2, w-4, strings.Contains(border, "dashed"))
			return
		}
	}

	var trend *dom.Element
	if box != nil {
		trend = box.Find(".trend-box")
	}
	if trend == nil {
		trend = div.Find(".trend-box")
	}
	if trend != nil {
		r.trendItems(trend, left, boxTop)
		return
	}

	if box == nil {
		return
	}
	r.flowContent(box, left, Cursor{Y: boxTop + 6}, w, 0, 8)
}

// trendItems lays the .trend-item children out horizontally with the gap
// declared on the trend box.
func (r *Renderer) trendItems(trend *dom.Element, left, boxTop float64) {
	itemCSS := r.res.Rules(".trend-item")
	fs := PxToPt(itemCSS.Px("font-size", 14))
	bold := itemCSS.Bold("600")
	color := itemCSS.Color("color", r.res.Theme.Text)
	gap := r.res.Rules(".trend-box").Px("gap", 30)

	x := left + 8
	for _, item := range trend.FindAll(".trend-item") {
		sty := r.p.ParseInline(item.Attr("style"))
		itemColor := color
		if c, ok := style.ParseColor(sty.Get("color")); ok {
			itemColor = c
		}
		itemFs := fs
		if v := sty.Get("font-size"); v != "" {
			itemFs = PxToPt(style.Px(v))
		}
		r.textBox(x, boxTop+10, 80, 20, trimmedText(item), textSpec{
			Size:  itemFs,
			Bold:  bold,
			Color: itemColor,
		})
		x += 80 + gap
	}
}

// blockWidth reads the block's inline width with a default.
func blockWidth(st css.Props, def float64) float64 {
	if w := style.Px(st.Get("width")); w > 0 {
		return w
	}
	return def
}
