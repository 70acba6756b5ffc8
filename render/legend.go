package render

import (
	"slidec/style"
)

// legend draws bottom-anchored legend notes. The legend's own foreground
// replaces the default run color, so swatch runs keep their colors while
// the surrounding text takes the legend tone.
func (r *Renderer) legend() {
	for _, el := range r.el.FindAll("div[style]") {
		if !isLegend(el, r.p) {
			continue
		}
		v := r.res.Resolve(el)
		bottom := v.Px("bottom", 50)
		left := v.Px("left", 30)
		fs := PxToPt(v.Px("font-size", 11))
		color := v.Color("color", r.res.Theme.Muted)
		top := SlideHeightPx - bottom - 20

		tb := r.textBox(left, top, 800, 20, "", textSpec{})
		r.renderRich(tb.Frame, el, fs, false)

		def := paint(r.res.Theme.Text)
		for i := range tb.Frame.Runs {
			if tb.Frame.Runs[i].Color == def {
				tb.Frame.Runs[i].Color = paint(color)
			}
		}
	}
}

// links draws blocks of underlined reference links anchored near the slide
// bottom. Blocks that carry a section header belong to the section passes.
func (r *Renderer) links() {
	linkCSS := r.res.Rules(".link-text")
	defColor := linkCSS.Color("color", r.res.Theme.Accent)
	defSize := PxToPt(linkCSS.Px("font-size", 12))

	for _, el := range r.el.FindAll("div[style]") {
		st := r.p.ParseInline(el.Attr("style"))
		if st.Get("position") != "absolute" {
			continue
		}
		anchors := el.FindAll("a.link-text")
		if len(anchors) == 0 || el.Has(".section-header") {
			continue
		}
		bottom := style.Px(st.Get("bottom"))
		if bottom == 0 {
			bottom = 60
		}
		left := style.Px(st.Get("left"))
		if left == 0 {
			left = 30
		}
		top := SlideHeightPx - bottom - 15

		for _, a := range anchors {
			av := r.res.Resolve(a)
			size := defSize
			if av.Has("font-size") {
				size = PxToPt(style.Px(av.Raw("font-size")))
			}
			r.textBox(left, top, 300, 15, trimmedText(a), textSpec{
				Size:      size,
				Color:     av.Color("color", defColor),
				Underline: true,
			})
		}
	}
}
