package render

import (
	"slidec/dom"
	"slidec/pptx"
	"slidec/style"
)

// chrome draws the fixed slide furniture: top bar, date box, main title and
// footer. Each piece is optional and drawn only when its element is present.
func (r *Renderer) chrome() {
	r.topBar()
	r.dateBox()
	r.mainTitle()
	r.footer()
}

func (r *Renderer) topBar() {
	el := r.el.Find(".top-bar")
	if el == nil {
		return
	}
	v := r.res.Resolve(el, ".top-bar")
	h := v.Px("height", 8)
	bg := v.Background(r.res.Theme.Border)
	r.rect(0, 0, SlideWidthPx, h, bg)
}

func (r *Renderer) dateBox() {
	el := r.el.Find(".date-box")
	if el == nil {
		return
	}
	v := r.res.Resolve(el, ".date-box")
	w := v.Px("width", 100)
	h := v.Px("height", 50)
	top := v.Px("top", 8)
	right := v.Px("right", 0)
	left := SlideWidthPx - w - right

	r.rect(left, top, w, h, v.Background(r.res.Theme.Border))
	r.textBox(left, top, w, h, trimmedText(el), textSpec{
		Size:   PxToPt(v.Px("font-size", 14)),
		Bold:   v.Bold("600"),
		Color:  v.Color("color", r.res.Theme.White),
		Align:  pptx.AlignCenter,
		Middle: true,
	})
}

func (r *Renderer) mainTitle() {
	el := r.el.Find(".main-title")
	if el == nil {
		return
	}
	v := r.res.Resolve(el, ".main-title")
	fs := v.Px("font-size", 42)
	left := v.Px("left", 30)
	top := v.Px("top", 20)

	// max-width honors only the inline declaration
	maxWidth := 800.0
	if inline := r.res.Inline(el); inline.Get("max-width") != "" {
		maxWidth = style.Px(inline.Get("max-width"))
	}

	r.textBox(left, top, maxWidth, fs*1.4, trimmedText(el), textSpec{
		Size:  PxToPt(fs),
		Bold:  v.Bold("700"),
		Color: v.Color("color", r.res.Theme.Accent),
	})
}

// footer handles both layouts: a .footer-bar container with nested
// .page-number/.logo, or a bare .bottom-bar with those as slide children.
func (r *Renderer) footer() {
	var bar *dom.Element
	var barClass string
	for _, cls := range []string{".footer-bar", ".bottom-bar"} {
		if el := r.el.Find(cls); el != nil {
			bar, barClass = el, cls
			break
		}
	}
	if bar == nil {
		return
	}
	v := r.res.Resolve(bar, barClass)
	h := v.Px("height", 32)
	top := SlideHeightPx - h
	r.rect(0, top, SlideWidthPx, h, v.Background(r.res.Theme.Border))

	pn := bar.Find(".page-number")
	if pn == nil {
		pn = r.el.Find(".page-number")
	}
	if pn != nil {
		pv := r.res.Resolve(pn, ".page-number")
		r.textBox(pv.Px("left", 15), top, 100, h, trimmedText(pn), textSpec{
			Size:   PxToPt(pv.Px("font-size", 14)),
			Color:  pv.Color("color", r.res.Theme.White),
			Middle: true,
		})
	}

	logo := bar.Find(".logo")
	if logo == nil {
		logo = r.el.Find(".logo")
	}
	if logo != nil {
		lv := r.res.Resolve(logo, ".logo")
		r.textBox(SlideWidthPx-140, top, 120, h, trimmedText(logo), textSpec{
			Size:   PxToPt(lv.Px("font-size", 18)),
			Bold:   lv.Bold("700"),
			Color:  lv.Color("color", r.res.Theme.White),
			Align:  pptx.AlignRight,
			Middle: true,
		})
	}
}
