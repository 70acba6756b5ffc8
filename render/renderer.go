package render

import (
	"strings"

	"go.uber.org/zap"

	"slidec/css"
	"slidec/dom"
	"slidec/pptx"
	"slidec/style"
)

// Renderer draws one source slide onto one output page. Rendering is
// permissive: a block that fails a structural probe is skipped, a value that
// fails to parse falls back to the theme, and nothing short of an unwritable
// output aborts the conversion.
type Renderer struct {
	slide *pptx.Slide
	el    *dom.Element
	res   *style.Resolver
	font  string

	p   *css.Parser
	log *zap.Logger
}

// NewRenderer binds a source slide element to an output page.
func NewRenderer(slide *pptx.Slide, el *dom.Element, res *style.Resolver, font string, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		slide: slide,
		el:    el,
		res:   res,
		font:  font,
		p:     css.NewParser(log),
		log:   log.Named("render"),
	}
}

// Render draws the whole slide: fixed chrome first, then positioned content
// blocks, then the bottom-anchored legend and link passes.
func (r *Renderer) Render() {
	r.chrome()
	r.positionedBlocks()
	r.legend()
	r.links()
}

// positionedBlocks classifies every absolutely positioned div once and
// dispatches on the result. Legends and links have their own passes; footer
// containers are drawn by the chrome pass.
func (r *Renderer) positionedBlocks() {
	for _, div := range r.el.FindAll("div[style]") {
		kind := Classify(div, r.p)
		st := r.p.ParseInline(div.Attr("style"))
		switch kind {
		case BlockProgress:
			r.sectionChrome(div, st)
			r.progress(div, st)
		case BlockSectionTable:
			r.sectionChrome(div, st)
			r.sectionTable(div, st)
		case BlockSection:
			r.sectionFull(div, st)
		case BlockTable:
			r.standaloneTable(div, st)
		}
		if kind != BlockNone {
			r.log.Debug("Rendered block", zap.Stringer("kind", kind))
		}
	}
}

// textSpec carries the visual attributes of a single-run text box.
type textSpec struct {
	Size      float64 // points
	Bold      bool
	Underline bool
	Color     style.Color
	Align     pptx.Alignment
	Middle    bool // vertically centered
}

// rect draws a filled rectangle without an outline.
func (r *Renderer) rect(left, top, w, h float64, fill style.Color) *pptx.Shape {
	return r.slide.AddRectangle(geom(left, top, w, h)).SetFill(paint(fill))
}

// outlinedRect draws a filled rectangle with a solid outline.
func (r *Renderer) outlinedRect(left, top, w, h float64, fill, line style.Color, lineWidthPt float64) *pptx.Shape {
	sh := r.rect(left, top, w, h, fill)
	sh.SetLine(paint(line), emuFromPt(lineWidthPt))
	return sh
}

// roundedRect draws a filled rounded rectangle without an outline.
func (r *Renderer) roundedRect(left, top, w, h float64, fill style.Color) *pptx.Shape {
	return r.slide.AddRoundedRectangle(geom(left, top, w, h)).SetFill(paint(fill))
}

// textBox places a text box with zero insets; when text is empty the box is
// returned with an empty frame for the caller to fill with rich runs.
func (r *Renderer) textBox(left, top, w, h float64, text string, spec textSpec) *pptx.Shape {
	sh := r.slide.AddTextBox(geom(left, top, w, h))
	if spec.Align != "" {
		sh.Frame.Align = spec.Align
	}
	sh.Frame.AnchorCenter = spec.Middle
	if text != "" {
		sh.Frame.AddRun(pptx.Run{
			Text:      text,
			Font:      r.font,
			SizePt:    spec.Size,
			Bold:      spec.Bold,
			Underline: spec.Underline,
			Color:     paint(spec.Color),
		})
	}
	return sh
}

// trimmedText is the element's text content with surrounding whitespace cut.
func trimmedText(el *dom.Element) string {
	return strings.TrimSpace(el.TextContent())
}
