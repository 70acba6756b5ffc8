// Package render turns parsed slide markup into presentation pages: fixed
// chrome, absolutely positioned content blocks, tables, progress bars,
// legends and links, with all colors, sizes and positions taken from the
// source styles.
package render

import (
	"math"

	"slidec/pptx"
	"slidec/style"
)

// Source canvas and output page dimensions. The source renders slides on a
// 960x540 pixel canvas which maps onto a 10 x 5.625 inch page.
const (
	SlideWidthPx  = 960
	SlideHeightPx = 540

	SlideWidthIn  = 10.0
	SlideHeightIn = 5.625
)

// scale is output inches per source pixel.
const scale = SlideWidthIn / SlideWidthPx

// EMU converts source pixels to English Metric Units, rounding half away
// from zero. The mapping is linear: EMU(a+b) == EMU(a)+EMU(b) up to the
// single rounding step.
func EMU(px float64) int64 {
	return int64(math.Round(px * scale * pptx.EMUPerInch))
}

// PxToPt converts a source pixel font size to points (96dpi to 72dpi).
func PxToPt(px float64) float64 {
	return px * 0.75
}

// emuFromPt converts points to EMU, for line widths given in points.
func emuFromPt(pt float64) int64 {
	return int64(math.Round(pt * 12700))
}

// geom builds an output geometry from a pixel box.
func geom(left, top, w, h float64) pptx.Geometry {
	return pptx.Geometry{Left: EMU(left), Top: EMU(top), Width: EMU(w), Height: EMU(h)}
}

// paint converts the style color model to the output one.
func paint(c style.Color) pptx.Color {
	return pptx.Color{R: c.R, G: c.G, B: c.B}
}
