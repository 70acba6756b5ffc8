package render

import (
	"testing"

	"slidec/pptx"
)

func TestEMU_KnownValues(t *testing.T) {
	if got := EMU(0); got != 0 {
		t.Errorf("EMU(0) = %d, want 0", got)
	}
	// full canvas width maps onto the full page width
	if got := EMU(SlideWidthPx); got != int64(SlideWidthIn*pptx.EMUPerInch) {
		t.Errorf("EMU(960) = %d, want %d", got, int64(SlideWidthIn*pptx.EMUPerInch))
	}
	if got := EMU(SlideHeightPx); got != int64(SlideHeightIn*pptx.EMUPerInch) {
		t.Errorf("EMU(540) = %d, want %d", got, int64(SlideHeightIn*pptx.EMUPerInch))
	}
	// 96 source pixels are one output inch
	if got := EMU(96); got != pptx.EMUPerInch {
		t.Errorf("EMU(96) = %d, want %d", got, pptx.EMUPerInch)
	}
}

func TestEMU_LinearMonotonic(t *testing.T) {
	inputs := []float64{0, 1, 7.5, 13, 22, 30, 96, 100.25, 480, 959, 960}

	prev := int64(-1)
	for _, px := range inputs {
		v := EMU(px)
		if v < prev {
			t.Errorf("EMU not monotonic at %v: %d < %d", px, v, prev)
		}
		prev = v
	}

	// linear up to the single rounding step
	for _, a := range inputs {
		for _, b := range inputs {
			sum := EMU(a + b)
			parts := EMU(a) + EMU(b)
			if d := sum - parts; d < -1 || d > 1 {
				t.Errorf("EMU(%v+%v) = %d, parts sum %d, diff %d", a, b, sum, parts, d)
			}
		}
	}
}

func TestPxToPt(t *testing.T) {
	if got := PxToPt(16); got != 12 {
		t.Errorf("PxToPt(16) = %v, want 12", got)
	}
	if got := PxToPt(0); got != 0 {
		t.Errorf("PxToPt(0) = %v, want 0", got)
	}
}

func TestEmuFromPt(t *testing.T) {
	if got := emuFromPt(1); got != 12700 {
		t.Errorf("emuFromPt(1) = %d, want 12700", got)
	}
	if got := emuFromPt(0.75); got != 9525 {
		t.Errorf("emuFromPt(0.75) = %d, want 9525", got)
	}
}

func TestGeom(t *testing.T) {
	g := geom(30, 20, 800, 60)
	if g.Left != EMU(30) || g.Top != EMU(20) || g.Width != EMU(800) || g.Height != EMU(60) {
		t.Errorf("geom mapped unexpectedly: %+v", g)
	}
}
