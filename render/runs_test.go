package render

import (
	"testing"

	"slidec/pptx"
)

func richFrame(t *testing.T, markup string, skipBlocks bool) *pptx.TextFrame {
	t.Helper()
	r, _ := testRenderer(t, markup, "")
	el := r.el.Find(".line")
	if el == nil {
		t.Fatal("no .line element in test markup")
	}
	frame := &pptx.TextFrame{}
	r.renderRich(frame, el, 9, skipBlocks)
	return frame
}

func TestRenderRich_MixedRuns(t *testing.T) {
	frame := richFrame(t, `<html><body><div class="slide">
		<div class="line">Budget <strong>on plan</strong> this quarter</div>
	</div></body></html>`, false)

	if len(frame.Runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(frame.Runs))
	}
	if frame.Runs[0].Text != "Budget " || frame.Runs[0].Bold {
		t.Errorf("run 0 = %+v", frame.Runs[0])
	}
	if frame.Runs[1].Text != "on plan" || !frame.Runs[1].Bold {
		t.Errorf("run 1 = %+v", frame.Runs[1])
	}
	if frame.Runs[2].Text != " this quarter" || frame.Runs[2].Bold {
		t.Errorf("run 2 = %+v", frame.Runs[2])
	}
	for _, run := range frame.Runs {
		if run.SizePt != 9 {
			t.Errorf("run size = %v, want 9", run.SizePt)
		}
		if run.Font != "Arial" {
			t.Errorf("run font = %q, want Arial", run.Font)
		}
	}
}

func TestRenderRich_SwatchSpan(t *testing.T) {
	frame := richFrame(t, `<html><body><div class="slide">
		<div class="line"><span style="background:#cc0000; border-radius:50%;"></span> blocked</div>
	</div></body></html>`, false)

	if len(frame.Runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(frame.Runs))
	}
	if frame.Runs[0].Text != "●" {
		t.Errorf("swatch run text = %q, want the dot glyph", frame.Runs[0].Text)
	}
	if frame.Runs[0].Color.Hex() != "CC0000" {
		t.Errorf("swatch run color = %s, want CC0000", frame.Runs[0].Color.Hex())
	}
	if frame.Runs[1].Text != " blocked" {
		t.Errorf("tail run = %q", frame.Runs[1].Text)
	}
}

func TestRenderRich_ColoredSpan(t *testing.T) {
	frame := richFrame(t, `<html><body><div class="slide">
		<div class="line">state: <span style="color:#006272;">good</span></div>
	</div></body></html>`, false)

	if len(frame.Runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(frame.Runs))
	}
	if frame.Runs[1].Text != "good" || frame.Runs[1].Color.Hex() != "006272" {
		t.Errorf("colored run = %+v", frame.Runs[1])
	}
}

func TestRenderRich_AnchorFlattens(t *testing.T) {
	frame := richFrame(t, `<html><body><div class="slide">
		<div class="line">see <a href="#x">the appendix</a> for details</div>
	</div></body></html>`, false)

	if got := frameText(frame); got != "see the appendix for details" {
		t.Errorf("text = %q", got)
	}
	for _, run := range frame.Runs {
		if run.Underline {
			t.Error("flattened anchor must not be underlined")
		}
	}
}

func TestRenderRich_SkipBlocks(t *testing.T) {
	frame := richFrame(t, `<html><body><div class="slide">
		<div class="line">Milestones<div>nested block</div> and more</div>
	</div></body></html>`, true)

	text := frameText(frame)
	if text != "Milestones and more" {
		t.Errorf("text = %q, nested block content must be dropped", text)
	}
}

func TestRenderRich_EmptyFallsBackToText(t *testing.T) {
	// no splittable children: the trimmed text becomes a single run
	frame := richFrame(t, `<html><body><div class="slide">
		<div class="line">   plain   </div>
	</div></body></html>`, false)

	if len(frame.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(frame.Runs))
	}
	if frame.Runs[0].Text != "   plain   " && frame.Runs[0].Text != "plain" {
		t.Errorf("run text = %q", frame.Runs[0].Text)
	}
}
