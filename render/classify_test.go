package render

import (
	"testing"
)

func classifyFirst(t *testing.T, markup string) BlockKind {
	t.Helper()
	r, _ := testRenderer(t, markup, "")
	div := r.el.Find("div[style]")
	if div == nil {
		t.Fatal("no styled div in test markup")
	}
	return Classify(div, r.p)
}

func TestClassify_NotPositioned(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="width:400px;"><table><tr><td>x</td></tr></table></div>
	</div></body></html>`)
	if got != BlockNone {
		t.Errorf("kind = %v, want none for a non-absolute block", got)
	}
}

func TestClassify_FooterSkipped(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; bottom:0;"><div class="footer-bar"></div></div>
	</div></body></html>`)
	if got != BlockNone {
		t.Errorf("kind = %v, footer containers belong to the chrome pass", got)
	}
}

func TestClassify_Legend(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; bottom:40px; left:30px;">
			<span style="background:#006272; border-radius:50%;"></span> done
			<span style="background:#cc0000; border-radius:50%;"></span> late
			<span style="background:#cccccc; border-radius:50%;"></span> open
		</div>
	</div></body></html>`)
	if got != BlockLegend {
		t.Errorf("kind = %v, want legend", got)
	}
}

func TestClassify_LegendGlyphSpan(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; bottom:30px;">
			<span style="color:#cc0000;">●</span> behind plan
		</div>
	</div></body></html>`)
	if got != BlockLegend {
		t.Errorf("kind = %v, want legend for a colored glyph span", got)
	}
}

func TestClassify_NotLegendWithoutBottom(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; top:100px;">
			<span style="background:#006272; border-radius:50%;"></span> done
		</div>
	</div></body></html>`)
	if got == BlockLegend {
		t.Error("a block without a bottom anchor is not a legend")
	}
}

func TestClassify_Link(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; bottom:60px;">
			<a class="link-text" href="#">details</a>
		</div>
	</div></body></html>`)
	if got != BlockLink {
		t.Errorf("kind = %v, want link", got)
	}
}

func TestClassify_Progress(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; left:60px; top:120px; width:400px;">
			<div class="section-header"><div class="section-title">Delivery</div></div>
			<div class="section-box">
				<div>
					<div style="border-radius:4px; height:10px; background:#eeeeee;">
						<div style="width:70%; background:#006272;"></div>
					</div>
				</div>
			</div>
		</div>
	</div></body></html>`)
	if got != BlockProgress {
		t.Errorf("kind = %v, want progress", got)
	}
}

func TestClassify_SectionTable(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; left:60px; top:120px;">
			<div class="section-header"><div class="section-title">Budget</div></div>
			<div class="section-box"><table><tr><td>x</td></tr></table></div>
		</div>
	</div></body></html>`)
	if got != BlockSectionTable {
		t.Errorf("kind = %v, want section-table", got)
	}
}

func TestClassify_Section(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; left:60px; top:120px;">
			<div class="section-header"><div class="section-title">Notes</div></div>
			<div class="section-box"><div class="bullet-item">one</div></div>
		</div>
	</div></body></html>`)
	if got != BlockSection {
		t.Errorf("kind = %v, want section", got)
	}
}

func TestClassify_StandaloneTable(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; left:30px; top:90px;">
			<table><tr><td>x</td></tr></table>
		</div>
	</div></body></html>`)
	if got != BlockTable {
		t.Errorf("kind = %v, want table", got)
	}
}

func TestClassify_UnmatchedBlock(t *testing.T) {
	got := classifyFirst(t, `<html><body><div class="slide">
		<div style="position:absolute; left:30px; top:90px;">free text</div>
	</div></body></html>`)
	if got != BlockNone {
		t.Errorf("kind = %v, unmatched blocks are skipped", got)
	}
}

func TestBlockKind_String(t *testing.T) {
	kinds := map[BlockKind]string{
		BlockNone:         "none",
		BlockLegend:       "legend",
		BlockLink:         "link",
		BlockProgress:     "progress",
		BlockSectionTable: "section-table",
		BlockSection:      "section",
		BlockTable:        "table",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", int(k), got, want)
		}
	}
}

func TestCircleColor(t *testing.T) {
	r, _ := testRenderer(t, `<html><body><div class="slide">
		<div style="position:absolute;"><table><tr>
			<td class="bg"><span style="background:#006272; border-radius:50%; display:inline-block;"></span></td>
			<td class="glyph"><span style="color:#cc0000;">●</span></td>
			<td class="plain">text</td>
		</tr></table></div>
	</div></body></html>`, "")

	cells := r.el.FindAll("td")
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if c, ok := circleColor(cells[0], r.p); !ok || c.Hex() != "006272" {
		t.Errorf("background swatch = %v %v", c, ok)
	}
	if c, ok := circleColor(cells[1], r.p); !ok || c.Hex() != "CC0000" {
		t.Errorf("glyph swatch = %v %v", c, ok)
	}
	if _, ok := circleColor(cells[2], r.p); ok {
		t.Error("plain cell should have no indicator color")
	}
}
