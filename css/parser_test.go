package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"slidec/css"
)

func TestParser_ElementSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`td { padding: 4px; }`))
	if len(sheet.Selectors) != 1 {
		t.Fatalf("expected 1 selector, got %d", len(sheet.Selectors))
	}
	if sheet.Selectors[0] != "td" {
		t.Errorf("expected selector 'td', got %q", sheet.Selectors[0])
	}
	if got := sheet.Rule("td").Get("padding"); got != "4px" {
		t.Errorf("padding = %q, want 4px", got)
	}
}

func TestParser_GroupedSelectors(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`h2, h3, h4 { font-size: 120%; }`))
	for _, sel := range []string{"h2", "h3", "h4"} {
		if sheet.Rule(sel) == nil {
			t.Errorf("expected rule for grouped selector %q", sel)
		}
	}
}

func TestParser_DescendantSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`.status-table th { background: #006272; color: white; }`))
	props := sheet.Rule(".status-table th")
	if props == nil {
		t.Fatal("expected rule for '.status-table th'")
	}
	if got := props.Get("background"); got != "#006272" {
		t.Errorf("background = %q, want #006272", got)
	}
	if got := props.Get("color"); got != "white" {
		t.Errorf("color = %q, want white", got)
	}
}

func TestParser_PseudoElementSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`.bullet-item::before { content: '\25aa'; color: #cc0000; }`))
	props := sheet.Rule(".bullet-item::before")
	if props == nil {
		t.Fatal("expected pseudo element rule to keep its raw selector")
	}
	if got := props.Get("color"); got != "#cc0000" {
		t.Errorf("color = %q, want #cc0000", got)
	}
}

func TestParser_LaterDeclarationWins(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`
		p { color: #333333; margin: 0; }
		p { color: #111111; }
	`))
	props := sheet.Rule("p")
	if got := props.Get("color"); got != "#111111" {
		t.Errorf("color = %q, want later declaration #111111", got)
	}
	if got := props.Get("margin"); got != "0" {
		t.Errorf("margin = %q, earlier declaration should survive", got)
	}
	// selector registered once
	if len(sheet.Selectors) != 1 {
		t.Errorf("expected 1 selector, got %d", len(sheet.Selectors))
	}
}

func TestParser_DimensionValues(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`.box { height: 80px; width: 75%; line-height: 1.4; }`))
	props := sheet.Rule(".box")

	h := props["height"]
	if h.Value != 80 || h.Unit != "px" {
		t.Errorf("height = %v%s, want 80px", h.Value, h.Unit)
	}
	w := props["width"]
	if w.Value != 75 || w.Unit != "%" {
		t.Errorf("width = %v%s, want 75%%", w.Value, w.Unit)
	}
	lh := props["line-height"]
	if lh.Value != 1.4 || lh.Unit != "" {
		t.Errorf("line-height = %v%s, want bare 1.4", lh.Value, lh.Unit)
	}
}

func TestParser_SkipsAtRules(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`
		@media print { p { display: none; } }
		.slide { width: 960px; }
	`))
	if sheet.Rule(".slide") == nil {
		t.Fatal("rule after skipped @media block was lost")
	}
	if len(sheet.Warnings) == 0 {
		t.Error("expected a warning for the skipped at-rule")
	}
	if sheet.Rule("p") != nil {
		t.Error("rules inside skipped @media block should not be kept")
	}
}

func TestParser_ParseInline(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	props := p.ParseInline("position:absolute; left:60px; top: 120px; background: #f8f8f8")
	if got := props.Get("position"); got != "absolute" {
		t.Errorf("position = %q, want absolute", got)
	}
	if got := props.Get("left"); got != "60px" {
		t.Errorf("left = %q, want 60px", got)
	}
	if got := props.Get("background"); got != "#f8f8f8" {
		t.Errorf("background = %q, want #f8f8f8", got)
	}
	if props := p.ParseInline(""); len(props) != 0 {
		t.Errorf("empty inline style should yield no props, got %d", len(props))
	}
}

func TestProps_Has(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	props := p.ParseInline("bottom:20px; border-radius:50%; height:0")
	for _, name := range []string{"bottom", "border-radius", "height"} {
		if !props.Has(name) {
			t.Errorf("Has(%q) = false, want true for a declared property", name)
		}
	}
	if props.Has("top") {
		t.Error("Has(top) = true for an undeclared property")
	}
	// presence is independent of the value being usable
	if got := props.Get("height"); got != "0" {
		t.Errorf("height = %q, want 0", got)
	}
}

func TestStylesheet_Merge(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`
		.box { color: #333333; height: 80px; }
		.box-wide { color: #006272; width: 900px; }
	`))

	merged := sheet.Merge(".box", ".box-wide")
	if got := merged.Get("color"); got != "#006272" {
		t.Errorf("color = %q, later selector should win", got)
	}
	if got := merged.Get("height"); got != "80px" {
		t.Errorf("height = %q, want 80px", got)
	}
	if got := merged.Get("width"); got != "900px" {
		t.Errorf("width = %q, want 900px", got)
	}
	// unknown selectors are skipped silently
	if got := sheet.Merge(".missing"); len(got) != 0 {
		t.Errorf("merge of unknown selector should be empty, got %d props", len(got))
	}
}

func TestStylesheet_WriteTo(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`.b { color: red; } .a { margin: 0; padding: 4px; }`))
	out := sheet.String()

	// source order of selectors, sorted property order
	bi := strings.Index(out, ".b {")
	ai := strings.Index(out, ".a {")
	if bi < 0 || ai < 0 || bi > ai {
		t.Fatalf("selectors out of source order:\n%s", out)
	}
	if !strings.Contains(out, "color: red;") {
		t.Errorf("missing declaration in output:\n%s", out)
	}
	if strings.Index(out, "margin: 0;") > strings.Index(out, "padding: 4px;") {
		t.Errorf("properties not sorted:\n%s", out)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct{ in, want string }{
		{`"Segoe UI"`, "Segoe UI"},
		{`'Arial'`, "Arial"},
		{"Arial", "Arial"},
		{`"`, `"`},
		{"", ""},
	}
	for _, tt := range tests {
		if got := css.Unquote(tt.in); got != tt.want {
			t.Errorf("Unquote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
