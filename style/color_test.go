package style

import (
	"testing"
)

func TestParseColor_Forms(t *testing.T) {
	tests := []struct {
		input string
		want  Color
		ok    bool
	}{
		{"#006272", Color{0x00, 0x62, 0x72}, true},
		{"#FFFFFF", Color{0xFF, 0xFF, 0xFF}, true},
		{"#ccc", Color{0xCC, 0xCC, 0xCC}, true},
		{"#F00", Color{0xFF, 0x00, 0x00}, true},
		{"rgb(0, 98, 114)", Color{0x00, 0x62, 0x72}, true},
		{"rgba(51,51,51,0.5)", Color{0x33, 0x33, 0x33}, true},
		{"white", Color{0xFF, 0xFF, 0xFF}, true},
		{"Red", Color{0xFF, 0x00, 0x00}, true},
		{"  #333333  ", Color{0x33, 0x33, 0x33}, true},
		{"", Color{}, false},
		{"transparent", Color{}, false},
		{"none", Color{}, false},
		{"#12", Color{}, false},
		{"#12345", Color{}, false},
		{"#gggggg", Color{}, false},
		{"rgb(1,2)", Color{}, false},
		{"rgb(300,0,0)", Color{}, false},
		{"rgb(-1,0,0)", Color{}, false},
		{"url(#x)", Color{}, false},
		{"inherit", Color{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseColor(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseColor(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

// Parsing a color's own hex form must reproduce the same triple.
func TestParseColor_Idempotent(t *testing.T) {
	inputs := []string{"#006272", "#333333", "#ccc", "#CC0000", "rgb(12, 200, 7)", "white", "black"}
	for _, s := range inputs {
		first, ok := ParseColor(s)
		if !ok {
			t.Fatalf("ParseColor(%q) unexpectedly failed", s)
		}
		second, ok := ParseColor("#" + first.Hex())
		if !ok {
			t.Fatalf("ParseColor(#%s) unexpectedly failed", first.Hex())
		}
		if first != second {
			t.Errorf("round trip for %q changed color: %+v != %+v", s, first, second)
		}
	}
}

func TestColor_Hex(t *testing.T) {
	if got := RGB(0, 0x62, 0x72).Hex(); got != "006272" {
		t.Errorf("Hex() = %q, want 006272", got)
	}
	if got := RGB(0xFF, 0xFF, 0xFF).Hex(); got != "FFFFFF" {
		t.Errorf("Hex() = %q, want FFFFFF", got)
	}
}

func TestIsLight(t *testing.T) {
	if !IsLight(RGB(0xFF, 0xFF, 0xFF)) {
		t.Error("white should be light")
	}
	if !IsLight(RGB(0xF5, 0xF5, 0xF5)) {
		t.Error("near-white should be light")
	}
	if IsLight(RGB(0x33, 0x33, 0x33)) {
		t.Error("dark gray should not be light")
	}
	if IsLight(RGB(0x00, 0x62, 0x72)) {
		t.Error("deep teal should not be light")
	}
}

func TestBorderColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
		ok    bool
	}{
		{"1px solid #ccc", Color{0xCC, 0xCC, 0xCC}, true},
		{"2px dashed rgb(0,98,114)", Color{0x00, 0x62, 0x72}, true},
		{"1px solid", Color{}, false},
		{"", Color{}, false},
		{"#006272 solid 1px", Color{0x00, 0x62, 0x72}, true},
	}
	for _, tt := range tests {
		got, ok := BorderColor(tt.input)
		if ok != tt.ok {
			t.Errorf("BorderColor(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("BorderColor(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestPx(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"13px", 13},
		{"13", 13},
		{"  42px ", 42},
		{"1.5", 1.5},
		{"0px", 0},
		{"", 0},
		{"auto", 0},
		{"calc(100% - 10px)", 0},
	}
	for _, tt := range tests {
		if got := Px(tt.input); got != tt.want {
			t.Errorf("Px(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPct(t *testing.T) {
	if got := Pct("75%"); got != 75 {
		t.Errorf("Pct(75%%) = %v, want 75", got)
	}
	if got := Pct("75px"); got != 0 {
		t.Errorf("Pct(75px) = %v, want 0", got)
	}
	if got := Pct(""); got != 0 {
		t.Errorf("Pct(\"\") = %v, want 0", got)
	}
}

func TestIsBoldWeight(t *testing.T) {
	for _, w := range []string{"bold", "700", "600", "bolder", "900"} {
		if !IsBoldWeight(w) {
			t.Errorf("IsBoldWeight(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"", "normal", "400"} {
		if IsBoldWeight(w) {
			t.Errorf("IsBoldWeight(%q) = true, want false", w)
		}
	}
}
