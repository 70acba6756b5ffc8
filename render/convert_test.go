package render_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"slidec/config"
	"slidec/render"
	"slidec/state"
)

const deckMarkup = `<html><head><style>
.main-title { color: #006272; font-size: 36px; }
</style></head><body>
<div class="slide">
	<div class="main-title">Q3 Review</div>
	<div style="position:absolute; left:100px; top:200px; width:400px;">
		<table>
			<tr><th>Metric</th><th>Value</th></tr>
			<tr><td>Revenue</td><td>120</td></tr>
		</table>
	</div>
</div>
</body></html>`

func convertDeck(t *testing.T, markup, out string) error {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Overwrite = true
	return render.Convert(ctx, strings.NewReader(markup), "deck.html", out,
		&config.DocumentConfig{}, nil, zap.NewNop())
}

func TestConvert_EndToEnd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deck.pptx")
	if err := convertDeck(t, deckMarkup, out); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}

	parts := make(map[string]bool)
	for _, f := range zr.File {
		parts[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
		"ppt/slides/slide1.xml",
	} {
		if !parts[want] {
			t.Errorf("archive missing part %s", want)
		}
	}
	// exactly one page
	if parts["ppt/slides/slide2.xml"] {
		t.Error("expected a single slide part")
	}

	rc, err := zr.Open("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("opening slide part: %v", err)
	}
	defer rc.Close()
	var sb strings.Builder
	if _, err := io.Copy(&sb, rc); err != nil {
		t.Fatalf("reading slide part: %v", err)
	}
	slideXML := sb.String()
	for _, want := range []string{"Q3 Review", "Metric", "Value", "Revenue", "120"} {
		if !strings.Contains(slideXML, want) {
			t.Errorf("slide part missing text %q", want)
		}
	}
}

func TestConvert_Deterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.pptx")
	second := filepath.Join(dir, "b.pptx")

	if err := convertDeck(t, deckMarkup, first); err != nil {
		t.Fatalf("first Convert() error = %v", err)
	}
	if err := convertDeck(t, deckMarkup, second); err != nil {
		t.Fatalf("second Convert() error = %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two conversions of identical input differ")
	}
}

func TestConvert_NoSlides(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.pptx")
	err := convertDeck(t, `<html><body><p>not a deck</p></body></html>`, out)
	if err == nil {
		t.Fatal("expected an error for a document without slides")
	}
	if !strings.Contains(err.Error(), "no slides") {
		t.Errorf("error = %v, want a no-slides diagnostic", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("nothing should be written when the input has no slides")
	}
}

func TestConvert_NoOverwrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(out, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx := state.ContextWithEnv(context.Background())
	err := render.Convert(ctx, strings.NewReader(deckMarkup), "deck.html", out,
		&config.DocumentConfig{}, nil, zap.NewNop())
	if err == nil {
		t.Fatal("expected an error when the destination exists and overwrite is off")
	}
}

func TestConvert_FixZip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deck.pptx")
	ctx := state.ContextWithEnv(context.Background())
	state.EnvFromContext(ctx).Overwrite = true

	err := render.Convert(ctx, strings.NewReader(deckMarkup), "deck.html", out,
		&config.DocumentConfig{FixZip: true}, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("Convert() with fix_zip error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		t.Fatalf("rewritten archive unreadable: %v", err)
	}
}
