package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"

	"slidec/config"
	"slidec/css"
	"slidec/dom"
	"slidec/pptx"
	"slidec/state"
	"slidec/style"
)

// Convert reads slide markup from r and writes the finished presentation to
// outputPath. src names the input for diagnostics. The conversion degrades
// rather than fails: malformed styles fall back to the theme and unmatched
// blocks are skipped. The one fatal input condition is a document with no
// slide elements at all — then nothing is written.
func Convert(ctx context.Context, r io.Reader, src, outputPath string, cfg *config.DocumentConfig, extraCSS []byte, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	doc, err := dom.ParseDocument(r)
	if err != nil {
		return fmt.Errorf("unable to parse input (%s): %w", src, err)
	}

	parser := css.NewParser(log)
	var raw bytes.Buffer
	raw.Write(extraCSS)
	for _, styleEl := range doc.FindAll("style") {
		raw.WriteString(styleEl.TextContent())
		raw.WriteString("\n")
	}
	sheet := parser.Parse(raw.Bytes(), src)
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet parse issue", zap.String("detail", w))
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("stylesheet.css", []byte(sheet.String()))
	}

	res := style.NewResolver(sheet, cfg.ResolveTheme(), log)
	font := res.Font()
	log.Debug("Resolved document font", zap.String("font", font))

	slides := doc.FindAll("div.slide")
	if len(slides) == 0 {
		return fmt.Errorf("no slides found in %s", src)
	}

	prs := pptx.New(
		int64(math.Round(SlideWidthIn*pptx.EMUPerInch)),
		int64(math.Round(SlideHeightIn*pptx.EMUPerInch)),
		log)
	for i, el := range slides {
		NewRenderer(prs.AddSlide(), el, res, font, log).Render()
		log.Info("Rendered slide", zap.Int("slide", i+1), zap.Int("total", len(slides)))
	}

	if err := prs.Save(outputPath, env.Overwrite, cfg.FixZip); err != nil {
		return fmt.Errorf("unable to write presentation: %w", err)
	}
	return nil
}
