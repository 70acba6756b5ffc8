package pptx

import (
	"archive/zip"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"
)

//go:embed parts/theme1.xml parts/slideMaster1.xml parts/slideMaster1.xml.rels parts/slideLayout1.xml parts/slideLayout1.xml.rels
var staticParts embed.FS

// static package parts that do not depend on document content.
var staticPartNames = map[string]string{
	"ppt/theme/theme1.xml":                         "parts/theme1.xml",
	"ppt/slideMasters/slideMaster1.xml":            "parts/slideMaster1.xml",
	"ppt/slideMasters/_rels/slideMaster1.xml.rels": "parts/slideMaster1.xml.rels",
	"ppt/slideLayouts/slideLayout1.xml":            "parts/slideLayout1.xml",
	"ppt/slideLayouts/_rels/slideLayout1.xml.rels": "parts/slideLayout1.xml.rels",
}

// Write serializes the whole package as a zip archive to w. Entry order and
// headers are fixed, so equal presentations produce identical bytes.
func (p *Presentation) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	if err := p.writeParts(zw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close output archive: %w", err)
	}
	return nil
}

func (p *Presentation) writeParts(zw *zip.Writer) error {
	if err := writeXMLToZip(zw, "[Content_Types].xml", p.contentTypesXML()); err != nil {
		return fmt.Errorf("unable to write content types: %w", err)
	}
	if err := writeXMLToZip(zw, "_rels/.rels", p.rootRelsXML()); err != nil {
		return fmt.Errorf("unable to write package relationships: %w", err)
	}
	if err := writeXMLToZip(zw, "ppt/presentation.xml", p.presentationXML()); err != nil {
		return fmt.Errorf("unable to write presentation part: %w", err)
	}
	if err := writeXMLToZip(zw, "ppt/_rels/presentation.xml.rels", p.presentationRelsXML()); err != nil {
		return fmt.Errorf("unable to write presentation relationships: %w", err)
	}

	// fixed iteration order keeps the archive deterministic
	for _, name := range []string{
		"ppt/theme/theme1.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
	} {
		data, err := staticParts.ReadFile(staticPartNames[name])
		if err != nil {
			return fmt.Errorf("unable to read embedded part %s: %w", name, err)
		}
		if err := writeDataToZip(zw, name, data); err != nil {
			return fmt.Errorf("unable to write %s: %w", name, err)
		}
	}

	for i, sl := range p.Slides {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		if err := writeXMLToZip(zw, name, slideXML(sl)); err != nil {
			return fmt.Errorf("unable to write %s: %w", name, err)
		}
		relName := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1)
		if err := writeXMLToZip(zw, relName, slideRelsXML()); err != nil {
			return fmt.Errorf("unable to write %s: %w", relName, err)
		}
	}
	return nil
}

// Save writes the package to outputPath. When overwrite is false an existing
// file is an error. The archive is assembled in a temporary file first; with
// fixZip set it is rewritten entry by entry without data descriptors for
// readers that choke on streamed zip output.
func (p *Presentation) Save(outputPath string, overwrite, fixZip bool) error {
	if _, err := os.Stat(outputPath); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", outputPath)
		}
		p.log.Warn("Overwriting existing file", zap.String("file", outputPath))
		if err = os.Remove(outputPath); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}
	}

	p.log.Info("Writing presentation",
		zap.String("output", outputPath),
		zap.Int("slides", len(p.Slides)))

	tmpName := outputPath + ".tmp"
	f, err := os.Create(tmpName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	if err := p.Write(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize output file: %w", err)
	}
	defer os.Remove(tmpName)

	if fixZip {
		return copyZipWithoutDataDescriptors(tmpName, outputPath)
	}
	return copyFile(tmpName, outputPath)
}

func copyZipWithoutDataDescriptors(from, to string) error {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {

	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err = destinationFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}
	return nil
}

func writeXMLToZip(zw *zip.Writer, name string, doc *etree.Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	return writeDataToZip(zw, name, buf.Bytes())
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
