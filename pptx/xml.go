package pptx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

const (
	nsDrawing   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresent   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRelations = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgRels   = "http://schemas.openxmlformats.org/package/2006/relationships"

	relTypeOfficeDocument = nsRelations + "/officeDocument"
	relTypeSlideMaster    = nsRelations + "/slideMaster"
	relTypeSlideLayout    = nsRelations + "/slideLayout"
	relTypeSlide          = nsRelations + "/slide"

	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
)

func emu(v int64) string {
	return strconv.FormatInt(v, 10)
}

// contentTypesXML builds [Content_Types].xml listing every part by type.
func (p *Presentation) contentTypesXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")

	rels := types.CreateElement("Default")
	rels.CreateAttr("Extension", "rels")
	rels.CreateAttr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")
	xml := types.CreateElement("Default")
	xml.CreateAttr("Extension", "xml")
	xml.CreateAttr("ContentType", "application/xml")

	override := func(part, ct string) {
		o := types.CreateElement("Override")
		o.CreateAttr("PartName", part)
		o.CreateAttr("ContentType", ct)
	}
	override("/ppt/presentation.xml", ctPresentation)
	override("/ppt/slideMasters/slideMaster1.xml", ctSlideMaster)
	override("/ppt/slideLayouts/slideLayout1.xml", ctSlideLayout)
	override("/ppt/theme/theme1.xml", ctTheme)
	for i := range p.Slides {
		override(fmt.Sprintf("/ppt/slides/slide%d.xml", i+1), ctSlide)
	}
	return doc
}

// rootRelsXML builds /_rels/.rels pointing at the presentation part.
func (p *Presentation) rootRelsXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsPkgRels)
	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", relTypeOfficeDocument)
	rel.CreateAttr("Target", "ppt/presentation.xml")
	return doc
}

// presentationXML builds /ppt/presentation.xml: page size plus the master and
// slide id lists. Relationship ids match presentationRelsXML.
func (p *Presentation) presentationXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	pres := doc.CreateElement("p:presentation")
	pres.CreateAttr("xmlns:a", nsDrawing)
	pres.CreateAttr("xmlns:r", nsRelations)
	pres.CreateAttr("xmlns:p", nsPresent)

	masters := pres.CreateElement("p:sldMasterIdLst")
	master := masters.CreateElement("p:sldMasterId")
	master.CreateAttr("id", "2147483648")
	master.CreateAttr("r:id", "rId1")

	if len(p.Slides) > 0 {
		slides := pres.CreateElement("p:sldIdLst")
		for i := range p.Slides {
			sld := slides.CreateElement("p:sldId")
			sld.CreateAttr("id", strconv.Itoa(256+i))
			sld.CreateAttr("r:id", fmt.Sprintf("rId%d", i+2))
		}
	}

	size := pres.CreateElement("p:sldSz")
	size.CreateAttr("cx", emu(p.SlideWidth))
	size.CreateAttr("cy", emu(p.SlideHeight))
	notes := pres.CreateElement("p:notesSz")
	notes.CreateAttr("cx", emu(p.SlideHeight))
	notes.CreateAttr("cy", emu(p.SlideWidth))
	return doc
}

// presentationRelsXML builds /ppt/_rels/presentation.xml.rels: rId1 is the
// master, slides follow in order.
func (p *Presentation) presentationRelsXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsPkgRels)

	add := func(id, typ, target string) {
		rel := rels.CreateElement("Relationship")
		rel.CreateAttr("Id", id)
		rel.CreateAttr("Type", typ)
		rel.CreateAttr("Target", target)
	}
	add("rId1", relTypeSlideMaster, "slideMasters/slideMaster1.xml")
	for i := range p.Slides {
		add(fmt.Sprintf("rId%d", i+2), relTypeSlide, fmt.Sprintf("slides/slide%d.xml", i+1))
	}
	return doc
}

// slideRelsXML builds the per-slide rels part pointing at the blank layout.
func slideRelsXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsPkgRels)
	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", relTypeSlideLayout)
	rel.CreateAttr("Target", "../slideLayouts/slideLayout1.xml")
	return doc
}

// slideXML serializes one page: the shape tree in append order, shape ids
// assigned sequentially from 2 (1 is the group container).
func slideXML(sl *Slide) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	sld := doc.CreateElement("p:sld")
	sld.CreateAttr("xmlns:a", nsDrawing)
	sld.CreateAttr("xmlns:r", nsRelations)
	sld.CreateAttr("xmlns:p", nsPresent)

	cSld := sld.CreateElement("p:cSld")
	tree := cSld.CreateElement("p:spTree")

	nv := tree.CreateElement("p:nvGrpSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "1")
	cNvPr.CreateAttr("name", "")
	nv.CreateElement("p:cNvGrpSpPr")
	nv.CreateElement("p:nvPr")

	grpSpPr := tree.CreateElement("p:grpSpPr")
	xfrm := grpSpPr.CreateElement("a:xfrm")
	for _, tag := range []string{"a:off", "a:chOff"} {
		el := xfrm.CreateElement(tag)
		el.CreateAttr("x", "0")
		el.CreateAttr("y", "0")
	}
	for _, tag := range []string{"a:ext", "a:chExt"} {
		el := xfrm.CreateElement(tag)
		el.CreateAttr("cx", "0")
		el.CreateAttr("cy", "0")
	}

	for i, sh := range sl.Shapes {
		id := i + 2
		if sh.Kind == KindTable {
			writeTableFrame(tree, sh, id)
		} else {
			writeShape(tree, sh, id)
		}
	}

	clrMapOvr := sld.CreateElement("p:clrMapOvr")
	clrMapOvr.CreateElement("a:masterClrMapping")
	return doc
}

func shapeName(sh *Shape, id int) string {
	switch sh.Kind {
	case KindRoundedRectangle:
		return fmt.Sprintf("RoundedRectangle %d", id)
	case KindOval:
		return fmt.Sprintf("Oval %d", id)
	case KindTextBox:
		return fmt.Sprintf("TextBox %d", id)
	case KindTable:
		return fmt.Sprintf("Table %d", id)
	default:
		return fmt.Sprintf("Rectangle %d", id)
	}
}

func presetGeometry(kind ShapeKind) string {
	switch kind {
	case KindRoundedRectangle:
		return "roundRect"
	case KindOval:
		return "ellipse"
	default:
		return "rect"
	}
}

func writeXfrm(parent *etree.Element, g Geometry) {
	xfrm := parent.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", emu(g.Left))
	off.CreateAttr("y", emu(g.Top))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", emu(g.Width))
	ext.CreateAttr("cy", emu(g.Height))
}

func writeSolidFill(parent *etree.Element, c Color) {
	fill := parent.CreateElement("a:solidFill")
	clr := fill.CreateElement("a:srgbClr")
	clr.CreateAttr("val", c.Hex())
}

// writeShape serializes an autoshape or text box as p:sp.
func writeShape(tree *etree.Element, sh *Shape, id int) {
	sp := tree.CreateElement("p:sp")

	nv := sp.CreateElement("p:nvSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", shapeName(sh, id))
	cNvSpPr := nv.CreateElement("p:cNvSpPr")
	if sh.Kind == KindTextBox {
		cNvSpPr.CreateAttr("txBox", "1")
	}
	nv.CreateElement("p:nvPr")

	spPr := sp.CreateElement("p:spPr")
	writeXfrm(spPr, sh.Geom)
	if sh.Kind != KindTextBox {
		prst := spPr.CreateElement("a:prstGeom")
		prst.CreateAttr("prst", presetGeometry(sh.Kind))
		prst.CreateElement("a:avLst")
	}
	if sh.Fill != nil {
		writeSolidFill(spPr, *sh.Fill)
	} else {
		spPr.CreateElement("a:noFill")
	}
	ln := spPr.CreateElement("a:ln")
	if sh.Line != nil {
		ln.CreateAttr("w", emu(sh.Line.Width))
		writeSolidFill(ln, sh.Line.Color)
	} else {
		ln.CreateElement("a:noFill")
	}

	frame := sh.Frame
	if frame == nil {
		frame = &TextFrame{}
	}
	writeTextBody(sp, frame, "p:txBody", sh.Kind == KindTextBox)
}

// writeTextBody serializes a text frame as the named body element. Text box
// insets are zeroed so geometry computed from the source box model maps 1:1.
func writeTextBody(parent *etree.Element, f *TextFrame, tag string, isTextBox bool) {
	body := parent.CreateElement(tag)

	bodyPr := body.CreateElement("a:bodyPr")
	if isTextBox {
		if f.WordWrap {
			bodyPr.CreateAttr("wrap", "square")
		} else {
			bodyPr.CreateAttr("wrap", "none")
		}
		for _, ins := range []string{"lIns", "tIns", "rIns", "bIns"} {
			bodyPr.CreateAttr(ins, "0")
		}
	}
	if f.AnchorCenter {
		bodyPr.CreateAttr("anchor", "ctr")
	}
	body.CreateElement("a:lstStyle")

	para := body.CreateElement("a:p")
	pPr := para.CreateElement("a:pPr")
	if f.Align != "" {
		pPr.CreateAttr("algn", string(f.Align))
	}
	for _, tag := range []string{"a:spcBef", "a:spcAft"} {
		spc := pPr.CreateElement(tag)
		pts := spc.CreateElement("a:spcPts")
		pts.CreateAttr("val", "0")
	}

	for _, r := range f.Runs {
		writeRun(para, r)
	}
}

func writeRun(para *etree.Element, r Run) {
	run := para.CreateElement("a:r")
	rPr := run.CreateElement("a:rPr")
	rPr.CreateAttr("lang", "en-US")
	if r.SizePt > 0 {
		rPr.CreateAttr("sz", strconv.Itoa(int(r.SizePt*100)))
	}
	if r.Bold {
		rPr.CreateAttr("b", "1")
	}
	if r.Underline {
		rPr.CreateAttr("u", "sng")
	}
	rPr.CreateAttr("dirty", "0")
	writeSolidFill(rPr, r.Color)
	if r.Font != "" {
		latin := rPr.CreateElement("a:latin")
		latin.CreateAttr("typeface", r.Font)
	}
	t := run.CreateElement("a:t")
	t.SetText(r.Text)
}

// writeTableFrame serializes a table as p:graphicFrame. No table style id is
// emitted so cell fills and borders come only from the explicit cell
// properties, never from a theme banding.
func writeTableFrame(tree *etree.Element, sh *Shape, id int) {
	gf := tree.CreateElement("p:graphicFrame")

	nv := gf.CreateElement("p:nvGraphicFramePr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", shapeName(sh, id))
	nv.CreateElement("p:cNvGraphicFramePr")
	nv.CreateElement("p:nvPr")

	xfrm := gf.CreateElement("p:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", emu(sh.Geom.Left))
	off.CreateAttr("y", emu(sh.Geom.Top))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", emu(sh.Geom.Width))
	ext.CreateAttr("cy", emu(sh.Geom.Height))

	graphic := gf.CreateElement("a:graphic")
	data := graphic.CreateElement("a:graphicData")
	data.CreateAttr("uri", "http://schemas.openxmlformats.org/drawingml/2006/table")

	t := sh.Grid
	tbl := data.CreateElement("a:tbl")
	tblPr := tbl.CreateElement("a:tblPr")
	tblPr.CreateAttr("firstRow", "0")
	tblPr.CreateAttr("bandRow", "0")

	grid := tbl.CreateElement("a:tblGrid")
	for _, w := range t.ColWidths {
		col := grid.CreateElement("a:gridCol")
		col.CreateAttr("w", emu(w))
	}

	for _, row := range t.Cells {
		tr := tbl.CreateElement("a:tr")
		tr.CreateAttr("h", emu(t.RowHeight))
		for i := range row {
			writeTableCell(tr, &row[i], t)
		}
	}
}

func writeTableCell(tr *etree.Element, c *Cell, t *Table) {
	tc := tr.CreateElement("a:tc")
	writeTextBody(tc, &c.Frame, "a:txBody", false)

	tcPr := tc.CreateElement("a:tcPr")
	tcPr.CreateAttr("marL", emu(c.MarginLeft))
	tcPr.CreateAttr("marR", emu(c.MarginRight))
	tcPr.CreateAttr("marT", emu(c.MarginTop))
	tcPr.CreateAttr("marB", emu(c.MarginBottom))
	if c.Frame.AnchorCenter {
		tcPr.CreateAttr("anchor", "ctr")
	}

	for _, side := range []string{"a:lnL", "a:lnR", "a:lnT", "a:lnB"} {
		ln := tcPr.CreateElement(side)
		ln.CreateAttr("w", emu(t.BorderWidth))
		ln.CreateAttr("cap", "flat")
		ln.CreateAttr("cmpd", "sng")
		ln.CreateAttr("algn", "ctr")
		writeSolidFill(ln, t.BorderColor)
		dash := ln.CreateElement("a:prstDash")
		if t.Dashed {
			dash.CreateAttr("val", "dash")
		} else {
			dash.CreateAttr("val", "solid")
		}
	}
	if c.Fill != nil {
		writeSolidFill(tcPr, *c.Fill)
	}
}
