package render

import (
	"strings"

	"slidec/css"
	"slidec/dom"
	"slidec/pptx"
	"slidec/style"
)

// tableRowHeightPx is the fixed row height of materialized tables.
const tableRowHeightPx = 22

// standaloneTable draws a table block that has no section header.
func (r *Renderer) standaloneTable(div *dom.Element, st css.Props) {
	tbl := div.Find("table")
	if tbl == nil {
		return
	}
	r.renderTable(tbl,
		style.Px(st.Get("left")),
		style.Px(st.Get("top")),
		blockWidth(st, 900),
		false)
}

// SplitColumns resolves table column widths: explicit pixel widths are kept
// verbatim and the remaining width — negative included — is split evenly
// among the auto (zero) columns.
func SplitColumns(total float64, explicit []float64) []float64 {
	var used float64
	auto := 0
	for _, w := range explicit {
		if w > 0 {
			used += w
		} else {
			auto++
		}
	}
	var autoW float64
	if auto > 0 {
		autoW = (total - used) / float64(auto)
	}
	widths := make([]float64, len(explicit))
	for i, w := range explicit {
		if w > 0 {
			widths[i] = w
		} else {
			widths[i] = autoW
		}
	}
	return widths
}

// cellsOf collects the th/td cells of a row in document order.
func cellsOf(tr *dom.Element) []*dom.Element {
	var out []*dom.Element
	var walk func(e *dom.Element)
	walk = func(e *dom.Element) {
		for _, c := range e.Children {
			if c.Tag == "th" || c.Tag == "td" {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(tr)
	return out
}

// renderTable materializes an HTML table at the given pixel box. Column
// count comes from the first row; styling cascades per cell: inline, then
// the cell's own classes, then the table-class th/td rules, then the table.
func (r *Renderer) renderTable(tableEl *dom.Element, left, top, width float64, dashed bool) {
	trs := tableEl.FindAll("tr")
	if len(trs) == 0 {
		return
	}
	nCols := len(cellsOf(trs[0]))
	nRows := len(trs)
	if nCols == 0 {
		return
	}

	tblSty := r.p.ParseInline(tableEl.Attr("style"))
	tblFsPx := style.Px(tblSty.Get("font-size"))
	if tblFsPx == 0 {
		tblFsPx = 11
	}
	tblBorder := r.res.Theme.Border
	if c, ok := style.BorderColor(tblSty.Get("border")); ok {
		tblBorder = c
	}

	explicit := make([]float64, nCols)
	for i, c := range cellsOf(trs[0]) {
		explicit[i] = style.Px(r.p.ParseInline(c.Attr("style")).Get("width"))
	}
	colWidths := SplitColumns(width, explicit)

	var thCSS, tdCSS style.Resolved
	if cls := tableEl.FirstClass(); cls != "" {
		thCSS = r.res.Rules("." + cls + " th")
		tdCSS = r.res.Rules("." + cls + " td")
	} else {
		thCSS = r.res.Rules()
		tdCSS = r.res.Rules()
	}
	if !dashed {
		dashed = strings.Contains(tdCSS.Raw("border"), "dashed") ||
			strings.Contains(thCSS.Raw("border"), "dashed")
	}
	cellBorder := tblBorder
	if c, ok := style.BorderColor(tdCSS.Raw("border")); ok {
		cellBorder = c
	} else if c, ok := style.BorderColor(thCSS.Raw("border")); ok {
		cellBorder = c
	}

	shape := r.slide.AddTable(nRows, nCols,
		geom(left, top, width, float64(nRows*tableRowHeightPx+4)))
	grid := shape.Grid
	grid.BorderColor = paint(cellBorder)
	grid.Dashed = dashed
	for i, cw := range colWidths {
		grid.ColWidths[i] = EMU(cw)
	}

	for ri, tr := range trs {
		trSty := r.p.ParseInline(tr.Attr("style"))
		trBg, trHasBg := style.ParseColor(trSty.Get("background"))
		trColor, trHasColor := style.ParseColor(trSty.Get("color"))

		for ci, td := range cellsOf(tr) {
			if ci >= nCols {
				break
			}
			r.renderCell(grid.Cell(ri, ci), td, cellStyleContext{
				thCSS: thCSS, tdCSS: tdCSS,
				tblFsPx: tblFsPx,
				trBg:    trBg, trHasBg: trHasBg,
				trColor: trColor, trHasColor: trHasColor,
			})
		}
	}
}

type cellStyleContext struct {
	thCSS, tdCSS style.Resolved
	tblFsPx      float64
	trBg         style.Color
	trHasBg      bool
	trColor      style.Color
	trHasColor   bool
}

func (r *Renderer) renderCell(cell *pptx.Cell, td *dom.Element, cx cellStyleContext) {
	ds := r.p.ParseInline(td.Attr("style"))
	isHeader := td.Tag == "th"
	tagCSS := cx.tdCSS
	if isHeader {
		tagCSS = cx.thCSS
	}

	var clsCSS style.Resolved
	if classes := td.Classes(); len(classes) > 0 {
		sels := make([]string, len(classes))
		for i, c := range classes {
			sels[i] = "." + c
		}
		clsCSS = r.res.Rules(sels...)
	} else {
		clsCSS = r.res.Rules()
	}

	txt := trimmedText(td)
	circle, hasCircle := circleColor(td, r.p)
	if hasCircle {
		txt = "●"
	}

	// font-size: inline, then cell class, then table-class tag rule, then table
	fsPx := style.Px(ds.Get("font-size"))
	if fsPx == 0 {
		fsPx = style.Px(clsCSS.Raw("font-size"))
	}
	if fsPx == 0 {
		fsPx = style.Px(tagCSS.Raw("font-size"))
	}
	if fsPx == 0 {
		fsPx = cx.tblFsPx
	}
	fsPt := PxToPt(fsPx)
	if fsPt < 6 {
		fsPt = 8
	}

	align := ds.Get("text-align")
	if align == "" {
		align = clsCSS.Raw("text-align")
	}
	if align == "" {
		align = tagCSS.Raw("text-align")
	}
	switch align {
	case "center":
		cell.Frame.Align = pptx.AlignCenter
	case "right":
		cell.Frame.Align = pptx.AlignRight
	default:
		cell.Frame.Align = pptx.AlignLeft
	}

	weight := ds.Get("font-weight")
	if weight == "" {
		weight = clsCSS.Raw("font-weight")
	}
	if weight == "" {
		weight = tagCSS.Raw("font-weight")
	}

	run := pptx.Run{Font: r.font}
	if hasCircle {
		run.Text = "●"
		run.SizePt = 10
		run.Color = paint(circle)
	} else {
		run.Text = txt
		run.SizePt = fsPt
		color := r.res.Theme.Text
		if c, ok := style.ParseColor(ds.Get("color")); ok {
			color = c
		} else if c, ok := style.ParseColor(clsCSS.Raw("color")); ok {
			color = c
		} else if cx.trHasColor {
			color = cx.trColor
		}
		run.Color = paint(color)
	}
	if weight != "" {
		run.Bold = style.IsBoldWeight(weight)
	} else if isHeader {
		run.Bold = true
	}

	cellBg, hasCellBg := backgroundOf(ds)
	if !hasCellBg {
		if c, ok := style.ParseColor(clsCSS.Raw("background")); ok {
			cellBg, hasCellBg = c, true
		} else if c, ok := style.ParseColor(clsCSS.Raw("background-color")); ok {
			cellBg, hasCellBg = c, true
		}
	}
	switch {
	case isHeader:
		bg := cellBg
		has := hasCellBg
		if !has && cx.trHasBg {
			bg, has = cx.trBg, true
		}
		if has {
			fill := paint(bg)
			cell.Fill = &fill
			// dark header fill forces a light foreground, circle glyphs included
			if !style.IsLight(bg) {
				run.Color = paint(r.res.Theme.White)
			}
		}
	case cx.trHasBg:
		fill := paint(cx.trBg)
		cell.Fill = &fill
	case hasCellBg:
		fill := paint(cellBg)
		cell.Fill = &fill
	}

	cell.Frame.AddRun(run)
	cell.MarginLeft = EMU(4)
	cell.MarginRight = EMU(4)
	cell.MarginTop = EMU(2)
	cell.MarginBottom = EMU(2)
}
