// Package pptx writes PowerPoint presentations. It models a presentation as
// pages of canvas primitives (rectangle, oval, text box, table) and packages
// them as OOXML parts in a zip archive, the only fixed parts being a blank
// master/layout/theme trio. Shapes stay inspectable in memory until Save.
package pptx

import (
	"fmt"

	"go.uber.org/zap"
)

// EMUPerInch is the number of English Metric Units per inch, the native
// length unit of the output document.
const EMUPerInch = 914400

// Color is a 3-byte RGB triple in the output color model.
type Color struct {
	R, G, B uint8
}

// Hex returns the 6-digit upper-case hex form used in DrawingML.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Geometry positions a shape on the page, in EMU.
type Geometry struct {
	Left, Top, Width, Height int64
}

// ShapeKind identifies the primitive a Shape renders as.
type ShapeKind int

const (
	KindRectangle ShapeKind = iota
	KindRoundedRectangle
	KindOval
	KindTextBox
	KindTable
)

// Line is a shape outline.
type Line struct {
	Color Color
	Width int64 // EMU
}

// Alignment of a paragraph or cell.
type Alignment string

const (
	AlignLeft   Alignment = "l"
	AlignCenter Alignment = "ctr"
	AlignRight  Alignment = "r"
)

// Run is one contiguous span of text sharing one visual style.
type Run struct {
	Text      string
	Font      string
	SizePt    float64
	Bold      bool
	Underline bool
	Color     Color
}

// TextFrame holds the single paragraph of a text box or table cell.
type TextFrame struct {
	Runs     []Run
	Align    Alignment
	WordWrap bool
	// AnchorCenter vertically centers the text inside the frame.
	AnchorCenter bool
}

// AddRun appends a styled run to the frame.
func (f *TextFrame) AddRun(r Run) *Run {
	f.Runs = append(f.Runs, r)
	return &f.Runs[len(f.Runs)-1]
}

// Cell is one table cell: a text frame plus fill, border and padding.
type Cell struct {
	Frame TextFrame
	Fill  *Color
	// MarginLeft..MarginBottom are the internal paddings in EMU.
	MarginLeft, MarginRight, MarginTop, MarginBottom int64
}

// Table is a rectangular grid of uniform row height.
type Table struct {
	ColWidths   []int64 // EMU, one per column
	RowHeight   int64   // EMU
	Cells       [][]Cell
	BorderColor Color
	BorderWidth int64 // EMU
	Dashed      bool
}

// Rows returns the row count.
func (t *Table) Rows() int { return len(t.Cells) }

// Cols returns the column count.
func (t *Table) Cols() int { return len(t.ColWidths) }

// Cell returns the addressed cell.
func (t *Table) Cell(row, col int) *Cell { return &t.Cells[row][col] }

// Shape is one drawn primitive. Fill and Line are nil for "no fill" and
// "no outline"; Frame is set for text boxes, Grid for tables.
type Shape struct {
	Kind  ShapeKind
	Geom  Geometry
	Fill  *Color
	Line  *Line
	Frame *TextFrame
	Grid  *Table
}

// SetFill gives the shape a solid fill.
func (s *Shape) SetFill(c Color) *Shape {
	s.Fill = &c
	return s
}

// SetLine gives the shape a solid outline.
func (s *Shape) SetLine(c Color, width int64) *Shape {
	s.Line = &Line{Color: c, Width: width}
	return s
}

// Slide is one output page. Shapes render in append order, later ones on top.
type Slide struct {
	Shapes []*Shape
}

func (s *Slide) add(sh *Shape) *Shape {
	s.Shapes = append(s.Shapes, sh)
	return sh
}

// AddRectangle appends a rectangle with no fill and no outline.
func (s *Slide) AddRectangle(g Geometry) *Shape {
	return s.add(&Shape{Kind: KindRectangle, Geom: g})
}

// AddRoundedRectangle appends a rounded rectangle.
func (s *Slide) AddRoundedRectangle(g Geometry) *Shape {
	return s.add(&Shape{Kind: KindRoundedRectangle, Geom: g})
}

// AddOval appends an oval.
func (s *Slide) AddOval(g Geometry) *Shape {
	return s.add(&Shape{Kind: KindOval, Geom: g})
}

// AddTextBox appends an empty text box with word wrap enabled.
func (s *Slide) AddTextBox(g Geometry) *Shape {
	return s.add(&Shape{
		Kind:  KindTextBox,
		Geom:  g,
		Frame: &TextFrame{Align: AlignLeft, WordWrap: true},
	})
}

// AddTable appends a rows x cols grid with evenly split column widths. The
// caller adjusts ColWidths afterwards as needed.
func (s *Slide) AddTable(rows, cols int, g Geometry) *Shape {
	t := &Table{
		ColWidths:   make([]int64, cols),
		Cells:       make([][]Cell, rows),
		BorderWidth: 6350,
	}
	if cols > 0 {
		each := g.Width / int64(cols)
		for i := range t.ColWidths {
			t.ColWidths[i] = each
		}
	}
	if rows > 0 {
		t.RowHeight = g.Height / int64(rows)
	}
	for i := range t.Cells {
		t.Cells[i] = make([]Cell, cols)
	}
	return s.add(&Shape{Kind: KindTable, Geom: g, Grid: t})
}

// Presentation is the output document handle. It is not safe for concurrent
// use; pages are appended sequentially.
type Presentation struct {
	SlideWidth  int64 // EMU
	SlideHeight int64 // EMU
	Slides      []*Slide

	log *zap.Logger
}

// New creates an empty presentation with the given page size in EMU.
func New(width, height int64, log *zap.Logger) *Presentation {
	if log == nil {
		log = zap.NewNop()
	}
	return &Presentation{
		SlideWidth:  width,
		SlideHeight: height,
		log:         log.Named("pptx"),
	}
}

// AddSlide appends a new blank page.
func (p *Presentation) AddSlide() *Slide {
	sl := &Slide{}
	p.Slides = append(p.Slides, sl)
	return sl
}
