package sheet

import (
	"image/color"
	"math"

	"github.com/tdewolff/canvas"

	"github.com/pont-us/sedlog-ffq/pkg/fonts"
	"github.com/pont-us/sedlog-ffq/pkg/scale"
)

const mmPerPt = 1 / scale.PtPerMm

// HAlign is horizontal text alignment relative to the anchor point.
type HAlign int

const (
	Left HAlign = iota
	Center
	Right
)

// VAlign is vertical text alignment relative to the anchor point.
type VAlign int

const (
	// Hanging puts the top of capital letters at the anchor.
	Hanging VAlign = iota
	// Baseline puts the baseline at the anchor.
	Baseline
	// Middle centres capital letters on the anchor.
	Middle
)

// TextItem records a piece of text drawn on the sheet, in sheet
// coordinates of its baseline origin.
type TextItem struct {
	X, Y  float64
	Text  string
	Bold  bool
	Angle float64
}

// Shape records a painted path as the sheet coordinates of its vertices.
// Arcs and curves contribute their end points only.
type Shape struct {
	Points  []canvas.Point
	Filled  bool
	Stroked bool
}

// Bounds returns the box spanned by the shape's vertices.
func (sh Shape) Bounds() (x0, y0, x1, y1 float64) {
	if len(sh.Points) == 0 {
		return 0, 0, 0, 0
	}
	x0, y0 = sh.Points[0].X, sh.Points[0].Y
	x1, y1 = x0, y0
	for _, p := range sh.Points[1:] {
		x0, x1 = math.Min(x0, p.X), math.Max(x1, p.X)
		y0, y1 = math.Min(y0, p.Y), math.Max(y1, p.Y)
	}
	return x0, y0, x1, y1
}

// Sheet is a single page drawn through a canvas context whose view maps
// points with y growing downwards onto the canvas millimetres.
type Sheet struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	width  float64
	height float64
	faces  fonts.Faces
	pageMM canvas.Matrix // sheet points to canvas millimetres

	bold  bool
	bolds []bool

	pen, start canvas.Point
	hasPen     bool
	vertices   []canvas.Point
	segments   bool

	texts  []TextItem
	shapes []Shape
}

// New creates a white page of the given size in points, with text set at
// fontSize points.
func New(width, height, fontSize float64) (*Sheet, error) {
	faces, err := fonts.New(fontSize)
	if err != nil {
		return nil, err
	}
	c := canvas.New(width*mmPerPt, height*mmPerPt)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0, 0, canvas.Rectangle(width*mmPerPt, height*mmPerPt))

	pageMM := canvas.Identity.Translate(0, height*mmPerPt).Scale(mmPerPt, -mmPerPt)
	ctx.SetView(pageMM)
	ctx.SetStrokeWidth(2)
	ctx.SetFillColor(canvas.Black)
	ctx.SetStrokeColor(canvas.Black)

	return &Sheet{
		c:      c,
		ctx:    ctx,
		width:  width,
		height: height,
		faces:  faces,
		pageMM: pageMM,
	}, nil
}

// Canvas returns the underlying canvas.
func (s *Sheet) Canvas() *canvas.Canvas { return s.c }

// Width returns the page width in points.
func (s *Sheet) Width() float64 { return s.width }

// Height returns the page height in points.
func (s *Sheet) Height() float64 { return s.height }

// Texts returns the text items drawn so far.
func (s *Sheet) Texts() []TextItem {
	out := make([]TextItem, len(s.texts))
	copy(out, s.texts)
	return out
}

// Shapes returns the paths painted so far.
func (s *Sheet) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Paths returns the number of paths painted so far.
func (s *Sheet) Paths() int { return len(s.shapes) }

// toSheet maps a point in the current user space to sheet coordinates.
func (s *Sheet) toSheet(p canvas.Point) canvas.Point {
	return s.pageMM.Inv().Mul(s.ctx.View()).Dot(p)
}

// Push saves the transformation, line width, colours and font weight.
func (s *Sheet) Push() {
	s.ctx.Push()
	s.bolds = append(s.bolds, s.bold)
}

// Pop restores the state saved by the matching Push. An unbalanced Pop
// does nothing.
func (s *Sheet) Pop() {
	n := len(s.bolds)
	if n == 0 {
		return
	}
	s.ctx.Pop()
	s.bold = s.bolds[n-1]
	s.bolds = s.bolds[:n-1]
}

// Translate moves the origin for subsequent drawing.
func (s *Sheet) Translate(dx, dy float64) { s.ctx.Translate(dx, dy) }

// Rotate turns the axes by deg degrees, clockwise on the page.
func (s *Sheet) Rotate(deg float64) { s.ctx.Rotate(deg) }

// SetLineWidth sets the stroke width in points.
func (s *Sheet) SetLineWidth(w float64) { s.ctx.SetStrokeWidth(w) }

// SetGray sets both fill and stroke to a grey level between 0 (black)
// and 1 (white).
func (s *Sheet) SetGray(g float64) {
	c := gray(g)
	s.ctx.SetFillColor(c)
	s.ctx.SetStrokeColor(c)
}

// SetFillGray sets the fill colour alone.
func (s *Sheet) SetFillGray(g float64) { s.ctx.SetFillColor(gray(g)) }

func gray(g float64) color.RGBA {
	v := uint8(math.Round(math.Max(0, math.Min(1, g)) * 255))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// Bold selects the bold face for subsequent text.
func (s *Sheet) Bold(on bool) { s.bold = on }

// MoveTo starts a new sub-path at (x, y).
func (s *Sheet) MoveTo(x, y float64) {
	s.ctx.MoveTo(x, y)
	s.pen = canvas.Point{X: x, Y: y}
	s.start = s.pen
	s.hasPen = true
	s.vertices = append(s.vertices, s.pen)
}

// LineTo adds a straight segment to (x, y). Without a current point it
// behaves as MoveTo.
func (s *Sheet) LineTo(x, y float64) {
	if !s.hasPen {
		s.MoveTo(x, y)
		return
	}
	s.ctx.LineTo(x, y)
	s.segment(x, y)
}

// RelMoveTo moves the current point by (dx, dy).
func (s *Sheet) RelMoveTo(dx, dy float64) {
	s.MoveTo(s.pen.X+dx, s.pen.Y+dy)
}

// RelLineTo adds a straight segment by (dx, dy) from the current point.
func (s *Sheet) RelLineTo(dx, dy float64) {
	s.LineTo(s.pen.X+dx, s.pen.Y+dy)
}

// CubeTo adds a cubic Bézier segment.
func (s *Sheet) CubeTo(x1, y1, x2, y2, x, y float64) {
	if !s.hasPen {
		s.MoveTo(x1, y1)
	}
	s.ctx.CubeTo(x1, y1, x2, y2, x, y)
	s.segment(x, y)
}

// Arc adds a circular arc centred on (xc, yc) from angle a0 to a1, in
// radians measured from the x axis towards the y axis (clockwise on the
// page). A segment joins the current point to the start of the arc.
func (s *Sheet) Arc(xc, yc, r, a0, a1 float64) {
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	x0, y0 := xc+r*math.Cos(a0), yc+r*math.Sin(a0)
	switch {
	case !s.hasPen:
		s.MoveTo(x0, y0)
	case s.pen != (canvas.Point{X: x0, Y: y0}):
		s.LineTo(x0, y0)
	}
	s.ctx.Arc(r, r, 0, a0*180/math.Pi, a1*180/math.Pi)
	s.segment(xc+r*math.Cos(a1), yc+r*math.Sin(a1))
}

// Circle adds a closed circle as a new sub-path.
func (s *Sheet) Circle(xc, yc, r float64) {
	s.Ellipse(xc, yc, r, r)
}

// Ellipse adds a closed axis-aligned ellipse as a new sub-path.
func (s *Sheet) Ellipse(xc, yc, rx, ry float64) {
	s.MoveTo(xc+rx, yc)
	s.ctx.Arc(rx, ry, 0, 0, 180)
	s.segment(xc-rx, yc)
	s.ctx.Arc(rx, ry, 0, 180, 360)
	s.segment(xc+rx, yc)
	s.ClosePath()
}

// Rect adds a closed rectangle as a new sub-path.
func (s *Sheet) Rect(x, y, w, h float64) {
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.ClosePath()
}

// ClosePath closes the current sub-path; the current point returns to
// its start.
func (s *Sheet) ClosePath() {
	if !s.hasPen {
		return
	}
	s.ctx.Close()
	s.pen = s.start
}

func (s *Sheet) segment(x, y float64) {
	s.pen = canvas.Point{X: x, Y: y}
	s.vertices = append(s.vertices, s.pen)
	s.segments = true
}

// Stroke outlines the current path and clears it.
func (s *Sheet) Stroke() {
	s.paint(false, true)
	s.ctx.Stroke()
}

// Fill fills the current path and clears it.
func (s *Sheet) Fill() {
	s.paint(true, false)
	s.ctx.Fill()
}

// FillStroke fills the current path in the fill colour, outlines it in
// the stroke colour and clears it.
func (s *Sheet) FillStroke() {
	s.paint(true, true)
	s.ctx.FillStroke()
}

// FillPath fills p, given in the current user space, and leaves the
// current path alone.
func (s *Sheet) FillPath(p *canvas.Path) {
	if p == nil {
		return
	}
	s.ctx.Push()
	s.ctx.SetStrokeColor(canvas.Transparent)
	s.ctx.DrawPath(0, 0, p)
	s.ctx.Pop()
	s.shapes = append(s.shapes, Shape{Filled: true})
}

// paint records the current path and resets the pen. The context clears
// its own path when it paints.
func (s *Sheet) paint(fill, stroke bool) {
	if s.segments {
		pts := make([]canvas.Point, len(s.vertices))
		for i, v := range s.vertices {
			pts[i] = s.toSheet(v)
		}
		s.shapes = append(s.shapes, Shape{Points: pts, Filled: fill, Stroked: stroke})
	}
	s.vertices = s.vertices[:0]
	s.segments = false
	s.hasPen = false
}
