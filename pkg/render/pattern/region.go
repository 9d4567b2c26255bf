package pattern

import (
	"math"

	"github.com/tdewolff/canvas"
)

// Region is an area of the page that can be filled with a tile. Every
// region is bounded by a vertical left edge and a straight right edge, so
// a horizontal slice through it is a single interval.
type Region interface {
	// Bounds returns the bounding box (left, top, right, bottom).
	Bounds() (x0, y0, x1, y1 float64)
	// Span returns the horizontal extent of the region at height y.
	Span(y float64) (x0, x1 float64, ok bool)
	// Path returns the closed outline of the region.
	Path() *canvas.Path
}

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct{ X, Y, W, H float64 }

func (r Rect) Bounds() (float64, float64, float64, float64) {
	return r.X, r.Y, r.X + r.W, r.Y + r.H
}

func (r Rect) Span(y float64) (float64, float64, bool) {
	if y < r.Y || y > r.Y+r.H {
		return 0, 0, false
	}
	return r.X, r.X + r.W, true
}

func (r Rect) Path() *canvas.Path {
	return outline(r.X, r.Y, r.X+r.W, r.X+r.W, r.Y+r.H)
}

// Trapezoid is the outline of a bed in the lithology column: a vertical
// left edge at X from Top to Bottom, with widths WidthTop and WidthBottom.
type Trapezoid struct {
	X           float64
	Top, Bottom float64
	WidthTop    float64
	WidthBottom float64
}

func (t Trapezoid) Bounds() (float64, float64, float64, float64) {
	return t.X, t.Top, t.X + math.Max(t.WidthTop, t.WidthBottom), t.Bottom
}

func (t Trapezoid) Span(y float64) (float64, float64, bool) {
	if y < t.Top || y > t.Bottom || t.Bottom <= t.Top {
		return 0, 0, false
	}
	f := (y - t.Top) / (t.Bottom - t.Top)
	return t.X, t.X + t.WidthTop + (t.WidthBottom-t.WidthTop)*f, true
}

func (t Trapezoid) Path() *canvas.Path {
	return outline(t.X, t.Top, t.X+t.WidthTop, t.X+t.WidthBottom, t.Bottom)
}

// outline is a quadrilateral with a vertical left edge at x from top to
// bottom and right corners at xTop and xBottom.
func outline(x, top, xTop, xBottom, bottom float64) *canvas.Path {
	p := &canvas.Path{}
	p.MoveTo(x, top)
	p.LineTo(xTop, top)
	p.LineTo(xBottom, bottom)
	p.LineTo(x, bottom)
	p.Close()
	return p
}
