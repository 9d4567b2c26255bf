// Package scale maps stratigraphic heights to page positions.
//
// All page positions are in points measured downward from the top edge of
// the sheet; heights grow upward, so a higher bed has a smaller y.
package scale

// PtPerMm is the number of PostScript points in a millimetre.
const PtPerMm = 72 / 25.4

// Pt converts millimetres to points.
func Pt(mm float64) float64 {
	return mm * PtPerMm
}

// Mm converts points to millimetres.
func Mm(pt float64) float64 {
	return pt / PtPerMm
}

// Scale is a linear mapping from a source interval to a destination
// interval. Either interval may be reversed.
type Scale struct {
	SrcMin, SrcMax float64
	DstMin, DstMax float64
	factor         float64
}

// New returns the scale mapping [srcMin, srcMax] onto [dstMin, dstMax].
// A degenerate source interval maps everything to dstMin.
func New(srcMin, srcMax, dstMin, dstMax float64) Scale {
	s := Scale{SrcMin: srcMin, SrcMax: srcMax, DstMin: dstMin, DstMax: dstMax}
	if srcMax != srcMin {
		s.factor = (dstMax - dstMin) / (srcMax - srcMin)
	}
	return s
}

// Factor returns the destination units per source unit.
func (s Scale) Factor() float64 {
	return s.factor
}

// Length converts a source distance to a destination distance.
func (s Scale) Length(v float64) float64 {
	return s.factor * v
}

// Pos converts a source position to a destination position.
func (s Scale) Pos(v float64) float64 {
	return s.DstMin + s.factor*(v-s.SrcMin)
}

// Page pairs a height range with the vertical extent it occupies on the
// sheet. It is used for overlays whose heights are measured on a different
// datum from the main column (palaeocurrents, event markers).
type Page struct {
	Top, Bottom         float64
	PageTop, PageBottom float64
	Scale               Scale
}

// NewPage maps heights top..bottom onto page positions pageTop..pageBottom.
func NewPage(top, bottom, pageTop, pageBottom float64) Page {
	return Page{
		Top:        top,
		Bottom:     bottom,
		PageTop:    pageTop,
		PageBottom: pageBottom,
		Scale:      New(top, bottom, pageTop, pageBottom),
	}
}

// Pos returns the page position of height h.
func (p Page) Pos(h float64) float64 {
	return p.Scale.Pos(h)
}

// Depth is the vertical mapping of one log page: heights bottom..top drawn
// at ptPerUnit points per unit below a margin of topMargin points.
type Depth struct {
	Bottom, Top float64
	PtPerUnit   float64
	TopMargin   float64
}

// NewDepth returns the depth mapping for a page.
func NewDepth(bottom, top, ptPerUnit, topMargin float64) Depth {
	return Depth{Bottom: bottom, Top: top, PtPerUnit: ptPerUnit, TopMargin: topMargin}
}

// Y returns the page position of height h.
func (d Depth) Y(h float64) float64 {
	return d.TopMargin + (d.Top-h)*d.PtPerUnit
}

// Length converts a thickness to points.
func (d Depth) Length(th float64) float64 {
	return th * d.PtPerUnit
}

// Span returns the height range covered by the page.
func (d Depth) Span() float64 {
	return d.Top - d.Bottom
}

// Scale returns the equivalent linear scale from height to page position.
func (d Depth) Scale() Scale {
	return New(d.Top, d.Bottom, d.TopMargin, d.TopMargin+d.Length(d.Span()))
}

// Contains reports whether h lies within the page.
func (d Depth) Contains(h float64) bool {
	return h >= d.Bottom && h <= d.Top
}
