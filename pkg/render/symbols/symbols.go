// Package symbols draws the annotation glyphs placed on a log: calcareous
// reaction, glaucony content, fossil wood, burrows, irregular contacts and
// palaeocurrent directions.
//
// Each function draws a complete glyph and leaves the sheet's line width,
// colour and font weight as it found them.
package symbols

import (
	"math"

	"github.com/pont-us/sedlog-ffq/pkg/render/sheet"
)

// GlauconiteLimits are the percentage thresholds of the glaucony scale;
// one glyph is drawn for every limit the content exceeds.
var GlauconiteLimits = []float64{0, 5, 20, 50, 80}

// Calc draws the calcareous-reaction symbol, a T-bar of half-width size
// centred on (x, y).
func Calc(s *sheet.Sheet, x, y, size float64) {
	s.Push()
	defer s.Pop()
	s.MoveTo(x-size, y-size/2)
	s.RelLineTo(size*2, 0)
	s.RelMoveTo(-size, 0)
	s.RelLineTo(0, size)
	s.RelMoveTo(-size, 0)
	s.RelLineTo(2*size, 0)
	s.SetLineWidth(1)
	s.SetGray(0)
	s.Stroke()
}

// GlauconiteCount returns the number of glyphs for a glaucony percentage.
func GlauconiteCount(pct float64) int {
	n := 0
	for _, limit := range GlauconiteLimits {
		if pct > limit {
			n++
		}
	}
	return n
}

// Glauconite draws GlauconiteCount(pct) bold "g" glyphs spread evenly
// across width, with their baseline at y.
func Glauconite(s *sheet.Sheet, x, y, width, pct float64) {
	n := GlauconiteCount(pct)
	if n == 0 {
		return
	}
	s.Push()
	defer s.Pop()
	s.Bold(true)
	s.SetGray(0)
	step := width / float64(n+1)
	for i := 1; i <= n; i++ {
		s.Text(x+float64(i)*step-3, y, "g")
	}
}

// Wood draws the fossil-wood lozenge: a circle of diameter size at (x, y)
// with a rounded tail of length 2*size to its right.
func Wood(s *sheet.Sheet, x, y, size float64) {
	s.Push()
	defer s.Pop()
	r := size / 2
	s.Circle(x, y, r)
	s.MoveTo(x, y-r)
	s.RelLineTo(size*2, 0)
	s.Arc(x+2*size, y, r, 3*math.Pi/2, math.Pi/2)
	s.RelLineTo(-size*2, 0)
	s.SetGray(0)
	s.SetFillGray(1)
	s.SetLineWidth(1)
	s.FillStroke()
}

// Burrow draws a vertical ellipse of width size crossed by a bar of width
// 2*size. Pyritized burrows are marked with a P.
func Burrow(s *sheet.Sheet, x, y, size float64, pyritized bool) {
	s.Push()
	defer s.Pop()
	s.SetLineWidth(size / 4)
	s.SetGray(0)
	s.SetFillGray(1)
	s.Ellipse(x, y, size/2, size)
	s.FillStroke()
	s.MoveTo(x-size, y)
	s.RelLineTo(size*2, 0)
	s.Stroke()
	if pyritized {
		s.Bold(false)
		s.Text(x+size*0.8, y+size*0.7, "P")
	}
}

// Contact wave geometry.
const (
	waveWidth  = 12.0
	waveHeight = 3.0
)

// IrregularContact draws a wavy line starting at (x, y) and ending exactly
// at x+width.
func IrregularContact(s *sheet.Sheet, x, y, width float64) {
	if width <= 0 {
		return
	}
	s.Push()
	defer s.Pop()
	s.SetLineWidth(1)
	s.SetGray(0)
	s.MoveTo(x, y)
	end := x + width
	pos := x
	up := true
	for pos < end {
		dy := waveHeight
		if up {
			dy = -waveHeight
		}
		seg := bezier{
			{pos, y},
			{pos, y + dy},
			{pos + waveWidth, y + dy},
			{pos + waveWidth, y},
		}
		if pos+waveWidth > end {
			seg = seg.split(seg.paramAtX(end))
		}
		s.CubeTo(seg[1][0], seg[1][1], seg[2][0], seg[2][1], seg[3][0], seg[3][1])
		pos += waveWidth
		up = !up
	}
	s.Stroke()
}

// Direction draws a palaeocurrent rose: a circle of radius r centred on
// (x, y) with a double-headed arrow turned clockwise by deg degrees from
// the vertical.
func Direction(s *sheet.Sheet, x, y, r, deg float64) {
	s.Push()
	defer s.Pop()
	s.SetGray(0)
	s.SetLineWidth(0.5)
	s.Translate(x, y)
	s.Rotate(deg)

	r2 := r * 0.95
	s.Circle(0, 0, r)
	s.MoveTo(0, r2*0.9)
	s.LineTo(0, -r2*0.9)
	s.Stroke()

	for _, sign := range []float64{1, -1} {
		s.MoveTo(0, sign*r2)
		s.LineTo(-sign*r2*0.2, sign*r2*0.8)
		s.LineTo(sign*r2*0.2, sign*r2*0.8)
		s.ClosePath()
		s.Fill()
	}
}
