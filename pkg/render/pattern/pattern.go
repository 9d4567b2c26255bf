// Package pattern fills lithology regions with repeating tiles.
//
// A [Tile] is a list of primitives (dots, horizontal dashes and small
// burrows) laid out in a W×H cell. [Fill] repeats the tile over a region
// with the tile grid anchored at the page origin, so adjacent beds share a
// continuous texture. The repeated primitives are built as one canvas
// path and intersected with the region's outline, so primitives crossing
// an edge are cut at the edge rather than dropped.
//
// Tiles with a random layout take a seed, and the same seed always gives
// the same tile.
package pattern

import (
	"math"
	"math/rand/v2"

	"github.com/tdewolff/canvas"

	"github.com/pont-us/sedlog-ffq/pkg/render/sheet"
)

// Seeds for the standard tiles.
const (
	SandSeed   uint64 = 11
	MottleSeed uint64 = 17
)

// Dot is a filled circle.
type Dot struct{ X, Y, R float64 }

// Dash is a horizontal stroke from X0 to X1 at height Y.
type Dash struct{ X0, X1, Y, Width float64 }

// Mark is a burrow glyph of the given size.
type Mark struct{ X, Y, Size float64 }

// Tile is one repeating cell of a fill pattern.
type Tile struct {
	W, H   float64
	Dots   []Dot
	Dashes []Dash
	Marks  []Mark
}

// Sand returns the sandstone tile: a 10×10 grid of jittered dots.
func Sand(seed uint64) Tile {
	const (
		n      = 10
		pitch  = 3.6
		offset = 1.8
		jitter = 3.0
		radius = 0.5
	)
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	t := Tile{W: 36, H: 36}
	for i := range n {
		for j := range n {
			t.Dots = append(t.Dots, Dot{
				X: offset + float64(i)*pitch + rng.Float64()*jitter - jitter/2,
				Y: offset + float64(j)*pitch + rng.Float64()*jitter - jitter/2,
				R: radius,
			})
		}
	}
	return t
}

// Silt returns the siltstone tile: two offset dashes, each paired with a
// row of three dots.
func Silt() Tile {
	const (
		sc   = 2.0
		yoff = 1.0
		r    = 0.5
	)
	t := Tile{W: 32, H: 8}
	dash := func(x0, x1, y float64) {
		t.Dashes = append(t.Dashes, Dash{X0: x0 * sc, X1: x1 * sc, Y: y*sc + yoff, Width: 0.5})
	}
	dot := func(x, y float64) {
		t.Dots = append(t.Dots, Dot{X: x * sc, Y: y*sc + yoff, R: r})
	}
	dash(0.2, 7.8, 1)
	dash(8.2, 15.8, 3)
	for _, x := range []float64{10, 12, 14} {
		dot(x, 1)
	}
	for _, x := range []float64{2, 4, 6} {
		dot(x, 3)
	}
	return t
}

// BurrowMottle returns the bioturbation overlay tile: a staggered set of
// small burrows. Burrows that fall outside the cell are dropped.
func BurrowMottle(seed uint64) Tile {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	t := Tile{W: 36, H: 36}
	for i := range 4 {
		for j := range 2 {
			x := 4.5 + float64(i)*24 + rng.Float64()*8
			y := 9 + float64(j)*36 + rng.Float64()*8 + float64(i)*8
			if x < t.W && y < t.H {
				t.Marks = append(t.Marks, Mark{X: x, Y: y, Size: 2})
			}
		}
	}
	return t
}

// Fill draws tile over region. It returns the number of primitives that
// reach into the region, whole or clipped.
func Fill(s *sheet.Sheet, region Region, tile Tile) int {
	if tile.W <= 0 || tile.H <= 0 {
		return 0
	}
	x0, y0, x1, y1 := region.Bounds()
	if x1 <= x0 || y1 <= y0 {
		return 0
	}

	paper, ink := &canvas.Path{}, &canvas.Path{}
	drawn := 0
	firstX := math.Floor(x0/tile.W) * tile.W
	firstY := math.Floor(y0/tile.H) * tile.H
	for ty := firstY; ty < y1; ty += tile.H {
		for tx := firstX; tx < x1; tx += tile.W {
			for _, d := range tile.Dots {
				x, y := tx+d.X, ty+d.Y
				if !overlaps(region, x-d.R, y-d.R, x+d.R, y+d.R) {
					continue
				}
				ink = ink.Append(at(canvas.Circle(d.R), x, y))
				drawn++
			}
			for _, d := range tile.Dashes {
				y := ty + d.Y
				if !overlaps(region, tx+d.X0, y-d.Width/2, tx+d.X1, y+d.Width/2) {
					continue
				}
				ink = ink.Append(at(canvas.Rectangle(d.X1-d.X0, d.Width), tx+d.X0, y-d.Width/2))
				drawn++
			}
			for _, m := range tile.Marks {
				x, y := tx+m.X, ty+m.Y
				if !overlaps(region, x-m.Size, y-m.Size, x+m.Size, y+m.Size) {
					continue
				}
				white, black := burrow(x, y, m.Size)
				paper = paper.Append(white)
				ink = ink.Append(black)
				drawn++
			}
		}
	}
	if drawn == 0 {
		return 0
	}

	clip := region.Path()
	s.Push()
	defer s.Pop()
	if len(tile.Marks) > 0 {
		s.SetGray(1)
		s.FillPath(paper.And(clip))
	}
	s.SetGray(0)
	s.FillPath(ink.And(clip))
	return drawn
}

func at(p *canvas.Path, x, y float64) *canvas.Path {
	return p.Transform(canvas.Identity.Translate(x, y))
}

// burrow returns the white body and the black outline of a burrow glyph:
// an upright ellipse of width size crossed by a bar of width 2*size.
func burrow(x, y, size float64) (white, black *canvas.Path) {
	rx, ry := size/2, size
	h := size / 8
	white = at(canvas.Ellipse(rx, ry), x, y)
	ring := canvas.Ellipse(rx+h, ry+h).Not(canvas.Ellipse(rx-h, ry-h))
	black = at(ring, x, y).Or(at(canvas.Rectangle(2*size, 2*h), x-size, y-h))
	return white, black
}

// overlaps reports whether the box reaches into the region at its top,
// middle or bottom edge.
func overlaps(r Region, x0, y0, x1, y1 float64) bool {
	for _, y := range []float64{y0, (y0 + y1) / 2, y1} {
		lo, hi, ok := r.Span(y)
		if ok && x1 > lo && x0 < hi {
			return true
		}
	}
	return false
}
