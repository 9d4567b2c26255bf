package column

import (
	"github.com/pont-us/sedlog-ffq/pkg/render/pattern"
	"github.com/pont-us/sedlog-ffq/pkg/render/symbols"
)

// Glaucony legend rows: a representative content for each class.
var (
	legendGlc       = []float64{1, 6, 21, 51, 81}
	legendGlcLabels = []string{"<5%", "5–20%", "20–50%", "50–80%", ">80%"}
)

func (p *page) drawLegend(x, y float64) {
	s := p.s
	s.Push()
	defer s.Pop()
	s.Translate(x, y)
	s.Bold(false)

	p.patternBox(10, 10, 50, 36, p.silt, "Siltstone")
	p.patternBox(10, 50, 50, 36, p.sand, "Sandstone")
	p.patternBox(10, 90, 50, 36, p.mottle, "Burrow mottling")

	symbols.IrregularContact(s, 10, 140, 50)
	s.Text(64, 142, "Irregular/burrowed contact")

	p.legendGlauconite(10, 170)
	p.legendFeatures(10, 250)
}

func (p *page) patternBox(x, y, w, h float64, t pattern.Tile, label string) {
	s := p.s
	pattern.Fill(s, pattern.Rect{X: x, Y: y, W: w, H: h}, t)
	s.Rect(x, y, w, h)
	s.SetGray(0)
	s.SetLineWidth(0.5)
	s.Stroke()
	s.Text(x+w+4, y+h/2+2, label)
}

func (p *page) legendGlauconite(x, y float64) {
	s := p.s
	s.Text(x, y, "Glaucony content")
	for i, pct := range legendGlc {
		row := y + float64(i+1)*12
		symbols.Glauconite(s, x, row, 30, pct)
		s.Text(x+35, row, legendGlcLabels[i])
	}
}

func (p *page) legendFeatures(x, y float64) {
	const (
		step = 12.0
		size = 4.0
	)
	s := p.s
	features := []struct {
		draw  func(x, y float64)
		label string
	}{
		{func(x, y float64) { symbols.Wood(s, x, y, size) }, "Fossil wood"},
		{func(x, y float64) { symbols.Burrow(s, x, y, size, false) }, "Distinct burrow"},
		{func(x, y float64) { symbols.Burrow(s, x, y, size, true) }, "Pyritized burrow"},
		{func(x, y float64) { symbols.Calc(s, x, y, size) }, "Calcareous"},
	}
	for i, f := range features {
		row := y + float64(i)*step
		f.draw(x, row)
		s.Text(x+15, row+2, f.label)
	}
}
