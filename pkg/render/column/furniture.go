package column

import (
	"math"
	"strconv"

	"github.com/pont-us/sedlog-ffq/pkg/config"
	"github.com/pont-us/sedlog-ffq/pkg/logdata"
	"github.com/pont-us/sedlog-ffq/pkg/render/sheet"
)

// Header and curve geometry, in points.
const (
	headerRise     = 10.0
	dividerHeight  = 12.0
	tickLength     = 4.0
	tickLabelX     = 18.0
	tickLabelDrop  = 3.5
	magSusLines    = 5
	magSusWidth    = 40.0
	magSusLabelGap = 10.0
	fmnWidth       = 15.0
	fmnNameX       = 11.0
)

// Declination and inclination graph scales, in points per degree.
const (
	decScale = 0.16
	incScale = 0.4
)

var (
	decGrid = []float64{0, 90, 180, 270, 360}
	incGrid = []float64{0, 30, 60, 90}
)

func (p *page) drawAxis() {
	s := p.s
	x := p.cols.scale
	bottom, top := p.pr.Bottom, p.pr.Top
	interval := p.style.AxisInterval

	s.SetGray(0)
	s.SetLineWidth(1)
	s.MoveTo(x, p.depth.Y(bottom))
	s.LineTo(x, p.depth.Y(top))
	s.Stroke()

	ticks := int(math.Round((top-bottom)/interval + 1))
	for i := range ticks {
		h := bottom + float64(i)*interval
		y := p.depth.Y(h)
		s.MoveTo(x, y)
		s.RelLineTo(-tickLength, 0)
		s.Stroke()
		s.Text(x-tickLabelX, y+tickLabelDrop, strconv.Itoa(int(h/p.style.AxisUnit)))
	}
}

func (p *page) drawHeader() {
	s := p.s
	y := p.style.TopMargin - headerRise
	s.SetGray(0)
	s.SetLineWidth(1)
	s.Text(p.cols.scale-20, y, "h (m)")

	for i := 0; i <= len(p.style.Grains); i++ {
		x := p.cols.lith + p.style.LithWidth*float64(i)
		s.MoveTo(x, y)
		s.RelLineTo(0, -dividerHeight)
		s.Stroke()
		if i > 0 {
			s.AlignText(x-4, y, p.style.Grains[i-1].Label, sheet.Right, sheet.Baseline)
		}
	}

	s.Text(p.cols.drill+6, y, "pmag")
	s.Text(p.cols.magsus, y-3, "mag. sus.")
	for i := range magSusLines {
		s.AlignText(p.cols.magsus+magSusLabelGap*float64(i), y+7, strconv.Itoa(2*i), sheet.Center, sheet.Baseline)
	}
	if p.cols.showColour {
		s.Text(p.cols.colour, y, "colour")
	}
	if p.set.DecIncGraph {
		s.AlignText(p.cols.decGraph+180*decScale, y, "declination", sheet.Center, sheet.Baseline)
		s.AlignText(p.cols.incGraph+45*incScale, y, "inclination", sheet.Center, sheet.Baseline)
	}
	if p.set.DecIncTable {
		s.AlignText(p.cols.dec, y, "dec", sheet.Right, sheet.Baseline)
		s.AlignText(p.cols.inc, y, "inc", sheet.Right, sheet.Baseline)
	}
	if o := p.sheet.Overlay; o != nil && len(o.Currents) > 0 {
		s.AlignText(o.X, y, "current", sheet.Left, sheet.Baseline)
	}
}

// drawMagSus draws the susceptibility grid and the filled curve of the
// samples that fall on the page.
func (p *page) drawMagSus(samples []logdata.Sample) {
	s := p.s
	x0 := p.cols.magsus
	yBot, yTop := p.depth.Y(p.pr.Bottom), p.depth.Y(p.pr.Top)

	s.SetGray(0)
	s.SetLineWidth(0.5)
	step := magSusWidth / float64(magSusLines-1)
	for i := range magSusLines {
		x := x0 + float64(i)*step
		s.MoveTo(x, yBot)
		s.LineTo(x, yTop)
	}
	s.Stroke()

	clipped := logdata.Clip(samples, p.pr.Bottom, p.pr.Top)
	if len(clipped) == 0 {
		return
	}
	firstY := p.depth.Y(clipped[0].Height)
	lastY := firstY
	s.MoveTo(x0, firstY)
	for _, m := range clipped {
		lastY = p.depth.Y(m.Height)
		s.LineTo(x0+m.Value*p.style.MagSusScale, lastY)
	}
	s.LineTo(x0, lastY)
	s.LineTo(x0, firstY)
	s.ClosePath()
	s.SetGray(0)
	s.SetFillGray(0.8)
	s.FillStroke()
	s.SetFillGray(0)
}

// drawFormation draws a formation bracket with its name reading upward.
// Formations not wholly on the page are skipped.
func (p *page) drawFormation(f config.Formation) {
	if f.Top > p.pr.Top || f.Bottom < p.pr.Bottom {
		return
	}
	s := p.s
	y := p.depth.Y(f.Top)
	h := p.depth.Length(f.Top - f.Bottom)
	s.SetLineWidth(0.5)
	s.SetGray(0)
	s.Rect(p.cols.fmn, y, fmnWidth, h)
	s.Stroke()
	s.RotatedText(p.cols.fmn+fmnNameX, y+h+p.set.FormationNameOffset, 90, f.Name)
}
