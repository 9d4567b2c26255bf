package column

import (
	"math"

	"github.com/pont-us/sedlog-ffq/pkg/logdata"
	"github.com/pont-us/sedlog-ffq/pkg/render/pattern"
	"github.com/pont-us/sedlog-ffq/pkg/render/symbols"
)

// Symbol placement relative to the bed's left edge and top.
const (
	symbolSize  = 4.0
	calcX       = 50.0
	calcY       = 4.0
	calc2X      = 20.0
	calc2Y      = 6.0
	burrowX     = 10.0
	woodX       = 30.0
	featureY    = 6.0
	textDrop    = 3.0
	noteSpacing = 8.0
	magSusBar   = 8.0
)

// grainWidth returns the column width for a grain-size code. Unknown codes
// are drawn at the finest grain size.
func (p *page) grainWidth(code string) float64 {
	i := p.style.GrainIndex(code)
	if i < 0 {
		p.logger.Debug("unknown grain size", "grain", code)
		i = 0
	}
	return float64(1+i) * p.style.LithWidth
}

func (p *page) tile(lith string) (pattern.Tile, bool) {
	switch lith {
	case logdata.LithSandstone:
		return p.sand, true
	case logdata.LithSiltstone:
		return p.silt, true
	}
	return pattern.Tile{}, false
}

func (p *page) drawBed(b, next *logdata.Bed) {
	s := p.s
	x := p.cols.lith
	top := p.depth.Y(b.Top())
	bot := p.depth.Y(b.Base)
	width := p.style.NotExposedWidth
	widthB := width
	p.stats.Beds++

	if b.Thickness > 0 {
		if b.Lith != logdata.LithNotExposed {
			widthB = p.grainWidth(b.Grain)
			widthT := widthB
			if next != nil && next.Exposed() {
				widthT = p.grainWidth(next.Grain)
			}
			p.drawLith(b.Lith, x, top, bot, widthB, widthT)
			width = math.Min(widthT, widthB)
		} else {
			p.drawNotExposed(x, top, bot-top, width)
		}
	}

	acid := b.AcidStrength()
	if Track(&p.state.LastCalc, top, p.set.SymbolInterval, acid > 2) {
		symbols.Calc(s, x+calcX, top+calcY, symbolSize)
		p.stats.Calc++
		if acid > 3 {
			symbols.Calc(s, x+calc2X, top+calc2Y, symbolSize)
			p.stats.Calc++
		}
	} else if acid > 2 {
		p.stats.Suppressed++
	}

	if Track(&p.state.LastBurrow, top, p.set.SymbolInterval, b.Burrows != "") {
		symbols.Burrow(s, x+burrowX, top+featureY, symbolSize, b.Pyritized())
		p.stats.Burrows++
	} else if b.Burrows != "" {
		p.stats.Suppressed++
	}

	if Track(&p.state.LastWood, top, p.set.SymbolInterval, b.Fossils != "") {
		symbols.Wood(s, x+woodX, top+featureY, symbolSize)
		p.stats.Wood++
	} else if b.Fossils != "" {
		p.stats.Suppressed++
	}

	if b.Colour != "" && p.cols.showColour {
		s.Text(p.cols.colour, bot+textDrop, b.Colour)
	}
	if b.Contact != "" {
		symbols.IrregularContact(s, x, bot, widthB)
	}
	if b.Notes != "" && p.cols.showNotes {
		s.WriteLines(p.cols.notes, bot+textDrop, noteSpacing, b.NoteLines())
	}
	if b.HasMagSus() {
		p.drawMagSusSpot(top, b.MagSusValue())
	}

	var nextGlc *float64
	if next != nil {
		nextGlc = &next.Glauconite
	}
	if p.state.Glauconite(b.Base, b.Glauconite, nextGlc, &p.set) {
		symbols.Glauconite(s, x, top+p.set.GlcVOffset, width, b.Glauconite)
		if symbols.GlauconiteCount(b.Glauconite) > 0 {
			p.stats.Glauconite++
		}
	} else if b.Glauconite > 0 {
		p.stats.Suppressed++
	}

	if b.Drill != "" {
		p.drawSiteLabel(b, bot)
	}
}

func (p *page) drawLith(lith string, x, top, bot, widthB, widthT float64) {
	s := p.s
	if t, ok := p.tile(lith); ok {
		region := pattern.Trapezoid{X: x, Top: top, Bottom: bot, WidthTop: widthT, WidthBottom: widthB}
		pattern.Fill(s, region, t)
		if lith == logdata.LithSiltstone {
			pattern.Fill(s, region, p.mottle)
		}
	}
	s.SetLineWidth(0.5)
	s.SetGray(0)
	s.MoveTo(x, bot)
	s.LineTo(x, top)
	s.Stroke()
	s.MoveTo(x+widthB, bot)
	s.LineTo(x+widthT, top)
	s.Stroke()
}

func (p *page) drawNotExposed(x, top, height, width float64) {
	s := p.s
	s.SetLineWidth(0.5)
	s.SetGray(0)
	s.Rect(x, top, width, height)
	s.MoveTo(x, top)
	s.RelLineTo(width, height)
	s.RelMoveTo(0, -height)
	s.RelLineTo(-width, height)
	s.Stroke()
}

func (p *page) drawMagSusSpot(top, value float64) {
	s := p.s
	s.Rect(p.cols.magsus, top-magSusBar/2, value*p.style.MagSusScale, magSusBar)
	s.SetGray(0)
	s.SetLineWidth(0.5)
	s.SetFillGray(0.8)
	s.FillStroke()
	s.SetFillGray(0)
	p.stats.MagSusSpots++
}

func (p *page) drawSiteLabel(b *logdata.Bed, bot float64) {
	x := p.cols.drill + p.state.Stagger(b.Drill, &p.set)
	if !p.set.AllDrillSites && !p.cfg.IsValidSite(b.Drill) {
		return
	}
	p.s.SetGray(0)
	p.s.Text(x, bot+textDrop-b.LabelOffset, b.Drill)
	p.stats.SiteLabels++
}
