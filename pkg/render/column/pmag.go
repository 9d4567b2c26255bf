package column

import (
	"slices"
	"strconv"

	"github.com/pont-us/sedlog-ffq/pkg/logdata"
	"github.com/pont-us/sedlog-ffq/pkg/render/sheet"
)

const (
	siteMarkerRadius = 1.5
	blockRowSpacing  = 10.0
)

// drawDecIncGraph plots site declinations and inclinations against height
// as two connected curves with circle markers. The curves restart at the
// configured break sites.
func (p *page) drawDecIncGraph(sites []logdata.Site) {
	onPage := make([]logdata.Site, 0, len(sites))
	for _, st := range sites {
		if p.depth.Contains(st.Height) {
			onPage = append(onPage, st)
		}
	}
	p.drawParam(onPage, p.cols.decGraph, decScale, decGrid, func(st logdata.Site) float64 { return st.Dec })
	p.drawParam(onPage, p.cols.incGraph, incScale, incGrid, func(st logdata.Site) float64 { return st.Inc })
}

func (p *page) drawParam(sites []logdata.Site, x0, pscale float64, grid []float64, value func(logdata.Site) float64) {
	s := p.s
	yBot, yTop := p.depth.Y(p.pr.Bottom), p.depth.Y(p.pr.Top)

	s.SetGray(0)
	s.SetLineWidth(0.5)
	for _, g := range grid {
		x := x0 + g*pscale
		s.MoveTo(x, yBot)
		s.LineTo(x, yTop)
		s.Stroke()
	}
	for _, i := range []int{0, len(grid) - 1} {
		s.AlignText(x0+grid[i]*pscale, yTop-2, strconv.Itoa(int(grid[i])), sheet.Center, sheet.Baseline)
	}

	for i, st := range sites {
		x, y := x0+value(st)*pscale, p.depth.Y(st.Height)
		if i == 0 || slices.Contains(p.cfg.DecIncBreaks, st.Name) {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.SetLineWidth(1)
	s.Stroke()

	s.SetLineWidth(0.5)
	for _, st := range sites {
		s.Circle(x0+value(st)*pscale, p.depth.Y(st.Height), siteMarkerRadius)
		s.Stroke()
	}
}

// drawDecIncTable lists each site with its declination and inclination.
// Sites belonging to a block are stacked downward from the block's height
// so that closely spaced sites stay legible; the rest are drawn level with
// their own height.
func (p *page) drawDecIncTable(sites []logdata.Site) {
	index := logdata.SiteIndex(sites)
	inBlock := func(name string) bool {
		for _, b := range p.cfg.PmagBlocks {
			if b.Contains(name) {
				return true
			}
		}
		return false
	}

	for _, st := range sites {
		if inBlock(st.Name) || !p.depth.Contains(st.Height) {
			continue
		}
		p.writeDecInc(st, p.depth.Y(st.Height))
	}
	for _, b := range p.cfg.PmagBlocks {
		if !p.depth.Contains(b.Height) {
			continue
		}
		y0 := p.depth.Y(b.Height)
		for i, name := range b.Sites {
			st, ok := index[name]
			if !ok {
				p.logger.Debug("block site missing from site table", "site", name)
				continue
			}
			p.writeDecInc(st, y0+float64(i)*blockRowSpacing)
		}
	}
}

func (p *page) writeDecInc(st logdata.Site, y float64) {
	s := p.s
	s.AlignText(p.cols.drill2, y, st.Name, sheet.Left, sheet.Middle)
	s.AlignText(p.cols.dec, y, field(st, "dec", st.Dec), sheet.Right, sheet.Middle)
	s.AlignText(p.cols.inc, y, field(st, "inc", st.Inc), sheet.Right, sheet.Middle)
}

// field returns the site's raw text for a column, falling back to the
// parsed value.
func field(st logdata.Site, name string, v float64) string {
	if raw := st.Field(name); raw != "" {
		return raw
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
