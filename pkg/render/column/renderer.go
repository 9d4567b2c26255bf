package column

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/pont-us/sedlog-ffq/pkg/config"
	"github.com/pont-us/sedlog-ffq/pkg/errors"
	"github.com/pont-us/sedlog-ffq/pkg/logdata"
	"github.com/pont-us/sedlog-ffq/pkg/render/pattern"
	"github.com/pont-us/sedlog-ffq/pkg/render/sheet"
	"github.com/pont-us/sedlog-ffq/pkg/scale"
)

// Data is the loaded input of a run.
type Data struct {
	Beds   []logdata.Bed
	MagSus []logdata.Sample
	Sites  []logdata.Site
}

// Stats counts what was drawn on a page.
type Stats struct {
	Beds        int
	Calc        int
	Burrows     int
	Wood        int
	Glauconite  int
	SiteLabels  int
	Suppressed  int
	MagSusSpots int
}

// Page is a rendered page.
type Page struct {
	Range config.PageRange
	Name  string
	Sheet *sheet.Sheet
	State *State
	Stats Stats
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option { return func(r *Renderer) { r.logger = l } }

// WithSeeds sets the seeds of the random sandstone and mottling tiles.
func WithSeeds(sand, mottle uint64) Option {
	return func(r *Renderer) {
		r.sand = pattern.Sand(sand)
		r.mottle = pattern.BurrowMottle(mottle)
	}
}

// Renderer draws the pages of one sheet.
type Renderer struct {
	cfg   *config.Config
	sheet *config.Sheet
	set   config.Settings
	cols  columns
	style config.Style

	sand, silt, mottle pattern.Tile

	logger *log.Logger
}

// New returns a renderer for sheet sh of cfg.
func New(cfg *config.Config, sh *config.Sheet, opts ...Option) *Renderer {
	set, cols := cfg.Resolved(sh)
	r := &Renderer{
		cfg:    cfg,
		sheet:  sh,
		set:    set,
		cols:   newColumns(cols),
		style:  cfg.Style,
		sand:   pattern.Sand(pattern.SandSeed),
		silt:   pattern.Silt(),
		mottle: pattern.BurrowMottle(pattern.MottleSeed),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// PageSize returns the width and height in points of a page covering pr.
func (r *Renderer) PageSize(pr config.PageRange) (float64, float64) {
	h := r.sheet.Scale*(pr.Top-pr.Bottom) + r.style.TopMargin + r.style.BottomMargin
	return scale.Pt(r.style.PageWidthMm), h
}

// Render draws the page covering pr.
func (r *Renderer) Render(data *Data, pr config.PageRange) (*Page, error) {
	w, h := r.PageSize(pr)
	s, err := sheet.New(w, h, r.style.FontSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "load fonts")
	}

	p := &page{
		Renderer: r,
		s:        s,
		depth:    scale.NewDepth(pr.Bottom, pr.Top, r.sheet.Scale, r.style.TopMargin),
		pr:       pr,
		state:    NewState(),
	}
	p.draw(data)

	r.logger.Debug("page drawn",
		"sheet", r.sheet.Name,
		"bottom", pr.Bottom,
		"top", pr.Top,
		"beds", p.stats.Beds,
		"suppressed", p.stats.Suppressed)

	return &Page{
		Range: pr,
		Name:  r.sheet.OutputName(pr.Bottom),
		Sheet: s,
		State: p.state,
		Stats: p.stats,
	}, nil
}

// page holds the working state while one page is drawn.
type page struct {
	*Renderer
	s     *sheet.Sheet
	depth scale.Depth
	pr    config.PageRange
	state *State
	stats Stats
}

func (p *page) draw(data *Data) {
	if o := p.sheet.Overlay; o != nil {
		for _, a := range o.Annotations {
			p.drawAnnotation(o, a)
		}
	}

	p.drawMagSus(data.MagSus)

	for i := range data.Beds {
		b := &data.Beds[i]
		if !b.InRange(p.pr.Bottom, p.pr.Top) {
			continue
		}
		var next *logdata.Bed
		if i > 0 {
			next = &data.Beds[i-1]
		}
		p.drawBed(b, next)
	}

	p.drawAxis()
	p.drawHeader()
	if p.set.DecIncGraph {
		p.drawDecIncGraph(data.Sites)
	}
	if p.set.DecIncTable {
		p.drawDecIncTable(data.Sites)
	}
	for _, f := range p.cfg.Formations[p.sheet.Formations] {
		p.drawFormation(f)
	}
	if o := p.sheet.Overlay; o != nil {
		p.drawCurrents(o)
	}
	if l := p.sheet.Legend; l != nil && p.pr.Index == 0 {
		p.drawLegend(l.X, l.Y)
	}
}

// columns holds column positions converted to points.
type columns struct {
	scale, fmn, lith, magsus, drill float64
	colour, notes, drill2, dec, inc float64
	decGraph, incGraph              float64
	showColour, showNotes           bool
}

func newColumns(c config.Columns) columns {
	return columns{
		scale:      scale.Pt(c.Scale),
		fmn:        scale.Pt(c.Formation),
		lith:       scale.Pt(c.Lith),
		magsus:     scale.Pt(c.MagSus),
		drill:      scale.Pt(c.Drill),
		colour:     scale.Pt(c.Colour),
		notes:      scale.Pt(c.Notes),
		drill2:     scale.Pt(c.Drill2),
		dec:        scale.Pt(c.Dec),
		inc:        scale.Pt(c.Inc),
		decGraph:   scale.Pt(c.DecGraph),
		incGraph:   scale.Pt(c.IncGraph),
		showColour: !c.HideColour,
		showNotes:  !c.HideNotes,
	}
}
