package column

import (
	"strings"

	"github.com/pont-us/sedlog-ffq/pkg/config"
	"github.com/pont-us/sedlog-ffq/pkg/render/sheet"
	"github.com/pont-us/sedlog-ffq/pkg/render/symbols"
	"github.com/pont-us/sedlog-ffq/pkg/scale"
)

const (
	bracketWidth    = 4.0
	roseOffset      = 17.0
	roseRadius      = 10.0
	currentTextX    = 8.0
	currentTextRise = 12.0
	currentLeading  = 10.0
)

func overlayScale(o *config.Overlay) scale.Page {
	return scale.NewPage(o.Page.Top, o.Page.Bottom, scale.Pt(o.Page.PageTopMm), scale.Pt(o.Page.PageBottomMm))
}

// CurrentLines returns the text drawn beside a palaeocurrent bracket that
// has no direction.
func CurrentLines(c config.Current) []string {
	if c.Text == "" {
		return strings.Fields("No current detected")
	}
	return strings.Split(c.Text, "|")
}

// drawCurrents draws a bracket for each palaeocurrent interval, with a
// direction rose or a text note beside it.
func (p *page) drawCurrents(o *config.Overlay) {
	s := p.s
	ps := overlayScale(o)
	x := o.X
	s.SetGray(0)
	s.SetLineWidth(0.5)
	for _, c := range o.Currents {
		yb, yt := ps.Pos(c.Bottom), ps.Pos(c.Top)
		s.MoveTo(x, yb)
		s.LineTo(x+bracketWidth, yb)
		s.LineTo(x+bracketWidth, yt)
		s.LineTo(x, yt)
		s.Stroke()

		mid := ps.Pos((c.Bottom + c.Top) / 2)
		if c.Direction != nil {
			symbols.Direction(s, x+roseOffset, mid, roseRadius, *c.Direction)
			continue
		}
		s.WriteLines(x+currentTextX, mid-currentTextRise, currentLeading, CurrentLines(c))
	}
}

// drawAnnotation draws a thick grey marker line across the log at the
// annotation's height, labelled at its right end.
func (p *page) drawAnnotation(o *config.Overlay, a config.Annotation) {
	s := p.s
	y := overlayScale(o).Pos(a.Height)
	s.Push()
	s.SetLineWidth(2)
	s.SetGray(0.3)
	s.MoveTo(a.X, y)
	s.LineTo(a.X+a.Width, y)
	s.Stroke()
	s.Pop()
	s.SetGray(0)
	s.AlignText(a.X+a.Width+2, y, a.Text, sheet.Left, sheet.Middle)
}
