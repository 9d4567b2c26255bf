package symbols

import (
	"math"
	"testing"

	"github.com/pont-us/sedlog-ffq/pkg/render/sheet"
)

func newSheet(t *testing.T) *sheet.Sheet {
	t.Helper()
	s, err := sheet.New(300, 300, 10)
	if err != nil {
		t.Fatalf("sheet.New: %v", err)
	}
	return s
}

func TestGlauconiteCount(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{0, 0},
		{1, 1},
		{5, 1},
		{6, 2},
		{20, 2},
		{21, 3},
		{51, 4},
		{80, 4},
		{81, 5},
		{100, 5},
	}
	for _, tt := range tests {
		if got := GlauconiteCount(tt.pct); got != tt.want {
			t.Errorf("GlauconiteCount(%v) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestGlauconitePositions(t *testing.T) {
	s := newSheet(t)
	Glauconite(s, 10, 50, 40, 21)
	gs := s.Find("g")
	if len(gs) != 3 {
		t.Fatalf("drew %d glyphs, want 3", len(gs))
	}
	for i, g := range gs {
		want := 10 + float64(i+1)*10 - 3
		if math.Abs(g.X-want) > 1e-6 || math.Abs(g.Y-50) > 1e-6 || !g.Bold {
			t.Errorf("glyph %d = %+v, want x=%v bold", i, g, want)
		}
	}

	s = newSheet(t)
	Glauconite(s, 10, 50, 40, 0)
	if len(s.Texts()) != 0 {
		t.Error("zero glaucony drew glyphs")
	}
}

func TestBurrow(t *testing.T) {
	s := newSheet(t)
	Burrow(s, 20, 20, 4, false)
	if len(s.Find("P")) != 0 {
		t.Error("plain burrow marked as pyritized")
	}
	Burrow(s, 20, 20, 4, true)
	ps := s.Find("P")
	if len(ps) != 1 || ps[0].Bold {
		t.Fatalf("pyritized marks = %+v", ps)
	}
	if math.Abs(ps[0].X-23.2) > 1e-6 || math.Abs(ps[0].Y-22.8) > 1e-6 {
		t.Errorf("P at (%v, %v), want (23.2, 22.8)", ps[0].X, ps[0].Y)
	}
}

func TestSymbolsPaint(t *testing.T) {
	s := newSheet(t)
	Calc(s, 50, 50, 4)
	Wood(s, 80, 50, 4)
	IrregularContact(s, 10, 100, 50)
	Direction(s, 100, 100, 10, 354.8)
	IrregularContact(s, 10, 100, 0)
	if s.Paths() < 5 {
		t.Errorf("Paths() = %d, want at least 5", s.Paths())
	}
}

func TestDirectionTurnsClockwise(t *testing.T) {
	tests := []struct {
		deg        float64
		tipX, tipY float64
	}{
		{0, 100, 100 + 9.5},
		{90, 100 - 9.5, 100},
		{180, 100, 100 - 9.5},
	}
	for _, tt := range tests {
		s := newSheet(t)
		Direction(s, 100, 100, 10, tt.deg)
		shapes := s.Shapes()
		if len(shapes) != 3 {
			t.Fatalf("deg %v: %d shapes, want circle with shaft and two heads", tt.deg, len(shapes))
		}
		// The first arrowhead starts at its tip.
		tip := shapes[1].Points[0]
		if math.Abs(tip.X-tt.tipX) > 1e-6 || math.Abs(tip.Y-tt.tipY) > 1e-6 {
			t.Errorf("deg %v: tip = %v, want (%v, %v)", tt.deg, tip, tt.tipX, tt.tipY)
		}
	}
}

func TestContactEndsAtWidth(t *testing.T) {
	s := newSheet(t)
	IrregularContact(s, 10, 100, 50)
	pts := s.Shapes()[0].Points
	last := pts[len(pts)-1]
	if math.Abs(last.X-60) > 1e-6 {
		t.Errorf("contact ends at %v, want x=60", last)
	}
}

func TestBezierSplitEndsAtX(t *testing.T) {
	b := bezier{{0, 0}, {0, -3}, {12, -3}, {12, 0}}
	for _, x := range []float64{0.5, 3, 6, 11.9} {
		part := b.split(b.paramAtX(x))
		if math.Abs(part[3][0]-x) > 1e-6 {
			t.Errorf("split at x=%v ends at %v", x, part[3][0])
		}
		if part[0] != b[0] {
			t.Errorf("split start moved: %v", part[0])
		}
	}
	if mid := b.at(0.5); mid[0] != 6 || mid[1] != -2.25 {
		t.Errorf("at(0.5) = %v, want [6 -2.25]", mid)
	}
}
