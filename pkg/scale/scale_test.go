package scale

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestUnitConversion(t *testing.T) {
	if !approx(Pt(25.4), 72) {
		t.Errorf("Pt(25.4) = %v, want 72", Pt(25.4))
	}
	if !approx(Mm(Pt(160)), 160) {
		t.Errorf("Mm(Pt(160)) = %v, want 160", Mm(Pt(160)))
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name                   string
		srcMin, srcMax         float64
		dstMin, dstMax         float64
		in, wantPos, wantLen   float64
	}{
		{"identity", 0, 10, 0, 10, 5, 5, 5},
		{"doubling", 0, 10, 0, 20, 5, 10, 10},
		{"offset", 100, 200, 50, 150, 150, 100, 50},
		{"reversed", 29.5, 5.5, Pt(12), Pt(215), 29.5, Pt(12), 29.5 * (Pt(215) - Pt(12)) / -24},
		{"degenerate", 3, 3, 7, 9, 100, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.srcMin, tt.srcMax, tt.dstMin, tt.dstMax)
			if got := s.Pos(tt.in); !approx(got, tt.wantPos) {
				t.Errorf("Pos(%v) = %v, want %v", tt.in, got, tt.wantPos)
			}
			if got := s.Length(tt.in); !approx(got, tt.wantLen) {
				t.Errorf("Length(%v) = %v, want %v", tt.in, got, tt.wantLen)
			}
		})
	}
}

func TestPage(t *testing.T) {
	p := NewPage(29.5, 5.5, Pt(12), Pt(215))
	if !approx(p.Pos(29.5), Pt(12)) {
		t.Errorf("top maps to %v", p.Pos(29.5))
	}
	if !approx(p.Pos(5.5), Pt(215)) {
		t.Errorf("bottom maps to %v", p.Pos(5.5))
	}
	if p.Pos(20) <= p.Pos(25) {
		t.Error("lower heights should be further down the page")
	}
}

func TestDepth(t *testing.T) {
	d := NewDepth(2100, 2400, 2, 24)
	if got := d.Y(2400); got != 24 {
		t.Errorf("Y(top) = %v, want 24", got)
	}
	if got := d.Y(2100); got != 624 {
		t.Errorf("Y(bottom) = %v, want 624", got)
	}
	if got := d.Length(15); got != 30 {
		t.Errorf("Length(15) = %v, want 30", got)
	}
	if d.Span() != 300 {
		t.Errorf("Span = %v", d.Span())
	}
	s := d.Scale()
	for _, h := range []float64{2100, 2250, 2400} {
		if !approx(s.Pos(h), d.Y(h)) {
			t.Errorf("Scale().Pos(%v) = %v, want %v", h, s.Pos(h), d.Y(h))
		}
	}
	if !d.Contains(2100) || d.Contains(2401) {
		t.Error("Contains boundaries wrong")
	}
}
