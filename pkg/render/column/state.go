package column

import (
	"math"

	"github.com/pont-us/sedlog-ffq/pkg/config"
)

// NoSymbol is the tracker value meaning no symbol has been drawn yet.
const NoSymbol = -1e6

// State is the declutter state of a single page.
type State struct {
	PmagStagger int
	LastBurrow  float64
	LastCalc    float64
	LastWood    float64

	// LastGlc is the lowest bed base at which glaucony was drawn; it is
	// meaningful only when HaveGlc is set.
	LastGlc float64
	HaveGlc bool
}

// NewState returns a fresh page state.
func NewState() *State {
	return &State{
		LastBurrow: NoSymbol,
		LastCalc:   NoSymbol,
		LastWood:   NoSymbol,
	}
}

// Track decides whether a symbol wanted at page position top may be drawn
// given the tracker last. A tracker below top (a bed higher on the page)
// is reset first. When the symbol is drawn the tracker moves to top.
func Track(last *float64, top, interval float64, want bool) bool {
	if top < *last {
		*last = NoSymbol
	}
	if want && top-*last > interval {
		*last = top
		return true
	}
	return false
}

// Glauconite decides whether glaucony glyphs are drawn for a bed with the
// given base height and content. nextGlc is the content of the bed's upper
// neighbour, or nil for the first row of the table.
func (s *State) Glauconite(base, glc float64, nextGlc *float64, set *config.Settings) bool {
	draw := true
	if nextGlc != nil && s.HaveGlc {
		if base > s.LastGlc-set.GlcInterval && *nextGlc == glc {
			draw = false
		}
		if base > s.LastGlc-set.GlcMinInterval {
			draw = false
		}
		if base > s.LastGlc {
			draw = true
		}
	}
	if draw {
		if !s.HaveGlc {
			s.LastGlc = base
			s.HaveGlc = true
		} else {
			s.LastGlc = math.Min(s.LastGlc, base)
		}
	}
	return draw
}

// Stagger returns the horizontal offset of a site label and advances the
// stagger cycle. Sites with a pinned offset restart the cycle there.
func (s *State) Stagger(site string, set *config.Settings) float64 {
	if !set.StaggerPmag {
		return 0
	}
	if step, ok := set.SpecialPmagOffsets[site]; ok {
		s.PmagStagger = step
	}
	offset := float64(s.PmagStagger) * set.PmagStagger
	s.PmagStagger = (s.PmagStagger + 1) % 3
	return offset
}
