package symbols

// bezier is a cubic Bézier curve given by its four control points.
type bezier [4][2]float64

func (b bezier) at(t float64) [2]float64 {
	mt := 1 - t
	var p [2]float64
	for i := range 2 {
		p[i] = mt*mt*mt*b[0][i] + 3*mt*mt*t*b[1][i] + 3*mt*t*t*b[2][i] + t*t*t*b[3][i]
	}
	return p
}

// paramAtX returns the parameter at which the curve reaches x. The curve's
// x coordinate must be monotonic.
func (b bezier) paramAtX(x float64) float64 {
	lo, hi := 0.0, 1.0
	increasing := b[3][0] >= b[0][0]
	for range 50 {
		mid := (lo + hi) / 2
		if (b.at(mid)[0] < x) == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// split returns the part of the curve between parameters 0 and t.
func (b bezier) split(t float64) bezier {
	lerp := func(p, q [2]float64) [2]float64 {
		return [2]float64{p[0] + (q[0]-p[0])*t, p[1] + (q[1]-p[1])*t}
	}
	p01 := lerp(b[0], b[1])
	p12 := lerp(b[1], b[2])
	p23 := lerp(b[2], b[3])
	p012 := lerp(p01, p12)
	p123 := lerp(p12, p23)
	return bezier{b[0], p01, p012, lerp(p012, p123)}
}
