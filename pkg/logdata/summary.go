package logdata

import (
	"math"
	"sort"
)

// Summary describes a loaded bed table.
type Summary struct {
	Beds        int
	Bottom, Top float64
	Thickness   float64
	Liths       map[string]int
	Grains      map[string]int
	Sites       []string
	MagSusSpots int
}

// Summarize computes aggregate statistics over beds.
// Bottom and Top are zero for an empty table.
func Summarize(beds []Bed) Summary {
	s := Summary{
		Liths:  make(map[string]int),
		Grains: make(map[string]int),
	}
	if len(beds) == 0 {
		return s
	}
	s.Bottom, s.Top = math.Inf(1), math.Inf(-1)
	for i := range beds {
		b := &beds[i]
		s.Beds++
		s.Bottom = math.Min(s.Bottom, b.Base)
		s.Top = math.Max(s.Top, b.Top())
		s.Thickness += b.Thickness
		s.Liths[b.Lith]++
		if b.Grain != "" {
			s.Grains[b.Grain]++
		}
		if b.Drill != "" {
			s.Sites = append(s.Sites, b.Drill)
		}
		if b.HasMagSus() {
			s.MagSusSpots++
		}
	}
	return s
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
