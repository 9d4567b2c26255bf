package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// Sheet is one family of pages drawn at a common scale.
type Sheet struct {
	Name string `toml:"name" yaml:"name"`

	// Intervals are consecutive page boundaries in stratigraphic height
	// units; n boundaries give n-1 pages.
	Intervals []float64 `toml:"intervals" yaml:"intervals"`

	// Scale is the number of points per height unit.
	Scale float64 `toml:"scale" yaml:"scale"`

	// Formations names the formation set drawn on the sheet.
	Formations string `toml:"formations" yaml:"formations"`

	// Filename is the output name without extension. A printf verb is
	// replaced by the integer page bottom ("ffq%04d").
	Filename string `toml:"filename" yaml:"filename"`

	// Legend is drawn on the first page only.
	Legend *Point `toml:"legend,omitempty" yaml:"legend,omitempty"`

	Overrides Overrides `toml:"overrides" yaml:"overrides"`
	Overlay   *Overlay  `toml:"overlay,omitempty" yaml:"overlay,omitempty"`
}

// Point is a position in points from the top-left corner of the page.
type Point struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// PageRange is the stratigraphic extent of a single page.
type PageRange struct {
	Index  int
	Bottom float64
	Top    float64
}

// Pages splits the sheet's intervals into consecutive page ranges.
func (s *Sheet) Pages() []PageRange {
	if len(s.Intervals) < 2 {
		return nil
	}
	pages := make([]PageRange, 0, len(s.Intervals)-1)
	for i := 0; i+1 < len(s.Intervals); i++ {
		pages = append(pages, PageRange{Index: i, Bottom: s.Intervals[i], Top: s.Intervals[i+1]})
	}
	return pages
}

// OutputName returns the file name (without extension) for the page whose
// bottom is at the given height.
// A filename without a valid page verb is returned unchanged.
func (s *Sheet) OutputName(bottom float64) string {
	if n, ok := pageVerbs(s.Filename); n != 1 || !ok {
		return s.Filename
	}
	return fmt.Sprintf(s.Filename, int(bottom))
}

// pageVerb is an integer verb such as %d or %04d.
var pageVerb = regexp.MustCompile(`%[-+ 0]*[0-9]*d`)

// pageVerbs counts the formatting verbs in name, ignoring %%, and reports
// whether all of them are integer verbs.
func pageVerbs(name string) (n int, ok bool) {
	name = strings.ReplaceAll(name, "%%", "")
	n = strings.Count(name, "%")
	return n, len(pageVerb.FindAllString(name, -1)) == n
}

func (s *Sheet) validate(c *Config) error {
	if err := errors.ValidateName(s.Name); err != nil {
		return err
	}
	if len(s.Intervals) < 2 {
		return errors.New(errors.ErrCodeInvalidConfig, "sheet %q: at least two interval boundaries are required", s.Name)
	}
	for i := 1; i < len(s.Intervals); i++ {
		if s.Intervals[i] <= s.Intervals[i-1] {
			return errors.New(errors.ErrCodeInvalidConfig, "sheet %q: intervals must be strictly increasing", s.Name)
		}
	}
	if s.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "sheet %q: scale must be positive", s.Name)
	}
	if s.Formations != "" {
		if _, ok := c.Formations[s.Formations]; !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "sheet %q: unknown formation set %q", s.Name, s.Formations)
		}
	}
	if err := errors.ValidateOutputName(s.Filename); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "sheet %q", s.Name)
	}
	n, ok := pageVerbs(s.Filename)
	switch {
	case !ok || n > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "sheet %q: filename %q may hold one integer verb such as %%d", s.Name, s.Filename)
	case n == 0 && len(s.Intervals) > 2:
		return errors.New(errors.ErrCodeInvalidConfig, "sheet %q: filename %q needs a page verb for %d pages", s.Name, s.Filename, len(s.Intervals)-1)
	}
	if s.Overlay != nil {
		if err := s.Overlay.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "sheet %q", s.Name)
		}
	}
	return nil
}
