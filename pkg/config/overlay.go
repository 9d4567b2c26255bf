package config

import "github.com/pont-us/sedlog-ffq/pkg/errors"

// Overlay places interpretations that use their own height scale on top of
// a sheet: palaeocurrent brackets and annotation lines.
type Overlay struct {
	Page        OverlayPage  `toml:"page" yaml:"page"`
	X           float64      `toml:"x" yaml:"x"`
	Currents    []Current    `toml:"currents" yaml:"currents"`
	Annotations []Annotation `toml:"annotations" yaml:"annotations"`
}

// OverlayPage maps the overlay's height range onto the page. PageTopMm and
// PageBottomMm are distances from the top edge.
type OverlayPage struct {
	Top          float64 `toml:"top" yaml:"top"`
	Bottom       float64 `toml:"bottom" yaml:"bottom"`
	PageTopMm    float64 `toml:"page_top_mm" yaml:"page_top_mm"`
	PageBottomMm float64 `toml:"page_bottom_mm" yaml:"page_bottom_mm"`
}

// Current is a palaeocurrent interpretation over a height interval. A nil
// Direction with empty Text means no current was detected.
type Current struct {
	Bottom    float64  `toml:"bottom" yaml:"bottom"`
	Top       float64  `toml:"top" yaml:"top"`
	Direction *float64 `toml:"direction,omitempty" yaml:"direction,omitempty"`
	// Text lines are separated by '|'.
	Text string `toml:"text,omitempty" yaml:"text,omitempty"`
}

// Annotation is a labelled horizontal line at a height.
type Annotation struct {
	Height float64 `toml:"height" yaml:"height"`
	Text   string  `toml:"text" yaml:"text"`
	X      float64 `toml:"x" yaml:"x"`
	Width  float64 `toml:"width" yaml:"width"`
}

func (o *Overlay) validate() error {
	if o.Page.Top == o.Page.Bottom {
		return errors.New(errors.ErrCodeInvalidConfig, "overlay page range is empty")
	}
	for _, c := range o.Currents {
		if c.Top <= c.Bottom {
			return errors.New(errors.ErrCodeInvalidConfig, "current %g-%g: top must be above bottom", c.Bottom, c.Top)
		}
	}
	return nil
}
