// Package config describes a sedlog project: where the input tables live,
// how the columns of the log are laid out, the declutter thresholds, the
// formation brackets and the list of sheets to draw.
//
// A project file is TOML (or YAML when its extension is .yaml or .yml).
// Every field is optional; values that are not given keep the defaults of
// Default, which reproduce the Fairfield Quarry log set.
//
//	[inputs]
//	beds = "input-data/sed-data.csv"
//
//	[[sheets]]
//	name = "detail"
//	intervals = [2100, 2400, 2700, 3000]
//	scale = 2.0
//	formations = "paged"
//	filename = "ffq%04d"
package config

import (
	"fmt"
	"strings"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// Output formats.
const (
	FormatPDF = "pdf"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF: true,
	FormatSVG: true,
	FormatPNG: true,
}

// Config is a complete project description.
type Config struct {
	Inputs   Inputs   `toml:"inputs" yaml:"inputs"`
	Output   Output   `toml:"output" yaml:"output"`
	Style    Style    `toml:"style" yaml:"style"`
	Columns  Columns  `toml:"columns" yaml:"columns"`
	Settings Settings `toml:"settings" yaml:"settings"`

	// Formations holds named sets of formation brackets; sheets refer to a
	// set by name.
	Formations map[string][]Formation `toml:"formations" yaml:"formations"`

	// PmagBlocks lists runs of closely spaced sites whose table rows are
	// stacked from a common height instead of each site's own height.
	PmagBlocks []PmagBlock `toml:"pmag_blocks" yaml:"pmag_blocks"`

	// DecIncBreaks names the sites at which the declination and
	// inclination curves restart instead of connecting to the previous site.
	DecIncBreaks []string `toml:"decinc_breaks" yaml:"decinc_breaks"`

	// ValidSites lists the (lower-case) site names drawn when a sheet turns
	// off AllDrillSites.
	ValidSites []string `toml:"valid_sites" yaml:"valid_sites"`

	Sheets []Sheet `toml:"sheets" yaml:"sheets"`
}

// Inputs locates the data tables. Relative paths are resolved against the
// directory of the project file.
type Inputs struct {
	Beds   string `toml:"beds" yaml:"beds"`
	MagSus string `toml:"magsus" yaml:"magsus"`
	Sites  string `toml:"sites" yaml:"sites"`
}

// Output controls where and how pages are written.
type Output struct {
	Dir     string   `toml:"dir" yaml:"dir"`
	Formats []string `toml:"formats" yaml:"formats"`
	Booklet bool     `toml:"booklet" yaml:"booklet"`
}

// Grain is one grain-size class of the lithology column.
type Grain struct {
	Code  string `toml:"code" yaml:"code"`
	Label string `toml:"label" yaml:"label"`
}

// Style holds page geometry and drawing constants. Lengths are in points
// unless the field name says otherwise.
type Style struct {
	PageWidthMm     float64 `toml:"page_width_mm" yaml:"page_width_mm"`
	TopMargin       float64 `toml:"top_margin" yaml:"top_margin"`
	BottomMargin    float64 `toml:"bottom_margin" yaml:"bottom_margin"`
	FontSize        float64 `toml:"font_size" yaml:"font_size"`
	LithWidth       float64 `toml:"lith_width" yaml:"lith_width"`
	NotExposedWidth float64 `toml:"not_exposed_width" yaml:"not_exposed_width"`
	MagSusScale     float64 `toml:"magsus_scale" yaml:"magsus_scale"`
	AxisInterval    float64 `toml:"axis_interval" yaml:"axis_interval"`
	AxisUnit        float64 `toml:"axis_unit" yaml:"axis_unit"`
	Grains          []Grain `toml:"grains" yaml:"grains"`
}

// GrainIndex returns the position of code in the grain-size list, or -1.
func (s Style) GrainIndex(code string) int {
	for i, g := range s.Grains {
		if g.Code == code {
			return i
		}
	}
	return -1
}

// Formation is a named stratigraphic unit drawn as a bracket.
type Formation struct {
	Name   string  `toml:"name" yaml:"name"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Top    float64 `toml:"top" yaml:"top"`
}

// PmagBlock is a run of sites tabulated from a common height.
type PmagBlock struct {
	Sites  []string `toml:"sites" yaml:"sites"`
	Height float64  `toml:"height" yaml:"height"`
}

// Contains reports whether site belongs to the block.
func (b PmagBlock) Contains(site string) bool {
	for _, s := range b.Sites {
		if s == site {
			return true
		}
	}
	return false
}

// Validate checks the configuration for errors that would otherwise only
// surface halfway through a run.
func (c *Config) Validate() error {
	if c.Inputs.Beds == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "inputs.beds is required")
	}
	for _, f := range c.Output.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: pdf, svg, png)", f)
		}
	}
	if c.Style.LithWidth <= 0 || c.Style.FontSize <= 0 || c.Style.PageWidthMm <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style: page width, font size and lith width must be positive")
	}
	if c.Style.AxisInterval <= 0 || c.Style.AxisUnit <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style: axis interval and unit must be positive")
	}
	if len(c.Style.Grains) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style: at least one grain size is required")
	}
	for name, set := range c.Formations {
		for _, f := range set {
			if f.Top <= f.Bottom {
				return errors.New(errors.ErrCodeInvalidConfig, "formation %q in set %q: top must be above bottom", f.Name, name)
			}
		}
	}
	if len(c.Sheets) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "no sheets defined")
	}

	seen := make(map[string]bool, len(c.Sheets))
	for i := range c.Sheets {
		s := &c.Sheets[i]
		if err := s.validate(c); err != nil {
			return err
		}
		if seen[s.Name] {
			return errors.New(errors.ErrCodeInvalidSheet, "duplicate sheet name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Sheet returns the sheet with the given name.
func (c *Config) Sheet(name string) (*Sheet, bool) {
	for i := range c.Sheets {
		if c.Sheets[i].Name == name {
			return &c.Sheets[i], true
		}
	}
	return nil, false
}

// SheetNames returns the names of all sheets in definition order.
func (c *Config) SheetNames() []string {
	names := make([]string, len(c.Sheets))
	for i, s := range c.Sheets {
		names[i] = s.Name
	}
	return names
}

// NeedsSites reports whether any sheet draws paleomagnetic directions.
func (c *Config) NeedsSites() bool {
	for _, s := range c.Sheets {
		set := s.Overrides.apply(c.Settings)
		if set.DecIncGraph || set.DecIncTable {
			return true
		}
	}
	return false
}

// IsValidSite reports whether site is in the valid-site list
// (case-insensitive).
func (c *Config) IsValidSite(site string) bool {
	site = strings.ToLower(site)
	for _, v := range c.ValidSites {
		if strings.ToLower(v) == site {
			return true
		}
	}
	return false
}

// Resolved returns the settings and columns in effect for sheet s.
func (c *Config) Resolved(s *Sheet) (Settings, Columns) {
	return s.Overrides.apply(c.Settings), s.Overrides.applyColumns(c.Columns)
}

func (c *Config) String() string {
	return fmt.Sprintf("config(%d sheets, beds=%s)", len(c.Sheets), c.Inputs.Beds)
}
