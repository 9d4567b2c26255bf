package config

// Columns holds the horizontal position, in millimetres from the left edge
// of the sheet, of each column of the log.
type Columns struct {
	Scale     float64 `toml:"scale" yaml:"scale"`
	Formation float64 `toml:"fmn" yaml:"fmn"`
	Lith      float64 `toml:"lith" yaml:"lith"`
	MagSus    float64 `toml:"magsus" yaml:"magsus"`
	Drill     float64 `toml:"drill" yaml:"drill"`
	Colour    float64 `toml:"colour" yaml:"colour"`
	Notes     float64 `toml:"notes" yaml:"notes"`
	Drill2    float64 `toml:"drill2" yaml:"drill2"`
	Dec       float64 `toml:"dec" yaml:"dec"`
	Inc       float64 `toml:"inc" yaml:"inc"`
	DecGraph  float64 `toml:"dec_g" yaml:"dec_g"`
	IncGraph  float64 `toml:"inc_g" yaml:"inc_g"`

	HideColour bool `toml:"hide_colour" yaml:"hide_colour"`
	HideNotes  bool `toml:"hide_notes" yaml:"hide_notes"`
}

// Shift moves every column except the depth scale right by mm.
func (c Columns) Shift(mm float64) Columns {
	if mm == 0 {
		return c
	}
	c.Formation += mm
	c.Lith += mm
	c.MagSus += mm
	c.Drill += mm
	c.Colour += mm
	c.Notes += mm
	c.Drill2 += mm
	c.Dec += mm
	c.Inc += mm
	c.DecGraph += mm
	c.IncGraph += mm
	return c
}
