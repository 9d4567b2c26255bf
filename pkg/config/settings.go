package config

// Settings are the layout and declutter thresholds of a log. Distances
// are in points.
type Settings struct {
	// FormationNameOffset moves formation names along their bracket.
	FormationNameOffset float64 `toml:"fmn_name_offset" yaml:"fmn_name_offset"`

	// StaggerPmag spreads consecutive site labels over three sub-columns.
	StaggerPmag bool    `toml:"stagger_pmag" yaml:"stagger_pmag"`
	PmagStagger float64 `toml:"pmag_stagger" yaml:"pmag_stagger"`

	// SpecialPmagOffsets pins the stagger step of particular sites.
	SpecialPmagOffsets map[string]int `toml:"special_pmag_offsets" yaml:"special_pmag_offsets"`

	// GlcVOffset is the vertical offset of glaucony glyphs below a bed top.
	GlcVOffset float64 `toml:"glc_voffset" yaml:"glc_voffset"`
	// GlcInterval suppresses glaucony glyphs closer than this unless the
	// content changes.
	GlcInterval float64 `toml:"glc_int" yaml:"glc_int"`
	// GlcMinInterval suppresses glaucony glyphs closer than this even when
	// the content changes.
	GlcMinInterval float64 `toml:"glc_int_2" yaml:"glc_int_2"`
	// SymbolInterval suppresses repeated burrow, wood and calcareous
	// symbols closer than this.
	SymbolInterval float64 `toml:"symb_int" yaml:"symb_int"`

	// AllDrillSites draws every site label; otherwise only ValidSites.
	AllDrillSites bool `toml:"all_drill_sites" yaml:"all_drill_sites"`

	DecIncGraph bool `toml:"decinc_graph" yaml:"decinc_graph"`
	DecIncTable bool `toml:"decinc_table" yaml:"decinc_table"`
}

// Overrides changes settings and columns for a single sheet. Nil fields
// leave the project-wide value in place.
type Overrides struct {
	FormationNameOffset *float64 `toml:"fmn_name_offset,omitempty" yaml:"fmn_name_offset,omitempty"`
	StaggerPmag         *bool    `toml:"stagger_pmag,omitempty" yaml:"stagger_pmag,omitempty"`
	GlcVOffset          *float64 `toml:"glc_voffset,omitempty" yaml:"glc_voffset,omitempty"`
	GlcInterval         *float64 `toml:"glc_int,omitempty" yaml:"glc_int,omitempty"`
	GlcMinInterval      *float64 `toml:"glc_int_2,omitempty" yaml:"glc_int_2,omitempty"`
	SymbolInterval      *float64 `toml:"symb_int,omitempty" yaml:"symb_int,omitempty"`
	AllDrillSites       *bool    `toml:"all_drill_sites,omitempty" yaml:"all_drill_sites,omitempty"`
	DecIncGraph         *bool    `toml:"decinc_graph,omitempty" yaml:"decinc_graph,omitempty"`
	DecIncTable         *bool    `toml:"decinc_table,omitempty" yaml:"decinc_table,omitempty"`
	HideColour          *bool    `toml:"hide_colour,omitempty" yaml:"hide_colour,omitempty"`
	HideNotes           *bool    `toml:"hide_notes,omitempty" yaml:"hide_notes,omitempty"`
	ColumnShift         float64  `toml:"column_shift,omitempty" yaml:"column_shift,omitempty"`
}

func (o Overrides) apply(s Settings) Settings {
	setFloat(&s.FormationNameOffset, o.FormationNameOffset)
	setBool(&s.StaggerPmag, o.StaggerPmag)
	setFloat(&s.GlcVOffset, o.GlcVOffset)
	setFloat(&s.GlcInterval, o.GlcInterval)
	setFloat(&s.GlcMinInterval, o.GlcMinInterval)
	setFloat(&s.SymbolInterval, o.SymbolInterval)
	setBool(&s.AllDrillSites, o.AllDrillSites)
	setBool(&s.DecIncGraph, o.DecIncGraph)
	setBool(&s.DecIncTable, o.DecIncTable)
	return s
}

func (o Overrides) applyColumns(c Columns) Columns {
	setBool(&c.HideColour, o.HideColour)
	setBool(&c.HideNotes, o.HideNotes)
	return c.Shift(o.ColumnShift)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Float returns a pointer to v, for building Overrides literals.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for building Overrides literals.
func Bool(v bool) *bool { return &v }
