package config

// Default returns the configuration that draws the Fairfield Quarry log
// set: detailed pages of the upper section, overview pages of the lower
// section, and two single-page summaries of the whole section.
func Default() *Config {
	return &Config{
		Inputs: Inputs{
			Beds:   "input-data/sed-data.csv",
			MagSus: "input-data/ms.txt",
			Sites:  "input-data/site-incdec.csv",
		},
		Output: Output{
			Dir:     "output",
			Formats: []string{FormatPDF},
		},
		Style:    DefaultStyle(),
		Columns:  DefaultColumns(),
		Settings: DefaultSettings(),
		Formations: map[string][]Formation{
			"paged": {
				{"Fairfield Greensand Member", 500, 740},
				{"Saddle Hill Siltstone Member", 740, 1060},
				{"Steele Greensand Member", 1060, 1300},
				{"Quarries Siltstone Member", 1400, 2100},
				{"Quarries SM", 2100, 2130},
				{"Abbotsford Formation", 2130, 2400},
				{"Abbotsford Formation", 2400, 2700},
				{"Abbotsford Formation", 2700, 3000},
			},
			"summary": {
				{"Fairfield GM", 500, 740},
				{"Saddle Hill SM", 740, 1060},
				{"Steele GM", 1060, 1300},
				{"Quarries Siltstone Member", 1300, 2130},
				{"Abbotsford Formation", 2130, 3000},
			},
		},
		PmagBlocks: []PmagBlock{
			{Sites: []string{"K5", "K3", "K2", "K1"}, Height: 2880},
			{Sites: []string{"H6", "H5", "H4", "H3"}, Height: 2310},
			{Sites: []string{"F8", "D1", "F7"}, Height: 1780},
			{Sites: []string{"D2", "F3"}, Height: 1520},
			{Sites: []string{"C4", "E4", "C3", "E3", "C2", "E2", "C1", "B3"}, Height: 1015},
		},
		DecIncBreaks: []string{"K5", "F8", "C4"},
		ValidSites: []string{
			"k5", "k3", "k2", "k1", "j6", "j3", "i3", "h6", "h5", "h4", "h3",
			"h1", "f8", "d1", "f7", "f6", "d3", "f4", "d2", "f3", "f2", "f1",
			"c4", "e4", "c3", "e3", "c2", "e2", "c1", "b3", "b2",
		},
		Sheets: defaultSheets(),
	}
}

// DefaultStyle returns the page geometry used for all sheets.
func DefaultStyle() Style {
	return Style{
		PageWidthMm:     160,
		TopMargin:       24,
		BottomMargin:    5,
		FontSize:        10,
		LithWidth:       45,
		NotExposedWidth: 100,
		MagSusScale:     50000,
		AxisInterval:    100,
		AxisUnit:        100,
		Grains: []Grain{
			{Code: "clay", Label: "clay"},
			{Code: "silt", Label: "silt"},
			{Code: "vfs", Label: "v. f. sand"},
		},
	}
}

// DefaultColumns returns the standard column positions.
func DefaultColumns() Columns {
	return Columns{
		Scale:     7,
		Formation: 9,
		Lith:      16,
		MagSus:    65,
		Drill:     80,
		Colour:    90,
		Notes:     105,
		Drill2:    102,
		Dec:       118,
		Inc:       129,
		DecGraph:  95,
		IncGraph:  124,
	}
}

// DefaultSettings returns the layout thresholds used for paged sheets.
func DefaultSettings() Settings {
	return Settings{
		FormationNameOffset: -8,
		PmagStagger:         12,
		SpecialPmagOffsets:  map[string]int{"D1": 0, "D2": 1},
		GlcVOffset:          20,
		GlcInterval:         20,
		GlcMinInterval:      1,
		SymbolInterval:      12,
		AllDrillSites:       true,
	}
}

func summaryOverrides() Overrides {
	return Overrides{
		FormationNameOffset: Float(-2),
		StaggerPmag:         Bool(true),
		GlcVOffset:          Float(10),
		GlcInterval:         Float(49),
		GlcMinInterval:      Float(31),
		HideColour:          Bool(true),
		HideNotes:           Bool(true),
	}
}

func defaultSheets() []Sheet {
	pmag := summaryOverrides()
	pmag.AllDrillSites = Bool(false)
	pmag.DecIncGraph = Bool(true)

	return []Sheet{
		{
			Name:       "detail",
			Intervals:  []float64{2100, 2400, 2700, 3000},
			Scale:      2,
			Formations: "paged",
			Filename:   "ffq%04d",
		},
		{
			Name:       "overview",
			Intervals:  []float64{500, 1300, 2100},
			Scale:      0.75,
			Formations: "paged",
			Filename:   "ffq%04d",
			Legend:     &Point{X: 270, Y: 320},
		},
		{
			Name:       "entire",
			Intervals:  []float64{500, 3000},
			Scale:      0.24,
			Formations: "summary",
			Filename:   "ffq-log-entire",
			Legend:     &Point{X: 280, Y: 220},
			Overrides:  summaryOverrides(),
		},
		{
			Name:       "entire-pmag",
			Intervals:  []float64{500, 3000},
			Scale:      0.24,
			Formations: "summary",
			Filename:   "ffq-log-entire-2",
			Overrides:  pmag,
			Overlay:    defaultOverlay(),
		},
	}
}

func defaultOverlay() *Overlay {
	return &Overlay{
		Page: OverlayPage{Top: 29.5, Bottom: 5.5, PageTopMm: 12, PageBottomMm: 215},
		X:    400,
		Currents: []Current{
			{Bottom: 5.5, Top: 7.45, Direction: Float(354.8)},
			{Bottom: 7.55, Top: 8.95, Direction: Float(137.3)},
			{Bottom: 9.05, Top: 11.95, Direction: Float(272.8)},
			{Bottom: 12.05, Top: 29.5, Text: "Inverse|AMS|fabric"},
		},
		Annotations: []Annotation{
			{Height: 21.2, Text: "K-Pg", X: 20, Width: 135},
		},
	}
}
