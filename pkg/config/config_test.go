package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := len(cfg.Sheets); got != 4 {
		t.Fatalf("len(Sheets) = %d, want 4", got)
	}
	want := []string{"detail", "overview", "entire", "entire-pmag"}
	for i, name := range cfg.SheetNames() {
		if name != want[i] {
			t.Errorf("sheet %d = %q, want %q", i, name, want[i])
		}
	}
}

func TestSheetPages(t *testing.T) {
	cfg := Default()
	s, ok := cfg.Sheet("detail")
	if !ok {
		t.Fatal("detail sheet missing")
	}
	pages := s.Pages()
	if len(pages) != 3 {
		t.Fatalf("len(Pages) = %d, want 3", len(pages))
	}
	wantBottoms := []float64{2100, 2400, 2700}
	for i, p := range pages {
		if p.Bottom != wantBottoms[i] || p.Top != wantBottoms[i]+300 || p.Index != i {
			t.Errorf("page %d = %+v", i, p)
		}
	}
	if got := s.OutputName(pages[0].Bottom); got != "ffq2100" {
		t.Errorf("OutputName = %q, want ffq2100", got)
	}

	entire, _ := cfg.Sheet("entire")
	if got := entire.OutputName(500); got != "ffq-log-entire" {
		t.Errorf("OutputName = %q, want ffq-log-entire", got)
	}
	if got := (&Sheet{Filename: "log%04d"}).OutputName(500); got != "log0500" {
		t.Errorf("OutputName = %q, want log0500", got)
	}
	if got := (&Sheet{Filename: "100%%-%d"}).OutputName(500); got != "100%-500" {
		t.Errorf("OutputName = %q, want 100%%-500", got)
	}
	if got := (&Sheet{Filename: "log-%s"}).OutputName(500); got != "log-%s" {
		t.Errorf("OutputName with a string verb = %q, want it unchanged", got)
	}
	if pages := (&Sheet{Intervals: []float64{1}}).Pages(); pages != nil {
		t.Errorf("single boundary Pages() = %v, want nil", pages)
	}
}

func TestResolvedOverrides(t *testing.T) {
	cfg := Default()

	detail, _ := cfg.Sheet("detail")
	set, cols := cfg.Resolved(detail)
	if set.StaggerPmag || set.GlcInterval != 20 || set.FormationNameOffset != -8 {
		t.Errorf("detail settings = %+v", set)
	}
	if cols.HideColour || cols.HideNotes {
		t.Error("detail should show colour and notes")
	}

	entire, _ := cfg.Sheet("entire")
	set, cols = cfg.Resolved(entire)
	if !set.StaggerPmag || set.GlcInterval != 49 || set.GlcMinInterval != 31 || set.GlcVOffset != 10 {
		t.Errorf("entire settings = %+v", set)
	}
	if !cols.HideColour || !cols.HideNotes {
		t.Error("entire should hide colour and notes")
	}
	if !set.AllDrillSites || set.DecIncGraph {
		t.Error("entire should draw all sites and no graph")
	}

	pmag, _ := cfg.Sheet("entire-pmag")
	set, _ = cfg.Resolved(pmag)
	if set.AllDrillSites || !set.DecIncGraph {
		t.Errorf("entire-pmag settings = %+v", set)
	}
	if !cfg.NeedsSites() {
		t.Error("NeedsSites() = false, want true")
	}

	// Project-wide values are untouched.
	if cfg.Settings.StaggerPmag {
		t.Error("Resolved modified project settings")
	}
}

func TestColumnsShift(t *testing.T) {
	c := DefaultColumns().Shift(34)
	if c.Scale != 7 {
		t.Errorf("Scale = %v, want 7 (unshifted)", c.Scale)
	}
	if c.Lith != 50 || c.IncGraph != 158 {
		t.Errorf("shifted columns = %+v", c)
	}
}

func TestIsValidSite(t *testing.T) {
	cfg := Default()
	tests := []struct {
		site string
		want bool
	}{
		{"K5", true},
		{"k5", true},
		{"B2", true},
		{"A1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := cfg.IsValidSite(tt.site); got != tt.want {
			t.Errorf("IsValidSite(%q) = %v, want %v", tt.site, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.Code
	}{
		{"missing beds", func(c *Config) { c.Inputs.Beds = "" }, errors.ErrCodeInvalidConfig},
		{"bad format", func(c *Config) { c.Output.Formats = []string{"gif"} }, errors.ErrCodeInvalidFormat},
		{"no sheets", func(c *Config) { c.Sheets = nil }, errors.ErrCodeInvalidConfig},
		{"decreasing intervals", func(c *Config) { c.Sheets[0].Intervals = []float64{300, 200} }, errors.ErrCodeInvalidConfig},
		{"zero scale", func(c *Config) { c.Sheets[0].Scale = 0 }, errors.ErrCodeInvalidConfig},
		{"unknown formation set", func(c *Config) { c.Sheets[0].Formations = "nope" }, errors.ErrCodeInvalidConfig},
		{"bad sheet name", func(c *Config) { c.Sheets[0].Name = "a b" }, errors.ErrCodeInvalidSheet},
		{"duplicate sheet", func(c *Config) { c.Sheets[1].Name = c.Sheets[0].Name }, errors.ErrCodeInvalidSheet},
		{"fixed name for many pages", func(c *Config) { c.Sheets[0].Filename = "fixed" }, errors.ErrCodeInvalidConfig},
		{"traversal", func(c *Config) { c.Sheets[0].Filename = "../ffq%04d" }, errors.ErrCodeInvalidConfig},
		{"string verb", func(c *Config) { c.Sheets[0].Filename = "log-%s" }, errors.ErrCodeInvalidConfig},
		{"float verb on one page", func(c *Config) { c.Sheets[1].Filename = "log-%.1f" }, errors.ErrCodeInvalidConfig},
		{"two verbs", func(c *Config) { c.Sheets[0].Filename = "log%d-%d" }, errors.ErrCodeInvalidConfig},
		{"inverted formation", func(c *Config) { c.Formations["paged"][0].Top = 0 }, errors.ErrCodeInvalidConfig},
		{"no grains", func(c *Config) { c.Style.Grains = nil }, errors.ErrCodeInvalidConfig},
		{"empty overlay page", func(c *Config) { c.Sheets[3].Overlay.Page.Bottom = 29.5 }, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestParseTOMLMergesOverDefaults(t *testing.T) {
	cfg, err := ParseTOML([]byte(`
[settings]
symb_int = 30

[columns]
lith = 20.0

[output]
dir = "build"
`))
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}
	if cfg.Settings.SymbolInterval != 30 {
		t.Errorf("SymbolInterval = %v, want 30", cfg.Settings.SymbolInterval)
	}
	if cfg.Settings.GlcInterval != 20 {
		t.Errorf("GlcInterval = %v, want default 20", cfg.Settings.GlcInterval)
	}
	if cfg.Columns.Lith != 20 || cfg.Columns.MagSus != 65 {
		t.Errorf("Columns = %+v", cfg.Columns)
	}
	if cfg.Output.Dir != "build" || len(cfg.Output.Formats) != 1 {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if len(cfg.Sheets) != 4 || len(cfg.PmagBlocks) != 5 || len(cfg.Style.Grains) != 3 {
		t.Error("lists not restored to defaults")
	}
}

func TestParseTOMLSheetsReplaceDefaults(t *testing.T) {
	cfg, err := ParseTOML([]byte(`
[[sheets]]
name = "only"
intervals = [0, 100]
scale = 1.5
filename = "only"
`))
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}
	if len(cfg.Sheets) != 1 {
		t.Fatalf("len(Sheets) = %d, want 1", len(cfg.Sheets))
	}
	s := cfg.Sheets[0]
	if s.Formations != "" || s.Overlay != nil || s.Legend != nil {
		t.Errorf("sheet inherited default fields: %+v", s)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseTOMLUnknownKey(t *testing.T) {
	_, err := ParseTOML([]byte("[settings]\nsymbol_int = 3\n"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestParseYAML(t *testing.T) {
	cfg, err := ParseYAML([]byte(`
settings:
  stagger_pmag: true
output:
  formats: [svg, png]
sheets:
  - name: top
    intervals: [2100, 3000]
    scale: 0.5
    formations: summary
    filename: top
    overrides:
      glc_int: 5
`))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if !cfg.Settings.StaggerPmag {
		t.Error("StaggerPmag not set")
	}
	if strings.Join(cfg.Output.Formats, ",") != "svg,png" {
		t.Errorf("Formats = %v", cfg.Output.Formats)
	}
	if len(cfg.Sheets) != 1 || *cfg.Sheets[0].Overrides.GlcInterval != 5 {
		t.Errorf("Sheets = %+v", cfg.Sheets)
	}
	if len(cfg.ValidSites) != 31 {
		t.Errorf("len(ValidSites) = %d, want 31", len(cfg.ValidSites))
	}
}

func TestLoadResolvesInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.toml")
	if err := os.WriteFile(path, []byte("[inputs]\nbeds = \"data/beds.csv\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(dir, "data", "beds.csv"); cfg.Inputs.Beds != want {
		t.Errorf("Beds = %q, want %q", cfg.Inputs.Beds, want)
	}
	if want := filepath.Join(dir, "input-data", "ms.txt"); cfg.Inputs.MagSus != want {
		t.Errorf("MagSus = %q, want %q", cfg.Inputs.MagSus, want)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	cfg, err := ParseTOML(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseTOML(Encode()): %v\n%s", err, buf.String())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	pmag, ok := cfg.Sheet("entire-pmag")
	if !ok || pmag.Overlay == nil || len(pmag.Overlay.Currents) != 4 {
		t.Fatalf("overlay lost in round trip: %+v", pmag)
	}
	if pmag.Overlay.Currents[3].Direction != nil {
		t.Error("text current gained a direction")
	}
}
