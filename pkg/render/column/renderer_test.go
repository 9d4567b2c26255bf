package column

import (
	"math"
	"testing"

	"github.com/pont-us/sedlog-ffq/pkg/config"
	"github.com/pont-us/sedlog-ffq/pkg/logdata"
	"github.com/pont-us/sedlog-ffq/pkg/render/pattern"
	"github.com/pont-us/sedlog-ffq/pkg/render/sheet"
)

func testBeds() []logdata.Bed {
	return []logdata.Bed{
		{
			Base: 2396, Thickness: 4, Grain: "silt", Lith: logdata.LithSiltstone,
			Glauconite: 10, Drill: "K5", Acid: "4", Burrows: "py", Fossils: "wood",
			Colour: "grey", Notes: "first|second", MagSus: "0.0001", Contact: "irr",
		},
		{
			Base: 2390, Thickness: 6, Grain: "vfs", Lith: logdata.LithSandstone,
			Glauconite: 10, Drill: "Z9", Acid: "3", Burrows: "x",
		},
		{Base: 2300, Thickness: 90, Lith: logdata.LithNotExposed},
		{Base: 2000, Thickness: 10, Grain: "silt", Lith: logdata.LithSiltstone, Drill: "K3"},
	}
}

func testSites() []logdata.Site {
	return []logdata.Site{
		{Name: "K5", Height: 2396, Dec: 350, Inc: -60, Raw: map[string]string{"dec": "350.0", "inc": "-60.0"}},
		{Name: "K3", Height: 2390, Dec: 10, Inc: -55},
		{Name: "F8", Height: 1700, Dec: 180, Inc: 40},
	}
}

func render(t *testing.T, cfg *config.Config, name string, pageIndex int, data *Data) *Page {
	t.Helper()
	sh, ok := cfg.Sheet(name)
	if !ok {
		t.Fatalf("no sheet %q", name)
	}
	pages := sh.Pages()
	p, err := New(cfg, sh).Render(data, pages[pageIndex])
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return p
}

func texts(p *Page, text string) []sheet.TextItem {
	return p.Sheet.Find(text)
}

func TestPageSize(t *testing.T) {
	cfg := config.Default()
	sh, _ := cfg.Sheet("detail")
	w, h := New(cfg, sh).PageSize(sh.Pages()[0])
	if math.Abs(w-160*72/25.4) > 1e-9 {
		t.Errorf("width = %v", w)
	}
	if h != 2*300+24+5 {
		t.Errorf("height = %v, want %v", h, 2*300+24+5)
	}
}

func TestRenderDetailPage(t *testing.T) {
	cfg := config.Default()
	p := render(t, cfg, "detail", 0, &Data{Beds: testBeds()})

	if p.Name != "ffq2100" {
		t.Errorf("Name = %q, want ffq2100", p.Name)
	}
	want := Stats{
		Beds:        3,
		Calc:        2,
		Burrows:     1,
		Wood:        1,
		Glauconite:  1,
		SiteLabels:  2,
		Suppressed:  3,
		MagSusSpots: 1,
	}
	if p.Stats != want {
		t.Errorf("Stats = %+v, want %+v", p.Stats, want)
	}

	if n := len(texts(p, "g")); n != 2 {
		t.Errorf("drew %d glaucony glyphs, want 2", n)
	}
	if len(texts(p, "K3")) != 0 {
		t.Error("label of off-page bed drawn")
	}
	for _, label := range []string{"21", "22", "23", "24"} {
		if len(texts(p, label)) != 1 {
			t.Errorf("axis label %q missing", label)
		}
	}
	for _, label := range []string{"h (m)", "clay", "silt", "v. f. sand", "pmag", "mag. sus.", "colour", "grey", "P"} {
		if len(texts(p, label)) == 0 {
			t.Errorf("text %q missing", label)
		}
	}
	for _, label := range []string{"declination", "current", "Siltstone"} {
		if len(texts(p, label)) != 0 {
			t.Errorf("unexpected text %q", label)
		}
	}

	notes := texts(p, "second")
	if len(notes) != 1 || math.Abs(notes[0].Y-(24+4*2+3+8)) > 1e-9 {
		t.Errorf("second note line = %+v", notes)
	}

	fm := texts(p, "Abbotsford Formation")
	if len(fm) != 1 || fm[0].Angle != 90 {
		t.Errorf("formation label = %+v", fm)
	}
	if len(texts(p, "Quarries SM")) != 1 {
		t.Error("Quarries SM bracket missing")
	}
	if len(texts(p, "Steele Greensand Member")) != 0 {
		t.Error("off-page formation drawn")
	}
}

func TestLabelOffset(t *testing.T) {
	cfg := config.Default()
	beds := []logdata.Bed{{Base: 2396, Thickness: 4, Grain: "silt", Lith: "sist", Drill: "J6", LabelOffset: 5}}
	p := render(t, cfg, "detail", 0, &Data{Beds: beds})
	got := texts(p, "J6")
	if len(got) != 1 {
		t.Fatalf("J6 labels = %+v", got)
	}
	bot := 24 + 4*2.0
	if math.Abs(got[0].Y-(bot+3-5)) > 1e-9 {
		t.Errorf("label y = %v, want %v", got[0].Y, bot+3-5)
	}
}

func TestRenderSummaryWithLegend(t *testing.T) {
	cfg := config.Default()
	p := render(t, cfg, "entire", 0, &Data{Beds: testBeds()})

	for _, label := range []string{"Siltstone", "Sandstone", "Burrow mottling", "Glaucony content", "<5%", ">80%", "Fossil wood", "Calcareous"} {
		if len(texts(p, label)) != 1 {
			t.Errorf("legend text %q missing", label)
		}
	}
	if len(texts(p, "colour")) != 0 || len(texts(p, "grey")) != 0 || len(texts(p, "first")) != 0 {
		t.Error("colour or notes shown on summary sheet")
	}
	k5 := texts(p, "K5")
	z9 := texts(p, "Z9")
	if len(k5) != 1 || len(z9) != 1 {
		t.Fatalf("labels K5=%v Z9=%v", k5, z9)
	}
	if math.Abs(z9[0].X-k5[0].X-12) > 1e-9 {
		t.Errorf("stagger = %v, want 12", z9[0].X-k5[0].X)
	}
}

func TestLegendOnlyOnFirstPage(t *testing.T) {
	cfg := config.Default()
	first := render(t, cfg, "overview", 0, &Data{})
	second := render(t, cfg, "overview", 1, &Data{})
	if len(texts(first, "Siltstone")) != 1 {
		t.Error("legend missing on first page")
	}
	if len(texts(second, "Siltstone")) != 0 {
		t.Error("legend drawn on second page")
	}
}

func TestRenderPmagSheet(t *testing.T) {
	cfg := config.Default()
	p := render(t, cfg, "entire-pmag", 0, &Data{Beds: testBeds(), Sites: testSites()})

	if len(texts(p, "Z9")) != 0 {
		t.Error("invalid site label drawn")
	}
	if len(texts(p, "K5")) != 1 {
		t.Error("valid site label missing")
	}
	for _, label := range []string{"declination", "inclination", "current", "360", "K-Pg", "Inverse", "AMS", "fabric"} {
		if len(texts(p, label)) == 0 {
			t.Errorf("text %q missing", label)
		}
	}
	if len(texts(p, "detected")) != 0 {
		t.Error("text current rendered as undetected")
	}
}

func TestDecIncTable(t *testing.T) {
	cfg := config.Default()
	sh, _ := cfg.Sheet("detail")
	sh.Overrides.DecIncTable = config.Bool(true)
	sites := []logdata.Site{
		{Name: "K5", Height: 2950, Raw: map[string]string{"dec": "12.5", "inc": "-61"}},
		{Name: "K3", Height: 2940, Raw: map[string]string{"dec": "8.0", "inc": "-58"}},
		{Name: "J6", Height: 2750, Raw: map[string]string{"dec": "355", "inc": "-70"}},
	}
	p := render(t, cfg, "detail", 2, &Data{Sites: sites})

	ch := p.Sheet.CapHeight()
	y0 := 24 + (3000-2880)*2.0
	tests := []struct {
		site  string
		wantY float64
	}{
		{"K5", y0},
		{"K3", y0 + 10},
		{"J6", 24 + (3000-2750)*2.0},
	}
	for _, tt := range tests {
		got := texts(p, tt.site)
		if len(got) != 1 {
			t.Errorf("%s rows = %+v", tt.site, got)
			continue
		}
		if math.Abs(got[0].Y-(tt.wantY+ch/2)) > 1e-9 {
			t.Errorf("%s at y=%v, want %v", tt.site, got[0].Y, tt.wantY+ch/2)
		}
	}
	if len(texts(p, "12.5")) != 1 || len(texts(p, "-70")) != 1 {
		t.Error("raw dec/inc values not printed")
	}
}

func TestCurrentLines(t *testing.T) {
	if got := CurrentLines(config.Current{}); len(got) != 3 || got[0] != "No" {
		t.Errorf("CurrentLines(empty) = %v", got)
	}
	if got := CurrentLines(config.Current{Text: "Inverse|AMS|fabric"}); len(got) != 3 || got[2] != "fabric" {
		t.Errorf("CurrentLines(text) = %v", got)
	}
}

func TestGrainWidthFallback(t *testing.T) {
	cfg := config.Default()
	beds := []logdata.Bed{{Base: 2390, Thickness: 10, Grain: "gravel", Lith: "sst"}}
	p := render(t, cfg, "detail", 0, &Data{Beds: beds})
	if p.Stats.Beds != 1 {
		t.Errorf("Beds = %d, want 1", p.Stats.Beds)
	}
}

// edges returns the stroked two-point segments running up from bot to top.
func edges(p *Page, bot, top float64) []sheet.Shape {
	var out []sheet.Shape
	for _, sh := range p.Sheet.Shapes() {
		if !sh.Stroked || len(sh.Points) != 2 {
			continue
		}
		if math.Abs(sh.Points[0].Y-bot) < 1e-6 && math.Abs(sh.Points[1].Y-top) < 1e-6 {
			out = append(out, sh)
		}
	}
	return out
}

func TestLithologyOutline(t *testing.T) {
	sst := logdata.Bed{Base: 2390, Thickness: 6, Grain: "vfs", Lith: logdata.LithSandstone, Contact: "irr"}
	tests := []struct {
		name   string
		above  logdata.Bed
		widthT float64
	}{
		{"under siltstone", logdata.Bed{Base: 2396, Thickness: 4, Grain: "silt", Lith: logdata.LithSiltstone}, 90},
		{"under not exposed", logdata.Bed{Base: 2396, Thickness: 4, Lith: logdata.LithNotExposed}, 135},
		{"under blank lithology", logdata.Bed{Base: 2396, Thickness: 4, Grain: "silt"}, 135},
	}
	// The sandstone bed spans 2390-2396 m, 12 pt below the 24 pt margin.
	const top, bot = 24 + 4*2.0, 24 + 10*2.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			p := render(t, cfg, "detail", 0, &Data{Beds: []logdata.Bed{tt.above, sst}})

			got := edges(p, bot, top)
			if len(got) != 2 {
				t.Fatalf("found %d bed edges, want left and right", len(got))
			}
			left, right := got[0], got[1]
			x := left.Points[0].X
			if math.Abs(left.Points[1].X-x) > 1e-6 {
				t.Errorf("left edge = %v, want vertical", left.Points)
			}
			if b := right.Points[0].X - x; math.Abs(b-135) > 1e-6 {
				t.Errorf("base width = %v, want 135", b)
			}
			if w := right.Points[1].X - x; math.Abs(w-tt.widthT) > 1e-6 {
				t.Errorf("top width = %v, want %v", w, tt.widthT)
			}

			contact := false
			for _, sh := range p.Sheet.Shapes() {
				if len(sh.Points) < 3 || math.Abs(sh.Points[0].X-x) > 1e-6 || math.Abs(sh.Points[0].Y-bot) > 1e-6 {
					continue
				}
				end := sh.Points[len(sh.Points)-1]
				contact = math.Abs(end.X-(x+135)) < 1e-6
			}
			if !contact {
				t.Error("irregular contact does not span the base width")
			}
		})
	}
}

func TestNotExposedBox(t *testing.T) {
	cfg := config.Default()
	beds := []logdata.Bed{{Base: 2390, Thickness: 6, Lith: logdata.LithNotExposed}}
	p := render(t, cfg, "detail", 0, &Data{Beds: beds})

	const top, bot = 24 + 10*2.0 - 12, 24 + 10*2.0
	for _, sh := range p.Sheet.Shapes() {
		x0, y0, x1, y1 := sh.Bounds()
		if !sh.Stroked || math.Abs(y0-top) > 1e-6 || math.Abs(y1-bot) > 1e-6 {
			continue
		}
		if math.Abs(x1-x0-100) > 1e-6 {
			t.Errorf("box width = %v, want 100", x1-x0)
		}
		// Four corners and both diagonals.
		if len(sh.Points) != 8 {
			t.Errorf("box has %d vertices, want 8", len(sh.Points))
		}
		return
	}
	t.Error("no box drawn for the unexposed interval")
}

func TestWithSeeds(t *testing.T) {
	cfg := config.Default()
	sh, _ := cfg.Sheet("detail")

	def := New(cfg, sh)
	if def.sand.Dots[0] != pattern.Sand(pattern.SandSeed).Dots[0] {
		t.Error("default sand tile does not use SandSeed")
	}
	r := New(cfg, sh, WithSeeds(3, 5))
	if r.sand.Dots[0] != pattern.Sand(3).Dots[0] || r.sand.Dots[0] == def.sand.Dots[0] {
		t.Errorf("sand tile ignores seed: %+v", r.sand.Dots[0])
	}
	want := pattern.BurrowMottle(5)
	if len(r.mottle.Marks) != len(want.Marks) || (len(want.Marks) > 0 && r.mottle.Marks[0] != want.Marks[0]) {
		t.Errorf("mottle tile = %+v, want %+v", r.mottle.Marks, want.Marks)
	}
}
