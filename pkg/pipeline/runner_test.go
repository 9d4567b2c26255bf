package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pont-us/sedlog-ffq/pkg/cache"
	"github.com/pont-us/sedlog-ffq/pkg/config"
	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// Beds are listed top down, as in a field log.
const testBeds = `U,th,grain,lith,glc%,drill,burrows,acid,fossils,colour,ms,cont,notes,label-offs
2150,40,silt,sist,,,,1,calc,,,,,
2100,50,fs,sst,10,K3,py,,,green,,,,
2070,30,,ne,,,,,,,,,,
2030,40,vfs,sst,30,K2,,4,wood,,0.0002,irr,coarser up|shelly,
2010,20,silt,sist,5,K1,x,2,,grey,,,,
`

const testMagSus = "2015\t0.0001\n2050\t0.0004\n2120\t0.0002\n"

const testSites = `site,height,dec,inc
K1,2010,355,-58
K2,2030,10,-62
K3,2100,190,45
`

// memCache is an in-memory Cache that counts hits.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	if ok {
		c.hits++
	}
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func writeProject(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"beds.csv":   testBeds,
		"magsus.tsv": testMagSus,
		"sites.csv":  testSites,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Default()
	cfg.Inputs = config.Inputs{
		Beds:   filepath.Join(dir, "beds.csv"),
		MagSus: filepath.Join(dir, "magsus.tsv"),
		Sites:  filepath.Join(dir, "sites.csv"),
	}
	cfg.Output = config.Output{Dir: filepath.Join(dir, "out"), Formats: []string{"svg"}}
	cfg.Sheets = []config.Sheet{
		{Name: "small", Intervals: []float64{2000, 2100, 2200}, Scale: 1, Formations: "paged", Filename: "small%04d"},
		{Name: "whole", Intervals: []float64{2000, 2200}, Scale: 0.5, Formations: "summary", Filename: "whole",
			Legend: &config.Point{X: 200, Y: 150}},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return cfg
}

func TestLoad(t *testing.T) {
	cfg := writeProject(t)
	r := NewRunner(nil, nil, nil)

	in, err := r.Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(in.Data.Beds) != 5 || len(in.Data.MagSus) != 3 || len(in.Data.Sites) != 3 {
		t.Errorf("loaded %d beds, %d samples, %d sites", len(in.Data.Beds), len(in.Data.MagSus), len(in.Data.Sites))
	}
	if in.Hash == "" {
		t.Error("empty input hash")
	}

	again, err := r.Load(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if again.Hash != in.Hash {
		t.Error("input hash not stable")
	}

	cfg.Settings.GlcInterval++
	changed, err := r.Load(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if changed.Hash == in.Hash {
		t.Error("config change did not change the input hash")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := writeProject(t)
	cfg.Inputs.Beds = filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewRunner(nil, nil, nil).Load(context.Background(), cfg)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExecute(t *testing.T) {
	cfg := writeProject(t)
	c := newMemCache()
	r := NewRunner(c, nil, nil)

	res, err := r.Execute(context.Background(), Options{Config: cfg})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, name := range []string{"small2000.svg", "small2100.svg", "whole.svg"} {
		data, ok := res.Artifacts[name]
		if !ok {
			t.Errorf("missing artifact %s (have %v)", name, keys(res.Artifacts))
			continue
		}
		if !bytes.Contains(data, []byte("<svg")) {
			t.Errorf("%s is not SVG", name)
		}
	}
	if len(res.Artifacts) != 3 {
		t.Errorf("got %d artifacts, want 3", len(res.Artifacts))
	}
	if res.Stats.Pages != 3 || res.Stats.Beds != 5 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.CacheInfo.Hits != 0 || res.CacheInfo.Misses != 3 {
		t.Errorf("first run cache info = %+v", res.CacheInfo)
	}

	again, err := r.Execute(context.Background(), Options{Config: cfg})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if again.CacheInfo.Hits != 3 || again.CacheInfo.Misses != 0 {
		t.Errorf("second run cache info = %+v", again.CacheInfo)
	}
	if !bytes.Equal(again.Artifacts["whole.svg"], res.Artifacts["whole.svg"]) {
		t.Error("cached page differs from rendered page")
	}
	if res.RunID == "" || res.RunID == again.RunID {
		t.Errorf("run IDs %q and %q should be distinct and non-empty", res.RunID, again.RunID)
	}

	refreshed, err := r.Execute(context.Background(), Options{Config: cfg, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.Hits != 0 {
		t.Errorf("refresh run used cache: %+v", refreshed.CacheInfo)
	}
}

func TestExecuteSheetFilter(t *testing.T) {
	cfg := writeProject(t)
	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Config:  cfg,
		Sheets:  []string{"whole"},
		Formats: []string{"pdf", "svg"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pages) != 1 || res.Pages[0].Sheet != "whole" {
		t.Errorf("pages = %+v", res.Pages)
	}
	if !bytes.HasPrefix(res.Artifacts["whole.pdf"], []byte("%PDF")) {
		t.Error("whole.pdf missing or not a PDF")
	}
	if _, ok := res.Artifacts["whole.svg"]; !ok {
		t.Error("whole.svg missing")
	}
}

func TestExecuteBooklet(t *testing.T) {
	cfg := writeProject(t)
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	opts := Options{Config: cfg, Formats: []string{"pdf"}, Booklet: true, BookletName: "ffq"}

	res, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res.Artifacts) != 1 {
		t.Errorf("booklet run produced %v", keys(res.Artifacts))
	}
	book := res.Artifacts["ffq.pdf"]
	if !bytes.HasPrefix(book, []byte("%PDF")) {
		t.Fatal("booklet missing or not a PDF")
	}

	again, err := r.Execute(context.Background(), Options{Config: cfg, Formats: []string{"pdf"}, Booklet: true, BookletName: "ffq"})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again.Artifacts["ffq.pdf"], book) {
		t.Error("cached booklet differs")
	}
}

func TestExecuteCancelled(t *testing.T) {
	cfg := writeProject(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil, nil, nil).Execute(ctx, Options{Config: cfg})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRenderSheetStats(t *testing.T) {
	cfg := writeProject(t)
	r := NewRunner(nil, nil, nil)
	in, err := r.Load(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	sh, _ := cfg.Sheet("small")
	pages, err := r.RenderSheet(context.Background(), in, sh, Options{Config: cfg, Formats: []string{"svg"}})
	if err != nil {
		t.Fatalf("RenderSheet: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages", len(pages))
	}
	if pages[0].Canvas == nil {
		t.Error("uncached page has no canvas")
	}
	// Beds 2010, 2030 and the not-exposed bed lie in 2000-2100.
	if pages[0].Stats.Beds != 3 {
		t.Errorf("page 1 beds = %d, want 3", pages[0].Stats.Beds)
	}
	if pages[1].Info.Name != "small2100" {
		t.Errorf("page 2 name = %q", pages[1].Info.Name)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := WriteArtifacts(dir, map[string][]byte{
		"b.svg": []byte("<svg/>"),
		"a.pdf": []byte("%PDF"),
	})
	if err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}
	if len(paths) != 2 || !strings.HasSuffix(paths[0], "a.pdf") {
		t.Errorf("paths = %v", paths)
	}
	data, err := os.ReadFile(filepath.Join(dir, "b.svg"))
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("b.svg = %q, %v", data, err)
	}

	if _, err := WriteArtifacts(dir, map[string][]byte{"../x.pdf": nil}); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("traversal err = %v", err)
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

var _ cache.Cache = (*memCache)(nil)
