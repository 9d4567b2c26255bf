// Package pipeline runs a sedlog project from input tables to encoded pages.
//
// A run has two stages:
//
//  1. Load: read the bed, magnetic susceptibility and site tables once.
//  2. Render: draw every page of every selected sheet and encode it in
//     each requested format (PDF, SVG, PNG), optionally collecting the PDF
//     pages into a single booklet.
//
// Encoded pages are cached under a key derived from the content of the
// inputs, the effective configuration and the page parameters, so a second
// run over unchanged data only draws what changed.
//
// # Usage
//
//	cfg, _ := config.Load("ffq.toml")
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Config: cfg})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = pipeline.WriteArtifacts(cfg.Output.Dir, result.Artifacts)
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pont-us/sedlog-ffq/pkg/config"
	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultFormat is used when neither the options nor the project name
	// a format.
	DefaultFormat = config.FormatPDF

	// DefaultBookletName is the base name of the booklet PDF.
	DefaultBookletName = "sedlog-booklet"
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options configures a run. Zero fields fall back to the project's Output
// section.
type Options struct {
	Config *config.Config

	// Formats lists the output formats.
	Formats []string

	// Sheets restricts the run to the named sheets, in the given order.
	Sheets []string

	// Booklet collects all PDF pages into one document instead of one
	// file per page.
	Booklet     bool
	BookletName string

	// OutputDir is where WriteArtifacts puts the files.
	OutputDir string

	// Refresh ignores cached pages (they are still written back).
	Refresh bool

	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config == nil {
		return errors.New(errors.ErrCodeInvalidInput, "config is required")
	}
	out := o.Config.Output
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(out.Formats)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	for _, name := range o.Sheets {
		if _, ok := o.Config.Sheet(name); !ok {
			return errors.New(errors.ErrCodeInvalidSheet, "unknown sheet %q (have %v)", name, o.Config.SheetNames())
		}
	}
	o.Booklet = o.Booklet || out.Booklet
	if o.BookletName == "" {
		o.BookletName = DefaultBookletName
	}
	if o.OutputDir == "" {
		o.OutputDir = out.Dir
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SelectedSheets returns the sheets to draw: the filter in its order, or
// every sheet of the project.
func (o *Options) SelectedSheets() []*config.Sheet {
	if len(o.Sheets) == 0 {
		sheets := make([]*config.Sheet, len(o.Config.Sheets))
		for i := range o.Config.Sheets {
			sheets[i] = &o.Config.Sheets[i]
		}
		return sheets
	}
	sheets := make([]*config.Sheet, 0, len(o.Sheets))
	for _, name := range o.Sheets {
		if s, ok := o.Config.Sheet(name); ok {
			sheets = append(sheets, s)
		}
	}
	return sheets
}

// PageFormats returns the formats written one file per page. PDF pages go
// into the booklet instead when Booklet is set.
func (o *Options) PageFormats() []string {
	if !o.Booklet {
		return o.Formats
	}
	var formats []string
	for _, f := range o.Formats {
		if f != config.FormatPDF {
			formats = append(formats, f)
		}
	}
	return formats
}

// WantsBooklet reports whether a booklet PDF is produced.
func (o *Options) WantsBooklet() bool {
	return o.Booklet && slices.Contains(o.Formats, config.FormatPDF)
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a run.
type Result struct {
	// RunID identifies this run in log output.
	RunID string

	// Artifacts maps output file names (with extension) to their contents.
	Artifacts map[string][]byte

	// Pages lists every page in drawing order.
	Pages []PageInfo

	Stats     Stats
	CacheInfo CacheInfo
}

// PageInfo describes one page of the run.
type PageInfo struct {
	Sheet  string
	Name   string
	Bottom float64
	Top    float64
	Cached bool
}

// Stats contains run statistics.
type Stats struct {
	Beds       int
	Samples    int
	Sites      int
	Pages      int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo counts pages served from and missing in the cache.
type CacheInfo struct {
	Hits   int
	Misses int
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !config.ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: pdf, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
