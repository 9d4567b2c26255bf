// Package pkg provides the core libraries for sedlog, the stratigraphic
// log renderer for the Fairfield Quarry sections.
//
// # Overview
//
// sedlog turns a bed-by-bed field description of a measured section into
// printable log sheets: a lithological column with grain-size profile,
// sedimentary symbols, magnetic susceptibility curve and palaeomagnetic
// site markers. The pkg directory is organized into these areas:
//
//  1. [logdata] - Reading bed, susceptibility and site tables
//  2. [config] - Project files, sheet definitions and styling
//  3. [render] - Drawing primitives, fill patterns, symbols and the column
//  4. [pipeline] - Orchestration (load → render → encode) with caching
//  5. [cache] - File and Redis page caches
//
// # Architecture
//
// The typical data flow:
//
//	sedlog.toml + beds.csv (+ magsus, sites)
//	         ↓
//	    [config] / [logdata] (load and validate)
//	         ↓
//	    [render/column] (one canvas per page range)
//	         ↓
//	    [render/sink] (PDF, SVG, PNG, PDF booklet)
//
// # Quick Start
//
//	cfg, _ := config.Load("sedlog.toml")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Config: cfg})
//	if err != nil {
//	    return err
//	}
//	paths, err := pipeline.WriteArtifacts("out", result.Artifacts)
//
// [logdata]: github.com/pont-us/sedlog-ffq/pkg/logdata
// [config]: github.com/pont-us/sedlog-ffq/pkg/config
// [render]: github.com/pont-us/sedlog-ffq/pkg/render
// [render/column]: github.com/pont-us/sedlog-ffq/pkg/render/column
// [render/sink]: github.com/pont-us/sedlog-ffq/pkg/render/sink
// [pipeline]: github.com/pont-us/sedlog-ffq/pkg/pipeline
// [cache]: github.com/pont-us/sedlog-ffq/pkg/cache
package pkg
