// Package render groups the drawing layers of a log sheet.
//
// # Overview
//
// Rendering is split by level of abstraction:
//
//   - [sheet]: a canvas in printer's points with a current point, a
//     transform stack and text alignment helpers
//   - [pattern]: tiled fills (sand stipple, silt dashes, burrow mottling)
//     clipped to a bed polygon
//   - [symbols]: field symbols such as glauconite, burrows, wood and
//     palaeomagnetic directions
//   - [column]: the page renderer that lays out beds, curves, scales and
//     legends for one depth range
//   - [sink]: encoders from a finished canvas to PDF, SVG and PNG
//
// A page is drawn once into a [sheet.Sheet] and then encoded into every
// requested format, so all outputs of one page are identical in content.
//
//	r := column.New(cfg, sh, column.WithLogger(logger))
//	page, err := r.Render(&data, rng)
//	pdf, err := sink.RenderPDF(page.Sheet.Canvas())
//
// [sheet]: github.com/pont-us/sedlog-ffq/pkg/render/sheet
// [pattern]: github.com/pont-us/sedlog-ffq/pkg/render/pattern
// [symbols]: github.com/pont-us/sedlog-ffq/pkg/render/symbols
// [column]: github.com/pont-us/sedlog-ffq/pkg/render/column
// [sink]: github.com/pont-us/sedlog-ffq/pkg/render/sink
// [sheet.Sheet]: github.com/pont-us/sedlog-ffq/pkg/render/sheet#Sheet
package render
