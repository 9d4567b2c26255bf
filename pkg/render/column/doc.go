// Package column draws log pages.
//
// A page shows the beds between two heights as a grain-size column: each
// bed is a trapezoid whose width grows with grain size, filled with its
// lithology pattern and decorated with sedimentary symbols. Around it sit
// the depth axis, the column header, a magnetic susceptibility curve,
// formation brackets, paleomagnetic site labels and, optionally, a
// declination/inclination graph, a site table, palaeocurrent brackets and
// a legend.
//
// # Declutter
//
// Symbols are placed at fixed offsets from the top of the bed they belong
// to, so thin beds would stack identical symbols on top of each other.
// [State] tracks where each kind of symbol was last drawn on the page and
// suppresses a repeat closer than the configured interval:
//
//   - calcareous, burrow and wood symbols use a single "last drawn" page
//     position per kind; the tracker resets when a bed lies above it
//   - glaucony glyphs track the lowest base height drawn so far and skip
//     beds just above it, unless the content changes
//   - paleomagnetic site labels can be staggered over three sub-columns
//
// Beds are visited in table order; the previous row of the table is the
// bed's upper neighbour, which decides the width of the trapezoid's top.
//
// # Usage
//
//	r := column.New(cfg, sheet, column.WithLogger(logger))
//	page, err := r.Render(data, sheet.Pages()[0])
//	// page.Sheet holds the drawing; page.Stats counts what was drawn.
package column
