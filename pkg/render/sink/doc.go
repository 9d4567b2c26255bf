// Package sink encodes rendered log pages.
//
// A "sink" turns a finished [canvas.Canvas] into document bytes. This
// package provides:
//
//   - PDF: vector output, one page per canvas ([RenderPDF])
//   - SVG: vector output for the web ([RenderSVG])
//   - PNG: raster output at a chosen resolution ([RenderPNG])
//   - Booklet: several canvases as one multi-page PDF ([RenderBooklet])
//
// [Encode] picks the renderer by format name:
//
//	data, err := sink.Encode(page.Sheet.Canvas(), "pdf")
//
// All renderers draw in process through the canvas library; no external
// converter is needed.
package sink
