// Package sheet provides the drawing surface for log pages.
//
// A [Sheet] wraps a [canvas.Context] whose base view scales points to the
// canvas's millimetres and flips the y axis, so callers draw with the
// origin at the top-left corner of the page and y growing downward. This
// is the natural frame for a log, where the page position of a bed is
// measured down from the top margin. Push, Pop, Translate and Rotate
// compose further views on top of the base one.
//
// Drawing follows the context's current-path model: MoveTo, LineTo,
// CubeTo, Arc and Rect extend the path, and Stroke, Fill or FillStroke
// paint and clear it using the current line width and colours.
//
//	s, err := sheet.New(453.5, 640, 10)
//	s.SetLineWidth(0.5)
//	s.Rect(20, 24, 45, 30)
//	s.SetGray(0.8)
//	s.FillStroke()
//	s.Text(20, 20, "h (m)")
//
// Every text item and painted path is also recorded in sheet coordinates
// and can be listed with [Sheet.Texts] and [Sheet.Shapes], which keeps
// layout decisions testable without parsing the encoded output.
package sheet
