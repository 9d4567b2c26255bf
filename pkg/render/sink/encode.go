package sink

import (
	"github.com/tdewolff/canvas"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// Supported formats.
const (
	FormatPDF = "pdf"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Encode renders c in the named format.
func Encode(c *canvas.Canvas, format string) ([]byte, error) {
	switch format {
	case FormatPDF:
		return RenderPDF(c)
	case FormatSVG:
		return RenderSVG(c)
	case FormatPNG:
		return RenderPNG(c)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q", format)
	}
}

// Extension returns the file extension for a format, including the dot.
func Extension(format string) string {
	return "." + format
}
