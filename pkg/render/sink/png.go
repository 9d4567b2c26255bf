package sink

import (
	"bytes"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// DefaultDPMM is the default raster resolution in dots per millimetre
// (about 300 dpi).
const DefaultDPMM = 12.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpmm float64
}

// WithResolution sets the resolution in dots per millimetre.
func WithResolution(dpmm float64) PNGOption {
	return func(r *pngRenderer) { r.dpmm = dpmm }
}

// RenderPNG rasterizes c as PNG.
func RenderPNG(c *canvas.Canvas, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpmm: DefaultDPMM}
	for _, opt := range opts {
		opt(&r)
	}
	var buf bytes.Buffer
	if err := renderers.PNG(canvas.DPMM(r.dpmm))(&buf, c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}
