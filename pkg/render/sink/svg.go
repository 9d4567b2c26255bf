package sink

import (
	"bytes"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// RenderSVG renders c as SVG with the fonts embedded.
func RenderSVG(c *canvas.Canvas) ([]byte, error) {
	var buf bytes.Buffer
	w, h := c.Size()
	doc := svg.New(&buf, w, h, nil)
	c.RenderTo(doc)
	if err := doc.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode svg")
	}
	return buf.Bytes(), nil
}
