package sink

import (
	"bytes"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/pont-us/sedlog-ffq/pkg/buildinfo"
	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title    string
	subject  string
	compress bool
}

// WithTitle sets the document title.
func WithTitle(title string) PDFOption {
	return func(r *pdfRenderer) { r.title = title }
}

// WithSubject sets the document subject.
func WithSubject(subject string) PDFOption {
	return func(r *pdfRenderer) { r.subject = subject }
}

// WithoutCompression writes uncompressed content streams.
func WithoutCompression() PDFOption {
	return func(r *pdfRenderer) { r.compress = false }
}

func newPDFRenderer(opts []PDFOption) pdfRenderer {
	r := pdfRenderer{compress: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r pdfRenderer) options() *pdf.Options {
	o := pdf.DefaultOptions
	o.Compress = r.compress
	return &o
}

// RenderPDF renders c as a single-page PDF.
func RenderPDF(c *canvas.Canvas, opts ...PDFOption) ([]byte, error) {
	return RenderBooklet([]*canvas.Canvas{c}, opts...)
}

// RenderBooklet renders the canvases as consecutive pages of one PDF. Each
// page keeps its own size.
func RenderBooklet(pages []*canvas.Canvas, opts ...PDFOption) ([]byte, error) {
	if len(pages) == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "booklet has no pages")
	}
	r := newPDFRenderer(opts)

	var buf bytes.Buffer
	w, h := pages[0].Size()
	doc := pdf.New(&buf, w, h, r.options())
	doc.SetInfo(r.title, r.subject, "", "", "sedlog "+buildinfo.Version)
	for i, c := range pages {
		if i > 0 {
			w, h = c.Size()
			doc.NewPage(w, h)
		}
		c.RenderTo(doc)
	}
	if err := doc.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode pdf")
	}
	return buf.Bytes(), nil
}
