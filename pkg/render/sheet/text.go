package sheet

import (
	"strings"

	"github.com/tdewolff/canvas"
)

func (s *Sheet) face() *canvas.FontFace {
	if s.bold {
		return s.faces.Bold
	}
	return s.faces.Regular
}

// Text draws s with its baseline starting at (x, y).
func (s *Sheet) Text(x, y float64, text string) {
	s.RotatedText(x, y, 0, text)
}

// RotatedText draws text with its baseline origin at (x, y), turned
// counter-clockwise by deg degrees.
func (s *Sheet) RotatedText(x, y, deg float64, text string) {
	if text == "" {
		return
	}
	s.ctx.Push()
	s.ctx.Translate(x, y)
	s.ctx.Scale(1/mmPerPt, -1/mmPerPt)
	if deg != 0 {
		s.ctx.Rotate(deg)
	}
	s.ctx.DrawText(0, 0, canvas.NewTextLine(s.face(), text, canvas.Left))
	s.ctx.Pop()
	s.record(x, y, text, deg)
}

// AlignText draws text positioned relative to (x, y).
func (s *Sheet) AlignText(x, y float64, text string, h HAlign, v VAlign) {
	switch h {
	case Right:
		x -= s.TextWidth(text)
	case Center:
		x -= s.TextWidth(text) / 2
	}
	switch v {
	case Hanging:
		y += s.CapHeight()
	case Middle:
		y += s.CapHeight() / 2
	}
	s.Text(x, y, text)
}

// WriteLines draws lines of text one below the other, the first baseline
// at y.
func (s *Sheet) WriteLines(x, y, spacing float64, lines []string) {
	for i, line := range lines {
		s.Text(x, y+float64(i)*spacing, line)
	}
}

// TextWidth returns the advance width of text in points.
func (s *Sheet) TextWidth(text string) float64 {
	return s.face().TextWidth(text) / mmPerPt
}

// CapHeight returns the height of capital letters in points.
func (s *Sheet) CapHeight() float64 {
	return s.face().Metrics().CapHeight / mmPerPt
}

func (s *Sheet) record(x, y float64, text string, angle float64) {
	at := s.toSheet(canvas.Point{X: x, Y: y})
	s.texts = append(s.texts, TextItem{
		X:     at.X,
		Y:     at.Y,
		Text:  text,
		Bold:  s.bold,
		Angle: angle,
	})
}

// Find returns the recorded text items equal to text.
func (s *Sheet) Find(text string) []TextItem {
	var out []TextItem
	for _, t := range s.texts {
		if t.Text == text {
			out = append(out, t)
		}
	}
	return out
}

// Contains reports whether any recorded text contains substr.
func (s *Sheet) Contains(substr string) bool {
	for _, t := range s.texts {
		if strings.Contains(t.Text, substr) {
			return true
		}
	}
	return false
}
