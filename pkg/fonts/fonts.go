// Package fonts provides the embedded typefaces used on log sheets.
//
// The fonts come from the Latin Modern Sans family and are compiled into
// the binary, so rendering does not depend on fonts installed on the host.
// The regular face is the demi-condensed cut, which keeps column text
// narrow; bold is used for glaucony glyphs.
package fonts

import (
	"sync"

	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsansdemicond10regular"
	"github.com/tdewolff/canvas"
)

// FamilyName is the name under which the faces are registered.
const FamilyName = "Latin Modern Sans"

// Cache for the parsed family (loaded once on first access).
var (
	family     *canvas.FontFamily
	familyErr  error
	familyOnce sync.Once
)

// Family returns the shared font family with regular and bold styles
// loaded. The result is cached after the first call.
func Family() (*canvas.FontFamily, error) {
	familyOnce.Do(func() {
		family, familyErr = load()
	})
	return family, familyErr
}

func load() (*canvas.FontFamily, error) {
	f := canvas.NewFontFamily(FamilyName)
	if err := f.LoadFont(lmsansdemicond10regular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	if err := f.LoadFont(lmsans10bold.TTF, 0, canvas.FontBold); err != nil {
		return nil, err
	}
	return f, nil
}

// Faces bundles the regular and bold faces at one size.
type Faces struct {
	Regular *canvas.FontFace
	Bold    *canvas.FontFace
}

// New returns black regular and bold faces of the given size in points.
func New(size float64) (Faces, error) {
	f, err := Family()
	if err != nil {
		return Faces{}, err
	}
	return Faces{
		Regular: f.Face(size, canvas.Black, canvas.FontRegular, canvas.FontNormal),
		Bold:    f.Face(size, canvas.Black, canvas.FontBold, canvas.FontNormal),
	}, nil
}
