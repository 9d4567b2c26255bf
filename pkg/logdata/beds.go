package logdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// Column headers of the bed table.
const (
	ColBase        = "U"
	ColThickness   = "th"
	ColGrain       = "grain"
	ColLith        = "lith"
	ColGlauconite  = "glc%"
	ColDrill       = "drill"
	ColBurrows     = "burrows"
	ColAcid        = "acid"
	ColFossils     = "fossils"
	ColColour      = "colour"
	ColMagSus      = "ms"
	ColContact     = "cont"
	ColNotes       = "notes"
	ColLabelOffset = "label-offs"
)

// Lithology codes used in the lith column.
const (
	LithSandstone   = "sst"
	LithSiltstone   = "sist"
	LithNotExposed  = "ne"
	LithUnspecified = ""
)

// Bed is one depth interval of the section.
//
// Heights are in the section's native unit (centimetres for the bundled
// data); Base is the lower boundary and Top() the upper one.
type Bed struct {
	Base        float64
	Thickness   float64
	Grain       string
	Lith        string
	Glauconite  float64
	Drill       string
	Burrows     string
	Acid        string
	Fossils     string
	Colour      string
	MagSus      string
	Contact     string
	Notes       string
	LabelOffset float64
}

// Top returns the height of the bed's upper boundary.
func (b *Bed) Top() float64 {
	return b.Base + b.Thickness
}

// Exposed reports whether the bed has a lithology that can be drawn as a
// grain-size column.
func (b *Bed) Exposed() bool {
	return b.Lith != LithNotExposed && b.Lith != LithUnspecified
}

// NoteLines splits the notes field into display lines.
func (b *Bed) NoteLines() []string {
	if b.Notes == "" {
		return nil
	}
	return strings.Split(b.Notes, "|")
}

// Pyritized reports whether the burrows are marked as pyritized.
func (b *Bed) Pyritized() bool {
	return strings.Contains(b.Burrows, "py")
}

// AcidStrength returns the strength of the acid reaction (0 when absent).
func (b *Bed) AcidStrength() float64 {
	return Float(b.Acid)
}

// HasMagSus reports whether a spot susceptibility reading was recorded.
func (b *Bed) HasMagSus() bool {
	return strings.TrimSpace(b.MagSus) != ""
}

// MagSusValue returns the spot susceptibility reading (0 when absent).
func (b *Bed) MagSusValue() float64 {
	return Float(b.MagSus)
}

// InRange reports whether the whole bed lies between bottom and top.
func (b *Bed) InRange(bottom, top float64) bool {
	return b.Base >= bottom && b.Top() <= top
}

// ReadBeds loads the bed table at path.
func ReadBeds(path string) ([]Bed, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	beds, err := ParseBeds(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return beds, nil
}

// ParseBeds reads a bed table. Columns are matched by header name; a
// missing column reads as empty for every row.
func ParseBeds(r io.Reader) ([]Bed, error) {
	rows, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	beds := make([]Bed, 0, len(rows))
	for _, row := range rows {
		beds = append(beds, Bed{
			Base:        Float(row.get(ColBase)),
			Thickness:   Float(row.get(ColThickness)),
			Grain:       row.get(ColGrain),
			Lith:        row.get(ColLith),
			Glauconite:  Float(row.get(ColGlauconite)),
			Drill:       row.get(ColDrill),
			Burrows:     row.get(ColBurrows),
			Acid:        row.get(ColAcid),
			Fossils:     row.get(ColFossils),
			Colour:      row.get(ColColour),
			MagSus:      row.get(ColMagSus),
			Contact:     row.get(ColContact),
			Notes:       row.get(ColNotes),
			LabelOffset: Float(row.get(ColLabelOffset)),
		})
	}
	return beds, nil
}

// record is one CSV row keyed by header.
type record map[string]string

func (r record) get(key string) string {
	return r[key]
}

// readRecords reads a CSV stream whose first row is a header.
func readRecords(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read header")
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []record
	for {
		values, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read row %d", len(rows)+2)
		}
		row := make(record, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, nil
}
