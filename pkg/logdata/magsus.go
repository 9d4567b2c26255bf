package logdata

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pont-us/sedlog-ffq/pkg/errors"
)

// Sample is one point of the magnetic susceptibility curve.
type Sample struct {
	Height float64
	Value  float64
}

// ReadMagSus loads a susceptibility curve from a tab-separated file.
func ReadMagSus(path string) ([]Sample, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := ParseMagSus(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// ParseMagSus reads "height<TAB>value" lines. Lines with fewer than two
// fields are skipped; extra fields are ignored.
func ParseMagSus(r io.Reader) ([]Sample, error) {
	var samples []Sample
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		parts := strings.Split(strings.TrimSpace(sc.Text()), "\t")
		if len(parts) < 2 {
			continue
		}
		samples = append(samples, Sample{
			Height: Float(parts[0]),
			Value:  Float(parts[1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read susceptibility data")
	}
	return samples, nil
}

// Clip returns the samples whose height lies within [bottom, top],
// preserving order.
func Clip(samples []Sample, bottom, top float64) []Sample {
	var out []Sample
	for _, s := range samples {
		if s.Height < bottom || s.Height > top {
			continue
		}
		out = append(out, s)
	}
	return out
}
