package logdata

import (
	"fmt"
	"io"
)

// Site is a paleomagnetic sampling site with its mean direction.
type Site struct {
	Name   string
	Height float64
	Dec    float64
	Inc    float64

	// Raw keeps the textual fields so tables can print values exactly as
	// they appear in the input.
	Raw map[string]string
}

// Field returns the raw text of the named column.
func (s Site) Field(name string) string {
	return s.Raw[name]
}

// ReadSites loads the site table at path.
func ReadSites(path string) ([]Site, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sites, err := ParseSites(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sites, nil
}

// ParseSites reads a CSV table with site, height, dec and inc columns.
// Row order is preserved; it determines how the declination and
// inclination curves are connected.
func ParseSites(r io.Reader) ([]Site, error) {
	rows, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	sites := make([]Site, 0, len(rows))
	for _, row := range rows {
		sites = append(sites, Site{
			Name:   row.get("site"),
			Height: Float(row.get("height")),
			Dec:    Float(row.get("dec")),
			Inc:    Float(row.get("inc")),
			Raw:    row,
		})
	}
	return sites, nil
}

// SiteIndex maps site names to sites. Later duplicates win.
func SiteIndex(sites []Site) map[string]Site {
	idx := make(map[string]Site, len(sites))
	for _, s := range sites {
		idx[s.Name] = s
	}
	return idx
}
