package logdata

import (
	"strconv"
	"strings"
)

// Float parses s as a float64. Empty and malformed values yield 0.
func Float(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
